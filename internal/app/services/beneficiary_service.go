package services

import (
	"context"
	"fmt"

	"github.com/sanad-app/sanad-backend/internal/app/models"
	"github.com/sanad-app/sanad-backend/internal/app/models/dto"
	"github.com/sanad-app/sanad-backend/internal/app/repositories"
	"github.com/sanad-app/sanad-backend/internal/pkg/apperrors"
	"github.com/sanad-app/sanad-backend/internal/pkg/helpers"
)

// BeneficiaryService defines the interface for beneficiary operations
type BeneficiaryService interface {
	CreateBeneficiary(ctx context.Context, req *dto.CreateBeneficiaryRequest, actorID int64) (*models.Beneficiary, error)
	GetBeneficiaryByID(ctx context.Context, id int64) (*models.Beneficiary, error)
	ListBeneficiaries(ctx context.Context, filter repositories.BeneficiaryFilter, page, size int) ([]*models.Beneficiary, dto.PaginationInfo, error)
	UpdateBeneficiary(ctx context.Context, id int64, req *dto.UpdateBeneficiaryRequest, actorID int64) (*models.Beneficiary, error)
	UpdateDecision(ctx context.Context, id int64, req *dto.DecisionRequest, actorID int64) (*models.Beneficiary, error)
	DeleteBeneficiary(ctx context.Context, id int64) error
}

// beneficiaryServiceImpl implements the BeneficiaryService interface
type beneficiaryServiceImpl struct {
	beneficiaryRepo *repositories.BeneficiaryRepository
	campaignRepo    *repositories.CampaignRepository
}

// NewBeneficiaryService creates a new beneficiary service instance
func NewBeneficiaryService(beneficiaryRepo *repositories.BeneficiaryRepository, campaignRepo *repositories.CampaignRepository) BeneficiaryService {
	return &beneficiaryServiceImpl{
		beneficiaryRepo: beneficiaryRepo,
		campaignRepo:    campaignRepo,
	}
}

func (s *beneficiaryServiceImpl) applyRequest(b *models.Beneficiary, req *dto.CreateBeneficiaryRequest) error {
	birthDate, err := helpers.ParseDatePtr(req.BirthDate)
	if err != nil {
		return fmt.Errorf("%w: birthDate must be YYYY-MM-DD", apperrors.ErrValidationFailed)
	}

	b.CampaignID = req.CampaignID
	b.FirstName = req.FirstName
	b.LastName = req.LastName
	b.CIN = req.CIN
	b.BirthDate = birthDate
	b.Sex = models.Sex(req.Sex)
	b.Phone = req.Phone
	b.Address = req.Address
	b.CommuneID = req.CommuneID
	b.HasBenefited = req.HasBenefited
	b.ChildInSchool = req.ChildInSchool

	b.Decision = models.DecisionPending
	if req.Decision != "" {
		b.Decision = models.Decision(req.Decision)
	}
	b.DeviceSide = models.DeviceSideUnknown
	if req.DeviceSide != "" {
		b.DeviceSide = models.DeviceSide(req.DeviceSide)
	}

	return nil
}

// CreateBeneficiary creates a beneficiary, in or out of a campaign
func (s *beneficiaryServiceImpl) CreateBeneficiary(ctx context.Context, req *dto.CreateBeneficiaryRequest, actorID int64) (*models.Beneficiary, error) {
	if req.CampaignID != nil {
		if _, err := s.campaignRepo.GetByID(ctx, *req.CampaignID); err != nil {
			return nil, err
		}
	}

	exists, err := s.beneficiaryRepo.ExistsByCIN(ctx, req.CIN, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrCINAlreadyExists
	}

	beneficiary := &models.Beneficiary{CreatedBy: &actorID}
	if err := s.applyRequest(beneficiary, req); err != nil {
		return nil, err
	}

	if err := s.beneficiaryRepo.Create(ctx, beneficiary); err != nil {
		return nil, err
	}

	return s.beneficiaryRepo.GetByID(ctx, beneficiary.ID)
}

// GetBeneficiaryByID retrieves a beneficiary by ID
func (s *beneficiaryServiceImpl) GetBeneficiaryByID(ctx context.Context, id int64) (*models.Beneficiary, error) {
	return s.beneficiaryRepo.GetByID(ctx, id)
}

// ListBeneficiaries retrieves a page of beneficiaries
func (s *beneficiaryServiceImpl) ListBeneficiaries(ctx context.Context, filter repositories.BeneficiaryFilter, page, size int) ([]*models.Beneficiary, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	beneficiaries, total, err := s.beneficiaryRepo.List(ctx, filter, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	return beneficiaries, helpers.NewPaginationInfo(total, page, limit), nil
}

// UpdateBeneficiary updates a beneficiary's fields
func (s *beneficiaryServiceImpl) UpdateBeneficiary(ctx context.Context, id int64, req *dto.UpdateBeneficiaryRequest, actorID int64) (*models.Beneficiary, error) {
	beneficiary, err := s.beneficiaryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	exists, err := s.beneficiaryRepo.ExistsByCIN(ctx, req.CIN, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrCINAlreadyExists
	}

	if req.CampaignID != nil {
		if _, err := s.campaignRepo.GetByID(ctx, *req.CampaignID); err != nil {
			return nil, err
		}
	}

	createReq := dto.CreateBeneficiaryRequest(*req)
	if err := s.applyRequest(beneficiary, &createReq); err != nil {
		return nil, err
	}
	beneficiary.UpdatedBy = &actorID

	if err := s.beneficiaryRepo.Update(ctx, beneficiary); err != nil {
		return nil, err
	}

	return s.beneficiaryRepo.GetByID(ctx, id)
}

// UpdateDecision updates the eligibility decision. All transitions between
// accepted, pending and refused are allowed.
func (s *beneficiaryServiceImpl) UpdateDecision(ctx context.Context, id int64, req *dto.DecisionRequest, actorID int64) (*models.Beneficiary, error) {
	beneficiary, err := s.beneficiaryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	beneficiary.Decision = models.Decision(req.Decision)
	beneficiary.UpdatedBy = &actorID

	if err := s.beneficiaryRepo.Update(ctx, beneficiary); err != nil {
		return nil, err
	}

	return s.beneficiaryRepo.GetByID(ctx, id)
}

// DeleteBeneficiary deletes a beneficiary unless assistance records exist
func (s *beneficiaryServiceImpl) DeleteBeneficiary(ctx context.Context, id int64) error {
	if _, err := s.beneficiaryRepo.GetByID(ctx, id); err != nil {
		return err
	}

	hasRecords, err := s.beneficiaryRepo.HasMedicalAssistances(ctx, id)
	if err != nil {
		return err
	}
	if hasRecords {
		return apperrors.NewBadRequestError("beneficiary has medical assistance records and cannot be deleted")
	}

	return s.beneficiaryRepo.Delete(ctx, id)
}
