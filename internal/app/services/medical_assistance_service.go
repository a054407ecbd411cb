package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sanad-app/sanad-backend/internal/app/models"
	"github.com/sanad-app/sanad-backend/internal/app/models/dto"
	"github.com/sanad-app/sanad-backend/internal/app/repositories"
	"github.com/sanad-app/sanad-backend/internal/pkg/apperrors"
	"github.com/sanad-app/sanad-backend/internal/pkg/helpers"
)

// MedicalAssistanceService defines the interface for device loan/donation
// operations
type MedicalAssistanceService interface {
	CreateAssistance(ctx context.Context, beneficiaryID int64, req *dto.CreateMedicalAssistanceRequest) (*models.MedicalAssistance, error)
	GetAssistanceByID(ctx context.Context, id int64) (*models.MedicalAssistance, error)
	ListAssistances(ctx context.Context, filter repositories.MedicalAssistanceFilter, page, size int) ([]*models.MedicalAssistance, dto.PaginationInfo, error)
	UpdateAssistance(ctx context.Context, id int64, req *dto.UpdateMedicalAssistanceRequest) (*models.MedicalAssistance, error)
	MarkReturned(ctx context.Context, id int64, returnDate *string) (*models.MedicalAssistance, error)
	DeleteAssistance(ctx context.Context, id int64) error
}

// medicalAssistanceServiceImpl implements the MedicalAssistanceService
// interface
type medicalAssistanceServiceImpl struct {
	assistanceRepo  *repositories.MedicalAssistanceRepository
	beneficiaryRepo *repositories.BeneficiaryRepository
	dictionaryRepo  *repositories.DictionaryRepository
}

// NewMedicalAssistanceService creates a new medical assistance service
// instance
func NewMedicalAssistanceService(
	assistanceRepo *repositories.MedicalAssistanceRepository,
	beneficiaryRepo *repositories.BeneficiaryRepository,
	dictionaryRepo *repositories.DictionaryRepository,
) MedicalAssistanceService {
	return &medicalAssistanceServiceImpl{
		assistanceRepo:  assistanceRepo,
		beneficiaryRepo: beneficiaryRepo,
		dictionaryRepo:  dictionaryRepo,
	}
}

func (s *medicalAssistanceServiceImpl) buildAssistance(ctx context.Context, req *dto.CreateMedicalAssistanceRequest) (*models.MedicalAssistance, error) {
	assistanceDate, err := helpers.ParseDate(req.AssistanceDate)
	if err != nil {
		return nil, fmt.Errorf("%w: assistanceDate must be YYYY-MM-DD", apperrors.ErrValidationFailed)
	}

	if _, err := s.dictionaryRepo.GetByID(ctx, models.DictAssistanceTypes, req.AssistanceTypeID); err != nil {
		return nil, err
	}
	if req.DonationStateID != nil {
		if _, err := s.dictionaryRepo.GetByID(ctx, models.DictDonationStates, *req.DonationStateID); err != nil {
			return nil, err
		}
	}
	if req.FileStateID != nil {
		if _, err := s.dictionaryRepo.GetByID(ctx, models.DictFileStates, *req.FileStateID); err != nil {
			return nil, err
		}
	}

	assistance := &models.MedicalAssistance{
		AssistanceTypeID:  req.AssistanceTypeID,
		AssistanceSubType: req.AssistanceSubType,
		DonationNature:    req.DonationNature,
		DonationStateID:   req.DonationStateID,
		FileStateID:       req.FileStateID,
		AssistanceDate:    assistanceDate,
		UsageDurationDays: req.UsageDurationDays,
	}
	assistance.ExpectedReturnDate = assistance.ComputeExpectedReturn()

	return assistance, nil
}

// CreateAssistance creates an assistance record for a beneficiary
func (s *medicalAssistanceServiceImpl) CreateAssistance(ctx context.Context, beneficiaryID int64, req *dto.CreateMedicalAssistanceRequest) (*models.MedicalAssistance, error) {
	if _, err := s.beneficiaryRepo.GetByID(ctx, beneficiaryID); err != nil {
		return nil, err
	}

	assistance, err := s.buildAssistance(ctx, req)
	if err != nil {
		return nil, err
	}
	assistance.BeneficiaryID = beneficiaryID

	if err := s.assistanceRepo.Create(ctx, assistance); err != nil {
		return nil, err
	}

	return s.assistanceRepo.GetByID(ctx, assistance.ID)
}

// GetAssistanceByID retrieves an assistance record by ID
func (s *medicalAssistanceServiceImpl) GetAssistanceByID(ctx context.Context, id int64) (*models.MedicalAssistance, error) {
	return s.assistanceRepo.GetByID(ctx, id)
}

// ListAssistances retrieves a page of assistance records
func (s *medicalAssistanceServiceImpl) ListAssistances(ctx context.Context, filter repositories.MedicalAssistanceFilter, page, size int) ([]*models.MedicalAssistance, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	records, total, err := s.assistanceRepo.List(ctx, filter, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	return records, helpers.NewPaginationInfo(total, page, limit), nil
}

// UpdateAssistance updates an assistance record. The returned flag is only
// changed through MarkReturned.
func (s *medicalAssistanceServiceImpl) UpdateAssistance(ctx context.Context, id int64, req *dto.UpdateMedicalAssistanceRequest) (*models.MedicalAssistance, error) {
	existing, err := s.assistanceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	createReq := dto.CreateMedicalAssistanceRequest(*req)
	assistance, err := s.buildAssistance(ctx, &createReq)
	if err != nil {
		return nil, err
	}
	assistance.ID = existing.ID
	assistance.BeneficiaryID = existing.BeneficiaryID

	if err := s.assistanceRepo.Update(ctx, assistance); err != nil {
		return nil, err
	}

	return s.assistanceRepo.GetByID(ctx, id)
}

// MarkReturned records the device return. The flag only moves false to true;
// a second call is refused.
func (s *medicalAssistanceServiceImpl) MarkReturned(ctx context.Context, id int64, returnDate *string) (*models.MedicalAssistance, error) {
	actualDate := time.Now()
	if returnDate != nil && *returnDate != "" {
		parsed, err := helpers.ParseDate(*returnDate)
		if err != nil {
			return nil, fmt.Errorf("%w: returnDate must be YYYY-MM-DD", apperrors.ErrValidationFailed)
		}
		actualDate = parsed
	}

	if err := s.assistanceRepo.MarkReturned(ctx, id, actualDate); err != nil {
		return nil, err
	}

	return s.assistanceRepo.GetByID(ctx, id)
}

// DeleteAssistance deletes an assistance record by ID
func (s *medicalAssistanceServiceImpl) DeleteAssistance(ctx context.Context, id int64) error {
	return s.assistanceRepo.Delete(ctx, id)
}
