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

// CampaignService defines the interface for campaign operations
type CampaignService interface {
	CreateCampaign(ctx context.Context, req *dto.CreateCampaignRequest) (*models.Campaign, error)
	GetCampaignByID(ctx context.Context, id int64) (*models.Campaign, error)
	ListCampaigns(ctx context.Context, filter repositories.CampaignFilter, page, size int) ([]*models.Campaign, dto.PaginationInfo, error)
	UpdateCampaign(ctx context.Context, id int64, req *dto.UpdateCampaignRequest) (*models.Campaign, error)
	DeleteCampaign(ctx context.Context, id int64) error
}

// campaignServiceImpl implements the CampaignService interface
type campaignServiceImpl struct {
	campaignRepo   *repositories.CampaignRepository
	dictionaryRepo *repositories.DictionaryRepository
}

// NewCampaignService creates a new campaign service instance
func NewCampaignService(campaignRepo *repositories.CampaignRepository, dictionaryRepo *repositories.DictionaryRepository) CampaignService {
	return &campaignServiceImpl{
		campaignRepo:   campaignRepo,
		dictionaryRepo: dictionaryRepo,
	}
}

func (s *campaignServiceImpl) buildCampaign(ctx context.Context, req *dto.CreateCampaignRequest) (*models.Campaign, error) {
	dateStart, err := helpers.ParseDate(req.DateStart)
	if err != nil {
		return nil, fmt.Errorf("%w: dateStart must be YYYY-MM-DD", apperrors.ErrValidationFailed)
	}
	dateEnd, err := helpers.ParseDate(req.DateEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: dateEnd must be YYYY-MM-DD", apperrors.ErrValidationFailed)
	}
	if dateEnd.Before(dateStart) {
		return nil, fmt.Errorf("%w: dateEnd must not precede dateStart", apperrors.ErrValidationFailed)
	}

	// The assistance type must exist before the campaign references it
	if _, err := s.dictionaryRepo.GetByID(ctx, models.DictAssistanceTypes, req.AssistanceTypeID); err != nil {
		return nil, err
	}

	return &models.Campaign{
		Name:                    req.Name,
		AssistanceTypeID:        req.AssistanceTypeID,
		DateStart:               dateStart,
		DateEnd:                 dateEnd,
		Location:                req.Location,
		Budget:                  req.Budget,
		PlannedBeneficiaryCount: req.PlannedBeneficiaryCount,
	}, nil
}

// CreateCampaign creates a new campaign
func (s *campaignServiceImpl) CreateCampaign(ctx context.Context, req *dto.CreateCampaignRequest) (*models.Campaign, error) {
	campaign, err := s.buildCampaign(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.campaignRepo.Create(ctx, campaign); err != nil {
		return nil, err
	}

	return s.campaignRepo.GetByID(ctx, campaign.ID)
}

// GetCampaignByID retrieves a campaign by ID
func (s *campaignServiceImpl) GetCampaignByID(ctx context.Context, id int64) (*models.Campaign, error) {
	return s.campaignRepo.GetByID(ctx, id)
}

// ListCampaigns retrieves campaigns matching the filter. The derived status
// is a pure function of the date window, so the repository filters it in SQL
// and pagination totals stay exact.
func (s *campaignServiceImpl) ListCampaigns(ctx context.Context, filter repositories.CampaignFilter, page, size int) ([]*models.Campaign, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	campaigns, total, err := s.campaignRepo.List(ctx, filter, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	return campaigns, helpers.NewPaginationInfo(total, page, limit), nil
}

// UpdateCampaign updates an existing campaign
func (s *campaignServiceImpl) UpdateCampaign(ctx context.Context, id int64, req *dto.UpdateCampaignRequest) (*models.Campaign, error) {
	if _, err := s.campaignRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	createReq := dto.CreateCampaignRequest(*req)
	campaign, err := s.buildCampaign(ctx, &createReq)
	if err != nil {
		return nil, err
	}
	campaign.ID = id

	if err := s.campaignRepo.Update(ctx, campaign); err != nil {
		return nil, err
	}

	return s.campaignRepo.GetByID(ctx, id)
}

// DeleteCampaign deletes a campaign unless it owns beneficiaries
func (s *campaignServiceImpl) DeleteCampaign(ctx context.Context, id int64) error {
	if _, err := s.campaignRepo.GetByID(ctx, id); err != nil {
		return err
	}

	hasBeneficiaries, err := s.campaignRepo.HasBeneficiaries(ctx, id)
	if err != nil {
		return err
	}
	if hasBeneficiaries {
		return apperrors.ErrCampaignHasBeneficiaries
	}

	return s.campaignRepo.Delete(ctx, id)
}
