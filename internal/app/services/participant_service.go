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

// ParticipantService defines the interface for participant operations
type ParticipantService interface {
	CreateParticipant(ctx context.Context, req *dto.CreateParticipantRequest, actorID int64) (*models.Participant, error)
	GetParticipantByID(ctx context.Context, id int64) (*models.Participant, error)
	ListParticipants(ctx context.Context, campaignID int64, filter repositories.ParticipantFilter, page, size int) ([]*models.Participant, dto.PaginationInfo, error)
	UpdateParticipant(ctx context.Context, id int64, req *dto.UpdateParticipantRequest, actorID int64) (*models.Participant, error)
	Triage(ctx context.Context, id int64, req *dto.TriageRequest, actorID int64) (*models.Participant, error)
	ConvertToBeneficiary(ctx context.Context, id int64, req *dto.ConvertParticipantRequest, actorID int64) (*models.Beneficiary, error)
	DeleteParticipant(ctx context.Context, id int64) error
}

// participantServiceImpl implements the ParticipantService interface
type participantServiceImpl struct {
	participantRepo *repositories.ParticipantRepository
	beneficiaryRepo *repositories.BeneficiaryRepository
	campaignRepo    *repositories.CampaignRepository
}

// NewParticipantService creates a new participant service instance
func NewParticipantService(
	participantRepo *repositories.ParticipantRepository,
	beneficiaryRepo *repositories.BeneficiaryRepository,
	campaignRepo *repositories.CampaignRepository,
) ParticipantService {
	return &participantServiceImpl{
		participantRepo: participantRepo,
		beneficiaryRepo: beneficiaryRepo,
		campaignRepo:    campaignRepo,
	}
}

// CreateParticipant registers a participant in a campaign
func (s *participantServiceImpl) CreateParticipant(ctx context.Context, req *dto.CreateParticipantRequest, actorID int64) (*models.Participant, error) {
	if _, err := s.campaignRepo.GetByID(ctx, req.CampaignID); err != nil {
		return nil, err
	}

	exists, err := s.participantRepo.ExistsByCIN(ctx, req.CIN, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrCINAlreadyExists
	}

	birthDate, err := helpers.ParseDatePtr(req.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("%w: birthDate must be YYYY-MM-DD", apperrors.ErrValidationFailed)
	}

	participant := &models.Participant{
		CampaignID: req.CampaignID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		CIN:        req.CIN,
		BirthDate:  birthDate,
		Sex:        models.Sex(req.Sex),
		Phone:      req.Phone,
		Address:    req.Address,
		CommuneID:  req.CommuneID,
		Status:     models.ParticipantAwaiting,
		CreatedBy:  &actorID,
	}

	if err := s.participantRepo.Create(ctx, participant); err != nil {
		return nil, err
	}

	return s.participantRepo.GetByID(ctx, participant.ID)
}

// GetParticipantByID retrieves a participant by ID
func (s *participantServiceImpl) GetParticipantByID(ctx context.Context, id int64) (*models.Participant, error) {
	return s.participantRepo.GetByID(ctx, id)
}

// ListParticipants retrieves a page of a campaign's participants
func (s *participantServiceImpl) ListParticipants(ctx context.Context, campaignID int64, filter repositories.ParticipantFilter, page, size int) ([]*models.Participant, dto.PaginationInfo, error) {
	if _, err := s.campaignRepo.GetByID(ctx, campaignID); err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	participants, total, err := s.participantRepo.List(ctx, campaignID, filter, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	return participants, helpers.NewPaginationInfo(total, page, limit), nil
}

// UpdateParticipant updates a participant's fields. Any status value is
// accepted; triage ordering is not enforced.
func (s *participantServiceImpl) UpdateParticipant(ctx context.Context, id int64, req *dto.UpdateParticipantRequest, actorID int64) (*models.Participant, error) {
	participant, err := s.participantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	exists, err := s.participantRepo.ExistsByCIN(ctx, req.CIN, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrCINAlreadyExists
	}

	birthDate, err := helpers.ParseDatePtr(req.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("%w: birthDate must be YYYY-MM-DD", apperrors.ErrValidationFailed)
	}

	participant.FirstName = req.FirstName
	participant.LastName = req.LastName
	participant.CIN = req.CIN
	participant.BirthDate = birthDate
	participant.Sex = models.Sex(req.Sex)
	participant.Phone = req.Phone
	participant.Address = req.Address
	participant.CommuneID = req.CommuneID
	if req.Status != "" {
		participant.Status = models.ParticipantStatus(req.Status)
	}
	participant.UpdatedBy = &actorID

	if err := s.participantRepo.Update(ctx, participant); err != nil {
		return nil, err
	}

	return s.participantRepo.GetByID(ctx, id)
}

// Triage updates the call-center status together with the call metadata.
// Call date and note are always set as a pair.
func (s *participantServiceImpl) Triage(ctx context.Context, id int64, req *dto.TriageRequest, actorID int64) (*models.Participant, error) {
	participant, err := s.participantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	callDate := time.Now()
	if req.CallDate != nil && *req.CallDate != "" {
		parsed, err := helpers.ParseDate(*req.CallDate)
		if err != nil {
			return nil, fmt.Errorf("%w: callDate must be YYYY-MM-DD", apperrors.ErrValidationFailed)
		}
		callDate = parsed
	}

	participant.Status = models.ParticipantStatus(req.Status)
	participant.CallDate = &callDate
	participant.CallNote = &req.CallNote
	participant.UpdatedBy = &actorID

	if err := s.participantRepo.Update(ctx, participant); err != nil {
		return nil, err
	}

	return s.participantRepo.GetByID(ctx, id)
}

// ConvertToBeneficiary copies the participant's identity fields into a new
// beneficiary of the target campaign. Decision-related fields are never
// copied; the new beneficiary always starts at decision=pending.
func (s *participantServiceImpl) ConvertToBeneficiary(ctx context.Context, id int64, req *dto.ConvertParticipantRequest, actorID int64) (*models.Beneficiary, error) {
	participant, err := s.participantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.campaignRepo.GetByID(ctx, req.TargetCampaignID); err != nil {
		return nil, err
	}

	inCampaign, err := s.beneficiaryRepo.ExistsInCampaign(ctx, req.TargetCampaignID, participant.CIN)
	if err != nil {
		return nil, err
	}
	if inCampaign {
		return nil, apperrors.ErrAlreadyInCampaign
	}

	beneficiary := &models.Beneficiary{
		CampaignID: &req.TargetCampaignID,
		FirstName:  participant.FirstName,
		LastName:   participant.LastName,
		CIN:        participant.CIN,
		BirthDate:  participant.BirthDate,
		Sex:        participant.Sex,
		Phone:      participant.Phone,
		Address:    participant.Address,
		CommuneID:  participant.CommuneID,
		Decision:   models.DecisionPending,
		DeviceSide: models.DeviceSideUnknown,
		CreatedBy:  &actorID,
	}

	if err := s.beneficiaryRepo.Create(ctx, beneficiary); err != nil {
		return nil, err
	}

	return s.beneficiaryRepo.GetByID(ctx, beneficiary.ID)
}

// DeleteParticipant deletes a participant by ID
func (s *participantServiceImpl) DeleteParticipant(ctx context.Context, id int64) error {
	return s.participantRepo.Delete(ctx, id)
}
