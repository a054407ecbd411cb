package services

import (
	"context"
	"time"

	"github.com/sanad-app/sanad-backend/internal/app/models"
	"github.com/sanad-app/sanad-backend/internal/app/models/dto"
	"github.com/sanad-app/sanad-backend/internal/app/repositories"
	"github.com/sanad-app/sanad-backend/internal/pkg/helpers"
)

// StatsService defines the interface for campaign statistics
type StatsService interface {
	CampaignStats(ctx context.Context, campaignID int64) (*dto.CampaignStatsResponse, error)
}

// statsServiceImpl implements the StatsService interface
type statsServiceImpl struct {
	campaignRepo    *repositories.CampaignRepository
	participantRepo *repositories.ParticipantRepository
	beneficiaryRepo *repositories.BeneficiaryRepository

	hearingAidTypeName string
	unilateralFactor   int
	bilateralFactor    int
}

// NewStatsService creates a new statistics service instance
func NewStatsService(
	campaignRepo *repositories.CampaignRepository,
	participantRepo *repositories.ParticipantRepository,
	beneficiaryRepo *repositories.BeneficiaryRepository,
	hearingAidTypeName string,
	unilateralFactor, bilateralFactor int,
) StatsService {
	return &statsServiceImpl{
		campaignRepo:       campaignRepo,
		participantRepo:    participantRepo,
		beneficiaryRepo:    beneficiaryRepo,
		hearingAidTypeName: hearingAidTypeName,
		unilateralFactor:   unilateralFactor,
		bilateralFactor:    bilateralFactor,
	}
}

// CampaignStats aggregates triage, decision, demographic and financial
// figures for one campaign.
func (s *statsServiceImpl) CampaignStats(ctx context.Context, campaignID int64) (*dto.CampaignStatsResponse, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	participants, err := s.participantRepo.ListAllByCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	beneficiaries, err := s.beneficiaryRepo.ListAllByCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	resp := &dto.CampaignStatsResponse{
		Campaign:      dto.FromCampaign(campaign, now),
		Participants:  participantStats(participants, now),
		Beneficiaries: beneficiaryStats(beneficiaries, now),
	}

	accepted := resp.Beneficiaries.Accepted
	pending := resp.Beneficiaries.Pending

	if resp.Participants.Total > 0 {
		resp.CoverageRate = helpers.Round2(float64(accepted) / float64(resp.Participants.Total) * 100)
	}
	if resp.Beneficiaries.Total > 0 {
		resp.AcceptanceRate = helpers.Round2(float64(accepted) / float64(resp.Beneficiaries.Total) * 100)
	}
	resp.UnitPrice, resp.CreditNeeded = financials(campaign.Budget, accepted, pending)

	if campaign.AssistanceType != nil && campaign.AssistanceType.Name == s.hearingAidTypeName {
		resp.Devices = s.deviceStats(beneficiaries)
	}

	return resp, nil
}

// financials derives the per-beneficiary price and the credit still needed
// for pending decisions. Both are zero while nobody has been accepted.
func financials(budget float64, accepted, pending int) (unitPrice, creditNeeded float64) {
	if accepted == 0 {
		return 0, 0
	}
	unitPrice = helpers.Round2(budget / float64(accepted))
	creditNeeded = helpers.Round2(float64(pending) * unitPrice)
	return unitPrice, creditNeeded
}

func participantStats(participants []*models.Participant, now time.Time) dto.ParticipantStats {
	stats := dto.ParticipantStats{Total: len(participants)}
	for _, p := range participants {
		switch p.Status {
		case models.ParticipantAwaiting:
			stats.Awaiting++
		case models.ParticipantConfirmed:
			stats.Confirmed++
		case models.ParticipantDeclined:
			stats.Declined++
		}
		tallySex(&stats.BySex, p.Sex)
		tallyAge(&stats.ByAge, models.AgeAt(p.BirthDate, now))
	}
	return stats
}

func beneficiaryStats(beneficiaries []*models.Beneficiary, now time.Time) dto.BeneficiaryStats {
	stats := dto.BeneficiaryStats{Total: len(beneficiaries)}
	for _, b := range beneficiaries {
		switch b.Decision {
		case models.DecisionAccepted:
			stats.Accepted++
		case models.DecisionPending:
			stats.Pending++
		case models.DecisionRefused:
			stats.Refused++
		}
		tallySex(&stats.BySex, b.Sex)
		tallyAge(&stats.ByAge, models.AgeAt(b.BirthDate, now))
	}
	return stats
}

// deviceStats counts loaned devices among accepted beneficiaries only
func (s *statsServiceImpl) deviceStats(beneficiaries []*models.Beneficiary) *dto.DeviceStats {
	devices := &dto.DeviceStats{}
	for _, b := range beneficiaries {
		if b.Decision != models.DecisionAccepted {
			continue
		}
		switch b.DeviceSide {
		case models.DeviceSideUnilateral:
			devices.Unilateral++
		case models.DeviceSideBilateral:
			devices.Bilateral++
		}
	}
	devices.DeviceCount = devices.Unilateral*s.unilateralFactor + devices.Bilateral*s.bilateralFactor
	return devices
}

func tallySex(counts *dto.SexCounts, sex models.Sex) {
	switch sex {
	case models.SexMale:
		counts.Male++
	case models.SexFemale:
		counts.Female++
	}
}

func tallyAge(brackets *dto.AgeBrackets, age int) {
	switch {
	case age < 15:
		brackets.Under15++
	case age < 65:
		brackets.From15To64++
	default:
		brackets.Over65++
	}
}
