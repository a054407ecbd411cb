package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sanad-app/sanad-backend/internal/app/repositories"
	"github.com/sanad-app/sanad-backend/internal/pkg/pdfreport"
)

// ReportService defines the interface for PDF report generation
type ReportService interface {
	CampaignStatsPDF(ctx context.Context, campaignID int64) ([]byte, string, error)
	KafalaSheetPDF(ctx context.Context, kafalaID int64) ([]byte, string, error)
}

// reportServiceImpl implements the ReportService interface
type reportServiceImpl struct {
	statsService StatsService
	kafalaRepo   *repositories.KafalaRepository
	generator    *pdfreport.Generator
}

// NewReportService creates a new report service instance
func NewReportService(statsService StatsService, kafalaRepo *repositories.KafalaRepository, generator *pdfreport.Generator) ReportService {
	return &reportServiceImpl{
		statsService: statsService,
		kafalaRepo:   kafalaRepo,
		generator:    generator,
	}
}

// CampaignStatsPDF renders the statistics report of a campaign
func (s *reportServiceImpl) CampaignStatsPDF(ctx context.Context, campaignID int64) ([]byte, string, error) {
	stats, err := s.statsService.CampaignStats(ctx, campaignID)
	if err != nil {
		return nil, "", err
	}
	data, err := s.generator.CampaignStats(stats)
	if err != nil {
		return nil, "", fmt.Errorf("error rendering campaign report: %w", err)
	}
	name := fmt.Sprintf("rapport_%s_%s.pdf", sanitizeFilePart(stats.Campaign.Name), time.Now().Format("2006-01-02"))
	return data, name, nil
}

// KafalaSheetPDF renders the case sheet of a kafala record
func (s *reportServiceImpl) KafalaSheetPDF(ctx context.Context, kafalaID int64) ([]byte, string, error) {
	kafala, err := s.kafalaRepo.GetByID(ctx, kafalaID)
	if err != nil {
		return nil, "", err
	}
	data, err := s.generator.KafalaSheet(kafala)
	if err != nil {
		return nil, "", fmt.Errorf("error rendering kafala sheet: %w", err)
	}
	return data, fmt.Sprintf("kafala_%s.pdf", sanitizeFilePart(kafala.Reference)), nil
}
