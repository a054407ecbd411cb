package dto

import (
	"time"

	"github.com/sanad-app/sanad-backend/internal/app/models"
)

// CreateCampaignRequest represents campaign creation data
type CreateCampaignRequest struct {
	Name                    string  `json:"name" binding:"required"`
	AssistanceTypeID        int64   `json:"assistanceTypeId" binding:"required,min=1"`
	DateStart               string  `json:"dateStart" binding:"required"` // YYYY-MM-DD
	DateEnd                 string  `json:"dateEnd" binding:"required"`   // YYYY-MM-DD
	Location                string  `json:"location" binding:"required"`
	Budget                  float64 `json:"budget" binding:"min=0"`
	PlannedBeneficiaryCount int     `json:"plannedBeneficiaryCount" binding:"min=0"`
}

// UpdateCampaignRequest represents campaign update data
type UpdateCampaignRequest CreateCampaignRequest

// CampaignResponse represents campaign information with the derived status
type CampaignResponse struct {
	ID                      int64                 `json:"id"`
	Name                    string                `json:"name"`
	AssistanceTypeID        int64                 `json:"assistanceTypeId"`
	AssistanceTypeName      string                `json:"assistanceTypeName,omitempty"`
	DateStart               string                `json:"dateStart"`
	DateEnd                 string                `json:"dateEnd"`
	Location                string                `json:"location"`
	Budget                  float64               `json:"budget"`
	PlannedBeneficiaryCount int                   `json:"plannedBeneficiaryCount"`
	Status                  models.CampaignStatus `json:"status"`
	CreatedAt               time.Time             `json:"createdAt"`
	UpdatedAt               time.Time             `json:"updatedAt"`
}

// FromCampaign converts a models.Campaign to a CampaignResponse
func FromCampaign(c *models.Campaign, now time.Time) CampaignResponse {
	if c == nil {
		return CampaignResponse{}
	}
	resp := CampaignResponse{
		ID:                      c.ID,
		Name:                    c.Name,
		AssistanceTypeID:        c.AssistanceTypeID,
		DateStart:               c.DateStart.Format("2006-01-02"),
		DateEnd:                 c.DateEnd.Format("2006-01-02"),
		Location:                c.Location,
		Budget:                  c.Budget,
		PlannedBeneficiaryCount: c.PlannedBeneficiaryCount,
		Status:                  c.Status(now),
		CreatedAt:               c.CreatedAt,
		UpdatedAt:               c.UpdatedAt,
	}
	if c.AssistanceType != nil {
		resp.AssistanceTypeName = c.AssistanceType.Name
	}
	return resp
}
