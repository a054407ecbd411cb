package models

import (
	"time"
)

// Campaign defines the campaign model based on the 'campaigns' table
type Campaign struct {
	ID                       int64           `json:"id" db:"id" example:"1"`
	Name                     string          `json:"name" db:"name" example:"Hearing Aid Caravan 2026"`
	AssistanceTypeID         int64           `json:"assistanceTypeId" db:"assistance_type_id" example:"3"`
	DateStart                time.Time       `json:"dateStart" db:"date_start" example:"2026-03-01T00:00:00Z"`
	DateEnd                  time.Time       `json:"dateEnd" db:"date_end" example:"2026-03-15T00:00:00Z"`
	Location                 string          `json:"location" db:"location" example:"Agadir"`
	Budget                   float64         `json:"budget" db:"budget" example:"100000"`
	PlannedBeneficiaryCount  int             `json:"plannedBeneficiaryCount" db:"planned_beneficiary_count" example:"200"`
	CreatedAt                time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt                time.Time       `json:"updatedAt" db:"updated_at"`
	AssistanceType           *AssistanceType `json:"assistanceType,omitempty"` // Relation, no db tag
}

// Status derives the campaign lifecycle state from its date window.
func (c *Campaign) Status(now time.Time) CampaignStatus {
	today := now.Truncate(24 * time.Hour)
	switch {
	case today.Before(c.DateStart):
		return CampaignUpcoming
	case today.After(c.DateEnd):
		return CampaignEnded
	default:
		return CampaignOngoing
	}
}
