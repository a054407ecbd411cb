package models

import (
	"time"
)

// Participant defines the intake/triage record scoped to a campaign,
// based on the 'participants' table
type Participant struct {
	ID         int64             `json:"id" db:"id"`
	CampaignID int64             `json:"campaignId" db:"campaign_id"`
	FirstName  string            `json:"firstName" db:"first_name"`
	LastName   string            `json:"lastName" db:"last_name"`
	CIN        string            `json:"cin" db:"cin"` // National identity number, unique across all participants
	BirthDate  *time.Time        `json:"birthDate,omitempty" db:"birth_date"`
	Sex        Sex               `json:"sex" db:"sex"`
	Phone      string            `json:"phone" db:"phone"`
	Address    string            `json:"address" db:"address"`
	CommuneID  *int64            `json:"communeId,omitempty" db:"commune_id"`
	Status     ParticipantStatus `json:"status" db:"status"`
	CallDate   *time.Time        `json:"callDate,omitempty" db:"call_date"`
	CallNote   *string           `json:"callNote,omitempty" db:"call_note"`
	CreatedBy  *int64            `json:"createdBy,omitempty" db:"created_by"`
	UpdatedBy  *int64            `json:"updatedBy,omitempty" db:"updated_by"`
	CreatedAt  time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time         `json:"updatedAt" db:"updated_at"`
	Commune    *Commune          `json:"commune,omitempty"` // Relation, no db tag
}
