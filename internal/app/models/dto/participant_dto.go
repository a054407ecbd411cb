package dto

import (
	"time"

	"github.com/sanad-app/sanad-backend/internal/app/models"
)

// CreateParticipantRequest represents manual participant intake data
type CreateParticipantRequest struct {
	CampaignID int64   `json:"campaignId"` // taken from the route, ignored in the body
	FirstName  string  `json:"firstName" binding:"required"`
	LastName   string  `json:"lastName" binding:"required"`
	CIN        string  `json:"cin" binding:"required"`
	BirthDate  *string `json:"birthDate,omitempty"` // YYYY-MM-DD
	Sex        string  `json:"sex" binding:"required,oneof=M F"`
	Phone      string  `json:"phone"`
	Address    string  `json:"address"`
	CommuneID  *int64  `json:"communeId,omitempty"`
}

// UpdateParticipantRequest represents participant update data. Status updates
// accept any enum value; the call-center workflow is not enforced as a strict
// state machine.
type UpdateParticipantRequest struct {
	FirstName string  `json:"firstName" binding:"required"`
	LastName  string  `json:"lastName" binding:"required"`
	CIN       string  `json:"cin" binding:"required"`
	BirthDate *string `json:"birthDate,omitempty"`
	Sex       string  `json:"sex" binding:"required,oneof=M F"`
	Phone     string  `json:"phone"`
	Address   string  `json:"address"`
	CommuneID *int64  `json:"communeId,omitempty"`
	Status    string  `json:"status" binding:"omitempty,oneof=awaiting yes no"`
}

// TriageRequest updates the triage status together with the call metadata.
type TriageRequest struct {
	Status   string  `json:"status" binding:"required,oneof=awaiting yes no"`
	CallDate *string `json:"callDate,omitempty"` // YYYY-MM-DD, defaults to today
	CallNote string  `json:"callNote"`
}

// ConvertParticipantRequest converts a participant into a beneficiary of the
// target campaign.
type ConvertParticipantRequest struct {
	TargetCampaignID int64 `json:"targetCampaignId" binding:"required,min=1"`
}

// ParticipantResponse represents participant information
type ParticipantResponse struct {
	ID          int64      `json:"id"`
	CampaignID  int64      `json:"campaignId"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	CIN         string     `json:"cin"`
	BirthDate   *string    `json:"birthDate,omitempty"`
	Sex         models.Sex `json:"sex"`
	Phone       string     `json:"phone"`
	Address     string     `json:"address"`
	CommuneID   *int64     `json:"communeId,omitempty"`
	CommuneName string     `json:"communeName"`
	Status      string     `json:"status"`
	CallDate    *time.Time `json:"callDate,omitempty"`
	CallNote    *string    `json:"callNote,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// FromParticipant converts a models.Participant to a ParticipantResponse.
// A missing commune relation degrades to the "Not specified" placeholder.
func FromParticipant(p *models.Participant) ParticipantResponse {
	if p == nil {
		return ParticipantResponse{}
	}
	resp := ParticipantResponse{
		ID:          p.ID,
		CampaignID:  p.CampaignID,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		CIN:         p.CIN,
		Sex:         p.Sex,
		Phone:       p.Phone,
		Address:     p.Address,
		CommuneID:   p.CommuneID,
		CommuneName: NotSpecified,
		Status:      string(p.Status),
		CallDate:    p.CallDate,
		CallNote:    p.CallNote,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.BirthDate != nil {
		bd := p.BirthDate.Format("2006-01-02")
		resp.BirthDate = &bd
	}
	if p.Commune != nil {
		resp.CommuneName = p.Commune.Name
	}
	return resp
}

// NotSpecified is the placeholder used when a nullable relation is absent.
const NotSpecified = "Not specified"
