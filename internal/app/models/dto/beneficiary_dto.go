package dto

import (
	"time"

	"github.com/sanad-app/sanad-backend/internal/app/models"
)

// CreateBeneficiaryRequest represents beneficiary creation data
type CreateBeneficiaryRequest struct {
	CampaignID    *int64  `json:"campaignId,omitempty"`
	FirstName     string  `json:"firstName" binding:"required"`
	LastName      string  `json:"lastName" binding:"required"`
	CIN           string  `json:"cin" binding:"required"`
	BirthDate     *string `json:"birthDate,omitempty"`
	Sex           string  `json:"sex" binding:"required,oneof=M F"`
	Phone         string  `json:"phone"`
	Address       string  `json:"address"`
	CommuneID     *int64  `json:"communeId,omitempty"`
	Decision      string  `json:"decision" binding:"omitempty,oneof=accepted pending refused"`
	HasBenefited  bool    `json:"hasBenefited"`
	ChildInSchool *bool   `json:"childInSchool,omitempty"`
	DeviceSide    string  `json:"deviceSide" binding:"omitempty,oneof=unilateral bilateral unknown"`
}

// UpdateBeneficiaryRequest represents beneficiary update data
type UpdateBeneficiaryRequest CreateBeneficiaryRequest

// DecisionRequest updates the eligibility decision. All transitions are free;
// there is no terminal state.
type DecisionRequest struct {
	Decision string `json:"decision" binding:"required,oneof=accepted pending refused"`
}

// BeneficiaryResponse represents beneficiary information
type BeneficiaryResponse struct {
	ID            int64             `json:"id"`
	CampaignID    *int64            `json:"campaignId,omitempty"`
	CampaignName  string            `json:"campaignName,omitempty"`
	FirstName     string            `json:"firstName"`
	LastName      string            `json:"lastName"`
	CIN           string            `json:"cin"`
	BirthDate     *string           `json:"birthDate,omitempty"`
	Sex           models.Sex        `json:"sex"`
	Phone         string            `json:"phone"`
	Address       string            `json:"address"`
	CommuneID     *int64            `json:"communeId,omitempty"`
	CommuneName   string            `json:"communeName"`
	Decision      models.Decision   `json:"decision"`
	HasBenefited  bool              `json:"hasBenefited"`
	ChildInSchool *bool             `json:"childInSchool,omitempty"`
	DeviceSide    models.DeviceSide `json:"deviceSide"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// FromBeneficiary converts a models.Beneficiary to a BeneficiaryResponse
func FromBeneficiary(b *models.Beneficiary) BeneficiaryResponse {
	if b == nil {
		return BeneficiaryResponse{}
	}
	resp := BeneficiaryResponse{
		ID:            b.ID,
		CampaignID:    b.CampaignID,
		FirstName:     b.FirstName,
		LastName:      b.LastName,
		CIN:           b.CIN,
		Sex:           b.Sex,
		Phone:         b.Phone,
		Address:       b.Address,
		CommuneID:     b.CommuneID,
		CommuneName:   NotSpecified,
		Decision:      b.Decision,
		HasBenefited:  b.HasBenefited,
		ChildInSchool: b.ChildInSchool,
		DeviceSide:    b.DeviceSide,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
	if b.BirthDate != nil {
		bd := b.BirthDate.Format("2006-01-02")
		resp.BirthDate = &bd
	}
	if b.Commune != nil {
		resp.CommuneName = b.Commune.Name
	}
	if b.Campaign != nil {
		resp.CampaignName = b.Campaign.Name
	}
	return resp
}
