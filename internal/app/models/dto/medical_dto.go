package dto

import (
	"time"

	"github.com/sanad-app/sanad-backend/internal/app/models"
)

// CreateMedicalAssistanceRequest represents device loan/donation creation data
type CreateMedicalAssistanceRequest struct {
	AssistanceTypeID  int64   `json:"assistanceTypeId" binding:"required,min=1"`
	AssistanceSubType *string `json:"assistanceSubType,omitempty"`
	DonationNature    string  `json:"donationNature" binding:"required"`
	DonationStateID   *int64  `json:"donationStateId,omitempty"`
	FileStateID       *int64  `json:"fileStateId,omitempty"`
	AssistanceDate    string  `json:"assistanceDate" binding:"required"` // YYYY-MM-DD
	UsageDurationDays *int    `json:"usageDurationDays,omitempty" binding:"omitempty,min=1"`
}

// UpdateMedicalAssistanceRequest represents update data
type UpdateMedicalAssistanceRequest CreateMedicalAssistanceRequest

// MedicalAssistanceResponse represents a medical assistance record
type MedicalAssistanceResponse struct {
	ID                 int64      `json:"id"`
	BeneficiaryID      int64      `json:"beneficiaryId"`
	AssistanceTypeID   int64      `json:"assistanceTypeId"`
	AssistanceTypeName string     `json:"assistanceTypeName"`
	AssistanceSubType  *string    `json:"assistanceSubType,omitempty"`
	DonationNature     string     `json:"donationNature"`
	DonationStateName  string     `json:"donationStateName"`
	FileStateName      string     `json:"fileStateName"`
	AssistanceDate     string     `json:"assistanceDate"`
	UsageDurationDays  *int       `json:"usageDurationDays,omitempty"`
	ExpectedReturnDate *string    `json:"expectedReturnDate,omitempty"`
	ActualReturnDate   *string    `json:"actualReturnDate,omitempty"`
	Returned           bool       `json:"returned"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// FromMedicalAssistance converts a models.MedicalAssistance to its response
// shape. Missing dictionary relations degrade to the placeholder.
func FromMedicalAssistance(m *models.MedicalAssistance) MedicalAssistanceResponse {
	if m == nil {
		return MedicalAssistanceResponse{}
	}
	resp := MedicalAssistanceResponse{
		ID:                 m.ID,
		BeneficiaryID:      m.BeneficiaryID,
		AssistanceTypeID:   m.AssistanceTypeID,
		AssistanceTypeName: NotSpecified,
		AssistanceSubType:  m.AssistanceSubType,
		DonationNature:     m.DonationNature,
		DonationStateName:  NotSpecified,
		FileStateName:      NotSpecified,
		AssistanceDate:     m.AssistanceDate.Format("2006-01-02"),
		UsageDurationDays:  m.UsageDurationDays,
		Returned:           m.Returned,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
	if m.ExpectedReturnDate != nil {
		d := m.ExpectedReturnDate.Format("2006-01-02")
		resp.ExpectedReturnDate = &d
	}
	if m.ActualReturnDate != nil {
		d := m.ActualReturnDate.Format("2006-01-02")
		resp.ActualReturnDate = &d
	}
	if m.AssistanceType != nil {
		resp.AssistanceTypeName = m.AssistanceType.Name
	}
	if m.DonationState != nil {
		resp.DonationStateName = m.DonationState.Name
	}
	if m.FileState != nil {
		resp.FileStateName = m.FileState.Name
	}
	return resp
}

// ReturnRequest records a device return. The date defaults to today.
type ReturnRequest struct {
	ReturnDate *string `json:"returnDate,omitempty" binding:"omitempty"` // YYYY-MM-DD
}
