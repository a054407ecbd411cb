package models

import (
	"time"
)

// MedicalAssistance defines a device loan/donation record attached to a
// beneficiary, based on the 'medical_assistances' table
type MedicalAssistance struct {
	ID                 int64           `json:"id" db:"id"`
	BeneficiaryID      int64           `json:"beneficiaryId" db:"beneficiary_id"`
	AssistanceTypeID   int64           `json:"assistanceTypeId" db:"assistance_type_id"`
	AssistanceSubType  *string         `json:"assistanceSubType,omitempty" db:"assistance_sub_type"`
	DonationNature     string          `json:"donationNature" db:"donation_nature"`
	DonationStateID    *int64          `json:"donationStateId,omitempty" db:"donation_state_id"`
	FileStateID        *int64          `json:"fileStateId,omitempty" db:"file_state_id"`
	AssistanceDate     time.Time       `json:"assistanceDate" db:"assistance_date"`
	UsageDurationDays  *int            `json:"usageDurationDays,omitempty" db:"usage_duration_days"`
	ExpectedReturnDate *time.Time      `json:"expectedReturnDate,omitempty" db:"expected_return_date"`
	ActualReturnDate   *time.Time      `json:"actualReturnDate,omitempty" db:"actual_return_date"`
	Returned           bool            `json:"returned" db:"returned"`
	CreatedAt          time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time       `json:"updatedAt" db:"updated_at"`
	AssistanceType     *AssistanceType `json:"assistanceType,omitempty"` // Relation, no db tag
	DonationState      *DonationState  `json:"donationState,omitempty"`  // Relation, no db tag
	FileState          *FileState      `json:"fileState,omitempty"`      // Relation, no db tag
}

// ComputeExpectedReturn derives the expected return date from the assistance
// date and the loan duration. It returns nil when no duration is set.
func (m *MedicalAssistance) ComputeExpectedReturn() *time.Time {
	if m.UsageDurationDays == nil {
		return nil
	}
	d := m.AssistanceDate.AddDate(0, 0, *m.UsageDurationDays)
	return &d
}
