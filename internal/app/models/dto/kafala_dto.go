package dto

import (
	"time"

	"github.com/sanad-app/sanad-backend/internal/app/models"
)

// CreateKafalaRequest represents guardianship case creation data. Reference is
// auto-generated when omitted.
type CreateKafalaRequest struct {
	Reference      string  `json:"reference"`
	FatherName     string  `json:"fatherName" binding:"required"`
	FatherCIN      string  `json:"fatherCin" binding:"required"`
	MotherName     string  `json:"motherName" binding:"required"`
	MotherCIN      string  `json:"motherCin" binding:"required"`
	MarriageDate   *string `json:"marriageDate,omitempty"`
	ChildName      string  `json:"childName" binding:"required"`
	ChildBirthDate *string `json:"childBirthDate,omitempty"`
	ChildSex       string  `json:"childSex" binding:"required,oneof=M F"`
}

// UpdateKafalaRequest represents guardianship case update data
type UpdateKafalaRequest CreateKafalaRequest

// KafalaResponse represents a guardianship case
type KafalaResponse struct {
	ID             int64      `json:"id"`
	Reference      string     `json:"reference"`
	FatherName     string     `json:"fatherName"`
	FatherCIN      string     `json:"fatherCin"`
	MotherName     string     `json:"motherName"`
	MotherCIN      string     `json:"motherCin"`
	MarriageDate   *string    `json:"marriageDate,omitempty"`
	ChildName      string     `json:"childName"`
	ChildBirthDate *string    `json:"childBirthDate,omitempty"`
	ChildSex       models.Sex `json:"childSex"`
	HasDocument    bool       `json:"hasDocument"`
	DocumentName   *string    `json:"documentName,omitempty"`
	DocumentSize   *int64     `json:"documentSize,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// FromKafala converts a models.Kafala to a KafalaResponse
func FromKafala(k *models.Kafala) KafalaResponse {
	if k == nil {
		return KafalaResponse{}
	}
	resp := KafalaResponse{
		ID:           k.ID,
		Reference:    k.Reference,
		FatherName:   k.FatherName,
		FatherCIN:    k.FatherCIN,
		MotherName:   k.MotherName,
		MotherCIN:    k.MotherCIN,
		ChildName:    k.ChildName,
		ChildSex:     k.ChildSex,
		HasDocument:  k.HasDocument(),
		DocumentName: k.DocumentName,
		DocumentSize: k.DocumentSize,
		CreatedAt:    k.CreatedAt,
		UpdatedAt:    k.UpdatedAt,
	}
	if k.MarriageDate != nil {
		d := k.MarriageDate.Format("2006-01-02")
		resp.MarriageDate = &d
	}
	if k.ChildBirthDate != nil {
		d := k.ChildBirthDate.Format("2006-01-02")
		resp.ChildBirthDate = &d
	}
	return resp
}
