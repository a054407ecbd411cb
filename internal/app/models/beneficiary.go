package models

import (
	"time"
)

// Beneficiary defines the decision-bearing record based on the 'beneficiaries'
// table. CampaignID is nullable for out-of-campaign cases.
type Beneficiary struct {
	ID            int64      `json:"id" db:"id"`
	CampaignID    *int64     `json:"campaignId,omitempty" db:"campaign_id"`
	FirstName     string     `json:"firstName" db:"first_name"`
	LastName      string     `json:"lastName" db:"last_name"`
	CIN           string     `json:"cin" db:"cin"` // Unique across all beneficiaries
	BirthDate     *time.Time `json:"birthDate,omitempty" db:"birth_date"`
	Sex           Sex        `json:"sex" db:"sex"`
	Phone         string     `json:"phone" db:"phone"`
	Address       string     `json:"address" db:"address"`
	CommuneID     *int64     `json:"communeId,omitempty" db:"commune_id"`
	Decision      Decision   `json:"decision" db:"decision"`
	HasBenefited  bool       `json:"hasBenefited" db:"has_benefited"`
	ChildInSchool *bool      `json:"childInSchool,omitempty" db:"child_in_school"` // nil = unknown
	DeviceSide    DeviceSide `json:"deviceSide" db:"device_side"`                  // hearing-aid campaigns only
	CreatedBy     *int64     `json:"createdBy,omitempty" db:"created_by"`
	UpdatedBy     *int64     `json:"updatedBy,omitempty" db:"updated_by"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time  `json:"updatedAt" db:"updated_at"`
	Commune       *Commune   `json:"commune,omitempty"`  // Relation, no db tag
	Campaign      *Campaign  `json:"campaign,omitempty"` // Relation, no db tag
}

// Age returns the whole years between the birth date and now. A missing birth
// date counts as age 0 so the record lands in the youngest bracket.
func (b *Beneficiary) Age(now time.Time) int {
	return AgeAt(b.BirthDate, now)
}

// AgeAt computes floor(years) between birthDate and now. Nil birth dates map
// to 0.
func AgeAt(birthDate *time.Time, now time.Time) int {
	if birthDate == nil {
		return 0
	}
	years := now.Year() - birthDate.Year()
	// Birthday not reached yet this year
	anniversary := birthDate.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}
