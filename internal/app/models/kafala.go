package models

import (
	"fmt"
	"time"
)

// Kafala defines an independent guardianship case based on the 'kafalas' table.
// At most one PDF document is attached per case.
type Kafala struct {
	ID             int64      `json:"id" db:"id"`
	Reference      string     `json:"reference" db:"reference"` // KAF-<year>-<seq>, unique
	FatherName     string     `json:"fatherName" db:"father_name"`
	FatherCIN      string     `json:"fatherCin" db:"father_cin"`
	MotherName     string     `json:"motherName" db:"mother_name"`
	MotherCIN      string     `json:"motherCin" db:"mother_cin"`
	MarriageDate   *time.Time `json:"marriageDate,omitempty" db:"marriage_date"`
	ChildName      string     `json:"childName" db:"child_name"`
	ChildBirthDate *time.Time `json:"childBirthDate,omitempty" db:"child_birth_date"`
	ChildSex       Sex        `json:"childSex" db:"child_sex"`
	DocumentName   *string    `json:"documentName,omitempty" db:"document_name"`
	DocumentPath   *string    `json:"-" db:"document_path"`
	DocumentMime   *string    `json:"documentMime,omitempty" db:"document_mime"`
	DocumentSize   *int64     `json:"documentSize,omitempty" db:"document_size"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time  `json:"updatedAt" db:"updated_at"`
}

// HasDocument reports whether a PDF document is attached to the case.
func (k *Kafala) HasDocument() bool {
	return k.DocumentPath != nil && *k.DocumentPath != ""
}

// KafalaReference formats the auto-generated case reference for a given year
// and sequence number, e.g. KAF-2026-0042.
func KafalaReference(year int, seq int64) string {
	return fmt.Sprintf("KAF-%d-%04d", year, seq)
}
