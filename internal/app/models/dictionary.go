package models

import "time"

// Commune is a static administrative-division lookup entry
type Commune struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// AssistanceType is a lookup entry for a kind of assistance. Sub-types
// reference their parent type through ParentID.
type AssistanceType struct {
	ID        int64           `json:"id" db:"id"`
	Name      string          `json:"name" db:"name"`
	ParentID  *int64          `json:"parentId,omitempty" db:"parent_id"`
	CreatedAt time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time       `json:"updatedAt" db:"updated_at"`
	Parent    *AssistanceType `json:"parent,omitempty"` // Relation, no db tag
}

// DonationState is a lookup entry for the state of a donated device
type DonationState struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// FileState is a lookup entry for the administrative state of a case file
type FileState struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// DictionaryEntry is the uniform row shape served by the dictionary CRUD
// surface regardless of the underlying table.
type DictionaryEntry struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	ParentID  *int64    `json:"parentId,omitempty" db:"parent_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// DictionaryKind enumerates the reference tables exposed through the generic
// dictionary endpoints. The set is closed; unknown kinds are a not-found.
type DictionaryKind string

const (
	DictCommunes        DictionaryKind = "communes"
	DictAssistanceTypes DictionaryKind = "assistance_types"
	DictDonationStates  DictionaryKind = "donation_states"
	DictFileStates      DictionaryKind = "file_states"
)
