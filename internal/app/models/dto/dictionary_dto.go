package dto

import (
	"time"

	"github.com/sanad-app/sanad-backend/internal/app/models"
)

// DictionaryEntryRequest represents reference-data creation/update data. The
// parent is only meaningful for assistance_types sub-types.
type DictionaryEntryRequest struct {
	Name     string `json:"name" binding:"required"`
	ParentID *int64 `json:"parentId,omitempty"`
}

// DictionaryEntryResponse represents one reference-data row
type DictionaryEntryResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	ParentID  *int64    `json:"parentId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromDictionaryEntry converts a models.DictionaryEntry to its response shape
func FromDictionaryEntry(e *models.DictionaryEntry) DictionaryEntryResponse {
	if e == nil {
		return DictionaryEntryResponse{}
	}
	return DictionaryEntryResponse{
		ID:        e.ID,
		Name:      e.Name,
		ParentID:  e.ParentID,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
