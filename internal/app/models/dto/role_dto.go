package dto

import (
	"time"

	"github.com/sanad-app/sanad-backend/internal/app/models"
)

// CreateRoleRequest represents role creation data. Permission keys must come
// from the fixed catalog.
type CreateRoleRequest struct {
	Name        string   `json:"name" binding:"required"`
	DisplayName string   `json:"displayName" binding:"required"`
	Permissions []string `json:"permissions" binding:"required"`
	IsActive    *bool    `json:"isActive,omitempty"`
}

// UpdateRoleRequest represents role update data
type UpdateRoleRequest CreateRoleRequest

// RoleResponse represents role information
type RoleResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"displayName"`
	Permissions []string  `json:"permissions"`
	IsActive    bool      `json:"isActive"`
	UserCount   int64     `json:"userCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FromRole converts a models.Role to a RoleResponse
func FromRole(r *models.Role, userCount int64) RoleResponse {
	if r == nil {
		return RoleResponse{}
	}
	perms := r.Permissions
	if perms == nil {
		perms = []string{}
	}
	return RoleResponse{
		ID:          r.ID,
		Name:        r.Name,
		DisplayName: r.DisplayName,
		Permissions: perms,
		IsActive:    r.IsActive,
		UserCount:   userCount,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
