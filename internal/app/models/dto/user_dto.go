package dto

import (
	"time"

	"github.com/sanad-app/sanad-backend/internal/app/models"
)

// UserResponse represents basic user information
type UserResponse struct {
	ID            int64      `json:"id"`
	Email         string     `json:"email"`
	FirstName     string     `json:"firstName"`
	LastName      string     `json:"lastName"`
	Phone         string     `json:"phone"`
	RoleID        int64      `json:"roleId"`
	RoleName      string     `json:"roleName,omitempty"`
	IsActive      bool       `json:"isActive"`
	EmailVerified bool       `json:"emailVerified"`
	LastLoginAt   *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// FromUser converts a models.User to a UserResponse
func FromUser(u *models.User) UserResponse {
	if u == nil {
		return UserResponse{}
	}
	resp := UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Phone:         u.Phone,
		RoleID:        u.RoleID,
		IsActive:      u.IsActive,
		EmailVerified: u.EmailVerified,
		LastLoginAt:   u.LastLoginAt,
		CreatedAt:     u.CreatedAt,
	}
	if u.Role != nil {
		resp.RoleName = u.Role.Name
	}
	return resp
}

// UpdateUserRequest represents profile update data
type UpdateUserRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Phone     string `json:"phone"`
}

// AssignRoleRequest changes a user's role
type AssignRoleRequest struct {
	RoleID int64 `json:"roleId" binding:"required,min=1"`
}

// AdminResetPasswordRequest sets a new password for another user
type AdminResetPasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// AuditLogResponse represents one audit trail entry
type AuditLogResponse struct {
	ID        int64       `json:"id"`
	Action    string      `json:"action"`
	Actor     string      `json:"actor"`
	ActorID   *int64      `json:"actorId,omitempty"`
	Entity    string      `json:"entity"`
	EntityID  int64       `json:"entityId"`
	Before    interface{} `json:"before,omitempty"`
	After     interface{} `json:"after,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
}

// FromAuditLog converts a models.AuditLog to its response shape. Entries with
// no actor are attributed to "system".
func FromAuditLog(a *models.AuditLog) AuditLogResponse {
	if a == nil {
		return AuditLogResponse{}
	}
	resp := AuditLogResponse{
		ID:        a.ID,
		Action:    a.Action,
		Actor:     "system",
		ActorID:   a.ActorID,
		Entity:    a.Entity,
		EntityID:  a.EntityID,
		CreatedAt: a.CreatedAt,
	}
	if a.ActorID != nil && a.ActorEmail != "" {
		resp.Actor = a.ActorEmail
	}
	if len(a.Before) > 0 {
		resp.Before = a.Before
	}
	if len(a.After) > 0 {
		resp.After = a.After
	}
	return resp
}
