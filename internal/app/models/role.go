package models

import (
	"time"
)

// Role defines a named set of permission keys based on the 'roles' table
type Role struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	DisplayName string    `json:"displayName" db:"display_name"`
	Permissions []string  `json:"permissions" db:"permissions"`
	IsActive    bool      `json:"isActive" db:"is_active"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// IsProtected reports whether the role is the immutable admin_si role.
func (r *Role) IsProtected() bool {
	return r.Name == AdminRoleName
}

// HasPermission reports whether the role carries the given permission key.
func (r *Role) HasPermission(key string) bool {
	for _, p := range r.Permissions {
		if p == key {
			return true
		}
	}
	return false
}

// Permission keys form a fixed flat catalog. There is no hierarchy and no
// wildcard expansion.
const (
	PermCampaignsManage     = "campaigns.manage"
	PermParticipantsManage  = "participants.manage"
	PermBeneficiariesManage = "beneficiaries.manage"
	PermMedicalManage       = "medical.manage"
	PermKafalaManage        = "kafala.manage"
	PermDictionariesManage  = "dictionaries.manage"
	PermReportsView         = "reports.view"
	PermUsersManage         = "users.manage"
	PermRolesManage         = "roles.manage"
	PermAuditView           = "audit.view"
)

// PermissionCatalog lists every assignable permission key.
var PermissionCatalog = []string{
	PermCampaignsManage,
	PermParticipantsManage,
	PermBeneficiariesManage,
	PermMedicalManage,
	PermKafalaManage,
	PermDictionariesManage,
	PermReportsView,
	PermUsersManage,
	PermRolesManage,
	PermAuditView,
}

// IsKnownPermission reports whether key belongs to the fixed catalog.
func IsKnownPermission(key string) bool {
	for _, p := range PermissionCatalog {
		if p == key {
			return true
		}
	}
	return false
}
