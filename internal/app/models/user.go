package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID            int64      `json:"id" db:"id" example:"1"`
	Email         string     `json:"email" db:"email" example:"agent@sanad.ma"`
	Password      string     `json:"-" db:"password"` // Hashed password, excluded from JSON
	FirstName     string     `json:"firstName" db:"first_name" example:"Amina"`
	LastName      string     `json:"lastName" db:"last_name" example:"Benali"`
	Phone         string     `json:"phone" db:"phone"`
	RoleID        int64      `json:"roleId" db:"role_id"`
	IsActive      bool       `json:"isActive" db:"is_active" example:"true"`
	EmailVerified bool       `json:"emailVerified" db:"email_verified"`
	LastLoginAt   *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time  `json:"updatedAt" db:"updated_at"`
	Role          *Role      `json:"role,omitempty"` // Relation, no db tag
}
