package models

import (
	"encoding/json"
	"time"
)

// AuditLog is an append-only record of a sensitive admin action. ActorID is
// nil when the action was taken by the system itself.
type AuditLog struct {
	ID        int64           `json:"id" db:"id"`
	Action    string          `json:"action" db:"action"`
	ActorID   *int64          `json:"actorId,omitempty" db:"actor_id"`
	Entity    string          `json:"entity" db:"entity"`
	EntityID  int64           `json:"entityId" db:"entity_id"`
	Before    json.RawMessage `json:"before,omitempty" db:"before_state"`
	After     json.RawMessage `json:"after,omitempty" db:"after_state"`
	CreatedAt time.Time       `json:"createdAt" db:"created_at"`
	ActorEmail string         `json:"actorEmail,omitempty"` // Relation, no db tag
}

// Audit action names
const (
	AuditUserActiveToggled = "user.active_toggled"
	AuditUserRoleChanged   = "user.role_changed"
	AuditUserPasswordReset = "user.password_reset"
	AuditUserDeleted       = "user.deleted"
	AuditRoleUpdated       = "role.updated"
	AuditRoleDeleted       = "role.deleted"
)
