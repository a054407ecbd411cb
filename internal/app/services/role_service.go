package services

import (
	"context"
	"encoding/json"

	"github.com/sanad-app/sanad-backend/internal/app/models"
	"github.com/sanad-app/sanad-backend/internal/app/models/dto"
	"github.com/sanad-app/sanad-backend/internal/app/repositories"
	"github.com/sanad-app/sanad-backend/internal/pkg/apperrors"
	"github.com/sanad-app/sanad-backend/internal/pkg/logger"
)

// RoleService defines the interface for role operations
type RoleService interface {
	CreateRole(ctx context.Context, req *dto.CreateRoleRequest) (*models.Role, error)
	GetRoleByID(ctx context.Context, id int64) (*models.Role, int64, error)
	GetAllRoles(ctx context.Context) ([]*models.Role, map[int64]int64, error)
	UpdateRole(ctx context.Context, id int64, req *dto.UpdateRoleRequest, actorID int64) (*models.Role, error)
	DeleteRole(ctx context.Context, id int64, actorID int64) error
	PermissionCatalog() []string
}

// roleServiceImpl implements the RoleService interface
type roleServiceImpl struct {
	roleRepo  *repositories.RoleRepository
	auditRepo *repositories.AuditLogRepository
}

// NewRoleService creates a new role service instance
func NewRoleService(roleRepo *repositories.RoleRepository, auditRepo *repositories.AuditLogRepository) RoleService {
	return &roleServiceImpl{
		roleRepo:  roleRepo,
		auditRepo: auditRepo,
	}
}

// PermissionCatalog returns the fixed set of assignable permission keys
func (s *roleServiceImpl) PermissionCatalog() []string {
	return models.PermissionCatalog
}

func validatePermissions(keys []string) error {
	for _, key := range keys {
		if !models.IsKnownPermission(key) {
			return apperrors.ErrUnknownPermission
		}
	}
	return nil
}

// recordAudit appends an audit entry. Audit failures never fail the action.
func (s *roleServiceImpl) recordAudit(ctx context.Context, action string, actorID, entityID int64, before, after interface{}) {
	entry := &models.AuditLog{
		Action:   action,
		ActorID:  &actorID,
		Entity:   "role",
		EntityID: entityID,
	}
	if before != nil {
		entry.Before, _ = json.Marshal(before)
	}
	if after != nil {
		entry.After, _ = json.Marshal(after)
	}
	if err := s.auditRepo.Insert(ctx, entry); err != nil {
		logger.Error().Err(err).Str("action", action).Int64("entityId", entityID).Msg("Failed to write audit log")
	}
}

// CreateRole creates a role with permissions from the fixed catalog
func (s *roleServiceImpl) CreateRole(ctx context.Context, req *dto.CreateRoleRequest) (*models.Role, error) {
	if err := validatePermissions(req.Permissions); err != nil {
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	role := &models.Role{
		Name:        req.Name,
		DisplayName: req.DisplayName,
		Permissions: req.Permissions,
		IsActive:    isActive,
	}

	if err := s.roleRepo.Create(ctx, role); err != nil {
		return nil, err
	}

	return role, nil
}

// GetRoleByID retrieves a role with its user count
func (s *roleServiceImpl) GetRoleByID(ctx context.Context, id int64) (*models.Role, int64, error) {
	role, err := s.roleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, 0, err
	}

	count, err := s.roleRepo.CountUsers(ctx, id)
	if err != nil {
		return nil, 0, err
	}

	return role, count, nil
}

// GetAllRoles retrieves all roles with per-role user counts
func (s *roleServiceImpl) GetAllRoles(ctx context.Context) ([]*models.Role, map[int64]int64, error) {
	roles, err := s.roleRepo.GetAll(ctx)
	if err != nil {
		return nil, nil, err
	}

	counts := make(map[int64]int64, len(roles))
	for _, role := range roles {
		count, err := s.roleRepo.CountUsers(ctx, role.ID)
		if err != nil {
			return nil, nil, err
		}
		counts[role.ID] = count
	}

	return roles, counts, nil
}

// UpdateRole updates a role. The admin role is immutable and rejected before
// any field is inspected.
func (s *roleServiceImpl) UpdateRole(ctx context.Context, id int64, req *dto.UpdateRoleRequest, actorID int64) (*models.Role, error) {
	role, err := s.roleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role.IsProtected() {
		return nil, apperrors.ErrRoleImmutable
	}

	if err := validatePermissions(req.Permissions); err != nil {
		return nil, err
	}

	before := *role

	role.Name = req.Name
	role.DisplayName = req.DisplayName
	role.Permissions = req.Permissions
	if req.IsActive != nil {
		role.IsActive = *req.IsActive
	}

	if err := s.roleRepo.Update(ctx, role); err != nil {
		return nil, err
	}

	s.recordAudit(ctx, models.AuditRoleUpdated, actorID, id, dto.FromRole(&before, 0), dto.FromRole(role, 0))

	return s.roleRepo.GetByID(ctx, id)
}

// DeleteRole deletes a role unless it is protected or still held by users
func (s *roleServiceImpl) DeleteRole(ctx context.Context, id int64, actorID int64) error {
	role, err := s.roleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if role.IsProtected() {
		return apperrors.ErrRoleImmutable
	}

	count, err := s.roleRepo.CountUsers(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.ErrRoleInUse
	}

	if err := s.roleRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.recordAudit(ctx, models.AuditRoleDeleted, actorID, id, dto.FromRole(role, 0), nil)

	return nil
}
