package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sanad-app/sanad-backend/internal/app/models"
	"github.com/sanad-app/sanad-backend/internal/app/models/dto"
	"github.com/sanad-app/sanad-backend/internal/app/repositories"
	"github.com/sanad-app/sanad-backend/internal/pkg/apperrors"
	"github.com/sanad-app/sanad-backend/internal/pkg/auth"
	"github.com/sanad-app/sanad-backend/internal/pkg/helpers"
	"github.com/sanad-app/sanad-backend/internal/pkg/logger"
)

// UserService defines the interface for user administration
type UserService interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	ListUsers(ctx context.Context, search string, page, size int) ([]*models.User, dto.PaginationInfo, error)
	UpdateProfile(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*models.User, error)
	ToggleActive(ctx context.Context, id int64, actorID int64) (*models.User, error)
	AssignRole(ctx context.Context, id int64, req *dto.AssignRoleRequest, actorID int64) (*models.User, error)
	ResetPassword(ctx context.Context, id int64, req *dto.AdminResetPasswordRequest, actorID int64) error
	DeleteUser(ctx context.Context, id int64, actorID int64) error
	ListAuditLogs(ctx context.Context, filter repositories.AuditLogFilter, page, size int) ([]*models.AuditLog, dto.PaginationInfo, error)
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	db        *pgxpool.Pool
	userRepo  *repositories.UserRepository
	roleRepo  *repositories.RoleRepository
	tokenRepo *repositories.TokenRepository
	auditRepo *repositories.AuditLogRepository
}

// NewUserService creates a new user service instance
func NewUserService(
	db *pgxpool.Pool,
	userRepo *repositories.UserRepository,
	roleRepo *repositories.RoleRepository,
	tokenRepo *repositories.TokenRepository,
	auditRepo *repositories.AuditLogRepository,
) UserService {
	return &userServiceImpl{
		db:        db,
		userRepo:  userRepo,
		roleRepo:  roleRepo,
		tokenRepo: tokenRepo,
		auditRepo: auditRepo,
	}
}

func (s *userServiceImpl) recordAudit(ctx context.Context, action string, actorID, entityID int64, before, after interface{}) {
	entry := &models.AuditLog{
		Action:   action,
		ActorID:  &actorID,
		Entity:   "user",
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

// GetUserByID retrieves a user by ID
func (s *userServiceImpl) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// ListUsers retrieves a page of users
func (s *userServiceImpl) ListUsers(ctx context.Context, search string, page, size int) ([]*models.User, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	users, total, err := s.userRepo.List(ctx, search, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}
	return users, helpers.NewPaginationInfo(total, page, limit), nil
}

// UpdateProfile updates a user's profile fields
func (s *userServiceImpl) UpdateProfile(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Phone = req.Phone

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return s.userRepo.GetByID(ctx, id)
}

// ToggleActive flips the user's active flag. Deactivation revokes every
// refresh token the user holds. Acting on one's own account is refused.
func (s *userServiceImpl) ToggleActive(ctx context.Context, id int64, actorID int64) (*models.User, error) {
	if id == actorID {
		return nil, apperrors.ErrSelfAction
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	newState := !user.IsActive
	previous, err := s.userRepo.SetActive(ctx, id, newState)
	if err != nil {
		return nil, err
	}

	if !newState {
		if err := s.tokenRepo.RevokeAllForUser(ctx, id); err != nil {
			logger.Error().Err(err).Int64("userId", id).Msg("Failed to revoke tokens on deactivation")
		}
	}

	s.recordAudit(ctx, models.AuditUserActiveToggled, actorID, id,
		map[string]bool{"isActive": previous},
		map[string]bool{"isActive": newState})

	return s.userRepo.GetByID(ctx, id)
}

// AssignRole changes the user's role. Changing one's own role is refused.
func (s *userServiceImpl) AssignRole(ctx context.Context, id int64, req *dto.AssignRoleRequest, actorID int64) (*models.User, error) {
	if id == actorID {
		return nil, apperrors.ErrSelfAction
	}

	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if _, err := s.roleRepo.GetByID(ctx, req.RoleID); err != nil {
		return nil, err
	}

	previous, err := s.userRepo.SetRole(ctx, id, req.RoleID)
	if err != nil {
		return nil, err
	}

	s.recordAudit(ctx, models.AuditUserRoleChanged, actorID, id,
		map[string]int64{"roleId": previous},
		map[string]int64{"roleId": req.RoleID})

	return s.userRepo.GetByID(ctx, id)
}

// ResetPassword sets a new password for another user and revokes their
// sessions, in one transaction. The new password is never audited.
func (s *userServiceImpl) ResetPassword(ctx context.Context, id int64, req *dto.AdminResetPasswordRequest, actorID int64) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}

	hashed, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.userRepo.UpdatePasswordTx(ctx, tx, id, hashed); err != nil {
		return err
	}
	if err := s.tokenRepo.RevokeAllForUserTx(ctx, tx, id); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	s.recordAudit(ctx, models.AuditUserPasswordReset, actorID, id, nil, nil)

	return nil
}

// DeleteUser removes a user account. Deleting one's own account is refused.
func (s *userServiceImpl) DeleteUser(ctx context.Context, id int64, actorID int64) error {
	if id == actorID {
		return apperrors.ErrSelfAction
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.tokenRepo.RevokeAllForUser(ctx, id); err != nil {
		logger.Error().Err(err).Int64("userId", id).Msg("Failed to revoke tokens on user deletion")
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.recordAudit(ctx, models.AuditUserDeleted, actorID, id, dto.FromUser(user), nil)

	return nil
}

// ListAuditLogs retrieves a page of the audit trail
func (s *userServiceImpl) ListAuditLogs(ctx context.Context, filter repositories.AuditLogFilter, page, size int) ([]*models.AuditLog, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	entries, total, err := s.auditRepo.List(ctx, filter, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}
	return entries, helpers.NewPaginationInfo(total, page, limit), nil
}
