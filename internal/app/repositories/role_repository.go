package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sanad-app/sanad-backend/internal/app/models"
	"github.com/sanad-app/sanad-backend/internal/pkg/apperrors"
	"github.com/sanad-app/sanad-backend/internal/pkg/dberrors"
)

// RoleRepository handles database operations for roles
type RoleRepository struct {
	db *pgxpool.Pool
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(db *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{
		db: db,
	}
}

// Create creates a new role
func (r *RoleRepository) Create(ctx context.Context, role *models.Role) error {
	query := `
		INSERT INTO roles (name, display_name, permissions, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		role.Name, role.DisplayName, role.Permissions, role.IsActive,
	).Scan(&role.ID, &role.CreatedAt, &role.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrRoleAlreadyExists
		}
		return fmt.Errorf("error creating role: %w", err)
	}

	return nil
}

// GetByID retrieves a role by ID
func (r *RoleRepository) GetByID(ctx context.Context, id int64) (*models.Role, error) {
	query := `
		SELECT id, name, display_name, permissions, is_active, created_at, updated_at
		FROM roles
		WHERE id = $1
	`

	var role models.Role
	err := r.db.QueryRow(ctx, query, id).Scan(
		&role.ID, &role.Name, &role.DisplayName, &role.Permissions,
		&role.IsActive, &role.CreatedAt, &role.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRoleNotFound
		}
		return nil, fmt.Errorf("error retrieving role: %w", err)
	}

	return &role, nil
}

// GetByName retrieves a role by its unique name
func (r *RoleRepository) GetByName(ctx context.Context, name string) (*models.Role, error) {
	query := `
		SELECT id, name, display_name, permissions, is_active, created_at, updated_at
		FROM roles
		WHERE name = $1
	`

	var role models.Role
	err := r.db.QueryRow(ctx, query, name).Scan(
		&role.ID, &role.Name, &role.DisplayName, &role.Permissions,
		&role.IsActive, &role.CreatedAt, &role.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRoleNotFound
		}
		return nil, fmt.Errorf("error retrieving role: %w", err)
	}

	return &role, nil
}

// GetAll retrieves all roles ordered by name
func (r *RoleRepository) GetAll(ctx context.Context) ([]*models.Role, error) {
	query := `
		SELECT id, name, display_name, permissions, is_active, created_at, updated_at
		FROM roles
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []*models.Role
	for rows.Next() {
		var role models.Role
		if err := rows.Scan(
			&role.ID, &role.Name, &role.DisplayName, &role.Permissions,
			&role.IsActive, &role.CreatedAt, &role.UpdatedAt,
		); err != nil {
			return nil, err
		}
		roles = append(roles, &role)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return roles, nil
}

// Update updates an existing role
func (r *RoleRepository) Update(ctx context.Context, role *models.Role) error {
	query := `
		UPDATE roles
		SET name = $1, display_name = $2, permissions = $3, is_active = $4, updated_at = NOW()
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		role.Name, role.DisplayName, role.Permissions, role.IsActive, role.ID,
	)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrRoleAlreadyExists
		}
		return fmt.Errorf("error updating role: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRoleNotFound
	}

	return nil
}

// CountUsers returns how many users currently hold the role.
func (r *RoleRepository) CountUsers(ctx context.Context, id int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role_id = $1`, id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting role users: %w", err)
	}
	return count, nil
}

// Delete deletes a role by ID. Callers check CountUsers and the protected
// name first.
func (r *RoleRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrRoleInUse
		}
		return fmt.Errorf("error deleting role: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRoleNotFound
	}
	return nil
}
