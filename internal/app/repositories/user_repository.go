package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sanad-app/sanad-backend/internal/app/models"
	"github.com/sanad-app/sanad-backend/internal/pkg/apperrors"
	"github.com/sanad-app/sanad-backend/internal/pkg/dberrors"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

const userColumns = `
	u.id, u.email, u.password, u.first_name, u.last_name, u.phone, u.role_id,
	u.is_active, u.email_verified, u.last_login_at, u.created_at, u.updated_at,
	r.id, r.name, r.display_name, r.permissions, r.is_active`

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	var role models.Role
	err := row.Scan(
		&u.ID, &u.Email, &u.Password, &u.FirstName, &u.LastName, &u.Phone, &u.RoleID,
		&u.IsActive, &u.EmailVerified, &u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt,
		&role.ID, &role.Name, &role.DisplayName, &role.Permissions, &role.IsActive,
	)
	if err != nil {
		return nil, err
	}
	u.Role = &role
	return &u, nil
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (email, password, first_name, last_name, phone, role_id, is_active, email_verified)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		user.Email, user.Password, user.FirstName, user.LastName,
		user.Phone, user.RoleID, user.IsActive, user.EmailVerified,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// CreateTx creates a user inside an existing transaction.
func (r *UserRepository) CreateTx(ctx context.Context, tx pgx.Tx, user *models.User) error {
	query := `
		INSERT INTO users (email, password, first_name, last_name, phone, role_id, is_active, email_verified)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := tx.QueryRow(ctx, query,
		user.Email, user.Password, user.FirstName, user.LastName,
		user.Phone, user.RoleID, user.IsActive, user.EmailVerified,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by ID with the role loaded
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM users u
		JOIN roles r ON r.id = u.role_id
		WHERE u.id = $1
	`, userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return user, nil
}

// GetByEmail retrieves a user by email with the role loaded
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM users u
		JOIN roles r ON r.id = u.role_id
		WHERE u.email = $1
	`, userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return user, nil
}

// List retrieves users, optionally matching a name/email query.
func (r *UserRepository) List(ctx context.Context, search string, offset uint64, limit int) ([]*models.User, int64, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(u.first_name ILIKE $%d OR u.last_name ILIKE $%d OR u.email ILIKE $%d)",
			argPos, argPos, argPos))
		args = append(args, "%"+search+"%")
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM users u WHERE %s", where)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting users: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM users u
		JOIN roles r ON r.id = u.role_id
		WHERE %s
		ORDER BY u.last_name, u.first_name, u.id
		LIMIT $%d OFFSET $%d
	`, userColumns, where, argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// Update updates a user's profile fields
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET email = $1, first_name = $2, last_name = $3, phone = $4, updated_at = NOW()
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		user.Email, user.FirstName, user.LastName, user.Phone, user.ID,
	)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error updating user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// UpdatePasswordTx replaces the stored password hash inside a transaction.
func (r *UserRepository) UpdatePasswordTx(ctx context.Context, tx pgx.Tx, id int64, hashedPassword string) error {
	cmdTag, err := tx.Exec(ctx,
		`UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`,
		hashedPassword, id)
	if err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// SetActive sets the active flag and returns the previous value.
func (r *UserRepository) SetActive(ctx context.Context, id int64, active bool) (bool, error) {
	var previous bool
	err := r.db.QueryRow(ctx, `
		UPDATE users u
		SET is_active = $1, updated_at = NOW()
		FROM (SELECT is_active FROM users WHERE id = $2) old
		WHERE u.id = $2
		RETURNING old.is_active
	`, active, id).Scan(&previous)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, apperrors.ErrUserNotFound
		}
		return false, fmt.Errorf("error toggling user active flag: %w", err)
	}
	return previous, nil
}

// SetRole assigns a role and returns the previous role id.
func (r *UserRepository) SetRole(ctx context.Context, id int64, roleID int64) (int64, error) {
	var previous int64
	err := r.db.QueryRow(ctx, `
		UPDATE users u
		SET role_id = $1, updated_at = NOW()
		FROM (SELECT role_id FROM users WHERE id = $2) old
		WHERE u.id = $2
		RETURNING old.role_id
	`, roleID, id).Scan(&previous)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrUserNotFound
		}
		return 0, fmt.Errorf("error assigning user role: %w", err)
	}
	return previous, nil
}

// IsActive reports the user's active flag.
func (r *UserRepository) IsActive(ctx context.Context, id int64) (bool, error) {
	var active bool
	err := r.db.QueryRow(ctx, `SELECT is_active FROM users WHERE id = $1`, id).Scan(&active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, apperrors.ErrUserNotFound
		}
		return false, fmt.Errorf("error checking user active flag: %w", err)
	}
	return active, nil
}

// EmailExists checks whether an email is taken, excluding one record.
func (r *UserRepository) EmailExists(ctx context.Context, email string, exceptID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 AND id != $2)`,
		email, exceptID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking user email: %w", err)
	}
	return exists, nil
}

// SetEmailVerifiedTx marks the user's email as verified inside a transaction.
func (r *UserRepository) SetEmailVerifiedTx(ctx context.Context, tx pgx.Tx, id int64) error {
	cmdTag, err := tx.Exec(ctx,
		`UPDATE users SET email_verified = TRUE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error setting email verified: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// UpdateLastLogin records a successful login time
func (r *UserRepository) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users SET last_login_at = $1 WHERE id = $2`, at, id)
	if err != nil {
		return fmt.Errorf("error updating last login: %w", err)
	}
	return nil
}

// Delete deletes a user by ID
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
