package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sanad-app/sanad-backend/internal/pkg/apperrors"
)

// RefreshToken is an opaque stored token exchanged for new access tokens.
type RefreshToken struct {
	ID        int64
	UserID    int64
	Token     string
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
}

// TokenRepository handles storage of refresh and verification tokens
type TokenRepository struct {
	db *pgxpool.Pool
}

// NewTokenRepository creates a new token repository
func NewTokenRepository(db *pgxpool.Pool) *TokenRepository {
	return &TokenRepository{
		db: db,
	}
}

// StoreRefreshToken persists a freshly issued refresh token
func (r *TokenRepository) StoreRefreshToken(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO refresh_tokens (user_id, token, expires_at)
		VALUES ($1, $2, $3)
	`, userID, token, expiresAt)
	if err != nil {
		return fmt.Errorf("error storing refresh token: %w", err)
	}
	return nil
}

// GetRefreshToken retrieves a refresh token by its opaque value. Expired and
// revoked tokens map to their distinguished errors.
func (r *TokenRepository) GetRefreshToken(ctx context.Context, token string) (*RefreshToken, error) {
	var rt RefreshToken
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, token, expires_at, revoked, created_at
		FROM refresh_tokens
		WHERE token = $1
	`, token).Scan(&rt.ID, &rt.UserID, &rt.Token, &rt.ExpiresAt, &rt.Revoked, &rt.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTokenNotFound
		}
		return nil, fmt.Errorf("error retrieving refresh token: %w", err)
	}

	if rt.Revoked {
		return nil, apperrors.ErrTokenRevoked
	}
	if time.Now().After(rt.ExpiresAt) {
		return nil, apperrors.ErrTokenExpired
	}

	return &rt, nil
}

// RevokeRefreshToken marks one refresh token as revoked
func (r *TokenRepository) RevokeRefreshToken(ctx context.Context, token string) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE refresh_tokens SET revoked = TRUE WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("error revoking refresh token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTokenNotFound
	}
	return nil
}

// RevokeAllForUser revokes every refresh token a user holds. Used when the
// account is deactivated or its password reset.
func (r *TokenRepository) RevokeAllForUser(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE refresh_tokens SET revoked = TRUE WHERE user_id = $1 AND revoked = FALSE`, userID)
	if err != nil {
		return fmt.Errorf("error revoking user tokens: %w", err)
	}
	return nil
}

// RevokeAllForUserTx revokes every refresh token a user holds, inside a
// transaction.
func (r *TokenRepository) RevokeAllForUserTx(ctx context.Context, tx pgx.Tx, userID int64) error {
	_, err := tx.Exec(ctx,
		`UPDATE refresh_tokens SET revoked = TRUE WHERE user_id = $1 AND revoked = FALSE`, userID)
	if err != nil {
		return fmt.Errorf("error revoking user tokens: %w", err)
	}
	return nil
}

// DeleteExpired removes refresh tokens past their expiry.
func (r *TokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM refresh_tokens WHERE expires_at < NOW()`)
	if err != nil {
		return 0, fmt.Errorf("error deleting expired tokens: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// StoreVerificationToken persists an email verification token
func (r *TokenRepository) StoreVerificationToken(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO verification_tokens (user_id, token, expires_at)
		VALUES ($1, $2, $3)
	`, userID, token, expiresAt)
	if err != nil {
		return fmt.Errorf("error storing verification token: %w", err)
	}
	return nil
}

// ConsumeVerificationTokenTx validates and deletes a verification token
// inside a transaction, returning the user it belongs to. Running it inside
// a transaction lets the caller roll the consumption back when a later step
// fails.
func (r *TokenRepository) ConsumeVerificationTokenTx(ctx context.Context, tx pgx.Tx, token string) (int64, error) {
	var userID int64
	var expiresAt time.Time
	err := tx.QueryRow(ctx, `
		DELETE FROM verification_tokens
		WHERE token = $1
		RETURNING user_id, expires_at
	`, token).Scan(&userID, &expiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrTokenNotFound
		}
		return 0, fmt.Errorf("error consuming verification token: %w", err)
	}

	if time.Now().After(expiresAt) {
		return 0, apperrors.ErrTokenExpired
	}

	return userID, nil
}
