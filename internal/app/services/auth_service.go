package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sanad-app/sanad-backend/internal/app/models"
	"github.com/sanad-app/sanad-backend/internal/app/models/dto"
	"github.com/sanad-app/sanad-backend/internal/app/repositories"
	"github.com/sanad-app/sanad-backend/internal/pkg/apperrors"
	"github.com/sanad-app/sanad-backend/internal/pkg/auth"
	"github.com/sanad-app/sanad-backend/internal/pkg/email"
	"github.com/sanad-app/sanad-backend/internal/pkg/logger"
)

const (
	verificationTokenTTL  = 24 * time.Hour
	passwordResetTokenTTL = 1 * time.Hour
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	VerifyEmail(ctx context.Context, token string) error
	ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	db           *pgxpool.Pool
	userRepo     *repositories.UserRepository
	roleRepo     *repositories.RoleRepository
	tokenRepo    *repositories.TokenRepository
	jwtService   *auth.JWTService
	emailService email.EmailService
	baseURL      string
}

// NewAuthService creates a new authentication service instance
func NewAuthService(
	db *pgxpool.Pool,
	userRepo *repositories.UserRepository,
	roleRepo *repositories.RoleRepository,
	tokenRepo *repositories.TokenRepository,
	jwtService *auth.JWTService,
	emailService email.EmailService,
	baseURL string,
) AuthService {
	return &authServiceImpl{
		db:           db,
		userRepo:     userRepo,
		roleRepo:     roleRepo,
		tokenRepo:    tokenRepo,
		jwtService:   jwtService,
		emailService: emailService,
		baseURL:      baseURL,
	}
}

// Register creates a new user account and issues an email verification token.
// The user and its verification token are written in one transaction so a
// half-registered account can never exist.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	exists, err := s.userRepo.EmailExists(ctx, req.Email, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	role, err := s.roleRepo.GetByID(ctx, req.RoleID)
	if err != nil {
		return nil, err
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Email:     req.Email,
		Password:  hashed,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		RoleID:    role.ID,
		IsActive:  true,
	}

	verificationToken := uuid.New().String()

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.userRepo.CreateTx(ctx, tx, user); err != nil {
		return nil, err
	}
	if _, err := tx.Exec(ctx, `
		INSERT INTO verification_tokens (user_id, token, expires_at)
		VALUES ($1, $2, $3)
	`, user.ID, verificationToken, time.Now().Add(verificationTokenTTL)); err != nil {
		return nil, fmt.Errorf("error storing verification token: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("error committing transaction: %w", err)
	}

	user.Role = role
	link := fmt.Sprintf("%s/api/v1/auth/verify-email?token=%s", s.baseURL, verificationToken)

	// Delivery failures must not undo the registration, the link is echoed
	// in the response as a fallback.
	if err := s.emailService.SendVerificationEmail(user.Email, user.FirstName, link); err != nil {
		logger.Warn().Err(err).Str("email", user.Email).Msg("Failed to send verification email")
	}

	return &dto.RegisterResponse{
		User:             dto.FromUser(user),
		VerificationLink: link,
	}, nil
}

// Login authenticates a user and issues an access/refresh token pair
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == apperrors.ErrUserNotFound {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("error generating tokens: %w", err)
	}

	if err := s.tokenRepo.StoreRefreshToken(ctx, user.ID, refreshToken, s.jwtService.GetRefreshTokenExpiry()); err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, time.Now()); err != nil {
		logger.Warn().Err(err).Int64("userId", user.ID).Msg("Failed to update last login timestamp")
	}

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken:           accessToken,
			TokenType:             "Bearer",
			ExpiresIn:             expiresIn,
			RefreshToken:          refreshToken,
			RefreshTokenExpiresIn: refreshExpiresIn,
		},
		User: dto.FromUser(user),
	}, nil
}

// RefreshToken validates a refresh token and rotates it, revoking the old
// one and issuing a fresh pair.
func (s *authServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	stored, err := s.tokenRepo.GetRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, stored.UserID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	accessToken, newRefreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("error generating tokens: %w", err)
	}

	if err := s.tokenRepo.RevokeRefreshToken(ctx, refreshToken); err != nil {
		return nil, err
	}
	if err := s.tokenRepo.StoreRefreshToken(ctx, user.ID, newRefreshToken, s.jwtService.GetRefreshTokenExpiry()); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:           accessToken,
		TokenType:             "Bearer",
		ExpiresIn:             expiresIn,
		RefreshToken:          newRefreshToken,
		RefreshTokenExpiresIn: refreshExpiresIn,
	}, nil
}

// Logout revokes the given refresh token
func (s *authServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	return s.tokenRepo.RevokeRefreshToken(ctx, refreshToken)
}

// VerifyEmail consumes a verification token and marks the account verified.
// Both steps share one transaction so a failed update does not burn the
// token.
func (s *authServiceImpl) VerifyEmail(ctx context.Context, token string) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	userID, err := s.tokenRepo.ConsumeVerificationTokenTx(ctx, tx, token)
	if err != nil {
		return err
	}
	if err := s.userRepo.SetEmailVerifiedTx(ctx, tx, userID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// ForgotPassword issues a password reset token and emails the reset link.
// It succeeds even when the email is unknown so the endpoint does not leak
// which addresses have accounts.
func (s *authServiceImpl) ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) error {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == apperrors.ErrUserNotFound {
			logger.Info().Str("email", req.Email).Msg("Password reset requested for unknown email")
			return nil
		}
		return err
	}

	resetToken := uuid.New().String()
	if err := s.tokenRepo.StoreVerificationToken(ctx, user.ID, resetToken, time.Now().Add(passwordResetTokenTTL)); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", s.baseURL, resetToken)
	if err := s.emailService.SendPasswordResetEmail(user.Email, user.FirstName, link); err != nil {
		logger.Warn().Err(err).Str("email", user.Email).Msg("Failed to send password reset email")
	}
	return nil
}

// ResetPassword completes the reset flow, replacing the password and
// revoking every live session of the user. The token consumption, password
// update and session revocation commit atomically, so a failure anywhere
// leaves the token usable and the password unchanged.
func (s *authServiceImpl) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	hashed, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	userID, err := s.tokenRepo.ConsumeVerificationTokenTx(ctx, tx, req.Token)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePasswordTx(ctx, tx, userID, hashed); err != nil {
		return err
	}
	if err := s.tokenRepo.RevokeAllForUserTx(ctx, tx, userID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
