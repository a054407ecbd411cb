package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sanad-app/sanad-backend/internal/app/models"
	"github.com/sanad-app/sanad-backend/internal/app/models/dto"
	"github.com/sanad-app/sanad-backend/internal/app/repositories"
	"github.com/sanad-app/sanad-backend/internal/pkg/apperrors"
	"github.com/sanad-app/sanad-backend/internal/pkg/auth"
)

// Context keys set by JWTAuth for downstream handlers.
const (
	CtxUserID   = "userID"
	CtxEmail    = "email"
	CtxRoleID   = "roleID"
	CtxRoleName = "roleName"
)

// AuthMiddleware performs authentication and permission checks.
type AuthMiddleware struct {
	jwtService *auth.JWTService
	userRepo   *repositories.UserRepository
	roleRepo   *repositories.RoleRepository
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, userRepo *repositories.UserRepository, roleRepo *repositories.RoleRepository) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userRepo:   userRepo,
		roleRepo:   roleRepo,
	}
}

// JWTAuth validates the access token and loads the caller identity into the
// request context. Deactivated accounts are rejected even with a valid token.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			// Swagger UI sometimes passes the token as a query parameter
			authHeader = c.Query("authorization")
		}
		if authHeader == "" {
			detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").
				WithDetails("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			// Tolerate a raw JWT without the Bearer prefix
			trimmed := strings.Trim(authHeader, "\"'")
			if strings.Count(trimmed, ".") == 2 {
				tokenString = trimmed
			} else {
				detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").
					WithDetails("Invalid token format")
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
				return
			}
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			code := dto.ErrorCodeInvalidToken
			details := "Invalid token"
			if errors.Is(err, apperrors.ErrTokenExpired) {
				code = dto.ErrorCodeExpiredToken
				details = "Token has expired"
			}
			detail := dto.NewErrorDetail(code, "Authentication failed").WithDetails(details)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
			return
		}

		active, err := m.userRepo.IsActive(c.Request.Context(), claims.UserID)
		if err != nil {
			detail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(detail))
			return
		}
		if !active {
			detail := dto.NewErrorDetail(dto.ErrorCodeAccountDisabled, "Account is disabled")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxEmail, claims.Email)
		c.Set(CtxRoleID, claims.RoleID)
		c.Set(CtxRoleName, claims.RoleName)

		c.Next()
	}
}

// PermissionRequired ensures the caller's role grants the given permission
// key. The admin role passes every check. Role permissions are read from the
// database so revocations take effect without re-login.
func (m *AuthMiddleware) PermissionRequired(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleID, exists := c.Get(CtxRoleID)
		if !exists {
			detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").
				WithDetails("User role not found")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
			return
		}

		roleIDInt, ok := roleID.(int64)
		if !ok {
			detail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(detail))
			return
		}

		role, err := m.roleRepo.GetByID(c.Request.Context(), roleIDInt)
		if err != nil {
			HandleAPIError(c, err)
			c.Abort()
			return
		}

		if role.Name != models.AdminRoleName && !role.HasPermission(permission) {
			detail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied").
				WithDetails("Your role does not grant the required permission")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(detail))
			return
		}

		c.Next()
	}
}

// CurrentUserID returns the authenticated user's ID from the context.
func CurrentUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(CtxUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
