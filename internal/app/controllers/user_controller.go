package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/sanad-app/sanad-backend/internal/app/models/dto"
	"github.com/sanad-app/sanad-backend/internal/app/repositories"
	"github.com/sanad-app/sanad-backend/internal/app/services"
	"github.com/sanad-app/sanad-backend/internal/middleware"
	"github.com/sanad-app/sanad-backend/internal/pkg/helpers"
)

// UserController handles user administration and audit log access
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{userService: userService}
}

// GetProfile returns the authenticated user's own record
// @Summary Get own profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "Profile retrieved"
// @Router /users/me [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)

	user, err := c.userService.GetUserByID(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, dto.FromUser(user))
}

// UpdateProfile updates the authenticated user's own record
// @Summary Update own profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateUserRequest true "Profile fields"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "Profile updated"
// @Failure 400 {object} dto.ErrorResponse "Email already used"
// @Router /users/me [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)
	var req dto.UpdateUserRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	user, err := c.userService.UpdateProfile(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, dto.FromUser(user))
}

// GetUser retrieves one user
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "User retrieved"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{id} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	user, err := c.userService.GetUserByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, dto.FromUser(user))
}

// ListUsers retrieves users matching a text search
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search in name or email"
// @Param page query int false "Page number"
// @Param per_page query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Users retrieved"
// @Router /users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	users, pagination, err := c.userService.ListUsers(ctx, ctx.Query("q"), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, dto.FromUser(u))
	}
	respondPage(ctx, items, pagination)
}

// ToggleActive flips a user's active flag
// @Summary Activate or deactivate a user
// @Description Deactivation revokes every live session. Users cannot toggle themselves.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "Active flag toggled"
// @Failure 403 {object} dto.ErrorResponse "Cannot act on own account"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{id}/toggle-active [post]
func (c *UserController) ToggleActive(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	actorID, _ := middleware.CurrentUserID(ctx)

	user, err := c.userService.ToggleActive(ctx, id, actorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, dto.FromUser(user))
}

// AssignRole changes a user's role
// @Summary Assign a role to a user
// @Description Users cannot change their own role.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body dto.AssignRoleRequest true "Target role"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "Role assigned"
// @Failure 403 {object} dto.ErrorResponse "Cannot act on own account"
// @Failure 404 {object} dto.ErrorResponse "User or role not found"
// @Router /users/{id}/role [put]
func (c *UserController) AssignRole(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.AssignRoleRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	actorID, _ := middleware.CurrentUserID(ctx)

	user, err := c.userService.AssignRole(ctx, id, &req, actorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, dto.FromUser(user))
}

// ResetUserPassword sets a new password for a user
// @Summary Reset a user's password
// @Description Replaces the password and revokes every live session of the user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body dto.AdminResetPasswordRequest true "New password"
// @Success 200 {object} dto.APIResponse "Password reset"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{id}/reset-password [post]
func (c *UserController) ResetUserPassword(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.AdminResetPasswordRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	actorID, _ := middleware.CurrentUserID(ctx)

	if err := c.userService.ResetPassword(ctx, id, &req, actorID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondMessage(ctx, "Password reset successfully")
}

// DeleteUser handles user deletion
// @Summary Delete a user
// @Description Users cannot delete their own account.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse "User deleted"
// @Failure 403 {object} dto.ErrorResponse "Cannot act on own account"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	actorID, _ := middleware.CurrentUserID(ctx)

	if err := c.userService.DeleteUser(ctx, id, actorID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondMessage(ctx, "User deleted successfully")
}

// ListAuditLogs retrieves audit entries matching the filters
// @Summary List audit log entries
// @Tags audit
// @Produce json
// @Security BearerAuth
// @Param action query string false "Filter by action"
// @Param entity query string false "Filter by entity"
// @Param actor_id query int false "Filter by acting user"
// @Param page query int false "Page number"
// @Param per_page query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Audit entries retrieved"
// @Router /audit-logs [get]
func (c *UserController) ListAuditLogs(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	filter := repositories.AuditLogFilter{
		Action:  ctx.Query("action"),
		Entity:  ctx.Query("entity"),
		ActorID: queryInt64(ctx, "actor_id"),
	}

	entries, pagination, err := c.userService.ListAuditLogs(ctx, filter, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.AuditLogResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.FromAuditLog(e))
	}
	respondPage(ctx, items, pagination)
}
