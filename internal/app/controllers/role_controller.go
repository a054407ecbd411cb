package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/sanad-app/sanad-backend/internal/app/models/dto"
	"github.com/sanad-app/sanad-backend/internal/app/services"
	"github.com/sanad-app/sanad-backend/internal/middleware"
)

// RoleController handles role and permission administration
type RoleController struct {
	roleService services.RoleService
}

// NewRoleController creates a new RoleController
func NewRoleController(roleService services.RoleService) *RoleController {
	return &RoleController{roleService: roleService}
}

// ListPermissions enumerates the fixed permission catalog
// @Summary List available permissions
// @Tags roles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]string} "Permissions retrieved"
// @Router /roles/permissions [get]
func (c *RoleController) ListPermissions(ctx *gin.Context) {
	respondOK(ctx, c.roleService.PermissionCatalog())
}

// CreateRole handles role creation
// @Summary Create a role
// @Tags roles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateRoleRequest true "Role information"
// @Success 201 {object} dto.APIResponse{data=dto.RoleResponse} "Role created"
// @Failure 400 {object} dto.ErrorResponse "Unknown permission key or name already used"
// @Router /roles [post]
func (c *RoleController) CreateRole(ctx *gin.Context) {
	var req dto.CreateRoleRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	role, err := c.roleService.CreateRole(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondCreated(ctx, dto.FromRole(role, 0))
}

// GetRole retrieves one role
// @Summary Get role by ID
// @Tags roles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Role ID"
// @Success 200 {object} dto.APIResponse{data=dto.RoleResponse} "Role retrieved"
// @Failure 404 {object} dto.ErrorResponse "Role not found"
// @Router /roles/{id} [get]
func (c *RoleController) GetRole(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	role, userCount, err := c.roleService.GetRoleByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, dto.FromRole(role, userCount))
}

// ListRoles retrieves every role with its user count
// @Summary List roles
// @Tags roles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.RoleResponse} "Roles retrieved"
// @Router /roles [get]
func (c *RoleController) ListRoles(ctx *gin.Context) {
	roles, counts, err := c.roleService.GetAllRoles(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.RoleResponse, 0, len(roles))
	for _, role := range roles {
		items = append(items, dto.FromRole(role, counts[role.ID]))
	}
	respondOK(ctx, items)
}

// UpdateRole handles role updates
// @Summary Update a role
// @Description The built-in administrator role is immutable
// @Tags roles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Role ID"
// @Param request body dto.UpdateRoleRequest true "Role information"
// @Success 200 {object} dto.APIResponse{data=dto.RoleResponse} "Role updated"
// @Failure 403 {object} dto.ErrorResponse "Role is immutable"
// @Failure 404 {object} dto.ErrorResponse "Role not found"
// @Router /roles/{id} [put]
func (c *RoleController) UpdateRole(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateRoleRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	actorID, _ := middleware.CurrentUserID(ctx)

	role, err := c.roleService.UpdateRole(ctx, id, &req, actorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, dto.FromRole(role, 0))
}

// DeleteRole handles role deletion
// @Summary Delete a role
// @Description Deletion is refused for the built-in administrator role and for roles still held by users
// @Tags roles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Role ID"
// @Success 200 {object} dto.APIResponse "Role deleted"
// @Failure 400 {object} dto.ErrorResponse "Role still held by users"
// @Failure 403 {object} dto.ErrorResponse "Role is immutable"
// @Failure 404 {object} dto.ErrorResponse "Role not found"
// @Router /roles/{id} [delete]
func (c *RoleController) DeleteRole(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	actorID, _ := middleware.CurrentUserID(ctx)

	if err := c.roleService.DeleteRole(ctx, id, actorID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondMessage(ctx, "Role deleted successfully")
}
