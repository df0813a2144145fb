package handlers

import (
	"net/http"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
	portssvc "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/services"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/dto"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// UserAdminHandler handles the internal-only user administration surface:
// listing accounts, granting and revoking roles, and workspace bindings.
type UserAdminHandler struct {
	userService     portssvc.UserSvcFacade
	identityService portssvc.IdentitySvcFacade
}

// NewUserAdminHandler creates a new UserAdminHandler.
func NewUserAdminHandler(us portssvc.UserSvcFacade, is portssvc.IdentitySvcFacade) *UserAdminHandler {
	return &UserAdminHandler{userService: us, identityService: is}
}

// registerUserAdminRoutes sets up the user administration routes under /admin.
func registerUserAdminRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade, identityService portssvc.IdentitySvcFacade) {
	h := NewUserAdminHandler(userService, identityService)

	users := rg.Group("/users")
	{
		users.GET("", h.ListUsers)
		users.GET("/:user_id", h.GetUser)
		users.GET("/:user_id/profile", h.GetProfile)
		users.GET("/:user_id/access", h.GetAccess)
		users.POST("/:user_id/roles", h.AssignRole)
		users.DELETE("/:user_id/roles/:role", h.RevokeRole)
		users.PUT("/:user_id/workspace", h.BindWorkspace)
	}
}

// ListUsers godoc
// @Summary List users
// @Description Lists portal accounts, newest first.
// @Tags admin
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListUsersResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/users [get]
func (h *UserAdminHandler) ListUsers(c *gin.Context) {
	var params dto.ListUsersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		handleServiceError(c, err, "Failed to list users")
		return
	}
	c.JSON(http.StatusOK, dto.ToListUsersResponse(users))
}

// GetUser godoc
// @Summary Get user
// @Tags admin
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/users/{user_id} [get]
func (h *UserAdminHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetUserByID(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		handleServiceError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// GetProfile godoc
// @Summary Get user profile
// @Description Returns the profile row: display role label and workspace binding.
// @Tags admin
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} dto.ProfileResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/users/{user_id}/profile [get]
func (h *UserAdminHandler) GetProfile(c *gin.Context) {
	profile, err := h.identityService.GetProfile(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		handleServiceError(c, err, "Profile not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

// GetAccess godoc
// @Summary Get user access snapshot
// @Description Returns the resolved roles, internal flag and workspace binding for a user, as the gates would see them.
// @Tags admin
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} dto.IdentityResponse
// @Security BearerAuth
// @Router /admin/users/{user_id}/access [get]
func (h *UserAdminHandler) GetAccess(c *gin.Context) {
	id := h.identityService.Resolve(c.Request.Context(), c.Param("user_id"))
	c.JSON(http.StatusOK, dto.ToIdentityResponse(id))
}

// AssignRole godoc
// @Summary Grant a role
// @Description Grants a role to a user. Granting "am" stores the bdr role row and sets the display label.
// @Tags admin
// @Accept json
// @Produce json
// @Param user_id path string true "User ID"
// @Param role body dto.AssignRoleRequest true "Role to grant"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/users/{user_id}/roles [post]
func (h *UserAdminHandler) AssignRole(c *gin.Context) {
	var req dto.AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	role, ok := domain.ParseRole(req.Role)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unknown role"})
		return
	}

	actingUserID, _ := middleware.GetUserIDFromContext(c)
	if err := h.identityService.AssignRole(c.Request.Context(), actingUserID, c.Param("user_id"), role); err != nil {
		handleServiceError(c, err, "Failed to assign role")
		return
	}
	c.Status(http.StatusNoContent)
}

// RevokeRole godoc
// @Summary Revoke a role
// @Tags admin
// @Produce json
// @Param user_id path string true "User ID"
// @Param role path string true "Role to revoke"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "User does not hold the role"
// @Security BearerAuth
// @Router /admin/users/{user_id}/roles/{role} [delete]
func (h *UserAdminHandler) RevokeRole(c *gin.Context) {
	role, ok := domain.ParseRole(c.Param("role"))
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unknown role"})
		return
	}

	actingUserID, _ := middleware.GetUserIDFromContext(c)
	if err := h.identityService.RevokeRole(c.Request.Context(), actingUserID, c.Param("user_id"), role); err != nil {
		handleServiceError(c, err, "Role not held")
		return
	}
	c.Status(http.StatusNoContent)
}

// BindWorkspace godoc
// @Summary Bind user to workspace
// @Description Points a user's profile at a workspace. A null workspaceID unbinds.
// @Tags admin
// @Accept json
// @Produce json
// @Param user_id path string true "User ID"
// @Param binding body dto.BindWorkspaceRequest true "Workspace binding"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/users/{user_id}/workspace [put]
func (h *UserAdminHandler) BindWorkspace(c *gin.Context) {
	var req dto.BindWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	actingUserID, _ := middleware.GetUserIDFromContext(c)
	if err := h.identityService.BindWorkspace(c.Request.Context(), actingUserID, c.Param("user_id"), req.WorkspaceID); err != nil {
		handleServiceError(c, err, "Failed to bind workspace")
		return
	}
	c.Status(http.StatusNoContent)
}
