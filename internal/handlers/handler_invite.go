package handlers

import (
	"net/http"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
	portssvc "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/services"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/dto"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// InviteHandler handles the internal-only invite surface. Redemption lives on
// the public /auth/register endpoint.
type InviteHandler struct {
	inviteService portssvc.InviteSvcFacade
}

// NewInviteHandler creates a new InviteHandler.
func NewInviteHandler(is portssvc.InviteSvcFacade) *InviteHandler {
	return &InviteHandler{inviteService: is}
}

// registerInviteRoutes sets up the invite routes under /admin.
func registerInviteRoutes(rg *gin.RouterGroup, inviteService portssvc.InviteSvcFacade) {
	h := NewInviteHandler(inviteService)

	invites := rg.Group("/invites")
	{
		invites.POST("", h.CreateInvite)
		invites.GET("", h.ListPendingInvites)
		invites.DELETE("/:invite_id", h.RevokeInvite)
	}
}

// CreateInvite godoc
// @Summary Issue an invite
// @Description Issues a portal invite for the given role. The raw token is returned exactly once; client-role invites require a workspace.
// @Tags admin
// @Accept json
// @Produce json
// @Param invite body dto.CreateInviteRequest true "Invite details"
// @Success 201 {object} dto.CreatedInviteResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Security BearerAuth
// @Router /admin/invites [post]
func (h *InviteHandler) CreateInvite(c *gin.Context) {
	var req dto.CreateInviteRequest
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
	created, err := h.inviteService.CreateInvite(c.Request.Context(), actingUserID, req.Email, role, req.WorkspaceID)
	if err != nil {
		handleServiceError(c, err, "Failed to create invite")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCreatedInviteResponse(created))
}

// ListPendingInvites godoc
// @Summary List pending invites
// @Tags admin
// @Produce json
// @Success 200 {object} dto.ListInvitesResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/invites [get]
func (h *InviteHandler) ListPendingInvites(c *gin.Context) {
	invites, err := h.inviteService.ListPendingInvites(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Failed to list invites")
		return
	}
	c.JSON(http.StatusOK, dto.ToListInvitesResponse(invites))
}

// RevokeInvite godoc
// @Summary Revoke an invite
// @Description Revokes a pending invite so its token can no longer be redeemed.
// @Tags admin
// @Produce json
// @Param invite_id path string true "Invite ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Invite is not pending"
// @Security BearerAuth
// @Router /admin/invites/{invite_id} [delete]
func (h *InviteHandler) RevokeInvite(c *gin.Context) {
	actingUserID, _ := middleware.GetUserIDFromContext(c)
	if err := h.inviteService.RevokeInvite(c.Request.Context(), actingUserID, c.Param("invite_id")); err != nil {
		handleServiceError(c, err, "Invite not found")
		return
	}
	c.Status(http.StatusNoContent)
}
