package handlers

import (
	"net/http"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/access"
	portssvc "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/services"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/dto"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// IdentityHandler serves the resolved access snapshot and the landing
// decision. Both endpoints work for anonymous visitors.
type IdentityHandler struct {
	identityService portssvc.IdentitySvcFacade
}

// NewIdentityHandler creates a new IdentityHandler.
func NewIdentityHandler(is portssvc.IdentitySvcFacade) *IdentityHandler {
	return &IdentityHandler{identityService: is}
}

// registerIdentityRoutes sets up the identity and landing routes. The group
// must carry optional auth plus the identity middleware.
func registerIdentityRoutes(rg *gin.RouterGroup, identityService portssvc.IdentitySvcFacade) {
	h := NewIdentityHandler(identityService)

	rg.GET("/me", h.Me)
	rg.GET("/landing", h.Landing)
}

// Me godoc
// @Summary Resolved identity snapshot
// @Description Returns the caller's roles, display role, internal flag and workspace binding. Anonymous callers get authenticated=false.
// @Tags identity
// @Produce json
// @Success 200 {object} dto.IdentityResponse
// @Security BearerAuth
// @Router /me [get]
func (h *IdentityHandler) Me(c *gin.Context) {
	id, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Identity not resolved"})
		return
	}
	c.JSON(http.StatusOK, dto.ToIdentityResponse(id))
}

// Landing godoc
// @Summary Landing decision
// @Description Tells the frontend which screen this session lands on. Terminal states carry a reason instead of a target.
// @Tags identity
// @Produce json
// @Success 200 {object} dto.LandingResponse
// @Security BearerAuth
// @Router /landing [get]
func (h *IdentityHandler) Landing(c *gin.Context) {
	id, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Identity not resolved"})
		return
	}

	d := access.Landing(id)
	switch d.Effect {
	case access.EffectRedirect:
		c.JSON(http.StatusOK, dto.LandingResponse{Target: d.Target})
	case access.EffectDeny:
		c.JSON(http.StatusOK, dto.LandingResponse{Reason: d.Reason})
	default:
		// Resolution is synchronous, so pending never reaches a response.
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Identity is still resolving"})
	}
}
