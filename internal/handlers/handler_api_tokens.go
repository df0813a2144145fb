package handlers

import (
	"net/http"

	portssvc "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/services"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/dto"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// IntegrationTokenHandler manages the caller's dialer API keys.
type IntegrationTokenHandler struct {
	tokenService portssvc.IntegrationTokenSvcFacade
}

// NewIntegrationTokenHandler creates a new IntegrationTokenHandler.
func NewIntegrationTokenHandler(ts portssvc.IntegrationTokenSvcFacade) *IntegrationTokenHandler {
	return &IntegrationTokenHandler{tokenService: ts}
}

// registerIntegrationTokenRoutes sets up the API key routes. Keys are scoped
// to the authenticated caller.
func registerIntegrationTokenRoutes(rg *gin.RouterGroup, tokenService portssvc.IntegrationTokenSvcFacade) {
	h := NewIntegrationTokenHandler(tokenService)

	tokens := rg.Group("/me/api-tokens")
	{
		tokens.POST("", h.CreateToken)
		tokens.GET("", h.ListTokens)
		tokens.DELETE("/:token_id", h.RevokeToken)
	}
}

// CreateToken godoc
// @Summary Create an API key
// @Description Creates a dialer API key for the caller. The raw key is returned exactly once.
// @Tags api-tokens
// @Accept json
// @Produce json
// @Param token body dto.CreateIntegrationTokenRequest true "Key details"
// @Success 201 {object} dto.CreatedIntegrationTokenResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /me/api-tokens [post]
func (h *IntegrationTokenHandler) CreateToken(c *gin.Context) {
	var req dto.CreateIntegrationTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	created, err := h.tokenService.CreateToken(c.Request.Context(), userID, req.Name, req.ExpiresAt)
	if err != nil {
		handleServiceError(c, err, "Failed to create API key")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCreatedIntegrationTokenResponse(created))
}

// ListTokens godoc
// @Summary List API keys
// @Tags api-tokens
// @Produce json
// @Success 200 {object} dto.ListIntegrationTokensResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /me/api-tokens [get]
func (h *IntegrationTokenHandler) ListTokens(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	tokens, err := h.tokenService.ListTokens(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err, "Failed to list API keys")
		return
	}
	c.JSON(http.StatusOK, dto.ToListIntegrationTokensResponse(tokens))
}

// RevokeToken godoc
// @Summary Revoke an API key
// @Tags api-tokens
// @Produce json
// @Param token_id path string true "Token ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /me/api-tokens/{token_id} [delete]
func (h *IntegrationTokenHandler) RevokeToken(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.tokenService.RevokeToken(c.Request.Context(), userID, c.Param("token_id")); err != nil {
		handleServiceError(c, err, "API key not found")
		return
	}
	c.Status(http.StatusNoContent)
}
