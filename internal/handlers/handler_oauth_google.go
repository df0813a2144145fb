package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	portssvc "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/services"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/dto"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/middleware"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/platform/config"
	"github.com/gin-gonic/gin"
)

const oauthStateCookie = "oauth_state"

// GoogleOAuthHandler handles the Google sign-in flow: issuing the consent
// URL and exchanging the returned authorization code for a portal session.
type GoogleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade
	userService        portssvc.UserSvcFacade
	auth               *AuthHandler
	cfg                *config.Config
}

// NewGoogleOAuthHandler creates a new instance of GoogleOAuthHandler.
func NewGoogleOAuthHandler(cfg *config.Config, services *portssvc.ServiceContainer) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		googleOAuthService: services.GoogleOAuth,
		userService:        services.User,
		auth:               NewAuthHandler(cfg, services),
		cfg:                cfg,
	}
}

// registerGoogleOAuthRoutes sets up the public Google OAuth endpoints.
func registerGoogleOAuthRoutes(rg *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewGoogleOAuthHandler(cfg, services)

	oauth := rg.Group("/api/v1/auth/google")
	{
		oauth.GET("/login", h.LoginGoogle)
		oauth.POST("/exchange-code", h.ExchangeCodeGoogle)
	}
}

// LoginURLResponse carries the Google consent URL for the frontend to follow.
type LoginURLResponse struct {
	URL string `json:"url"`
}

// ExchangeCodeRequest defines the expected JSON body for the exchange-code endpoint.
type ExchangeCodeRequest struct {
	Code  string `json:"code" binding:"required"`
	State string `json:"state"`
}

// LoginGoogle godoc
// @Summary Start Google sign-in
// @Description Generates a CSRF state, sets it as a cookie, and returns the Google consent URL.
// @Tags oauth
// @Produce json
// @Success 200 {object} LoginURLResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/login [get]
func (h *GoogleOAuthHandler) LoginGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	state, err := h.googleOAuthService.GenerateStateString(ctx)
	if err != nil {
		logger.Error("Failed to generate OAuth state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to start Google sign-in"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, 600, "/", "", h.cfg.IsProduction, true)

	c.JSON(http.StatusOK, LoginURLResponse{URL: h.googleOAuthService.GetGoogleLoginURL(ctx, state)})
}

// ExchangeCodeGoogle godoc
// @Summary Exchange Google authorization code
// @Description Exchanges the authorization code for Google tokens, resolves or creates the portal account, and starts a session.
// @Tags oauth
// @Accept json
// @Produce json
// @Param code body ExchangeCodeRequest true "Authorization code and CSRF state"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse "Invalid or expired authorization code"
// @Failure 401 {object} ErrorResponse "CSRF state mismatch"
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/exchange-code [post]
func (h *GoogleOAuthHandler) ExchangeCodeGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	// The state the frontend echoes back must match the cookie we set when
	// the flow started.
	if req.State != "" {
		stored, err := c.Cookie(oauthStateCookie)
		if err != nil || stored != req.State {
			logger.Warn("OAuth state mismatch")
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "OAuth state mismatch"})
			return
		}
		c.SetCookie(oauthStateCookie, "", -1, "/", "", h.cfg.IsProduction, true)
	}

	oauth2Token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, req.Code)
	if err != nil {
		logger.Error("Failed to exchange authorization code with Google", slog.String("error", err.Error()))
		if strings.Contains(strings.ToLower(err.Error()), "invalid_grant") {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid or expired authorization code"})
			return
		}
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to communicate with Google"})
		return
	}

	idTokenString, ok := oauth2Token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		logger.Error("ID token missing from Google token response")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve ID token from Google"})
		return
	}

	if _, err := h.googleOAuthService.ValidateGoogleIDToken(ctx, idTokenString); err != nil {
		logger.Warn("Google ID token failed validation", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid Google ID token"})
		return
	}

	userInfo, err := h.googleOAuthService.GetUserInfo(ctx, oauth2Token)
	if err != nil {
		logger.Error("Failed to fetch Google user info", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to fetch Google user info"})
		return
	}

	user, err := h.userService.FindOrCreateGoogleUser(ctx, userInfo)
	if err != nil {
		handleServiceError(c, err, "Failed to resolve Google account")
		return
	}

	accessToken, err := h.auth.issueSession(c, user)
	if err != nil {
		logger.Error("Failed to issue session after Google sign-in", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: accessToken})
}
