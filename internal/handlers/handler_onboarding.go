package handlers

import (
	"net/http"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
	portssvc "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/services"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/dto"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// OnboardingHandler serves the workspace targeting brief.
type OnboardingHandler struct {
	onboardingService portssvc.OnboardingSvcFacade
}

// NewOnboardingHandler creates a new OnboardingHandler.
func NewOnboardingHandler(os portssvc.OnboardingSvcFacade) *OnboardingHandler {
	return &OnboardingHandler{onboardingService: os}
}

// registerOnboardingRoutes sets up brief routes inside the workspace group.
func registerOnboardingRoutes(rg *gin.RouterGroup, onboardingService portssvc.OnboardingSvcFacade) {
	h := NewOnboardingHandler(onboardingService)

	brief := rg.Group("/brief")
	{
		brief.GET("", h.GetBrief)
		brief.PUT("/steps/:step", h.SaveStep)
		brief.POST("/submit", h.SubmitBrief)
	}
}

// GetBrief godoc
// @Summary Get targeting brief
// @Description Returns the workspace's targeting brief, creating an empty draft on first access.
// @Tags onboarding
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Success 200 {object} dto.BriefResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/brief [get]
func (h *OnboardingHandler) GetBrief(c *gin.Context) {
	brief, err := h.onboardingService.GetBrief(c.Request.Context(), c.Param("workspace_id"))
	if err != nil {
		handleServiceError(c, err, "Failed to load brief")
		return
	}
	c.JSON(http.StatusOK, dto.ToBriefResponse(brief))
}

// SaveStep godoc
// @Summary Save a brief step
// @Description Stores one step's payload. Rejected once the brief is submitted.
// @Tags onboarding
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param step path string true "Step name" Enums(company_profile, ideal_customer, targeting, script_preferences)
// @Param payload body dto.SaveBriefStepRequest true "Step payload"
// @Success 200 {object} dto.BriefResponse
// @Failure 400 {object} ErrorResponse "Unknown step or invalid payload"
// @Failure 409 {object} ErrorResponse "Brief already submitted"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/brief/steps/{step} [put]
func (h *OnboardingHandler) SaveStep(c *gin.Context) {
	var req dto.SaveBriefStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	brief, err := h.onboardingService.SaveStep(c.Request.Context(), c.Param("workspace_id"),
		domain.BriefStep(c.Param("step")), req.Payload, userID)
	if err != nil {
		handleServiceError(c, err, "Failed to save brief step")
		return
	}
	c.JSON(http.StatusOK, dto.ToBriefResponse(brief))
}

// SubmitBrief godoc
// @Summary Submit targeting brief
// @Description Submits the brief once every step is complete, freezing it and notifying the feed.
// @Tags onboarding
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Success 200 {object} dto.BriefResponse
// @Failure 400 {object} ErrorResponse "Brief is incomplete"
// @Failure 409 {object} ErrorResponse "Brief already submitted"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/brief/submit [post]
func (h *OnboardingHandler) SubmitBrief(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	brief, err := h.onboardingService.SubmitBrief(c.Request.Context(), c.Param("workspace_id"), userID)
	if err != nil {
		handleServiceError(c, err, "Failed to submit brief")
		return
	}
	c.JSON(http.StatusOK, dto.ToBriefResponse(brief))
}
