package handlers

import (
	"net/http"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
	portssvc "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/services"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/dto"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// CampaignHandler handles campaign requests inside a workspace.
type CampaignHandler struct {
	campaignService portssvc.CampaignSvcFacade
}

// NewCampaignHandler creates a new CampaignHandler.
func NewCampaignHandler(cs portssvc.CampaignSvcFacade) *CampaignHandler {
	return &CampaignHandler{campaignService: cs}
}

// registerCampaignRoutes sets up campaign routes inside the workspace group.
func registerCampaignRoutes(rg *gin.RouterGroup, campaignService portssvc.CampaignSvcFacade) {
	h := NewCampaignHandler(campaignService)

	campaigns := rg.Group("/campaigns")
	{
		campaigns.POST("", h.CreateCampaign)
		campaigns.GET("", h.ListCampaigns)
		campaigns.GET("/:campaign_id", h.GetCampaign)
		campaigns.PUT("/:campaign_id/status", h.UpdateCampaignStatus)
		campaigns.DELETE("/:campaign_id", h.DeleteCampaign)
	}
}

// CreateCampaign godoc
// @Summary Create a campaign
// @Description Creates a campaign in DRAFT status.
// @Tags campaigns
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param campaign body dto.CreateCampaignRequest true "Campaign details"
// @Success 201 {object} dto.CampaignResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/campaigns [post]
func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	var req dto.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	creatorUserID, _ := middleware.GetUserIDFromContext(c)
	campaign, err := h.campaignService.CreateCampaign(c.Request.Context(), c.Param("workspace_id"),
		req.Name, req.Description, req.TargetCallVolume, req.StartDate, creatorUserID)
	if err != nil {
		handleServiceError(c, err, "Failed to create campaign")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCampaignResponse(campaign))
}

// ListCampaigns godoc
// @Summary List campaigns
// @Tags campaigns
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Success 200 {object} dto.ListCampaignsResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/campaigns [get]
func (h *CampaignHandler) ListCampaigns(c *gin.Context) {
	campaigns, err := h.campaignService.ListCampaigns(c.Request.Context(), c.Param("workspace_id"))
	if err != nil {
		handleServiceError(c, err, "Failed to list campaigns")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCampaignsResponse(campaigns))
}

// GetCampaign godoc
// @Summary Get campaign
// @Tags campaigns
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param campaign_id path string true "Campaign ID"
// @Success 200 {object} dto.CampaignResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/campaigns/{campaign_id} [get]
func (h *CampaignHandler) GetCampaign(c *gin.Context) {
	campaign, err := h.campaignService.GetCampaign(c.Request.Context(), c.Param("workspace_id"), c.Param("campaign_id"))
	if err != nil {
		handleServiceError(c, err, "Campaign not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToCampaignResponse(campaign))
}

// UpdateCampaignStatus godoc
// @Summary Update campaign status
// @Description Moves a campaign through its lifecycle. Launching to ACTIVE publishes a feed notification.
// @Tags campaigns
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param campaign_id path string true "Campaign ID"
// @Param status body dto.UpdateCampaignStatusRequest true "Target status"
// @Success 200 {object} dto.CampaignResponse
// @Failure 400 {object} ErrorResponse "Illegal status transition"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/campaigns/{campaign_id}/status [put]
func (h *CampaignHandler) UpdateCampaignStatus(c *gin.Context) {
	var req dto.UpdateCampaignStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	updaterUserID, _ := middleware.GetUserIDFromContext(c)
	campaign, err := h.campaignService.UpdateCampaignStatus(c.Request.Context(), c.Param("workspace_id"),
		c.Param("campaign_id"), domain.CampaignStatus(req.Status), updaterUserID)
	if err != nil {
		handleServiceError(c, err, "Failed to update campaign status")
		return
	}
	c.JSON(http.StatusOK, dto.ToCampaignResponse(campaign))
}

// DeleteCampaign godoc
// @Summary Delete campaign
// @Description Soft-deletes a campaign; its call history remains for reporting.
// @Tags campaigns
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param campaign_id path string true "Campaign ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/campaigns/{campaign_id} [delete]
func (h *CampaignHandler) DeleteCampaign(c *gin.Context) {
	deleterUserID, _ := middleware.GetUserIDFromContext(c)
	if err := h.campaignService.DeleteCampaign(c.Request.Context(), c.Param("workspace_id"),
		c.Param("campaign_id"), deleterUserID); err != nil {
		handleServiceError(c, err, "Campaign not found")
		return
	}
	c.Status(http.StatusNoContent)
}
