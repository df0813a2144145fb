package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/services"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/dto"
	"github.com/gin-gonic/gin"
)

// ReportingHandler serves the workspace dashboard aggregates.
type ReportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// NewReportingHandler creates a new ReportingHandler.
func NewReportingHandler(rs portssvc.ReportingSvcFacade) *ReportingHandler {
	return &ReportingHandler{reportingService: rs}
}

// registerReportingRoutes sets up dashboard routes inside the workspace group.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := NewReportingHandler(reportingService)

	rg.GET("/dashboard", h.GetDashboard)
}

// GetDashboard godoc
// @Summary Workspace dashboard
// @Description Returns call, meeting and pipeline aggregates for the workspace, optionally restricted to activity since a date.
// @Tags reporting
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param since query string false "Only count activity on or after this date" Format(date)
// @Success 200 {object} dto.DashboardResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/dashboard [get]
func (h *ReportingHandler) GetDashboard(c *gin.Context) {
	var params dto.DashboardParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	var since time.Time
	if params.Since != nil {
		since = *params.Since
	}

	dashboard, err := h.reportingService.GetWorkspaceDashboard(c.Request.Context(), c.Param("workspace_id"), since)
	if err != nil {
		handleServiceError(c, err, "Workspace not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToDashboardResponse(dashboard))
}
