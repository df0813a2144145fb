package handlers

import (
	"net/http"

	portssvc "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/services"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/dto"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// CallLogHandler handles dial recording and listing inside a workspace. The
// record endpoint is the one the dialer integration hits with an x-api-key.
type CallLogHandler struct {
	callLogService portssvc.CallLogSvcFacade
}

// NewCallLogHandler creates a new CallLogHandler.
func NewCallLogHandler(cs portssvc.CallLogSvcFacade) *CallLogHandler {
	return &CallLogHandler{callLogService: cs}
}

// registerCallLogRoutes sets up call log routes inside the workspace group.
func registerCallLogRoutes(rg *gin.RouterGroup, callLogService portssvc.CallLogSvcFacade) {
	h := NewCallLogHandler(callLogService)

	callLogs := rg.Group("/call-logs")
	{
		callLogs.POST("", h.RecordCall)
		callLogs.GET("", h.ListCallLogs)
		callLogs.GET("/:call_log_id", h.GetCallLog)
	}
}

// RecordCall godoc
// @Summary Record a call
// @Description Records one dial against a contact. Conversation, meeting-booked and bad-number outcomes advance the contact's status.
// @Tags call-logs
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param call body dto.RecordCallRequest true "Call details"
// @Success 201 {object} dto.CallLogResponse
// @Failure 400 {object} ErrorResponse "Do-not-call contact or cross-campaign contact"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/call-logs [post]
func (h *CallLogHandler) RecordCall(c *gin.Context) {
	var req dto.RecordCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	bdrUserID, _ := middleware.GetUserIDFromContext(c)
	callLog, err := h.callLogService.RecordCall(c.Request.Context(), c.Param("workspace_id"), req.ToNewCallLog(), bdrUserID)
	if err != nil {
		handleServiceError(c, err, "Failed to record call")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCallLogResponse(callLog))
}

// ListCallLogs godoc
// @Summary List call logs
// @Description Lists a workspace's call history, cursor-paginated newest first. Optionally filtered to one campaign.
// @Tags call-logs
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param campaignID query string false "Restrict to one campaign"
// @Param pageToken query string false "Cursor from the previous page"
// @Param limit query int false "Page size" default(50)
// @Success 200 {object} dto.ListCallLogsResponse
// @Failure 400 {object} ErrorResponse "Malformed page token"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/call-logs [get]
func (h *CallLogHandler) ListCallLogs(c *gin.Context) {
	var params dto.ListCallLogsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	page, err := h.callLogService.ListCallLogs(c.Request.Context(), c.Param("workspace_id"),
		params.CampaignID, params.PageToken, params.Limit)
	if err != nil {
		handleServiceError(c, err, "Failed to list call logs")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCallLogsResponse(page))
}

// GetCallLog godoc
// @Summary Get call log
// @Tags call-logs
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param call_log_id path string true "Call log ID"
// @Success 200 {object} dto.CallLogResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/call-logs/{call_log_id} [get]
func (h *CallLogHandler) GetCallLog(c *gin.Context) {
	callLog, err := h.callLogService.GetCallLog(c.Request.Context(), c.Param("workspace_id"), c.Param("call_log_id"))
	if err != nil {
		handleServiceError(c, err, "Call log not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToCallLogResponse(callLog))
}
