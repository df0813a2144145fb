package handlers

import (
	"net/http"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
	portssvc "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/services"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/dto"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// MeetingHandler handles meeting requests inside a workspace.
type MeetingHandler struct {
	meetingService portssvc.MeetingSvcFacade
}

// NewMeetingHandler creates a new MeetingHandler.
func NewMeetingHandler(ms portssvc.MeetingSvcFacade) *MeetingHandler {
	return &MeetingHandler{meetingService: ms}
}

// registerMeetingRoutes sets up meeting routes inside the workspace group.
func registerMeetingRoutes(rg *gin.RouterGroup, meetingService portssvc.MeetingSvcFacade) {
	h := NewMeetingHandler(meetingService)

	meetings := rg.Group("/meetings")
	{
		meetings.POST("", h.BookMeeting)
		meetings.GET("", h.ListMeetings)
		meetings.GET("/:meeting_id", h.GetMeeting)
		meetings.PUT("/:meeting_id/status", h.UpdateMeetingStatus)
	}
}

// BookMeeting godoc
// @Summary Book a meeting
// @Description Books a meeting with a contact and publishes a feed notification. Pipeline value requires a currency code.
// @Tags meetings
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param meeting body dto.BookMeetingRequest true "Meeting details"
// @Success 201 {object} dto.MeetingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Contact or campaign not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/meetings [post]
func (h *MeetingHandler) BookMeeting(c *gin.Context) {
	var req dto.BookMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	bookedByUserID, _ := middleware.GetUserIDFromContext(c)
	meeting, err := h.meetingService.BookMeeting(c.Request.Context(), c.Param("workspace_id"), req.ToNewMeeting(), bookedByUserID)
	if err != nil {
		handleServiceError(c, err, "Failed to book meeting")
		return
	}
	c.JSON(http.StatusCreated, dto.ToMeetingResponse(meeting))
}

// ListMeetings godoc
// @Summary List meetings
// @Description Lists a workspace's meetings, soonest first.
// @Tags meetings
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Success 200 {object} dto.ListMeetingsResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/meetings [get]
func (h *MeetingHandler) ListMeetings(c *gin.Context) {
	meetings, err := h.meetingService.ListMeetings(c.Request.Context(), c.Param("workspace_id"))
	if err != nil {
		handleServiceError(c, err, "Failed to list meetings")
		return
	}
	c.JSON(http.StatusOK, dto.ToListMeetingsResponse(meetings))
}

// GetMeeting godoc
// @Summary Get meeting
// @Tags meetings
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param meeting_id path string true "Meeting ID"
// @Success 200 {object} dto.MeetingResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/meetings/{meeting_id} [get]
func (h *MeetingHandler) GetMeeting(c *gin.Context) {
	meeting, err := h.meetingService.GetMeeting(c.Request.Context(), c.Param("workspace_id"), c.Param("meeting_id"))
	if err != nil {
		handleServiceError(c, err, "Meeting not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToMeetingResponse(meeting))
}

// UpdateMeetingStatus godoc
// @Summary Update meeting status
// @Tags meetings
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param meeting_id path string true "Meeting ID"
// @Param status body dto.UpdateMeetingStatusRequest true "Target status"
// @Success 200 {object} dto.MeetingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/meetings/{meeting_id}/status [put]
func (h *MeetingHandler) UpdateMeetingStatus(c *gin.Context) {
	var req dto.UpdateMeetingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	updaterUserID, _ := middleware.GetUserIDFromContext(c)
	meeting, err := h.meetingService.UpdateMeetingStatus(c.Request.Context(), c.Param("workspace_id"),
		c.Param("meeting_id"), domain.MeetingStatus(req.Status), updaterUserID)
	if err != nil {
		handleServiceError(c, err, "Failed to update meeting status")
		return
	}
	c.JSON(http.StatusOK, dto.ToMeetingResponse(meeting))
}
