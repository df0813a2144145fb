package handlers

import (
	"net/http"

	portssvc "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/services"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/dto"
	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the workspace activity feed.
type NotificationHandler struct {
	notificationService portssvc.NotificationSvcFacade
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(ns portssvc.NotificationSvcFacade) *NotificationHandler {
	return &NotificationHandler{notificationService: ns}
}

// registerNotificationRoutes sets up feed routes inside the workspace group.
func registerNotificationRoutes(rg *gin.RouterGroup, notificationService portssvc.NotificationSvcFacade) {
	h := NewNotificationHandler(notificationService)

	notifications := rg.Group("/notifications")
	{
		notifications.GET("", h.ListNotifications)
		notifications.PUT("/:notification_id/read", h.MarkRead)
	}
}

// ListNotifications godoc
// @Summary List feed entries
// @Description Lists the workspace activity feed, newest first.
// @Tags notifications
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param unreadOnly query bool false "Only unread entries"
// @Param limit query int false "Page size" default(50)
// @Success 200 {object} dto.ListNotificationsResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	var params dto.ListNotificationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	notifications, err := h.notificationService.ListNotifications(c.Request.Context(), c.Param("workspace_id"),
		params.UnreadOnly, params.Limit)
	if err != nil {
		handleServiceError(c, err, "Failed to list notifications")
		return
	}
	c.JSON(http.StatusOK, dto.ToListNotificationsResponse(notifications))
}

// MarkRead godoc
// @Summary Mark feed entry read
// @Description Marks a feed entry read. Already-read entries keep their original read time.
// @Tags notifications
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param notification_id path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/notifications/{notification_id}/read [put]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	if err := h.notificationService.MarkRead(c.Request.Context(), c.Param("workspace_id"), c.Param("notification_id")); err != nil {
		handleServiceError(c, err, "Notification not found")
		return
	}
	c.Status(http.StatusNoContent)
}
