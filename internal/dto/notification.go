package dto

import (
	"time"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
)

// ListNotificationsParams defines query parameters for the workspace feed.
type ListNotificationsParams struct {
	UnreadOnly bool `form:"unreadOnly"`
	Limit      int  `form:"limit,default=50"`
}

// NotificationResponse defines data returned for a feed entry.
type NotificationResponse struct {
	NotificationID string                  `json:"notificationID"`
	Kind           domain.NotificationKind `json:"kind"`
	Message        string                  `json:"message"`
	ReadAt         *time.Time              `json:"readAt,omitempty"`
	CreatedAt      time.Time               `json:"createdAt"`
}

// ToNotificationResponse converts domain.Notification to DTO.
func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		NotificationID: n.NotificationID,
		Kind:           n.Kind,
		Message:        n.Message,
		ReadAt:         n.ReadAt,
		CreatedAt:      n.CreatedAt,
	}
}

// ListNotificationsResponse wraps the workspace feed.
type ListNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

// ToListNotificationsResponse converts a slice of domain.Notification to DTO.
func ToListNotificationsResponse(notifications []domain.Notification) ListNotificationsResponse {
	list := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		list[i] = ToNotificationResponse(&n)
	}
	return ListNotificationsResponse{Notifications: list}
}
