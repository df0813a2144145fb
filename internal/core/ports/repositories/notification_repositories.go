package repositories

import (
	"context"
	"time"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
)

// NotificationRepositoryFacade manages a workspace's activity feed.
type NotificationRepositoryFacade interface {
	ListNotifications(ctx context.Context, workspaceID string, unreadOnly bool, limit int) ([]domain.Notification, error)
	SaveNotification(ctx context.Context, notification domain.Notification) error
	MarkNotificationRead(ctx context.Context, workspaceID, notificationID string, readAt time.Time) error
}
