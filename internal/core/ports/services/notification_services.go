package services

import (
	"context"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
)

// NotificationSvcFacade manages a workspace's activity feed.
type NotificationSvcFacade interface {
	Publish(ctx context.Context, workspaceID string, kind domain.NotificationKind, message string) error
	ListNotifications(ctx context.Context, workspaceID string, unreadOnly bool, limit int) ([]domain.Notification, error)
	MarkRead(ctx context.Context, workspaceID, notificationID string) error
}
