package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/apperrors"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
	portsrepo "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/repositories"
	portssvc "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/services"
	"github.com/google/uuid"
)

const defaultNotificationLimit = 50

// notificationService implements the NotificationSvcFacade.
type notificationService struct {
	BaseService
	notificationRepo portsrepo.NotificationRepositoryFacade
}

// NewNotificationService creates a new notification service.
func NewNotificationService(notificationRepo portsrepo.NotificationRepositoryFacade) portssvc.NotificationSvcFacade {
	return &notificationService{notificationRepo: notificationRepo}
}

var _ portssvc.NotificationSvcFacade = (*notificationService)(nil)

// Publish appends an entry to the workspace feed.
func (s *notificationService) Publish(ctx context.Context, workspaceID string, kind domain.NotificationKind, message string) error {
	if message == "" {
		return apperrors.NewValidationFailedError("notification message is required")
	}
	notification := domain.Notification{
		NotificationID: uuid.NewString(),
		WorkspaceID:    workspaceID,
		Kind:           kind,
		Message:        message,
		CreatedAt:      time.Now(),
	}
	if err := s.notificationRepo.SaveNotification(ctx, notification); err != nil {
		s.LogError(ctx, err, "Failed to save notification",
			slog.String("workspace_id", workspaceID),
			slog.String("kind", string(kind)))
		return err
	}
	return nil
}

// ListNotifications returns the most recent feed entries, newest first.
func (s *notificationService) ListNotifications(ctx context.Context, workspaceID string, unreadOnly bool, limit int) ([]domain.Notification, error) {
	if limit <= 0 || limit > defaultNotificationLimit {
		limit = defaultNotificationLimit
	}
	notifications, err := s.notificationRepo.ListNotifications(ctx, workspaceID, unreadOnly, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list notifications", slog.String("workspace_id", workspaceID))
		return nil, err
	}
	if notifications == nil {
		return []domain.Notification{}, nil
	}
	return notifications, nil
}

// MarkRead marks a single feed entry as read. Marking an already-read entry
// is a no-op.
func (s *notificationService) MarkRead(ctx context.Context, workspaceID, notificationID string) error {
	if err := s.notificationRepo.MarkNotificationRead(ctx, workspaceID, notificationID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to mark notification read", slog.String("notification_id", notificationID))
		return err
	}
	return nil
}
