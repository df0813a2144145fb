package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/apperrors"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
	portsrepo "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxNotificationRepository struct {
	BaseRepository
}

// newPgxNotificationRepository creates a new repository for the workspace feed.
func newPgxNotificationRepository(pool *pgxpool.Pool) portsrepo.NotificationRepositoryFacade {
	return &PgxNotificationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.NotificationRepositoryFacade = (*PgxNotificationRepository)(nil)

func (r *PgxNotificationRepository) ListNotifications(ctx context.Context, workspaceID string, unreadOnly bool, limit int) ([]domain.Notification, error) {
	query := `
		SELECT notification_id, workspace_id, kind, message, read_at, created_at
		FROM notifications
		WHERE workspace_id = $1
	`
	if unreadOnly {
		query += ` AND read_at IS NULL`
	}
	query += ` ORDER BY created_at DESC LIMIT $2;`

	rows, err := r.Pool.Query(ctx, query, workspaceID, limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query notifications", err)
	}
	defer rows.Close()

	notifications, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Notification, error) {
		var n domain.Notification
		err := row.Scan(&n.NotificationID, &n.WorkspaceID, &n.Kind, &n.Message, &n.ReadAt, &n.CreatedAt)
		return n, err
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect notification rows", err)
	}
	return notifications, nil
}

func (r *PgxNotificationRepository) SaveNotification(ctx context.Context, notification domain.Notification) error {
	query := `
		INSERT INTO notifications (notification_id, workspace_id, kind, message, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query,
		notification.NotificationID,
		notification.WorkspaceID,
		notification.Kind,
		notification.Message,
		notification.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return apperrors.NewValidationFailedError("workspace does not exist")
		}
		return apperrors.NewAppError(500, "failed to save notification "+notification.NotificationID, err)
	}
	return nil
}

func (r *PgxNotificationRepository) MarkNotificationRead(ctx context.Context, workspaceID, notificationID string, readAt time.Time) error {
	query := `
		UPDATE notifications SET read_at = COALESCE(read_at, $3)
		WHERE workspace_id = $1 AND notification_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, workspaceID, notificationID, readAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark notification read "+notificationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
