package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/apperrors"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
	portsrepo "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCallLogRepository struct {
	BaseRepository
}

// newPgxCallLogRepository creates a new repository for call log data.
func newPgxCallLogRepository(pool *pgxpool.Pool) portsrepo.CallLogRepositoryFacade {
	return &PgxCallLogRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CallLogRepositoryFacade = (*PgxCallLogRepository)(nil)

var FULL_CALLLOG_SELECT_QUERY = `
SELECT
	l.call_log_id, l.workspace_id, l.campaign_id, l.contact_id, l.bdr_user_id,
	l.outcome, l.duration_seconds, l.notes, l.called_at,
	l.created_at, l.created_by, l.last_updated_at, l.last_updated_by
FROM call_logs l
`

func scanCallLog(row pgx.CollectableRow) (domain.CallLog, error) {
	var log domain.CallLog
	err := row.Scan(
		&log.CallLogID,
		&log.WorkspaceID,
		&log.CampaignID,
		&log.ContactID,
		&log.BDRUserID,
		&log.Outcome,
		&log.DurationSeconds,
		&log.Notes,
		&log.CalledAt,
		&log.CreatedAt,
		&log.CreatedBy,
		&log.LastUpdatedAt,
		&log.LastUpdatedBy,
	)
	return log, err
}

func (r *PgxCallLogRepository) getCallLogs(ctx context.Context, filterQuery string, args ...any) ([]domain.CallLog, error) {
	query := FULL_CALLLOG_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query call logs", err)
	}
	defer rows.Close()

	logs, err := pgx.CollectRows(rows, scanCallLog)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect call log rows", err)
	}
	return logs, nil
}

func (r *PgxCallLogRepository) FindCallLogByID(ctx context.Context, workspaceID, callLogID string) (*domain.CallLog, error) {
	logs, err := r.getCallLogs(ctx,
		`WHERE l.workspace_id = $1 AND l.call_log_id = $2`,
		workspaceID, callLogID)
	if err != nil {
		return nil, err
	}
	if len(logs) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &logs[0], nil
}

// ListCallLogs returns one keyset page ordered newest first. An empty
// campaignID lists across the whole workspace.
func (r *PgxCallLogRepository) ListCallLogs(ctx context.Context, workspaceID string, campaignID string, beforeCalledAt *time.Time, beforeID string, limit int) ([]domain.CallLog, error) {
	filter := `WHERE l.workspace_id = $1`
	args := []any{workspaceID}
	if campaignID != "" {
		filter += ` AND l.campaign_id = $2`
		args = append(args, campaignID)
	}
	if beforeCalledAt != nil {
		filter += ` AND (l.called_at, l.call_log_id) < ($` + strconv.Itoa(len(args)+1) + `, $` + strconv.Itoa(len(args)+2) + `)`
		args = append(args, *beforeCalledAt, beforeID)
	}
	filter += ` ORDER BY l.called_at DESC, l.call_log_id DESC LIMIT $` + strconv.Itoa(len(args)+1)
	args = append(args, limit)

	return r.getCallLogs(ctx, filter, args...)
}

func (r *PgxCallLogRepository) SaveCallLog(ctx context.Context, log domain.CallLog) error {
	query := `
		INSERT INTO call_logs (
			call_log_id, workspace_id, campaign_id, contact_id, bdr_user_id,
			outcome, duration_seconds, notes, called_at,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		log.CallLogID,
		log.WorkspaceID,
		log.CampaignID,
		log.ContactID,
		log.BDRUserID,
		log.Outcome,
		log.DurationSeconds,
		log.Notes,
		log.CalledAt,
		log.CreatedAt,
		log.CreatedBy,
		log.LastUpdatedAt,
		log.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("call log " + log.CallLogID + " already exists")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("campaign or contact does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to save call log "+log.CallLogID, err)
	}
	return nil
}
