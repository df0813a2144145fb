package pgsql

import (
	"context"
	"errors"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/apperrors"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
	portsrepo "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxMeetingRepository struct {
	BaseRepository
}

// newPgxMeetingRepository creates a new repository for meeting data.
func newPgxMeetingRepository(pool *pgxpool.Pool) portsrepo.MeetingRepositoryFacade {
	return &PgxMeetingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.MeetingRepositoryFacade = (*PgxMeetingRepository)(nil)

var FULL_MEETING_SELECT_QUERY = `
SELECT
	m.meeting_id, m.workspace_id, m.campaign_id, m.contact_id, m.booked_by,
	m.scheduled_at, m.status, m.pipeline_value, m.currency_code, m.notes,
	m.created_at, m.created_by, m.last_updated_at, m.last_updated_by
FROM meetings m
`

func scanMeeting(row pgx.CollectableRow) (domain.Meeting, error) {
	var meeting domain.Meeting
	err := row.Scan(
		&meeting.MeetingID,
		&meeting.WorkspaceID,
		&meeting.CampaignID,
		&meeting.ContactID,
		&meeting.BookedBy,
		&meeting.ScheduledAt,
		&meeting.Status,
		&meeting.PipelineValue,
		&meeting.CurrencyCode,
		&meeting.Notes,
		&meeting.CreatedAt,
		&meeting.CreatedBy,
		&meeting.LastUpdatedAt,
		&meeting.LastUpdatedBy,
	)
	return meeting, err
}

func (r *PgxMeetingRepository) getMeetings(ctx context.Context, filterQuery string, args ...any) ([]domain.Meeting, error) {
	query := FULL_MEETING_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query meetings", err)
	}
	defer rows.Close()

	meetings, err := pgx.CollectRows(rows, scanMeeting)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect meeting rows", err)
	}
	return meetings, nil
}

func (r *PgxMeetingRepository) FindMeetingByID(ctx context.Context, workspaceID, meetingID string) (*domain.Meeting, error) {
	meetings, err := r.getMeetings(ctx,
		`WHERE m.workspace_id = $1 AND m.meeting_id = $2`,
		workspaceID, meetingID)
	if err != nil {
		return nil, err
	}
	if len(meetings) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &meetings[0], nil
}

func (r *PgxMeetingRepository) ListMeetingsByWorkspace(ctx context.Context, workspaceID string) ([]domain.Meeting, error) {
	return r.getMeetings(ctx,
		`WHERE m.workspace_id = $1 ORDER BY m.scheduled_at`,
		workspaceID)
}

func (r *PgxMeetingRepository) SaveMeeting(ctx context.Context, meeting domain.Meeting) error {
	query := `
		INSERT INTO meetings (
			meeting_id, workspace_id, campaign_id, contact_id, booked_by,
			scheduled_at, status, pipeline_value, currency_code, notes,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		meeting.MeetingID,
		meeting.WorkspaceID,
		meeting.CampaignID,
		meeting.ContactID,
		meeting.BookedBy,
		meeting.ScheduledAt,
		meeting.Status,
		meeting.PipelineValue,
		meeting.CurrencyCode,
		meeting.Notes,
		meeting.CreatedAt,
		meeting.CreatedBy,
		meeting.LastUpdatedAt,
		meeting.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("meeting " + meeting.MeetingID + " already exists")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("campaign or contact does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to save meeting "+meeting.MeetingID, err)
	}
	return nil
}

func (r *PgxMeetingRepository) UpdateMeeting(ctx context.Context, meeting domain.Meeting) error {
	query := `
		UPDATE meetings SET
			scheduled_at = $3, status = $4, pipeline_value = $5,
			currency_code = $6, notes = $7,
			last_updated_at = $8, last_updated_by = $9
		WHERE workspace_id = $1 AND meeting_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		meeting.WorkspaceID,
		meeting.MeetingID,
		meeting.ScheduledAt,
		meeting.Status,
		meeting.PipelineValue,
		meeting.CurrencyCode,
		meeting.Notes,
		meeting.LastUpdatedAt,
		meeting.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update meeting "+meeting.MeetingID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
