package pgsql

import (
	"context"
	"time"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/apperrors"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
	portsrepo "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new repository for dashboard aggregates.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepositoryFacade {
	return &PgxReportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ReportingRepositoryFacade = (*PgxReportingRepository)(nil)

// GetWorkspaceDashboard computes the landing-screen aggregates in one query.
// A zero since covers all time; the sentinel is pushed into SQL so every
// branch stays a single round trip.
func (r *PgxReportingRepository) GetWorkspaceDashboard(ctx context.Context, workspaceID string, since time.Time) (*domain.WorkspaceDashboard, error) {
	query := `
		SELECT
			(SELECT count(*) FROM call_logs l
				WHERE l.workspace_id = $1 AND ($2::timestamptz IS NULL OR l.called_at >= $2)) AS calls_placed,
			(SELECT count(*) FROM call_logs l
				WHERE l.workspace_id = $1 AND l.outcome IN ('CONVERSATION', 'MEETING_BOOKED')
				AND ($2::timestamptz IS NULL OR l.called_at >= $2)) AS conversations,
			(SELECT count(*) FROM meetings m
				WHERE m.workspace_id = $1 AND ($2::timestamptz IS NULL OR m.created_at >= $2)) AS meetings_booked,
			(SELECT count(*) FROM meetings m
				WHERE m.workspace_id = $1 AND m.status = 'COMPLETED'
				AND ($2::timestamptz IS NULL OR m.created_at >= $2)) AS meetings_completed,
			(SELECT COALESCE(sum(m.pipeline_value), 0) FROM meetings m
				WHERE m.workspace_id = $1 AND m.status NOT IN ('CANCELLED', 'NO_SHOW')
				AND ($2::timestamptz IS NULL OR m.created_at >= $2)) AS pipeline_total,
			(SELECT count(*) FROM campaigns c
				WHERE c.workspace_id = $1 AND c.status = 'ACTIVE' AND c.deleted_at IS NULL) AS active_campaigns;
	`

	var sinceArg *time.Time
	if !since.IsZero() {
		sinceArg = &since
	}

	dashboard := domain.WorkspaceDashboard{WorkspaceID: workspaceID}
	err := r.Pool.QueryRow(ctx, query, workspaceID, sinceArg).Scan(
		&dashboard.CallsPlaced,
		&dashboard.Conversations,
		&dashboard.MeetingsBooked,
		&dashboard.MeetingsCompleted,
		&dashboard.PipelineTotal,
		&dashboard.ActiveCampaigns,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to compute dashboard for workspace "+workspaceID, err)
	}
	return &dashboard, nil
}
