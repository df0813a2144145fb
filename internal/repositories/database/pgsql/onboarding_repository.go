package pgsql

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/apperrors"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
	portsrepo "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxOnboardingRepository struct {
	BaseRepository
}

// newPgxOnboardingRepository creates a new repository for targeting briefs.
// Step payloads live in a single JSONB column keyed by step name.
func newPgxOnboardingRepository(pool *pgxpool.Pool) portsrepo.OnboardingRepositoryFacade {
	return &PgxOnboardingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.OnboardingRepositoryFacade = (*PgxOnboardingRepository)(nil)

func (r *PgxOnboardingRepository) FindBriefByWorkspace(ctx context.Context, workspaceID string) (*domain.OnboardingBrief, error) {
	query := `
		SELECT brief_id, workspace_id, status, steps, submitted_at,
			created_at, created_by, last_updated_at, last_updated_by
		FROM onboarding_briefs
		WHERE workspace_id = $1;
	`
	var brief domain.OnboardingBrief
	var steps []byte
	err := r.Pool.QueryRow(ctx, query, workspaceID).Scan(
		&brief.BriefID,
		&brief.WorkspaceID,
		&brief.Status,
		&steps,
		&brief.SubmittedAt,
		&brief.CreatedAt,
		&brief.CreatedBy,
		&brief.LastUpdatedAt,
		&brief.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find brief for workspace "+workspaceID, err)
	}

	if len(steps) > 0 {
		if err := json.Unmarshal(steps, &brief.Steps); err != nil {
			return nil, apperrors.NewAppError(500, "failed to decode brief steps", err)
		}
	}
	if brief.Steps == nil {
		brief.Steps = make(map[domain.BriefStep]json.RawMessage)
	}
	return &brief, nil
}

func (r *PgxOnboardingRepository) SaveBrief(ctx context.Context, brief domain.OnboardingBrief) error {
	steps, err := json.Marshal(brief.Steps)
	if err != nil {
		return apperrors.NewAppError(500, "failed to encode brief steps", err)
	}
	query := `
		INSERT INTO onboarding_briefs (
			brief_id, workspace_id, status, steps, submitted_at,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = r.Pool.Exec(ctx, query,
		brief.BriefID,
		brief.WorkspaceID,
		brief.Status,
		steps,
		brief.SubmittedAt,
		brief.CreatedAt,
		brief.CreatedBy,
		brief.LastUpdatedAt,
		brief.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation, one brief per workspace
				return apperrors.NewConflictError("brief for workspace " + brief.WorkspaceID + " already exists")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("workspace does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to save brief "+brief.BriefID, err)
	}
	return nil
}

func (r *PgxOnboardingRepository) UpdateBrief(ctx context.Context, brief domain.OnboardingBrief) error {
	steps, err := json.Marshal(brief.Steps)
	if err != nil {
		return apperrors.NewAppError(500, "failed to encode brief steps", err)
	}
	query := `
		UPDATE onboarding_briefs SET
			status = $2, steps = $3, submitted_at = $4,
			last_updated_at = $5, last_updated_by = $6
		WHERE brief_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		brief.BriefID,
		brief.Status,
		steps,
		brief.SubmittedAt,
		brief.LastUpdatedAt,
		brief.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update brief "+brief.BriefID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
