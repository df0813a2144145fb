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

type PgxWorkspaceRepository struct {
	BaseRepository
}

// newPgxWorkspaceRepository creates a new repository for workspace data.
func newPgxWorkspaceRepository(pool *pgxpool.Pool) portsrepo.WorkspaceRepositoryFacade {
	return &PgxWorkspaceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.WorkspaceRepositoryFacade = (*PgxWorkspaceRepository)(nil)

var FULL_WORKSPACE_SELECT_QUERY = `
SELECT
	w.workspace_id, w.name, w.company_name, w.status,
	w.created_at, w.created_by, w.last_updated_at, w.last_updated_by
FROM workspaces w
`

func scanWorkspace(row pgx.CollectableRow) (domain.Workspace, error) {
	var ws domain.Workspace
	err := row.Scan(
		&ws.WorkspaceID,
		&ws.Name,
		&ws.CompanyName,
		&ws.Status,
		&ws.CreatedAt,
		&ws.CreatedBy,
		&ws.LastUpdatedAt,
		&ws.LastUpdatedBy,
	)
	return ws, err
}

func (r *PgxWorkspaceRepository) getWorkspaces(ctx context.Context, filterQuery string, args ...any) ([]domain.Workspace, error) {
	query := FULL_WORKSPACE_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query workspaces", err)
	}
	defer rows.Close()

	workspaces, err := pgx.CollectRows(rows, scanWorkspace)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect workspace rows", err)
	}
	return workspaces, nil
}

func (r *PgxWorkspaceRepository) FindWorkspaceByID(ctx context.Context, workspaceID string) (*domain.Workspace, error) {
	workspaces, err := r.getWorkspaces(ctx, `WHERE w.workspace_id = $1`, workspaceID)
	if err != nil {
		return nil, err
	}
	if len(workspaces) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &workspaces[0], nil
}

func (r *PgxWorkspaceRepository) ListWorkspaces(ctx context.Context, limit, offset int) ([]domain.Workspace, error) {
	return r.getWorkspaces(ctx, `ORDER BY w.name LIMIT $1 OFFSET $2`, limit, offset)
}

func (r *PgxWorkspaceRepository) SaveWorkspace(ctx context.Context, workspace domain.Workspace) error {
	query := `
		INSERT INTO workspaces (
			workspace_id, name, company_name, status,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		workspace.WorkspaceID,
		workspace.Name,
		workspace.CompanyName,
		workspace.Status,
		workspace.CreatedAt,
		workspace.CreatedBy,
		workspace.LastUpdatedAt,
		workspace.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("workspace " + workspace.WorkspaceID + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save workspace "+workspace.WorkspaceID, err)
	}
	return nil
}

func (r *PgxWorkspaceRepository) UpdateWorkspace(ctx context.Context, workspace domain.Workspace) error {
	query := `
		UPDATE workspaces SET
			name = $2, company_name = $3, status = $4,
			last_updated_at = $5, last_updated_by = $6
		WHERE workspace_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		workspace.WorkspaceID,
		workspace.Name,
		workspace.CompanyName,
		workspace.Status,
		workspace.LastUpdatedAt,
		workspace.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update workspace "+workspace.WorkspaceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
