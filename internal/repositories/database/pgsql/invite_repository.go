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

type PgxInviteRepository struct {
	BaseRepository
}

// newPgxInviteRepository creates a new repository for invites.
func newPgxInviteRepository(pool *pgxpool.Pool) portsrepo.InviteRepositoryFacade {
	return &PgxInviteRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.InviteRepositoryFacade = (*PgxInviteRepository)(nil)

var FULL_INVITE_SELECT_QUERY = `
SELECT
	i.invite_id, i.email, i.requested_role, i.workspace_id, i.token_hash,
	i.status, i.expires_at, i.accepted_by,
	i.created_at, i.created_by, i.last_updated_at, i.last_updated_by
FROM invites i
`

func scanInvite(row pgx.CollectableRow) (domain.Invite, error) {
	var invite domain.Invite
	err := row.Scan(
		&invite.InviteID,
		&invite.Email,
		&invite.RequestedRole,
		&invite.WorkspaceID,
		&invite.TokenHash,
		&invite.Status,
		&invite.ExpiresAt,
		&invite.AcceptedBy,
		&invite.CreatedAt,
		&invite.CreatedBy,
		&invite.LastUpdatedAt,
		&invite.LastUpdatedBy,
	)
	return invite, err
}

func (r *PgxInviteRepository) getInvites(ctx context.Context, filterQuery string, args ...any) ([]domain.Invite, error) {
	query := FULL_INVITE_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query invites", err)
	}
	defer rows.Close()

	invites, err := pgx.CollectRows(rows, scanInvite)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect invite rows", err)
	}
	return invites, nil
}

func (r *PgxInviteRepository) FindInviteByID(ctx context.Context, inviteID string) (*domain.Invite, error) {
	invites, err := r.getInvites(ctx, `WHERE i.invite_id = $1`, inviteID)
	if err != nil {
		return nil, err
	}
	if len(invites) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &invites[0], nil
}

func (r *PgxInviteRepository) FindInviteByTokenHash(ctx context.Context, tokenHash string) (*domain.Invite, error) {
	invites, err := r.getInvites(ctx, `WHERE i.token_hash = $1`, tokenHash)
	if err != nil {
		return nil, err
	}
	if len(invites) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &invites[0], nil
}

func (r *PgxInviteRepository) ListPendingInvites(ctx context.Context) ([]domain.Invite, error) {
	return r.getInvites(ctx, `WHERE i.status = $1 ORDER BY i.created_at DESC`, domain.InvitePending)
}

func (r *PgxInviteRepository) SaveInvite(ctx context.Context, invite domain.Invite) error {
	query := `
		INSERT INTO invites (
			invite_id, email, requested_role, workspace_id, token_hash,
			status, expires_at,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		invite.InviteID,
		invite.Email,
		invite.RequestedRole,
		invite.WorkspaceID,
		invite.TokenHash,
		invite.Status,
		invite.ExpiresAt,
		invite.CreatedAt,
		invite.CreatedBy,
		invite.LastUpdatedAt,
		invite.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("invite " + invite.InviteID + " already exists")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("workspace does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to save invite "+invite.InviteID, err)
	}
	return nil
}

func (r *PgxInviteRepository) UpdateInvite(ctx context.Context, invite domain.Invite) error {
	query := `
		UPDATE invites SET
			status = $2, accepted_by = $3, expires_at = $4,
			last_updated_at = $5, last_updated_by = $6
		WHERE invite_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		invite.InviteID,
		invite.Status,
		invite.AcceptedBy,
		invite.ExpiresAt,
		invite.LastUpdatedAt,
		invite.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update invite "+invite.InviteID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
