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

type PgxIntegrationTokenRepository struct {
	BaseRepository
}

// newPgxIntegrationTokenRepository creates a new repository for dialer keys.
func newPgxIntegrationTokenRepository(pool *pgxpool.Pool) portsrepo.IntegrationTokenRepositoryFacade {
	return &PgxIntegrationTokenRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.IntegrationTokenRepositoryFacade = (*PgxIntegrationTokenRepository)(nil)

var FULL_INTEGRATION_TOKEN_SELECT_QUERY = `
SELECT
	t.token_id, t.user_id, t.name, t.token_hash,
	t.last_used_at, t.expires_at, t.revoked_at, t.created_at
FROM integration_tokens t
`

func scanIntegrationToken(row pgx.CollectableRow) (domain.IntegrationToken, error) {
	var token domain.IntegrationToken
	err := row.Scan(
		&token.TokenID,
		&token.UserID,
		&token.Name,
		&token.TokenHash,
		&token.LastUsedAt,
		&token.ExpiresAt,
		&token.RevokedAt,
		&token.CreatedAt,
	)
	return token, err
}

func (r *PgxIntegrationTokenRepository) getTokens(ctx context.Context, filterQuery string, args ...any) ([]domain.IntegrationToken, error) {
	query := FULL_INTEGRATION_TOKEN_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query integration tokens", err)
	}
	defer rows.Close()

	tokens, err := pgx.CollectRows(rows, scanIntegrationToken)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect integration token rows", err)
	}
	return tokens, nil
}

func (r *PgxIntegrationTokenRepository) FindTokenByHash(ctx context.Context, tokenHash string) (*domain.IntegrationToken, error) {
	tokens, err := r.getTokens(ctx, `WHERE t.token_hash = $1`, tokenHash)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &tokens[0], nil
}

func (r *PgxIntegrationTokenRepository) ListTokensByUser(ctx context.Context, userID string) ([]domain.IntegrationToken, error) {
	return r.getTokens(ctx, `WHERE t.user_id = $1 ORDER BY t.created_at DESC`, userID)
}

func (r *PgxIntegrationTokenRepository) SaveToken(ctx context.Context, token domain.IntegrationToken) error {
	query := `
		INSERT INTO integration_tokens (
			token_id, user_id, name, token_hash, expires_at, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		token.TokenID,
		token.UserID,
		token.Name,
		token.TokenHash,
		token.ExpiresAt,
		token.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("integration token already exists")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("user does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to save integration token "+token.TokenID, err)
	}
	return nil
}

func (r *PgxIntegrationTokenRepository) RevokeToken(ctx context.Context, userID, tokenID string, revokedAt time.Time) error {
	query := `
		UPDATE integration_tokens SET revoked_at = $3
		WHERE user_id = $1 AND token_id = $2 AND revoked_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, userID, tokenID, revokedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to revoke integration token "+tokenID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxIntegrationTokenRepository) TouchToken(ctx context.Context, tokenID string, usedAt time.Time) error {
	query := `UPDATE integration_tokens SET last_used_at = $2 WHERE token_id = $1;`
	if _, err := r.Pool.Exec(ctx, query, tokenID, usedAt); err != nil {
		return apperrors.NewAppError(500, "failed to touch integration token "+tokenID, err)
	}
	return nil
}
