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

type PgxRoleRepository struct {
	BaseRepository
}

// newPgxRoleRepository creates a new repository for persisted role rows.
func newPgxRoleRepository(pool *pgxpool.Pool) portsrepo.RoleRepositoryFacade {
	return &PgxRoleRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.RoleRepositoryFacade = (*PgxRoleRepository)(nil)

func (r *PgxRoleRepository) FindRolesByUserID(ctx context.Context, userID string) ([]domain.UserRole, error) {
	query := `
		SELECT user_id, role, granted_at, granted_by
		FROM user_roles
		WHERE user_id = $1
		ORDER BY granted_at;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query roles for user "+userID, err)
	}
	defer rows.Close()

	roles, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.UserRole, error) {
		var ur domain.UserRole
		err := row.Scan(&ur.UserID, &ur.Role, &ur.GrantedAt, &ur.GrantedBy)
		return ur, err
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect role rows", err)
	}
	return roles, nil
}

func (r *PgxRoleRepository) GrantRole(ctx context.Context, grant domain.UserRole) error {
	// Granting an already-held role is a no-op rather than a conflict.
	query := `
		INSERT INTO user_roles (user_id, role, granted_at, granted_by)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, role) DO NOTHING;
	`
	_, err := r.Pool.Exec(ctx, query, grant.UserID, grant.Role, grant.GrantedAt, grant.GrantedBy)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return apperrors.NewNotFoundError("user " + grant.UserID + " does not exist")
		}
		return apperrors.NewAppError(500, "failed to grant role "+string(grant.Role)+" to user "+grant.UserID, err)
	}
	return nil
}

func (r *PgxRoleRepository) RevokeRole(ctx context.Context, userID string, role domain.Role) error {
	query := `DELETE FROM user_roles WHERE user_id = $1 AND role = $2;`
	tag, err := r.Pool.Exec(ctx, query, userID, role)
	if err != nil {
		return apperrors.NewAppError(500, "failed to revoke role "+string(role)+" from user "+userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

type PgxProfileRepository struct {
	BaseRepository
}

// newPgxProfileRepository creates a new repository for user profiles.
func newPgxProfileRepository(pool *pgxpool.Pool) portsrepo.ProfileRepositoryFacade {
	return &PgxProfileRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ProfileRepositoryFacade = (*PgxProfileRepository)(nil)

func (r *PgxProfileRepository) FindProfileByUserID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	query := `
		SELECT user_id, display_name, display_role, workspace_id,
			created_at, created_by, last_updated_at, last_updated_by
		FROM profiles
		WHERE user_id = $1;
	`
	var profile domain.UserProfile
	err := r.Pool.QueryRow(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.DisplayName,
		&profile.DisplayRole,
		&profile.WorkspaceID,
		&profile.CreatedAt,
		&profile.CreatedBy,
		&profile.LastUpdatedAt,
		&profile.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find profile for user "+userID, err)
	}
	return &profile, nil
}

func (r *PgxProfileRepository) SaveProfile(ctx context.Context, profile domain.UserProfile) error {
	query := `
		INSERT INTO profiles (
			user_id, display_name, display_role, workspace_id,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		profile.UserID,
		profile.DisplayName,
		profile.DisplayRole,
		profile.WorkspaceID,
		profile.CreatedAt,
		profile.CreatedBy,
		profile.LastUpdatedAt,
		profile.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("profile for user " + profile.UserID + " already exists")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("user or workspace does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to save profile for user "+profile.UserID, err)
	}
	return nil
}

func (r *PgxProfileRepository) UpdateProfile(ctx context.Context, profile domain.UserProfile) error {
	query := `
		UPDATE profiles SET
			display_name = $2, display_role = $3, workspace_id = $4,
			last_updated_at = $5, last_updated_by = $6
		WHERE user_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		profile.UserID,
		profile.DisplayName,
		profile.DisplayRole,
		profile.WorkspaceID,
		profile.LastUpdatedAt,
		profile.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.NewValidationFailedError("workspace does not exist")
		}
		return apperrors.NewAppError(500, "failed to update profile for user "+profile.UserID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
