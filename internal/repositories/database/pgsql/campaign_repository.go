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

type PgxCampaignRepository struct {
	BaseRepository
}

// newPgxCampaignRepository creates a new repository for campaign data.
func newPgxCampaignRepository(pool *pgxpool.Pool) portsrepo.CampaignRepositoryFacade {
	return &PgxCampaignRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CampaignRepositoryFacade = (*PgxCampaignRepository)(nil)

var FULL_CAMPAIGN_SELECT_QUERY = `
SELECT
	c.campaign_id, c.workspace_id, c.name, c.description, c.status,
	c.start_date, c.target_call_volume,
	c.created_at, c.created_by, c.last_updated_at, c.last_updated_by, c.deleted_at
FROM campaigns c
`

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var campaign domain.Campaign
	err := row.Scan(
		&campaign.CampaignID,
		&campaign.WorkspaceID,
		&campaign.Name,
		&campaign.Description,
		&campaign.Status,
		&campaign.StartDate,
		&campaign.TargetCallVolume,
		&campaign.CreatedAt,
		&campaign.CreatedBy,
		&campaign.LastUpdatedAt,
		&campaign.LastUpdatedBy,
		&campaign.DeletedAt,
	)
	return campaign, err
}

func (r *PgxCampaignRepository) getCampaigns(ctx context.Context, filterQuery string, args ...any) ([]domain.Campaign, error) {
	query := FULL_CAMPAIGN_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query campaigns", err)
	}
	defer rows.Close()

	campaigns, err := pgx.CollectRows(rows, scanCampaign)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect campaign rows", err)
	}
	return campaigns, nil
}

func (r *PgxCampaignRepository) FindCampaignByID(ctx context.Context, workspaceID, campaignID string) (*domain.Campaign, error) {
	campaigns, err := r.getCampaigns(ctx,
		`WHERE c.workspace_id = $1 AND c.campaign_id = $2 AND c.deleted_at IS NULL`,
		workspaceID, campaignID)
	if err != nil {
		return nil, err
	}
	if len(campaigns) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &campaigns[0], nil
}

func (r *PgxCampaignRepository) ListCampaignsByWorkspace(ctx context.Context, workspaceID string) ([]domain.Campaign, error) {
	return r.getCampaigns(ctx,
		`WHERE c.workspace_id = $1 AND c.deleted_at IS NULL ORDER BY c.created_at DESC`,
		workspaceID)
}

func (r *PgxCampaignRepository) SaveCampaign(ctx context.Context, campaign domain.Campaign) error {
	query := `
		INSERT INTO campaigns (
			campaign_id, workspace_id, name, description, status,
			start_date, target_call_volume,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		campaign.CampaignID,
		campaign.WorkspaceID,
		campaign.Name,
		campaign.Description,
		campaign.Status,
		campaign.StartDate,
		campaign.TargetCallVolume,
		campaign.CreatedAt,
		campaign.CreatedBy,
		campaign.LastUpdatedAt,
		campaign.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("campaign " + campaign.CampaignID + " already exists")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("workspace does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to save campaign "+campaign.CampaignID, err)
	}
	return nil
}

func (r *PgxCampaignRepository) UpdateCampaign(ctx context.Context, campaign domain.Campaign) error {
	query := `
		UPDATE campaigns SET
			name = $3, description = $4, status = $5,
			start_date = $6, target_call_volume = $7,
			last_updated_at = $8, last_updated_by = $9
		WHERE workspace_id = $1 AND campaign_id = $2 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query,
		campaign.WorkspaceID,
		campaign.CampaignID,
		campaign.Name,
		campaign.Description,
		campaign.Status,
		campaign.StartDate,
		campaign.TargetCallVolume,
		campaign.LastUpdatedAt,
		campaign.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update campaign "+campaign.CampaignID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCampaignRepository) MarkCampaignDeleted(ctx context.Context, workspaceID, campaignID string, deletedAt time.Time, deleterUserID string) error {
	query := `
		UPDATE campaigns SET deleted_at = $3, last_updated_at = $3, last_updated_by = $4
		WHERE workspace_id = $1 AND campaign_id = $2 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, workspaceID, campaignID, deletedAt, deleterUserID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark campaign deleted "+campaignID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
