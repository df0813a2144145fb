package repositories

import (
	"context"
	"time"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
)

// CampaignRepositoryFacade manages campaigns inside a workspace. Reads exclude
// soft-deleted rows.
type CampaignRepositoryFacade interface {
	FindCampaignByID(ctx context.Context, workspaceID, campaignID string) (*domain.Campaign, error)
	ListCampaignsByWorkspace(ctx context.Context, workspaceID string) ([]domain.Campaign, error)
	SaveCampaign(ctx context.Context, campaign domain.Campaign) error
	UpdateCampaign(ctx context.Context, campaign domain.Campaign) error
	MarkCampaignDeleted(ctx context.Context, workspaceID, campaignID string, deletedAt time.Time, deleterUserID string) error
}
