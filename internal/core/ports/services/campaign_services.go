package services

import (
	"context"
	"time"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
)

// CampaignSvcFacade manages campaigns inside a workspace.
type CampaignSvcFacade interface {
	CreateCampaign(ctx context.Context, workspaceID, name, description string, targetCallVolume int, startDate *time.Time, creatorUserID string) (*domain.Campaign, error)
	GetCampaign(ctx context.Context, workspaceID, campaignID string) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context, workspaceID string) ([]domain.Campaign, error)
	// UpdateCampaignStatus validates the transition; moving to ACTIVE also
	// publishes a campaign-launched notification to the workspace feed.
	UpdateCampaignStatus(ctx context.Context, workspaceID, campaignID string, status domain.CampaignStatus, updaterUserID string) (*domain.Campaign, error)
	DeleteCampaign(ctx context.Context, workspaceID, campaignID, deleterUserID string) error
}
