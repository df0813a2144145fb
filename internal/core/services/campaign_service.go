package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/apperrors"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
	portsrepo "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/repositories"
	portssvc "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/services"
	"github.com/google/uuid"
)

// campaignStatusTransitions lists the legal moves between campaign statuses.
var campaignStatusTransitions = map[domain.CampaignStatus][]domain.CampaignStatus{
	domain.CampaignDraft:     {domain.CampaignActive},
	domain.CampaignActive:    {domain.CampaignPaused, domain.CampaignCompleted},
	domain.CampaignPaused:    {domain.CampaignActive, domain.CampaignCompleted},
	domain.CampaignCompleted: {},
}

// campaignService implements the CampaignSvcFacade.
type campaignService struct {
	BaseService
	campaignRepo portsrepo.CampaignRepositoryFacade
	notification portssvc.NotificationSvcFacade
}

// NewCampaignService creates a new campaign service.
func NewCampaignService(campaignRepo portsrepo.CampaignRepositoryFacade, notification portssvc.NotificationSvcFacade) portssvc.CampaignSvcFacade {
	return &campaignService{
		campaignRepo: campaignRepo,
		notification: notification,
	}
}

var _ portssvc.CampaignSvcFacade = (*campaignService)(nil)

// CreateCampaign creates a draft campaign in the workspace.
func (s *campaignService) CreateCampaign(ctx context.Context, workspaceID, name, description string, targetCallVolume int, startDate *time.Time, creatorUserID string) (*domain.Campaign, error) {
	if name == "" {
		return nil, apperrors.NewValidationFailedError("campaign name is required")
	}
	if targetCallVolume < 0 {
		return nil, apperrors.NewValidationFailedError("target call volume cannot be negative")
	}

	now := time.Now()
	campaign := domain.Campaign{
		CampaignID:       uuid.NewString(),
		WorkspaceID:      workspaceID,
		Name:             name,
		Description:      description,
		Status:           domain.CampaignDraft,
		StartDate:        startDate,
		TargetCallVolume: targetCallVolume,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.campaignRepo.SaveCampaign(ctx, campaign); err != nil {
		s.LogError(ctx, err, "Failed to save campaign", slog.String("workspace_id", workspaceID))
		return nil, err
	}

	s.LogInfo(ctx, "Campaign created",
		slog.String("campaign_id", campaign.CampaignID),
		slog.String("workspace_id", workspaceID))
	return &campaign, nil
}

// GetCampaign retrieves one campaign scoped to the workspace.
func (s *campaignService) GetCampaign(ctx context.Context, workspaceID, campaignID string) (*domain.Campaign, error) {
	campaign, err := s.campaignRepo.FindCampaignByID(ctx, workspaceID, campaignID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find campaign", slog.String("campaign_id", campaignID))
		}
		return nil, err
	}
	return campaign, nil
}

// ListCampaigns lists the workspace's campaigns, excluding soft-deleted ones.
func (s *campaignService) ListCampaigns(ctx context.Context, workspaceID string) ([]domain.Campaign, error) {
	campaigns, err := s.campaignRepo.ListCampaignsByWorkspace(ctx, workspaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list campaigns", slog.String("workspace_id", workspaceID))
		return nil, err
	}
	if campaigns == nil {
		return []domain.Campaign{}, nil
	}
	return campaigns, nil
}

// UpdateCampaignStatus applies a status transition. Launching (moving to
// ACTIVE from draft) publishes a campaign-launched notification.
func (s *campaignService) UpdateCampaignStatus(ctx context.Context, workspaceID, campaignID string, status domain.CampaignStatus, updaterUserID string) (*domain.Campaign, error) {
	campaign, err := s.campaignRepo.FindCampaignByID(ctx, workspaceID, campaignID)
	if err != nil {
		return nil, err
	}

	if !transitionAllowed(campaign.Status, status) {
		return nil, apperrors.NewValidationFailedError(
			fmt.Sprintf("cannot move campaign from %s to %s", campaign.Status, status))
	}

	launched := campaign.Status == domain.CampaignDraft && status == domain.CampaignActive

	campaign.Status = status
	campaign.LastUpdatedAt = time.Now()
	campaign.LastUpdatedBy = updaterUserID
	if err := s.campaignRepo.UpdateCampaign(ctx, *campaign); err != nil {
		s.LogError(ctx, err, "Failed to update campaign status", slog.String("campaign_id", campaignID))
		return nil, err
	}

	if launched && s.notification != nil {
		msg := fmt.Sprintf("Campaign %q is now live", campaign.Name)
		if nerr := s.notification.Publish(ctx, workspaceID, domain.NotifCampaignLaunched, msg); nerr != nil {
			// The status change already landed; a missing feed entry is not
			// worth failing the request over.
			s.LogError(ctx, nerr, "Failed to publish campaign-launched notification", slog.String("campaign_id", campaignID))
		}
	}

	s.LogInfo(ctx, "Campaign status updated",
		slog.String("campaign_id", campaignID),
		slog.String("status", string(status)))
	return campaign, nil
}

// DeleteCampaign soft-deletes a campaign.
func (s *campaignService) DeleteCampaign(ctx context.Context, workspaceID, campaignID, deleterUserID string) error {
	if err := s.campaignRepo.MarkCampaignDeleted(ctx, workspaceID, campaignID, time.Now(), deleterUserID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to soft-delete campaign", slog.String("campaign_id", campaignID))
		}
		return err
	}
	s.LogInfo(ctx, "Campaign soft-deleted", slog.String("campaign_id", campaignID), slog.String("deleted_by", deleterUserID))
	return nil
}

func transitionAllowed(from, to domain.CampaignStatus) bool {
	for _, allowed := range campaignStatusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
