package dto

import (
	"time"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
)

// CreateCampaignRequest defines data for creating a campaign.
type CreateCampaignRequest struct {
	Name             string     `json:"name" binding:"required"`
	Description      string     `json:"description"`
	TargetCallVolume int        `json:"targetCallVolume" binding:"gte=0"`
	StartDate        *time.Time `json:"startDate"`
}

// UpdateCampaignStatusRequest moves a campaign through its lifecycle.
type UpdateCampaignStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=DRAFT ACTIVE PAUSED COMPLETED"`
}

// CampaignResponse defines data returned for a campaign.
type CampaignResponse struct {
	CampaignID       string                `json:"campaignID"`
	WorkspaceID      string                `json:"workspaceID"`
	Name             string                `json:"name"`
	Description      string                `json:"description"`
	Status           domain.CampaignStatus `json:"status"`
	StartDate        *time.Time            `json:"startDate,omitempty"`
	TargetCallVolume int                   `json:"targetCallVolume"`
	CreatedAt        time.Time             `json:"createdAt"`
}

// ToCampaignResponse converts domain.Campaign to DTO.
func ToCampaignResponse(c *domain.Campaign) CampaignResponse {
	return CampaignResponse{
		CampaignID:       c.CampaignID,
		WorkspaceID:      c.WorkspaceID,
		Name:             c.Name,
		Description:      c.Description,
		Status:           c.Status,
		StartDate:        c.StartDate,
		TargetCallVolume: c.TargetCallVolume,
		CreatedAt:        c.CreatedAt,
	}
}

// ListCampaignsResponse wraps a list of campaigns.
type ListCampaignsResponse struct {
	Campaigns []CampaignResponse `json:"campaigns"`
}

// ToListCampaignsResponse converts a slice of domain.Campaign to DTO.
func ToListCampaignsResponse(campaigns []domain.Campaign) ListCampaignsResponse {
	list := make([]CampaignResponse, len(campaigns))
	for i, c := range campaigns {
		list[i] = ToCampaignResponse(&c)
	}
	return ListCampaignsResponse{Campaigns: list}
}
