package domain

import "time"

// CampaignStatus tracks the lifecycle of a calling campaign.
type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "DRAFT"
	CampaignActive    CampaignStatus = "ACTIVE"
	CampaignPaused    CampaignStatus = "PAUSED"
	CampaignCompleted CampaignStatus = "COMPLETED"
)

// Campaign is a calling campaign inside a workspace. Campaigns are the only
// soft-deleted entity in the portal.
type Campaign struct {
	CampaignID       string         `json:"campaignID"` // Primary key (UUID)
	WorkspaceID      string         `json:"workspaceID"`
	Name             string         `json:"name"`
	Description      string         `json:"description"`
	Status           CampaignStatus `json:"status"`
	StartDate        *time.Time     `json:"startDate,omitempty"`
	TargetCallVolume int            `json:"targetCallVolume"` // Calls per week the client contracted
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
