package domain

import "time"

// NotificationKind distinguishes the feed entry types a workspace sees.
type NotificationKind string

const (
	NotifMeetingBooked    NotificationKind = "MEETING_BOOKED"
	NotifCampaignLaunched NotificationKind = "CAMPAIGN_LAUNCHED"
	NotifBriefSubmitted   NotificationKind = "BRIEF_SUBMITTED"
)

// Notification is one entry in a workspace's activity feed.
type Notification struct {
	NotificationID string           `json:"notificationID"` // Primary key (UUID)
	WorkspaceID    string           `json:"workspaceID"`
	Kind           NotificationKind `json:"kind"`
	Message        string           `json:"message"`
	ReadAt         *time.Time       `json:"readAt,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
}
