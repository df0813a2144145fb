package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MeetingStatus tracks a booked meeting's lifecycle.
type MeetingStatus string

const (
	MeetingScheduled   MeetingStatus = "SCHEDULED"
	MeetingCompleted   MeetingStatus = "COMPLETED"
	MeetingNoShow      MeetingStatus = "NO_SHOW"
	MeetingCancelled   MeetingStatus = "CANCELLED"
	MeetingRescheduled MeetingStatus = "RESCHEDULED"
)

// Meeting is a sales meeting booked for the client with a prospect.
type Meeting struct {
	MeetingID   string        `json:"meetingID"` // Primary key (UUID)
	WorkspaceID string        `json:"workspaceID"`
	CampaignID  string        `json:"campaignID"`
	ContactID   string        `json:"contactID"`
	BookedBy    string        `json:"bookedBy"` // UserID of the rep that booked it
	ScheduledAt time.Time     `json:"scheduledAt"`
	Status      MeetingStatus `json:"status"`
	// PipelineValue is the estimated deal size the meeting represents, in
	// CurrencyCode. Zero when the client does not forecast values.
	PipelineValue decimal.Decimal `json:"pipelineValue"`
	CurrencyCode  string          `json:"currencyCode"`
	Notes         string          `json:"notes"`
	AuditFields
}
