package services

import (
	"context"
	"time"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// NewMeeting carries the fields for booking a meeting.
type NewMeeting struct {
	CampaignID    string
	ContactID     string
	ScheduledAt   time.Time
	PipelineValue decimal.Decimal
	CurrencyCode  string
	Notes         string
}

// MeetingSvcFacade books and manages meetings. Booking publishes a
// meeting-booked notification to the workspace feed.
type MeetingSvcFacade interface {
	BookMeeting(ctx context.Context, workspaceID string, in NewMeeting, bookedByUserID string) (*domain.Meeting, error)
	GetMeeting(ctx context.Context, workspaceID, meetingID string) (*domain.Meeting, error)
	ListMeetings(ctx context.Context, workspaceID string) ([]domain.Meeting, error)
	UpdateMeetingStatus(ctx context.Context, workspaceID, meetingID string, status domain.MeetingStatus, updaterUserID string) (*domain.Meeting, error)
}
