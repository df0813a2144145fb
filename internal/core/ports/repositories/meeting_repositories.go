package repositories

import (
	"context"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
)

// MeetingRepositoryFacade manages booked meetings.
type MeetingRepositoryFacade interface {
	FindMeetingByID(ctx context.Context, workspaceID, meetingID string) (*domain.Meeting, error)
	ListMeetingsByWorkspace(ctx context.Context, workspaceID string) ([]domain.Meeting, error)
	SaveMeeting(ctx context.Context, meeting domain.Meeting) error
	UpdateMeeting(ctx context.Context, meeting domain.Meeting) error
}
