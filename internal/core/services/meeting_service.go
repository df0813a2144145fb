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

// meetingService implements the MeetingSvcFacade.
type meetingService struct {
	BaseService
	meetingRepo  portsrepo.MeetingRepositoryFacade
	contactRepo  portsrepo.ContactRepositoryFacade
	notification portssvc.NotificationSvcFacade
}

// NewMeetingService creates a new meeting service.
func NewMeetingService(meetingRepo portsrepo.MeetingRepositoryFacade, contactRepo portsrepo.ContactRepositoryFacade, notification portssvc.NotificationSvcFacade) portssvc.MeetingSvcFacade {
	return &meetingService{
		meetingRepo:  meetingRepo,
		contactRepo:  contactRepo,
		notification: notification,
	}
}

var _ portssvc.MeetingSvcFacade = (*meetingService)(nil)

// BookMeeting records a booked meeting and pushes a meeting-booked entry onto
// the workspace feed.
func (s *meetingService) BookMeeting(ctx context.Context, workspaceID string, in portssvc.NewMeeting, bookedByUserID string) (*domain.Meeting, error) {
	if in.ScheduledAt.IsZero() {
		return nil, apperrors.NewValidationFailedError("scheduled time is required")
	}
	if in.PipelineValue.IsNegative() {
		return nil, apperrors.NewValidationFailedError("pipeline value cannot be negative")
	}
	if !in.PipelineValue.IsZero() && in.CurrencyCode == "" {
		return nil, apperrors.NewValidationFailedError("currency code is required when a pipeline value is set")
	}

	contact, err := s.contactRepo.FindContactByID(ctx, workspaceID, in.ContactID)
	if err != nil {
		return nil, err
	}
	if contact.CampaignID != in.CampaignID {
		return nil, apperrors.NewValidationFailedError("contact does not belong to this campaign")
	}

	now := time.Now()
	meeting := domain.Meeting{
		MeetingID:     uuid.NewString(),
		WorkspaceID:   workspaceID,
		CampaignID:    in.CampaignID,
		ContactID:     in.ContactID,
		BookedBy:      bookedByUserID,
		ScheduledAt:   in.ScheduledAt,
		Status:        domain.MeetingScheduled,
		PipelineValue: in.PipelineValue,
		CurrencyCode:  in.CurrencyCode,
		Notes:         in.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     bookedByUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: bookedByUserID,
		},
	}

	if err := s.meetingRepo.SaveMeeting(ctx, meeting); err != nil {
		s.LogError(ctx, err, "Failed to save meeting", slog.String("contact_id", in.ContactID))
		return nil, err
	}

	if s.notification != nil {
		msg := fmt.Sprintf("Meeting booked with %s %s (%s)", contact.FirstName, contact.LastName, contact.CompanyName)
		if nerr := s.notification.Publish(ctx, workspaceID, domain.NotifMeetingBooked, msg); nerr != nil {
			s.LogError(ctx, nerr, "Failed to publish meeting-booked notification", slog.String("meeting_id", meeting.MeetingID))
		}
	}

	s.LogInfo(ctx, "Meeting booked",
		slog.String("meeting_id", meeting.MeetingID),
		slog.String("workspace_id", workspaceID))
	return &meeting, nil
}

// GetMeeting retrieves one meeting scoped to the workspace.
func (s *meetingService) GetMeeting(ctx context.Context, workspaceID, meetingID string) (*domain.Meeting, error) {
	meeting, err := s.meetingRepo.FindMeetingByID(ctx, workspaceID, meetingID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find meeting", slog.String("meeting_id", meetingID))
		}
		return nil, err
	}
	return meeting, nil
}

// ListMeetings lists the workspace's meetings, soonest first.
func (s *meetingService) ListMeetings(ctx context.Context, workspaceID string) ([]domain.Meeting, error) {
	meetings, err := s.meetingRepo.ListMeetingsByWorkspace(ctx, workspaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list meetings", slog.String("workspace_id", workspaceID))
		return nil, err
	}
	if meetings == nil {
		return []domain.Meeting{}, nil
	}
	return meetings, nil
}

// UpdateMeetingStatus moves a meeting through its lifecycle.
func (s *meetingService) UpdateMeetingStatus(ctx context.Context, workspaceID, meetingID string, status domain.MeetingStatus, updaterUserID string) (*domain.Meeting, error) {
	switch status {
	case domain.MeetingScheduled, domain.MeetingCompleted, domain.MeetingNoShow,
		domain.MeetingCancelled, domain.MeetingRescheduled:
	default:
		return nil, apperrors.NewValidationFailedError("invalid meeting status")
	}

	meeting, err := s.meetingRepo.FindMeetingByID(ctx, workspaceID, meetingID)
	if err != nil {
		return nil, err
	}

	meeting.Status = status
	meeting.LastUpdatedAt = time.Now()
	meeting.LastUpdatedBy = updaterUserID
	if err := s.meetingRepo.UpdateMeeting(ctx, *meeting); err != nil {
		s.LogError(ctx, err, "Failed to update meeting status", slog.String("meeting_id", meetingID))
		return nil, err
	}
	return meeting, nil
}
