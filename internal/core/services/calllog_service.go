package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/apperrors"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
	portsrepo "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/repositories"
	portssvc "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/services"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/utils/pagination"
	"github.com/google/uuid"
)

const defaultCallLogPageSize = 50

// outcomeContactStatus maps call outcomes to the contact status they imply.
// Outcomes not listed leave the contact where it is (beyond NEW->CONTACTED).
var outcomeContactStatus = map[domain.CallOutcome]domain.ContactStatus{
	domain.OutcomeConversation:  domain.ContactContacted,
	domain.OutcomeMeetingBooked: domain.ContactInterested,
	domain.OutcomeBadNumber:     domain.ContactDoNotCall,
}

// callLogService implements the CallLogSvcFacade.
type callLogService struct {
	BaseService
	callLogRepo portsrepo.CallLogRepositoryFacade
	contactRepo portsrepo.ContactRepositoryFacade
}

// NewCallLogService creates a new call log service.
func NewCallLogService(callLogRepo portsrepo.CallLogRepositoryFacade, contactRepo portsrepo.ContactRepositoryFacade) portssvc.CallLogSvcFacade {
	return &callLogService{
		callLogRepo: callLogRepo,
		contactRepo: contactRepo,
	}
}

var _ portssvc.CallLogSvcFacade = (*callLogService)(nil)

// RecordCall persists one dial and advances the contact's status when the
// outcome implies one. Arrives from the portal UI or dialer webhooks.
func (s *callLogService) RecordCall(ctx context.Context, workspaceID string, in portssvc.NewCallLog, bdrUserID string) (*domain.CallLog, error) {
	switch in.Outcome {
	case domain.OutcomeNoAnswer, domain.OutcomeVoicemail, domain.OutcomeGatekeeper,
		domain.OutcomeConversation, domain.OutcomeMeetingBooked, domain.OutcomeBadNumber:
	default:
		return nil, apperrors.NewValidationFailedError("invalid call outcome")
	}
	if in.DurationSeconds < 0 {
		return nil, apperrors.NewValidationFailedError("call duration cannot be negative")
	}

	contact, err := s.contactRepo.FindContactByID(ctx, workspaceID, in.ContactID)
	if err != nil {
		return nil, err
	}
	if contact.CampaignID != in.CampaignID {
		return nil, apperrors.NewValidationFailedError("contact does not belong to this campaign")
	}
	if contact.Status == domain.ContactDoNotCall {
		return nil, apperrors.NewValidationFailedError("contact is on the do-not-call list")
	}

	calledAt := in.CalledAt
	if calledAt.IsZero() {
		calledAt = time.Now()
	}

	now := time.Now()
	log := domain.CallLog{
		CallLogID:       uuid.NewString(),
		WorkspaceID:     workspaceID,
		CampaignID:      in.CampaignID,
		ContactID:       in.ContactID,
		BDRUserID:       bdrUserID,
		Outcome:         in.Outcome,
		DurationSeconds: in.DurationSeconds,
		Notes:           in.Notes,
		CalledAt:        calledAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     bdrUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: bdrUserID,
		},
	}

	if err := s.callLogRepo.SaveCallLog(ctx, log); err != nil {
		s.LogError(ctx, err, "Failed to save call log", slog.String("contact_id", in.ContactID))
		return nil, err
	}

	s.advanceContact(ctx, contact, in.Outcome, bdrUserID)

	s.LogInfo(ctx, "Call recorded",
		slog.String("call_log_id", log.CallLogID),
		slog.String("outcome", string(in.Outcome)))
	return &log, nil
}

// GetCallLog retrieves one call log scoped to the workspace.
func (s *callLogService) GetCallLog(ctx context.Context, workspaceID, callLogID string) (*domain.CallLog, error) {
	log, err := s.callLogRepo.FindCallLogByID(ctx, workspaceID, callLogID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find call log", slog.String("call_log_id", callLogID))
		}
		return nil, err
	}
	return log, nil
}

// ListCallLogs returns one cursor page of call logs, newest first. An empty
// campaignID lists across the whole workspace.
func (s *callLogService) ListCallLogs(ctx context.Context, workspaceID, campaignID string, pageToken string, limit int) (*portssvc.CallLogPage, error) {
	if limit <= 0 || limit > 200 {
		limit = defaultCallLogPageSize
	}

	var beforeCalledAt *time.Time
	var beforeID string
	if pageToken != "" {
		ts, id, err := pagination.DecodeCursor(pageToken)
		if err != nil {
			return nil, apperrors.NewValidationFailedError("invalid page token")
		}
		beforeCalledAt = &ts
		beforeID = id
	}

	logs, err := s.callLogRepo.ListCallLogs(ctx, workspaceID, campaignID, beforeCalledAt, beforeID, limit+1)
	if err != nil {
		s.LogError(ctx, err, "Failed to list call logs", slog.String("workspace_id", workspaceID))
		return nil, err
	}

	page := &portssvc.CallLogPage{CallLogs: logs}
	if len(logs) > limit {
		page.CallLogs = logs[:limit]
		last := page.CallLogs[limit-1]
		page.NextToken = pagination.EncodeCursor(last.CalledAt, last.CallLogID)
	}
	if page.CallLogs == nil {
		page.CallLogs = []domain.CallLog{}
	}
	return page, nil
}

// advanceContact applies the outcome's implied status change. Failures are
// logged and swallowed: the call log row is the record of truth.
func (s *callLogService) advanceContact(ctx context.Context, contact *domain.Contact, outcome domain.CallOutcome, bdrUserID string) {
	next, mapped := outcomeContactStatus[outcome]
	if !mapped {
		if contact.Status != domain.ContactNew {
			return
		}
		next = domain.ContactContacted
	}
	if contact.Status == next {
		return
	}

	contact.Status = next
	contact.LastUpdatedAt = time.Now()
	contact.LastUpdatedBy = bdrUserID
	if err := s.contactRepo.UpdateContact(ctx, *contact); err != nil {
		s.LogError(ctx, err, "Failed to advance contact status after call",
			slog.String("contact_id", contact.ContactID))
	}
}
