package services

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/apperrors"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
	portsrepo "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/repositories"
	portssvc "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/services"
	"github.com/google/uuid"
)

// onboardingService implements the OnboardingSvcFacade.
type onboardingService struct {
	BaseService
	onboardingRepo portsrepo.OnboardingRepositoryFacade
	notification   portssvc.NotificationSvcFacade
}

// NewOnboardingService creates a new onboarding service.
func NewOnboardingService(onboardingRepo portsrepo.OnboardingRepositoryFacade, notification portssvc.NotificationSvcFacade) portssvc.OnboardingSvcFacade {
	return &onboardingService{
		onboardingRepo: onboardingRepo,
		notification:   notification,
	}
}

var _ portssvc.OnboardingSvcFacade = (*onboardingService)(nil)

// GetBrief returns the workspace's brief, creating an empty draft on first
// access so the form always has a document to hang off.
func (s *onboardingService) GetBrief(ctx context.Context, workspaceID string) (*domain.OnboardingBrief, error) {
	brief, err := s.onboardingRepo.FindBriefByWorkspace(ctx, workspaceID)
	if err == nil {
		return brief, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to find onboarding brief", slog.String("workspace_id", workspaceID))
		return nil, err
	}
	return s.createDraft(ctx, workspaceID, "")
}

// SaveStep stores one step's payload. The brief must still be a draft.
func (s *onboardingService) SaveStep(ctx context.Context, workspaceID string, step domain.BriefStep, payload json.RawMessage, userID string) (*domain.OnboardingBrief, error) {
	if !validBriefStep(step) {
		return nil, apperrors.NewValidationFailedError("unknown brief step")
	}
	if len(payload) == 0 || !json.Valid(payload) {
		return nil, apperrors.NewValidationFailedError("step payload must be a valid JSON document")
	}

	brief, err := s.onboardingRepo.FindBriefByWorkspace(ctx, workspaceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		if brief, err = s.createDraft(ctx, workspaceID, userID); err != nil {
			return nil, err
		}
	}
	if brief.Status == domain.BriefSubmitted {
		return nil, apperrors.NewValidationFailedError("brief has already been submitted")
	}

	if brief.Steps == nil {
		brief.Steps = make(map[domain.BriefStep]json.RawMessage, len(domain.BriefSteps))
	}
	brief.Steps[step] = payload
	brief.LastUpdatedAt = time.Now()
	brief.LastUpdatedBy = userID
	if err := s.onboardingRepo.UpdateBrief(ctx, *brief); err != nil {
		s.LogError(ctx, err, "Failed to save brief step",
			slog.String("workspace_id", workspaceID),
			slog.String("step", string(step)))
		return nil, err
	}
	return brief, nil
}

// SubmitBrief freezes the brief once every step is complete and announces the
// submission on the workspace feed.
func (s *onboardingService) SubmitBrief(ctx context.Context, workspaceID string, userID string) (*domain.OnboardingBrief, error) {
	brief, err := s.onboardingRepo.FindBriefByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	if brief.Status == domain.BriefSubmitted {
		return nil, apperrors.NewValidationFailedError("brief has already been submitted")
	}
	if !brief.Complete() {
		return nil, apperrors.NewValidationFailedError("all brief steps must be completed before submitting")
	}

	now := time.Now()
	brief.Status = domain.BriefSubmitted
	brief.SubmittedAt = &now
	brief.LastUpdatedAt = now
	brief.LastUpdatedBy = userID
	if err := s.onboardingRepo.UpdateBrief(ctx, *brief); err != nil {
		s.LogError(ctx, err, "Failed to submit brief", slog.String("workspace_id", workspaceID))
		return nil, err
	}

	if s.notification != nil {
		if nerr := s.notification.Publish(ctx, workspaceID, domain.NotifBriefSubmitted, "Targeting brief submitted"); nerr != nil {
			s.LogError(ctx, nerr, "Failed to publish brief-submitted notification", slog.String("workspace_id", workspaceID))
		}
	}

	s.LogInfo(ctx, "Onboarding brief submitted", slog.String("workspace_id", workspaceID))
	return brief, nil
}

func (s *onboardingService) createDraft(ctx context.Context, workspaceID, userID string) (*domain.OnboardingBrief, error) {
	now := time.Now()
	brief := domain.OnboardingBrief{
		BriefID:     uuid.NewString(),
		WorkspaceID: workspaceID,
		Status:      domain.BriefDraft,
		Steps:       make(map[domain.BriefStep]json.RawMessage, len(domain.BriefSteps)),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.onboardingRepo.SaveBrief(ctx, brief); err != nil {
		s.LogError(ctx, err, "Failed to create draft brief", slog.String("workspace_id", workspaceID))
		return nil, err
	}
	return &brief, nil
}

func validBriefStep(step domain.BriefStep) bool {
	for _, known := range domain.BriefSteps {
		if step == known {
			return true
		}
	}
	return false
}
