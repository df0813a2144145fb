package services

import (
	"context"
	"encoding/json"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
)

// OnboardingSvcFacade manages the multi-step targeting brief. Saving a step is
// permitted while the brief is a draft; submission requires every step to be
// complete and freezes the document.
type OnboardingSvcFacade interface {
	GetBrief(ctx context.Context, workspaceID string) (*domain.OnboardingBrief, error)
	SaveStep(ctx context.Context, workspaceID string, step domain.BriefStep, payload json.RawMessage, userID string) (*domain.OnboardingBrief, error)
	SubmitBrief(ctx context.Context, workspaceID string, userID string) (*domain.OnboardingBrief, error)
}
