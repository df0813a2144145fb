package repositories

import (
	"context"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
)

// OnboardingRepositoryFacade manages the one-per-workspace targeting brief.
// Step payloads persist as a JSONB document.
type OnboardingRepositoryFacade interface {
	FindBriefByWorkspace(ctx context.Context, workspaceID string) (*domain.OnboardingBrief, error)
	SaveBrief(ctx context.Context, brief domain.OnboardingBrief) error
	UpdateBrief(ctx context.Context, brief domain.OnboardingBrief) error
}
