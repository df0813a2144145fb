package dto

import (
	"encoding/json"
	"time"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
)

// SaveBriefStepRequest stores one step's free-form payload.
type SaveBriefStepRequest struct {
	Payload json.RawMessage `json:"payload" binding:"required"`
}

// BriefResponse defines data returned for the targeting brief.
type BriefResponse struct {
	BriefID     string                               `json:"briefID"`
	WorkspaceID string                               `json:"workspaceID"`
	Status      domain.BriefStatus                   `json:"status"`
	Steps       map[domain.BriefStep]json.RawMessage `json:"steps"`
	Complete    bool                                 `json:"complete"`
	SubmittedAt *time.Time                           `json:"submittedAt,omitempty"`
}

// ToBriefResponse converts domain.OnboardingBrief to DTO.
func ToBriefResponse(b *domain.OnboardingBrief) BriefResponse {
	steps := b.Steps
	if steps == nil {
		steps = map[domain.BriefStep]json.RawMessage{}
	}
	return BriefResponse{
		BriefID:     b.BriefID,
		WorkspaceID: b.WorkspaceID,
		Status:      b.Status,
		Steps:       steps,
		Complete:    b.Complete(),
		SubmittedAt: b.SubmittedAt,
	}
}
