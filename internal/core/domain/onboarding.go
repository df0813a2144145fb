package domain

import (
	"encoding/json"
	"time"
)

// BriefStep names the steps of the onboarding/targeting brief.
type BriefStep string

const (
	StepCompanyProfile    BriefStep = "company_profile"
	StepIdealCustomer     BriefStep = "ideal_customer"
	StepTargeting         BriefStep = "targeting"
	StepScriptPreferences BriefStep = "script_preferences"
)

// BriefSteps lists every step in form order. Submission requires all of them.
var BriefSteps = []BriefStep{
	StepCompanyProfile,
	StepIdealCustomer,
	StepTargeting,
	StepScriptPreferences,
}

// BriefStatus tracks the brief's lifecycle.
type BriefStatus string

const (
	BriefDraft     BriefStatus = "DRAFT"
	BriefSubmitted BriefStatus = "SUBMITTED"
)

// OnboardingBrief is the multi-step targeting brief a client completes for a
// workspace. Step payloads are free-form JSON documents validated per step at
// save time; one brief per workspace.
type OnboardingBrief struct {
	BriefID     string                        `json:"briefID"` // Primary key (UUID)
	WorkspaceID string                        `json:"workspaceID"`
	Status      BriefStatus                   `json:"status"`
	Steps       map[BriefStep]json.RawMessage `json:"steps"`
	SubmittedAt *time.Time                    `json:"submittedAt,omitempty"`
	AuditFields
}

// Complete reports whether every step carries a non-empty payload.
func (b OnboardingBrief) Complete() bool {
	for _, step := range BriefSteps {
		payload, ok := b.Steps[step]
		if !ok || len(payload) == 0 {
			return false
		}
	}
	return true
}
