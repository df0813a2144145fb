package domain

import "time"

// CallOutcome is the disposition of a single dial.
type CallOutcome string

const (
	OutcomeNoAnswer      CallOutcome = "NO_ANSWER"
	OutcomeVoicemail     CallOutcome = "VOICEMAIL"
	OutcomeGatekeeper    CallOutcome = "GATEKEEPER"
	OutcomeConversation  CallOutcome = "CONVERSATION"
	OutcomeMeetingBooked CallOutcome = "MEETING_BOOKED"
	OutcomeBadNumber     CallOutcome = "BAD_NUMBER"
)

// CallLog records one dial against a contact. Logs arrive from the portal UI
// or from dialer tooling authenticated with an integration token.
type CallLog struct {
	CallLogID       string      `json:"callLogID"` // Primary key (UUID)
	WorkspaceID     string      `json:"workspaceID"`
	CampaignID      string      `json:"campaignID"`
	ContactID       string      `json:"contactID"`
	BDRUserID       string      `json:"bdrUserID"` // The rep that placed the call
	Outcome         CallOutcome `json:"outcome"`
	DurationSeconds int         `json:"durationSeconds"`
	Notes           string      `json:"notes"`
	CalledAt        time.Time   `json:"calledAt"`
	AuditFields
}
