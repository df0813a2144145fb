package dto

import (
	"time"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
	portssvc "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/services"
)

// RecordCallRequest defines data for logging one dial. CalledAt is optional
// and defaults to the server clock; dialer webhooks backfill it.
type RecordCallRequest struct {
	CampaignID      string     `json:"campaignID" binding:"required"`
	ContactID       string     `json:"contactID" binding:"required"`
	Outcome         string     `json:"outcome" binding:"required,oneof=NO_ANSWER VOICEMAIL GATEKEEPER CONVERSATION MEETING_BOOKED BAD_NUMBER"`
	DurationSeconds int        `json:"durationSeconds" binding:"gte=0"`
	Notes           string     `json:"notes"`
	CalledAt        *time.Time `json:"calledAt"`
}

// ToNewCallLog converts the request to the service input.
func (r RecordCallRequest) ToNewCallLog() portssvc.NewCallLog {
	in := portssvc.NewCallLog{
		CampaignID:      r.CampaignID,
		ContactID:       r.ContactID,
		Outcome:         domain.CallOutcome(r.Outcome),
		DurationSeconds: r.DurationSeconds,
		Notes:           r.Notes,
	}
	if r.CalledAt != nil {
		in.CalledAt = *r.CalledAt
	}
	return in
}

// ListCallLogsParams defines query parameters for a call log page.
type ListCallLogsParams struct {
	CampaignID string `form:"campaignID"`
	PageToken  string `form:"pageToken"`
	Limit      int    `form:"limit,default=50"`
}

// CallLogResponse defines data returned for a call log.
type CallLogResponse struct {
	CallLogID       string             `json:"callLogID"`
	CampaignID      string             `json:"campaignID"`
	ContactID       string             `json:"contactID"`
	BDRUserID       string             `json:"bdrUserID"`
	Outcome         domain.CallOutcome `json:"outcome"`
	DurationSeconds int                `json:"durationSeconds"`
	Notes           string             `json:"notes"`
	CalledAt        time.Time          `json:"calledAt"`
}

// ToCallLogResponse converts domain.CallLog to DTO.
func ToCallLogResponse(l *domain.CallLog) CallLogResponse {
	return CallLogResponse{
		CallLogID:       l.CallLogID,
		CampaignID:      l.CampaignID,
		ContactID:       l.ContactID,
		BDRUserID:       l.BDRUserID,
		Outcome:         l.Outcome,
		DurationSeconds: l.DurationSeconds,
		Notes:           l.Notes,
		CalledAt:        l.CalledAt,
	}
}

// ListCallLogsResponse is one page of call logs, newest first.
type ListCallLogsResponse struct {
	CallLogs  []CallLogResponse `json:"callLogs"`
	NextToken string            `json:"nextToken,omitempty"`
}

// ToListCallLogsResponse converts a service page to DTO.
func ToListCallLogsResponse(page *portssvc.CallLogPage) ListCallLogsResponse {
	list := make([]CallLogResponse, len(page.CallLogs))
	for i, l := range page.CallLogs {
		list[i] = ToCallLogResponse(&l)
	}
	return ListCallLogsResponse{CallLogs: list, NextToken: page.NextToken}
}
