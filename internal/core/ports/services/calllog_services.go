package services

import (
	"context"
	"time"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
)

// NewCallLog carries the fields for recording one dial.
type NewCallLog struct {
	CampaignID      string
	ContactID       string
	Outcome         domain.CallOutcome
	DurationSeconds int
	Notes           string
	CalledAt        time.Time // Zero means "now"
}

// CallLogPage is one page of a cursor-paginated call log listing.
type CallLogPage struct {
	CallLogs  []domain.CallLog
	NextToken string
}

// CallLogSvcFacade records and lists dials. RecordCall also advances the
// contact's status when the outcome implies one (conversation, meeting
// booked, bad number).
type CallLogSvcFacade interface {
	RecordCall(ctx context.Context, workspaceID string, in NewCallLog, bdrUserID string) (*domain.CallLog, error)
	GetCallLog(ctx context.Context, workspaceID, callLogID string) (*domain.CallLog, error)
	ListCallLogs(ctx context.Context, workspaceID, campaignID string, pageToken string, limit int) (*CallLogPage, error)
}
