package repositories

import (
	"context"
	"time"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
)

// CallLogRepositoryFacade manages call log rows. Listing is cursor paginated
// on (called_at, call_log_id), newest first.
type CallLogRepositoryFacade interface {
	FindCallLogByID(ctx context.Context, workspaceID, callLogID string) (*domain.CallLog, error)
	ListCallLogs(ctx context.Context, workspaceID string, campaignID string, beforeCalledAt *time.Time, beforeID string, limit int) ([]domain.CallLog, error)
	SaveCallLog(ctx context.Context, log domain.CallLog) error
}
