package repositories

import (
	"context"
	"time"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
)

// ReportingRepositoryFacade runs the aggregate queries behind the workspace
// dashboard. Since is optional; zero value means all time.
type ReportingRepositoryFacade interface {
	GetWorkspaceDashboard(ctx context.Context, workspaceID string, since time.Time) (*domain.WorkspaceDashboard, error)
}
