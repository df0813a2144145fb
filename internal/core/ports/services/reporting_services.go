package services

import (
	"context"
	"time"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
)

// ReportingSvcFacade serves the workspace dashboard aggregates.
type ReportingSvcFacade interface {
	GetWorkspaceDashboard(ctx context.Context, workspaceID string, since time.Time) (*domain.WorkspaceDashboard, error)
}
