package repositories

import (
	"context"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
)

// WorkspaceReader defines read operations for workspaces.
type WorkspaceReader interface {
	FindWorkspaceByID(ctx context.Context, workspaceID string) (*domain.Workspace, error)
	ListWorkspaces(ctx context.Context, limit, offset int) ([]domain.Workspace, error)
}

// WorkspaceWriter defines write operations for workspaces. There is no delete:
// tenants are churned, never removed.
type WorkspaceWriter interface {
	SaveWorkspace(ctx context.Context, workspace domain.Workspace) error
	UpdateWorkspace(ctx context.Context, workspace domain.Workspace) error
}

// WorkspaceRepositoryFacade combines all workspace repository capabilities.
type WorkspaceRepositoryFacade interface {
	WorkspaceReader
	WorkspaceWriter
}
