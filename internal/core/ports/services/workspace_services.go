package services

import (
	"context"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
)

// WorkspaceReaderSvc defines read operations for workspaces.
type WorkspaceReaderSvc interface {
	GetWorkspaceByID(ctx context.Context, workspaceID string) (*domain.Workspace, error)
	ListWorkspaces(ctx context.Context, limit, offset int) ([]domain.Workspace, error)
}

// WorkspaceWriterSvc defines admin-side workspace management.
type WorkspaceWriterSvc interface {
	CreateWorkspace(ctx context.Context, name, companyName, creatorUserID string) (*domain.Workspace, error)
	UpdateWorkspace(ctx context.Context, workspaceID, name, companyName string, status domain.WorkspaceStatus, updaterUserID string) (*domain.Workspace, error)
}

// WorkspaceSvcFacade combines all workspace service capabilities.
type WorkspaceSvcFacade interface {
	WorkspaceReaderSvc
	WorkspaceWriterSvc
}
