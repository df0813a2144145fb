package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/apperrors"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
	portsrepo "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/repositories"
	portssvc "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/services"
	"github.com/google/uuid"
)

// workspaceService implements the WorkspaceSvcFacade.
type workspaceService struct {
	BaseService
	workspaceRepo portsrepo.WorkspaceRepositoryFacade
}

// NewWorkspaceService creates a new workspace service.
func NewWorkspaceService(workspaceRepo portsrepo.WorkspaceRepositoryFacade) portssvc.WorkspaceSvcFacade {
	return &workspaceService{workspaceRepo: workspaceRepo}
}

var _ portssvc.WorkspaceSvcFacade = (*workspaceService)(nil)

// GetWorkspaceByID retrieves a workspace by its ID.
func (s *workspaceService) GetWorkspaceByID(ctx context.Context, workspaceID string) (*domain.Workspace, error) {
	workspace, err := s.workspaceRepo.FindWorkspaceByID(ctx, workspaceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find workspace by ID", slog.String("workspace_id", workspaceID))
		}
		return nil, err
	}
	return workspace, nil
}

// ListWorkspaces retrieves all client workspaces, newest first.
func (s *workspaceService) ListWorkspaces(ctx context.Context, limit, offset int) ([]domain.Workspace, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	workspaces, err := s.workspaceRepo.ListWorkspaces(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list workspaces")
		return nil, err
	}
	if workspaces == nil {
		return []domain.Workspace{}, nil
	}
	return workspaces, nil
}

// CreateWorkspace creates a new client tenant.
func (s *workspaceService) CreateWorkspace(ctx context.Context, name, companyName, creatorUserID string) (*domain.Workspace, error) {
	if name == "" {
		return nil, apperrors.NewValidationFailedError("workspace name is required")
	}

	now := time.Now()
	workspace := domain.Workspace{
		WorkspaceID: uuid.NewString(),
		Name:        name,
		CompanyName: companyName,
		Status:      domain.WorkspaceActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.workspaceRepo.SaveWorkspace(ctx, workspace); err != nil {
		s.LogError(ctx, err, "Failed to save workspace", slog.String("workspace_name", name))
		return nil, err
	}

	s.LogInfo(ctx, "Workspace created",
		slog.String("workspace_id", workspace.WorkspaceID),
		slog.String("creator_user_id", creatorUserID))
	return &workspace, nil
}

// UpdateWorkspace updates name, company and status.
func (s *workspaceService) UpdateWorkspace(ctx context.Context, workspaceID, name, companyName string, status domain.WorkspaceStatus, updaterUserID string) (*domain.Workspace, error) {
	workspace, err := s.workspaceRepo.FindWorkspaceByID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	switch status {
	case domain.WorkspaceActive, domain.WorkspacePaused, domain.WorkspaceChurned:
	default:
		return nil, apperrors.NewValidationFailedError("invalid workspace status")
	}

	if name != "" {
		workspace.Name = name
	}
	if companyName != "" {
		workspace.CompanyName = companyName
	}
	workspace.Status = status
	workspace.LastUpdatedAt = time.Now()
	workspace.LastUpdatedBy = updaterUserID

	if err := s.workspaceRepo.UpdateWorkspace(ctx, *workspace); err != nil {
		s.LogError(ctx, err, "Failed to update workspace", slog.String("workspace_id", workspaceID))
		return nil, err
	}
	return workspace, nil
}
