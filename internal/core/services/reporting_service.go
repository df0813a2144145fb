package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
	portsrepo "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/repositories"
	portssvc "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/services"
)

// reportingService implements the ReportingSvcFacade.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepositoryFacade
	workspaceRepo portsrepo.WorkspaceRepositoryFacade
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepositoryFacade, workspaceRepo portsrepo.WorkspaceRepositoryFacade) portssvc.ReportingSvcFacade {
	return &reportingService{
		reportingRepo: reportingRepo,
		workspaceRepo: workspaceRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// GetWorkspaceDashboard returns the aggregate snapshot shown on the workspace
// landing screen. A zero since means all time.
func (s *reportingService) GetWorkspaceDashboard(ctx context.Context, workspaceID string, since time.Time) (*domain.WorkspaceDashboard, error) {
	if _, err := s.workspaceRepo.FindWorkspaceByID(ctx, workspaceID); err != nil {
		return nil, err
	}
	dashboard, err := s.reportingRepo.GetWorkspaceDashboard(ctx, workspaceID, since)
	if err != nil {
		s.LogError(ctx, err, "Failed to build workspace dashboard", slog.String("workspace_id", workspaceID))
		return nil, err
	}
	return dashboard, nil
}
