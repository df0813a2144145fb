package dto

import (
	"time"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
)

// CreateWorkspaceRequest defines data for creating a new client workspace.
type CreateWorkspaceRequest struct {
	Name        string `json:"name" binding:"required"`
	CompanyName string `json:"companyName" binding:"required"`
}

// UpdateWorkspaceRequest defines the updatable workspace fields. Pointers
// distinguish omitted fields from zero values.
type UpdateWorkspaceRequest struct {
	Name        *string `json:"name"`
	CompanyName *string `json:"companyName"`
	Status      *string `json:"status" binding:"omitempty,oneof=ACTIVE PAUSED CHURNED"`
}

// WorkspaceResponse defines data returned for a workspace.
type WorkspaceResponse struct {
	WorkspaceID string                 `json:"workspaceID"`
	Name        string                 `json:"name"`
	CompanyName string                 `json:"companyName"`
	Status      domain.WorkspaceStatus `json:"status"`
	CreatedAt   time.Time              `json:"createdAt"`
}

// ToWorkspaceResponse converts domain.Workspace to DTO.
func ToWorkspaceResponse(w *domain.Workspace) WorkspaceResponse {
	return WorkspaceResponse{
		WorkspaceID: w.WorkspaceID,
		Name:        w.Name,
		CompanyName: w.CompanyName,
		Status:      w.Status,
		CreatedAt:   w.CreatedAt,
	}
}

// ListWorkspacesParams defines query parameters for listing workspaces.
type ListWorkspacesParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// ListWorkspacesResponse wraps a list of workspaces.
type ListWorkspacesResponse struct {
	Workspaces []WorkspaceResponse `json:"workspaces"`
}

// ToListWorkspacesResponse converts a slice of domain.Workspace to DTO.
func ToListWorkspacesResponse(ws []domain.Workspace) ListWorkspacesResponse {
	list := make([]WorkspaceResponse, len(ws))
	for i, w := range ws {
		list[i] = ToWorkspaceResponse(&w)
	}
	return ListWorkspacesResponse{Workspaces: list}
}
