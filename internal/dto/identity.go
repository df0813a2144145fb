package dto

import (
	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
)

// IdentityResponse is the resolved access snapshot the frontend consumes.
type IdentityResponse struct {
	Authenticated  bool    `json:"authenticated"`
	UserID         string  `json:"userID,omitempty"`
	Email          string  `json:"email,omitempty"`
	DisplayName    string  `json:"displayName,omitempty"`
	Roles          []domain.Role `json:"roles"`
	DisplayRole    domain.Role   `json:"displayRole,omitempty"`
	IsInternalUser bool          `json:"isInternalUser"`
	WorkspaceID    *string       `json:"workspaceID,omitempty"`
}

// ToIdentityResponse converts a resolved identity to DTO.
func ToIdentityResponse(id domain.Identity) IdentityResponse {
	roles := id.Roles
	if roles == nil {
		roles = []domain.Role{}
	}
	return IdentityResponse{
		Authenticated:  id.Authenticated,
		UserID:         id.UserID,
		Email:          id.Email,
		DisplayName:    id.DisplayName,
		Roles:          roles,
		DisplayRole:    id.DisplayRole(),
		IsInternalUser: id.IsInternal(),
		WorkspaceID:    id.WorkspaceID,
	}
}

// LandingResponse tells the frontend where the session lands. Target is empty
// for terminal states, where Reason explains why.
type LandingResponse struct {
	Target string `json:"target,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// AssignRoleRequest grants a role to a user.
type AssignRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=admin am bdr client"`
}

// BindWorkspaceRequest points a user's profile at a workspace. A null
// workspaceID unbinds.
type BindWorkspaceRequest struct {
	WorkspaceID *string `json:"workspaceID"`
}

// ProfileResponse defines the data returned for a user profile.
type ProfileResponse struct {
	UserID      string       `json:"userID"`
	DisplayName string       `json:"displayName"`
	DisplayRole *domain.Role `json:"displayRole,omitempty"`
	WorkspaceID *string      `json:"workspaceID,omitempty"`
}

// ToProfileResponse converts domain.UserProfile to DTO.
func ToProfileResponse(p *domain.UserProfile) ProfileResponse {
	return ProfileResponse{
		UserID:      p.UserID,
		DisplayName: p.DisplayName,
		DisplayRole: p.DisplayRole,
		WorkspaceID: p.WorkspaceID,
	}
}
