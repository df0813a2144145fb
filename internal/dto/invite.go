package dto

import (
	"time"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
	portssvc "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/services"
)

// CreateInviteRequest issues a portal invite. WorkspaceID is required when the
// role is client.
type CreateInviteRequest struct {
	Email       string  `json:"email" binding:"required,email"`
	Role        string  `json:"role" binding:"required,oneof=admin am bdr client"`
	WorkspaceID *string `json:"workspaceID"`
}

// InviteResponse defines data returned for an invite.
type InviteResponse struct {
	InviteID      string              `json:"inviteID"`
	Email         string              `json:"email"`
	RequestedRole domain.Role         `json:"requestedRole"`
	WorkspaceID   *string             `json:"workspaceID,omitempty"`
	Status        domain.InviteStatus `json:"status"`
	ExpiresAt     time.Time           `json:"expiresAt"`
	CreatedAt     time.Time           `json:"createdAt"`
}

// ToInviteResponse converts domain.Invite to DTO.
func ToInviteResponse(i *domain.Invite) InviteResponse {
	return InviteResponse{
		InviteID:      i.InviteID,
		Email:         i.Email,
		RequestedRole: i.RequestedRole,
		WorkspaceID:   i.WorkspaceID,
		Status:        i.Status,
		ExpiresAt:     i.ExpiresAt,
		CreatedAt:     i.CreatedAt,
	}
}

// CreatedInviteResponse carries the invite plus the raw token. The token is
// shown exactly once.
type CreatedInviteResponse struct {
	Invite InviteResponse `json:"invite"`
	Token  string         `json:"token"`
}

// ToCreatedInviteResponse converts the service result to DTO.
func ToCreatedInviteResponse(created *portssvc.CreatedInvite) CreatedInviteResponse {
	return CreatedInviteResponse{
		Invite: ToInviteResponse(&created.Invite),
		Token:  created.RawToken,
	}
}

// ListInvitesResponse wraps pending invites.
type ListInvitesResponse struct {
	Invites []InviteResponse `json:"invites"`
}

// ToListInvitesResponse converts a slice of domain.Invite to DTO.
func ToListInvitesResponse(invites []domain.Invite) ListInvitesResponse {
	list := make([]InviteResponse, len(invites))
	for i, inv := range invites {
		list[i] = ToInviteResponse(&inv)
	}
	return ListInvitesResponse{Invites: list}
}
