package services

import (
	"context"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
)

// CreatedInvite pairs an invite with its single-use raw token. The token is
// returned exactly once; only its hash persists. Delivery of the invite email
// stays with the external mailer.
type CreatedInvite struct {
	Invite   domain.Invite
	RawToken string
}

// InviteSvcFacade issues and redeems portal invitations.
type InviteSvcFacade interface {
	// CreateInvite issues an invite for the given role. Client-role invites
	// require a workspace; "am" is accepted and recorded as the display label
	// while the eventual role row is the persisted collapse.
	CreateInvite(ctx context.Context, actingUserID, email string, role domain.Role, workspaceID *string) (*CreatedInvite, error)
	ListPendingInvites(ctx context.Context) ([]domain.Invite, error)
	RevokeInvite(ctx context.Context, actingUserID, inviteID string) error
	// AcceptInvite redeems a raw token during registration: creates the user,
	// writes the role row and profile, and marks the invite accepted.
	AcceptInvite(ctx context.Context, rawToken, name, password string) (*domain.User, error)
}
