package repositories

import (
	"context"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
)

// InviteRepositoryFacade manages issued invites. Lookups by token use the
// SHA256 hash of the raw token, never the token itself.
type InviteRepositoryFacade interface {
	FindInviteByID(ctx context.Context, inviteID string) (*domain.Invite, error)
	FindInviteByTokenHash(ctx context.Context, tokenHash string) (*domain.Invite, error)
	ListPendingInvites(ctx context.Context) ([]domain.Invite, error)
	SaveInvite(ctx context.Context, invite domain.Invite) error
	UpdateInvite(ctx context.Context, invite domain.Invite) error
}
