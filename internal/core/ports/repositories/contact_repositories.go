package repositories

import (
	"context"
	"time"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
)

// ContactRepositoryFacade manages a campaign's call list. Listing is cursor
// paginated on (created_at, contact_id).
type ContactRepositoryFacade interface {
	FindContactByID(ctx context.Context, workspaceID, contactID string) (*domain.Contact, error)
	ListContacts(ctx context.Context, workspaceID, campaignID string, afterCreatedAt *time.Time, afterID string, limit int) ([]domain.Contact, error)
	SaveContact(ctx context.Context, contact domain.Contact) error
	SaveContacts(ctx context.Context, contacts []domain.Contact) error
	UpdateContact(ctx context.Context, contact domain.Contact) error
}
