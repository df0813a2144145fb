package services

import (
	"context"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
)

// NewContact carries the caller-supplied fields for one contact row.
type NewContact struct {
	FirstName   string
	LastName    string
	Title       string
	CompanyName string
	Phone       string
	Email       string
}

// ContactPage is one page of a cursor-paginated contact listing.
type ContactPage struct {
	Contacts  []domain.Contact
	NextToken string // Empty when this is the last page
}

// ContactSvcFacade manages campaign call lists.
type ContactSvcFacade interface {
	AddContact(ctx context.Context, workspaceID, campaignID string, in NewContact, creatorUserID string) (*domain.Contact, error)
	ImportContacts(ctx context.Context, workspaceID, campaignID string, in []NewContact, creatorUserID string) ([]domain.Contact, error)
	GetContact(ctx context.Context, workspaceID, contactID string) (*domain.Contact, error)
	ListContacts(ctx context.Context, workspaceID, campaignID string, pageToken string, limit int) (*ContactPage, error)
	UpdateContactStatus(ctx context.Context, workspaceID, contactID string, status domain.ContactStatus, updaterUserID string) (*domain.Contact, error)
}
