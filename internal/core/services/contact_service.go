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
	"github.com/1-Hour-Automation/client-hub-sub000/internal/utils/pagination"
	"github.com/google/uuid"
)

const defaultContactPageSize = 50

// contactService implements the ContactSvcFacade.
type contactService struct {
	BaseService
	contactRepo  portsrepo.ContactRepositoryFacade
	campaignRepo portsrepo.CampaignRepositoryFacade
}

// NewContactService creates a new contact service.
func NewContactService(contactRepo portsrepo.ContactRepositoryFacade, campaignRepo portsrepo.CampaignRepositoryFacade) portssvc.ContactSvcFacade {
	return &contactService{
		contactRepo:  contactRepo,
		campaignRepo: campaignRepo,
	}
}

var _ portssvc.ContactSvcFacade = (*contactService)(nil)

// AddContact adds one prospect to a campaign's call list.
func (s *contactService) AddContact(ctx context.Context, workspaceID, campaignID string, in portssvc.NewContact, creatorUserID string) (*domain.Contact, error) {
	contacts, err := s.ImportContacts(ctx, workspaceID, campaignID, []portssvc.NewContact{in}, creatorUserID)
	if err != nil {
		return nil, err
	}
	return &contacts[0], nil
}

// ImportContacts bulk-loads prospects into a campaign. The campaign must
// exist in this workspace and not be completed.
func (s *contactService) ImportContacts(ctx context.Context, workspaceID, campaignID string, in []portssvc.NewContact, creatorUserID string) ([]domain.Contact, error) {
	if len(in) == 0 {
		return nil, apperrors.NewValidationFailedError("no contacts supplied")
	}

	campaign, err := s.campaignRepo.FindCampaignByID(ctx, workspaceID, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign.Status == domain.CampaignCompleted {
		return nil, apperrors.NewValidationFailedError("cannot add contacts to a completed campaign")
	}

	now := time.Now()
	contacts := make([]domain.Contact, 0, len(in))
	for _, nc := range in {
		if nc.Phone == "" && nc.Email == "" {
			return nil, apperrors.NewValidationFailedError("each contact needs at least a phone or an email")
		}
		contacts = append(contacts, domain.Contact{
			ContactID:   uuid.NewString(),
			WorkspaceID: workspaceID,
			CampaignID:  campaignID,
			FirstName:   nc.FirstName,
			LastName:    nc.LastName,
			Title:       nc.Title,
			CompanyName: nc.CompanyName,
			Phone:       nc.Phone,
			Email:       nc.Email,
			Status:      domain.ContactNew,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     creatorUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: creatorUserID,
			},
		})
	}

	if err := s.contactRepo.SaveContacts(ctx, contacts); err != nil {
		s.LogError(ctx, err, "Failed to import contacts",
			slog.String("campaign_id", campaignID), slog.Int("count", len(contacts)))
		return nil, err
	}

	s.LogInfo(ctx, "Contacts imported",
		slog.String("campaign_id", campaignID), slog.Int("count", len(contacts)))
	return contacts, nil
}

// GetContact retrieves one contact scoped to the workspace.
func (s *contactService) GetContact(ctx context.Context, workspaceID, contactID string) (*domain.Contact, error) {
	contact, err := s.contactRepo.FindContactByID(ctx, workspaceID, contactID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find contact", slog.String("contact_id", contactID))
		}
		return nil, err
	}
	return contact, nil
}

// ListContacts returns one cursor page of a campaign's call list.
func (s *contactService) ListContacts(ctx context.Context, workspaceID, campaignID string, pageToken string, limit int) (*portssvc.ContactPage, error) {
	if limit <= 0 || limit > 200 {
		limit = defaultContactPageSize
	}

	var afterCreatedAt *time.Time
	var afterID string
	if pageToken != "" {
		ts, id, err := pagination.DecodeCursor(pageToken)
		if err != nil {
			return nil, apperrors.NewValidationFailedError("invalid page token")
		}
		afterCreatedAt = &ts
		afterID = id
	}

	// Fetch one extra row to know whether another page exists.
	contacts, err := s.contactRepo.ListContacts(ctx, workspaceID, campaignID, afterCreatedAt, afterID, limit+1)
	if err != nil {
		s.LogError(ctx, err, "Failed to list contacts", slog.String("campaign_id", campaignID))
		return nil, err
	}

	page := &portssvc.ContactPage{Contacts: contacts}
	if len(contacts) > limit {
		page.Contacts = contacts[:limit]
		last := page.Contacts[limit-1]
		page.NextToken = pagination.EncodeCursor(last.CreatedAt, last.ContactID)
	}
	if page.Contacts == nil {
		page.Contacts = []domain.Contact{}
	}
	return page, nil
}

// UpdateContactStatus moves a contact through the calling flow.
func (s *contactService) UpdateContactStatus(ctx context.Context, workspaceID, contactID string, status domain.ContactStatus, updaterUserID string) (*domain.Contact, error) {
	switch status {
	case domain.ContactNew, domain.ContactContacted, domain.ContactInterested,
		domain.ContactNotInterested, domain.ContactDoNotCall:
	default:
		return nil, apperrors.NewValidationFailedError("invalid contact status")
	}

	contact, err := s.contactRepo.FindContactByID(ctx, workspaceID, contactID)
	if err != nil {
		return nil, err
	}

	// DO_NOT_CALL is sticky: compliance requires it never be unset here.
	if contact.Status == domain.ContactDoNotCall && status != domain.ContactDoNotCall {
		return nil, apperrors.NewValidationFailedError("do-not-call contacts cannot be reactivated")
	}

	contact.Status = status
	contact.LastUpdatedAt = time.Now()
	contact.LastUpdatedBy = updaterUserID
	if err := s.contactRepo.UpdateContact(ctx, *contact); err != nil {
		s.LogError(ctx, err, "Failed to update contact status", slog.String("contact_id", contactID))
		return nil, err
	}
	return contact, nil
}
