package dto

import (
	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
	portssvc "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/services"
)

// ContactRequest defines one contact row for creation or import. Phone or
// email is required; the service enforces it since either alone is fine.
type ContactRequest struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName"`
	Title       string `json:"title"`
	CompanyName string `json:"companyName"`
	Phone       string `json:"phone"`
	Email       string `json:"email" binding:"omitempty,email"`
}

// ToNewContact converts the request to the service input.
func (r ContactRequest) ToNewContact() portssvc.NewContact {
	return portssvc.NewContact{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Title:       r.Title,
		CompanyName: r.CompanyName,
		Phone:       r.Phone,
		Email:       r.Email,
	}
}

// ImportContactsRequest bulk-loads a call list.
type ImportContactsRequest struct {
	Contacts []ContactRequest `json:"contacts" binding:"required,min=1,max=1000,dive"`
}

// UpdateContactStatusRequest moves a contact through the calling flow.
type UpdateContactStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=NEW CONTACTED INTERESTED NOT_INTERESTED DO_NOT_CALL"`
}

// ListContactsParams defines query parameters for a contact page.
type ListContactsParams struct {
	PageToken string `form:"pageToken"`
	Limit     int    `form:"limit,default=50"`
}

// ContactResponse defines data returned for a contact.
type ContactResponse struct {
	ContactID   string               `json:"contactID"`
	CampaignID  string               `json:"campaignID"`
	FirstName   string               `json:"firstName"`
	LastName    string               `json:"lastName"`
	Title       string               `json:"title"`
	CompanyName string               `json:"companyName"`
	Phone       string               `json:"phone"`
	Email       string               `json:"email"`
	Status      domain.ContactStatus `json:"status"`
}

// ToContactResponse converts domain.Contact to DTO.
func ToContactResponse(c *domain.Contact) ContactResponse {
	return ContactResponse{
		ContactID:   c.ContactID,
		CampaignID:  c.CampaignID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Title:       c.Title,
		CompanyName: c.CompanyName,
		Phone:       c.Phone,
		Email:       c.Email,
		Status:      c.Status,
	}
}

// ListContactsResponse is one page of contacts.
type ListContactsResponse struct {
	Contacts  []ContactResponse `json:"contacts"`
	NextToken string            `json:"nextToken,omitempty"`
}

// ToListContactsResponse converts a service page to DTO.
func ToListContactsResponse(page *portssvc.ContactPage) ListContactsResponse {
	list := make([]ContactResponse, len(page.Contacts))
	for i, c := range page.Contacts {
		list[i] = ToContactResponse(&c)
	}
	return ListContactsResponse{Contacts: list, NextToken: page.NextToken}
}
