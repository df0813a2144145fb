package handlers

import (
	"net/http"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
	portssvc "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/services"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/dto"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ContactHandler handles campaign call-list requests inside a workspace.
type ContactHandler struct {
	contactService portssvc.ContactSvcFacade
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(cs portssvc.ContactSvcFacade) *ContactHandler {
	return &ContactHandler{contactService: cs}
}

// registerContactRoutes sets up contact routes inside the workspace group.
// Listing and import are campaign-scoped; single-contact reads and status
// updates address the contact directly.
func registerContactRoutes(rg *gin.RouterGroup, contactService portssvc.ContactSvcFacade) {
	h := NewContactHandler(contactService)

	campaignContacts := rg.Group("/campaigns/:campaign_id/contacts")
	{
		campaignContacts.POST("", h.AddContact)
		campaignContacts.POST("/import", h.ImportContacts)
		campaignContacts.GET("", h.ListContacts)
	}

	contacts := rg.Group("/contacts")
	{
		contacts.GET("/:contact_id", h.GetContact)
		contacts.PUT("/:contact_id/status", h.UpdateContactStatus)
	}
}

// AddContact godoc
// @Summary Add a contact
// @Tags contacts
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param campaign_id path string true "Campaign ID"
// @Param contact body dto.ContactRequest true "Contact details"
// @Success 201 {object} dto.ContactResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Campaign not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/campaigns/{campaign_id}/contacts [post]
func (h *ContactHandler) AddContact(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	creatorUserID, _ := middleware.GetUserIDFromContext(c)
	contact, err := h.contactService.AddContact(c.Request.Context(), c.Param("workspace_id"),
		c.Param("campaign_id"), req.ToNewContact(), creatorUserID)
	if err != nil {
		handleServiceError(c, err, "Failed to add contact")
		return
	}
	c.JSON(http.StatusCreated, dto.ToContactResponse(contact))
}

// ImportContacts godoc
// @Summary Import contacts
// @Description Imports up to 1000 contacts into a campaign in one batch.
// @Tags contacts
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param campaign_id path string true "Campaign ID"
// @Param contacts body dto.ImportContactsRequest true "Contacts to import"
// @Success 201 {object} dto.ListContactsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Campaign not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/campaigns/{campaign_id}/contacts/import [post]
func (h *ContactHandler) ImportContacts(c *gin.Context) {
	var req dto.ImportContactsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	in := make([]portssvc.NewContact, len(req.Contacts))
	for i, contact := range req.Contacts {
		in[i] = contact.ToNewContact()
	}

	creatorUserID, _ := middleware.GetUserIDFromContext(c)
	contacts, err := h.contactService.ImportContacts(c.Request.Context(), c.Param("workspace_id"),
		c.Param("campaign_id"), in, creatorUserID)
	if err != nil {
		handleServiceError(c, err, "Failed to import contacts")
		return
	}
	c.JSON(http.StatusCreated, dto.ToListContactsResponse(&portssvc.ContactPage{Contacts: contacts}))
}

// ListContacts godoc
// @Summary List contacts
// @Description Lists a campaign's call list, cursor-paginated in creation order.
// @Tags contacts
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param campaign_id path string true "Campaign ID"
// @Param pageToken query string false "Cursor from the previous page"
// @Param limit query int false "Page size" default(50)
// @Success 200 {object} dto.ListContactsResponse
// @Failure 400 {object} ErrorResponse "Malformed page token"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/campaigns/{campaign_id}/contacts [get]
func (h *ContactHandler) ListContacts(c *gin.Context) {
	var params dto.ListContactsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	page, err := h.contactService.ListContacts(c.Request.Context(), c.Param("workspace_id"),
		c.Param("campaign_id"), params.PageToken, params.Limit)
	if err != nil {
		handleServiceError(c, err, "Failed to list contacts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListContactsResponse(page))
}

// GetContact godoc
// @Summary Get contact
// @Tags contacts
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param contact_id path string true "Contact ID"
// @Success 200 {object} dto.ContactResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/contacts/{contact_id} [get]
func (h *ContactHandler) GetContact(c *gin.Context) {
	contact, err := h.contactService.GetContact(c.Request.Context(), c.Param("workspace_id"), c.Param("contact_id"))
	if err != nil {
		handleServiceError(c, err, "Contact not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToContactResponse(contact))
}

// UpdateContactStatus godoc
// @Summary Update contact status
// @Tags contacts
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param contact_id path string true "Contact ID"
// @Param status body dto.UpdateContactStatusRequest true "Target status"
// @Success 200 {object} dto.ContactResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/contacts/{contact_id}/status [put]
func (h *ContactHandler) UpdateContactStatus(c *gin.Context) {
	var req dto.UpdateContactStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	updaterUserID, _ := middleware.GetUserIDFromContext(c)
	contact, err := h.contactService.UpdateContactStatus(c.Request.Context(), c.Param("workspace_id"),
		c.Param("contact_id"), domain.ContactStatus(req.Status), updaterUserID)
	if err != nil {
		handleServiceError(c, err, "Failed to update contact status")
		return
	}
	c.JSON(http.StatusOK, dto.ToContactResponse(contact))
}
