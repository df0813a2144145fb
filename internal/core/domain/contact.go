package domain

// ContactStatus tracks where a prospect sits in the calling flow.
type ContactStatus string

const (
	ContactNew           ContactStatus = "NEW"
	ContactContacted     ContactStatus = "CONTACTED"
	ContactInterested    ContactStatus = "INTERESTED"
	ContactNotInterested ContactStatus = "NOT_INTERESTED"
	ContactDoNotCall     ContactStatus = "DO_NOT_CALL"
)

// Contact is a prospect loaded into a campaign's call list.
type Contact struct {
	ContactID   string        `json:"contactID"` // Primary key (UUID)
	WorkspaceID string        `json:"workspaceID"`
	CampaignID  string        `json:"campaignID"`
	FirstName   string        `json:"firstName"`
	LastName    string        `json:"lastName"`
	Title       string        `json:"title"`
	CompanyName string        `json:"companyName"`
	Phone       string        `json:"phone"`
	Email       string        `json:"email"`
	Status      ContactStatus `json:"status"`
	AuditFields
}
