package domain

import "time"

// InviteStatus tracks an issued invite.
type InviteStatus string

const (
	InvitePending  InviteStatus = "PENDING"
	InviteAccepted InviteStatus = "ACCEPTED"
	InviteRevoked  InviteStatus = "REVOKED"
	InviteExpired  InviteStatus = "EXPIRED"
)

// Invite is an admin-issued invitation to join the portal. The requested role
// may be "am"; the role row written at acceptance is the persisted collapse
// (bdr), while DisplayRole on the new profile keeps the label. Client invites
// always carry a workspace binding.
type Invite struct {
	InviteID      string  `json:"inviteID"` // Primary key (UUID)
	Email         string  `json:"email"`
	RequestedRole Role    `json:"requestedRole"`
	WorkspaceID   *string `json:"workspaceID,omitempty"` // Required when RequestedRole is client
	TokenHash     string  `json:"-"`
	Status        InviteStatus `json:"status"`
	ExpiresAt     time.Time    `json:"expiresAt"`
	AcceptedBy    *string      `json:"acceptedBy,omitempty"` // UserID of the account that redeemed it
	AuditFields
}
