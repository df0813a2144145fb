package domain

import "time"

// User represents an authenticated account in the portal.
type User struct {
	UserID       string `json:"userID"` // Primary key (UUID)
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	// AuthProvider is "local" or "google"; ProviderUserID is the subject from
	// the external provider when AuthProvider is not local.
	AuthProvider           string     `json:"authProvider"`
	ProviderUserID         *string    `json:"providerUserID,omitempty"`
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Soft delete
}

// UserRole is one persisted role row. A user may hold zero or more.
type UserRole struct {
	UserID    string    `json:"userID"`
	Role      Role      `json:"role"` // admin, bdr or client; never am
	GrantedAt time.Time `json:"grantedAt"`
	GrantedBy string    `json:"grantedBy"` // UserID reference
}

// UserProfile holds the display attributes and the optional workspace binding
// for a user. Exactly one per user.
type UserProfile struct {
	UserID      string `json:"userID"`
	DisplayName string `json:"displayName"`
	// DisplayRole preserves the invite-time label, including "am" which is not
	// a persisted role. Empty means "derive from role rows".
	DisplayRole *Role `json:"displayRole,omitempty"`
	// WorkspaceID binds a client user to their tenant. Internal users may carry
	// one (an AM's home workspace) but it never constrains their access.
	WorkspaceID *string `json:"workspaceID,omitempty"`
	AuditFields
}
