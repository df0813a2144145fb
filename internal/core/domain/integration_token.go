package domain

import "time"

// IntegrationToken is a long-lived API key letting external dialer tooling
// write call logs on behalf of a BDR. Only the SHA256 hash is stored.
type IntegrationToken struct {
	TokenID    string     `json:"tokenID"` // Primary key (UUID)
	UserID     string     `json:"userID"`
	Name       string     `json:"name"` // Label chosen by the user, e.g. "aircall sync"
	TokenHash  string     `json:"-"`
	LastUsedAt *time.Time `json:"lastUsedAt,omitempty"`
	ExpiresAt  *time.Time `json:"expiresAt,omitempty"` // Nil means no expiry
	RevokedAt  *time.Time `json:"revokedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// Active reports whether the token may still authenticate requests.
func (t IntegrationToken) Active(now time.Time) bool {
	if t.RevokedAt != nil {
		return false
	}
	if t.ExpiresAt != nil && now.After(*t.ExpiresAt) {
		return false
	}
	return true
}
