package domain

// Identity is the fully-resolved access snapshot for a session. It is derived,
// never persisted, and is the sole input to the access gates and the landing
// router. The resolver publishes it whole; readers never observe a partial one.
type Identity struct {
	// Loading is true while session/role/profile state is still being fetched.
	// Gates treat a loading identity as "cannot decide yet".
	Loading bool `json:"loading"`

	// Authenticated is false for anonymous visitors. The remaining fields are
	// meaningless when it is false.
	Authenticated bool    `json:"authenticated"`
	UserID        string  `json:"userID,omitempty"`
	Email         string  `json:"email,omitempty"`
	DisplayName   string  `json:"displayName,omitempty"`
	Roles         []Role  `json:"roles"`
	WorkspaceID   *string `json:"workspaceID,omitempty"`
}

// IsInternal reports whether any held role is a staff role. Internal status
// always dominates a simultaneously-held workspace binding.
func (id Identity) IsInternal() bool {
	for _, r := range id.Roles {
		if r.IsInternal() {
			return true
		}
	}
	return false
}

// HasRole reports whether the identity holds the given role.
func (id Identity) HasRole(role Role) bool {
	for _, r := range id.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// DisplayRole returns the badge label for the identity, by precedence.
func (id Identity) DisplayRole() Role {
	return HighestPrecedence(id.Roles)
}

// AnonymousIdentity is the resolved snapshot for a visitor with no session.
func AnonymousIdentity() Identity {
	return Identity{Authenticated: false, Roles: []Role{}}
}
