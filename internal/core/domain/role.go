package domain

// Role identifies the level of access a user holds in the portal.
type Role string

const (
	// RoleAdmin is full staff access, including workspace and user management.
	RoleAdmin Role = "admin"
	// RoleBDR is a business development rep working campaigns across workspaces.
	RoleBDR Role = "bdr"
	// RoleAM is an account manager. It is a display-level label only: invites
	// that request "am" are persisted as "bdr", with the label retained on the
	// user's profile. See IdentityService.
	RoleAM Role = "am"
	// RoleClient is a client-side user bound to a single workspace.
	RoleClient Role = "client"
)

// internalRoles are the staff roles. Holding any of them grants access to every
// workspace regardless of the profile's workspace binding.
var internalRoles = map[Role]bool{
	RoleAdmin: true,
	RoleBDR:   true,
	RoleAM:    true,
}

// rolePrecedence orders roles for badge labeling. Display picks the highest
// precedence role held, never the incidental order of the role rows.
var rolePrecedence = []Role{RoleAdmin, RoleAM, RoleBDR, RoleClient}

// IsInternal reports whether the role is a staff role.
func (r Role) IsInternal() bool {
	return internalRoles[r]
}

// IsPersisted reports whether the role may appear as a stored role row.
// "am" never does: it collapses to "bdr" at persistence time.
func (r Role) IsPersisted() bool {
	return r == RoleAdmin || r == RoleBDR || r == RoleClient
}

// Persisted returns the role as stored in user_roles.
func (r Role) Persisted() Role {
	if r == RoleAM {
		return RoleBDR
	}
	return r
}

// ParseRole validates a raw role string.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleBDR, RoleAM, RoleClient:
		return Role(s), true
	}
	return "", false
}

// HighestPrecedence returns the display role for a set of held roles, or ""
// when the set is empty.
func HighestPrecedence(roles []Role) Role {
	held := make(map[Role]bool, len(roles))
	for _, r := range roles {
		held[r] = true
	}
	for _, r := range rolePrecedence {
		if held[r] {
			return r
		}
	}
	return ""
}
