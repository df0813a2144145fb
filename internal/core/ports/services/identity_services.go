package services

import (
	"context"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
)

// IdentityResolverSvc converts an authenticated user id into the resolved
// access snapshot consumed by the gates and the landing router.
type IdentityResolverSvc interface {
	// Resolve loads role rows and the profile for the user and publishes a
	// complete Identity. A data-layer failure degrades to an authenticated
	// identity with zero roles and no workspace rather than surfacing an
	// error; callers cannot distinguish it from a genuinely roleless user.
	Resolve(ctx context.Context, userID string) domain.Identity
}

// RoleAdminSvc covers the admin-side role and workspace-binding management
// that feeds the resolver.
type RoleAdminSvc interface {
	// AssignRole grants a role to a user. "am" collapses to its persisted
	// form and sets the profile's display role label.
	AssignRole(ctx context.Context, actingUserID, targetUserID string, role domain.Role) error
	RevokeRole(ctx context.Context, actingUserID, targetUserID string, role domain.Role) error
	// BindWorkspace points a user's profile at a workspace. Nil unbinds.
	BindWorkspace(ctx context.Context, actingUserID, targetUserID string, workspaceID *string) error
	GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error)
}

// IdentitySvcFacade combines resolution and role administration.
type IdentitySvcFacade interface {
	IdentityResolverSvc
	RoleAdminSvc
}
