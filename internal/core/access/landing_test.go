package access_test

import (
	"testing"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/access"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestLanding_LoadingStaysPending(t *testing.T) {
	d := access.Landing(domain.Identity{Loading: true})

	assert.Equal(t, access.EffectPending, d.Effect)
}

func TestLanding_UnauthenticatedGoesToLogin(t *testing.T) {
	d := access.Landing(domain.AnonymousIdentity())

	assert.Equal(t, access.EffectRedirect, d.Effect)
	assert.Equal(t, access.LoginRoute, d.Target)
}

func TestLanding_UnauthenticatedDominatesStaleFields(t *testing.T) {
	// Even with stale role/workspace data on the snapshot, no session means
	// login. The unauthenticated check runs first.
	stale := domain.Identity{
		Authenticated: false,
		Roles:         []domain.Role{domain.RoleAdmin},
		WorkspaceID:   strPtr("ws-1"),
	}

	d := access.Landing(stale)

	assert.Equal(t, access.EffectRedirect, d.Effect)
	assert.Equal(t, access.LoginRoute, d.Target)
}

func TestLanding_ZeroRolesAwaitsAssignment(t *testing.T) {
	d := access.Landing(identity([]domain.Role{}, nil))

	assert.Equal(t, access.EffectDeny, d.Effect)
	assert.Equal(t, access.ReasonAwaitingRoles, d.Reason)
	assert.Empty(t, d.Target, "awaiting-role state must not navigate")
}

func TestLanding_InternalGoesToInternalDashboard(t *testing.T) {
	d := access.Landing(identity([]domain.Role{domain.RoleBDR}, nil))

	assert.Equal(t, access.EffectRedirect, d.Effect)
	assert.Equal(t, access.InternalDashboard, d.Target)
}

func TestLanding_InternalDominatesWorkspaceBinding(t *testing.T) {
	// Dual-status account: internal wins over the workspace binding.
	d := access.Landing(identity([]domain.Role{domain.RoleAdmin, domain.RoleClient}, strPtr("ws-42")))

	assert.Equal(t, access.EffectRedirect, d.Effect)
	assert.Equal(t, access.InternalDashboard, d.Target)
}

func TestLanding_ClientGoesToOwnWorkspace(t *testing.T) {
	d := access.Landing(identity([]domain.Role{domain.RoleClient}, strPtr("ws-42")))

	assert.Equal(t, access.EffectRedirect, d.Effect)
	assert.Equal(t, "/workspace/ws-42/dashboard", d.Target)
}

func TestLanding_ClientWithoutWorkspaceIsTerminal(t *testing.T) {
	// A client role with no workspace bound is an administrative
	// misconfiguration; it lands on the no-workspace terminal state instead of
	// an inert placeholder.
	d := access.Landing(identity([]domain.Role{domain.RoleClient}, nil))

	assert.Equal(t, access.EffectDeny, d.Effect)
	assert.Equal(t, access.ReasonNoWorkspace, d.Reason)
}
