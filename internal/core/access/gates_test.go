package access_test

import (
	"testing"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/access"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func identity(roles []domain.Role, workspaceID *string) domain.Identity {
	return domain.Identity{
		Authenticated: true,
		UserID:        "user-1",
		Roles:         roles,
		WorkspaceID:   workspaceID,
	}
}

func TestAdminGate_InternalAlwaysAllowed(t *testing.T) {
	tests := []struct {
		name        string
		roles       []domain.Role
		workspaceID *string
	}{
		{"admin without workspace", []domain.Role{domain.RoleAdmin}, nil},
		{"bdr without workspace", []domain.Role{domain.RoleBDR}, nil},
		{"am without workspace", []domain.Role{domain.RoleAM}, nil},
		{"admin with home workspace", []domain.Role{domain.RoleAdmin}, strPtr("ws-7")},
		{"dual status admin+client", []domain.Role{domain.RoleAdmin, domain.RoleClient}, strPtr("ws-42")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := access.AdminGate(identity(tt.roles, tt.workspaceID))
			assert.Equal(t, access.EffectAllow, d.Effect)
		})
	}
}

func TestAdminGate_ClientRedirectsToOwnWorkspace(t *testing.T) {
	d := access.AdminGate(identity([]domain.Role{domain.RoleClient}, strPtr("ws-42")))

	assert.Equal(t, access.EffectRedirect, d.Effect)
	assert.Equal(t, "/workspace/ws-42/dashboard", d.Target)
}

func TestAdminGate_NoRolesNoWorkspaceDenies(t *testing.T) {
	d := access.AdminGate(identity([]domain.Role{}, nil))

	assert.Equal(t, access.EffectDeny, d.Effect)
	assert.Equal(t, access.ReasonAccessDenied, d.Reason)
	assert.Empty(t, d.Target, "a denial must never navigate")
}

func TestAdminGate_ClientWithoutWorkspaceDenies(t *testing.T) {
	d := access.AdminGate(identity([]domain.Role{domain.RoleClient}, nil))

	assert.Equal(t, access.EffectDeny, d.Effect)
}

func TestAdminGate_LoadingIsPending(t *testing.T) {
	d := access.AdminGate(domain.Identity{Loading: true})

	assert.Equal(t, access.EffectPending, d.Effect)
}

func TestWorkspaceGate_InternalSeesAnyWorkspace(t *testing.T) {
	// Internal users may view any workspace, including one that differs from
	// their own binding.
	id := identity([]domain.Role{domain.RoleBDR}, strPtr("ws-1"))

	assert.Equal(t, access.EffectAllow, access.WorkspaceGate(id, "ws-1").Effect)
	assert.Equal(t, access.EffectAllow, access.WorkspaceGate(id, "ws-99").Effect)
}

func TestWorkspaceGate_ClientOwnWorkspaceAllowed(t *testing.T) {
	id := identity([]domain.Role{domain.RoleClient}, strPtr("ws-42"))

	d := access.WorkspaceGate(id, "ws-42")

	// Equality case is idempotent: allow, never a redirect loop.
	assert.Equal(t, access.EffectAllow, d.Effect)
	assert.Empty(t, d.Target)
}

func TestWorkspaceGate_ClientOtherWorkspaceRedirectsHome(t *testing.T) {
	id := identity([]domain.Role{domain.RoleClient}, strPtr("ws-42"))

	d := access.WorkspaceGate(id, "ws-99")

	assert.Equal(t, access.EffectRedirect, d.Effect)
	assert.Equal(t, "/workspace/ws-42/dashboard", d.Target, "must steer to the user's own workspace, never the requested one")
}

func TestWorkspaceGate_ClientWithoutWorkspaceDenies(t *testing.T) {
	id := identity([]domain.Role{domain.RoleClient}, nil)

	d := access.WorkspaceGate(id, "ws-1")

	assert.Equal(t, access.EffectDeny, d.Effect)
	assert.Equal(t, access.ReasonNoWorkspace, d.Reason)
}

func TestWorkspaceGate_LoadingIsPending(t *testing.T) {
	d := access.WorkspaceGate(domain.Identity{Loading: true}, "ws-1")

	assert.Equal(t, access.EffectPending, d.Effect)
}

func TestWorkspaceGate_OwnershipIsStrictEquality(t *testing.T) {
	id := identity([]domain.Role{domain.RoleClient}, strPtr("ws-4"))

	// No prefix or hierarchical matching.
	d := access.WorkspaceGate(id, "ws-42")

	assert.Equal(t, access.EffectRedirect, d.Effect)
}
