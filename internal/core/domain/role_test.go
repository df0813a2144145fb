package domain_test

import (
	"testing"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestRolePersistedCollapsesAM(t *testing.T) {
	assert.Equal(t, domain.RoleBDR, domain.RoleAM.Persisted())
	assert.Equal(t, domain.RoleAdmin, domain.RoleAdmin.Persisted())
	assert.Equal(t, domain.RoleClient, domain.RoleClient.Persisted())
	assert.False(t, domain.RoleAM.IsPersisted())
}

func TestHighestPrecedence(t *testing.T) {
	tests := []struct {
		name  string
		roles []domain.Role
		want  domain.Role
	}{
		{"empty", nil, domain.Role("")},
		{"single client", []domain.Role{domain.RoleClient}, domain.RoleClient},
		{"admin beats am regardless of order", []domain.Role{domain.RoleAM, domain.RoleAdmin}, domain.RoleAdmin},
		{"am beats bdr", []domain.Role{domain.RoleBDR, domain.RoleAM}, domain.RoleAM},
		{"bdr beats client", []domain.Role{domain.RoleClient, domain.RoleBDR}, domain.RoleBDR},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.HighestPrecedence(tt.roles))
		})
	}
}

func TestIdentityIsInternal(t *testing.T) {
	internal := domain.Identity{Authenticated: true, Roles: []domain.Role{domain.RoleClient, domain.RoleBDR}}
	client := domain.Identity{Authenticated: true, Roles: []domain.Role{domain.RoleClient}}

	assert.True(t, internal.IsInternal(), "any internal role makes the identity internal")
	assert.False(t, client.IsInternal())
}
