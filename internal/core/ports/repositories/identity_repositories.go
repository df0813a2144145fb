package repositories

import (
	"context"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
)

// RoleRepositoryFacade manages persisted role rows. The stored role set is
// {admin, bdr, client}; "am" is collapsed before it reaches this layer.
type RoleRepositoryFacade interface {
	FindRolesByUserID(ctx context.Context, userID string) ([]domain.UserRole, error)
	GrantRole(ctx context.Context, grant domain.UserRole) error
	RevokeRole(ctx context.Context, userID string, role domain.Role) error
}

// ProfileRepositoryFacade manages the one-per-user profile row carrying the
// display name, display role label and the optional workspace binding.
type ProfileRepositoryFacade interface {
	FindProfileByUserID(ctx context.Context, userID string) (*domain.UserProfile, error)
	SaveProfile(ctx context.Context, profile domain.UserProfile) error
	UpdateProfile(ctx context.Context, profile domain.UserProfile) error
}
