package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/apperrors"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
	portsrepo "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/repositories"
	portssvc "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/services"
)

// identityService resolves access snapshots and manages role grants and
// workspace bindings.
type identityService struct {
	BaseService
	userRepo    portsrepo.UserReader
	roleRepo    portsrepo.RoleRepositoryFacade
	profileRepo portsrepo.ProfileRepositoryFacade
}

// NewIdentityService creates a new identity service.
func NewIdentityService(
	userRepo portsrepo.UserReader,
	roleRepo portsrepo.RoleRepositoryFacade,
	profileRepo portsrepo.ProfileRepositoryFacade,
) portssvc.IdentitySvcFacade {
	return &identityService{
		userRepo:    userRepo,
		roleRepo:    roleRepo,
		profileRepo: profileRepo,
	}
}

var _ portssvc.IdentitySvcFacade = (*identityService)(nil)

// Resolve builds the complete access snapshot for a user. Any data-layer
// failure degrades to an authenticated identity with zero roles and no
// workspace: callers see the same "awaiting role assignment" state as a new
// user, and the underlying error is only visible in the logs.
func (s *identityService) Resolve(ctx context.Context, userID string) domain.Identity {
	id := domain.Identity{
		Authenticated: true,
		UserID:        userID,
		Roles:         []domain.Role{},
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil || user == nil || user.DeletedAt != nil {
		if err != nil {
			s.LogWarn(ctx, "Identity resolution: user lookup failed, degrading to empty identity",
				slog.String("error", err.Error()), slog.String("user_id", userID))
		}
		return id
	}
	id.Email = user.Email
	id.DisplayName = user.Name

	roleRows, err := s.roleRepo.FindRolesByUserID(ctx, userID)
	if err != nil {
		s.LogWarn(ctx, "Identity resolution: role lookup failed, degrading to empty role set",
			slog.String("error", err.Error()), slog.String("user_id", userID))
		return id
	}
	for _, row := range roleRows {
		id.Roles = append(id.Roles, row.Role)
	}

	profile, err := s.profileRepo.FindProfileByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Identity resolution: profile lookup failed, degrading to no workspace binding",
				slog.String("error", err.Error()), slog.String("user_id", userID))
		}
		return id
	}
	if profile.DisplayName != "" {
		id.DisplayName = profile.DisplayName
	}
	id.WorkspaceID = profile.WorkspaceID

	// Surface the am label in the role set when the profile carries it and
	// the persisted bdr row backs it up. The stored set never contains am.
	if profile.DisplayRole != nil && *profile.DisplayRole == domain.RoleAM && id.HasRole(domain.RoleBDR) {
		id.Roles = append(id.Roles, domain.RoleAM)
	}

	return id
}

// AssignRole grants a role. "am" collapses to bdr for the role row and is kept
// as the profile display label instead.
func (s *identityService) AssignRole(ctx context.Context, actingUserID, targetUserID string, role domain.Role) error {
	now := time.Now()
	persisted := role.Persisted()

	grant := domain.UserRole{
		UserID:    targetUserID,
		Role:      persisted,
		GrantedAt: now,
		GrantedBy: actingUserID,
	}
	if err := s.roleRepo.GrantRole(ctx, grant); err != nil {
		s.LogError(ctx, err, "Failed to grant role",
			slog.String("target_user_id", targetUserID), slog.String("role", string(persisted)))
		return err
	}

	if role == domain.RoleAM {
		if err := s.setDisplayRole(ctx, targetUserID, actingUserID, domain.RoleAM); err != nil {
			s.LogError(ctx, err, "Failed to record am display label", slog.String("target_user_id", targetUserID))
			return err
		}
	}

	s.LogInfo(ctx, "Role granted",
		slog.String("target_user_id", targetUserID),
		slog.String("requested_role", string(role)),
		slog.String("persisted_role", string(persisted)),
		slog.String("granted_by", actingUserID))
	return nil
}

// RevokeRole removes a role row. Revoking "am" removes the bdr row and clears
// the display label.
func (s *identityService) RevokeRole(ctx context.Context, actingUserID, targetUserID string, role domain.Role) error {
	persisted := role.Persisted()
	if err := s.roleRepo.RevokeRole(ctx, targetUserID, persisted); err != nil {
		s.LogError(ctx, err, "Failed to revoke role",
			slog.String("target_user_id", targetUserID), slog.String("role", string(persisted)))
		return err
	}
	if role == domain.RoleAM {
		if err := s.setDisplayRole(ctx, targetUserID, actingUserID, ""); err != nil {
			return err
		}
	}
	s.LogInfo(ctx, "Role revoked",
		slog.String("target_user_id", targetUserID),
		slog.String("role", string(persisted)),
		slog.String("revoked_by", actingUserID))
	return nil
}

// BindWorkspace points the profile at a workspace; nil unbinds.
func (s *identityService) BindWorkspace(ctx context.Context, actingUserID, targetUserID string, workspaceID *string) error {
	profile, err := s.ensureProfile(ctx, targetUserID, actingUserID)
	if err != nil {
		return err
	}
	profile.WorkspaceID = workspaceID
	profile.LastUpdatedAt = time.Now()
	profile.LastUpdatedBy = actingUserID
	if err := s.profileRepo.UpdateProfile(ctx, *profile); err != nil {
		s.LogError(ctx, err, "Failed to bind workspace", slog.String("target_user_id", targetUserID))
		return err
	}
	s.LogInfo(ctx, "Workspace binding updated", slog.String("target_user_id", targetUserID))
	return nil
}

// GetProfile returns the profile row for a user.
func (s *identityService) GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	profile, err := s.profileRepo.FindProfileByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get profile", slog.String("user_id", userID))
		}
		return nil, err
	}
	return profile, nil
}

func (s *identityService) setDisplayRole(ctx context.Context, targetUserID, actingUserID string, label domain.Role) error {
	profile, err := s.ensureProfile(ctx, targetUserID, actingUserID)
	if err != nil {
		return err
	}
	if label == "" {
		profile.DisplayRole = nil
	} else {
		profile.DisplayRole = &label
	}
	profile.LastUpdatedAt = time.Now()
	profile.LastUpdatedBy = actingUserID
	return s.profileRepo.UpdateProfile(ctx, *profile)
}

func (s *identityService) ensureProfile(ctx context.Context, userID, actingUserID string) (*domain.UserProfile, error) {
	profile, err := s.profileRepo.FindProfileByUserID(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	fresh := domain.UserProfile{
		UserID: userID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actingUserID,
		},
	}
	if user, uerr := s.userRepo.FindUserByID(ctx, userID); uerr == nil && user != nil {
		fresh.DisplayName = user.Name
	}
	if err := s.profileRepo.SaveProfile(ctx, fresh); err != nil {
		return nil, err
	}
	return &fresh, nil
}
