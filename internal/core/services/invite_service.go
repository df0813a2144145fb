package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/apperrors"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
	portsrepo "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/repositories"
	portssvc "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/services"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/utils"
	"github.com/google/uuid"
)

const inviteTokenBytes = 32

// inviteService implements the InviteSvcFacade.
type inviteService struct {
	BaseService
	inviteRepo    portsrepo.InviteRepositoryFacade
	userRepo      portsrepo.UserRepositoryFacade
	roleRepo      portsrepo.RoleRepositoryFacade
	profileRepo   portsrepo.ProfileRepositoryFacade
	workspaceRepo portsrepo.WorkspaceRepositoryFacade
	inviteExpiry  time.Duration
}

// NewInviteService creates a new invite service.
func NewInviteService(
	inviteRepo portsrepo.InviteRepositoryFacade,
	userRepo portsrepo.UserRepositoryFacade,
	roleRepo portsrepo.RoleRepositoryFacade,
	profileRepo portsrepo.ProfileRepositoryFacade,
	workspaceRepo portsrepo.WorkspaceRepositoryFacade,
	inviteExpiry time.Duration,
) portssvc.InviteSvcFacade {
	return &inviteService{
		inviteRepo:    inviteRepo,
		userRepo:      userRepo,
		roleRepo:      roleRepo,
		profileRepo:   profileRepo,
		workspaceRepo: workspaceRepo,
		inviteExpiry:  inviteExpiry,
	}
}

var _ portssvc.InviteSvcFacade = (*inviteService)(nil)

// CreateInvite issues a pending invite and returns the raw token exactly once.
func (s *inviteService) CreateInvite(ctx context.Context, actingUserID, email string, role domain.Role, workspaceID *string) (*portssvc.CreatedInvite, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, apperrors.NewValidationFailedError("email is required")
	}
	if _, ok := domain.ParseRole(string(role)); !ok {
		return nil, apperrors.NewValidationFailedError("unknown role")
	}
	if role == domain.RoleClient {
		if workspaceID == nil || *workspaceID == "" {
			return nil, apperrors.NewValidationFailedError("client invites require a workspace")
		}
		if _, err := s.workspaceRepo.FindWorkspaceByID(ctx, *workspaceID); err != nil {
			return nil, err
		}
	}

	if existing, err := s.userRepo.FindUserByEmail(ctx, email); err == nil && existing != nil {
		return nil, apperrors.NewConflictError("an account with this email already exists")
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	rawToken, err := utils.GenerateSecureRandomString(inviteTokenBytes)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate invite token")
		return nil, err
	}

	now := time.Now()
	invite := domain.Invite{
		InviteID:      uuid.NewString(),
		Email:         email,
		RequestedRole: role,
		WorkspaceID:   workspaceID,
		TokenHash:     utils.HashToken(rawToken),
		Status:        domain.InvitePending,
		ExpiresAt:     now.Add(s.inviteExpiry),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actingUserID,
		},
	}
	if err := s.inviteRepo.SaveInvite(ctx, invite); err != nil {
		s.LogError(ctx, err, "Failed to save invite", slog.String("email", email))
		return nil, err
	}

	s.LogInfo(ctx, "Invite created",
		slog.String("invite_id", invite.InviteID),
		slog.String("requested_role", string(role)))
	return &portssvc.CreatedInvite{Invite: invite, RawToken: rawToken}, nil
}

// ListPendingInvites returns every invite still awaiting acceptance.
func (s *inviteService) ListPendingInvites(ctx context.Context) ([]domain.Invite, error) {
	invites, err := s.inviteRepo.ListPendingInvites(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list pending invites")
		return nil, err
	}
	if invites == nil {
		return []domain.Invite{}, nil
	}
	return invites, nil
}

// RevokeInvite cancels a pending invite.
func (s *inviteService) RevokeInvite(ctx context.Context, actingUserID, inviteID string) error {
	invite, err := s.inviteRepo.FindInviteByID(ctx, inviteID)
	if err != nil {
		return err
	}
	if invite.Status != domain.InvitePending {
		return apperrors.NewValidationFailedError("only pending invites can be revoked")
	}
	invite.Status = domain.InviteRevoked
	invite.LastUpdatedAt = time.Now()
	invite.LastUpdatedBy = actingUserID
	if err := s.inviteRepo.UpdateInvite(ctx, *invite); err != nil {
		s.LogError(ctx, err, "Failed to revoke invite", slog.String("invite_id", inviteID))
		return err
	}
	return nil
}

// AcceptInvite redeems a raw token: creates the account, writes the persisted
// role row and the profile (display label and workspace binding), and marks
// the invite accepted. The requested "am" label is kept on the profile while
// the role row stores the collapsed "bdr".
func (s *inviteService) AcceptInvite(ctx context.Context, rawToken, name, password string) (*domain.User, error) {
	if rawToken == "" {
		return nil, apperrors.NewValidationFailedError("invite token is required")
	}
	if name == "" {
		return nil, apperrors.NewValidationFailedError("name is required")
	}
	if len(password) < 8 {
		return nil, apperrors.NewValidationFailedError("password must be at least 8 characters")
	}

	invite, err := s.inviteRepo.FindInviteByTokenHash(ctx, utils.HashToken(rawToken))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewAppError(401, "invalid invite token", apperrors.ErrUnauthorized)
		}
		return nil, err
	}
	if invite.Status != domain.InvitePending {
		return nil, apperrors.NewValidationFailedError("invite is no longer valid")
	}
	now := time.Now()
	if now.After(invite.ExpiresAt) {
		invite.Status = domain.InviteExpired
		invite.LastUpdatedAt = now
		if uerr := s.inviteRepo.UpdateInvite(ctx, *invite); uerr != nil {
			s.LogError(ctx, uerr, "Failed to expire invite", slog.String("invite_id", invite.InviteID))
		}
		return nil, apperrors.NewValidationFailedError("invite has expired")
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, err
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        invite.Email,
		Name:         name,
		PasswordHash: passwordHash,
		AuthProvider: "local",
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     invite.CreatedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: invite.CreatedBy,
		},
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to create invited user", slog.String("invite_id", invite.InviteID))
		return nil, err
	}

	grant := domain.UserRole{
		UserID:    user.UserID,
		Role:      invite.RequestedRole.Persisted(),
		GrantedAt: now,
		GrantedBy: invite.CreatedBy,
	}
	if err := s.roleRepo.GrantRole(ctx, grant); err != nil {
		s.LogError(ctx, err, "Failed to grant invited role", slog.String("user_id", user.UserID))
		return nil, err
	}

	profile := domain.UserProfile{
		UserID:      user.UserID,
		DisplayName: name,
		WorkspaceID: invite.WorkspaceID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     invite.CreatedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: invite.CreatedBy,
		},
	}
	if invite.RequestedRole == domain.RoleAM {
		label := domain.RoleAM
		profile.DisplayRole = &label
	}
	if err := s.profileRepo.SaveProfile(ctx, profile); err != nil {
		s.LogError(ctx, err, "Failed to create invited profile", slog.String("user_id", user.UserID))
		return nil, err
	}

	invite.Status = domain.InviteAccepted
	invite.AcceptedBy = &user.UserID
	invite.LastUpdatedAt = now
	invite.LastUpdatedBy = user.UserID
	if err := s.inviteRepo.UpdateInvite(ctx, *invite); err != nil {
		s.LogError(ctx, err, "Failed to mark invite accepted", slog.String("invite_id", invite.InviteID))
		return nil, err
	}

	s.LogInfo(ctx, "Invite accepted",
		slog.String("invite_id", invite.InviteID),
		slog.String("user_id", user.UserID))
	return &user, nil
}
