package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/apperrors"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
	portssvc "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/services"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/services"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock InviteRepository ---
type MockInviteRepository struct {
	mock.Mock
}

func (m *MockInviteRepository) FindInviteByID(ctx context.Context, inviteID string) (*domain.Invite, error) {
	args := m.Called(ctx, inviteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invite), args.Error(1)
}

func (m *MockInviteRepository) FindInviteByTokenHash(ctx context.Context, tokenHash string) (*domain.Invite, error) {
	args := m.Called(ctx, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invite), args.Error(1)
}

func (m *MockInviteRepository) ListPendingInvites(ctx context.Context) ([]domain.Invite, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invite), args.Error(1)
}

func (m *MockInviteRepository) SaveInvite(ctx context.Context, invite domain.Invite) error {
	args := m.Called(ctx, invite)
	return args.Error(0)
}

func (m *MockInviteRepository) UpdateInvite(ctx context.Context, invite domain.Invite) error {
	args := m.Called(ctx, invite)
	return args.Error(0)
}

// --- Mock UserRepository (reader + writer) ---
type MockUserRepository struct {
	MockUserReader
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deleterUserID string) error {
	args := m.Called(ctx, userID, deletedAt, deleterUserID)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Mock WorkspaceRepository ---
type MockWorkspaceRepository struct {
	mock.Mock
}

func (m *MockWorkspaceRepository) FindWorkspaceByID(ctx context.Context, workspaceID string) (*domain.Workspace, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workspace), args.Error(1)
}

func (m *MockWorkspaceRepository) ListWorkspaces(ctx context.Context, limit, offset int) ([]domain.Workspace, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Workspace), args.Error(1)
}

func (m *MockWorkspaceRepository) SaveWorkspace(ctx context.Context, workspace domain.Workspace) error {
	args := m.Called(ctx, workspace)
	return args.Error(0)
}

func (m *MockWorkspaceRepository) UpdateWorkspace(ctx context.Context, workspace domain.Workspace) error {
	args := m.Called(ctx, workspace)
	return args.Error(0)
}

// --- Test Suite ---
type InviteServiceTestSuite struct {
	suite.Suite
	mockInvites    *MockInviteRepository
	mockUsers      *MockUserRepository
	mockRoles      *MockRoleRepository
	mockProfiles   *MockProfileRepository
	mockWorkspaces *MockWorkspaceRepository
	service        portssvc.InviteSvcFacade
}

func (s *InviteServiceTestSuite) SetupTest() {
	s.mockInvites = new(MockInviteRepository)
	s.mockUsers = new(MockUserRepository)
	s.mockRoles = new(MockRoleRepository)
	s.mockProfiles = new(MockProfileRepository)
	s.mockWorkspaces = new(MockWorkspaceRepository)
	s.service = services.NewInviteService(
		s.mockInvites,
		s.mockUsers,
		s.mockRoles,
		s.mockProfiles,
		s.mockWorkspaces,
		7*24*time.Hour,
	)
}

// --- CreateInvite ---

func (s *InviteServiceTestSuite) TestCreateInvite_BDRSuccess() {
	ctx := context.Background()
	actingUserID := uuid.NewString()

	s.mockUsers.On("FindUserByEmail", ctx, "rep@agency.test").Return(nil, apperrors.ErrNotFound).Once()
	s.mockInvites.On("SaveInvite", ctx, mock.MatchedBy(func(inv domain.Invite) bool {
		return inv.Email == "rep@agency.test" &&
			inv.RequestedRole == domain.RoleBDR &&
			inv.Status == domain.InvitePending &&
			inv.TokenHash != "" &&
			inv.WorkspaceID == nil
	})).Return(nil).Once()

	created, err := s.service.CreateInvite(ctx, actingUserID, "Rep@Agency.Test", domain.RoleBDR, nil)

	s.Require().NoError(err)
	s.Require().NotNil(created)
	s.NotEmpty(created.RawToken)
	s.Equal(utils.HashToken(created.RawToken), created.Invite.TokenHash)
	s.mockInvites.AssertExpectations(s.T())
}

func (s *InviteServiceTestSuite) TestCreateInvite_AMKeepsRequestedRole() {
	ctx := context.Background()
	actingUserID := uuid.NewString()

	s.mockUsers.On("FindUserByEmail", ctx, "am@agency.test").Return(nil, apperrors.ErrNotFound).Once()
	s.mockInvites.On("SaveInvite", ctx, mock.MatchedBy(func(inv domain.Invite) bool {
		// The requested role stays "am" on the invite; collapse happens at
		// acceptance when the role row is written.
		return inv.RequestedRole == domain.RoleAM
	})).Return(nil).Once()

	created, err := s.service.CreateInvite(ctx, actingUserID, "am@agency.test", domain.RoleAM, nil)

	s.Require().NoError(err)
	s.Equal(domain.RoleAM, created.Invite.RequestedRole)
}

func (s *InviteServiceTestSuite) TestCreateInvite_ClientRequiresWorkspace() {
	ctx := context.Background()

	created, err := s.service.CreateInvite(ctx, uuid.NewString(), "client@acme.test", domain.RoleClient, nil)

	s.Require().Error(err)
	s.Nil(created)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockInvites.AssertNotCalled(s.T(), "SaveInvite", mock.Anything, mock.Anything)
}

func (s *InviteServiceTestSuite) TestCreateInvite_ClientWorkspaceMustExist() {
	ctx := context.Background()
	wsID := "ws-missing"

	s.mockWorkspaces.On("FindWorkspaceByID", ctx, wsID).Return(nil, apperrors.ErrNotFound).Once()

	created, err := s.service.CreateInvite(ctx, uuid.NewString(), "client@acme.test", domain.RoleClient, &wsID)

	s.Require().Error(err)
	s.Nil(created)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *InviteServiceTestSuite) TestCreateInvite_ExistingEmailConflicts() {
	ctx := context.Background()

	s.mockUsers.On("FindUserByEmail", ctx, "taken@agency.test").Return(&domain.User{UserID: uuid.NewString()}, nil).Once()

	created, err := s.service.CreateInvite(ctx, uuid.NewString(), "taken@agency.test", domain.RoleBDR, nil)

	s.Require().Error(err)
	s.Nil(created)
	s.ErrorIs(err, apperrors.ErrDuplicate)
}

// --- AcceptInvite ---

func (s *InviteServiceTestSuite) pendingInvite(role domain.Role, workspaceID *string, rawToken string) *domain.Invite {
	return &domain.Invite{
		InviteID:      uuid.NewString(),
		Email:         "new@agency.test",
		RequestedRole: role,
		WorkspaceID:   workspaceID,
		TokenHash:     utils.HashToken(rawToken),
		Status:        domain.InvitePending,
		ExpiresAt:     time.Now().Add(time.Hour),
		AuditFields:   domain.AuditFields{CreatedBy: uuid.NewString()},
	}
}

func (s *InviteServiceTestSuite) TestAcceptInvite_AMCollapsesToBDRWithLabel() {
	ctx := context.Background()
	rawToken := "raw-invite-token"
	invite := s.pendingInvite(domain.RoleAM, nil, rawToken)

	s.mockInvites.On("FindInviteByTokenHash", ctx, invite.TokenHash).Return(invite, nil).Once()
	s.mockUsers.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == invite.Email && u.AuthProvider == "local" && u.PasswordHash != ""
	})).Return(nil).Once()
	s.mockRoles.On("GrantRole", ctx, mock.MatchedBy(func(g domain.UserRole) bool {
		return g.Role == domain.RoleBDR
	})).Return(nil).Once()
	s.mockProfiles.On("SaveProfile", ctx, mock.MatchedBy(func(p domain.UserProfile) bool {
		return p.DisplayRole != nil && *p.DisplayRole == domain.RoleAM && p.WorkspaceID == nil
	})).Return(nil).Once()
	s.mockInvites.On("UpdateInvite", ctx, mock.MatchedBy(func(inv domain.Invite) bool {
		return inv.Status == domain.InviteAccepted && inv.AcceptedBy != nil
	})).Return(nil).Once()

	user, err := s.service.AcceptInvite(ctx, rawToken, "New AM", "strongpassword")

	s.Require().NoError(err)
	s.Require().NotNil(user)
	s.Equal(invite.Email, user.Email)
	s.mockRoles.AssertExpectations(s.T())
	s.mockProfiles.AssertExpectations(s.T())
	s.mockInvites.AssertExpectations(s.T())
}

func (s *InviteServiceTestSuite) TestAcceptInvite_ClientCarriesWorkspaceBinding() {
	ctx := context.Background()
	rawToken := "client-invite-token"
	wsID := "ws-42"
	invite := s.pendingInvite(domain.RoleClient, &wsID, rawToken)

	s.mockInvites.On("FindInviteByTokenHash", ctx, invite.TokenHash).Return(invite, nil).Once()
	s.mockUsers.On("SaveUser", ctx, mock.Anything).Return(nil).Once()
	s.mockRoles.On("GrantRole", ctx, mock.MatchedBy(func(g domain.UserRole) bool {
		return g.Role == domain.RoleClient
	})).Return(nil).Once()
	s.mockProfiles.On("SaveProfile", ctx, mock.MatchedBy(func(p domain.UserProfile) bool {
		return p.WorkspaceID != nil && *p.WorkspaceID == wsID && p.DisplayRole == nil
	})).Return(nil).Once()
	s.mockInvites.On("UpdateInvite", ctx, mock.Anything).Return(nil).Once()

	user, err := s.service.AcceptInvite(ctx, rawToken, "Client User", "strongpassword")

	s.Require().NoError(err)
	s.Require().NotNil(user)
	s.mockProfiles.AssertExpectations(s.T())
}

func (s *InviteServiceTestSuite) TestAcceptInvite_UnknownTokenIsUnauthorized() {
	ctx := context.Background()

	s.mockInvites.On("FindInviteByTokenHash", ctx, mock.Anything).Return(nil, apperrors.ErrNotFound).Once()

	user, err := s.service.AcceptInvite(ctx, "bogus", "Someone", "strongpassword")

	s.Require().Error(err)
	s.Nil(user)
	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *InviteServiceTestSuite) TestAcceptInvite_ExpiredInviteRejectedAndMarked() {
	ctx := context.Background()
	rawToken := "stale-token"
	invite := s.pendingInvite(domain.RoleBDR, nil, rawToken)
	invite.ExpiresAt = time.Now().Add(-time.Minute)

	s.mockInvites.On("FindInviteByTokenHash", ctx, invite.TokenHash).Return(invite, nil).Once()
	s.mockInvites.On("UpdateInvite", ctx, mock.MatchedBy(func(inv domain.Invite) bool {
		return inv.Status == domain.InviteExpired
	})).Return(nil).Once()

	user, err := s.service.AcceptInvite(ctx, rawToken, "Late Arrival", "strongpassword")

	s.Require().Error(err)
	s.Nil(user)
	s.mockUsers.AssertNotCalled(s.T(), "SaveUser", mock.Anything, mock.Anything)
	s.mockInvites.AssertExpectations(s.T())
}

func (s *InviteServiceTestSuite) TestAcceptInvite_RevokedInviteRejected() {
	ctx := context.Background()
	rawToken := "revoked-token"
	invite := s.pendingInvite(domain.RoleBDR, nil, rawToken)
	invite.Status = domain.InviteRevoked

	s.mockInvites.On("FindInviteByTokenHash", ctx, invite.TokenHash).Return(invite, nil).Once()

	user, err := s.service.AcceptInvite(ctx, rawToken, "Someone", "strongpassword")

	s.Require().Error(err)
	s.Nil(user)
	s.ErrorIs(err, apperrors.ErrValidation)
}

// --- RevokeInvite ---

func (s *InviteServiceTestSuite) TestRevokeInvite_OnlyPending() {
	ctx := context.Background()
	inviteID := uuid.NewString()

	s.mockInvites.On("FindInviteByID", ctx, inviteID).Return(&domain.Invite{
		InviteID: inviteID,
		Status:   domain.InviteAccepted,
	}, nil).Once()

	err := s.service.RevokeInvite(ctx, uuid.NewString(), inviteID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockInvites.AssertNotCalled(s.T(), "UpdateInvite", mock.Anything, mock.Anything)
}

func TestInviteServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InviteServiceTestSuite))
}
