package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/apperrors"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
	portssvc "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/services"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserReader ---
type MockUserReader struct {
	mock.Mock
}

func (m *MockUserReader) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserReader) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserReader) FindUserByProviderDetails(ctx context.Context, authProvider string, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, authProvider, providerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserReader) FindUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// --- Mock RoleRepository ---
type MockRoleRepository struct {
	mock.Mock
}

func (m *MockRoleRepository) FindRolesByUserID(ctx context.Context, userID string) ([]domain.UserRole, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserRole), args.Error(1)
}

func (m *MockRoleRepository) GrantRole(ctx context.Context, grant domain.UserRole) error {
	args := m.Called(ctx, grant)
	return args.Error(0)
}

func (m *MockRoleRepository) RevokeRole(ctx context.Context, userID string, role domain.Role) error {
	args := m.Called(ctx, userID, role)
	return args.Error(0)
}

// --- Mock ProfileRepository ---
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindProfileByUserID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockProfileRepository) SaveProfile(ctx context.Context, profile domain.UserProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) UpdateProfile(ctx context.Context, profile domain.UserProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

// --- Test Suite ---
type IdentityServiceTestSuite struct {
	suite.Suite
	mockUsers    *MockUserReader
	mockRoles    *MockRoleRepository
	mockProfiles *MockProfileRepository
	service      portssvc.IdentitySvcFacade
}

func (s *IdentityServiceTestSuite) SetupTest() {
	s.mockUsers = new(MockUserReader)
	s.mockRoles = new(MockRoleRepository)
	s.mockProfiles = new(MockProfileRepository)
	s.service = services.NewIdentityService(s.mockUsers, s.mockRoles, s.mockProfiles)
}

func (s *IdentityServiceTestSuite) user(userID string) *domain.User {
	return &domain.User{
		UserID: userID,
		Email:  "user@example.com",
		Name:   "Test User",
	}
}

func roleRows(userID string, roles ...domain.Role) []domain.UserRole {
	rows := make([]domain.UserRole, 0, len(roles))
	for _, r := range roles {
		rows = append(rows, domain.UserRole{UserID: userID, Role: r, GrantedAt: time.Now()})
	}
	return rows
}

// --- Resolve ---

func (s *IdentityServiceTestSuite) TestResolve_ClientWithWorkspace() {
	ctx := context.Background()
	userID := uuid.NewString()
	wsID := "ws-42"

	s.mockUsers.On("FindUserByID", ctx, userID).Return(s.user(userID), nil).Once()
	s.mockRoles.On("FindRolesByUserID", ctx, userID).Return(roleRows(userID, domain.RoleClient), nil).Once()
	s.mockProfiles.On("FindProfileByUserID", ctx, userID).Return(&domain.UserProfile{
		UserID:      userID,
		DisplayName: "Client User",
		WorkspaceID: &wsID,
	}, nil).Once()

	id := s.service.Resolve(ctx, userID)

	s.True(id.Authenticated)
	s.False(id.Loading)
	s.Equal([]domain.Role{domain.RoleClient}, id.Roles)
	s.False(id.IsInternal())
	s.Require().NotNil(id.WorkspaceID)
	s.Equal(wsID, *id.WorkspaceID)
	s.Equal("Client User", id.DisplayName)

	s.mockUsers.AssertExpectations(s.T())
	s.mockRoles.AssertExpectations(s.T())
	s.mockProfiles.AssertExpectations(s.T())
}

func (s *IdentityServiceTestSuite) TestResolve_RoleLookupFailureDegradesToEmptyRoles() {
	ctx := context.Background()
	userID := uuid.NewString()

	s.mockUsers.On("FindUserByID", ctx, userID).Return(s.user(userID), nil).Once()
	s.mockRoles.On("FindRolesByUserID", ctx, userID).Return(nil, errors.New("connection reset")).Once()

	id := s.service.Resolve(ctx, userID)

	s.True(id.Authenticated)
	s.Empty(id.Roles)
	s.Nil(id.WorkspaceID)
	s.mockProfiles.AssertNotCalled(s.T(), "FindProfileByUserID", mock.Anything, mock.Anything)
}

func (s *IdentityServiceTestSuite) TestResolve_UserLookupFailureDegradesToEmptyIdentity() {
	ctx := context.Background()
	userID := uuid.NewString()

	s.mockUsers.On("FindUserByID", ctx, userID).Return(nil, errors.New("timeout")).Once()

	id := s.service.Resolve(ctx, userID)

	s.True(id.Authenticated)
	s.Equal(userID, id.UserID)
	s.Empty(id.Roles)
	s.Empty(id.Email)
}

func (s *IdentityServiceTestSuite) TestResolve_DeletedUserGetsEmptyIdentity() {
	ctx := context.Background()
	userID := uuid.NewString()
	deleted := s.user(userID)
	now := time.Now()
	deleted.DeletedAt = &now

	s.mockUsers.On("FindUserByID", ctx, userID).Return(deleted, nil).Once()

	id := s.service.Resolve(ctx, userID)

	s.Empty(id.Roles)
	s.mockRoles.AssertNotCalled(s.T(), "FindRolesByUserID", mock.Anything, mock.Anything)
}

func (s *IdentityServiceTestSuite) TestResolve_MissingProfileStillReturnsRoles() {
	ctx := context.Background()
	userID := uuid.NewString()

	s.mockUsers.On("FindUserByID", ctx, userID).Return(s.user(userID), nil).Once()
	s.mockRoles.On("FindRolesByUserID", ctx, userID).Return(roleRows(userID, domain.RoleAdmin), nil).Once()
	s.mockProfiles.On("FindProfileByUserID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	id := s.service.Resolve(ctx, userID)

	s.Equal([]domain.Role{domain.RoleAdmin}, id.Roles)
	s.True(id.IsInternal())
	s.Nil(id.WorkspaceID)
}

func (s *IdentityServiceTestSuite) TestResolve_AMLabelSurfacesOnBDRRow() {
	ctx := context.Background()
	userID := uuid.NewString()
	amLabel := domain.RoleAM

	s.mockUsers.On("FindUserByID", ctx, userID).Return(s.user(userID), nil).Once()
	s.mockRoles.On("FindRolesByUserID", ctx, userID).Return(roleRows(userID, domain.RoleBDR), nil).Once()
	s.mockProfiles.On("FindProfileByUserID", ctx, userID).Return(&domain.UserProfile{
		UserID:      userID,
		DisplayRole: &amLabel,
	}, nil).Once()

	id := s.service.Resolve(ctx, userID)

	s.True(id.HasRole(domain.RoleBDR))
	s.True(id.HasRole(domain.RoleAM))
	s.Equal(domain.RoleAM, id.DisplayRole())
}

func (s *IdentityServiceTestSuite) TestResolve_AMLabelIgnoredWithoutBDRRow() {
	ctx := context.Background()
	userID := uuid.NewString()
	amLabel := domain.RoleAM

	s.mockUsers.On("FindUserByID", ctx, userID).Return(s.user(userID), nil).Once()
	s.mockRoles.On("FindRolesByUserID", ctx, userID).Return(roleRows(userID, domain.RoleClient), nil).Once()
	s.mockProfiles.On("FindProfileByUserID", ctx, userID).Return(&domain.UserProfile{
		UserID:      userID,
		DisplayRole: &amLabel,
	}, nil).Once()

	id := s.service.Resolve(ctx, userID)

	s.False(id.HasRole(domain.RoleAM))
	s.Equal(domain.RoleClient, id.DisplayRole())
}

func (s *IdentityServiceTestSuite) TestResolve_InternalWithWorkspaceBindingKeepsBoth() {
	ctx := context.Background()
	userID := uuid.NewString()
	wsID := "ws-home"

	s.mockUsers.On("FindUserByID", ctx, userID).Return(s.user(userID), nil).Once()
	s.mockRoles.On("FindRolesByUserID", ctx, userID).Return(roleRows(userID, domain.RoleBDR, domain.RoleClient), nil).Once()
	s.mockProfiles.On("FindProfileByUserID", ctx, userID).Return(&domain.UserProfile{
		UserID:      userID,
		WorkspaceID: &wsID,
	}, nil).Once()

	id := s.service.Resolve(ctx, userID)

	s.True(id.IsInternal())
	s.Require().NotNil(id.WorkspaceID)
	s.Equal(wsID, *id.WorkspaceID)
}

// --- AssignRole ---

func (s *IdentityServiceTestSuite) TestAssignRole_AMCollapsesToBDRAndSetsLabel() {
	ctx := context.Background()
	actingUserID := uuid.NewString()
	targetUserID := uuid.NewString()

	s.mockRoles.On("GrantRole", ctx, mock.MatchedBy(func(g domain.UserRole) bool {
		return g.UserID == targetUserID && g.Role == domain.RoleBDR && g.GrantedBy == actingUserID
	})).Return(nil).Once()
	s.mockProfiles.On("FindProfileByUserID", ctx, targetUserID).Return(&domain.UserProfile{UserID: targetUserID}, nil).Once()
	s.mockProfiles.On("UpdateProfile", ctx, mock.MatchedBy(func(p domain.UserProfile) bool {
		return p.UserID == targetUserID && p.DisplayRole != nil && *p.DisplayRole == domain.RoleAM
	})).Return(nil).Once()

	err := s.service.AssignRole(ctx, actingUserID, targetUserID, domain.RoleAM)

	s.Require().NoError(err)
	s.mockRoles.AssertExpectations(s.T())
	s.mockProfiles.AssertExpectations(s.T())
}

func (s *IdentityServiceTestSuite) TestAssignRole_PlainRoleDoesNotTouchProfile() {
	ctx := context.Background()
	actingUserID := uuid.NewString()
	targetUserID := uuid.NewString()

	s.mockRoles.On("GrantRole", ctx, mock.MatchedBy(func(g domain.UserRole) bool {
		return g.Role == domain.RoleClient
	})).Return(nil).Once()

	err := s.service.AssignRole(ctx, actingUserID, targetUserID, domain.RoleClient)

	s.Require().NoError(err)
	s.mockProfiles.AssertNotCalled(s.T(), "UpdateProfile", mock.Anything, mock.Anything)
}

func (s *IdentityServiceTestSuite) TestRevokeRole_AMClearsLabel() {
	ctx := context.Background()
	actingUserID := uuid.NewString()
	targetUserID := uuid.NewString()
	amLabel := domain.RoleAM

	s.mockRoles.On("RevokeRole", ctx, targetUserID, domain.RoleBDR).Return(nil).Once()
	s.mockProfiles.On("FindProfileByUserID", ctx, targetUserID).Return(&domain.UserProfile{
		UserID:      targetUserID,
		DisplayRole: &amLabel,
	}, nil).Once()
	s.mockProfiles.On("UpdateProfile", ctx, mock.MatchedBy(func(p domain.UserProfile) bool {
		return p.DisplayRole == nil
	})).Return(nil).Once()

	err := s.service.RevokeRole(ctx, actingUserID, targetUserID, domain.RoleAM)

	s.Require().NoError(err)
	s.mockProfiles.AssertExpectations(s.T())
}

// --- BindWorkspace ---

func (s *IdentityServiceTestSuite) TestBindWorkspace_CreatesMissingProfile() {
	ctx := context.Background()
	actingUserID := uuid.NewString()
	targetUserID := uuid.NewString()
	wsID := "ws-7"

	s.mockProfiles.On("FindProfileByUserID", ctx, targetUserID).Return(nil, apperrors.ErrNotFound).Once()
	s.mockUsers.On("FindUserByID", ctx, targetUserID).Return(s.user(targetUserID), nil).Once()
	s.mockProfiles.On("SaveProfile", ctx, mock.MatchedBy(func(p domain.UserProfile) bool {
		return p.UserID == targetUserID
	})).Return(nil).Once()
	s.mockProfiles.On("UpdateProfile", ctx, mock.MatchedBy(func(p domain.UserProfile) bool {
		return p.WorkspaceID != nil && *p.WorkspaceID == wsID
	})).Return(nil).Once()

	err := s.service.BindWorkspace(ctx, actingUserID, targetUserID, &wsID)

	s.Require().NoError(err)
	s.mockProfiles.AssertExpectations(s.T())
}

func (s *IdentityServiceTestSuite) TestBindWorkspace_NilUnbinds() {
	ctx := context.Background()
	actingUserID := uuid.NewString()
	targetUserID := uuid.NewString()
	wsID := "ws-old"

	s.mockProfiles.On("FindProfileByUserID", ctx, targetUserID).Return(&domain.UserProfile{
		UserID:      targetUserID,
		WorkspaceID: &wsID,
	}, nil).Once()
	s.mockProfiles.On("UpdateProfile", ctx, mock.MatchedBy(func(p domain.UserProfile) bool {
		return p.WorkspaceID == nil
	})).Return(nil).Once()

	err := s.service.BindWorkspace(ctx, actingUserID, targetUserID, nil)

	s.Require().NoError(err)
	s.mockProfiles.AssertExpectations(s.T())
}

func TestIdentityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(IdentityServiceTestSuite))
}
