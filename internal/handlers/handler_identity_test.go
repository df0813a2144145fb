package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/dto"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/handlers"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/middleware"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const testJWTSecret = "test-secret"

// --- Mock IdentityService ---
type MockIdentityService struct {
	mock.Mock
}

func (m *MockIdentityService) Resolve(ctx context.Context, userID string) domain.Identity {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.Identity)
}
func (m *MockIdentityService) AssignRole(ctx context.Context, actingUserID, targetUserID string, role domain.Role) error {
	args := m.Called(ctx, actingUserID, targetUserID, role)
	return args.Error(0)
}
func (m *MockIdentityService) RevokeRole(ctx context.Context, actingUserID, targetUserID string, role domain.Role) error {
	args := m.Called(ctx, actingUserID, targetUserID, role)
	return args.Error(0)
}
func (m *MockIdentityService) BindWorkspace(ctx context.Context, actingUserID, targetUserID string, workspaceID *string) error {
	args := m.Called(ctx, actingUserID, targetUserID, workspaceID)
	return args.Error(0)
}
func (m *MockIdentityService) GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

type IdentityHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	identityService *MockIdentityService
}

func (s *IdentityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.identityService = new(MockIdentityService)

	s.router = gin.New()
	group := s.router.Group("/api/v1",
		middleware.OptionalAuthMiddleware(testJWTSecret),
		middleware.IdentityMiddleware(s.identityService),
	)
	h := handlers.NewIdentityHandler(s.identityService)
	group.GET("/me", h.Me)
	group.GET("/landing", h.Landing)
}

func (s *IdentityHandlerTestSuite) get(path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *IdentityHandlerTestSuite) tokenFor(userID string) string {
	token, err := utils.GenerateJWT(userID, testJWTSecret, time.Minute, "test")
	require.NoError(s.T(), err)
	return token
}

func (s *IdentityHandlerTestSuite) landingFor(id domain.Identity) dto.LandingResponse {
	s.identityService.On("Resolve", mock.Anything, id.UserID).Return(id).Once()

	w := s.get("/api/v1/landing", s.tokenFor(id.UserID))
	assert.Equal(s.T(), http.StatusOK, w.Code)

	var resp dto.LandingResponse
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func (s *IdentityHandlerTestSuite) TestLanding_AnonymousGoesToLogin() {
	w := s.get("/api/v1/landing", "")
	assert.Equal(s.T(), http.StatusOK, w.Code)

	var resp dto.LandingResponse
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(s.T(), "/login", resp.Target)
	s.identityService.AssertNotCalled(s.T(), "Resolve", mock.Anything, mock.Anything)
}

func (s *IdentityHandlerTestSuite) TestLanding_GarbageTokenTreatedAsAnonymous() {
	w := s.get("/api/v1/landing", "not-a-jwt")
	assert.Equal(s.T(), http.StatusOK, w.Code)

	var resp dto.LandingResponse
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(s.T(), "/login", resp.Target)
}

func (s *IdentityHandlerTestSuite) TestLanding_InternalUserGoesToInternalDashboard() {
	ws := "ws-1"
	resp := s.landingFor(domain.Identity{
		Authenticated: true,
		UserID:        "admin-1",
		Roles:         []domain.Role{domain.RoleAdmin, domain.RoleClient},
		WorkspaceID:   &ws, // internal status dominates the binding
	})

	assert.Equal(s.T(), "/admin/dashboard", resp.Target)
	assert.Empty(s.T(), resp.Reason)
}

func (s *IdentityHandlerTestSuite) TestLanding_ClientGoesToOwnWorkspace() {
	ws := "ws-42"
	resp := s.landingFor(domain.Identity{
		Authenticated: true,
		UserID:        "client-1",
		Roles:         []domain.Role{domain.RoleClient},
		WorkspaceID:   &ws,
	})

	assert.Equal(s.T(), "/workspace/ws-42/dashboard", resp.Target)
}

func (s *IdentityHandlerTestSuite) TestLanding_ZeroRolesIsTerminal() {
	resp := s.landingFor(domain.Identity{
		Authenticated: true,
		UserID:        "new-1",
		Roles:         []domain.Role{},
	})

	assert.Empty(s.T(), resp.Target)
	assert.Contains(s.T(), resp.Reason, "awaiting role assignment")
}

func (s *IdentityHandlerTestSuite) TestLanding_ClientWithoutWorkspaceIsTerminal() {
	resp := s.landingFor(domain.Identity{
		Authenticated: true,
		UserID:        "client-2",
		Roles:         []domain.Role{domain.RoleClient},
	})

	assert.Empty(s.T(), resp.Target)
	assert.Contains(s.T(), resp.Reason, "No workspace")
}

func (s *IdentityHandlerTestSuite) TestMe_AnonymousSnapshot() {
	w := s.get("/api/v1/me", "")
	assert.Equal(s.T(), http.StatusOK, w.Code)

	var resp dto.IdentityResponse
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(s.T(), resp.Authenticated)
	assert.False(s.T(), resp.IsInternalUser)
	assert.NotNil(s.T(), resp.Roles)
	assert.Empty(s.T(), resp.Roles)
}

func (s *IdentityHandlerTestSuite) TestMe_ResolvedSnapshot() {
	s.identityService.On("Resolve", mock.Anything, "bdr-1").Return(domain.Identity{
		Authenticated: true,
		UserID:        "bdr-1",
		Email:         "bdr@agency.test",
		Roles:         []domain.Role{domain.RoleBDR},
	}).Once()

	w := s.get("/api/v1/me", s.tokenFor("bdr-1"))
	assert.Equal(s.T(), http.StatusOK, w.Code)

	var resp dto.IdentityResponse
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(s.T(), resp.Authenticated)
	assert.True(s.T(), resp.IsInternalUser)
	assert.Equal(s.T(), []domain.Role{domain.RoleBDR}, resp.Roles)
	assert.Equal(s.T(), domain.RoleBDR, resp.DisplayRole)
	assert.Nil(s.T(), resp.WorkspaceID)
}

func TestIdentityHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(IdentityHandlerTestSuite))
}
