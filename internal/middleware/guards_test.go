package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/middleware"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// stubResolver returns a fixed identity for every user id.
type stubResolver struct {
	identity domain.Identity
}

func (s *stubResolver) Resolve(_ context.Context, _ string) domain.Identity {
	return s.identity
}

func strPtr(s string) *string { return &s }

// noAnalytics is an uninitialized analytics wrapper; events become no-ops.
var noAnalytics = &utils.PosthogClientWrapper{}

// serveAdmin wires a protected /admin/ping route for the given identity and
// returns the recorded response. The fake auth middleware stands in for the
// JWT layer.
func serveAdmin(t *testing.T, id domain.Identity, authenticated bool) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	group := r.Group("/admin",
		fakeAuth(authenticated),
		middleware.IdentityMiddleware(&stubResolver{identity: id}),
		middleware.AdminGuard(noAnalytics),
	)
	group.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	r.ServeHTTP(w, req)
	return w
}

// serveWorkspace does the same for a workspace-scoped route.
func serveWorkspace(t *testing.T, id domain.Identity, path string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	group := r.Group("/workspaces/:workspace_id",
		fakeAuth(true),
		middleware.IdentityMiddleware(&stubResolver{identity: id}),
		middleware.WorkspaceGuard(noAnalytics),
	)
	group.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

// fakeAuth simulates the JWT middleware having (or not having) set a user id.
func fakeAuth(authenticated bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authenticated {
			c.Set("userID", "user-1")
		}
		c.Next()
	}
}

func internalIdentity() domain.Identity {
	return domain.Identity{
		Authenticated: true,
		UserID:        "user-1",
		Roles:         []domain.Role{domain.RoleAdmin},
	}
}

func clientIdentity(workspaceID *string) domain.Identity {
	return domain.Identity{
		Authenticated: true,
		UserID:        "user-1",
		Roles:         []domain.Role{domain.RoleClient},
		WorkspaceID:   workspaceID,
	}
}

func TestAdminGuard_InternalAllowed(t *testing.T) {
	w := serveAdmin(t, internalIdentity(), true)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestAdminGuard_ClientRedirectedToOwnWorkspace(t *testing.T) {
	w := serveAdmin(t, clientIdentity(strPtr("ws-42")), true)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/workspace/ws-42/dashboard", w.Header().Get("Location"))
}

func TestAdminGuard_ClientWithoutWorkspaceDenied(t *testing.T) {
	w := serveAdmin(t, clientIdentity(nil), true)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "do not have access")
}

func TestAdminGuard_AnonymousDenied(t *testing.T) {
	// No auth middleware set a user id, so the resolver is bypassed and the
	// anonymous identity holds no roles.
	w := serveAdmin(t, domain.Identity{}, false)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminGuard_LoadingIdentityFailsClosed(t *testing.T) {
	w := serveAdmin(t, domain.Identity{Loading: true}, true)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestWorkspaceGuard_InternalSeesAnyWorkspace(t *testing.T) {
	w := serveWorkspace(t, internalIdentity(), "/workspaces/ws-99/ping")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWorkspaceGuard_ClientOwnWorkspaceAllowed(t *testing.T) {
	w := serveWorkspace(t, clientIdentity(strPtr("ws-42")), "/workspaces/ws-42/ping")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWorkspaceGuard_ClientOtherWorkspaceRedirectedHome(t *testing.T) {
	w := serveWorkspace(t, clientIdentity(strPtr("ws-42")), "/workspaces/ws-99/ping")

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/workspace/ws-42/dashboard", w.Header().Get("Location"))
}

func TestWorkspaceGuard_OwnershipIsStrictEquality(t *testing.T) {
	// A prefix of the bound workspace id is a different tenant.
	w := serveWorkspace(t, clientIdentity(strPtr("ws-4")), "/workspaces/ws-42/ping")

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/workspace/ws-4/dashboard", w.Header().Get("Location"))
}

func TestWorkspaceGuard_ClientWithoutWorkspaceDenied(t *testing.T) {
	w := serveWorkspace(t, clientIdentity(nil), "/workspaces/ws-42/ping")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "No workspace")
}

func TestIdentityMiddleware_AnonymousWhenNoUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/me",
		middleware.IdentityMiddleware(&stubResolver{identity: internalIdentity()}),
		func(c *gin.Context) {
			id, ok := middleware.GetIdentityFromContext(c)
			assert.True(t, ok)
			assert.False(t, id.Authenticated)
			assert.Empty(t, id.Roles)
			c.Status(http.StatusOK)
		},
	)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
