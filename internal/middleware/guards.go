package middleware

import (
	"log/slog"
	"net/http"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/access"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
	portssvc "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/services"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/utils"
	"github.com/gin-gonic/gin"
)

// IdentityMiddleware resolves the access snapshot for the request and stores
// it in the context. It must run after an auth middleware; an absent user id
// yields the anonymous identity (the landing route relies on that).
func IdentityMiddleware(resolver portssvc.IdentityResolverSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			SetIdentity(c, domain.AnonymousIdentity())
			c.Next()
			return
		}
		SetIdentity(c, resolver.Resolve(c.Request.Context(), userID))
		c.Next()
	}
}

// AdminGuard gates internal-only routes on the admin gate decision.
func AdminGuard(analytics *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := GetIdentityFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		applyDecision(c, access.AdminGate(id), id, analytics, "admin_guard")
	}
}

// WorkspaceGuard gates a specific workspace's routes, keyed by the
// workspace_id route parameter.
func WorkspaceGuard(analytics *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := GetIdentityFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		workspaceID := c.Param("workspace_id")
		if workspaceID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "workspace_id missing from route"})
			return
		}
		applyDecision(c, access.WorkspaceGate(id, workspaceID), id, analytics, "workspace_guard")
	}
}

// applyDecision maps a gate decision onto the HTTP response. Redirects are
// silent steering, not errors: 303 with the user's own destination. Denials
// are terminal 403s with the static message.
func applyDecision(c *gin.Context, d access.Decision, id domain.Identity, analytics *utils.PosthogClientWrapper, guard string) {
	logger := GetLoggerFromCtx(c.Request.Context())
	switch d.Effect {
	case access.EffectAllow:
		c.Next()
	case access.EffectRedirect:
		logger.Info("Guard redirecting request",
			slog.String("guard", guard),
			slog.String("target", d.Target))
		PosthogEvent(c, analytics, guard+"_redirect", map[string]any{"target": d.Target})
		c.Redirect(http.StatusSeeOther, d.Target)
		c.Abort()
	case access.EffectDeny:
		logger.Warn("Guard denied request", slog.String("guard", guard))
		PosthogEvent(c, analytics, guard+"_deny", map[string]any{"reason": d.Reason})
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": d.Reason})
	case access.EffectPending:
		// Resolution is synchronous per request, so a pending decision means
		// the resolver was bypassed. Fail closed.
		logger.Error("Guard evaluated a loading identity", slog.String("guard", guard))
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Identity is still resolving"})
	}
}
