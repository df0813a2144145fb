package handlers

import (
	"github.com/1-Hour-Automation/client-hub-sub000/cmd/docs"
	portssvc "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/services"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/middleware"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/platform/config"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	analytics *utils.PosthogClientWrapper,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services)
	registerGoogleOAuthRoutes(r, cfg, services)

	// The landing router must be reachable anonymously: an unauthenticated
	// visitor has to hit it to be told to go to /login.
	landing := r.Group("/api/v1",
		middleware.OptionalAuthMiddleware(cfg.JWTSecret),
		middleware.IdentityMiddleware(services.Identity),
	)
	registerIdentityRoutes(landing, services.Identity)

	// Setup authenticated API v1 routes, passing service interfaces
	setupAPIV1Routes(r, cfg, services, analytics)

	// Swagger routes (conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations.
// Requests authenticate with either an x-api-key integration token (dialer
// tooling) or a bearer JWT; the identity middleware then resolves the access
// snapshot the guards consume.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	analytics *utils.PosthogClientWrapper,
) {
	v1 := r.Group("/api/v1",
		middleware.IntegrationTokenAuth(services.IntegrationToken),
		middleware.AuthMiddleware(cfg.JWTSecret),
		middleware.IdentityMiddleware(services.Identity),
	)

	registerIntegrationTokenRoutes(v1, services.IntegrationToken)

	// Internal-only surface: user/role administration, invites, workspace CRUD.
	admin := v1.Group("/admin", middleware.AdminGuard(analytics))
	registerUserAdminRoutes(admin, services.User, services.Identity)
	registerInviteRoutes(admin, services.Invite)
	registerWorkspaceAdminRoutes(admin, services.Workspace)

	// Workspace-scoped surface: the guard admits internal users to any
	// workspace and clients only to their own.
	ws := v1.Group("/workspaces/:workspace_id", middleware.WorkspaceGuard(analytics))
	registerCampaignRoutes(ws, services.Campaign)
	registerContactRoutes(ws, services.Contact)
	registerCallLogRoutes(ws, services.CallLog)
	registerMeetingRoutes(ws, services.Meeting)
	registerNotificationRoutes(ws, services.Notification)
	registerOnboardingRoutes(ws, services.Onboarding)
	registerReportingRoutes(ws, services.Reporting)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
