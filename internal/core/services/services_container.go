package services

import (
	portsrepo "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/repositories"
	portssvc "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/services"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Notification first since campaign, meeting and onboarding publish to it.
	container.Notification = NewNotificationService(repos.NotificationRepo)

	container.User = NewUserService(repos.UserRepo)
	container.Identity = NewIdentityService(repos.UserRepo, repos.RoleRepo, repos.ProfileRepo)
	container.Workspace = NewWorkspaceService(repos.WorkspaceRepo)
	container.Campaign = NewCampaignService(repos.CampaignRepo, container.Notification)
	container.Contact = NewContactService(repos.ContactRepo, repos.CampaignRepo)
	container.CallLog = NewCallLogService(repos.CallLogRepo, repos.ContactRepo)
	container.Meeting = NewMeetingService(repos.MeetingRepo, repos.ContactRepo, container.Notification)
	container.Onboarding = NewOnboardingService(repos.OnboardingRepo, container.Notification)
	container.Invite = NewInviteService(
		repos.InviteRepo,
		repos.UserRepo,
		repos.RoleRepo,
		repos.ProfileRepo,
		repos.WorkspaceRepo,
		cfg.InviteExpiryDuration,
	)
	container.IntegrationToken = NewIntegrationTokenService(repos.IntegrationTokenRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.WorkspaceRepo)

	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthHandlerService(cfg)

	return container
}
