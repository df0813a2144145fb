package repositories

// RepositoryProvider bundles every repository implementation for injection
// into the service container.
type RepositoryProvider struct {
	UserRepo             UserRepositoryFacade
	RoleRepo             RoleRepositoryFacade
	ProfileRepo          ProfileRepositoryFacade
	WorkspaceRepo        WorkspaceRepositoryFacade
	CampaignRepo         CampaignRepositoryFacade
	ContactRepo          ContactRepositoryFacade
	CallLogRepo          CallLogRepositoryFacade
	MeetingRepo          MeetingRepositoryFacade
	NotificationRepo     NotificationRepositoryFacade
	OnboardingRepo       OnboardingRepositoryFacade
	InviteRepo           InviteRepositoryFacade
	IntegrationTokenRepo IntegrationTokenRepositoryFacade
	ReportingRepo        ReportingRepositoryFacade
}
