package services

// ServiceContainer holds instances of all the application services. It is the
// main entry point for handler wiring.
type ServiceContainer struct {
	User             UserSvcFacade
	Identity         IdentitySvcFacade
	Token            TokenSvcFacade
	GoogleOAuth      GoogleOAuthHandlerSvcFacade
	Workspace        WorkspaceSvcFacade
	Campaign         CampaignSvcFacade
	Contact          ContactSvcFacade
	CallLog          CallLogSvcFacade
	Meeting          MeetingSvcFacade
	Notification     NotificationSvcFacade
	Onboarding       OnboardingSvcFacade
	Invite           InviteSvcFacade
	IntegrationToken IntegrationTokenSvcFacade
	Reporting        ReportingSvcFacade
}
