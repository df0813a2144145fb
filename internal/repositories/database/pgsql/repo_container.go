package pgsql

import (
	portsrepo "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgsql repository onto the shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:             newPgxUserRepository(dbPool),
		RoleRepo:             newPgxRoleRepository(dbPool),
		ProfileRepo:          newPgxProfileRepository(dbPool),
		WorkspaceRepo:        newPgxWorkspaceRepository(dbPool),
		CampaignRepo:         newPgxCampaignRepository(dbPool),
		ContactRepo:          newPgxContactRepository(dbPool),
		CallLogRepo:          newPgxCallLogRepository(dbPool),
		MeetingRepo:          newPgxMeetingRepository(dbPool),
		NotificationRepo:     newPgxNotificationRepository(dbPool),
		OnboardingRepo:       newPgxOnboardingRepository(dbPool),
		InviteRepo:           newPgxInviteRepository(dbPool),
		IntegrationTokenRepo: newPgxIntegrationTokenRepository(dbPool),
		ReportingRepo:        newPgxReportingRepository(dbPool),
	}
}
