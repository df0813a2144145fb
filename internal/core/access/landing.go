package access

import "github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"

// Landing decides the first screen for a session arriving at the application
// root. Evaluation order is significant:
//
//  1. still loading        -> pending
//  2. unauthenticated      -> redirect to login (dominates everything,
//     including any stale role or workspace data on the snapshot)
//  3. zero roles           -> terminal "awaiting role assignment"
//  4. internal             -> internal dashboard (dominates any workspace
//     binding a dual-status account carries)
//  5. client + workspace   -> that workspace's dashboard
//  6. client, no workspace -> terminal "no workspace assigned"
//
// Case 6 used to be a dead branch that rendered an inert placeholder; it is an
// administrative misconfiguration (client role granted without a workspace)
// and now lands on the same terminal state the workspace gate uses.
func Landing(id domain.Identity) Decision {
	if id.Loading {
		return pending()
	}
	if !id.Authenticated {
		return redirect(LoginRoute)
	}
	if len(id.Roles) == 0 {
		return deny(ReasonAwaitingRoles)
	}
	if id.IsInternal() {
		return redirect(InternalDashboard)
	}
	if id.WorkspaceID != nil {
		return redirect(WorkspaceDashboardRoute(*id.WorkspaceID))
	}
	return deny(ReasonNoWorkspace)
}
