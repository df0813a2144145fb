package access

import "github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"

// AdminGate decides access to internal-only screens.
//
// Loading identities cannot be decided. Internal users are allowed regardless
// of any workspace binding they carry. A client with a workspace is silently
// redirected to their own dashboard; a client with none gets the terminal
// denial message.
func AdminGate(id domain.Identity) Decision {
	if id.Loading {
		return pending()
	}
	if id.IsInternal() {
		return allow()
	}
	if id.WorkspaceID != nil {
		return redirect(WorkspaceDashboardRoute(*id.WorkspaceID))
	}
	return deny(ReasonAccessDenied)
}

// WorkspaceGate decides access to a specific workspace's screens.
//
// Internal users may view any workspace. A client user is allowed only into
// the workspace their profile binds them to; a URL pointing at any other
// tenant redirects them home rather than erroring. Ownership is strict
// equality on the workspace id, with no hierarchy or partial access.
func WorkspaceGate(id domain.Identity, workspaceID string) Decision {
	if id.Loading {
		return pending()
	}
	if id.IsInternal() {
		return allow()
	}
	if id.WorkspaceID == nil {
		return deny(ReasonNoWorkspace)
	}
	if *id.WorkspaceID == workspaceID {
		return allow()
	}
	return redirect(WorkspaceDashboardRoute(*id.WorkspaceID))
}
