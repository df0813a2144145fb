package access

import "fmt"

// Frontend route paths the gates and the landing router steer to. These are
// SPA routes, not API paths; the API hands them back for the client to follow.
const (
	LoginRoute          = "/login"
	InternalDashboard   = "/admin/dashboard"
	workspaceDashboards = "/workspace/%s/dashboard"
)

// WorkspaceDashboardRoute builds the dashboard route for a workspace.
func WorkspaceDashboardRoute(workspaceID string) string {
	return fmt.Sprintf(workspaceDashboards, workspaceID)
}
