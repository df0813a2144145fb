package domain

// WorkspaceStatus tracks where a client engagement stands.
type WorkspaceStatus string

const (
	WorkspaceActive  WorkspaceStatus = "ACTIVE"
	WorkspacePaused  WorkspaceStatus = "PAUSED"
	WorkspaceChurned WorkspaceStatus = "CHURNED"
)

// Workspace is a single client tenant. Every campaign, contact, call log,
// meeting and notification belongs to exactly one workspace. Workspaces are
// created by admins and never hard-deleted.
type Workspace struct {
	WorkspaceID string          `json:"workspaceID"` // Primary key (UUID)
	Name        string          `json:"name"`
	CompanyName string          `json:"companyName"`
	Status      WorkspaceStatus `json:"status"`
	AuditFields
}
