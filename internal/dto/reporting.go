package dto

import (
	"time"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardParams defines query parameters for the workspace dashboard.
// Since is optional; omitted means all time.
type DashboardParams struct {
	Since *time.Time `form:"since" time_format:"2006-01-02"`
}

// DashboardResponse is the aggregate snapshot for the workspace landing view.
type DashboardResponse struct {
	WorkspaceID       string          `json:"workspaceID"`
	CallsPlaced       int64           `json:"callsPlaced"`
	Conversations     int64           `json:"conversations"`
	MeetingsBooked    int64           `json:"meetingsBooked"`
	MeetingsCompleted int64           `json:"meetingsCompleted"`
	PipelineTotal     decimal.Decimal `json:"pipelineTotal"`
	ActiveCampaigns   int64           `json:"activeCampaigns"`
}

// ToDashboardResponse converts domain.WorkspaceDashboard to DTO.
func ToDashboardResponse(d *domain.WorkspaceDashboard) DashboardResponse {
	return DashboardResponse{
		WorkspaceID:       d.WorkspaceID,
		CallsPlaced:       d.CallsPlaced,
		Conversations:     d.Conversations,
		MeetingsBooked:    d.MeetingsBooked,
		MeetingsCompleted: d.MeetingsCompleted,
		PipelineTotal:     d.PipelineTotal,
		ActiveCampaigns:   d.ActiveCampaigns,
	}
}
