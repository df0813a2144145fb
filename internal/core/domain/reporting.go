package domain

import "github.com/shopspring/decimal"

// WorkspaceDashboard is the aggregate snapshot the client landing screen shows.
type WorkspaceDashboard struct {
	WorkspaceID       string          `json:"workspaceID"`
	CallsPlaced       int64           `json:"callsPlaced"`
	Conversations     int64           `json:"conversations"`
	MeetingsBooked    int64           `json:"meetingsBooked"`
	MeetingsCompleted int64           `json:"meetingsCompleted"`
	PipelineTotal     decimal.Decimal `json:"pipelineTotal"`
	ActiveCampaigns   int64           `json:"activeCampaigns"`
}
