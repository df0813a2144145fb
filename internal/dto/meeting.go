package dto

import (
	"time"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
	portssvc "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// BookMeetingRequest defines data for booking a meeting.
type BookMeetingRequest struct {
	CampaignID    string          `json:"campaignID" binding:"required"`
	ContactID     string          `json:"contactID" binding:"required"`
	ScheduledAt   time.Time       `json:"scheduledAt" binding:"required"`
	PipelineValue decimal.Decimal `json:"pipelineValue"`
	CurrencyCode  string          `json:"currencyCode" binding:"omitempty,iso4217"`
	Notes         string          `json:"notes"`
}

// ToNewMeeting converts the request to the service input.
func (r BookMeetingRequest) ToNewMeeting() portssvc.NewMeeting {
	return portssvc.NewMeeting{
		CampaignID:    r.CampaignID,
		ContactID:     r.ContactID,
		ScheduledAt:   r.ScheduledAt,
		PipelineValue: r.PipelineValue,
		CurrencyCode:  r.CurrencyCode,
		Notes:         r.Notes,
	}
}

// UpdateMeetingStatusRequest moves a meeting through its lifecycle.
type UpdateMeetingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=SCHEDULED COMPLETED NO_SHOW CANCELLED RESCHEDULED"`
}

// MeetingResponse defines data returned for a meeting.
type MeetingResponse struct {
	MeetingID     string               `json:"meetingID"`
	CampaignID    string               `json:"campaignID"`
	ContactID     string               `json:"contactID"`
	BookedBy      string               `json:"bookedBy"`
	ScheduledAt   time.Time            `json:"scheduledAt"`
	Status        domain.MeetingStatus `json:"status"`
	PipelineValue decimal.Decimal      `json:"pipelineValue"`
	CurrencyCode  string               `json:"currencyCode,omitempty"`
	Notes         string               `json:"notes,omitempty"`
}

// ToMeetingResponse converts domain.Meeting to DTO.
func ToMeetingResponse(m *domain.Meeting) MeetingResponse {
	return MeetingResponse{
		MeetingID:     m.MeetingID,
		CampaignID:    m.CampaignID,
		ContactID:     m.ContactID,
		BookedBy:      m.BookedBy,
		ScheduledAt:   m.ScheduledAt,
		Status:        m.Status,
		PipelineValue: m.PipelineValue,
		CurrencyCode:  m.CurrencyCode,
		Notes:         m.Notes,
	}
}

// ListMeetingsResponse wraps a list of meetings.
type ListMeetingsResponse struct {
	Meetings []MeetingResponse `json:"meetings"`
}

// ToListMeetingsResponse converts a slice of domain.Meeting to DTO.
func ToListMeetingsResponse(meetings []domain.Meeting) ListMeetingsResponse {
	list := make([]MeetingResponse, len(meetings))
	for i, m := range meetings {
		list[i] = ToMeetingResponse(&m)
	}
	return ListMeetingsResponse{Meetings: list}
}
