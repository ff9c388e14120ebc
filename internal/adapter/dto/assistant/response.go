package assistant

import (
	"time"

	"github.com/johnquangdev/smart-voice-assistant/internal/adapter/dto/common"
)

// Fixed envelope values
const (
	StatusSuccess    = "success"
	StatusError      = "error"
	MessageProcessed = "Processed successfully"
	SummaryScheduled = "Meeting scheduled with extracted details."
	WelcomeBanner    = "Welcome to the Smart Voice Assistant API."
)

// MeetingDetails groups the extracted dates and key points
type MeetingDetails struct {
	Dates     []string `json:"dates"`
	KeyPoints []string `json:"key_points"`
}

// ProcessResponse is the envelope returned by GET /process/
type ProcessResponse struct {
	Status         string         `json:"status"`
	Message        string         `json:"message"`
	Transcription  string         `json:"transcription"`
	ActionItems    []string       `json:"action_items"`
	MeetingDetails MeetingDetails `json:"meeting_details"`
	Summary        string         `json:"summary"`
}

// VoiceProcessResponse is the envelope returned by POST /voice-process/
type VoiceProcessResponse struct {
	ProcessResponse
	CalendarEvents []string `json:"calendar_events"`
	Tasks          []string `json:"tasks"`
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Code    interface{} `json:"code,omitempty"`
	Info    string      `json:"info,omitempty"`
}

// CalendarEventResponse represents a stored calendar event
type CalendarEventResponse struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Label       string    `json:"label"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// TaskResponse represents a stored task
type TaskResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// MeetingSummaryResponse represents a stored meeting summary
type MeetingSummaryResponse struct {
	ID          string    `json:"id"`
	SummaryText string    `json:"summary_text"`
	KeyPoints   []string  `json:"key_points"`
	CreatedAt   time.Time `json:"created_at"`
}

// CalendarEventListResponse is one page of calendar events
type CalendarEventListResponse struct {
	CalendarEvents []*CalendarEventResponse    `json:"calendar_events"`
	Pagination     *common.PaginationResponse `json:"pagination"`
}

// TaskListResponse is one page of tasks
type TaskListResponse struct {
	Tasks      []*TaskResponse            `json:"tasks"`
	Pagination *common.PaginationResponse `json:"pagination"`
}

// MeetingSummaryListResponse is one page of meeting summaries
type MeetingSummaryListResponse struct {
	Summaries  []*MeetingSummaryResponse  `json:"summaries"`
	Pagination *common.PaginationResponse `json:"pagination"`
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Analyzer string `json:"analyzer"`
}
