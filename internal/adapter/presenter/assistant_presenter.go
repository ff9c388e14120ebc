package presenter

import (
	"github.com/johnquangdev/smart-voice-assistant/internal/adapter/dto/assistant"
	"github.com/johnquangdev/smart-voice-assistant/internal/adapter/dto/common"
	"github.com/johnquangdev/smart-voice-assistant/internal/domain/entities"
	assistantUsecase "github.com/johnquangdev/smart-voice-assistant/internal/usecase/assistant"
)

// ToProcessResponse wraps an extraction result in the response envelope
func ToProcessResponse(transcription string, result *entities.ExtractionResult) *assistant.ProcessResponse {
	return &assistant.ProcessResponse{
		Status:        assistant.StatusSuccess,
		Message:       assistant.MessageProcessed,
		Transcription: transcription,
		ActionItems:   result.ActionItems,
		MeetingDetails: assistant.MeetingDetails{
			Dates:     result.MeetingDates,
			KeyPoints: result.KeyPoints,
		},
		Summary: assistant.SummaryScheduled,
	}
}

// ToVoiceProcessResponse adds the persisted records to the envelope
func ToVoiceProcessResponse(transcription string, out *assistantUsecase.ProcessVoiceOutput) *assistant.VoiceProcessResponse {
	events := make([]string, 0, len(out.CalendarEvents))
	for _, e := range out.CalendarEvents {
		events = append(events, e.Label())
	}

	tasks := make([]string, 0, len(out.Tasks))
	for _, t := range out.Tasks {
		tasks = append(tasks, t.Description)
	}

	return &assistant.VoiceProcessResponse{
		ProcessResponse: *ToProcessResponse(transcription, out.Result),
		CalendarEvents:  events,
		Tasks:           tasks,
	}
}

// ToCalendarEventResponse converts a CalendarEvent entity to its DTO
func ToCalendarEventResponse(e *entities.CalendarEvent) *assistant.CalendarEventResponse {
	if e == nil {
		return nil
	}
	return &assistant.CalendarEventResponse{
		ID:          e.ID.String(),
		Date:        e.Date,
		Label:       e.Label(),
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}

// ToTaskResponse converts a Task entity to its DTO
func ToTaskResponse(t *entities.Task) *assistant.TaskResponse {
	if t == nil {
		return nil
	}
	return &assistant.TaskResponse{
		ID:          t.ID.String(),
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
	}
}

// ToMeetingSummaryResponse converts a MeetingSummary entity to its DTO
func ToMeetingSummaryResponse(s *entities.MeetingSummary) *assistant.MeetingSummaryResponse {
	if s == nil {
		return nil
	}
	keyPoints := []string(s.KeyPoints)
	if keyPoints == nil {
		keyPoints = []string{}
	}
	return &assistant.MeetingSummaryResponse{
		ID:          s.ID.String(),
		SummaryText: s.SummaryText,
		KeyPoints:   keyPoints,
		CreatedAt:   s.CreatedAt,
	}
}

// ToCalendarEventListResponse converts one page of calendar events
func ToCalendarEventListResponse(events []*entities.CalendarEvent, total int64, page, pageSize int) *assistant.CalendarEventListResponse {
	items := make([]*assistant.CalendarEventResponse, len(events))
	for i, e := range events {
		items[i] = ToCalendarEventResponse(e)
	}
	return &assistant.CalendarEventListResponse{
		CalendarEvents: items,
		Pagination:     common.NewPagination(total, page, pageSize),
	}
}

// ToTaskListResponse converts one page of tasks
func ToTaskListResponse(tasks []*entities.Task, total int64, page, pageSize int) *assistant.TaskListResponse {
	items := make([]*assistant.TaskResponse, len(tasks))
	for i, t := range tasks {
		items[i] = ToTaskResponse(t)
	}
	return &assistant.TaskListResponse{
		Tasks:      items,
		Pagination: common.NewPagination(total, page, pageSize),
	}
}

// ToMeetingSummaryListResponse converts one page of meeting summaries
func ToMeetingSummaryListResponse(summaries []*entities.MeetingSummary, total int64, page, pageSize int) *assistant.MeetingSummaryListResponse {
	items := make([]*assistant.MeetingSummaryResponse, len(summaries))
	for i, s := range summaries {
		items[i] = ToMeetingSummaryResponse(s)
	}
	return &assistant.MeetingSummaryListResponse{
		Summaries:  items,
		Pagination: common.NewPagination(total, page, pageSize),
	}
}
