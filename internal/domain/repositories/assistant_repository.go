package repositories

import (
	"context"

	"github.com/johnquangdev/smart-voice-assistant/internal/domain/entities"
)

// ListFilter pages through records newest first
type ListFilter struct {
	Limit  int
	Offset int
}

// AssistantRepository persists the records written by the voice path.
// Records are only ever created and listed.
type AssistantRepository interface {
	CreateCalendarEvent(ctx context.Context, event *entities.CalendarEvent) error
	CreateTask(ctx context.Context, task *entities.Task) error
	CreateMeetingSummary(ctx context.Context, summary *entities.MeetingSummary) error

	ListCalendarEvents(ctx context.Context, filter ListFilter) ([]*entities.CalendarEvent, int64, error)
	ListTasks(ctx context.Context, filter ListFilter) ([]*entities.Task, int64, error)
	ListMeetingSummaries(ctx context.Context, filter ListFilter) ([]*entities.MeetingSummary, int64, error)

	Ping(ctx context.Context) error
}
