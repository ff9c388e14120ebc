package assistant

import (
	"context"

	"github.com/google/uuid"

	"github.com/johnquangdev/smart-voice-assistant/internal/domain/entities"
	"github.com/johnquangdev/smart-voice-assistant/internal/domain/repositories"
)

// Service defines the interface for the assistant use case
type Service interface {
	// ProcessText extracts action items, dates and key points without side effects
	ProcessText(ctx context.Context, text string) (*entities.ExtractionResult, error)

	// ProcessVoice extracts from a transcription and persists one calendar
	// event per date, one task per action item and one meeting summary
	ProcessVoice(ctx context.Context, text string) (*ProcessVoiceOutput, error)

	// ListCalendarEvents pages through stored calendar events, newest first
	ListCalendarEvents(ctx context.Context, filter repositories.ListFilter) ([]*entities.CalendarEvent, int64, error)

	// ListTasks pages through stored tasks, newest first
	ListTasks(ctx context.Context, filter repositories.ListFilter) ([]*entities.Task, int64, error)

	// ListSummaries pages through stored meeting summaries, newest first
	ListSummaries(ctx context.Context, filter repositories.ListFilter) ([]*entities.MeetingSummary, int64, error)

	// Ping checks the persistence store
	Ping(ctx context.Context) error
}

// TranscriptArchiver keeps a copy of a voice transcription
type TranscriptArchiver interface {
	ArchiveTranscript(ctx context.Context, id uuid.UUID, text string) (string, error)
}

// ProcessVoiceOutput is the extraction plus the records it produced
type ProcessVoiceOutput struct {
	Result         *entities.ExtractionResult
	CalendarEvents []*entities.CalendarEvent
	Tasks          []*entities.Task
	Summary        *entities.MeetingSummary
	TranscriptKey  string
}

// Ensure AssistantService implements Service interface
var _ Service = (*AssistantService)(nil)
