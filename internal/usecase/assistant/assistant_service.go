package assistant

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/smart-voice-assistant/errors"
	"github.com/johnquangdev/smart-voice-assistant/internal/domain/entities"
	"github.com/johnquangdev/smart-voice-assistant/internal/domain/repositories"
	"github.com/johnquangdev/smart-voice-assistant/internal/infrastructure/metrics"
	"github.com/johnquangdev/smart-voice-assistant/internal/usecase/extraction"
	"github.com/johnquangdev/smart-voice-assistant/pkg/nlp"
	"github.com/johnquangdev/smart-voice-assistant/pkg/reqcontext"
)

// AssistantService implements Service
type AssistantService struct {
	analyzer nlp.Analyzer
	backend  string
	repo     repositories.AssistantRepository
	archive  TranscriptArchiver
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// Option configures optional collaborators of AssistantService
type Option func(*AssistantService)

// WithArchive stores every voice transcription through archive
func WithArchive(archive TranscriptArchiver) Option {
	return func(s *AssistantService) { s.archive = archive }
}

// WithMetrics records extraction and persistence counts
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *AssistantService) { s.metrics = m }
}

// WithLogger sets the service logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *AssistantService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewAssistantService creates the assistant use case. backend names the
// analyzer in metrics.
func NewAssistantService(analyzer nlp.Analyzer, backend string, repo repositories.AssistantRepository, opts ...Option) *AssistantService {
	s := &AssistantService{
		analyzer: analyzer,
		backend:  backend,
		repo:     repo,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ProcessText runs the extraction engine over text
func (s *AssistantService) ProcessText(ctx context.Context, text string) (*entities.ExtractionResult, error) {
	return s.extract(ctx, text)
}

// ProcessVoice runs the extraction engine and writes its records synchronously.
// The first failed write aborts the request; earlier writes are kept.
func (s *AssistantService) ProcessVoice(ctx context.Context, text string) (*ProcessVoiceOutput, error) {
	result, err := s.extract(ctx, text)
	if err != nil {
		return nil, err
	}

	out := &ProcessVoiceOutput{Result: result}

	for _, date := range result.RealMeetingDates() {
		event := entities.NewCalendarEvent(date, text)
		if err := s.repo.CreateCalendarEvent(ctx, event); err != nil {
			return nil, errors.ErrDBQueryFailed("insert calendar_events", err)
		}
		out.CalendarEvents = append(out.CalendarEvents, event)
	}
	s.metrics.AddPersisted("calendar_events", len(out.CalendarEvents))

	for _, item := range result.RealActionItems() {
		task := entities.NewTask(item)
		if err := s.repo.CreateTask(ctx, task); err != nil {
			return nil, errors.ErrDBQueryFailed("insert tasks", err)
		}
		out.Tasks = append(out.Tasks, task)
	}
	s.metrics.AddPersisted("tasks", len(out.Tasks))

	summary := entities.NewMeetingSummary(result.KeyPoints)
	if err := s.repo.CreateMeetingSummary(ctx, summary); err != nil {
		return nil, errors.ErrDBQueryFailed("insert meeting_summaries", err)
	}
	out.Summary = summary
	s.metrics.AddPersisted("meeting_summaries", 1)

	if s.archive != nil {
		key, err := s.archive.ArchiveTranscript(ctx, summary.ID, text)
		if err != nil {
			return nil, errors.ErrStorageFailed("archive transcript", err)
		}
		out.TranscriptKey = key
	}

	s.logger.With(reqcontext.Fields(ctx)...).Info("voice request persisted",
		zap.Int("calendar_events", len(out.CalendarEvents)),
		zap.Int("tasks", len(out.Tasks)),
		zap.String("summary_id", summary.ID.String()),
		zap.String("transcript_key", out.TranscriptKey),
	)

	return out, nil
}

// ListCalendarEvents returns one page of calendar events
func (s *AssistantService) ListCalendarEvents(ctx context.Context, filter repositories.ListFilter) ([]*entities.CalendarEvent, int64, error) {
	events, total, err := s.repo.ListCalendarEvents(ctx, filter)
	if err != nil {
		return nil, 0, errors.ErrDBQueryFailed("list calendar_events", err)
	}
	return events, total, nil
}

// ListTasks returns one page of tasks
func (s *AssistantService) ListTasks(ctx context.Context, filter repositories.ListFilter) ([]*entities.Task, int64, error) {
	tasks, total, err := s.repo.ListTasks(ctx, filter)
	if err != nil {
		return nil, 0, errors.ErrDBQueryFailed("list tasks", err)
	}
	return tasks, total, nil
}

// ListSummaries returns one page of meeting summaries
func (s *AssistantService) ListSummaries(ctx context.Context, filter repositories.ListFilter) ([]*entities.MeetingSummary, int64, error) {
	summaries, total, err := s.repo.ListMeetingSummaries(ctx, filter)
	if err != nil {
		return nil, 0, errors.ErrDBQueryFailed("list meeting_summaries", err)
	}
	return summaries, total, nil
}

// Ping checks the persistence store
func (s *AssistantService) Ping(ctx context.Context) error {
	if err := s.repo.Ping(ctx); err != nil {
		return errors.ErrDBConnectionFailed(err)
	}
	return nil
}

func (s *AssistantService) extract(ctx context.Context, text string) (*entities.ExtractionResult, error) {
	start := time.Now()
	result, err := extraction.Extract(ctx, text, s.analyzer)
	s.metrics.ObserveAnalysis(s.backend, time.Since(start))
	if err != nil {
		s.logger.With(reqcontext.Fields(ctx)...).Error("extraction failed", zap.Int("text_length", len(text)), zap.Error(err))
		return nil, err
	}

	s.metrics.AddExtracted("action_item", len(result.RealActionItems()))
	s.metrics.AddExtracted("meeting_date", len(result.RealMeetingDates()))
	s.metrics.AddExtracted("key_point", len(result.RealKeyPoints()))

	s.logger.With(reqcontext.Fields(ctx)...).Debug("extraction complete",
		zap.Int("text_length", len(text)),
		zap.Int("action_items", len(result.RealActionItems())),
		zap.Int("meeting_dates", len(result.RealMeetingDates())),
		zap.Int("key_points", len(result.RealKeyPoints())),
	)
	return result, nil
}
