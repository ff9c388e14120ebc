package assistant

import (
	"context"
	stdErrors "errors"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/smart-voice-assistant/errors"
	"github.com/johnquangdev/smart-voice-assistant/internal/domain/entities"
	"github.com/johnquangdev/smart-voice-assistant/internal/domain/repositories"
	"github.com/johnquangdev/smart-voice-assistant/internal/infrastructure/metrics"
	"github.com/johnquangdev/smart-voice-assistant/pkg/nlp"
)

// MockRepository implements repositories.AssistantRepository for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateCalendarEvent(ctx context.Context, event *entities.CalendarEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockRepository) CreateTask(ctx context.Context, task *entities.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockRepository) CreateMeetingSummary(ctx context.Context, summary *entities.MeetingSummary) error {
	args := m.Called(ctx, summary)
	return args.Error(0)
}

func (m *MockRepository) ListCalendarEvents(ctx context.Context, filter repositories.ListFilter) ([]*entities.CalendarEvent, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.CalendarEvent), args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository) ListTasks(ctx context.Context, filter repositories.ListFilter) ([]*entities.Task, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Task), args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository) ListMeetingSummaries(ctx context.Context, filter repositories.ListFilter) ([]*entities.MeetingSummary, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.MeetingSummary), args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type fakeArchive struct {
	texts []string
	err   error
}

func (f *fakeArchive) ArchiveTranscript(_ context.Context, id uuid.UUID, text string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.texts = append(f.texts, text)
	return "transcripts/" + id.String() + ".txt", nil
}

// twoDatesOneAction yields two dates, one action item and no key points
var twoDatesOneAction = nlp.AnalyzerFunc(func(context.Context, string) (*nlp.AnalyzedText, error) {
	return &nlp.AnalyzedText{
		Entities: []nlp.Entity{
			{Text: "Friday", Label: nlp.LabelDate},
			{Text: "Alice", Label: nlp.LabelPerson},
			{Text: "3pm", Label: nlp.LabelTime},
		},
		Tokens: []nlp.Token{
			{Text: "need", Dep: nlp.DepRoot},
			{Text: "review", Dep: nlp.DepXComp},
		},
		Sentences: []nlp.Sentence{{Text: "Alice needs to review it Friday at 3pm."}},
	}, nil
})

func TestProcessVoice_PersistsOneRecordPerItem(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	repo.On("CreateCalendarEvent", ctx, mock.AnythingOfType("*entities.CalendarEvent")).Return(nil).Twice()
	repo.On("CreateTask", ctx, mock.AnythingOfType("*entities.Task")).Return(nil).Once()
	repo.On("CreateMeetingSummary", ctx, mock.MatchedBy(func(s *entities.MeetingSummary) bool {
		return s.SummaryText == entities.FallbackSummary
	})).Return(nil).Once()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	svc := NewAssistantService(twoDatesOneAction, "test", repo, WithMetrics(m))

	text := "Alice needs to review it Friday at 3pm."
	out, err := svc.ProcessVoice(ctx, text)
	require.NoError(t, err)

	repo.AssertExpectations(t)
	require.Len(t, out.CalendarEvents, 2)
	assert.Equal(t, "Friday", out.CalendarEvents[0].Date)
	assert.Equal(t, "3pm", out.CalendarEvents[1].Date)
	assert.Equal(t, text, out.CalendarEvents[0].Description)
	require.Len(t, out.Tasks, 1)
	assert.Equal(t, "review", out.Tasks[0].Description)
	assert.Equal(t, entities.FallbackSummary, out.Summary.SummaryText)
	assert.Empty(t, out.TranscriptKey)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RecordsPersisted.WithLabelValues("calendar_events")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RecordsPersisted.WithLabelValues("tasks")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ExtractedItems.WithLabelValues("meeting_date")))
}

func TestProcessVoice_EmptyTextWritesOnlySummary(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	repo.On("CreateMeetingSummary", ctx, mock.AnythingOfType("*entities.MeetingSummary")).Return(nil).Once()

	empty := nlp.AnalyzerFunc(func(context.Context, string) (*nlp.AnalyzedText, error) {
		return &nlp.AnalyzedText{}, nil
	})
	svc := NewAssistantService(empty, "test", repo)

	out, err := svc.ProcessVoice(ctx, "")
	require.NoError(t, err)

	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "CreateCalendarEvent", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "CreateTask", mock.Anything, mock.Anything)
	assert.Empty(t, out.CalendarEvents)
	assert.Empty(t, out.Tasks)
	assert.Equal(t, []string{entities.NoDateFound}, out.Result.MeetingDates)
}

func TestProcessVoice_SummaryJoinsKeyPoints(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	repo.On("CreateMeetingSummary", ctx, mock.AnythingOfType("*entities.MeetingSummary")).Return(nil).Once()

	analyzer := nlp.AnalyzerFunc(func(context.Context, string) (*nlp.AnalyzedText, error) {
		return &nlp.AnalyzedText{Sentences: []nlp.Sentence{
			{Text: "Meeting at noon."},
			{Text: "Bring snacks."},
			{Text: "The meeting is short."},
		}}, nil
	})
	svc := NewAssistantService(analyzer, "test", repo)

	out, err := svc.ProcessVoice(ctx, "ignored")
	require.NoError(t, err)
	assert.Equal(t, "Meeting at noon. The meeting is short.", out.Summary.SummaryText)
}

func TestProcessVoice_PersistenceFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	repo.On("CreateCalendarEvent", ctx, mock.Anything).Return(stdErrors.New("connection reset")).Once()

	svc := NewAssistantService(twoDatesOneAction, "test", repo)

	out, err := svc.ProcessVoice(ctx, "text")
	assert.Nil(t, out)

	var appErr errors.AppError
	require.True(t, stdErrors.As(err, &appErr))
	assert.Equal(t, errors.ErrorCode_DB_QUERY_FAILED, appErr.Code)
	repo.AssertNotCalled(t, "CreateTask", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "CreateMeetingSummary", mock.Anything, mock.Anything)
}

func TestProcessVoice_Archive(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	repo.On("CreateMeetingSummary", ctx, mock.Anything).Return(nil)

	empty := nlp.AnalyzerFunc(func(context.Context, string) (*nlp.AnalyzedText, error) {
		return &nlp.AnalyzedText{}, nil
	})

	t.Run("stores transcript under summary id", func(t *testing.T) {
		archive := &fakeArchive{}
		svc := NewAssistantService(empty, "test", repo, WithArchive(archive))

		out, err := svc.ProcessVoice(ctx, "hello there")
		require.NoError(t, err)
		assert.Equal(t, []string{"hello there"}, archive.texts)
		assert.Equal(t, "transcripts/"+out.Summary.ID.String()+".txt", out.TranscriptKey)
	})

	t.Run("archive failure is a storage error", func(t *testing.T) {
		svc := NewAssistantService(empty, "test", repo, WithArchive(&fakeArchive{err: stdErrors.New("bucket gone")}))

		_, err := svc.ProcessVoice(ctx, "hello there")
		var appErr errors.AppError
		require.True(t, stdErrors.As(err, &appErr))
		assert.Equal(t, errors.ErrorCode_INTEGRATION_STORAGE_FAILED, appErr.Code)
	})
}

func TestProcessText_HasNoSideEffects(t *testing.T) {
	repo := new(MockRepository)
	svc := NewAssistantService(twoDatesOneAction, "test", repo)

	result, err := svc.ProcessText(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, []string{"Friday", "3pm"}, result.MeetingDates)
	assert.Equal(t, []string{"review"}, result.ActionItems)
	assert.Equal(t, []string{entities.NoKeyPointsFound}, result.KeyPoints)
	repo.AssertExpectations(t)
}

func TestProcessText_AnalyzerFailure(t *testing.T) {
	failing := nlp.AnalyzerFunc(func(context.Context, string) (*nlp.AnalyzedText, error) {
		return nil, stdErrors.New("model not loaded")
	})
	svc := NewAssistantService(failing, "test", new(MockRepository))

	_, err := svc.ProcessText(context.Background(), "anything")
	var appErr errors.AppError
	require.True(t, stdErrors.As(err, &appErr))
	assert.Equal(t, errors.ErrorCode_ANALYSIS_FAILED, appErr.Code)
}

func TestListOperations(t *testing.T) {
	ctx := context.Background()
	filter := repositories.ListFilter{Limit: 20, Offset: 20}

	repo := new(MockRepository)
	repo.On("ListTasks", ctx, filter).Return([]*entities.Task{entities.NewTask("review")}, int64(21), nil)
	repo.On("ListCalendarEvents", ctx, filter).Return(nil, int64(0), stdErrors.New("timeout"))
	repo.On("ListMeetingSummaries", ctx, filter).Return([]*entities.MeetingSummary{}, int64(0), nil)
	repo.On("Ping", ctx).Return(stdErrors.New("refused"))

	svc := NewAssistantService(twoDatesOneAction, "test", repo)

	tasks, total, err := svc.ListTasks(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(21), total)
	assert.Len(t, tasks, 1)

	_, _, err = svc.ListCalendarEvents(ctx, filter)
	var appErr errors.AppError
	require.True(t, stdErrors.As(err, &appErr))
	assert.Equal(t, errors.ErrorCode_DB_QUERY_FAILED, appErr.Code)

	summaries, _, err := svc.ListSummaries(ctx, filter)
	require.NoError(t, err)
	assert.Empty(t, summaries)

	err = svc.Ping(ctx)
	require.True(t, stdErrors.As(err, &appErr))
	assert.Equal(t, errors.ErrorCode_DB_CONNECTION_FAILED, appErr.Code)
}
