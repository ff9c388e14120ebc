package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/johnquangdev/smart-voice-assistant/internal/domain/entities"
	repo "github.com/johnquangdev/smart-voice-assistant/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/smart-voice-assistant/internal/usecase/errors"
)

type assistantRepository struct {
	db *gorm.DB
}

// NewAssistantRepository creates the GORM-backed assistant repository
func NewAssistantRepository(db *gorm.DB) repo.AssistantRepository {
	return &assistantRepository{db: db}
}

func (r *assistantRepository) CreateCalendarEvent(ctx context.Context, event *entities.CalendarEvent) error {
	if event == nil {
		return fmt.Errorf("calendar event: %w", usecaseErrors.ErrNilRecord)
	}
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *assistantRepository) CreateTask(ctx context.Context, task *entities.Task) error {
	if task == nil {
		return fmt.Errorf("task: %w", usecaseErrors.ErrNilRecord)
	}
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *assistantRepository) CreateMeetingSummary(ctx context.Context, summary *entities.MeetingSummary) error {
	if summary == nil {
		return fmt.Errorf("meeting summary: %w", usecaseErrors.ErrNilRecord)
	}
	return r.db.WithContext(ctx).Create(summary).Error
}

func (r *assistantRepository) ListCalendarEvents(ctx context.Context, filter repo.ListFilter) ([]*entities.CalendarEvent, int64, error) {
	var events []*entities.CalendarEvent
	total, err := r.list(ctx, &entities.CalendarEvent{}, &events, filter)
	return events, total, err
}

func (r *assistantRepository) ListTasks(ctx context.Context, filter repo.ListFilter) ([]*entities.Task, int64, error) {
	var tasks []*entities.Task
	total, err := r.list(ctx, &entities.Task{}, &tasks, filter)
	return tasks, total, err
}

func (r *assistantRepository) ListMeetingSummaries(ctx context.Context, filter repo.ListFilter) ([]*entities.MeetingSummary, int64, error) {
	var summaries []*entities.MeetingSummary
	total, err := r.list(ctx, &entities.MeetingSummary{}, &summaries, filter)
	return summaries, total, err
}

func (r *assistantRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// list counts all rows of model and loads one page into dest, newest first
func (r *assistantRepository) list(ctx context.Context, model interface{}, dest interface{}, filter repo.ListFilter) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(model).Count(&total).Error; err != nil {
		return 0, err
	}

	query := r.db.WithContext(ctx).Model(model).Order("created_at DESC").Order("id")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	if err := query.Find(dest).Error; err != nil {
		return 0, err
	}
	return total, nil
}
