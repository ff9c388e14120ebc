package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CalendarEvent is a date mentioned in a processed voice request
type CalendarEvent struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	Date        string    `json:"date" gorm:"type:varchar(100);not null"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (CalendarEvent) TableName() string {
	return "calendar_events"
}

// NewCalendarEvent creates a calendar event for date
func NewCalendarEvent(date, description string) *CalendarEvent {
	return &CalendarEvent{
		ID:          uuid.New(),
		Date:        date,
		Description: description,
		CreatedAt:   time.Now(),
	}
}

// Label renders the event the way clients list it
func (e *CalendarEvent) Label() string {
	return fmt.Sprintf("Event on %s", e.Date)
}
