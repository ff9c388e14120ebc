package entities

import (
	"time"

	"github.com/google/uuid"
)

// Task is an action item extracted from a voice request
type Task struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	Description string    `json:"description" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Task) TableName() string {
	return "tasks"
}

// NewTask creates a new task
func NewTask(description string) *Task {
	return &Task{
		ID:          uuid.New(),
		Description: description,
		CreatedAt:   time.Now(),
	}
}
