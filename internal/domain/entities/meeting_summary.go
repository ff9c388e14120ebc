package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// FallbackSummary is stored when a voice request yields no key points
const FallbackSummary = "No key points to summarize."

// MeetingSummary is the one summary record written per voice request
type MeetingSummary struct {
	ID          uuid.UUID                   `json:"id" gorm:"type:uuid;primary_key"`
	SummaryText string                      `json:"summary_text" gorm:"type:text;not null"`
	KeyPoints   datatypes.JSONSlice[string] `json:"key_points"`
	CreatedAt   time.Time                   `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (MeetingSummary) TableName() string {
	return "meeting_summaries"
}

// NewMeetingSummary joins key points with a single space. Sentinels are
// dropped; if nothing is left the fallback text is used.
func NewMeetingSummary(keyPoints []string) *MeetingSummary {
	points := withoutSentinel(keyPoints, NoKeyPointsFound)

	text := strings.Join(points, " ")
	if strings.TrimSpace(text) == "" {
		text = FallbackSummary
	}

	return &MeetingSummary{
		ID:          uuid.New(),
		SummaryText: text,
		KeyPoints:   datatypes.NewJSONSlice(points),
		CreatedAt:   time.Now(),
	}
}
