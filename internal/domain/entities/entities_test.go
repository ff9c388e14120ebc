package entities

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewMeetingSummary(t *testing.T) {
	tests := []struct {
		name      string
		keyPoints []string
		wantText  string
		wantKept  int
	}{
		{
			name:      "joins key points with a space",
			keyPoints: []string{"Meeting at noon.", "The meeting moved."},
			wantText:  "Meeting at noon. The meeting moved.",
			wantKept:  2,
		},
		{
			name:      "sentinel falls back",
			keyPoints: []string{NoKeyPointsFound},
			wantText:  FallbackSummary,
			wantKept:  0,
		},
		{
			name:      "nil falls back",
			keyPoints: nil,
			wantText:  FallbackSummary,
			wantKept:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewMeetingSummary(tt.keyPoints)
			assert.Equal(t, tt.wantText, s.SummaryText)
			assert.Len(t, s.KeyPoints, tt.wantKept)
			assert.NotEqual(t, uuid.Nil, s.ID)
		})
	}
}

func TestExtractionResult_Real(t *testing.T) {
	r := &ExtractionResult{
		ActionItems:  []string{NoActionItemsFound},
		MeetingDates: []string{"Friday", "March 5th"},
		KeyPoints:    []string{NoKeyPointsFound},
	}

	assert.Empty(t, r.RealActionItems())
	assert.Equal(t, []string{"Friday", "March 5th"}, r.RealMeetingDates())
	assert.Empty(t, r.RealKeyPoints())
}

func TestCalendarEvent_Label(t *testing.T) {
	e := NewCalendarEvent("next Monday", "Standup next Monday")
	assert.Equal(t, "Event on next Monday", e.Label())
}
