// Package extraction maps analyzed text to action items, meeting dates and
// key points using fixed rules.
package extraction

import (
	"context"
	stdErrors "errors"
	"strings"

	"github.com/johnquangdev/smart-voice-assistant/errors"
	"github.com/johnquangdev/smart-voice-assistant/internal/domain/entities"
	"github.com/johnquangdev/smart-voice-assistant/pkg/nlp"
)

const keyPointKeyword = "meeting"

// Extract runs analyzer over text once and applies the extraction rules:
//
//   - dates: every DATE or TIME entity, in order, duplicates kept
//   - action items: every token whose dependency role is xcomp or advcl,
//     one token each (not the whole clause)
//   - key points: the first three sentences containing "meeting",
//     case-insensitively
//
// Empty lists are replaced by their sentinel. The only error is an analyzer
// failure: an errors.AppError from the analyzer is returned unchanged, any
// other error is wrapped as errors.ErrAnalysisFailed.
func Extract(ctx context.Context, text string, analyzer nlp.Analyzer) (*entities.ExtractionResult, error) {
	analyzed, err := analyzer.Analyze(ctx, text)
	if err != nil {
		var appErr errors.AppError
		if stdErrors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, errors.ErrAnalysisFailed(err)
	}
	if analyzed == nil {
		analyzed = &nlp.AnalyzedText{}
	}

	return &entities.ExtractionResult{
		ActionItems:  orSentinel(actionItems(analyzed.Tokens), entities.NoActionItemsFound),
		MeetingDates: orSentinel(meetingDates(analyzed.Entities), entities.NoDateFound),
		KeyPoints:    orSentinel(keyPoints(analyzed.Sentences), entities.NoKeyPointsFound),
	}, nil
}

func meetingDates(ents []nlp.Entity) []string {
	var dates []string
	for _, ent := range ents {
		if ent.Label == nlp.LabelDate || ent.Label == nlp.LabelTime {
			dates = append(dates, ent.Text)
		}
	}
	return dates
}

func actionItems(tokens []nlp.Token) []string {
	var items []string
	for _, tok := range tokens {
		if tok.Dep == nlp.DepXComp || tok.Dep == nlp.DepAdvCl {
			items = append(items, tok.Text)
		}
	}
	return items
}

func keyPoints(sents []nlp.Sentence) []string {
	var points []string
	for _, sent := range sents {
		if len(points) == entities.MaxKeyPoints {
			break
		}
		if strings.Contains(strings.ToLower(sent.Text), keyPointKeyword) {
			points = append(points, sent.Text)
		}
	}
	return points
}

func orSentinel(items []string, sentinel string) []string {
	if len(items) == 0 {
		return []string{sentinel}
	}
	return items
}
