package nlp

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jdkato/prose/v2"
	"go.uber.org/zap"
)

// ProseAnalyzer is the in-process English analyzer. It uses prose for
// tokenization, part-of-speech tags, sentence segmentation and PERSON/GPE
// entities, and adds rule-based DATE/TIME recognition and shallow
// dependency roles on top.
type ProseAnalyzer struct {
	model  *prose.Model
	logger *zap.Logger
}

// NewProseAnalyzer loads the prose tagging and entity models once.
// The returned analyzer reuses them for every call.
func NewProseAnalyzer(logger *zap.Logger) (*ProseAnalyzer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	warmup, err := prose.NewDocument("Load the model before the first meeting.")
	if err != nil {
		return nil, fmt.Errorf("failed to load prose model: %w", err)
	}

	return &ProseAnalyzer{model: warmup.Model, logger: logger}, nil
}

// Analyze runs the full pipeline over text
func (a *ProseAnalyzer) Analyze(ctx context.Context, text string) (*AnalyzedText, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := &AnalyzedText{
		Entities:  []Entity{},
		Tokens:    []Token{},
		Sentences: []Sentence{},
	}
	if strings.TrimSpace(text) == "" {
		return out, nil
	}

	doc, err := prose.NewDocument(text, prose.UsingModel(a.model))
	if err != nil {
		return nil, fmt.Errorf("prose analysis failed: %w", err)
	}

	proseTokens := doc.Tokens()
	tagged := make([]TaggedToken, 0, len(proseTokens))
	for _, tok := range proseTokens {
		tagged = append(tagged, TaggedToken{Text: tok.Text, Tag: tok.Tag})
	}
	out.Tokens = LabelDependencies(tagged)

	for _, sent := range doc.Sentences() {
		out.Sentences = append(out.Sentences, Sentence{Text: sent.Text})
	}

	named := make([]Entity, 0)
	for _, ent := range doc.Entities() {
		named = append(named, Entity{Text: ent.Text, Label: ent.Label})
	}
	out.Entities = mergeEntities(text, recognizeDateTimes(text), named)

	a.logger.Debug("prose analysis complete",
		zap.Int("tokens", len(out.Tokens)),
		zap.Int("sentences", len(out.Sentences)),
		zap.Int("entities", len(out.Entities)),
	)

	return out, nil
}

// mergeEntities places named entities (which carry no offsets) back into the
// text and interleaves them with the date/time spans by position. A named
// entity overlapping a date/time span is dropped.
func mergeEntities(text string, dated []entitySpan, named []Entity) []Entity {
	spans := make([]entitySpan, 0, len(dated)+len(named))
	spans = append(spans, dated...)

	cursor := 0
	for _, ent := range named {
		if ent.Text == "" {
			continue
		}
		idx := strings.Index(text[cursor:], ent.Text)
		start := cursor + idx
		if idx < 0 {
			idx = strings.Index(text, ent.Text)
			if idx < 0 {
				continue
			}
			start = idx
		}
		span := entitySpan{Entity: ent, Start: start, End: start + len(ent.Text)}
		cursor = span.End

		if overlapsAny(span, dated) {
			continue
		}
		spans = append(spans, span)
	}

	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].Start < spans[j].Start
	})

	out := make([]Entity, 0, len(spans))
	for _, s := range spans {
		out = append(out, s.Entity)
	}
	return out
}

func overlapsAny(span entitySpan, others []entitySpan) bool {
	for _, o := range others {
		if span.Start < o.End && o.Start < span.End {
			return true
		}
	}
	return false
}
