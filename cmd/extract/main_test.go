package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/smart-voice-assistant/pkg/nlp"
)

var fixedAnalyzer = nlp.AnalyzerFunc(func(_ context.Context, text string) (*nlp.AnalyzedText, error) {
	if text == "" {
		return &nlp.AnalyzedText{}, nil
	}
	return &nlp.AnalyzedText{
		Entities:  []nlp.Entity{{Text: "March 5th", Label: nlp.LabelDate}},
		Sentences: []nlp.Sentence{{Text: text}},
	}, nil
})

func TestRun_Args(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), fixedAnalyzer, []string{"We have a meeting", "on March 5th."}, strings.NewReader(""), &out, options{})
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"action_items": ["No action items found"],
		"meeting_dates": ["March 5th"],
		"key_points": ["We have a meeting on March 5th."]
	}`, out.String())
}

func TestRun_Stdin(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), fixedAnalyzer, nil, strings.NewReader("  \n"), &out, options{pretty: true})
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"action_items": ["No action items found"],
		"meeting_dates": ["No date found"],
		"key_points": ["No key points found"]
	}`, out.String())
	assert.Contains(t, out.String(), "\n  ")
}

func TestRun_Analysis(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), fixedAnalyzer, []string{"hello"}, nil, &out, options{analysis: true})
	require.NoError(t, err)
	assert.Contains(t, out.String(), `"ents":[{"text":"March 5th","label":"DATE"}]`)
}

func TestBuildAnalyzer_Errors(t *testing.T) {
	_, err := buildAnalyzer(options{backend: "spacy"})
	assert.Error(t, err)

	_, err = buildAnalyzer(options{backend: "stanza"})
	assert.Error(t, err)
}
