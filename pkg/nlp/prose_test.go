package nlp

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestProseAnalyzer(t *testing.T) {
	analyzer, err := NewProseAnalyzer(zap.NewNop())
	require.NoError(t, err)

	t.Run("blank text yields nothing", func(t *testing.T) {
		got, err := analyzer.Analyze(context.Background(), "   ")
		require.NoError(t, err)
		assert.Empty(t, got.Entities)
		assert.Empty(t, got.Tokens)
		assert.Empty(t, got.Sentences)
	})

	t.Run("finds dates and meeting sentences", func(t *testing.T) {
		got, err := analyzer.Analyze(context.Background(), "We have a meeting on March 5th. Bring the slides.")
		require.NoError(t, err)

		assert.Contains(t, got.Entities, Entity{Text: "March 5th", Label: LabelDate})
		require.NotEmpty(t, got.Sentences)
		assert.True(t, strings.Contains(strings.ToLower(got.Sentences[0].Text), "meeting"))
		assert.NotEmpty(t, got.Tokens)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := analyzer.Analyze(ctx, "anything")
		assert.ErrorIs(t, err, context.Canceled)
	})
}
