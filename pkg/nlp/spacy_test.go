package nlp

import (
	"context"
	"encoding/json"
	stdErrors "errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/johnquangdev/smart-voice-assistant/errors"
)

func TestSpacyClient_Analyze(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/analyze", r.URL.Path)

		var req analyzeRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "We have a meeting on March 5th.", req.Text)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"ents": [{"text": "March 5th", "label": "DATE"}],
			"tokens": [{"text": "We", "dep": "nsubj"}, {"text": "have", "dep": "ROOT"}],
			"sents": [{"text": "We have a meeting on March 5th."}]
		}`))
	}))
	defer ts.Close()

	client := NewSpacyClient(ts.URL+"/", time.Second, zap.NewNop())
	got, err := client.Analyze(context.Background(), "We have a meeting on March 5th.")
	require.NoError(t, err)

	assert.Equal(t, []Entity{{Text: "March 5th", Label: LabelDate}}, got.Entities)
	assert.Equal(t, []Token{{Text: "We", Dep: "nsubj"}, {Text: "have", Dep: DepRoot}}, got.Tokens)
	assert.Equal(t, []Sentence{{Text: "We have a meeting on March 5th."}}, got.Sentences)
}

func TestSpacyClient_AnalyzeEmptyCollections(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	got, err := NewSpacyClient(ts.URL, time.Second, nil).Analyze(context.Background(), "")
	require.NoError(t, err)
	assert.NotNil(t, got.Entities)
	assert.NotNil(t, got.Tokens)
	assert.NotNil(t, got.Sentences)
}

func TestSpacyClient_AnalyzeServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	_, err := NewSpacyClient(ts.URL, time.Second, nil).Analyze(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestSpacyClient_AnalyzeUnavailable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	_, err := NewSpacyClient(url, time.Second, nil).Analyze(context.Background(), "hello")
	require.Error(t, err)

	var appErr errors.AppError
	require.True(t, stdErrors.As(err, &appErr))
	assert.Equal(t, errors.ErrorCode_ANALYZER_UNAVAILABLE, appErr.Code)
	assert.Equal(t, http.StatusServiceUnavailable, appErr.HTTPCode)
}

func TestSpacyClient_WaitReady(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	client := NewSpacyClient(ts.URL, time.Second, zap.NewNop())
	require.NoError(t, client.WaitReady(context.Background(), 10*time.Second))
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestSpacyClient_WaitReadyGivesUp(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	client := NewSpacyClient(ts.URL, time.Second, zap.NewNop())
	err := client.WaitReady(context.Background(), 500*time.Millisecond)
	assert.Error(t, err)
}
