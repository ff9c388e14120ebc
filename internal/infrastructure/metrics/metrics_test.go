package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveRequest("GET", "/process/", "200", 20*time.Millisecond)
	m.ObserveRequest("GET", "/process/", "200", 30*time.Millisecond)
	m.AddExtracted("meeting_date", 2)
	m.AddExtracted("action_item", 0)
	m.AddPersisted("tasks", 3)
	m.ObserveAnalysis("prose", 5*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/process/", "200")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ExtractedItems.WithLabelValues("meeting_date")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.RecordsPersisted.WithLabelValues("tasks")))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "voice_assistant_analysis_duration_seconds")
	assert.Contains(t, names, "voice_assistant_http_request_duration_seconds")
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveRequest("GET", "/", "200", time.Millisecond)
		m.ObserveAnalysis("prose", time.Millisecond)
		m.AddExtracted("key_point", 1)
		m.AddPersisted("tasks", 1)
	})
}
