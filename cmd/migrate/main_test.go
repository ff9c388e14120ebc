package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/smart-voice-assistant/internal/infrastructure/database"
)

func TestPrintStatus(t *testing.T) {
	var out bytes.Buffer
	err := printStatus(&out, []database.MigrationRecord{
		{ID: "0001_create_calendar_events.sql", Applied: true, AppliedAt: time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC)},
		{ID: "0002_create_tasks.sql"},
	})
	require.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Contains(t, string(lines[1]), "2026-03-05T09:00:00Z")
	assert.Contains(t, string(lines[2]), "pending")
}

func TestDownRequiresPositiveLimit(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{"down", "--limit", "0"})
	assert.ErrorContains(t, cmd.Execute(), "--limit must be at least 1")
}

func TestCommands(t *testing.T) {
	names := []string{}
	for _, c := range newRootCommand().Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"up", "down", "status"}, names)
}
