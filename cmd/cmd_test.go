package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mindfool/mindfool/internal/practice"
	"github.com/mindfool/mindfool/internal/session"
	"github.com/mindfool/mindfool/internal/store"
)

// run executes the root command with args against a fresh output buffer.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func seedDB(t *testing.T, recs ...session.Record) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mindfool.db")
	st, err := store.Open(path)
	require.NoError(t, err)
	defer st.Close()
	for _, r := range recs {
		require.NoError(t, st.HistoryRepo().AddSession(context.Background(), r))
	}
	return path
}

func record(id string, ts time.Time) session.Record {
	return session.Record{
		ID:        id,
		Mode:      practice.ModeBoxBreathing,
		PreScore:  3,
		PostScore: 7,
		Delta:     4,
		Duration:  2 * time.Minute,
		Notes:     "steady",
		Timestamp: ts,
	}
}

func TestWriteHistoryFormats(t *testing.T) {
	recs := []session.Record{record("a", time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC))}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeHistory(&buf, recs, "json"))
		var got []map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "box-breathing", got[0]["mode"])
		assert.EqualValues(t, 120000, got[0]["duration"])
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeHistory(&buf, recs, "yaml"))
		var got []map[string]any
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "a", got[0]["id"])
		assert.Equal(t, 4, got[0]["delta"])
	})

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeHistory(&buf, recs, "table"))
		out := buf.String()
		assert.Contains(t, out, "Box Breathing")
		assert.Contains(t, out, "+4 calmer")
		assert.Contains(t, out, "2:00")
	})

	t.Run("empty json is an array", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeHistory(&buf, nil, "json"))
		assert.Equal(t, "[]", strings.TrimSpace(buf.String()))
	})

	t.Run("unknown", func(t *testing.T) {
		assert.Error(t, writeHistory(&bytes.Buffer{}, recs, "csv"))
	})
}

func TestHistoryCommand(t *testing.T) {
	now := time.Now()
	db := seedDB(t, record("old", now.Add(-time.Hour)), record("new", now))

	out, err := run(t, "history", "--db", db, "--format", "json", "--limit", "1")
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0]["id"])
}

func TestStreakCommand(t *testing.T) {
	now := time.Now()
	db := seedDB(t,
		record("a", now.AddDate(0, 0, -1)),
		record("b", now),
	)

	out, err := run(t, "streak", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Current streak:  2 days")
	assert.Contains(t, out, "Total sessions:  2")
	assert.Contains(t, out, "Practiced today: yes")
}

func TestShareCommand(t *testing.T) {
	db := seedDB(t, record("a", time.Now()))

	out, err := run(t, "share", "--db", db, "--practice", "body-scan")
	require.NoError(t, err)
	assert.Contains(t, out, "1 Day Mindfulness Streak!")
	assert.Contains(t, out, "with Body Scan")
	assert.Contains(t, out, "https://mindfool.games/share/streak?days=1&practice=body-scan")
	assert.Contains(t, out, "https://app.mindfool.games/body-scan")
}

func TestSettingsCommand(t *testing.T) {
	db := seedDB(t)

	out, err := run(t, "settings", "--db", db, "default-mode", "box-breathing")
	require.NoError(t, err)
	assert.Contains(t, out, "box-breathing")

	out, err = run(t, "settings", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "default-mode")
	assert.Contains(t, out, "box-breathing")

	_, err = run(t, "settings", "--db", db, "volume", "11")
	assert.Error(t, err)
}

func TestResetCommand(t *testing.T) {
	db := seedDB(t, record("a", time.Now()), record("b", time.Now()))

	_, err := run(t, "reset", "--db", db, "--yes=false")
	require.Error(t, err)

	out, err := run(t, "reset", "--db", db, "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted 2 sessions.")

	st, err := store.Open(db)
	require.NoError(t, err)
	defer st.Close()
	n, err := st.HistoryRepo().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "mindfool (devel)\n", out)
}
