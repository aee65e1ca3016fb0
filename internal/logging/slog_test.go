package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJSONSlog(t *testing.T, level slog.Level) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: level})
	return NewSlogLogger(slog.New(h)), &buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m), line)
		out = append(out, m)
	}
	return out
}

func TestSlogLogger_Levels(t *testing.T) {
	log, buf := newJSONSlog(t, slog.LevelDebug)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	lines := decodeLines(t, buf)
	require.Len(t, lines, 4)

	want := []struct{ level, msg, key string }{
		{"DEBUG", "dbg", "a"},
		{"INFO", "inf", "b"},
		{"WARN", "wrn", "c"},
		{"ERROR", "err", "d"},
	}
	for i, w := range want {
		assert.Equal(t, w.level, lines[i]["level"])
		assert.Equal(t, w.msg, lines[i]["msg"])
		assert.Contains(t, lines[i], w.key)
	}
}

func TestSlogLogger_LevelFiltering(t *testing.T) {
	log, buf := newJSONSlog(t, slog.LevelWarn)
	ctx := context.Background()

	log.Debug(ctx, "hidden")
	log.Info(ctx, "hidden")
	log.Warn(ctx, "shown")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "shown", lines[0]["msg"])
}

func TestSlogLogger_WithAndContextFields(t *testing.T) {
	log, buf := newJSONSlog(t, slog.LevelDebug)

	ctx := ContextWith(context.Background(), "user_id", "u-1")
	ctx = ContextWith(ctx, "residence_id", "r-9")

	log.With("run_id", "2abc").Info(ctx, "scan seeded", "objects", 3)

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "2abc", lines[0]["run_id"])
	assert.Equal(t, "u-1", lines[0]["user_id"])
	assert.Equal(t, "r-9", lines[0]["residence_id"])
	assert.EqualValues(t, 3, lines[0]["objects"])
}
