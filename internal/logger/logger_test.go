package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	return entry
}

// ── constructors ─────────────────────────────────────────────────────────────

func TestNewLogger_EntryShape(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "blog-server")

	l.Info().Int64("post_id", 7).Msg("post created")
	entry := decodeEntry(t, &buf)

	assert.Equal(t, "blog-server", entry["role"])
	assert.Equal(t, "post created", entry["message"])
	assert.EqualValues(t, 7, entry["post_id"])
	assert.Contains(t, entry, zerolog.TimestampFieldName)
	assert.Contains(t, entry["func"], "TestNewLogger_EntryShape")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewClientLogger_AppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")

	NewClientLogger("blog-client", path).Info().Msg("first")
	NewClientLogger("blog-client", path).Info().Msg("second")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"message":"first"`)
	assert.Contains(t, lines[1], `"role":"blog-client"`)
}

func TestNewClientLogger_UnwritablePathDiscards(t *testing.T) {
	l := NewClientLogger("blog-client", filepath.Join(t.TempDir(), "missing", "dir", "log"))
	require.NotNil(t, l)

	assert.NotPanics(t, func() { l.Error().Msg("lost") })
}

// ── levels ───────────────────────────────────────────────────────────────────

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	tests := []struct {
		name  string
		start zerolog.Level
		level string
		want  zerolog.Level
	}{
		{name: "known level", start: zerolog.DebugLevel, level: "warn", want: zerolog.WarnLevel},
		{name: "trace", start: zerolog.InfoLevel, level: "trace", want: zerolog.TraceLevel},
		{name: "empty keeps current", start: zerolog.InfoLevel, level: "", want: zerolog.InfoLevel},
		{name: "unknown keeps current", start: zerolog.InfoLevel, level: "loud", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zerolog.SetGlobalLevel(tt.start)
			SetLevel(tt.level)
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestSetLevel_FiltersEntries(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	var buf bytes.Buffer
	l := newLogger(&buf, "blog-server")
	SetLevel("warn")

	l.Info().Msg("hidden")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("shown")
	assert.Equal(t, "shown", decodeEntry(t, &buf)["message"])
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

// ── child and scoped loggers ─────────────────────────────────────────────────

func TestGetChildLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := &Logger{zerolog.New(&buf).With().Str("role", "server").Logger()}

	child := parent.GetChildLogger()
	child.Logger = child.With().Str("trace_id", "t-1").Logger()

	child.Info().Msg("child")
	entry := decodeEntry(t, &buf)
	assert.Equal(t, "server", entry["role"])
	assert.Equal(t, "t-1", entry["trace_id"])

	buf.Reset()
	parent.Info().Msg("parent")
	assert.NotContains(t, decodeEntry(t, &buf), "trace_id", "parent must not see child fields")
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	attached := zerolog.New(&buf).With().Str("trace_id", "abc").Logger()
	ctx := attached.WithContext(context.Background())

	FromContext(ctx).Info().Msg("scoped")
	assert.Equal(t, "abc", decodeEntry(t, &buf)["trace_id"])

	assert.NotNil(t, FromContext(context.Background()), "falls back to a default logger")
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	attached := zerolog.New(&buf).With().Str("trace_id", "req-1").Logger()

	r := httptest.NewRequest("GET", "/api/blog", nil)
	r = r.WithContext(attached.WithContext(r.Context()))

	FromRequest(r).Info().Msg("handled")
	assert.Equal(t, "req-1", decodeEntry(t, &buf)["trace_id"])
}
