package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/amp-labs/amp-algorithms/envutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSortFailed = errors.New("sort failed")

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}

		var rec map[string]any

		require.NoError(t, json.Unmarshal([]byte(line), &rec))

		out = append(out, rec)
	}

	return out
}

// These tests mutate the process-wide default logger, so they don't run in parallel.
func TestGet(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		Subsystem: "test",
		JSON:      true,
		MinLevel:  slog.LevelDebug,
		Output:    &buf,
	})

	Get().Info("default subsystem")
	Get(WithSubsystem(t.Context(), "overridden")).Info("overridden subsystem")
	Get(With(t.Context(), "algorithm", "merge", "size", 3)).Debug("with values")
	Get(WithMuted(t.Context(), true)).Error("never written")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 3)

	assert.Equal(t, "test", lines[0]["subsystem"])
	assert.Equal(t, "overridden", lines[1]["subsystem"])
	assert.Equal(t, "merge", lines[2]["algorithm"])
	assert.InDelta(t, 3, lines[2]["size"], 0)
}

func TestWith_DoesNotShareValues(t *testing.T) { //nolint:paralleltest
	base := With(t.Context(), "a", 1)
	left := With(base, "b", 2)
	right := With(base, "c", 3)

	assert.Equal(t, []any{"a", 1, "b", 2}, getValues(left))
	assert.Equal(t, []any{"a", 1, "c", 3}, getValues(right))
	assert.Equal(t, base, With(base))
}

func TestAnnotateError(t *testing.T) { //nolint:paralleltest
	assert.NoError(t, AnnotateError(nil, "k", "v"))

	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		Subsystem: "test",
		JSON:      true,
		Output:    &buf,
	})

	err := AnnotateError(errSortFailed, "algorithm", "quick", "index", 4)
	require.ErrorIs(t, err, errSortFailed)
	assert.Equal(t, "sort failed", err.Error())

	Get().Error("cross-check failed", "error", err, "plain", errSortFailed)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)

	assert.Equal(t, "sort failed", lines[0]["error"])
	assert.Equal(t, "sort failed", lines[0]["plain"])
	assert.Equal(t, "quick", lines[0]["algorithm"])
	assert.InDelta(t, 4, lines[0]["index"], 0)
}

func TestConfigureLogging_FromEnv(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ctx := envutil.WithEnvOverride(t.Context(), "LOG_JSON", "false")
	ctx = envutil.WithEnvOverride(ctx, "LOG_LEVEL", "warn")

	ConfigureLogging(ctx, "env-test", WithOutput(&buf))

	Get().Info("filtered out")
	Get().Warn("kept")

	out := buf.String()
	assert.NotContains(t, out, "filtered out")
	assert.Contains(t, out, "msg=kept")
	assert.Contains(t, out, "subsystem=env-test")
}

func TestFanoutHandler(t *testing.T) {
	t.Parallel()

	var a, b bytes.Buffer

	handler := &fanoutHandler{handlers: []slog.Handler{
		slog.NewTextHandler(&a, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&b, &slog.HandlerOptions{Level: slog.LevelWarn}),
	}}

	log := slog.New(handler).With("k", "v")

	log.Debug("debug only in a")
	log.Warn("warn in both")

	assert.Contains(t, a.String(), "debug only in a")
	assert.NotContains(t, b.String(), "debug only in a")
	assert.Contains(t, a.String(), "warn in both")
	assert.Contains(t, b.String(), "k=v")
}
