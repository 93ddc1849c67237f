package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"garbage", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.in), "parseLevel(%q)", tt.in)
	}
}

func TestSetup_WritesToFile(t *testing.T) {
	var buf bytes.Buffer
	m := NewManager()
	m.Setup(&buf, "info", nil)

	m.Logger().Info("match started", "seed", int64(42))

	out := buf.String()
	assert.Contains(t, out, "Logging initialized")
	assert.Contains(t, out, "match started")
	assert.Contains(t, out, "seed=42")
}

func TestSetup_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	m := NewManager()
	m.Setup(&buf, "warn", nil)

	m.Logger().Info("quiet tick")
	m.Logger().Warn("loud tick")

	out := buf.String()
	assert.NotContains(t, out, "quiet tick")
	assert.Contains(t, out, "loud tick")
}

func TestSetup_TickAttrsInjected(t *testing.T) {
	var buf bytes.Buffer
	tick := uint64(0)

	m := NewManager()
	m.Setup(&buf, "info", TickAttrs(func() uint64 { return tick }))

	tick = 17
	m.Logger().Info("injury rolled")

	assert.Contains(t, buf.String(), "tick=17")
}

func TestLogger_BeforeSetup(t *testing.T) {
	m := NewManager()
	require.NotNil(t, m.Logger())
}

func TestMultiHandler_FansOut(t *testing.T) {
	var a, b bytes.Buffer
	h := NewMultiHandler(
		slog.NewTextHandler(&a, nil),
		slog.NewTextHandler(&b, nil),
		nil,
	)

	logger := slog.New(h)
	logger.Info("fanned out")

	assert.Contains(t, a.String(), "fanned out")
	assert.Contains(t, b.String(), "fanned out")
}

func TestMultiHandler_Enabled(t *testing.T) {
	quiet := slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError})
	chatty := slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelDebug})

	assert.False(t, NewMultiHandler(quiet).Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, NewMultiHandler(quiet, chatty).Enabled(context.Background(), slog.LevelInfo))
}

func TestContextHandler_AddsAttrs(t *testing.T) {
	var buf bytes.Buffer
	inner := slog.NewTextHandler(&buf, nil)
	h := NewContextHandler(inner, func() []slog.Attr {
		return []slog.Attr{slog.String("matchId", "m-001")}
	})

	slog.New(h).Info("foul called")

	assert.Contains(t, buf.String(), "matchId=m-001")
}

func TestLogFilePath(t *testing.T) {
	start := time.Date(2026, 3, 1, 20, 30, 5, 0, time.UTC)
	got := LogFilePath("/var/log/matchcore", "demo", start)
	assert.Contains(t, got, "demo.20260301_203005.log")
}
