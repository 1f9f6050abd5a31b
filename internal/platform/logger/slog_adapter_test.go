package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/philly/arch-blog/postpage/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.ParseLevel(tt.in))
		})
	}
}

func TestSlogAdapter_JSONOutsideDevelopment(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewSlogAdapterWithWriter(&buf, "production", "info")

	log.Debug(context.Background(), "hidden")
	log.Info(context.Background(), "static props loaded", "post_count", 2)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1, "debug must be filtered at info level")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "static props loaded", entry["msg"])
	assert.Equal(t, float64(2), entry["post_count"])
	assert.Equal(t, "postpage", entry["service"])
}

func TestSlogAdapter_TextInDevelopment(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewSlogAdapterWithWriter(&buf, "development", "debug")

	log.Debug(context.Background(), "rendering", "key", "1")

	assert.Contains(t, buf.String(), "msg=rendering")
	assert.Contains(t, buf.String(), "key=1")
}
