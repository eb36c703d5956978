package logger_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/krongr/adboard/internal/config"
	"github.com/krongr/adboard/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name         string
		level        string
		debugEnabled bool
	}{
		{name: "debug_level", level: "debug", debugEnabled: true},
		{name: "info_level", level: "info", debugEnabled: false},
		{name: "error_level", level: "error", debugEnabled: false},
		{name: "case_insensitive", level: "WARN", debugEnabled: false},
		{name: "invalid_level_falls_back_to_info", level: "loud", debugEnabled: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			log, err := logger.Setup(config.ServerConfig{Port: 5000, LogLevel: tc.level})
			require.NoError(t, err)
			require.NotNil(t, log)

			assert.Equal(t, tc.debugEnabled, log.Enabled(context.Background(), slog.LevelDebug))
		})
	}
}

func TestFromContext(t *testing.T) {
	ctx := context.Background()

	// Without a logger in the context the process default applies.
	assert.Equal(t, slog.Default(), logger.FromContext(ctx))

	attached := slog.Default().With("component", "test")
	ctx = logger.WithLogger(ctx, attached)
	assert.Equal(t, attached, logger.FromContext(ctx))
}

func TestFromContextOrDefault(t *testing.T) {
	fallback := slog.Default().With("component", "fallback")

	assert.Equal(t, fallback, logger.FromContextOrDefault(context.Background(), fallback))

	attached := slog.Default().With("component", "attached")
	ctx := logger.WithLogger(context.Background(), attached)
	assert.Equal(t, attached, logger.FromContextOrDefault(ctx, fallback))
}
