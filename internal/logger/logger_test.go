package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitializeSetsLevel(t *testing.T) {
	ctx := context.Background()

	Initialize("warn", "text")
	assert.True(t, Get().Enabled(ctx, slog.LevelWarn))
	assert.False(t, Get().Enabled(ctx, slog.LevelInfo))

	Initialize("debug", "text")
	assert.True(t, Get().Enabled(ctx, slog.LevelDebug))

	// Unknown levels fall back to info.
	Initialize("verbose", "text")
	assert.True(t, Get().Enabled(ctx, slog.LevelInfo))
	assert.False(t, Get().Enabled(ctx, slog.LevelDebug))
}

func TestWithServiceKeepsLevel(t *testing.T) {
	ctx := context.Background()

	Initialize("warn", "json")
	log := WithService("rental")
	assert.NotNil(t, log)
	assert.True(t, log.Enabled(ctx, slog.LevelWarn))
	assert.False(t, log.Enabled(ctx, slog.LevelInfo))
}
