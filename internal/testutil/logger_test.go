package testutil

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCaptureLogger(t *testing.T) {
	logger, out := NewCaptureLogger(slog.LevelWarn)
	logger.Info("dropped")
	logger.Warn("kept", "location", "a.md:3")

	assert.Equal(t, "level=WARN msg=kept location=a.md:3\n", out.String())
}
