package logger_test

import (
	"net/http/httptest"
	"testing"

	"abc-product/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     logger.Config
		debugOn bool
	}{
		{"Debug Console", logger.Config{Level: "debug", Format: "console"}, true},
		{"Info JSON", logger.Config{Level: "info", Format: "json"}, false},
		{"Defaults", logger.Config{}, false},
		{"Warn", logger.Config{Level: "warn"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := logger.New(&tt.cfg)
			require.NoError(t, err)
			require.NotNil(t, l)
			assert.Equal(t, tt.debugOn, l.Core().Enabled(zapcore.DebugLevel))
		})
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := logger.New(&logger.Config{Level: "loud"})
	assert.Error(t, err)
}

func TestWithRayID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		logger.WithRayID(base, c).Info("without")
		c.Locals("ray_id", "ray-123")
		logger.WithRayID(base, c).Info("with")
		return c.SendStatus(fiber.StatusOK)
	})

	_, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Empty(t, entries[0].ContextMap())
	assert.Equal(t, "ray-123", entries[1].ContextMap()["ray_id"])
}
