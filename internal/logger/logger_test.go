package logger_test

import (
	"net/http/httptest"
	"testing"

	"github.com/georgemunganga/stockroom-api/internal/config"
	"github.com/georgemunganga/stockroom-api/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	l, err := logger.New(&config.LogConfig{Level: "warn", Format: "console"})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))

	_, err = logger.New(&config.LogConfig{Level: "loud"})
	assert.Error(t, err)
}

func TestWithRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	r := httptest.NewRequest("GET", "/api", nil)
	r = r.WithContext(logger.ContextWithRequestID(r.Context(), "req-1"))

	logger.WithRequestID(base, r).Info("hello")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "req-1", logs.All()[0].ContextMap()["request_id"])
	assert.Equal(t, "req-1", logger.RequestID(r.Context()))
}
