// Package logger builds the zap logger used across the service and
// carries per-request identifiers.
package logger

import (
	"context"
	"net/http"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/georgemunganga/stockroom-api/internal/config"
)

type ctxKey struct{}

// RequestIDHeader is the header carrying the request id in and out.
const RequestIDHeader = "X-Request-Id"

// New creates a zap logger from cfg. Level "debug" selects the development
// preset; Format "console" switches to the human readable encoder.
func New(cfg *config.LogConfig) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.Level == "debug" {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}

	if cfg.Format == "console" {
		zc.Encoding = "console"
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zc.DisableStacktrace = true
	} else {
		zc.Encoding = "json"
	}

	if cfg.Level != "" {
		lvl, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		zc.Level = zap.NewAtomicLevelAt(lvl)
	}

	zc.EncoderConfig.LevelKey = "level"
	zc.EncoderConfig.TimeKey = "time"
	zc.EncoderConfig.MessageKey = "message"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return zc.Build()
}

// ContextWithRequestID stores id in ctx.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// RequestID returns the request id stored in ctx, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// WithRequestID returns l annotated with the request id of r.
func WithRequestID(l *zap.Logger, r *http.Request) *zap.Logger {
	if id := RequestID(r.Context()); id != "" {
		return l.With(zap.String("request_id", id))
	}
	return l
}
