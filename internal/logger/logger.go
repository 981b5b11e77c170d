// Package logger builds the structured logger used by the columnize
// command: a logr.Logger backed by zap, writing JSON lines.
package logger

import (
	"context"
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	TimeStampKey = "timestamp"
	MessageKey   = "message"
)

type loggerContextKey struct{}

// New returns a logger writing JSON entries to w. Debug entries (V(1)) are
// only emitted when verbose is set.
func New(w io.Writer, verbose bool) logr.Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.TimeKey = TimeStampKey
	encoderCfg.MessageKey = MessageKey

	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.NewAtomicLevelAt(level),
	)
	return zapr.NewLogger(zap.New(core, zap.AddStacktrace(zap.ErrorLevel)))
}

// WithLogger returns a copy of ctx carrying log.
func WithLogger(ctx context.Context, log logr.Logger) context.Context {
	return logr.NewContext(ctx, log)
}

// FromContext returns the logger stored in ctx, or a logger that discards
// everything when there is none.
func FromContext(ctx context.Context) logr.Logger {
	if ctx == nil {
		return logr.Discard()
	}
	if log, err := logr.FromContext(ctx); err == nil {
		return log
	}
	return logr.Discard()
}
