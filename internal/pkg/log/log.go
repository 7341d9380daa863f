package log

import (
	"context"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

var logger Logger

// Logger is the logging contract used by usecases and repositories.
// Handlers hold the underlying *otelzap.Logger directly for Ctx chaining.
type Logger interface {
	Info(ctx context.Context, message string, args ...interface{})
	Warn(ctx context.Context, message string, args ...interface{})
	Error(ctx context.Context, message string, args ...interface{})
}

type otelLogger struct {
	log *otelzap.Logger
}

func Setup() *otelzap.Logger {
	return SetupLogger()
}

func SetupLogger() *otelzap.Logger {
	z, err := zap.NewProduction()
	if err != nil {
		z = zap.NewNop()
	}
	return otelzap.New(z, otelzap.WithMinLevel(zap.InfoLevel))
}

func Init(l *otelzap.Logger) {
	logger = &otelLogger{log: l}
}

func GetLogger() Logger {
	if logger == nil {
		Init(SetupLogger())
	}
	return logger
}

func (l *otelLogger) Info(ctx context.Context, message string, args ...interface{}) {
	l.log.Ctx(ctx).Info(message, fields(args)...)
}

func (l *otelLogger) Warn(ctx context.Context, message string, args ...interface{}) {
	l.log.Ctx(ctx).Warn(message, fields(args)...)
}

func (l *otelLogger) Error(ctx context.Context, message string, args ...interface{}) {
	l.log.Ctx(ctx).Error(message, fields(args)...)
}

func fields(args []interface{}) []zap.Field {
	if len(args) == 0 {
		return nil
	}
	return []zap.Field{zap.Any("details", args)}
}
