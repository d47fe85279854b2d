package logger

import (
	"context"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey struct{}

var global = zap.NewNop().Sugar()

// Init replaces the package logger. Until it is called every log call is a no-op.
func Init(level string, development bool) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}

	global = l.Sugar()
	return nil
}

// Sync flushes buffered entries.
func Sync() {
	_ = global.Sync()
}

// WithFields returns a context whose log entries carry the given key-value pairs.
func WithFields(ctx context.Context, keysAndValues ...interface{}) context.Context {
	fields := append(fieldsFrom(ctx), keysAndValues...)
	return context.WithValue(ctx, ctxKey{}, fields)
}

func fieldsFrom(ctx context.Context) []interface{} {
	fields, _ := ctx.Value(ctxKey{}).([]interface{})
	out := make([]interface{}, len(fields))
	copy(out, fields)
	return out
}

func from(ctx context.Context) *zap.SugaredLogger {
	if ctx == nil {
		return global
	}
	fields := fieldsFrom(ctx)
	if len(fields) == 0 {
		return global
	}
	return global.With(fields...)
}

func Debugf(ctx context.Context, template string, args ...interface{}) {
	from(ctx).Debugf(template, args...)
}

func Info(ctx context.Context, args ...interface{}) {
	from(ctx).Info(args...)
}

func Infof(ctx context.Context, template string, args ...interface{}) {
	from(ctx).Infof(template, args...)
}

func Warnf(ctx context.Context, template string, args ...interface{}) {
	from(ctx).Warnf(template, args...)
}

func Error(ctx context.Context, args ...interface{}) {
	from(ctx).Error(args...)
}

func Errorf(ctx context.Context, template string, args ...interface{}) {
	from(ctx).Errorf(template, args...)
}

func Fatal(ctx context.Context, args ...interface{}) {
	from(ctx).Fatal(args...)
}
