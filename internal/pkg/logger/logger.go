// Package logger holds the process-wide zap logger. The context
// argument is accepted on every call so request-scoped fields can be
// attached later without touching call sites.
package logger

import (
	"context"

	"go.uber.org/zap"
)

var global = zap.NewNop().Sugar()

// Init replaces the global logger. dev switches to the human-readable
// development encoder.
func Init(dev bool) error {
	var (
		l   *zap.Logger
		err error
	)
	if dev {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}

	global = l.Sugar()
	return nil
}

func Infof(_ context.Context, format string, args ...interface{}) {
	global.Infof(format, args...)
}

func Warnf(_ context.Context, format string, args ...interface{}) {
	global.Warnf(format, args...)
}

func Errorf(_ context.Context, format string, args ...interface{}) {
	global.Errorf(format, args...)
}

func Fatal(_ context.Context, args ...interface{}) {
	global.Fatal(args...)
}

func Sync() {
	_ = global.Sync()
}
