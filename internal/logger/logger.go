// Package logger provides structured logging using Zap.
package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	sugar *zap.SugaredLogger
	once  sync.Once
)

// Init initializes the global logger for the given environment.
// "production" logs JSON at info level, "test" discards everything and any
// other value logs human-readable console output at debug level.
func Init(env string) {
	once.Do(func() {
		sugar = build(env).Sugar()
	})
}

func build(env string) *zap.Logger {
	var base *zap.Logger
	var err error

	switch env {
	case "production":
		base, err = zap.NewProduction()
	case "test":
		return zap.NewNop()
	default:
		base, err = zap.NewDevelopment()
	}

	if err != nil {
		return zap.NewNop()
	}
	return base
}

// Get returns the global sugared logger.
// If Init has not been called, it initializes a development logger.
func Get() *zap.SugaredLogger {
	Init("development")
	return sugar
}

// Sync flushes any buffered log entries. Call this before application exit.
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}
