// Package logging contains the leveled, structured loggers used across the planner and its tools.
package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// NewLogger returns a logger that writes Info+ logs to stdout in UTC.
func NewLogger(name string) Logger {
	return newLogger(name, INFO, true, NewStdoutAppender())
}

// NewBlankLogger returns a Debug+ logger with no appenders. Nothing is written until one is added.
func NewBlankLogger(name string) Logger {
	return newLogger(name, DEBUG, true)
}

// NewTestLogger returns a Debug+ logger that writes to the test's log in local time.
func NewTestLogger(tb testing.TB) Logger {
	logger, _ := NewObservedTestLogger(tb)
	return logger
}

// NewObservedTestLogger is like NewTestLogger but also records every entry in memory so tests
// can assert on what was logged.
func NewObservedTestLogger(tb testing.TB) (Logger, *observer.ObservedLogs) {
	observerCore, observedLogs := observer.New(zap.LevelEnablerFunc(zapcore.DebugLevel.Enabled))
	return newLogger("", DEBUG, false, NewTestAppender(tb), observerCore), observedLogs
}
