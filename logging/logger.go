package logging

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the leveled, structured logger handed to trees and the tools that drive them. The `f`
// methods format like `fmt.Sprintf`; the `w` methods take alternating keys and values.
type Logger interface {
	Debugf(template string, args ...interface{})
	Debugw(msg string, keysAndValues ...interface{})
	Infof(template string, args ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnf(template string, args ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorf(template string, args ...interface{})
	Errorw(msg string, keysAndValues ...interface{})

	SetLevel(level Level)
	GetLevel() Level
	// Sublogger returns a child named "<name>.<subname>" that shares this logger's appenders and
	// starts at its current level.
	Sublogger(subname string) Logger
	AddAppender(appender Appender)
	Sync() error
}

type logger struct {
	name  string
	level AtomicLevel
	inUTC bool

	appenders []Appender
}

func newLogger(name string, level Level, inUTC bool, appenders ...Appender) *logger {
	return &logger{
		name:      name,
		level:     NewAtomicLevelAt(level),
		inUTC:     inUTC,
		appenders: appenders,
	}
}

func (l *logger) SetLevel(level Level) {
	l.level.Set(level)
}

func (l *logger) GetLevel() Level {
	return l.level.Get()
}

func (l *logger) AddAppender(appender Appender) {
	l.appenders = append(l.appenders, appender)
}

func (l *logger) Sublogger(subname string) Logger {
	name := subname
	if l.name != "" {
		name = l.name + "." + subname
	}
	return newLogger(name, l.GetLevel(), l.inUTC, l.appenders...)
}

func (l *logger) Sync() error {
	var err error
	for _, appender := range l.appenders {
		err = multierr.Append(err, appender.Sync())
	}
	return err
}

func (l *logger) Debugf(template string, args ...interface{}) {
	if l.enabled(DEBUG) {
		l.write(DEBUG, fmt.Sprintf(template, args...), nil)
	}
}

func (l *logger) Debugw(msg string, keysAndValues ...interface{}) {
	if l.enabled(DEBUG) {
		l.write(DEBUG, msg, toFields(keysAndValues))
	}
}

func (l *logger) Infof(template string, args ...interface{}) {
	if l.enabled(INFO) {
		l.write(INFO, fmt.Sprintf(template, args...), nil)
	}
}

func (l *logger) Infow(msg string, keysAndValues ...interface{}) {
	if l.enabled(INFO) {
		l.write(INFO, msg, toFields(keysAndValues))
	}
}

func (l *logger) Warnf(template string, args ...interface{}) {
	if l.enabled(WARN) {
		l.write(WARN, fmt.Sprintf(template, args...), nil)
	}
}

func (l *logger) Warnw(msg string, keysAndValues ...interface{}) {
	if l.enabled(WARN) {
		l.write(WARN, msg, toFields(keysAndValues))
	}
}

func (l *logger) Errorf(template string, args ...interface{}) {
	if l.enabled(ERROR) {
		l.write(ERROR, fmt.Sprintf(template, args...), nil)
	}
}

func (l *logger) Errorw(msg string, keysAndValues ...interface{}) {
	if l.enabled(ERROR) {
		l.write(ERROR, msg, toFields(keysAndValues))
	}
}

func (l *logger) enabled(level Level) bool {
	return level >= l.level.Get()
}

// write must be called directly from the exported log methods so the caller lookup lands on the
// code that logged.
func (l *logger) write(level Level, msg string, fields []zapcore.Field) {
	entry := zapcore.Entry{
		Level:      level.AsZap(),
		Time:       time.Now(),
		LoggerName: l.name,
		Message:    msg,
		Caller:     getCaller(),
	}
	if l.inUTC {
		entry.Time = entry.Time.UTC()
	}
	for _, appender := range l.appenders {
		if err := appender.Write(entry, fields); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

// toFields pairs up keys and values. A trailing key without a value is kept with an error in its
// place.
func toFields(keysAndValues []interface{}) []zapcore.Field {
	fields := make([]zapcore.Field, 0, (len(keysAndValues)+1)/2)
	for i := 0; i < len(keysAndValues); i += 2 {
		key := fmt.Sprint(keysAndValues[i])
		if i+1 == len(keysAndValues) {
			fields = append(fields, zap.Any(key, errors.New("unpaired log key")))
			break
		}
		fields = append(fields, zap.Any(key, keysAndValues[i+1]))
	}
	return fields
}

// getCaller skips itself, write and the exported log method.
func getCaller() zapcore.EntryCaller {
	const skipToLogCaller = 3
	var caller zapcore.EntryCaller
	var ok bool
	caller.PC, caller.File, caller.Line, ok = runtime.Caller(skipToLogCaller)
	if !ok {
		return caller
	}
	caller.Defined = true
	if fn := runtime.FuncForPC(caller.PC); fn != nil {
		caller.Function = fn.Name()
	}
	return caller
}
