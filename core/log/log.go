// File: log.go
// Title: Structured Logger Implementation
// Description: Implements the Logger wrapper over zerolog with level parsing,
//              console and JSON output, field closures and qualified caller
//              attribution via the introspect package.
// Author: mt-labs
// Version: v0.1.0
// Created: 2025-09-20
// Modified: 2025-09-20
//
// Change History:
// - 2025-09-20 v0.1.0: Initial implementation

package log

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/mt-labs/foundation/core/introspect"
)

// Level aliases the underlying zerolog level type.
type Level = zerolog.Level

// Supported levels, lowest to highest severity.
const (
	LevelTrace = zerolog.TraceLevel
	LevelDebug = zerolog.DebugLevel
	LevelInfo  = zerolog.InfoLevel
	LevelWarn  = zerolog.WarnLevel
	LevelError = zerolog.ErrorLevel
)

const timeFormat = "2006-01-02T15:04:05.000Z07:00"

// Config controls logger construction.
type Config struct {
	// Level names the minimum level: trace, debug, info, warn or error.
	// Unrecognized names fall back to info.
	Level string
	// Console renders human-readable console output instead of JSON lines.
	Console bool
	// Output receives the log stream. Defaults to standard output.
	Output io.Writer
	// WithCaller annotates every entry with the qualified caller name
	// (pkg.Type.Method) resolved through the introspect package.
	WithCaller bool
}

// Field mutates a zerolog event. Fields are applied in order; setting the
// same key twice lets the later field win.
type Field func(e *zerolog.Event)

func String(k, v string) Field          { return func(e *zerolog.Event) { e.Str(k, v) } }
func Int(k string, v int) Field         { return func(e *zerolog.Event) { e.Int(k, v) } }
func Int64(k string, v int64) Field     { return func(e *zerolog.Event) { e.Int64(k, v) } }
func Float64(k string, v float64) Field { return func(e *zerolog.Event) { e.Float64(k, v) } }
func Bool(k string, v bool) Field       { return func(e *zerolog.Event) { e.Bool(k, v) } }
func Dur(k string, v time.Duration) Field {
	return func(e *zerolog.Event) { e.Dur(k, v) }
}
func Time(k string, v time.Time) Field { return func(e *zerolog.Event) { e.Time(k, v) } }
func Any(k string, v any) Field        { return func(e *zerolog.Event) { e.Interface(k, v) } }
func Err(err error) Field {
	return func(e *zerolog.Event) {
		if err != nil {
			e.Err(err)
		}
	}
}

// Logger is a lightweight structured logger. The zero value is a safe no-op.
type Logger struct {
	zl         zerolog.Logger
	hasBase    bool
	withCaller bool
	fields     []Field
}

// New creates a logger from cfg.
func New(cfg Config) Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	if cfg.Console {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: timeFormat}
	}

	zl := zerolog.New(out).Level(parseLevel(cfg.Level, zerolog.InfoLevel)).With().Timestamp().Logger()
	return Logger{zl: zl, hasBase: true, withCaller: cfg.WithCaller}
}

// Nop returns a logger that never writes anything.
func Nop() Logger {
	return Logger{zl: zerolog.Nop(), hasBase: true}
}

// With returns a derived logger carrying additional fixed fields.
func (l Logger) With(fields ...Field) Logger {
	if len(fields) == 0 {
		return l
	}
	cp := l
	cp.fields = append(append([]Field(nil), l.fields...), fields...)
	return cp
}

// Enabled reports whether the given level would be logged.
func (l Logger) Enabled(level Level) bool {
	if !l.hasBase {
		return false
	}
	return level >= l.zl.GetLevel()
}

func (l Logger) Trace(msg string, fields ...Field) { l.log(zerolog.TraceLevel, msg, fields...) }
func (l Logger) Debug(msg string, fields ...Field) { l.log(zerolog.DebugLevel, msg, fields...) }
func (l Logger) Info(msg string, fields ...Field)  { l.log(zerolog.InfoLevel, msg, fields...) }
func (l Logger) Warn(msg string, fields ...Field)  { l.log(zerolog.WarnLevel, msg, fields...) }
func (l Logger) Error(msg string, fields ...Field) { l.log(zerolog.ErrorLevel, msg, fields...) }

func (l Logger) log(level zerolog.Level, msg string, fields ...Field) {
	if !l.hasBase {
		return
	}
	e := l.zl.WithLevel(level)
	if e == nil {
		return
	}

	// Skip log and the public level method to land on the user's frame.
	if l.withCaller {
		if caller := introspect.ShortName(introspect.CallerName(2)); caller != "" {
			e.Str(zerolog.CallerFieldName, caller)
		}
	}

	for _, f := range l.fields {
		if f != nil {
			f(e)
		}
	}
	for _, f := range fields {
		if f != nil {
			f(e)
		}
	}

	e.Msg(msg)
}

func parseLevel(s string, def zerolog.Level) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN", "WARNING":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return def
	}
}
