// Package logging provides the structured JSON logger used by the solver
// and the command line tool.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"
)

// Field represents a key-value pair for structured logging
type Field struct {
	Key   string
	Value any
}

// Logger is the interface for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	// With creates a child logger with the given fields pre-set
	With(fields ...Field) Logger
	// Enabled reports whether messages at level are written
	Enabled(level Level) bool
}

// LogEntry is a single line of JSON output
type LogEntry struct {
	Time    string         `json:"time"`
	Level   string         `json:"level"`
	Message string         `json:"msg"`
	Fields  map[string]any `json:"fields,omitempty"`
}

// JSONLogger writes one JSON object per line
type JSONLogger struct {
	out    *output
	level  Level
	fields []Field
}

// output is shared between a logger and its children so lines never
// interleave.
type output struct {
	mu sync.Mutex
	w  io.Writer
}

// NewJSONLogger creates a new JSON logger
func NewJSONLogger(w io.Writer, level Level) *JSONLogger {
	return &JSONLogger{
		out:   &output{w: w},
		level: level,
	}
}

func (l *JSONLogger) log(level Level, msg string, fields ...Field) {
	if level < l.level {
		return
	}

	entry := LogEntry{
		Time:    time.Now().Format(time.RFC3339Nano),
		Level:   level.String(),
		Message: msg,
	}

	if n := len(l.fields) + len(fields); n > 0 {
		entry.Fields = make(map[string]any, n)
		for _, f := range l.fields {
			entry.Fields[f.Key] = f.Value
		}
		for _, f := range fields {
			entry.Fields[f.Key] = f.Value
		}
	}

	data, err := json.Marshal(entry)
	if err != nil {
		data = fmt.Appendf(nil, `{"level":"ERROR","msg":"unmarshalable log entry","error":%q}`, err.Error())
	}
	data = append(data, '\n')

	l.out.mu.Lock()
	defer l.out.mu.Unlock()
	_, _ = l.out.w.Write(data)
}

// Debug logs a debug-level message
func (l *JSONLogger) Debug(msg string, fields ...Field) { l.log(DebugLevel, msg, fields...) }

// Info logs an info-level message
func (l *JSONLogger) Info(msg string, fields ...Field) { l.log(InfoLevel, msg, fields...) }

// Warn logs a warning-level message
func (l *JSONLogger) Warn(msg string, fields ...Field) { l.log(WarnLevel, msg, fields...) }

// Error logs an error-level message
func (l *JSONLogger) Error(msg string, fields ...Field) { l.log(ErrorLevel, msg, fields...) }

// With creates a child logger with the given fields pre-set
func (l *JSONLogger) With(fields ...Field) Logger {
	merged := make([]Field, 0, len(l.fields)+len(fields))
	merged = append(merged, l.fields...)
	merged = append(merged, fields...)

	return &JSONLogger{
		out:    l.out,
		level:  l.level,
		fields: merged,
	}
}

// Enabled reports whether level passes the logger's threshold
func (l *JSONLogger) Enabled(level Level) bool {
	return level >= l.level
}

// NopLogger discards everything
type NopLogger struct{}

func (NopLogger) Debug(string, ...Field)   {}
func (NopLogger) Info(string, ...Field)    {}
func (NopLogger) Warn(string, ...Field)    {}
func (NopLogger) Error(string, ...Field)   {}
func (n NopLogger) With(...Field) Logger   { return n }
func (NopLogger) Enabled(level Level) bool { return false }

// NewNopLogger creates a logger that discards all output
func NewNopLogger() Logger {
	return NopLogger{}
}

// TimedOperation measures the duration of an operation
type TimedOperation struct {
	logger Logger
	msg    string
	start  time.Time
	fields []Field
}

// StartTimer begins timing an operation
func StartTimer(logger Logger, msg string, fields ...Field) *TimedOperation {
	return &TimedOperation{
		logger: logger,
		msg:    msg,
		start:  time.Now(),
		fields: fields,
	}
}

// Elapsed returns the time since the timer started
func (t *TimedOperation) Elapsed() time.Duration {
	return time.Since(t.start)
}

// End logs the operation at info level with its duration
func (t *TimedOperation) End(fields ...Field) {
	t.logger.Info(t.msg, t.finish(fields)...)
}

// EndError logs the operation as an error with its duration
func (t *TimedOperation) EndError(err error) {
	t.logger.Error(t.msg, t.finish([]Field{Error(err)})...)
}

func (t *TimedOperation) finish(extra []Field) []Field {
	fields := make([]Field, 0, len(t.fields)+len(extra)+1)
	fields = append(fields, t.fields...)
	fields = append(fields, extra...)
	return append(fields, Latency(t.Elapsed()))
}
