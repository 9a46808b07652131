// File: logger.go
// Title: Structured Logger
// Description: Logger with immutable With* configuration, the process-wide
//              default logger and the Diagnose helper used by library code.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package log

import (
	"errors"
	"io"
	"maps"
	"os"
	"sync"
	"sync/atomic"

	mdwerror "github.com/msto63/pkit/core/error"
)

// Logger represents a structured logger with contextual information
type Logger struct {
	level         Level
	formatter     Formatter
	output        io.Writer
	name          string
	contextFields Fields

	// guards writes to output
	mu *sync.Mutex
}

// Config represents logger configuration
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
}

// New creates a logger writing warn and above as text to stderr
func New() *Logger {
	return &Logger{
		level:         LevelWarn,
		formatter:     NewTextFormatter(),
		output:        os.Stderr,
		contextFields: make(Fields),
		mu:            &sync.Mutex{},
	}
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	l := New()
	l.level = config.Level
	l.formatter = GetFormatter(config.Format)
	l.name = config.Name
	if config.Output != nil {
		l.output = config.Output
	}
	return l
}

// WithLevel returns a copy with the minimum level changed
func (l *Logger) WithLevel(level Level) *Logger {
	c := l.clone()
	c.level = level
	return c
}

// WithFormat returns a copy using the given format
func (l *Logger) WithFormat(format Format) *Logger {
	c := l.clone()
	c.formatter = GetFormatter(format)
	return c
}

// WithFormatter returns a copy using a custom formatter
func (l *Logger) WithFormatter(formatter Formatter) *Logger {
	c := l.clone()
	c.formatter = formatter
	return c
}

// WithOutput returns a copy writing to output
func (l *Logger) WithOutput(output io.Writer) *Logger {
	c := l.clone()
	c.output = output
	c.mu = &sync.Mutex{}
	return c
}

// WithName returns a copy with the logger name set
func (l *Logger) WithName(name string) *Logger {
	c := l.clone()
	c.name = name
	return c
}

// WithFields returns a copy adding persistent fields to every entry
func (l *Logger) WithFields(fields Fields) *Logger {
	c := l.clone()
	maps.Copy(c.contextFields, fields)
	return c
}

// Level returns the minimum level
func (l *Logger) Level() Level {
	return l.level
}

// IsLevelEnabled returns true if the given level is enabled
func (l *Logger) IsLevelEnabled(level Level) bool {
	return level.ShouldLog(l.level)
}

// Levelled logging. The *WithErr variants attach err to the entry.
func (l *Logger) Trace(message string, fields ...Fields) { l.log(LevelTrace, message, nil, fields...) }
func (l *Logger) Debug(message string, fields ...Fields) { l.log(LevelDebug, message, nil, fields...) }
func (l *Logger) Info(message string, fields ...Fields)  { l.log(LevelInfo, message, nil, fields...) }
func (l *Logger) Warn(message string, fields ...Fields)  { l.log(LevelWarn, message, nil, fields...) }
func (l *Logger) Error(message string, fields ...Fields) { l.log(LevelError, message, nil, fields...) }

func (l *Logger) WarnWithErr(message string, err error, fields ...Fields) {
	l.log(LevelWarn, message, err, fields...)
}

func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields...)
}

// LogError logs a pkit error at a level derived from its severity
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	var e *mdwerror.Error
	if !errors.As(err, &e) {
		l.log(LevelError, err.Error(), err)
		return
	}

	fields := Fields{
		"error_code":     e.Code().String(),
		"error_severity": e.Severity().String(),
	}
	if op := e.Operation(); op != "" {
		fields["error_operation"] = op
	}
	for k, v := range e.Details() {
		fields["error_"+k] = v
	}

	l.log(severityLevel(e.Severity()), e.Message(), err, fields)
}

// severityLevel maps low to info, medium to warn and the rest to error
func severityLevel(s mdwerror.Severity) Level {
	switch s {
	case mdwerror.SeverityLow:
		return LevelInfo
	case mdwerror.SeverityMedium:
		return LevelWarn
	default:
		return LevelError
	}
}

func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	if !level.ShouldLog(l.level) {
		return
	}

	entry := NewEntry(level, message)
	entry.Logger = l.name
	entry.Error = err
	maps.Copy(entry.Fields, l.contextFields)
	for _, set := range fields {
		maps.Copy(entry.Fields, set)
	}

	line, fmtErr := l.formatter.Format(entry)
	if fmtErr != nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = l.output.Write(line)
}

func (l *Logger) clone() *Logger {
	c := *l
	c.contextFields = maps.Clone(l.contextFields)
	if c.contextFields == nil {
		c.contextFields = Fields{}
	}
	return &c
}

// =============================================================================
// Default logger
// =============================================================================

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(New().WithName("pkit"))
}

// GetDefault returns the process-wide logger
func GetDefault() *Logger {
	return defaultLogger.Load()
}

// SetDefault replaces the process-wide logger and returns the previous one
func SetDefault(logger *Logger) *Logger {
	if logger == nil {
		logger = New()
	}
	return defaultLogger.Swap(logger)
}

// Diagnose reports recoverable misuse detected by library code. It writes a
// warn entry tagged with the module and operation to the default logger.
func Diagnose(module, operation, message string, fields ...Fields) {
	tags := Fields{"module": module, "op": operation}
	GetDefault().Warn(message, append([]Fields{tags}, fields...)...)
}

// Package-level shortcuts for the default logger
func Info(message string, fields ...Fields)  { GetDefault().Info(message, fields...) }
func Warn(message string, fields ...Fields)  { GetDefault().Warn(message, fields...) }
func Debug(message string, fields ...Fields) { GetDefault().Debug(message, fields...) }
