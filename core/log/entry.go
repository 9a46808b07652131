// File: entry.go
// Title: Log Entry and Fields
// Description: Log entry structure and typed field constructors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package log

import (
	"maps"
	"slices"
	"time"
)

// Entry is one record handed to a Formatter
type Entry struct {
	Timestamp time.Time
	Level     Level
	Message   string
	Logger    string
	Fields    Fields
	Error     error
}

// NewEntry stamps a new entry with the current time
func NewEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    Fields{},
	}
}

// Fields are the structured key-value pairs of an entry
type Fields map[string]any

// Field constructors. Each returns a one-pair Fields for the variadic
// logging calls.
func Field(key string, v any) Fields       { return Fields{key: v} }
func Int(key string, v int) Fields         { return Fields{key: v} }
func Float64(key string, v float64) Fields { return Fields{key: v} }
func String(key string, v string) Fields   { return Fields{key: v} }
func Bool(key string, v bool) Fields       { return Fields{key: v} }
func Any(key string, v any) Fields         { return Fields{key: v} }
func Err(err error) Fields                 { return Fields{"error": err} }

// Merge returns a new Fields holding f and other; other wins on conflicts
func (f Fields) Merge(other Fields) Fields {
	out := make(Fields, len(f)+len(other))
	maps.Copy(out, f)
	maps.Copy(out, other)
	return out
}

// SortedKeys returns the field names in lexical order
func (f Fields) SortedKeys() []string {
	return slices.Sorted(maps.Keys(f))
}
