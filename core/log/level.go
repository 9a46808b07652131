// File: level.go
// Title: Log Level Definitions
// Description: Defines log levels, their textual forms and parsing.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package log

import "strings"

// Level orders log messages by importance
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal

	// LevelAudit entries are written regardless of the minimum level
	LevelAudit
)

// levelNames holds the long and the three-letter name per level
var levelNames = [...][2]string{
	LevelTrace: {"trace", "TRC"},
	LevelDebug: {"debug", "DBG"},
	LevelInfo:  {"info", "INF"},
	LevelWarn:  {"warn", "WRN"},
	LevelError: {"error", "ERR"},
	LevelFatal: {"fatal", "FTL"},
	LevelAudit: {"audit", "AUD"},
}

func (l Level) valid() bool { return l >= 0 && int(l) < len(levelNames) }

func (l Level) String() string {
	if !l.valid() {
		return "unknown"
	}
	return levelNames[l][0]
}

// ShortString returns the tag the text formatter prints
func (l Level) ShortString() string {
	if !l.valid() {
		return "???"
	}
	return levelNames[l][1]
}

// ShouldLog reports whether l passes the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	return l == LevelAudit || l >= minLevel
}

// ParseLevel accepts either name of a level, case-insensitively, and
// "warning". Unknown input yields LevelWarn and a *ParseError.
func ParseLevel(s string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "warning" {
		return LevelWarn, nil
	}
	for l, names := range levelNames {
		if name == names[0] || strings.EqualFold(name, names[1]) {
			return Level(l), nil
		}
	}
	return LevelWarn, &ParseError{Input: s, Type: "level"}
}

// ParseError reports a level or format name that is not recognised
type ParseError struct {
	Input string
	Type  string
}

func (e *ParseError) Error() string {
	return "log: unknown " + e.Type + " " + strings.TrimSpace(e.Input)
}
