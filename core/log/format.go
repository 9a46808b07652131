// File: format.go
// Title: Log Formatters
// Description: JSON, text and logfmt formatters. Field order is lexical so
//              that output is reproducible.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package log

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Format selects a Formatter
type Format int

const (
	FormatText Format = iota
	FormatJSON
	FormatLogfmt
)

var formatNames = [...]string{
	FormatText:   "text",
	FormatJSON:   "json",
	FormatLogfmt: "logfmt",
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "unknown"
	}
	return formatNames[f]
}

// ParseFormat maps a format name to a Format; the empty name means text
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return FormatText, nil
	}
	for f, n := range formatNames {
		if n == name {
			return Format(f), nil
		}
	}
	return FormatText, &ParseError{Input: s, Type: "format"}
}

// Formatter renders one entry as a single line
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// GetFormatter returns a fresh formatter for format
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return NewJSONFormatter()
	case FormatLogfmt:
		return NewLogfmtFormatter()
	default:
		return NewTextFormatter()
	}
}

// plain turns error values into their message
func plain(v any) any {
	if err, ok := v.(error); ok {
		return err.Error()
	}
	return v
}

// JSONFormatter writes one JSON object per entry
type JSONFormatter struct {
	TimestampFormat string
}

func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{TimestampFormat: time.RFC3339}
}

// Format merges the fields with the fixed keys timestamp, level, message,
// logger and error. A json.Marshaler error adds error_details.
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	doc := make(map[string]any, len(entry.Fields)+5)
	for k, v := range entry.Fields {
		doc[k] = plain(v)
	}
	doc["timestamp"] = entry.Timestamp.Format(f.TimestampFormat)
	doc["level"] = entry.Level.String()
	doc["message"] = entry.Message
	if entry.Logger != "" {
		doc["logger"] = entry.Logger
	}
	if entry.Error != nil {
		doc["error"] = entry.Error.Error()
		if m, ok := entry.Error.(json.Marshaler); ok {
			if raw, err := m.MarshalJSON(); err == nil {
				doc["error_details"] = json.RawMessage(raw)
			}
		}
	}

	line, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	return append(line, '\n'), nil
}

// TextFormatter writes "time [LVL] {logger} message [k=v ...] error=..."
type TextFormatter struct {
	TimestampFormat  string
	DisableTimestamp bool
}

func NewTextFormatter() *TextFormatter {
	return &TextFormatter{TimestampFormat: "15:04:05"}
}

func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var b strings.Builder
	if !f.DisableTimestamp {
		b.WriteString(entry.Timestamp.Format(f.TimestampFormat) + " ")
	}
	b.WriteString("[" + entry.Level.ShortString() + "] ")
	if entry.Logger != "" {
		b.WriteString("{" + entry.Logger + "} ")
	}
	b.WriteString(entry.Message)

	if len(entry.Fields) > 0 {
		pairs := make([]string, 0, len(entry.Fields))
		for _, k := range entry.Fields.SortedKeys() {
			pairs = append(pairs, fmt.Sprintf("%s=%v", k, plain(entry.Fields[k])))
		}
		b.WriteString(" [" + strings.Join(pairs, " ") + "]")
	}
	if entry.Error != nil {
		b.WriteString(" error=" + strconv.Quote(entry.Error.Error()))
	}
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

// LogfmtFormatter writes space separated key=value pairs, quoting text
type LogfmtFormatter struct {
	TimestampFormat string
}

func NewLogfmtFormatter() *LogfmtFormatter {
	return &LogfmtFormatter{TimestampFormat: time.RFC3339}
}

func (f *LogfmtFormatter) Format(entry *Entry) ([]byte, error) {
	pairs := []string{
		"timestamp=" + entry.Timestamp.Format(f.TimestampFormat),
		"level=" + entry.Level.String(),
		"message=" + strconv.Quote(entry.Message),
	}
	if entry.Logger != "" {
		pairs = append(pairs, "logger="+entry.Logger)
	}
	for _, k := range entry.Fields.SortedKeys() {
		if s, ok := plain(entry.Fields[k]).(string); ok {
			pairs = append(pairs, k+"="+strconv.Quote(s))
			continue
		}
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, entry.Fields[k]))
	}
	if entry.Error != nil {
		pairs = append(pairs, "error="+strconv.Quote(entry.Error.Error()))
	}
	return []byte(strings.Join(pairs, " ") + "\n"), nil
}
