// File: jsonx.go
// Title: Tolerant JSON Helpers
// Description: The single place where text is parsed as JSON. Parsing never
//              raises: callers receive an ok flag or their own fallback.
//              Numbers decode as float64, objects as map[string]any and arrays
//              as []any. StableStringify renders with sorted object keys for
//              structural comparison.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package jsonx

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/msto63/pkit/core/errors"
)

// Parse decodes s and returns a typed error on failure.
func Parse(s string) (any, error) {
	var out any
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, errors.ParseFailure(errors.ModuleJSONx, "parse", s, err)
	}
	return out, nil
}

// TryParse decodes s and reports whether it was valid JSON.
func TryParse(s string) (any, bool) {
	v, err := Parse(s)
	return v, err == nil
}

// ParseOr decodes s or returns fallback when s is not valid JSON.
func ParseOr(s string, fallback any) any {
	if v, ok := TryParse(s); ok {
		return v
	}
	return fallback
}

// Valid reports whether s is a complete JSON document.
func Valid(s string) bool {
	return json.Valid([]byte(s))
}

// Stringify encodes v without HTML escaping. Unencodable values yield "".
func Stringify(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return ""
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// StableStringify encodes v with object keys in lexical order at every
// depth. encoding/json already sorts map keys, so this normalises values
// that are not maps (structs, typed maps) through a decode round trip.
func StableStringify(v any) (string, bool) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", false
	}
	var normalized any
	if err := json.Unmarshal(raw, &normalized); err != nil {
		return "", false
	}
	s := Stringify(normalized)
	return s, s != ""
}
