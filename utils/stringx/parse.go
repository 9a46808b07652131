// File: parse.go
// Title: Parsing, Predicates and Hashing
// Description: Tolerant JSON, number and boolean parsing, pattern
//              predicates and the non-cryptographic Hashed digest.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package stringx

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"

	"github.com/msto63/pkit/utils/jsonx"
)

var (
	numberPattern       = regexp.MustCompile(`^\s*[+-]?(?:\d+\.?\d*|\.\d+)\s*$`)
	floatPattern        = regexp.MustCompile(`^\s*[+-]?\d*\.\d+\s*$`)
	alphaNumericPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	nonNumericChars     = regexp.MustCompile(`[^0-9+\-.eE]`)
	numericToken        = regexp.MustCompile(`[+\-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+\-]?\d+)?`)
)

// IsJSON reports whether s parses as JSON.
func IsJSON(s string) bool {
	return jsonx.Valid(s)
}

// SafeParseJSON parses s as JSON and returns s itself when that fails.
func SafeParseJSON(s string) any {
	return jsonx.ParseOr(s, s)
}

// NullParseJSON parses s as JSON and returns nil when that fails or when s
// is blank.
func NullParseJSON(s string) any {
	if IsBlank(s) {
		return nil
	}
	return jsonx.ParseOr(s, nil)
}

// IsNumber reports whether s is a plain decimal number, optionally signed
// and surrounded by whitespace. Exponents are not accepted.
func IsNumber(s string) bool {
	return numberPattern.MatchString(s)
}

// IsFloat reports whether s is a decimal number with a fractional part.
func IsFloat(s string) bool {
	return floatPattern.MatchString(s)
}

// IsAlphaNumeric reports whether s is non-empty and only ASCII letters and digits.
func IsAlphaNumeric(s string) bool {
	return alphaNumericPattern.MatchString(s)
}

// IsLower reports whether s has no uppercase letters and at least one
// lowercase letter.
func IsLower(s string) bool {
	return s == strings.ToLower(s) && strings.IndexFunc(s, unicode.IsLower) >= 0
}

// IsUpper reports whether s has no lowercase letters and at least one
// uppercase letter.
func IsUpper(s string) bool {
	return s == strings.ToUpper(s) && strings.IndexFunc(s, unicode.IsUpper) >= 0
}

// ToNumber extracts the first number found in s, ignoring surrounding
// text such as currency symbols or units. It returns NaN if there is none.
func ToNumber(s string) float64 {
	cleaned := nonNumericChars.ReplaceAllString(s, " ")
	token := numericToken.FindString(cleaned)
	if token == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(token, 64)
	if err != nil && f == 0 {
		return math.NaN()
	}
	return f
}

// ToBoolean maps 1/true/yes/on/y to true and 0/false/no/off/n to false,
// ignoring case and surrounding whitespace. Any other non-blank text is true.
func ToBoolean(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on", "y":
		return true
	case "0", "false", "no", "off", "n", "":
		return false
	}
	return true
}

// Hashed returns the djb2 digest of s as lowercase hex, optionally cut to
// the first truncateLen characters. The digest is computed over UTF-16 code
// units. It is NOT a cryptographic hash and must not be used for security.
func Hashed(s string, truncateLen ...int) string {
	var h uint32 = 5381
	for _, unit := range utf16.Encode([]rune(s)) {
		h = h*33 + uint32(unit)
	}
	out := strconv.FormatUint(uint64(h), 16)
	if len(truncateLen) > 0 {
		n := max(truncateLen[0], 0)
		if n < len(out) {
			out = out[:n]
		}
	}
	return out
}
