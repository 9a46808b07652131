// File: case.go
// Title: Case Conversion
// Description: Title case, camel case, sentence humanizing and underscore
//              conversion.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package stringx

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	camelSeparator  = regexp.MustCompile(`[-_][A-Za-z]`)
	lowerUpperPair  = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	dashUnderscores = regexp.MustCompile(`[-_]+`)
	multiSpace      = regexp.MustCompile(`\s{2,}`)
	sentenceStart   = regexp.MustCompile(`^\w|[.!?]\s+\w`)
	spaceDashRuns   = regexp.MustCompile(`[\s-]+`)
)

// ToTitleCase uppercases the first character of every run of word
// characters and lowercases the rest of the run.
func ToTitleCase(s string) string {
	return wordPattern.ReplaceAllStringFunc(s, capitalize)
}

// ToWordCapitalized uppercases the first character of s and lowercases the rest.
func ToWordCapitalized(s string) string {
	return capitalize(s)
}

func capitalize(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if size == 0 {
		return w
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
}

// ToCamelCase removes each '-' or '_' that precedes a letter and uppercases
// that letter: "hello-world" becomes "helloWorld".
func ToCamelCase(s string) string {
	return camelSeparator.ReplaceAllStringFunc(s, func(m string) string {
		return strings.ToUpper(m[1:])
	})
}

// Humanize turns identifiers into a sentence: camel-case boundaries and
// dash/underscore runs become single spaces, and the first letter of the
// text and of every sentence is uppercased.
func Humanize(s string) string {
	s = lowerUpperPair.ReplaceAllString(s, "$1 $2")
	s = dashUnderscores.ReplaceAllString(s, " ")
	s = multiSpace.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	return sentenceStart.ReplaceAllStringFunc(s, strings.ToUpper)
}

// Underscore converts camel case and whitespace or dash runs to lower
// snake case.
func Underscore(s string) string {
	s = lowerUpperPair.ReplaceAllString(s, "${1}_${2}")
	s = spaceDashRuns.ReplaceAllString(s, "_")
	return strings.ToLower(s)
}
