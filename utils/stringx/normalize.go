// File: normalize.go
// Title: Diacritic Stripping and Slugs
// Description: Canonical decomposition based transforms: Latinise, Strip,
//              StripCompare and ToSlug.
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

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	whitespaceRuns   = regexp.MustCompile(`\s+`)
	slugSeparators   = regexp.MustCompile(`[\s_]+`)
	slugDisallowed   = regexp.MustCompile(`[^a-z0-9-]`)
	repeatedHyphens  = regexp.MustCompile(`-{2,}`)
	compareIgnorable = regexp.MustCompile(`[\s_]`)
)

// Latinise removes combining marks after canonical decomposition, turning
// "Crème" into "Creme". Letters without a decomposition are kept as is.
func Latinise(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Strip lowercases s, removes diacritics and deletes all whitespace.
func Strip(s string) string {
	s = Latinise(strings.ToLower(s))
	return whitespaceRuns.ReplaceAllString(s, "")
}

// StripCompare reports whether other, lowercased with diacritics,
// whitespace and underscores removed, occurs in s transformed the same way.
func StripCompare(s, other string) bool {
	return strings.Contains(compareForm(s), compareForm(other))
}

func compareForm(s string) string {
	return compareIgnorable.ReplaceAllString(Latinise(strings.ToLower(s)), "")
}

// ToSlug builds a URL slug: lowercase, diacritics removed, whitespace and
// underscore runs turned into single hyphens, everything except a-z, 0-9
// and '-' dropped, hyphen runs collapsed and trimmed from both ends.
func ToSlug(s string) string {
	s = Latinise(strings.ToLower(s))
	s = slugSeparators.ReplaceAllString(s, "-")
	s = slugDisallowed.ReplaceAllString(s, "")
	s = repeatedHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
