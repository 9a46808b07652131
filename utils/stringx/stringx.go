// File: stringx.go
// Title: Core String Functions
// Description: Substring extraction, truncation, searching, replacement,
//              path-separator handling and small helpers shared by the
//              other files of the package.
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
	"unicode/utf8"

	"github.com/huandu/xstrings"
)

// DefaultTruncateSuffix is appended by Truncate when no suffix is given.
const DefaultTruncateSuffix = "…"

var (
	wordPattern      = regexp.MustCompile(`\w+`)
	extensionPattern = regexp.MustCompile(`\.\w{1,5}$`)
	nonWordPattern   = regexp.MustCompile(`\W`)
)

// IsBlank returns true if s is empty or contains only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsNonEmpty returns true if s contains at least one non-whitespace character.
func IsNonEmpty(s string) bool {
	return !IsBlank(s)
}

// FirstNonEmpty returns the first non-empty string, or "" if all are empty.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// PadLeft pads s on the left with pad until it is width runes long.
func PadLeft(s string, width int, pad rune) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return strings.Repeat(string(pad), width-n) + s
}

// Reverse reverses s rune by rune. It is not grapheme aware: combining
// marks end up before their base character.
func Reverse(s string) string {
	return xstrings.Reverse(s)
}

// Words returns every maximal run of word characters in order.
// The result is empty, never nil, when there are none.
func Words(s string) []string {
	found := wordPattern.FindAllString(s, -1)
	if found == nil {
		return []string{}
	}
	return found
}

// SlashReverse swaps every backslash with a slash and vice versa.
func SlashReverse(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\\':
			return '/'
		case '/':
			return '\\'
		}
		return r
	}, s)
}

// SlashWin replaces every slash with a backslash.
func SlashWin(s string) string {
	return strings.ReplaceAll(s, "/", `\`)
}

// SlashLinux replaces every backslash with a slash.
func SlashLinux(s string) string {
	return strings.ReplaceAll(s, `\`, "/")
}

// ChangeExtension replaces a trailing extension of one to five word
// characters with newExt. newExt is reduced to its word characters and cut
// to five of them. Strings without such an extension are returned unchanged.
func ChangeExtension(s, newExt string) string {
	loc := extensionPattern.FindStringIndex(s)
	if loc == nil {
		return s
	}
	ext := nonWordPattern.ReplaceAllString(newExt, "")
	if len(ext) > 5 {
		ext = ext[:5]
	}
	return s[:loc[0]] + "." + ext
}

// Truncate cuts s to length runes and appends suffix when s is longer.
// The suffix defaults to "…". A negative length is treated as zero.
func Truncate(s string, length int, suffix ...string) string {
	sfx := DefaultTruncateSuffix
	if len(suffix) > 0 {
		sfx = suffix[0]
	}
	if length < 0 {
		length = 0
	}
	runes := []rune(s)
	if len(runes) <= length {
		return s
	}
	return string(runes[:length]) + sfx
}

// Ellipsis shortens s to total runes. For total of three or less the first
// total runes are returned without a marker; otherwise s is cut to total-3
// runes followed by "..." when it exceeds total.
func Ellipsis(s string, total int) string {
	runes := []rune(s)
	if total <= 3 {
		if total < 0 {
			total = 0
		}
		if total > len(runes) {
			total = len(runes)
		}
		return string(runes[:total])
	}
	if len(runes) <= total {
		return s
	}
	return string(runes[:total-3]) + "..."
}

// SubstringFrom returns the text after the first start up to the next stop.
// An empty start selects the whole string; an empty or missing stop runs to
// the end. If start is given but absent the result is "".
func SubstringFrom(s, start, stop string) string {
	from := 0
	if start != "" {
		i := strings.Index(s, start)
		if i < 0 {
			return ""
		}
		from = i + len(start)
	}
	rest := s[from:]
	if stop == "" {
		return rest
	}
	if j := strings.Index(rest, stop); j >= 0 {
		return rest[:j]
	}
	return rest
}

// ContainsAny reports whether s contains at least one of needles.
func ContainsAny(s string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

// ContainsAnyOf reports whether s contains any needle, ignoring case.
func ContainsAnyOf(s string, needles ...string) bool {
	lower := strings.ToLower(s)
	for _, n := range needles {
		if strings.Contains(lower, strings.ToLower(n)) {
			return true
		}
	}
	return false
}

// ContainsAllOf reports whether s contains every needle, ignoring case.
// It is true for an empty needle list.
func ContainsAllOf(s string, needles ...string) bool {
	lower := strings.ToLower(s)
	for _, n := range needles {
		if !strings.Contains(lower, strings.ToLower(n)) {
			return false
		}
	}
	return true
}

// CompareScore returns the fraction of other's runes found in s in order,
// ignoring case. Identical strings score 1, an empty other scores 0.
func CompareScore(s, other string) float64 {
	needle := []rune(strings.ToLower(other))
	if len(needle) == 0 {
		return 0
	}
	matched := 0
	for _, r := range strings.ToLower(s) {
		if matched < len(needle) && r == needle[matched] {
			matched++
		}
	}
	return float64(matched) / float64(len(needle))
}

// CountOccurrence counts non-overlapping occurrences of needle. Matching is
// case sensitive unless caseSensitive is given as false. An empty needle
// counts zero.
func CountOccurrence(s, needle string, caseSensitive ...bool) int {
	if needle == "" {
		return 0
	}
	if len(caseSensitive) > 0 && !caseSensitive[0] {
		s = strings.ToLower(s)
		needle = strings.ToLower(needle)
	}
	return strings.Count(s, needle)
}

// ReplaceLast replaces the last literal occurrence of search.
func ReplaceLast(s, search, replacement string) string {
	i := strings.LastIndex(s, search)
	if i < 0 {
		return s
	}
	return s[:i] + replacement + s[i+len(search):]
}

// ReplaceLastPattern replaces the last match of pattern. The replacement is
// inserted literally.
func ReplaceLastPattern(s string, pattern *regexp.Regexp, replacement string) string {
	if pattern == nil {
		return s
	}
	matches := pattern.FindAllStringIndex(s, -1)
	if len(matches) == 0 {
		return s
	}
	last := matches[len(matches)-1]
	return s[:last[0]] + replacement + s[last[1]:]
}

// FilenameCompare reports whether two paths share the same final segment,
// ignoring case. Backslashes count as separators.
func FilenameCompare(s, otherPath string) bool {
	return strings.EqualFold(lastSegment(s), lastSegment(otherPath))
}

func lastSegment(p string) string {
	p = SlashLinux(p)
	if i := strings.LastIndex(p, "/"); i >= 0 {
		return p[i+1:]
	}
	return p
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

var htmlUnescaper = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&amp;", "&",
)

// EscapeHTML replaces the five markup-significant characters with entities.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// UnescapeHTML reverses EscapeHTML.
func UnescapeHTML(s string) string {
	return htmlUnescaper.Replace(s)
}
