package kit

import (
	"regexp"

	"github.com/msto63/pkit/internal/value"
	"github.com/msto63/pkit/utils/stringx"
)

// String wraps a string subject
type String struct {
	s string
}

// Kind returns value.KindText
func (w String) Kind() value.Kind { return value.KindText }

// Unwrap returns the string
func (w String) Unwrap() any { return w.s }

// Value returns the string
func (w String) Value() string { return w.s }

// Call invokes a string table method by name
func (w String) Call(name string, args ...any) (Value, error) {
	return call(w.s, name, args)
}

func (w String) with(s string) String { return String{s: s} }

// Transforms

// ChangeExtension replaces a short trailing extension with ext
func (w String) ChangeExtension(ext string) String { return w.with(stringx.ChangeExtension(w.s, ext)) }

// Reverse reverses the text by runes
func (w String) Reverse() String { return w.with(stringx.Reverse(w.s)) }

// ToTitleCase uppercases the first letter of every word
func (w String) ToTitleCase() String { return w.with(stringx.ToTitleCase(w.s)) }

// ToWordCapitalized uppercases the first letter and lowercases the rest
func (w String) ToWordCapitalized() String { return w.with(stringx.ToWordCapitalized(w.s)) }

// SlashReverse swaps forward and back slashes
func (w String) SlashReverse() String { return w.with(stringx.SlashReverse(w.s)) }

// SlashWin turns every slash into a backslash
func (w String) SlashWin() String { return w.with(stringx.SlashWin(w.s)) }

// SlashLinux turns every backslash into a slash
func (w String) SlashLinux() String { return w.with(stringx.SlashLinux(w.s)) }

// Strip lowercases and drops diacritics and whitespace
func (w String) Strip() String { return w.with(stringx.Strip(w.s)) }

// Latinise removes combining marks
func (w String) Latinise() String { return w.with(stringx.Latinise(w.s)) }

// ToSlug builds a lowercase dash-separated slug
func (w String) ToSlug() String { return w.with(stringx.ToSlug(w.s)) }

// ToCamelCase joins dash or underscore separated words in camel case
func (w String) ToCamelCase() String { return w.with(stringx.ToCamelCase(w.s)) }

// Humanize turns an identifier into a sentence
func (w String) Humanize() String { return w.with(stringx.Humanize(w.s)) }

// Underscore converts camel case to snake case
func (w String) Underscore() String { return w.with(stringx.Underscore(w.s)) }

// EscapeHTML escapes the HTML special characters
func (w String) EscapeHTML() String { return w.with(stringx.EscapeHTML(w.s)) }

// UnescapeHTML reverses EscapeHTML
func (w String) UnescapeHTML() String { return w.with(stringx.UnescapeHTML(w.s)) }

// Ellipsis shortens to total runes, ending in "..."
func (w String) Ellipsis(total int) String { return w.with(stringx.Ellipsis(w.s, total)) }

// Truncate cuts to length runes, appending suffix ("…" by default)
func (w String) Truncate(length int, suffix ...string) String {
	return w.with(stringx.Truncate(w.s, length, suffix...))
}

// SubstringFrom returns the text after start up to stop
func (w String) SubstringFrom(start, stop string) String {
	return w.with(stringx.SubstringFrom(w.s, start, stop))
}

// ReplaceLast replaces the last literal occurrence of search
func (w String) ReplaceLast(search, replacement string) String {
	return w.with(stringx.ReplaceLast(w.s, search, replacement))
}

// ReplaceLastPattern replaces the last match of pattern
func (w String) ReplaceLastPattern(pattern *regexp.Regexp, replacement string) String {
	return w.with(stringx.ReplaceLastPattern(w.s, pattern, replacement))
}

// Hashed returns the non-cryptographic djb2 digest, optionally truncated
func (w String) Hashed(truncateLen ...int) String {
	return w.with(stringx.Hashed(w.s, truncateLen...))
}

// Words splits into runs of word characters
func (w String) Words() Array {
	words := stringx.Words(w.s)
	items := make([]any, len(words))
	for i, word := range words {
		items[i] = word
	}
	return Array{items: items}
}

// Conversions

// ToNumber extracts the first numeric token (NaN if none)
func (w String) ToNumber() Number { return Number{n: stringx.ToNumber(w.s)} }

// ToBoolean interprets yes/no words, falling back to truthiness
func (w String) ToBoolean() bool { return stringx.ToBoolean(w.s) }

// SafeParseJSON parses JSON, keeping the string on failure
func (w String) SafeParseJSON() Value { return Of(stringx.SafeParseJSON(w.s)) }

// NullParseJSON parses JSON, yielding a nil wrapper on failure
func (w String) NullParseJSON() Value { return Of(stringx.NullParseJSON(w.s)) }

// Predicates

// IsJSON reports whether the text is valid JSON
func (w String) IsJSON() bool { return stringx.IsJSON(w.s) }

// IsNumber reports whether the text is a plain decimal number
func (w String) IsNumber() bool { return stringx.IsNumber(w.s) }

// IsFloat reports whether the text is a number with a fraction
func (w String) IsFloat() bool { return stringx.IsFloat(w.s) }

// IsAlphaNumeric reports whether the text is only ASCII letters and digits
func (w String) IsAlphaNumeric() bool { return stringx.IsAlphaNumeric(w.s) }

// IsLower reports whether the text has lowercase but no uppercase letters
func (w String) IsLower() bool { return stringx.IsLower(w.s) }

// IsUpper reports whether the text has uppercase but no lowercase letters
func (w String) IsUpper() bool { return stringx.IsUpper(w.s) }

// IsBlank reports whether the text is empty or whitespace
func (w String) IsBlank() bool { return stringx.IsBlank(w.s) }

// ContainsAny reports whether any needle occurs
func (w String) ContainsAny(needles ...string) bool { return stringx.ContainsAny(w.s, needles...) }

// ContainsAllOf reports whether every needle occurs
func (w String) ContainsAllOf(needles ...string) bool { return stringx.ContainsAllOf(w.s, needles...) }

// StripCompare reports whether other occurs in the text once both are stripped
func (w String) StripCompare(other string) bool { return stringx.StripCompare(w.s, other) }

// FilenameCompare reports whether both paths end in the same segment, ignoring case
func (w String) FilenameCompare(otherPath string) bool { return stringx.FilenameCompare(w.s, otherPath) }

// CompareScore rates in-order character overlap from 0 to 1
func (w String) CompareScore(other string) float64 { return stringx.CompareScore(w.s, other) }

// CountOccurrence counts non-overlapping occurrences of needle
func (w String) CountOccurrence(needle string, caseSensitive ...bool) int {
	return stringx.CountOccurrence(w.s, needle, caseSensitive...)
}
