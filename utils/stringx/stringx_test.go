// File: stringx_test.go
// Title: Unit Tests for String Operations
// Description: Table tests for substring, truncation, search, replacement
//              and escaping functions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial test implementation

package stringx

import (
	"reflect"
	"regexp"
	"testing"
	"testing/quick"
)

func TestChangeExtension(t *testing.T) {
	tests := []struct {
		name, input, ext, expected string
	}{
		{"simple", "report.txt", "pdf", "report.pdf"},
		{"last extension only", "archive.tar.gz", "z!ip", "archive.tar.zip"},
		{"sanitized and cut", "a.b", "very-long-ext", "a.veryl"},
		{"no extension", "README", "md", "README"},
		{"extension too long", "file.toolongext", "x", "file.toolongext"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChangeExtension(tt.input, tt.ext); got != tt.expected {
				t.Errorf("ChangeExtension(%q, %q) = %q; want %q", tt.input, tt.ext, got, tt.expected)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		length   int
		suffix   []string
		expected string
	}{
		{"default suffix", "abcdef", 3, nil, "abc…"},
		{"fits", "abc", 3, nil, "abc"},
		{"custom suffix", "héllo wörld", 5, []string{"..."}, "héllo..."},
		{"zero length", "abc", 0, nil, "…"},
		{"negative length", "abc", -2, []string{""}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.length, tt.suffix...); got != tt.expected {
				t.Errorf("Truncate(%q, %d) = %q; want %q", tt.input, tt.length, got, tt.expected)
			}
		})
	}
}

func TestEllipsis(t *testing.T) {
	tests := []struct {
		input    string
		total    int
		expected string
	}{
		{"abcdef", 2, "ab"},
		{"abcdef", 3, "abc"},
		{"abcdef", 5, "ab..."},
		{"abcd", 4, "abcd"},
		{"abc", 10, "abc"},
		{"ab", 3, "ab"},
		{"こんにちは世界", 6, "こんに..."},
	}
	for _, tt := range tests {
		if got := Ellipsis(tt.input, tt.total); got != tt.expected {
			t.Errorf("Ellipsis(%q, %d) = %q; want %q", tt.input, tt.total, got, tt.expected)
		}
	}
}

func TestSubstringFrom(t *testing.T) {
	tests := []struct {
		name, input, start, stop, expected string
	}{
		{"between markers", "a=1;b=2", "a=", ";", "1"},
		{"no start", "a=1;b=2", "", "", "a=1;b=2"},
		{"start missing", "a=1;b=2", "x=", ";", ""},
		{"stop missing", "a=1;b=2", "b=", ";", "2"},
		{"no stop", "a=1;b=2", "a=", "", "1;b=2"},
		{"stop before start ignored", ";a=1", "a=", ";", "1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SubstringFrom(tt.input, tt.start, tt.stop); got != tt.expected {
				t.Errorf("SubstringFrom(%q, %q, %q) = %q; want %q", tt.input, tt.start, tt.stop, got, tt.expected)
			}
		})
	}
}

func TestCountOccurrence(t *testing.T) {
	if got := CountOccurrence("aaaa", "aa"); got != 2 {
		t.Errorf("non-overlapping count = %d; want 2", got)
	}
	if got := CountOccurrence("Hello hello", "hello"); got != 1 {
		t.Errorf("case sensitive count = %d; want 1", got)
	}
	if got := CountOccurrence("Hello hello", "hello", false); got != 2 {
		t.Errorf("case insensitive count = %d; want 2", got)
	}
	if got := CountOccurrence("abc", ""); got != 0 {
		t.Errorf("empty needle count = %d; want 0", got)
	}
}

func TestWords(t *testing.T) {
	if got := Words("Hello, world! 42_x"); !reflect.DeepEqual(got, []string{"Hello", "world", "42_x"}) {
		t.Errorf("Words = %q", got)
	}
	got := Words("!!!")
	if got == nil || len(got) != 0 {
		t.Errorf("Words without words = %#v; want empty slice", got)
	}
}

func TestSlashes(t *testing.T) {
	if got := SlashReverse(`a/b\c`); got != `a\b/c` {
		t.Errorf("SlashReverse = %q", got)
	}
	if got := SlashWin("a/b/c"); got != `a\b\c` {
		t.Errorf("SlashWin = %q", got)
	}
	if got := SlashLinux(`a\b/c`); got != "a/b/c" {
		t.Errorf("SlashLinux = %q", got)
	}
}

func TestFilenameCompare(t *testing.T) {
	if !FilenameCompare(`C:\docs\Report.PDF`, "/tmp/report.pdf") {
		t.Error("same file name should compare equal")
	}
	if FilenameCompare("/a/report.pdf", "/a/report.txt") {
		t.Error("different file names should differ")
	}
}

func TestReplaceLast(t *testing.T) {
	if got := ReplaceLast("a-b-c", "-", "+"); got != "a-b+c" {
		t.Errorf("ReplaceLast = %q", got)
	}
	if got := ReplaceLast("abc", "x", "y"); got != "abc" {
		t.Errorf("ReplaceLast without match = %q", got)
	}
	if got := ReplaceLastPattern("x1y22z333", regexp.MustCompile(`\d+`), "#"); got != "x1y22z#" {
		t.Errorf("ReplaceLastPattern = %q", got)
	}
	if got := ReplaceLastPattern("abc", nil, "#"); got != "abc" {
		t.Errorf("ReplaceLastPattern(nil) = %q", got)
	}
}

func TestContains(t *testing.T) {
	if !ContainsAny("foobar", "baz", "bar") {
		t.Error("ContainsAny should find bar")
	}
	if ContainsAny("foobar") {
		t.Error("ContainsAny without needles should be false")
	}
	if !ContainsAnyOf("FooBar", "BAR") {
		t.Error("ContainsAnyOf should ignore case")
	}
	if !ContainsAllOf("Quick Brown Fox", "quick", "FOX") || ContainsAllOf("Quick", "quick", "slow") {
		t.Error("ContainsAllOf mismatch")
	}
}

func TestCompareScore(t *testing.T) {
	if got := CompareScore("hello world", "hlo"); got != 1 {
		t.Errorf("CompareScore = %v; want 1", got)
	}
	if got := CompareScore("abc", "abd"); got != 2.0/3.0 {
		t.Errorf("CompareScore = %v; want 2/3", got)
	}
	if got := CompareScore("abc", ""); got != 0 {
		t.Errorf("CompareScore(empty) = %v; want 0", got)
	}
}

func TestEscapeHTML(t *testing.T) {
	in := `<a href="x">Tom & 'Jerry'</a>`
	want := `&lt;a href=&quot;x&quot;&gt;Tom &amp; &#39;Jerry&#39;&lt;/a&gt;`
	if got := EscapeHTML(in); got != want {
		t.Errorf("EscapeHTML = %q; want %q", got, want)
	}
	if got := UnescapeHTML(want); got != in {
		t.Errorf("UnescapeHTML = %q; want %q", got, in)
	}
	if got := UnescapeHTML("&amp;lt;"); got != "&lt;" {
		t.Errorf("UnescapeHTML must decode a single level, got %q", got)
	}
}

func TestEscapeHTMLRoundTrip(t *testing.T) {
	roundTrip := func(s string) bool {
		return UnescapeHTML(EscapeHTML(s)) == s
	}
	if err := quick.Check(roundTrip, nil); err != nil {
		t.Error(err)
	}
}

func TestReverse(t *testing.T) {
	if got := Reverse("abc"); got != "cba" {
		t.Errorf("Reverse = %q", got)
	}
	if got := Reverse("日本"); got != "本日" {
		t.Errorf("Reverse multibyte = %q", got)
	}
}
