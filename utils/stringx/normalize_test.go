package stringx

import (
	"regexp"
	"testing"
	"testing/quick"
)

func TestLatinise(t *testing.T) {
	tests := []struct{ input, expected string }{
		{"Crème Brûlée", "Creme Brulee"},
		{"Ærøskøbing café", "Ærøskøbing cafe"},
		{"naïve", "naive"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := Latinise(tt.input); got != tt.expected {
			t.Errorf("Latinise(%q) = %q; want %q", tt.input, got, tt.expected)
		}
	}
}

func TestStrip(t *testing.T) {
	if got := Strip("  Crème Brûlée \t"); got != "cremebrulee" {
		t.Errorf("Strip = %q", got)
	}
}

func TestStripCompare(t *testing.T) {
	tests := []struct {
		subject, other string
		expected       bool
	}{
		{"Crème_Brûlée", "creme bru", true},
		{"Hello World", "LOWO", true},
		{"abc", "abd", false},
		{"anything", "", true},
	}
	for _, tt := range tests {
		if got := StripCompare(tt.subject, tt.other); got != tt.expected {
			t.Errorf("StripCompare(%q, %q) = %v; want %v", tt.subject, tt.other, got, tt.expected)
		}
	}
}

func TestToSlug(t *testing.T) {
	tests := []struct{ input, expected string }{
		{"Hello World", "hello-world"},
		{"  Hello,  World! Crème_brûlée -- 2024 ", "hello-world-creme-brulee-2024"},
		{"---", ""},
		{"Ünïcödé", "unicode"},
		{"日本語", ""},
	}
	for _, tt := range tests {
		if got := ToSlug(tt.input); got != tt.expected {
			t.Errorf("ToSlug(%q) = %q; want %q", tt.input, got, tt.expected)
		}
	}
}

var slugShape = regexp.MustCompile(`^(?:[a-z0-9]+(?:-[a-z0-9]+)*)?$`)

func TestToSlugShape(t *testing.T) {
	wellFormed := func(s string) bool {
		return slugShape.MatchString(ToSlug(s))
	}
	if err := quick.Check(wellFormed, &quick.Config{MaxCount: 500}); err != nil {
		t.Error(err)
	}
}
