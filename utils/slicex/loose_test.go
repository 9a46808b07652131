// File: loose_test.go
// Title: Unit Tests for Untyped Array Operations
// Description: Tests for strict-equality set operations, shuffling and
//              numeric index lookups, with property checks for the seeded
//              permutation and the highest-number index.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial test implementation

package slicex

import (
	"math"
	"reflect"
	"slices"
	"testing"
	"testing/quick"
)

func TestUniqueAny(t *testing.T) {
	rec := map[string]any{"a": 1}
	got := UniqueAny([]any{1, 1.0, "1", rec, rec, map[string]any{"a": 1}})
	if len(got) != 4 {
		t.Errorf("UniqueAny() = %v, want 4 items", got)
	}
	if got := UniqueAny(nil); got == nil || len(got) != 0 {
		t.Errorf("UniqueAny(nil) = %#v, want empty non-nil", got)
	}
}

func TestIntersectAndDifferenceAny(t *testing.T) {
	a := []any{1, "x", 2.0, nil}
	b := []any{2, nil, "y"}

	if got := IntersectAny(a, b); !reflect.DeepEqual(got, []any{2.0, nil}) {
		t.Errorf("IntersectAny() = %v", got)
	}
	if got := DifferenceAny(a, b); !reflect.DeepEqual(got, []any{1, "x"}) {
		t.Errorf("DifferenceAny() = %v", got)
	}
}

func TestShuffle(t *testing.T) {
	input := []int{1, 2, 3, 4, 5, 6, 7, 8}
	got := Shuffle(input)

	if !slices.Equal(input, []int{1, 2, 3, 4, 5, 6, 7, 8}) {
		t.Error("Shuffle() modified its input")
	}
	if !slices.Equal(slices.Sorted(slices.Values(got)), input) {
		t.Errorf("Shuffle() = %v is not a permutation", got)
	}
}

func TestSeededShuffle(t *testing.T) {
	tests := []struct {
		seed     int64
		expected []int
	}{
		{42, []int{2, 5, 3, 1, 4}},
		{7, []int{1, 3, 5, 2, 4}},
	}
	for _, tt := range tests {
		if got := SeededShuffle([]int{1, 2, 3, 4, 5}, tt.seed); !slices.Equal(got, tt.expected) {
			t.Errorf("SeededShuffle(seed %d) = %v, want %v", tt.seed, got, tt.expected)
		}
	}

	if got := SeededShuffle([]int{}, 1); got == nil || len(got) != 0 {
		t.Errorf("SeededShuffle(empty) = %#v", got)
	}
}

func TestSeededShuffleProperties(t *testing.T) {
	permutation := func(items []int16, seed int64) bool {
		got := SeededShuffle(items, seed)
		a, b := slices.Clone(items), slices.Clone(got)
		slices.Sort(a)
		slices.Sort(b)
		return slices.Equal(a, b)
	}
	if err := quick.Check(permutation, &quick.Config{MaxCount: 300}); err != nil {
		t.Errorf("not a permutation: %v", err)
	}

	deterministic := func(items []string, seed int64) bool {
		return slices.Equal(SeededShuffle(items, seed), SeededShuffle(items, seed))
	}
	if err := quick.Check(deterministic, &quick.Config{MaxCount: 300}); err != nil {
		t.Errorf("not deterministic: %v", err)
	}
}

func TestIndexOfHighestNumber(t *testing.T) {
	tests := []struct {
		name            string
		input           []any
		highest, lowest int
	}{
		{"mixed numeric types", []any{3, 9.5, int64(-2), 9.5}, 1, 2},
		{"single", []any{7}, 0, 0},
		{"empty", []any{}, -1, -1},
		{"non-numeric", []any{1, "2"}, -1, -1},
		{"NaN", []any{1, math.NaN()}, -1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IndexOfHighestNumber(tt.input); got != tt.highest {
				t.Errorf("IndexOfHighestNumber() = %d, want %d", got, tt.highest)
			}
			if got := IndexOfLowestNumber(tt.input); got != tt.lowest {
				t.Errorf("IndexOfLowestNumber() = %d, want %d", got, tt.lowest)
			}
		})
	}
}

func TestIndexOfHighestNumberProperty(t *testing.T) {
	pointsAtMaximum := func(values []float64) bool {
		items := make([]any, 0, len(values))
		for _, v := range values {
			if !math.IsNaN(v) {
				items = append(items, v)
			}
		}
		idx := IndexOfHighestNumber(items)
		if len(items) == 0 {
			return idx == -1
		}
		for _, item := range items {
			if item.(float64) > items[idx].(float64) {
				return false
			}
		}
		return true
	}
	if err := quick.Check(pointsAtMaximum, nil); err != nil {
		t.Error(err)
	}
}

func TestSumAndAverageNumbers(t *testing.T) {
	if got := SumNumbers([]any{1, 2.5, uint8(3)}); got != 6.5 {
		t.Errorf("SumNumbers() = %v, want 6.5", got)
	}
	if got := SumNumbers([]any{1, "2"}); got != 0 {
		t.Errorf("SumNumbers(non-numeric) = %v, want 0", got)
	}
	if got := AverageNumbers([]any{}); got != 0 {
		t.Errorf("AverageNumbers(empty) = %v, want 0", got)
	}
	if got := AverageNumbers([]any{2, 4}); got != 3 {
		t.Errorf("AverageNumbers() = %v, want 3", got)
	}
}
