// File: slicex_test.go
// Title: Unit Tests for Generic Slice Operations
// Description: Table tests for the transformation, positional and
//              aggregation helpers over typed slices.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial test implementation

package slicex

import (
	"reflect"
	"slices"
	"strconv"
	"testing"
)

func TestFilterAndMap(t *testing.T) {
	t.Run("filter", func(t *testing.T) {
		got := Filter([]int{1, 2, 3, 4, 5, 6}, func(x int) bool { return x%2 == 0 })
		if !slices.Equal(got, []int{2, 4, 6}) {
			t.Errorf("Filter() = %v, want [2 4 6]", got)
		}
	})

	t.Run("filter nil input", func(t *testing.T) {
		got := Filter(nil, func(int) bool { return true })
		if got == nil || len(got) != 0 {
			t.Errorf("Filter(nil) = %#v, want empty non-nil", got)
		}
	})

	t.Run("nil callbacks", func(t *testing.T) {
		if got := Filter([]int{1}, nil); len(got) != 0 {
			t.Errorf("Filter(nil predicate) = %v", got)
		}
		if got := Map[int, string]([]int{1}, nil); got == nil || len(got) != 0 {
			t.Errorf("Map(nil mapper) = %#v", got)
		}
	})

	t.Run("map", func(t *testing.T) {
		if got := Map([]int{1, 2, 3}, strconv.Itoa); !slices.Equal(got, []string{"1", "2", "3"}) {
			t.Errorf("Map() = %v", got)
		}
	})
}

func TestChunk(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		size     int
		expected [][]int
	}{
		{"even", []int{1, 2, 3, 4}, 2, [][]int{{1, 2}, {3, 4}}},
		{"remainder", []int{1, 2, 3}, 2, [][]int{{1, 2}, {3}}},
		{"empty", []int{}, 3, [][]int{}},
		{"invalid size", []int{1}, 0, [][]int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Chunk(tt.input, tt.size); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Chunk(%v, %d) = %v, want %v", tt.input, tt.size, got, tt.expected)
			}
		})
	}

	input := []int{1, 2, 3}
	Chunk(input, 2)[0][0] = 9
	if input[0] != 1 {
		t.Error("Chunk() shares the input's backing array")
	}
}

func TestReverseAndClone(t *testing.T) {
	input := []int{1, 2, 3}
	if got := Reverse(input); !slices.Equal(got, []int{3, 2, 1}) || input[0] != 1 {
		t.Errorf("Reverse() = %v, input = %v", got, input)
	}

	cloned := Clone(input)
	cloned[0] = 9
	if input[0] != 1 {
		t.Error("Clone() shares backing array")
	}
	if Clone[int](nil) == nil {
		t.Error("Clone(nil) should be empty, not nil")
	}
}

func TestFirstAndLast(t *testing.T) {
	input := []int{1, 2, 3, 4}

	if v, ok := First(input); !ok || v != 1 {
		t.Errorf("First() = %d, %v", v, ok)
	}
	if v, ok := Last(input); !ok || v != 4 {
		t.Errorf("Last() = %d, %v", v, ok)
	}
	if _, ok := First([]int{}); ok {
		t.Error("First(empty) reported ok")
	}
	if _, ok := Last[int](nil); ok {
		t.Error("Last(nil) reported ok")
	}

	tests := []struct {
		n           int
		first, last []int
	}{
		{2, []int{1, 2}, []int{3, 4}},
		{10, []int{1, 2, 3, 4}, []int{1, 2, 3, 4}},
		{0, []int{}, []int{}},
		{-1, []int{}, []int{}},
	}
	for _, tt := range tests {
		if got := FirstN(input, tt.n); !slices.Equal(got, tt.first) {
			t.Errorf("FirstN(%d) = %v, want %v", tt.n, got, tt.first)
		}
		if got := LastN(input, tt.n); !slices.Equal(got, tt.last) {
			t.Errorf("LastN(%d) = %v, want %v", tt.n, got, tt.last)
		}
	}
}

func TestSumAndAverage(t *testing.T) {
	if got := Sum([]int{1, 2, 3}); got != 6 {
		t.Errorf("Sum() = %d, want 6", got)
	}
	if got := Average([]float64{1, 2}); got != 1.5 {
		t.Errorf("Average() = %v, want 1.5", got)
	}
	if got := Average([]int{}); got != 0 {
		t.Errorf("Average(empty) = %v, want 0", got)
	}
}
