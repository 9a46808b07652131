// File: loose.go
// Title: Untyped Array Operations
// Description: Helpers over []any holding mixed values: strict-equality set
//              operations, random and seeded permutation, and numeric
//              aggregation that rejects non-numeric arrays.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package slicex

import (
	"math"
	"math/rand/v2"

	"github.com/msto63/pkit/internal/value"
)

// LCG parameters for SeededShuffle (Numerical Recipes).
const (
	lcgMultiplier = 1664525
	lcgIncrement  = 1013904223
)

// UniqueAny removes duplicates by strict equality, keeping the first
// occurrence.
func UniqueAny(items []any) []any {
	seen := value.NewSet()
	for _, item := range items {
		seen.Add(item)
	}
	return seen.Values()
}

// IntersectAny keeps the items of a that strictly equal some item of b.
func IntersectAny(a, b []any) []any {
	other := value.NewSet()
	for _, item := range b {
		other.Add(item)
	}
	return Filter(a, other.Has)
}

// DifferenceAny keeps the items of a that equal no item of b.
func DifferenceAny(a, b []any) []any {
	other := value.NewSet()
	for _, item := range b {
		other.Add(item)
	}
	return Filter(a, func(item any) bool { return !other.Has(item) })
}

// Shuffle returns a uniformly random permutation of a copy of items.
func Shuffle[T any](items []T) []T {
	result := Clone(items)
	rand.Shuffle(len(result), func(i, j int) {
		result[i], result[j] = result[j], result[i]
	})
	return result
}

// SeededShuffle returns a permutation of a copy of items that depends only
// on seed and len(items). Not suitable for anything security related.
func SeededShuffle[T any](items []T, seed int64) []T {
	result := Clone(items)
	state := uint32(seed)
	for i := len(result) - 1; i > 0; i-- {
		state = lcgMultiplier*state + lcgIncrement
		j := int(state % uint32(i+1))
		result[i], result[j] = result[j], result[i]
	}
	return result
}

// IndexOfHighestNumber returns the index of the first largest number, or -1
// when items is empty or holds a non-numeric value.
func IndexOfHighestNumber(items []any) int {
	return indexOfExtreme(items, func(a, b float64) bool { return a > b })
}

// IndexOfLowestNumber returns the index of the first smallest number, or -1.
func IndexOfLowestNumber(items []any) int {
	return indexOfExtreme(items, func(a, b float64) bool { return a < b })
}

func indexOfExtreme(items []any, better func(a, b float64) bool) int {
	values, ok := numbers(items)
	if !ok || len(values) == 0 {
		return -1
	}
	best := 0
	for i, v := range values[1:] {
		if better(v, values[best]) {
			best = i + 1
		}
	}
	return best
}

// SumNumbers adds items, or returns 0 when any item is not a number.
func SumNumbers(items []any) float64 {
	values, ok := numbers(items)
	if !ok {
		return 0
	}
	return Sum(values)
}

// AverageNumbers averages items, or returns 0 when items is empty or holds
// a non-numeric value.
func AverageNumbers(items []any) float64 {
	values, ok := numbers(items)
	if !ok {
		return 0
	}
	return Average(values)
}

// numbers converts items to float64 values. NaN counts as non-numeric.
func numbers(items []any) ([]float64, bool) {
	values := make([]float64, len(items))
	for i, item := range items {
		n, ok := value.AsNumber(item)
		if !ok || math.IsNaN(n) {
			return nil, false
		}
		values[i] = n
	}
	return values, true
}
