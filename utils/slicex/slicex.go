// File: slicex.go
// Title: Generic Slice Operations
// Description: Type-safe helpers over []T shared by the record and loose
//              array operations: filtering, projection, chunking,
//              positional access and numeric aggregation. Results are new
//              slices; inputs are never modified.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package slicex

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Number is any Go integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Clone returns a shallow copy that is never nil.
func Clone[T any](s []T) []T {
	return append(make([]T, 0, len(s)), s...)
}

// Filter keeps the elements matching keep. A nil predicate keeps nothing.
func Filter[T any](s []T, keep func(T) bool) []T {
	out := make([]T, 0, len(s))
	if keep == nil {
		return out
	}
	for _, v := range s {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// Map projects every element through fn.
func Map[T, R any](s []T, fn func(T) R) []R {
	out := make([]R, 0, len(s))
	if fn == nil {
		return out
	}
	for _, v := range s {
		out = append(out, fn(v))
	}
	return out
}

// Chunk cuts s into copies of at most size elements; size < 1 yields none.
func Chunk[T any](s []T, size int) [][]T {
	if size < 1 {
		return [][]T{}
	}
	out := make([][]T, 0, (len(s)+size-1)/size)
	for part := range slices.Chunk(s, size) {
		out = append(out, Clone(part))
	}
	return out
}

// Reverse returns a reversed copy.
func Reverse[T any](s []T) []T {
	out := Clone(s)
	slices.Reverse(out)
	return out
}

// ===============================
// Positional Access
// ===============================

// First returns the first element and whether there was one.
func First[T any](s []T) (T, bool) {
	var zero T
	if len(s) == 0 {
		return zero, false
	}
	return s[0], true
}

// Last returns the last element and whether there was one.
func Last[T any](s []T) (T, bool) {
	var zero T
	if len(s) == 0 {
		return zero, false
	}
	return s[len(s)-1], true
}

// FirstN copies up to n leading elements.
func FirstN[T any](s []T, n int) []T {
	return Clone(s[:clampCount(n, len(s))])
}

// LastN copies up to n trailing elements.
func LastN[T any](s []T, n int) []T {
	return Clone(s[len(s)-clampCount(n, len(s)):])
}

func clampCount(n, length int) int {
	return max(0, min(n, length))
}

// ===============================
// Aggregation
// ===============================

// Sum adds all elements.
func Sum[T Number](s []T) T {
	var total T
	for _, v := range s {
		total += v
	}
	return total
}

// Average returns the arithmetic mean, or 0 for an empty slice.
func Average[T Number](s []T) float64 {
	if len(s) == 0 {
		return 0
	}
	var total float64
	for _, v := range s {
		total += float64(v)
	}
	return total / float64(len(s))
}
