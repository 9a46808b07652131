// Package slicex provides slice and record-array operations.
//
// Package: slicex
// Title: Array Operations for pkit
// Description: Generic helpers over typed slices plus record helpers over
//              []any whose items are map[string]any. Record helpers project
//              a key across every item for filtering, grouping, aggregation
//              and sorting.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation
//
// Invalid input:
//
// Record helpers require every item to be a map[string]any (or another
// string-keyed map). When an item is not, the helper logs a warn diagnostic
// through core/log and returns its zero result instead of panicking:
//
//   - element lookups return (nil, false)
//   - index lookups return -1
//   - aggregates return 0
//   - collection results are empty but non-nil
//
// An empty input is always valid and yields the same zero results without a
// diagnostic. Averages are 0, never NaN.
//
// Equality:
//
// Unique, IntersectAny, DifferenceAny and the key/value filters compare with
// strict equality: numbers by value across Go numeric types, maps and slices
// by identity, never deeply.
//
// Usage:
//
//	items := []any{
//		map[string]any{"t": "a"},
//		map[string]any{"t": "b"},
//		map[string]any{"t": "a"},
//	}
//	groups := slicex.GroupByKey(items, "t") // {"a": [2 items], "b": [1 item]}
//	slicex.SeededShuffle([]any{1, 2, 3}, 42) // same order on every call
package slicex
