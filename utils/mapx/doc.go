// Package mapx provides shallow object operations over map[string]any.
//
// Package: mapx
// Title: Object Operations for pkit
// Description: Non-recursive transforms of string-keyed objects: key and
//              value mapping, pick/omit, schema filling with optional
//              coercion, strategy-driven merging, best-effort JSON parsing
//              of string fields, and the columnar table inverse.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation
//
// Every function returns a new map and leaves its input untouched, except
// Fill which adds absent keys to its destination in place. Equals is a weak
// comparison: equal key sets with values of the same dynamic type, not equal
// values.
//
// Go maps are unordered, so SortKeys returns an ordered []Entry instead of a
// map.
//
// Usage:
//
//	obj := mapx.EnsureSchema(mapx.Object{"a": "5"},
//		mapx.Object{"a": 1, "b": "x"}, mapx.SchemaOptions{Coerce: true})
//	// obj == {"a": 5.0, "b": "x"}
//
//	merged := mapx.Merge(a, b, mapx.MergeOptions{ArrayStrategy: mapx.ArrayUnique})
package mapx
