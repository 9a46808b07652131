// File: mapx.go
// Title: Object Operations
// Description: Key ordering, mapping, selection, comparison and cleanup of
//              map[string]any objects, plus the table-to-records inverse.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package mapx

import (
	"maps"
	"slices"

	"github.com/huandu/go-clone"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/msto63/pkit/internal/value"
)

// Object is a string-keyed map of arbitrary values.
type Object = map[string]any

// Entry is a single key/value pair.
type Entry struct {
	Key   string
	Value any
}

// ===============================
// Keys and Entries
// ===============================

// SortedKeys returns the keys in root-locale collation order.
func SortedKeys(obj Object) []string {
	keys := slices.Collect(maps.Keys(obj))
	col := collate.New(language.Und)
	slices.SortStableFunc(keys, func(a, b string) int {
		if c := col.CompareString(a, b); c != 0 {
			return c
		}
		// collation ties fall back to code point order for determinism
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	})
	return keys
}

// SortKeys returns the entries ordered by compare, or by SortedKeys order
// when compare is nil.
func SortKeys(obj Object, compare func(a, b string) int) []Entry {
	keys := SortedKeys(obj)
	if compare != nil {
		slices.SortStableFunc(keys, compare)
	}
	entries := make([]Entry, len(keys))
	for i, k := range keys {
		entries[i] = Entry{Key: k, Value: obj[k]}
	}
	return entries
}

// FromEntries builds an object from entries. Later entries win.
func FromEntries(entries []Entry) Object {
	out := make(Object, len(entries))
	for _, e := range entries {
		out[e.Key] = e.Value
	}
	return out
}

// KeysMap renames every key with fn. Colliding results keep one value.
func KeysMap(obj Object, fn func(key string, v any) string) Object {
	return EntriesMap(obj, func(k string, v any) (string, any) { return fn(k, v), v })
}

// ValuesMap replaces every value with fn(value, key).
func ValuesMap(obj Object, fn func(v any, key string) any) Object {
	return EntriesMap(obj, func(k string, v any) (string, any) { return k, fn(v, k) })
}

// EntriesMap replaces every entry with the pair returned by fn.
func EntriesMap(obj Object, fn func(key string, v any) (string, any)) Object {
	out := make(Object, len(obj))
	if fn == nil {
		return out
	}
	for _, k := range SortedKeys(obj) {
		nk, nv := fn(k, obj[k])
		out[nk] = nv
	}
	return out
}

// FilterEntries keeps the entries for which predicate holds.
func FilterEntries(obj Object, predicate func(key string, v any) bool) Object {
	out := make(Object)
	if predicate == nil {
		return out
	}
	for k, v := range obj {
		if predicate(k, v) {
			out[k] = v
		}
	}
	return out
}

// ===============================
// Selection
// ===============================

// Pick keeps only the listed keys that exist.
func Pick(obj Object, keys ...string) Object {
	out := make(Object, len(keys))
	for _, k := range keys {
		if v, ok := obj[k]; ok {
			out[k] = v
		}
	}
	return out
}

// Omit drops the listed keys.
func Omit(obj Object, keys ...string) Object {
	out := Clone(obj)
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// Clean drops entries whose value is nil or the empty string.
func Clean(obj Object) Object {
	return FilterEntries(obj, func(_ string, v any) bool {
		if v == nil {
			return false
		}
		s, isString := v.(string)
		return !isString || s != ""
	})
}

// ===============================
// Comparison and Filling
// ===============================

// Equals reports whether a and b have the same keys and each key holds
// values of the same dynamic type. Values themselves are not compared.
func Equals(a, b Object) bool {
	if len(a) != len(b) {
		return false
	}
	for k, va := range a {
		vb, ok := b[k]
		if !ok || value.TypeOf(va) != value.TypeOf(vb) {
			return false
		}
	}
	return true
}

// Complement returns a copy of obj with every key of source that obj lacks.
func Complement(obj, source Object) Object {
	out := Clone(obj)
	Fill(out, source)
	return out
}

// Fill adds every key of source that dst lacks, in place, and returns dst.
// A nil dst yields a new object.
func Fill(dst, source Object) Object {
	if dst == nil {
		dst = make(Object, len(source))
	}
	for k, v := range source {
		if _, ok := dst[k]; !ok {
			dst[k] = v
		}
	}
	return dst
}

// ===============================
// Copying and Tables
// ===============================

// Clone returns a shallow copy that is never nil.
func Clone(obj Object) Object {
	out := make(Object, len(obj))
	maps.Copy(out, obj)
	return out
}

// DeepClone copies obj together with every nested map and slice.
func DeepClone(obj Object) Object {
	if obj == nil {
		return Object{}
	}
	return clone.Clone(obj).(Object)
}

// FromTable turns columns into records. The record count is the longest
// column; shorter columns leave nil values.
func FromTable(table map[string][]any) []Object {
	n := 0
	for _, col := range table {
		n = max(n, len(col))
	}
	out := make([]Object, n)
	for i := range out {
		rec := make(Object, len(table))
		for k, col := range table {
			if i < len(col) {
				rec[k] = col[i]
			} else {
				rec[k] = nil
			}
		}
		out[i] = rec
	}
	return out
}
