package kit

import (
	"slices"

	"github.com/msto63/pkit/internal/value"
	"github.com/msto63/pkit/utils/mapx"
)

// Object wraps a string-keyed map and remembers a key order. New objects
// list their keys in collated order; SortKeys imposes another order that
// later steps keep for the keys they retain.
type Object struct {
	obj  map[string]any
	keys []string
}

// newObject wraps obj, ordering its keys after prev where they appear there
// and in collated order otherwise
func newObject(obj map[string]any, prev []string) Object {
	keys := make([]string, 0, len(obj))
	seen := make(map[string]bool, len(prev))
	for _, k := range prev {
		if _, ok := obj[k]; ok && !seen[k] {
			keys = append(keys, k)
			seen[k] = true
		}
	}
	for _, k := range mapx.SortedKeys(obj) {
		if !seen[k] {
			keys = append(keys, k)
		}
	}
	return Object{obj: obj, keys: keys}
}

// Kind returns value.KindMapping
func (w Object) Kind() value.Kind { return value.KindMapping }

// Unwrap returns a deep copy of the map
func (w Object) Unwrap() any { return w.Map() }

// Map returns a deep copy of the map
func (w Object) Map() map[string]any { return mapx.DeepClone(w.obj) }

// Call invokes an object table method by name
func (w Object) Call(name string, args ...any) (Value, error) {
	return call(w.obj, name, args)
}

func (w Object) with(obj map[string]any) Object { return newObject(obj, w.keys) }

// Keys returns the keys in the wrapper's order
func (w Object) Keys() []string { return slices.Clone(w.keys) }

// Entries returns deep copies of the entries in the wrapper's order
func (w Object) Entries() []mapx.Entry {
	entries := make([]mapx.Entry, len(w.keys))
	for i, k := range w.keys {
		v, _ := detach(w.obj[k], true)
		entries[i] = mapx.Entry{Key: k, Value: v}
	}
	return entries
}

// Get returns a deep copy of the value stored under key
func (w Object) Get(key string) (any, bool) {
	v, ok := w.obj[key]
	return detach(v, ok)
}

// Len returns the number of keys
func (w Object) Len() int { return len(w.obj) }

// SortKeys orders the keys by compare, or collated when compare is nil
func (w Object) SortKeys(compare func(a, b string) int) Object {
	entries := mapx.SortKeys(w.obj, compare)
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}
	return Object{obj: mapx.FromEntries(entries), keys: keys}
}

// ===============================
// Transforms
// ===============================

// KeysMap renames every key with fn
func (w Object) KeysMap(fn func(key string, v any) string) Object {
	return newObject(mapx.KeysMap(w.obj, fn), nil)
}

// ValuesMap replaces every value with fn
func (w Object) ValuesMap(fn func(v any, key string) any) Object {
	return w.with(mapx.ValuesMap(w.obj, fn))
}

// EntriesMap rewrites every entry with fn
func (w Object) EntriesMap(fn func(key string, v any) (string, any)) Object {
	return newObject(mapx.EntriesMap(w.obj, fn), nil)
}

// FilterEntries keeps the entries satisfying predicate
func (w Object) FilterEntries(predicate func(key string, v any) bool) Object {
	return w.with(mapx.FilterEntries(w.obj, predicate))
}

// Pick keeps only keys
func (w Object) Pick(keys ...string) Object { return w.with(mapx.Pick(w.obj, keys...)) }

// Omit drops keys
func (w Object) Omit(keys ...string) Object { return w.with(mapx.Omit(w.obj, keys...)) }

// Clean drops nil and empty-string values
func (w Object) Clean() Object { return w.with(mapx.Clean(w.obj)) }

// Equals compares key sets and per-key value types, not values
func (w Object) Equals(other map[string]any) bool { return mapx.Equals(w.obj, other) }

// Complement adds the keys of source that are absent
func (w Object) Complement(source map[string]any) Object {
	return w.with(mapx.Complement(w.obj, source))
}

// Fill is Complement under its alternative name
func (w Object) Fill(source map[string]any) Object {
	return w.with(mapx.Fill(mapx.Clone(w.obj), source))
}

// EnsureSchema keeps the schema keys, defaulting missing or nil values
func (w Object) EnsureSchema(schema map[string]any, coerce bool) Object {
	return w.with(mapx.EnsureSchema(w.obj, schema, mapx.SchemaOptions{Coerce: coerce}))
}

// Merge merges other into the object; arrays are combined per strategy
func (w Object) Merge(other map[string]any, strategy ...mapx.ArrayStrategy) Object {
	opts := mapx.MergeOptions{ArrayStrategy: mapx.ArrayConcat}
	if len(strategy) > 0 {
		opts.ArrayStrategy = strategy[0]
	}
	return w.with(mapx.Merge(w.obj, other, opts))
}

// ParseKeys JSON-decodes the listed string values that parse
func (w Object) ParseKeys(keys ...string) Object { return w.with(mapx.ParseKeys(w.obj, keys...)) }

// AutoParseKeys JSON-decodes every string value that parses
func (w Object) AutoParseKeys() Object { return w.with(mapx.AutoParseKeys(w.obj)) }
