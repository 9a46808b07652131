package kit

import (
	"github.com/huandu/go-clone"

	"github.com/msto63/pkit/internal/value"
	"github.com/msto63/pkit/utils/slicex"
)

// Array wraps a sequence subject. Item operations expect every element to
// be an object; on other input they return the documented empty result.
type Array struct {
	items []any
}

// Kind returns value.KindSequence
func (w Array) Kind() value.Kind { return value.KindSequence }

// Unwrap returns a deep copy of the items
func (w Array) Unwrap() any { return w.Items() }

// Items returns a deep copy of the items
func (w Array) Items() []any {
	return clone.Clone(slicex.Clone(w.items)).([]any)
}

// Len returns the number of items
func (w Array) Len() int { return len(w.items) }

// Call invokes an array table method by name
func (w Array) Call(name string, args ...any) (Value, error) {
	return call(w.items, name, args)
}

func (w Array) with(items []any) Array { return Array{items: items} }

// detach deep-copies an item handed out by a lookup
func detach(v any, ok bool) (any, bool) {
	if v == nil {
		return nil, ok
	}
	return clone.Clone(v), ok
}

// ===============================
// Positional access
// ===============================

// First returns the first item
func (w Array) First() (any, bool) { return detach(slicex.First(w.items)) }

// Last returns the last item
func (w Array) Last() (any, bool) { return detach(slicex.Last(w.items)) }

// FirstN copies up to n leading items
func (w Array) FirstN(n int) Array { return w.with(slicex.FirstN(w.items, n)) }

// LastN copies up to n trailing items
func (w Array) LastN(n int) Array { return w.with(slicex.LastN(w.items, n)) }

// ===============================
// Record lookups and filters
// ===============================

// FindByKey returns the first item whose key equals want
func (w Array) FindByKey(key string, want any) (any, bool) {
	return detach(slicex.FindByKey(w.items, key, want))
}

// FilterKey keeps the items whose key value satisfies predicate
func (w Array) FilterKey(key string, predicate func(any) bool) Array {
	return w.with(slicex.FilterKey(w.items, key, predicate))
}

// FilterByKeyValue keeps the items whose key strictly equals want
func (w Array) FilterByKeyValue(key string, want any) Array {
	return w.with(slicex.FilterByKeyValue(w.items, key, want))
}

// FilterHasKeys keeps the items that define every key
func (w Array) FilterHasKeys(keys ...string) Array {
	return w.with(slicex.FilterHasKeys(w.items, keys...))
}

// FilterExactKeys keeps the items whose key set is exactly keys
func (w Array) FilterExactKeys(keys ...string) Array {
	return w.with(slicex.FilterExactKeys(w.items, keys...))
}

// FilterObjectsLike keeps the items matching every entry of template
func (w Array) FilterObjectsLike(template map[string]any) Array {
	return w.with(slicex.FilterObjectsLike(w.items, template))
}

// MapByKey projects key across the items
func (w Array) MapByKey(key string) Array {
	return w.with(slicex.MapByKey(w.items, key))
}

// ===============================
// Grouping
// ===============================

// GroupBy buckets the items by the display string of key
func (w Array) GroupBy(key string) Object {
	return groupsObject(slicex.GroupByKey(w.items, key))
}

// GroupByFunc buckets the items by a derived key
func (w Array) GroupByFunc(fn func(map[string]any) string) Object {
	return groupsObject(slicex.GroupByFunc(w.items, fn))
}

func groupsObject(groups map[string][]any) Object {
	obj := make(map[string]any, len(groups))
	for k, g := range groups {
		obj[k] = g
	}
	return newObject(obj, nil)
}

// Distinct keeps the first item per distinct key value
func (w Array) Distinct(key string) Array {
	return w.with(slicex.DistinctByKey(w.items, key))
}

// DistinctBy keeps the first item per distinct derived key
func (w Array) DistinctBy(fn func(map[string]any) any) Array {
	return w.with(slicex.Distinct(w.items, fn))
}

// Aggregate groups by key and folds every group from init, in first-seen
// group order
func (w Array) Aggregate(key string, reducer func(acc any, item map[string]any) any, init any) []slicex.Group[any] {
	groups := slicex.AggregateByKey(w.items, key, func(acc any, r slicex.Record) any { return reducer(acc, r) }, init)
	return clone.Clone(groups).([]slicex.Group[any])
}

// ToTable pivots the items into columns
func (w Array) ToTable() Object {
	table := slicex.ToTable(w.items)
	obj := make(map[string]any, len(table))
	for k, col := range table {
		obj[k] = col
	}
	return newObject(obj, nil)
}

// AutoParseKeys parses every JSON string value of every item
func (w Array) AutoParseKeys() Array {
	return w.with(slicex.AutoParseKeys(w.items))
}

// ===============================
// Aggregates
// ===============================

// SumByKey adds the numeric values of key, skipping the rest
func (w Array) SumByKey(key string) float64 { return slicex.SumByKey(w.items, key) }

// SumKey adds the values of key; 0 unless all are numbers
func (w Array) SumKey(key string) float64 { return slicex.SumKey(w.items, key) }

// AverageKey averages the values of key; 0 when empty
func (w Array) AverageKey(key string) float64 { return slicex.AverageKey(w.items, key) }

// SumBy adds a derived number across the items
func (w Array) SumBy(fn func(map[string]any) any) float64 {
	return slicex.SumBy(w.items, fn)
}

// AverageBy averages a derived number; 0 when empty or non-numeric
func (w Array) AverageBy(fn func(map[string]any) any) float64 {
	return slicex.AverageBy(w.items, fn)
}

// HighestByKey returns the item with the largest numeric key
func (w Array) HighestByKey(key string) (any, bool) {
	return detach(slicex.HighestByKey(w.items, key))
}

// LowestByKey returns the item with the smallest numeric key
func (w Array) LowestByKey(key string) (any, bool) {
	return detach(slicex.LowestByKey(w.items, key))
}

// SortByKey sorts numerically by key, ascending unless ascending is false
func (w Array) SortByKey(key string, ascending ...bool) Array {
	return w.with(slicex.SortByKey(w.items, key, direction(ascending)))
}

// SortByKeyName sorts by the collated string form of key
func (w Array) SortByKeyName(key string, ascending ...bool) Array {
	return w.with(slicex.SortByKeyName(w.items, key, direction(ascending)))
}

func direction(ascending []bool) bool {
	return len(ascending) == 0 || ascending[0]
}

// ===============================
// Loose sequence operations
// ===============================

// Unique drops repeated items, keeping first occurrences
func (w Array) Unique() Array { return w.with(slicex.UniqueAny(w.items)) }

// Shuffle returns the items in random order
func (w Array) Shuffle() Array { return w.with(slicex.Shuffle(w.items)) }

// SeededShuffle returns a permutation that depends only on seed
func (w Array) SeededShuffle(seed int64) Array { return w.with(slicex.SeededShuffle(w.items, seed)) }

// Intersect keeps the items also present in other
func (w Array) Intersect(other []any) Array { return w.with(slicex.IntersectAny(w.items, other)) }

// Difference keeps the items absent from other
func (w Array) Difference(other []any) Array { return w.with(slicex.DifferenceAny(w.items, other)) }

// Reverse reverses the item order
func (w Array) Reverse() Array { return w.with(slicex.Reverse(w.items)) }

// IndexOfHighestNumber returns the index of the largest number, or -1
func (w Array) IndexOfHighestNumber() int { return slicex.IndexOfHighestNumber(w.items) }

// IndexOfLowestNumber returns the index of the smallest number, or -1
func (w Array) IndexOfLowestNumber() int { return slicex.IndexOfLowestNumber(w.items) }

// Sum adds the items; 0 when any is not a number
func (w Array) Sum() float64 { return slicex.SumNumbers(w.items) }

// Average averages the items; 0 when empty or non-numeric
func (w Array) Average() float64 { return slicex.AverageNumbers(w.items) }
