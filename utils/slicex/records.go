// File: records.go
// Title: Record Array Operations
// Description: Helpers over []any whose items are string-keyed maps. Each
//              helper validates the item shape first and falls back to a
//              zero result with a warn diagnostic when it does not hold.
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
	"slices"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	mdwerrors "github.com/msto63/pkit/core/errors"
	"github.com/msto63/pkit/core/log"
	"github.com/msto63/pkit/internal/value"
	"github.com/msto63/pkit/utils/jsonx"
)

// Record is a single item of a record array.
type Record = map[string]any

// Group is one bucket of AggregateByKey, in first-seen key order.
type Group[R any] struct {
	Key   any
	Value R
}

// records converts items to records. A shape mismatch is reported once and
// yields ok == false.
func records(operation string, items []any) ([]Record, bool) {
	out := make([]Record, len(items))
	for i, item := range items {
		rec, ok := value.AsRecord(item)
		if !ok {
			log.Diagnose(mdwerrors.ModuleSlicex, operation, "array items must be objects",
				log.Int("index", i), log.String("type", value.TypeOf(item)))
			return nil, false
		}
		out[i] = rec
	}
	return out, true
}

// keyFunc projects a single key.
func keyFunc(key string) func(Record) any {
	return func(rec Record) any { return rec[key] }
}

// IsRecordArray reports whether every item is a string-keyed map.
func IsRecordArray(items []any) bool {
	for _, item := range items {
		if _, ok := value.AsRecord(item); !ok {
			return false
		}
	}
	return true
}

// ===============================
// Lookup and Filters
// ===============================

// FindByKey returns the first item whose key strictly equals want. A missing
// key matches a nil want.
func FindByKey(items []any, key string, want any) (any, bool) {
	recs, ok := records("findByKey", items)
	if !ok {
		return nil, false
	}
	for i, rec := range recs {
		if value.StrictEqual(rec[key], want) {
			return items[i], true
		}
	}
	return nil, false
}

// FilterKey keeps the items whose key value satisfies predicate.
func FilterKey(items []any, key string, predicate func(any) bool) []any {
	return filterRecords("filterKey", items, func(rec Record) bool {
		return predicate != nil && predicate(rec[key])
	})
}

// FilterByKeyValue keeps the items whose key strictly equals want.
func FilterByKeyValue(items []any, key string, want any) []any {
	return filterRecords("filterByKeyValue", items, func(rec Record) bool {
		return value.StrictEqual(rec[key], want)
	})
}

// FilterHasKeys keeps the items that define every key.
func FilterHasKeys(items []any, keys ...string) []any {
	return filterRecords("filterHasKeys", items, func(rec Record) bool {
		return hasAll(rec, keys)
	})
}

// FilterExactKeys keeps the items whose key set is exactly keys, in any order.
func FilterExactKeys(items []any, keys ...string) []any {
	want := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		want[k] = struct{}{}
	}
	return filterRecords("filterExactKeys", items, func(rec Record) bool {
		return len(rec) == len(want) && hasAll(rec, keys)
	})
}

// FilterObjectsLike keeps the items that carry every template entry.
func FilterObjectsLike(items []any, template Record) []any {
	return filterRecords("filterObjectsLike", items, func(rec Record) bool {
		for k, v := range template {
			got, ok := rec[k]
			if !ok || !value.StrictEqual(got, v) {
				return false
			}
		}
		return true
	})
}

func filterRecords(operation string, items []any, keep func(Record) bool) []any {
	recs, ok := records(operation, items)
	if !ok {
		return []any{}
	}
	result := make([]any, 0, len(items))
	for i, rec := range recs {
		if keep(rec) {
			result = append(result, items[i])
		}
	}
	return result
}

func hasAll(rec Record, keys []string) bool {
	for _, k := range keys {
		if _, ok := rec[k]; !ok {
			return false
		}
	}
	return true
}

// ===============================
// Projection and Grouping
// ===============================

// MapByKey projects key across all items. Missing keys yield nil.
func MapByKey(items []any, key string) []any {
	recs, ok := records("mapByKey", items)
	if !ok {
		return []any{}
	}
	return Map(recs, keyFunc(key))
}

// GroupByKey buckets items by the display string of their key value.
func GroupByKey(items []any, key string) map[string][]any {
	return GroupByFunc(items, func(rec Record) string { return value.ToString(rec[key]) })
}

// GroupByFunc buckets items by a derived string key.
func GroupByFunc(items []any, fn func(Record) string) map[string][]any {
	groups := make(map[string][]any)
	recs, ok := records("groupBy", items)
	if !ok || fn == nil {
		return groups
	}
	for i, rec := range recs {
		k := fn(rec)
		groups[k] = append(groups[k], items[i])
	}
	return groups
}

// DistinctByKey keeps the first item for each distinct key value.
func DistinctByKey(items []any, key string) []any {
	return Distinct(items, keyFunc(key))
}

// Distinct keeps the first item for each distinct derived key.
func Distinct(items []any, fn func(Record) any) []any {
	recs, ok := records("distinct", items)
	if !ok || fn == nil {
		return []any{}
	}
	seen := value.NewSet()
	result := make([]any, 0, len(items))
	for i, rec := range recs {
		if seen.Add(fn(rec)) {
			result = append(result, items[i])
		}
	}
	return result
}

// AggregateByKey groups items by key and folds each group with reducer,
// starting every group from init.
func AggregateByKey[R any](items []any, key string, reducer func(R, Record) R, init R) []Group[R] {
	return Aggregate(items, keyFunc(key), reducer, init)
}

// Aggregate groups items by a derived key and folds each group with
// reducer. Groups are returned in first-seen order.
func Aggregate[R any](items []any, fn func(Record) any, reducer func(R, Record) R, init R) []Group[R] {
	recs, ok := records("aggregate", items)
	if !ok || fn == nil || reducer == nil {
		return []Group[R]{}
	}
	keys := value.NewSet()
	groups := make([]Group[R], 0)
	for _, rec := range recs {
		k := fn(rec)
		pos, added := keys.Insert(k)
		if added {
			groups = append(groups, Group[R]{Key: k, Value: init})
		}
		g := &groups[pos]
		g.Value = reducer(g.Value, rec)
	}
	return groups
}

// ToTable pivots items into columns: each key maps to the values it takes
// across the items that define it, in item order.
func ToTable(items []any) map[string][]any {
	table := make(map[string][]any)
	recs, ok := records("toTable", items)
	if !ok {
		return table
	}
	for _, rec := range recs {
		for _, k := range sortedKeys(rec) {
			table[k] = append(table[k], rec[k])
		}
	}
	return table
}

// AutoParseKeys returns copies of the items with every string value that
// holds valid JSON replaced by the parsed value.
func AutoParseKeys(items []any) []any {
	recs, ok := records("autoParseKeys", items)
	if !ok {
		return []any{}
	}
	result := make([]any, len(recs))
	for i, rec := range recs {
		parsed := make(Record, len(rec))
		for k, v := range rec {
			if s, isString := v.(string); isString {
				if decoded, err := jsonx.Parse(s); err == nil {
					v = decoded
				}
			}
			parsed[k] = v
		}
		result[i] = parsed
	}
	return result
}

func sortedKeys(rec Record) []string {
	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ===============================
// Numeric Aggregates
// ===============================

// SumByKey adds the numeric values of key. Non-numeric values are skipped.
func SumByKey(items []any, key string) float64 {
	recs, ok := records("sumByKey", items)
	if !ok {
		return 0
	}
	var total float64
	for _, rec := range recs {
		if n, isNum := value.AsNumber(rec[key]); isNum {
			total += n
		}
	}
	return total
}

// SumKey adds the values of key. It returns 0 unless every value is a number.
func SumKey(items []any, key string) float64 {
	return SumBy(items, keyFunc(key))
}

// SumBy adds derived values. It returns 0 unless every value is a number.
func SumBy(items []any, fn func(Record) any) float64 {
	values, ok := numericProjection("sumBy", items, fn)
	if !ok {
		return 0
	}
	return Sum(values)
}

// AverageKey averages the values of key. Empty or non-numeric input yields 0.
func AverageKey(items []any, key string) float64 {
	return AverageBy(items, keyFunc(key))
}

// AverageBy averages derived values. Empty or non-numeric input yields 0.
func AverageBy(items []any, fn func(Record) any) float64 {
	values, ok := numericProjection("averageBy", items, fn)
	if !ok {
		return 0
	}
	return Average(values)
}

func numericProjection(operation string, items []any, fn func(Record) any) ([]float64, bool) {
	recs, ok := records(operation, items)
	if !ok || fn == nil {
		return nil, false
	}
	values := make([]float64, len(recs))
	for i, rec := range recs {
		n, isNum := value.AsNumber(fn(rec))
		if !isNum {
			log.Diagnose(mdwerrors.ModuleSlicex, operation, "value is not a number", log.Int("index", i))
			return nil, false
		}
		values[i] = n
	}
	return values, true
}

// HighestByKey returns the item with the largest numeric key value. The
// first maximum wins and items without a numeric value are ignored.
func HighestByKey(items []any, key string) (any, bool) {
	return extremeByKey("highestByKey", items, key, func(a, b float64) bool { return a > b })
}

// LowestByKey returns the item with the smallest numeric key value.
func LowestByKey(items []any, key string) (any, bool) {
	return extremeByKey("lowestByKey", items, key, func(a, b float64) bool { return a < b })
}

func extremeByKey(operation string, items []any, key string, better func(a, b float64) bool) (any, bool) {
	recs, ok := records(operation, items)
	if !ok {
		return nil, false
	}
	best := -1
	var bestValue float64
	for i, rec := range recs {
		n, isNum := value.AsNumber(rec[key])
		if !isNum || math.IsNaN(n) {
			continue
		}
		if best < 0 || better(n, bestValue) {
			best, bestValue = i, n
		}
	}
	if best < 0 {
		return nil, false
	}
	return items[best], true
}

// ===============================
// Sorting
// ===============================

// SortByKey returns a stably sorted copy ordered by the numeric key value.
// Missing or non-numeric values sort as 0.
func SortByKey(items []any, key string, ascending bool) []any {
	recs, ok := records("sortByKey", items)
	if !ok {
		return []any{}
	}
	numeric := func(i int) float64 {
		n, isNum := value.AsNumber(recs[i][key])
		if !isNum || math.IsNaN(n) {
			return 0
		}
		return n
	}
	return sortedCopy(items, func(i, j int) int {
		c := cmpFloat(numeric(i), numeric(j))
		if !ascending {
			c = -c
		}
		return c
	})
}

// SortByKeyName returns a stably sorted copy ordered by the key value's
// display string under root-locale collation. Missing values sort as "".
func SortByKeyName(items []any, key string, ascending bool) []any {
	recs, ok := records("sortByKeyName", items)
	if !ok {
		return []any{}
	}
	col := collate.New(language.Und)
	text := func(i int) string {
		v, present := recs[i][key]
		if !present || v == nil {
			return ""
		}
		return value.ToString(v)
	}
	return sortedCopy(items, func(i, j int) int {
		c := col.CompareString(text(i), text(j))
		if !ascending {
			c = -c
		}
		return c
	})
}

// sortedCopy stably sorts a copy of items using an index comparator over
// the original positions.
func sortedCopy(items []any, compare func(i, j int) int) []any {
	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, compare)
	result := make([]any, len(items))
	for i, idx := range order {
		result[i] = items[idx]
	}
	return result
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
