package registry

import (
	mdwerrors "github.com/msto63/pkit/core/errors"
	"github.com/msto63/pkit/internal/value"
	"github.com/msto63/pkit/utils/mapx"
	"github.com/msto63/pkit/utils/slicex"
)

func arrayTable(opts Options) *Table {
	t := NewTable(TableArray)

	t.slice("first", "first element, or the first n elements", func(items []any, a arguments) (any, error) {
		n, err := a.integerOr(0, 1)
		if err != nil {
			return nil, err
		}
		if n == 1 {
			v, _ := slicex.First(items)
			return v, nil
		}
		return slicex.FirstN(items, n), nil
	})
	t.slice("last", "last element, or the last n elements", func(items []any, a arguments) (any, error) {
		n, err := a.integerOr(0, 1)
		if err != nil {
			return nil, err
		}
		if n == 1 {
			v, _ := slicex.Last(items)
			return v, nil
		}
		return slicex.LastN(items, n), nil
	})

	// Record lookups and filters
	t.slice("findByKey", "first item whose key equals a value", func(items []any, a arguments) (any, error) {
		key, err := a.text(0)
		if err != nil {
			return nil, err
		}
		v, _ := slicex.FindByKey(items, key, a.at(1))
		return v, nil
	})
	t.slice("filterKey", "items whose key value satisfies a predicate", func(items []any, a arguments) (any, error) {
		key, err := a.text(0)
		if err != nil {
			return nil, err
		}
		pred, err := a.predicate(1)
		if err != nil {
			return nil, err
		}
		return slicex.FilterKey(items, key, pred), nil
	})
	t.slice("filterByKeyValue", "items whose key equals a value", func(items []any, a arguments) (any, error) {
		key, err := a.text(0)
		if err != nil {
			return nil, err
		}
		return slicex.FilterByKeyValue(items, key, a.at(1)), nil
	})
	t.slice("filterHasKeys", "items defining every key", func(items []any, a arguments) (any, error) {
		keys, err := a.texts(0)
		if err != nil {
			return nil, err
		}
		return slicex.FilterHasKeys(items, keys...), nil
	})
	t.slice("filterExactKeys", "items with exactly the key set", func(items []any, a arguments) (any, error) {
		keys, err := a.texts(0)
		if err != nil {
			return nil, err
		}
		return slicex.FilterExactKeys(items, keys...), nil
	})
	t.slice("filterObjectsLike", "items matching every template entry", func(items []any, a arguments) (any, error) {
		template, err := a.record(0)
		if err != nil {
			return nil, err
		}
		return slicex.FilterObjectsLike(items, template), nil
	})
	t.slice("mapByKey", "project a key", func(items []any, a arguments) (any, error) {
		key, err := a.text(0)
		if err != nil {
			return nil, err
		}
		return slicex.MapByKey(items, key), nil
	})

	// Grouping
	t.slice("groupBy", "bucket items by a key or derived key", func(items []any, a arguments) (any, error) {
		fn, err := a.keyFunc(0)
		if err != nil {
			return nil, err
		}
		groups := slicex.GroupByFunc(items, func(r slicex.Record) string { return value.ToString(fn(r)) })
		out := make(map[string]any, len(groups))
		for k, g := range groups {
			out[k] = g
		}
		return out, nil
	})
	t.slice("distinct", "first item per distinct key", func(items []any, a arguments) (any, error) {
		fn, err := a.keyFunc(0)
		if err != nil {
			return nil, err
		}
		return slicex.Distinct(items, fn), nil
	})
	t.slice("aggregate", "group by key then fold each group", func(items []any, a arguments) (any, error) {
		fn, err := a.keyFunc(0)
		if err != nil {
			return nil, err
		}
		reducer, ok := a.at(1).(func(any, map[string]any) any)
		if !ok {
			return nil, a.invalid(1, "a func(any, map[string]any) any")
		}
		groups := slicex.Aggregate(items, fn, func(acc any, r slicex.Record) any { return reducer(acc, r) }, a.at(2))
		out := make(map[string]any, len(groups))
		for _, g := range groups {
			out[value.ToString(g.Key)] = g.Value
		}
		return out, nil
	})
	t.slice("toTable", "pivot items into columns", func(items []any, _ arguments) (any, error) {
		table := slicex.ToTable(items)
		out := make(map[string]any, len(table))
		for k, col := range table {
			out[k] = col
		}
		return out, nil
	})
	t.slice("autoParseKeys", "parse JSON string values of every item", func(items []any, _ arguments) (any, error) {
		return slicex.AutoParseKeys(items), nil
	})
	t.slice("parseJSONProperties", "parse JSON string values of every item", func(items []any, a arguments) (any, error) {
		objs := make([]mapx.Object, len(items))
		for i, item := range items {
			obj, ok := value.AsRecord(item)
			if !ok {
				return nil, mdwerrors.InvalidInput(mdwerrors.ModuleRegistry, a.op, value.TypeOf(item), "array of objects")
			}
			objs[i] = obj
		}
		parsed := mapx.ParseJSONProperties(objs)
		out := make([]any, len(parsed))
		for i, obj := range parsed {
			out[i] = obj
		}
		return out, nil
	})

	// Aggregates
	keyed := func(name, doc string, fn func([]any, string) float64) {
		t.slice(name, doc, func(items []any, a arguments) (any, error) {
			key, err := a.text(0)
			if err != nil {
				return nil, err
			}
			return fn(items, key), nil
		})
	}
	keyed("sumByKey", "sum of numeric key values, skipping others", slicex.SumByKey)
	keyed("sumKey", "sum of a numeric key", slicex.SumKey)
	keyed("averageKey", "mean of a numeric key, 0 when empty", slicex.AverageKey)

	derived := func(name, doc string, fn func([]any, func(slicex.Record) any) float64) {
		t.slice(name, doc, func(items []any, a arguments) (any, error) {
			f, err := a.keyFunc(0)
			if err != nil {
				return nil, err
			}
			return fn(items, f), nil
		})
	}
	derived("sumBy", "sum of a key or derived number", slicex.SumBy)
	derived("averageBy", "mean of a key or derived number, 0 when empty", slicex.AverageBy)

	extreme := func(name, doc string, fn func([]any, string) (any, bool)) {
		t.slice(name, doc, func(items []any, a arguments) (any, error) {
			key, err := a.text(0)
			if err != nil {
				return nil, err
			}
			v, _ := fn(items, key)
			return v, nil
		})
	}
	extreme("highestByKey", "item with the largest numeric key", slicex.HighestByKey)
	extreme("lowestByKey", "item with the smallest numeric key", slicex.LowestByKey)

	sorter := func(name, doc string, fn func([]any, string, bool) []any) {
		t.slice(name, doc, func(items []any, a arguments) (any, error) {
			key, err := a.text(0)
			if err != nil {
				return nil, err
			}
			asc, err := a.boolOr(1, opts.SortAscending)
			if err != nil {
				return nil, err
			}
			return fn(items, key, asc), nil
		})
	}
	sorter("sortByKey", "stable numeric sort by key", slicex.SortByKey)
	sorter("sortByKeyName", "stable collated sort by key", slicex.SortByKeyName)

	// Loose sequence operations
	t.slice("unique", "drop repeated values", func(items []any, _ arguments) (any, error) {
		return slicex.UniqueAny(items), nil
	})
	t.slice("shuffle", "random permutation", func(items []any, _ arguments) (any, error) {
		return slicex.Shuffle(items), nil
	})
	t.slice("seededShuffle", "deterministic permutation for a seed", func(items []any, a arguments) (any, error) {
		seed, err := a.integer(0)
		if err != nil {
			return nil, err
		}
		return slicex.SeededShuffle(items, int64(seed)), nil
	})
	set := func(name, doc string, fn func(a, b []any) []any) {
		t.slice(name, doc, func(items []any, a arguments) (any, error) {
			other, err := a.slice(0)
			if err != nil {
				return nil, err
			}
			return fn(items, other), nil
		})
	}
	set("intersect", "values also in other", slicex.IntersectAny)
	set("difference", "values not in other", slicex.DifferenceAny)

	t.slice("indexOfHighestNumber", "index of the largest number or -1", func(items []any, _ arguments) (any, error) {
		return slicex.IndexOfHighestNumber(items), nil
	})
	t.slice("indexOfLowestNumber", "index of the smallest number or -1", func(items []any, _ arguments) (any, error) {
		return slicex.IndexOfLowestNumber(items), nil
	})
	t.slice("sum", "sum of numeric values", func(items []any, _ arguments) (any, error) {
		return slicex.SumNumbers(items), nil
	})
	t.slice("average", "mean of numeric values", func(items []any, _ arguments) (any, error) {
		return slicex.AverageNumbers(items), nil
	})
	t.slice("chunk", "split into slices of size", func(items []any, a arguments) (any, error) {
		size, err := a.integer(0)
		if err != nil {
			return nil, err
		}
		chunks := slicex.Chunk(items, size)
		out := make([]any, len(chunks))
		for i, c := range chunks {
			out[i] = c
		}
		return out, nil
	})
	t.slice("reverse", "reversed copy", func(items []any, _ arguments) (any, error) {
		return slicex.Reverse(items), nil
	})

	return t
}
