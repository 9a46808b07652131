package registry

import (
	mdwerrors "github.com/msto63/pkit/core/errors"
	"github.com/msto63/pkit/internal/value"
	"github.com/msto63/pkit/utils/mapx"
)

func objectTable(opts Options) *Table {
	t := NewTable(TableObject)

	t.record("keys", "keys in collated order", func(obj map[string]any, _ arguments) (any, error) {
		return mapx.SortedKeys(obj), nil
	})
	t.record("sortKeys", "entries ordered by key", func(obj map[string]any, a arguments) (any, error) {
		var compare func(x, y string) int
		if a.has(0) {
			fn, ok := a.at(0).(func(x, y string) int)
			if !ok {
				return nil, a.invalid(0, "a func(string, string) int")
			}
			compare = fn
		}
		return mapx.SortKeys(obj, compare), nil
	})
	t.record("keysMap", "rename every key", func(obj map[string]any, a arguments) (any, error) {
		fn, ok := a.at(0).(func(key string, v any) string)
		if !ok {
			return nil, a.invalid(0, "a func(string, any) string")
		}
		return mapx.KeysMap(obj, fn), nil
	})
	t.record("valuesMap", "transform every value", func(obj map[string]any, a arguments) (any, error) {
		fn, ok := a.at(0).(func(v any, key string) any)
		if !ok {
			return nil, a.invalid(0, "a func(any, string) any")
		}
		return mapx.ValuesMap(obj, fn), nil
	})
	t.record("entriesMap", "transform every entry", func(obj map[string]any, a arguments) (any, error) {
		fn, ok := a.at(0).(func(key string, v any) (string, any))
		if !ok {
			return nil, a.invalid(0, "a func(string, any) (string, any)")
		}
		return mapx.EntriesMap(obj, fn), nil
	})
	t.record("filterEntries", "keep entries matching a predicate", func(obj map[string]any, a arguments) (any, error) {
		fn, ok := a.at(0).(func(key string, v any) bool)
		if !ok {
			return nil, a.invalid(0, "a func(string, any) bool")
		}
		return mapx.FilterEntries(obj, fn), nil
	})

	t.record("pick", "only the given keys", func(obj map[string]any, a arguments) (any, error) {
		keys, err := a.texts(0)
		if err != nil {
			return nil, err
		}
		return mapx.Pick(obj, keys...), nil
	})
	t.record("omit", "all but the given keys", func(obj map[string]any, a arguments) (any, error) {
		keys, err := a.texts(0)
		if err != nil {
			return nil, err
		}
		return mapx.Omit(obj, keys...), nil
	})
	t.record("clean", "drop null and empty-string values", func(obj map[string]any, _ arguments) (any, error) {
		return mapx.Clean(obj), nil
	})
	t.record("equals", "same keys with same value types", func(obj map[string]any, a arguments) (any, error) {
		other, err := a.record(0)
		if err != nil {
			return nil, err
		}
		return mapx.Equals(obj, other), nil
	})
	t.record("complement", "copy filled from a source without overwriting", func(obj map[string]any, a arguments) (any, error) {
		source, err := a.record(0)
		if err != nil {
			return nil, err
		}
		return mapx.Complement(obj, source), nil
	})
	t.record("fill", "add absent keys from a source", func(obj map[string]any, a arguments) (any, error) {
		source, err := a.record(0)
		if err != nil {
			return nil, err
		}
		return mapx.Fill(mapx.Clone(obj), source), nil
	})
	t.record("ensureSchema", "schema keys with defaults, optionally coerced", func(obj map[string]any, a arguments) (any, error) {
		schema, err := a.record(0)
		if err != nil {
			return nil, err
		}
		coerce, err := a.boolOr(1, false)
		if err != nil {
			return nil, err
		}
		return mapx.EnsureSchema(obj, schema, mapx.SchemaOptions{Coerce: coerce}), nil
	})
	t.record("merge", "shallow merge with an array strategy", func(obj map[string]any, a arguments) (any, error) {
		other, err := a.record(0)
		if err != nil {
			return nil, err
		}
		name, err := a.textOr(1, string(opts.ArrayStrategy))
		if err != nil {
			return nil, err
		}
		strategy, err := mapx.ParseArrayStrategy(name)
		if err != nil {
			return nil, err
		}
		return mapx.Merge(obj, other, mapx.MergeOptions{ArrayStrategy: strategy}), nil
	})
	t.record("parseKeys", "parse the listed JSON string values", func(obj map[string]any, a arguments) (any, error) {
		keys, err := a.texts(0)
		if err != nil {
			return nil, err
		}
		return mapx.ParseKeys(obj, keys...), nil
	})
	t.record("autoParseKeys", "parse every JSON string value", func(obj map[string]any, _ arguments) (any, error) {
		return mapx.AutoParseKeys(obj), nil
	})
	t.record("fromTable", "rows from a columnar table", func(obj map[string]any, a arguments) (any, error) {
		table := make(map[string][]any, len(obj))
		for k, col := range obj {
			items, ok := value.AsSlice(col)
			if !ok {
				return nil, mdwerrors.InvalidInput(mdwerrors.ModuleRegistry, a.op, value.TypeOf(col), "object of arrays")
			}
			table[k] = items
		}
		rows := mapx.FromTable(table)
		out := make([]any, len(rows))
		for i, row := range rows {
			out[i] = row
		}
		return out, nil
	})
	t.record("deepClone", "recursive copy", func(obj map[string]any, _ arguments) (any, error) {
		return mapx.DeepClone(obj), nil
	})

	return t
}
