package registry

import (
	"regexp"

	mdwerrors "github.com/msto63/pkit/core/errors"
	"github.com/msto63/pkit/internal/value"
	"github.com/msto63/pkit/utils/slicex"
)

// arguments gives typed, position-checked access to a method's args.
// Positions in errors are 1-based.
type arguments struct {
	op   string
	list []any
}

func (a arguments) invalid(i int, expected string) error {
	return mdwerrors.InvalidArgument(mdwerrors.ModuleRegistry, a.op, i+1, expected)
}

func (a arguments) has(i int) bool {
	return i < len(a.list) && a.list[i] != nil
}

func (a arguments) text(i int) (string, error) {
	if i >= len(a.list) {
		return "", a.invalid(i, "a string")
	}
	if s, ok := a.list[i].(string); ok {
		return s, nil
	}
	return "", a.invalid(i, "a string")
}

func (a arguments) textOr(i int, def string) (string, error) {
	if !a.has(i) {
		return def, nil
	}
	return a.text(i)
}

// texts collects every argument from position i on as strings. A single
// array argument is flattened.
func (a arguments) texts(i int) ([]string, error) {
	rest := a.list[min(i, len(a.list)):]
	if len(rest) == 1 {
		if items, ok := value.AsSlice(rest[0]); ok && value.KindOf(rest[0]) == value.KindSequence {
			rest = items
		}
	}
	out := make([]string, len(rest))
	for j, v := range rest {
		s, ok := v.(string)
		if !ok {
			return nil, a.invalid(i+j, "a string")
		}
		out[j] = s
	}
	return out, nil
}

func (a arguments) number(i int) (float64, error) {
	if i < len(a.list) {
		if f, ok := value.AsNumber(a.list[i]); ok {
			return f, nil
		}
	}
	return 0, a.invalid(i, "a number")
}

func (a arguments) numberOr(i int, def float64) (float64, error) {
	if !a.has(i) {
		return def, nil
	}
	return a.number(i)
}

func (a arguments) integer(i int) (int, error) {
	f, err := a.number(i)
	if err != nil {
		return 0, a.invalid(i, "an integer")
	}
	return int(f), nil
}

func (a arguments) integerOr(i int, def int) (int, error) {
	if !a.has(i) {
		return def, nil
	}
	return a.integer(i)
}

func (a arguments) boolOr(i int, def bool) (bool, error) {
	if !a.has(i) {
		return def, nil
	}
	if b, ok := a.list[i].(bool); ok {
		return b, nil
	}
	return false, a.invalid(i, "a boolean")
}

func (a arguments) at(i int) any {
	if i >= len(a.list) {
		return nil
	}
	return a.list[i]
}

func (a arguments) slice(i int) ([]any, error) {
	if i < len(a.list) {
		if items, ok := value.AsSlice(a.list[i]); ok {
			return items, nil
		}
	}
	return nil, a.invalid(i, "an array")
}

func (a arguments) record(i int) (map[string]any, error) {
	if i < len(a.list) {
		if obj, ok := value.AsRecord(a.list[i]); ok {
			return obj, nil
		}
	}
	return nil, a.invalid(i, "an object")
}

// keyFunc accepts a key name or a function deriving the key from an item
func (a arguments) keyFunc(i int) (func(slicex.Record) any, error) {
	switch fn := a.at(i).(type) {
	case string:
		return func(r slicex.Record) any { return r[fn] }, nil
	case func(map[string]any) any:
		return fn, nil
	case func(map[string]any) string:
		return func(r slicex.Record) any { return fn(r) }, nil
	}
	return nil, a.invalid(i, "a key or a func(map[string]any) any")
}

func (a arguments) predicate(i int) (func(any) bool, error) {
	if fn, ok := a.at(i).(func(any) bool); ok {
		return fn, nil
	}
	return nil, a.invalid(i, "a func(any) bool")
}

func (a arguments) callback(i int) (func(int), error) {
	if fn, ok := a.at(i).(func(int)); ok {
		return fn, nil
	}
	return nil, a.invalid(i, "a func(int)")
}

// pattern accepts a compiled expression or a literal string
func (a arguments) pattern(i int) (*regexp.Regexp, string, error) {
	switch p := a.at(i).(type) {
	case *regexp.Regexp:
		return p, "", nil
	case string:
		return nil, p, nil
	}
	return nil, "", a.invalid(i, "a string or *regexp.Regexp")
}

// ===============================
// Subject adapters
// ===============================

func subjectText(op string, subject any) (string, error) {
	if s, ok := subject.(string); ok {
		return s, nil
	}
	if value.KindOf(subject) == value.KindText {
		return value.ToString(subject), nil
	}
	return "", mdwerrors.InvalidInput(mdwerrors.ModuleRegistry, op, value.TypeOf(subject), "string")
}

func subjectNumber(op string, subject any) (float64, error) {
	if f, ok := value.AsNumber(subject); ok {
		return f, nil
	}
	return 0, mdwerrors.InvalidInput(mdwerrors.ModuleRegistry, op, value.TypeOf(subject), "number")
}

func subjectSlice(op string, subject any) ([]any, error) {
	if items, ok := value.AsSlice(subject); ok {
		return items, nil
	}
	return nil, mdwerrors.InvalidInput(mdwerrors.ModuleRegistry, op, value.TypeOf(subject), "array")
}

func subjectRecord(op string, subject any) (map[string]any, error) {
	if obj, ok := value.AsRecord(subject); ok {
		return obj, nil
	}
	return nil, mdwerrors.InvalidInput(mdwerrors.ModuleRegistry, op, value.TypeOf(subject), "object")
}

type (
	textFunc   func(s string, args arguments) (any, error)
	numberFunc func(n float64, args arguments) (any, error)
	sliceFunc  func(items []any, args arguments) (any, error)
	recordFunc func(obj map[string]any, args arguments) (any, error)
	staticFunc func(args arguments) (any, error)
)

func (t *Table) text(name, doc string, fn textFunc) {
	t.Register(name, doc, func(subject any, args ...any) (any, error) {
		s, err := subjectText(name, subject)
		if err != nil {
			return nil, err
		}
		return fn(s, arguments{op: name, list: args})
	})
}

func (t *Table) number(name, doc string, fn numberFunc) {
	t.Register(name, doc, func(subject any, args ...any) (any, error) {
		n, err := subjectNumber(name, subject)
		if err != nil {
			return nil, err
		}
		return fn(n, arguments{op: name, list: args})
	})
}

func (t *Table) slice(name, doc string, fn sliceFunc) {
	t.Register(name, doc, func(subject any, args ...any) (any, error) {
		items, err := subjectSlice(name, subject)
		if err != nil {
			return nil, err
		}
		return fn(items, arguments{op: name, list: args})
	})
}

func (t *Table) record(name, doc string, fn recordFunc) {
	t.Register(name, doc, func(subject any, args ...any) (any, error) {
		obj, err := subjectRecord(name, subject)
		if err != nil {
			return nil, err
		}
		return fn(obj, arguments{op: name, list: args})
	})
}

func (t *Table) static(name, doc string, fn staticFunc) {
	t.Register(name, doc, func(_ any, args ...any) (any, error) {
		return fn(arguments{op: name, list: args})
	})
}
