package value

import (
	"math"
	"reflect"
)

// StrictEqual compares a and b without coercion between kinds. Numbers of
// any Go type compare by value (NaN never equals itself). Maps, slices,
// functions and channels compare by identity. It never panics.
func StrictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if x, ok := AsNumber(a); ok {
		y, ok := AsNumber(b)
		return ok && x == y
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Type() != rb.Type() {
		return false
	}
	switch ra.Kind() {
	case reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Pointer, reflect.UnsafePointer:
		return identityOf(ra) == identityOf(rb)
	}
	if ra.Comparable() && rb.Comparable() {
		return a == b
	}
	return false
}

type identity struct {
	typ reflect.Type
	ptr uintptr
	len int
}

func identityOf(rv reflect.Value) identity {
	id := identity{typ: rv.Type()}
	switch rv.Kind() {
	case reflect.Map, reflect.Func, reflect.Chan, reflect.Pointer, reflect.UnsafePointer:
		id.ptr = rv.Pointer()
	case reflect.Slice:
		id.ptr = rv.Pointer()
		id.len = rv.Len()
	}
	return id
}

// Set is an insertion-ordered set over arbitrary values using StrictEqual
// semantics, except that NaN is treated as a single value and values that
// Go cannot compare (structs holding slices or maps) match by deep equality.
type Set struct {
	keys   map[any]int
	nan    int
	scan   []int
	values []any
}

// NewSet creates an empty set.
func NewSet() *Set {
	return &Set{keys: make(map[any]int), nan: -1}
}

// Add inserts v and reports whether it was absent.
func (s *Set) Add(v any) bool {
	_, added := s.Insert(v)
	return added
}

// Insert adds v when absent and returns its insertion index either way.
func (s *Set) Insert(v any) (int, bool) {
	if pos := s.Position(v); pos >= 0 {
		return pos, false
	}
	pos := len(s.values)
	switch key, class := setKey(v); class {
	case keyNaN:
		s.nan = pos
	case keyScan:
		s.scan = append(s.scan, pos)
	default:
		s.keys[key] = pos
	}
	s.values = append(s.values, v)
	return pos, true
}

// Has reports whether v is in the set.
func (s *Set) Has(v any) bool {
	return s.Position(v) >= 0
}

// Position returns the insertion index of v, or -1 when absent.
func (s *Set) Position(v any) int {
	key, class := setKey(v)
	switch class {
	case keyNaN:
		return s.nan
	case keyScan:
		for _, pos := range s.scan {
			if reflect.DeepEqual(s.values[pos], v) {
				return pos
			}
		}
		return -1
	}
	if pos, ok := s.keys[key]; ok {
		return pos
	}
	return -1
}

// Len returns the number of distinct values.
func (s *Set) Len() int {
	return len(s.values)
}

// Values returns the distinct values in insertion order.
func (s *Set) Values() []any {
	out := make([]any, len(s.values))
	copy(out, s.values)
	return out
}

type numberKey float64

type keyClass int

const (
	keyHashed keyClass = iota
	keyNaN
	keyScan
)

func setKey(v any) (any, keyClass) {
	if v == nil {
		return nil, keyHashed
	}
	if n, ok := AsNumber(v); ok {
		if math.IsNaN(n) {
			return nil, keyNaN
		}
		return numberKey(n), keyHashed
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Pointer, reflect.UnsafePointer:
		return identityOf(rv), keyHashed
	}
	if rv.Comparable() {
		return v, keyHashed
	}
	return nil, keyScan
}
