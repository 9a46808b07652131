// ============================================================================
// pkit - Primitive Toolkit
// ============================================================================
//
// Package:     kit
// Description: Non-mutating chainable wrappers over strings, numbers,
//              arrays and objects, plus the math, path and assert namespaces
// Author:      msto63
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package kit

import (
	"fmt"
	"strings"

	"github.com/huandu/go-clone"

	"github.com/msto63/pkit/core/assert"
	"github.com/msto63/pkit/internal/value"
	"github.com/msto63/pkit/pkg/registry"
	"github.com/msto63/pkit/utils/mapx"
)

// Value is implemented by every wrapper
type Value interface {
	// Kind reports which method table serves the wrapped value
	Kind() value.Kind

	// Unwrap ends a chain and returns the wrapped value
	Unwrap() any

	// Call invokes a method of the built-in table for this kind by name
	// and wraps the result
	Call(name string, args ...any) (Value, error)
}

// Of wraps v according to its kind. Arrays and objects are deep-copied so
// later changes to v do not reach the wrapper.
func Of(v any) Value {
	switch value.KindOf(v) {
	case value.KindText:
		return String{s: value.ToString(v)}
	case value.KindNumber:
		n, _ := value.AsNumber(v)
		return Number{n: n}
	case value.KindSequence:
		items, _ := value.AsSlice(v)
		return Array{items: clone.Clone(items).([]any)}
	case value.KindMapping:
		obj, _ := value.AsRecord(v)
		return newObject(mapx.DeepClone(obj), nil)
	default:
		return Other{v: v}
	}
}

func call(subject any, name string, args []any) (Value, error) {
	out, err := registry.Call(subject, name, args...)
	if err != nil {
		return nil, err
	}
	return Of(out), nil
}

// Other wraps a value no method table serves
type Other struct {
	v any
}

// Kind returns value.KindOther
func (o Other) Kind() value.Kind { return value.KindOther }

// Unwrap returns the wrapped value
func (o Other) Unwrap() any { return o.v }

// Call always fails with an invalid input error
func (o Other) Call(name string, args ...any) (Value, error) {
	return call(o.v, name, args)
}

// ===============================
// Installation and help
// ===============================

// Install installs the built-in method tables into the process registry.
// Only the first call has an effect.
func Install(opts ...registry.Options) int {
	return registry.InstallBuiltins(opts...)
}

// Help lists the installed methods per table
func Help() string {
	registry.InstallBuiltins()
	r := registry.Global()
	listing := r.Listing()

	var b strings.Builder
	for _, name := range r.Tables() {
		fmt.Fprintf(&b, "%s: %s\n", name, strings.Join(listing[name], ", "))
	}
	return b.String()
}

// ===============================
// Guarded execution
// ===============================

// TryOrReturn runs fn and returns fallback when fn fails or panics with an
// error of the given kind. Other failures propagate unchanged.
func TryOrReturn[T any](fn func() (T, error), fallback T, kind error) (T, error) {
	return assert.TryOrReturn(fn, fallback, kind)
}

// NeverReturn is TryOrReturn under its alternative name
func NeverReturn[T any](fn func() (T, error), fallback T, kind error) (T, error) {
	return assert.NeverReturn(fn, fallback, kind)
}
