// File: assert.go
// Title: Guard Functions
// Description: Predicate guards over dynamic values returning assertion
//              errors that carry an operation name and optional details.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package assert

import (
	"fmt"
	"math"
	"reflect"

	mdwerror "github.com/msto63/pkit/core/error"
	mdwerrors "github.com/msto63/pkit/core/errors"
	"github.com/msto63/pkit/internal/value"
	"github.com/msto63/pkit/utils/jsonx"
)

// ErrAssertion is the kind shared by every guard failure.
var ErrAssertion = mdwerror.Sentinel(mdwerror.CodeAssertionFailed)

// Fail builds an assertion error with message and optional details.
func Fail(message string, info map[string]any) *mdwerror.Error {
	return fail("fail", message, info)
}

func fail(operation, message string, info map[string]any) *mdwerror.Error {
	b := mdwerrors.NewErrorBuilder(mdwerrors.ModuleAssert).
		Operation(operation).
		Message(message).
		Code(mdwerror.CodeAssertionFailed).
		Severity(mdwerror.SeverityHigh)
	for k, v := range info {
		b.Detail(k, v)
	}
	return b.Build()
}

// check returns nil when ok holds, otherwise an assertion error using the
// caller's message override or def.
func check(ok bool, operation, def string, msg []string, info map[string]any) error {
	if ok {
		return nil
	}
	if len(msg) > 0 && msg[0] != "" {
		def = msg[0]
	}
	return fail(operation, def, info)
}

// Must panics with err when it is non-nil.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// ===============================
// Presence
// ===============================

// NotNil fails for nil and for typed nil pointers, maps, slices,
// functions, channels and interfaces.
func NotNil(v any, msg ...string) error {
	return check(!isNil(v), "notNil", "expected value not to be nil", msg, nil)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// Ensure fails when cond is false.
func Ensure(cond bool, msg ...string) error {
	return check(cond, "ensure", "assertion failed (ensure)", msg, nil)
}

// ===============================
// Types
// ===============================

// IsString fails unless v is a string.
func IsString(v any, msg ...string) error {
	return check(value.KindOf(v) == value.KindText, "isString", "expected string", msg, typeInfo(v))
}

// IsNumber fails unless v is a number other than NaN.
func IsNumber(v any, msg ...string) error {
	_, ok := number(v)
	return check(ok, "isNumber", "expected number", msg, typeInfo(v))
}

// IsBool fails unless v is a bool.
func IsBool(v any, msg ...string) error {
	_, ok := v.(bool)
	return check(ok, "isBool", "expected boolean", msg, typeInfo(v))
}

// IsSlice fails unless v is a slice or array.
func IsSlice(v any, msg ...string) error {
	return check(value.KindOf(v) == value.KindSequence, "isSlice", "expected array", msg, typeInfo(v))
}

// IsObject fails unless v is a string-keyed map.
func IsObject(v any, msg ...string) error {
	_, ok := value.AsRecord(v)
	return check(ok, "isObject", "expected plain object", msg, typeInfo(v))
}

// As returns v as T, or an assertion error when v holds another type.
func As[T any](v any, msg ...string) (T, error) {
	t, ok := v.(T)
	return t, check(ok, "as", fmt.Sprintf("expected value of type %s", reflect.TypeFor[T]()), msg, typeInfo(v))
}

func typeInfo(v any) map[string]any {
	return map[string]any{"type": fmt.Sprintf("%T", v)}
}

func number(v any) (float64, bool) {
	n, ok := value.AsNumber(v)
	return n, ok && !math.IsNaN(n)
}

// ===============================
// Contents
// ===============================

// NonEmptyString fails unless v is a string of non-zero length.
func NonEmptyString(v any, msg ...string) error {
	s, ok := v.(string)
	return check(ok && s != "", "nonEmptyString", "expected non-empty string", msg, nil)
}

// NonEmptySlice fails unless v is a slice with at least one element.
func NonEmptySlice(v any, msg ...string) error {
	s, ok := value.AsSlice(v)
	return check(ok && len(s) > 0, "nonEmptySlice", "expected non-empty array", msg, nil)
}

// HasKeys fails unless obj is an object defining every key. The error
// names the first missing key.
func HasKeys(obj any, keys []string, msg ...string) error {
	rec, ok := value.AsRecord(obj)
	if !ok {
		return check(false, "hasKeys", "expected object for hasKeys", msg, typeInfo(obj))
	}
	for _, k := range keys {
		if _, present := rec[k]; !present {
			return check(false, "hasKeys", fmt.Sprintf("missing required key '%s'", k), msg,
				map[string]any{"key": k})
		}
	}
	return nil
}

// LengthAtLeast fails unless v is a slice with at least min elements.
func LengthAtLeast(v any, min int, msg ...string) error {
	s, ok := value.AsSlice(v)
	return check(ok && len(s) >= min, "lengthAtLeast", fmt.Sprintf("expected array length >= %d", min), msg,
		map[string]any{"min": min, "length": len(s)})
}

// NonZero fails unless v is a number other than zero or NaN.
func NonZero(v any, msg ...string) error {
	n, ok := number(v)
	return check(ok && n != 0, "nonZero", "expected non-zero number", msg, nil)
}

// PositiveOrZero fails unless v is a number >= 0.
func PositiveOrZero(v any, msg ...string) error {
	n, ok := number(v)
	return check(ok && n >= 0, "positiveOrZero", "expected positive or zero number", msg, nil)
}

// AllTruthy fails unless v is a slice whose elements are all truthy.
func AllTruthy(v any, msg ...string) error {
	return all(v, value.Truthy, "allTruthy", "expected all elements to be truthy", msg)
}

// AllObjects fails unless v is a slice of objects.
func AllObjects(v any, msg ...string) error {
	return all(v, func(item any) bool {
		_, ok := value.AsRecord(item)
		return ok
	}, "allObjects", "expected all elements to be plain objects", msg)
}

// AllNumbers fails unless v is a slice of numbers, none of them NaN.
func AllNumbers(v any, msg ...string) error {
	return all(v, func(item any) bool {
		_, ok := number(item)
		return ok
	}, "allNumbers", "expected all elements to be numbers", msg)
}

func all(v any, pred func(any) bool, operation, def string, msg []string) error {
	s, ok := value.AsSlice(v)
	if !ok {
		return check(false, operation, def, msg, typeInfo(v))
	}
	for i, item := range s {
		if !pred(item) {
			return check(false, operation, def, msg, map[string]any{"index": i})
		}
	}
	return nil
}

// JSONEqual fails unless a and b serialise to the same JSON with object keys
// in sorted order. Values that cannot be serialised never compare equal.
func JSONEqual(a, b any, msg ...string) error {
	sa, okA := jsonx.StableStringify(a)
	sb, okB := jsonx.StableStringify(b)
	return check(okA && okB && sa == sb, "jsonEqual", "expected JSON structures to be equal", msg, nil)
}
