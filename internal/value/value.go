// Package value classifies and coerces dynamically typed values.
package value

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

// Kind is the closed set of subject kinds a method table can serve.
type Kind int

const (
	KindOther Kind = iota
	KindText
	KindNumber
	KindSequence
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "string"
	case KindNumber:
		return "number"
	case KindSequence:
		return "array"
	case KindMapping:
		return "object"
	default:
		return "other"
	}
}

// KindOf classifies v. Named types are classified by their underlying kind.
func KindOf(v any) Kind {
	if v == nil {
		return KindOther
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return KindText
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return KindNumber
	case reflect.Slice, reflect.Array:
		return KindSequence
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return KindMapping
		}
	}
	return KindOther
}

// AsNumber reports the numeric value of any Go integer or float.
// Strings and booleans are not numbers.
func AsNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case nil:
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// IsFiniteNumber reports whether v is a number that is neither NaN nor infinite.
func IsFiniteNumber(v any) bool {
	n, ok := AsNumber(v)
	return ok && !math.IsNaN(n) && !math.IsInf(n, 0)
}

var decimalLiteral = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?$`)

// ToNumber converts v the way a dynamic language's Number() would:
// blank strings and nil become 0, booleans 1 or 0, decimal and 0x/0o/0b
// literals parse, "Infinity" is infinite, anything else is NaN.
func ToNumber(v any) float64 {
	if n, ok := AsNumber(v); ok {
		return n
	}
	switch x := v.(type) {
	case nil:
		return 0
	case bool:
		if x {
			return 1
		}
		return 0
	case string:
		return parseNumberString(x)
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return parseNumberString(rv.String())
	}
	if rv.Kind() == reflect.Bool {
		if rv.Bool() {
			return 1
		}
		return 0
	}
	return math.NaN()
}

func parseNumberString(s string) float64 {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	if decimalLiteral.MatchString(s) {
		f, err := strconv.ParseFloat(s, 64)
		if err == nil {
			return f
		}
		// overflow yields ±Inf with ErrRange
		return f
	}
	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			if u, err := strconv.ParseUint(s[2:], base, 64); err == nil {
				return float64(u)
			}
		}
	}
	return math.NaN()
}

// Truthy applies dynamic-language truthiness: nil, false, 0, NaN and ""
// are false; every other value, including empty collections, is true.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	if n, ok := AsNumber(v); ok {
		return n != 0 && !math.IsNaN(n)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}

// FormatNumber renders f the way a dynamic language prints numbers:
// integers without a fraction, NaN and Infinity spelled out.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		s = strings.Replace(s, "e+0", "e+", 1)
		return strings.Replace(s, "e-0", "e-", 1)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ToString converts v to its display string. Numbers use FormatNumber,
// nil becomes "null".
func ToString(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case fmt.Stringer:
		return x.String()
	}
	if n, ok := AsNumber(v); ok {
		return FormatNumber(n)
	}
	if s, ok := AsSlice(v); ok {
		parts := make([]string, len(s))
		for i, item := range s {
			if item != nil {
				parts[i] = ToString(item)
			}
		}
		return strings.Join(parts, ",")
	}
	return fmt.Sprint(v)
}

// TypeOf returns the dynamic-language type name of v:
// "string", "number", "boolean", "function", "undefined" or "object".
func TypeOf(v any) string {
	if v == nil {
		return "object"
	}
	switch KindOf(v) {
	case KindText:
		return "string"
	case KindNumber:
		return "number"
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.Func:
		return "function"
	}
	return "object"
}

// AsSlice returns v as []any. Typed slices and arrays are copied.
func AsSlice(v any) ([]any, bool) {
	if s, ok := v.([]any); ok {
		return s, true
	}
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// AsRecord returns v as map[string]any. Other string-keyed maps are copied.
func AsRecord(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, m != nil
	}
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String || rv.IsNil() {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}
