// File: merge.go
// Title: Object Merging, Schemas and JSON Fields
// Description: Strategy-driven shallow merging, schema filling with
//              optional coercion to the schema's primitive types, and
//              best-effort JSON parsing of string-valued fields.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package mapx

import (
	"fmt"
	"strings"

	mdwerrors "github.com/msto63/pkit/core/errors"
	"github.com/msto63/pkit/internal/value"
	"github.com/msto63/pkit/utils/jsonx"
)

// ArrayStrategy selects how Merge combines two array values under the same key.
type ArrayStrategy string

// Array merge strategies.
const (
	ArrayConcat  ArrayStrategy = "concat"
	ArrayReplace ArrayStrategy = "replace"
	ArrayUnique  ArrayStrategy = "unique"
)

// ParseArrayStrategy parses a strategy name case-insensitively. The empty
// string selects ArrayConcat.
func ParseArrayStrategy(s string) (ArrayStrategy, error) {
	switch ArrayStrategy(strings.ToLower(strings.TrimSpace(s))) {
	case "", ArrayConcat:
		return ArrayConcat, nil
	case ArrayReplace:
		return ArrayReplace, nil
	case ArrayUnique:
		return ArrayUnique, nil
	}
	return ArrayConcat, mdwerrors.InvalidInput(mdwerrors.ModuleMapx, "parseArrayStrategy", s,
		fmt.Sprintf("one of %s, %s, %s", ArrayConcat, ArrayReplace, ArrayUnique))
}

// MergeOptions configures Merge.
type MergeOptions struct {
	ArrayStrategy ArrayStrategy
}

// Merge returns a copy of a with every entry of b applied. When both sides
// hold arrays they are combined per the strategy; when both hold objects the
// result is their one-level shallow merge; otherwise b's value wins.
func Merge(a, b Object, opts ...MergeOptions) Object {
	var opt MergeOptions
	if len(opts) > 0 {
		opt = opts[0]
	}
	out := Clone(a)
	for k, v := range b {
		cur, exists := out[k]
		if !exists {
			out[k] = v
			continue
		}
		out[k] = mergeValue(cur, v, opt.ArrayStrategy)
	}
	return out
}

func mergeValue(cur, next any, strategy ArrayStrategy) any {
	if value.KindOf(cur) == value.KindSequence && value.KindOf(next) == value.KindSequence {
		left, _ := value.AsSlice(cur)
		right, _ := value.AsSlice(next)
		switch strategy {
		case ArrayReplace:
			return next
		case ArrayUnique:
			set := value.NewSet()
			for _, item := range left {
				set.Add(item)
			}
			for _, item := range right {
				set.Add(item)
			}
			return set.Values()
		default:
			combined := make([]any, 0, len(left)+len(right))
			return append(append(combined, left...), right...)
		}
	}
	left, leftIsObject := value.AsRecord(cur)
	right, rightIsObject := value.AsRecord(next)
	if leftIsObject && rightIsObject {
		merged := Clone(left)
		for k, v := range right {
			merged[k] = v
		}
		return merged
	}
	return next
}

// SchemaOptions configures EnsureSchema.
type SchemaOptions struct {
	// Coerce converts each value to the primitive type of its schema default.
	Coerce bool
}

// EnsureSchema returns an object holding exactly the schema's keys. Values
// come from obj and fall back to the schema default when absent or nil.
// With Coerce, values are converted to the default's type: numbers with
// numeric parsing, booleans by truthiness, strings by display form.
func EnsureSchema(obj, schema Object, opts ...SchemaOptions) Object {
	var opt SchemaOptions
	if len(opts) > 0 {
		opt = opts[0]
	}
	out := make(Object, len(schema))
	for k, def := range schema {
		v, ok := obj[k]
		if !ok || v == nil {
			v = def
		}
		if opt.Coerce {
			v = coerceLike(v, def)
		}
		out[k] = v
	}
	return out
}

func coerceLike(v, def any) any {
	switch value.TypeOf(def) {
	case "number":
		return value.ToNumber(v)
	case "boolean":
		return value.Truthy(v)
	case "string":
		if s, ok := v.(string); ok {
			return s
		}
		return value.ToString(v)
	}
	return v
}

// ===============================
// JSON Fields
// ===============================

// ParseKeys returns a copy of obj in which the listed string fields holding
// valid JSON are replaced by the parsed value.
func ParseKeys(obj Object, keys ...string) Object {
	out := Clone(obj)
	for _, k := range keys {
		if s, ok := out[k].(string); ok {
			out[k] = jsonx.ParseOr(s, s)
		}
	}
	return out
}

// AutoParseKeys parses every string field that holds valid JSON.
func AutoParseKeys(obj Object) Object {
	out := Clone(obj)
	for k, v := range out {
		if s, ok := v.(string); ok {
			out[k] = jsonx.ParseOr(s, s)
		}
	}
	return out
}

// ParseJSONProperties is AutoParseKeys applied to every record in items.
func ParseJSONProperties(items []Object) []Object {
	out := make([]Object, len(items))
	for i, obj := range items {
		out[i] = AutoParseKeys(obj)
	}
	return out
}
