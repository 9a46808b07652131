// File: merge_test.go
// Title: Unit Tests for Merging, Schemas and JSON Fields
// Description: Tests for array merge strategies, nested object merging,
//              schema filling and coercion, and JSON field parsing.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial test implementation

package mapx

import (
	"errors"
	"reflect"
	"testing"

	mdwerror "github.com/msto63/pkit/core/error"
)

func TestMerge(t *testing.T) {
	a := Object{"list": []any{1, 2}, "cfg": Object{"x": 1, "y": 1}, "n": 1}
	b := Object{"list": []any{2, 3}, "cfg": Object{"y": 2}, "n": "one", "new": true}

	tests := []struct {
		strategy ArrayStrategy
		list     []any
	}{
		{ArrayConcat, []any{1, 2, 2, 3}},
		{"", []any{1, 2, 2, 3}},
		{ArrayReplace, []any{2, 3}},
		{ArrayUnique, []any{1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(string(tt.strategy), func(t *testing.T) {
			got := Merge(a, b, MergeOptions{ArrayStrategy: tt.strategy})
			if !reflect.DeepEqual(got["list"], tt.list) {
				t.Errorf("list = %v, want %v", got["list"], tt.list)
			}
			if !reflect.DeepEqual(got["cfg"], Object{"x": 1, "y": 2}) {
				t.Errorf("cfg = %v", got["cfg"])
			}
			if got["n"] != "one" || got["new"] != true {
				t.Errorf("scalars = %v", got)
			}
		})
	}

	if !reflect.DeepEqual(a["cfg"], Object{"x": 1, "y": 1}) {
		t.Error("Merge() modified its input")
	}
}

func TestParseArrayStrategy(t *testing.T) {
	if s, err := ParseArrayStrategy(" Unique "); err != nil || s != ArrayUnique {
		t.Errorf("ParseArrayStrategy(Unique) = %v, %v", s, err)
	}
	if s, err := ParseArrayStrategy(""); err != nil || s != ArrayConcat {
		t.Errorf("ParseArrayStrategy(empty) = %v, %v", s, err)
	}
	_, err := ParseArrayStrategy("zip")
	if !errors.Is(err, mdwerror.Sentinel(mdwerror.CodeInvalidInput)) {
		t.Errorf("ParseArrayStrategy(zip) error = %v", err)
	}
}

func TestEnsureSchema(t *testing.T) {
	schema := Object{"a": 1, "b": "x"}

	t.Run("fills defaults", func(t *testing.T) {
		got := EnsureSchema(Object{}, schema)
		if !reflect.DeepEqual(got, Object{"a": 1, "b": "x"}) {
			t.Errorf("EnsureSchema({}) = %v", got)
		}
	})

	t.Run("keeps present values and drops extra keys", func(t *testing.T) {
		got := EnsureSchema(Object{"a": 5, "z": true}, schema)
		if !reflect.DeepEqual(got, Object{"a": 5, "b": "x"}) {
			t.Errorf("EnsureSchema() = %v", got)
		}
	})

	t.Run("coerces numeric string", func(t *testing.T) {
		got := EnsureSchema(Object{"a": "5"}, schema, SchemaOptions{Coerce: true})
		if !reflect.DeepEqual(got, Object{"a": 5.0, "b": "x"}) {
			t.Errorf("EnsureSchema(coerce) = %v", got)
		}
	})

	t.Run("coerces to bool and string", func(t *testing.T) {
		got := EnsureSchema(Object{"on": "", "label": 12}, Object{"on": true, "label": ""},
			SchemaOptions{Coerce: true})
		if got["on"] != false || got["label"] != "12" {
			t.Errorf("EnsureSchema(coerce) = %v", got)
		}
	})
}

func TestParseKeys(t *testing.T) {
	obj := Object{"a": "[1]", "b": `{"x":true}`, "c": "plain", "d": 4}

	got := ParseKeys(obj, "a", "c", "missing")
	if _, ok := got["a"].([]any); !ok {
		t.Errorf("ParseKeys() a = %T", got["a"])
	}
	if got["b"] != `{"x":true}` || got["c"] != "plain" {
		t.Errorf("ParseKeys() touched other keys: %v", got)
	}
	if _, ok := got["missing"]; ok {
		t.Error("ParseKeys() added a missing key")
	}

	all := AutoParseKeys(obj)
	if _, ok := all["b"].(map[string]any); !ok || all["c"] != "plain" || all["d"] != 4 {
		t.Errorf("AutoParseKeys() = %v", all)
	}
	if obj["a"] != "[1]" {
		t.Error("input was modified")
	}

	items := ParseJSONProperties([]Object{{"n": "1"}, {"s": "nope"}})
	if items[0]["n"] != 1.0 || items[1]["s"] != "nope" {
		t.Errorf("ParseJSONProperties() = %v", items)
	}
}
