// File: assert_test.go
// Title: Unit Tests for Guards and Recovery
// Description: Tests that every guard accepts and rejects the documented
//              values with the assertion kind, and that TryOrReturn only
//              recovers errors and panics of the expected kind.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial test implementation

package assert

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	mdwerror "github.com/msto63/pkit/core/error"
	"github.com/msto63/pkit/core/log"
)

func TestGuards(t *testing.T) {
	var nilMap map[string]any
	var nilPtr *int

	tests := []struct {
		name  string
		guard func(any) error
		pass  []any
		fail  []any
	}{
		{"NotNil", func(v any) error { return NotNil(v) }, []any{0, "", false}, []any{nil, nilMap, nilPtr}},
		{"NonEmptyString", func(v any) error { return NonEmptyString(v) }, []any{"a"}, []any{"", 1, nil}},
		{"NonEmptySlice", func(v any) error { return NonEmptySlice(v) }, []any{[]int{1}, []any{nil}}, []any{[]int{}, "ab", nil}},
		{"IsString", func(v any) error { return IsString(v) }, []any{"", "x"}, []any{1, nil, []byte("x")}},
		{"IsNumber", func(v any) error { return IsNumber(v) }, []any{0, -1.5, uint8(3)}, []any{math.NaN(), "1", nil}},
		{"IsBool", func(v any) error { return IsBool(v) }, []any{true, false}, []any{0, "true"}},
		{"IsSlice", func(v any) error { return IsSlice(v) }, []any{[]string{}, [2]int{}}, []any{"s", map[string]any{}}},
		{"IsObject", func(v any) error { return IsObject(v) }, []any{map[string]any{}, map[string]int{"a": 1}}, []any{[]any{}, nil, nilMap}},
		{"NonZero", func(v any) error { return NonZero(v) }, []any{1, -0.5}, []any{0, 0.0, math.NaN(), "1"}},
		{"PositiveOrZero", func(v any) error { return PositiveOrZero(v) }, []any{0, 3}, []any{-1, math.NaN()}},
		{"AllTruthy", func(v any) error { return AllTruthy(v) }, []any{[]any{1, "a", true}, []any{}}, []any{[]any{1, 0}, "x"}},
		{"AllObjects", func(v any) error { return AllObjects(v) }, []any{[]any{map[string]any{}}}, []any{[]any{map[string]any{}, []any{}}}},
		{"AllNumbers", func(v any) error { return AllNumbers(v) }, []any{[]any{1, 2.5}, []float64{1}}, []any{[]any{1, "2"}, []any{math.NaN()}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, v := range tt.pass {
				if err := tt.guard(v); err != nil {
					t.Errorf("%s(%#v) = %v, want nil", tt.name, v, err)
				}
			}
			for _, v := range tt.fail {
				err := tt.guard(v)
				if !errors.Is(err, ErrAssertion) {
					t.Errorf("%s(%#v) = %v, want assertion error", tt.name, v, err)
				}
			}
		})
	}
}

func TestHasKeys(t *testing.T) {
	obj := map[string]any{"id": 1, "name": nil}

	if err := HasKeys(obj, []string{"id", "name"}); err != nil {
		t.Errorf("HasKeys() = %v", err)
	}

	err := HasKeys(obj, []string{"id", "email"})
	if !errors.Is(err, ErrAssertion) || !strings.Contains(err.Error(), "'email'") {
		t.Errorf("HasKeys(missing) = %v", err)
	}
	var mErr *mdwerror.Error
	if !errors.As(err, &mErr) || mErr.Operation() != "hasKeys" {
		t.Fatalf("HasKeys(missing) details = %v", err)
	}
	if key, _ := mErr.Detail("key"); key != "email" {
		t.Errorf("HasKeys(missing) key detail = %v", key)
	}

	if err := HasKeys("nope", []string{"id"}); !errors.Is(err, ErrAssertion) {
		t.Errorf("HasKeys(non-object) = %v", err)
	}
}

func TestMessagesAndDetails(t *testing.T) {
	err := Ensure(false, "custom message")
	if err == nil || !strings.Contains(err.Error(), "custom message") {
		t.Errorf("Ensure() = %v", err)
	}
	if err := Ensure(true); err != nil {
		t.Errorf("Ensure(true) = %v", err)
	}

	err = LengthAtLeast([]int{1}, 3)
	if err == nil || !strings.Contains(err.Error(), ">= 3") {
		t.Errorf("LengthAtLeast() = %v", err)
	}

	failure := Fail("broken", map[string]any{"field": "x"})
	if field, _ := failure.Detail("field"); !errors.Is(failure, ErrAssertion) || field != "x" {
		t.Errorf("Fail() = %v", failure)
	}
	if failure.Severity() != mdwerror.SeverityHigh {
		t.Errorf("Fail() severity = %v", failure.Severity())
	}
}

func TestAs(t *testing.T) {
	s, err := As[string]("hello")
	if err != nil || s != "hello" {
		t.Errorf("As[string]() = %q, %v", s, err)
	}
	n, err := As[int]("hello")
	if !errors.Is(err, ErrAssertion) || n != 0 {
		t.Errorf("As[int](string) = %d, %v", n, err)
	}
}

func TestJSONEqual(t *testing.T) {
	a := map[string]any{"b": []any{1, 2}, "a": "x"}
	b := map[string]any{"a": "x", "b": []any{1.0, 2.0}}

	if err := JSONEqual(a, b); err != nil {
		t.Errorf("JSONEqual(equal) = %v", err)
	}
	if err := JSONEqual(a, map[string]any{"a": "y"}); !errors.Is(err, ErrAssertion) {
		t.Errorf("JSONEqual(different) = %v", err)
	}
	if err := JSONEqual(func() {}, func() {}); !errors.Is(err, ErrAssertion) {
		t.Errorf("JSONEqual(unserialisable) = %v", err)
	}
}

func TestMust(t *testing.T) {
	Must(nil)

	defer func() {
		r := recover()
		if err, ok := r.(error); !ok || !errors.Is(err, ErrAssertion) {
			t.Errorf("Must() panicked with %v", r)
		}
	}()
	Must(NonZero(0))
	t.Error("Must() did not panic")
}

// ===============================
// Recovery Tests
// ===============================

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.SetDefault(log.New().WithOutput(&buf))
	t.Cleanup(func() { log.SetDefault(prev) })
	return &buf
}

func TestTryOrReturn(t *testing.T) {
	buf := captureLog(t)
	other := errors.New("disk on fire")

	t.Run("success passes through", func(t *testing.T) {
		got, err := TryOrReturn(func() (int, error) { return 7, nil }, -1, ErrAssertion)
		if got != 7 || err != nil {
			t.Errorf("TryOrReturn() = %d, %v", got, err)
		}
	})

	t.Run("matching error returns fallback", func(t *testing.T) {
		got, err := TryOrReturn(func() (int, error) { return 0, NonZero(0) }, -1, ErrAssertion)
		if got != -1 || err != nil {
			t.Errorf("TryOrReturn() = %d, %v", got, err)
		}
		if !strings.Contains(buf.String(), "returning fallback value") {
			t.Errorf("expected a warning, got %q", buf.String())
		}
	})

	t.Run("other error propagates unchanged", func(t *testing.T) {
		_, err := TryOrReturn(func() (int, error) { return 0, other }, -1, ErrAssertion)
		if err != other {
			t.Errorf("TryOrReturn() error = %v, want %v", err, other)
		}
	})

	t.Run("nil kind matches nothing", func(t *testing.T) {
		_, err := TryOrReturn(func() (int, error) { return 0, NonZero(0) }, -1, nil)
		if !errors.Is(err, ErrAssertion) {
			t.Errorf("TryOrReturn(nil kind) error = %v", err)
		}
	})

	t.Run("matching panic returns fallback", func(t *testing.T) {
		got, err := TryOrReturn(func() (string, error) {
			Must(NonEmptyString(""))
			return "unreachable", nil
		}, "fallback", ErrAssertion)
		if got != "fallback" || err != nil {
			t.Errorf("TryOrReturn() = %q, %v", got, err)
		}
	})

	t.Run("custom sentinel kind", func(t *testing.T) {
		kind := mdwerror.Sentinel(mdwerror.CodeParseFailed)
		failing := mdwerror.New("bad json").WithCode(mdwerror.CodeParseFailed)
		got, err := NeverReturn(func() (int, error) { return 0, failing }, 5, kind)
		if got != 5 || err != nil {
			t.Errorf("NeverReturn() = %d, %v", got, err)
		}
	})
}

func TestTryOrReturnRepanics(t *testing.T) {
	captureLog(t)
	other := errors.New("boom")

	for _, value := range []any{other, "plain string"} {
		func() {
			defer func() {
				if r := recover(); r != value {
					t.Errorf("recovered %v, want %v", r, value)
				}
			}()
			_, _ = TryOrReturn(func() (int, error) { panic(value) }, 0, ErrAssertion)
			t.Error("TryOrReturn() swallowed a foreign panic")
		}()
	}
}

func TestRoute(t *testing.T) {
	var seen []error
	onError := func(err error) { seen = append(seen, err) }

	got, err := Route(0, func() (int, error) { return 0, Ensure(false) }, onError)
	if got != 0 || err != nil || len(seen) != 1 {
		t.Errorf("Route(assertion) = %d, %v, seen %d", got, err, len(seen))
	}

	other := errors.New("other")
	if _, err := Route(0, func() (int, error) { return 0, other }, onError); err != other {
		t.Errorf("Route(other) error = %v", err)
	}
	if len(seen) != 1 {
		t.Errorf("onError called for a foreign error")
	}
}
