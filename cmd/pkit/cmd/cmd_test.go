package cmd

import (
	"bytes"
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	mdwerror "github.com/msto63/pkit/core/error"
)

func TestParseSubject(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		kind    string
		want    any
		wantErr bool
	}{
		{"auto text", "hello", "auto", "hello", false},
		{"auto number", "42", "auto", 42.0, false},
		{"auto array", `[1,"a"]`, "auto", []any{1.0, "a"}, false},
		{"auto object", `{"a":1}`, "auto", map[string]any{"a": 1.0}, false},
		{"auto bool stays text", "true", "auto", "true", false},
		{"forced string", "123", "string", "123", false},
		{"number", "1.5", "number", 1.5, false},
		{"number mismatch", `"x"`, "number", nil, true},
		{"array malformed", "[1,", "array", nil, true},
		{"unknown kind", "x", "bool", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSubject(tt.raw, tt.kind)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseSubject() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseSubject() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestParseArgsAndFormat(t *testing.T) {
	got := parseArgs([]string{"3", "true", "plain", `{"k":"v"}`})
	want := []any{3.0, true, "plain", map[string]any{"k": "v"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseArgs() = %#v", got)
	}

	if s := formatResult("a<b"); s != "a<b" {
		t.Errorf("formatResult(string) = %q", s)
	}
	if s := formatResult([]any{1, "x"}); s != `[1,"x"]` {
		t.Errorf("formatResult(array) = %q", s)
	}
	if s := formatResult(nil); s != "null" {
		t.Errorf("formatResult(nil) = %q", s)
	}
	if s := formatResult(math.NaN()); s != "NaN" {
		t.Errorf("formatResult(NaN) = %q", s)
	}
	if s := formatResult(2.50); s != "2.5" {
		t.Errorf("formatResult(2.5) = %q", s)
	}
}

func TestRenderTable(t *testing.T) {
	out, err := renderTable([]any{
		map[string]any{"name": "bob", "age": 30},
		map[string]any{"name": "alice"},
	})
	if err != nil {
		t.Fatalf("renderTable() error = %v", err)
	}
	for _, want := range []string{"age", "name", "bob", "alice", "30"} {
		if !strings.Contains(out, want) {
			t.Errorf("table lacks %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "age") > strings.Index(out, "name") {
		t.Errorf("columns not in key order:\n%s", out)
	}

	if _, err := renderTable([]any{1, 2}); err == nil {
		t.Error("renderTable() accepted non-objects")
	}
	if _, err := renderTable(nil); err == nil {
		t.Error("renderTable() accepted an empty array")
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfgFile, verbose, callKind = "", false, "auto"

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"call string", []string{"call", "truncate", "abcdef", "3"}, "abc…"},
		{"call forced kind", []string{"call", "--kind", "string", "reverse", "123"}, "321"},
		{"call number", []string{"call", "isEven", "4"}, "true"},
		{"call not a number", []string{"call", "toNumber", "abc"}, "NaN"},
		{"call to fixed default", []string{"call", "toFixedNumber", "3.14159"}, "3.14"},
		{"call array", []string{"call", "mapByKey", `[{"n":2},{"n":1}]`, "n"}, "[2,1]"},
		{"call object", []string{"call", "keys", `{"b":1,"a":2}`}, `["a","b"]`},
		{"math", []string{"math", "roundTo", "3.14159", "2"}, "3.14"},
		{"path keeps strings", []string{"path", "join", "a", "1", "c"}, "a/1/c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("%v: %v", tt.args, err)
			}
			if got != tt.want {
				t.Errorf("%v = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestCommandErrors(t *testing.T) {
	if _, err := execute(t, "call", "nope", "x"); !errors.Is(err, mdwerror.Sentinel(mdwerror.CodeUnknownMethod)) {
		t.Errorf("unknown method error = %v", err)
	}
	if _, err := execute(t, "call", "--kind", "number", "isEven", "[1]"); !errors.Is(err, mdwerror.Sentinel(mdwerror.CodeInvalidInput)) {
		t.Errorf("kind mismatch error = %v", err)
	}
	if _, err := execute(t, "list", "nope"); !errors.Is(err, mdwerror.Sentinel(mdwerror.CodeNotFound)) {
		t.Errorf("unknown table error = %v", err)
	}
	if _, err := execute(t, "--config", "does-not-exist.toml", "version"); err == nil {
		t.Error("missing config file accepted")
	}
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"string (", "path (6)", "toSlug", "seededShuffle"} {
		if !strings.Contains(out, want) {
			t.Errorf("list lacks %q", want)
		}
	}

	out, err = execute(t, "list", "path")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "basename") || !strings.Contains(out, "join non-empty parts with /") {
		t.Errorf("list path =\n%s", out)
	}
}
