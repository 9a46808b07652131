package errors

import (
	stderrors "errors"
	"strings"
	"testing"

	mdwerror "github.com/msto63/pkit/core/error"
)

func TestErrorBuilder(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		err := NewErrorBuilder(ModuleSlicex).Operation("sortByKey").Build()
		if err.Error() != "slicex.sortByKey failed" {
			t.Errorf("Error() = %q", err.Error())
		}
		if err.Code() != mdwerror.CodeUnknown {
			t.Errorf("Code() = %v", err.Code())
		}
		if ExtractModule(err) != ModuleSlicex {
			t.Errorf("module detail = %q", ExtractModule(err))
		}
	})

	t.Run("with cause", func(t *testing.T) {
		cause := stderrors.New("eof")
		err := NewErrorBuilder(ModuleJSONx).
			Operation("parse").
			Message("decode failed").
			Cause(cause).
			Code(mdwerror.CodeParseFailed).
			Build()
		if !stderrors.Is(err, cause) {
			t.Error("built error should wrap cause")
		}
		if err.Code() != mdwerror.CodeParseFailed {
			t.Errorf("Code() = %v", err.Code())
		}
	})
}

func TestStandardConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *mdwerror.Error
		code mdwerror.Code
		op   string
	}{
		{"InvalidInput", InvalidInput(ModuleStringx, "truncate", 3, "string"), mdwerror.CodeInvalidInput, "truncate"},
		{"InvalidArgument", InvalidArgument(ModuleRegistry, "percentage", 0, "number"), mdwerror.CodeInvalidArgument, "percentage"},
		{"InvalidFormat", InvalidFormat(ModuleMathx, "mixColors", "#zz", "#RRGGBB"), mdwerror.CodeInvalidFormat, "mixColors"},
		{"ParseFailure", ParseFailure(ModuleJSONx, "parse", "{", stderrors.New("eof")), mdwerror.CodeParseFailed, "parse"},
		{"OutOfRange", OutOfRange(ModuleNumberx, "clamp", 5, 0, 1), mdwerror.CodeValueOutOfRange, "clamp"},
		{"NotFound", NotFound(ModuleMapx, "pick", "x"), mdwerror.CodeNotFound, "pick"},
		{"UnknownMethod", UnknownMethod("string", "nope"), mdwerror.CodeUnknownMethod, "call"},
		{"ConfigError", ConfigError("load", "a.toml", stderrors.New("bad")), mdwerror.CodeConfigError, "load"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code() != tt.code {
				t.Errorf("Code() = %v, want %v", tt.err.Code(), tt.code)
			}
			if ExtractOperation(tt.err) != tt.op {
				t.Errorf("operation = %q, want %q", ExtractOperation(tt.err), tt.op)
			}
			if tt.err.Error() == "" {
				t.Error("empty message")
			}
		})
	}
}

func TestUnknownMethodMessage(t *testing.T) {
	err := UnknownMethod("array", "frobnicate")
	if !strings.Contains(err.Error(), `"frobnicate"`) {
		t.Errorf("Error() = %q", err.Error())
	}
	if !IsModuleOperation(err, ModuleRegistry, "call") {
		t.Error("IsModuleOperation mismatch")
	}
}

func TestBuilderSeverity(t *testing.T) {
	if got := NotFound(ModuleCLI, "list", "x").Severity(); got != mdwerror.SeverityLow {
		t.Errorf("severity from code = %v", got)
	}
	err := NewErrorBuilder(ModuleConfig).Code(mdwerror.CodeInvalidInput).Severity(mdwerror.SeverityCritical).Build()
	if err.Severity() != mdwerror.SeverityCritical {
		t.Errorf("explicit severity = %v", err.Severity())
	}
	wrapped := stderrors.Join(stderrors.New("other"), err)
	if ExtractModule(wrapped) != ModuleConfig {
		t.Errorf("ExtractModule through a join = %q", ExtractModule(wrapped))
	}
}
