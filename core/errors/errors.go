// File: errors.go
// Title: Shared Error Construction
// Description: ErrorBuilder and the standard constructors used by pkit
//              modules instead of fmt.Errorf or errors.New.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package errors

import (
	"errors"
	"fmt"

	mdwerror "github.com/msto63/pkit/core/error"
)

// Module identifiers recorded in the "module" detail
const (
	ModuleStringx  = "stringx"
	ModuleNumberx  = "numberx"
	ModuleSlicex   = "slicex"
	ModuleMapx     = "mapx"
	ModuleMathx    = "mathx"
	ModulePathx    = "pathx"
	ModuleJSONx    = "jsonx"
	ModuleAssert   = "assert"
	ModuleRegistry = "registry"
	ModuleConfig   = "config"
	ModuleKit      = "kit"
	ModuleCLI      = "cli"
)

// ErrorBuilder assembles an Error tagged with its module. Unless Severity
// is called the severity follows the code.
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]any
	severity  *mdwerror.Severity
	code      mdwerror.Code
}

func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{module: module, details: map[string]any{}, code: mdwerror.CodeUnknown}
}

func (eb *ErrorBuilder) Operation(op string) *ErrorBuilder     { eb.operation = op; return eb }
func (eb *ErrorBuilder) Message(msg string) *ErrorBuilder      { eb.message = msg; return eb }
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder       { eb.cause = cause; return eb }
func (eb *ErrorBuilder) Code(code mdwerror.Code) *ErrorBuilder { eb.code = code; return eb }

func (eb *ErrorBuilder) Messagef(format string, args ...any) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

func (eb *ErrorBuilder) Detail(key string, v any) *ErrorBuilder {
	eb.details[key] = v
	return eb
}

func (eb *ErrorBuilder) Severity(s mdwerror.Severity) *ErrorBuilder {
	eb.severity = &s
	return eb
}

// Build returns the error. Without a message it reads "<module>.<op> failed".
func (eb *ErrorBuilder) Build() *mdwerror.Error {
	msg := eb.message
	if msg == "" {
		msg = eb.module + "." + eb.operation + " failed"
		if eb.operation == "" {
			msg = eb.module + " operation failed"
		}
	}

	err := mdwerror.New(msg)
	if eb.cause != nil {
		err = mdwerror.Wrap(eb.cause, msg)
	}

	severity := mdwerror.GetSeverityFromCode(eb.code)
	if eb.severity != nil {
		severity = *eb.severity
	}
	return err.
		WithCode(eb.code).
		WithSeverity(severity).
		WithOperation(eb.operation).
		WithDetails(eb.details).
		WithDetail("module", eb.module)
}

// =============================================================================
// Standard constructors
// =============================================================================

func newError(module, op string, code mdwerror.Code, format string, args ...any) *ErrorBuilder {
	return NewErrorBuilder(module).Operation(op).Code(code).Messagef(format, args...)
}

// InvalidInput reports a subject value of the wrong shape
func InvalidInput(module, operation string, input any, expected string) *mdwerror.Error {
	return newError(module, operation, mdwerror.CodeInvalidInput,
		"invalid input for %s.%s: expected %s", module, operation, expected).
		Detail("input", input).
		Detail("expected", expected).
		Build()
}

// InvalidArgument reports a positional argument of the wrong type or
// value. position is 1-based.
func InvalidArgument(module, operation string, position int, expected string) *mdwerror.Error {
	return newError(module, operation, mdwerror.CodeInvalidArgument,
		"%s.%s: argument %d must be %s", module, operation, position, expected).
		Detail("position", position).
		Detail("expected", expected).
		Build()
}

// InvalidFormat reports text that does not follow the expected format
func InvalidFormat(module, operation string, input any, expectedFormat string) *mdwerror.Error {
	return newError(module, operation, mdwerror.CodeInvalidFormat,
		"invalid format in %s.%s: expected %s", module, operation, expectedFormat).
		Detail("input", input).
		Detail("expected_format", expectedFormat).
		Build()
}

// ParseFailure wraps a decoder error
func ParseFailure(module, operation string, input string, cause error) *mdwerror.Error {
	return newError(module, operation, mdwerror.CodeParseFailed, "%s.%s: parse failed", module, operation).
		Cause(cause).
		Detail("input", input).
		Build()
}

// OutOfRange reports a value outside [min, max]
func OutOfRange(module, operation string, v, min, max any) *mdwerror.Error {
	return newError(module, operation, mdwerror.CodeValueOutOfRange,
		"%s.%s: %v outside [%v, %v]", module, operation, v, min, max).
		Detail("value", v).
		Detail("min", min).
		Detail("max", max).
		Build()
}

// NotFound reports a missing item
func NotFound(module, operation string, identifier any) *mdwerror.Error {
	return newError(module, operation, mdwerror.CodeNotFound,
		"%s.%s: %v not found", module, operation, identifier).
		Detail("identifier", identifier).
		Build()
}

// UnknownMethod reports a method name absent from a table
func UnknownMethod(table, name string) *mdwerror.Error {
	return newError(ModuleRegistry, "call", mdwerror.CodeUnknownMethod, "unknown %s method %q", table, name).
		Detail("table", table).
		Detail("method", name).
		Build()
}

// ConfigError wraps a configuration loading failure
func ConfigError(operation, source string, cause error) *mdwerror.Error {
	return newError(ModuleConfig, operation, mdwerror.CodeConfigError,
		"config.%s failed for %s", operation, source).
		Cause(cause).
		Detail("source", source).
		Build()
}

// =============================================================================
// Error analysis
// =============================================================================

func asError(err error) (*mdwerror.Error, bool) {
	var e *mdwerror.Error
	return e, errors.As(err, &e)
}

// ExtractDetails returns the details of the outermost Error in err's chain
func ExtractDetails(err error) map[string]any {
	if e, ok := asError(err); ok {
		return e.Details()
	}
	return nil
}

// ExtractModule returns the module an error was built for
func ExtractModule(err error) string {
	module, _ := ExtractDetails(err)["module"].(string)
	return module
}

func ExtractOperation(err error) string {
	if e, ok := asError(err); ok {
		return e.Operation()
	}
	return ""
}

// IsModuleOperation reports whether err was built by module for operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}
