// File: error.go
// Title: Core Error Implementation
// Description: Implements the Error type with code, severity, operation and
//              details. Errors wrap causes for errors.Unwrap and compare
//              equal to Sentinel markers of the same code under errors.Is.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation with contextual errors and sentinels

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Error is a classified error. The With* methods modify the receiver and
// return it for chaining; they are meant for use while building.
type Error struct {
	message   string
	cause     error
	code      Code
	severity  Severity
	operation string
	details   map[string]any

	// sentinel marks a kind marker created by Sentinel
	sentinel bool
}

// New returns an unclassified error with medium severity
func New(message string) *Error {
	return &Error{
		message:  message,
		code:     CodeUnknown,
		severity: SeverityMedium,
		details:  map[string]any{},
	}
}

func Newf(format string, args ...any) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Sentinel returns the kind marker for code. Every Error carrying the same
// code matches it under errors.Is.
func Sentinel(code Code) *Error {
	e := New(strings.ToLower(strings.ReplaceAll(code.String(), "_", " ")))
	e.code = code
	e.severity = GetSeverityFromCode(code)
	e.sentinel = true
	return e
}

// Wrap adds message in front of err. When err holds an Error its code,
// severity and details carry over. Wrap(nil, ...) is nil.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}
	w := New(message)
	w.cause = err

	var inner *Error
	if errors.As(err, &inner) {
		w.code = inner.code
		w.severity = inner.severity
		maps.Copy(w.details, inner.details)
	}
	return w
}

func (e *Error) Error() string {
	if e.cause == nil {
		return e.message
	}
	return e.message + ": " + e.cause.Error()
}

func (e *Error) Unwrap() error { return e.cause }

// Is matches target when it is e itself or a sentinel of e's code
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t == nil {
		return false
	}
	return t == e || (t.sentinel && t.code == e.code)
}

// WithCode sets the code. A still-default severity follows the code.
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	if e.severity == SeverityMedium {
		e.severity = GetSeverityFromCode(code)
	}
	return e
}

func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

func (e *Error) WithDetail(key string, v any) *Error {
	e.details[key] = v
	return e
}

func (e *Error) WithDetails(details map[string]any) *Error {
	maps.Copy(e.details, details)
	return e
}

// Message returns the message without the cause chain
func (e *Error) Message() string    { return e.message }
func (e *Error) Code() Code         { return e.code }
func (e *Error) Severity() Severity { return e.severity }
func (e *Error) Operation() string  { return e.operation }

// Details returns a copy of the details
func (e *Error) Details() map[string]any { return maps.Clone(e.details) }

// Detail returns one detail value
func (e *Error) Detail(key string) (any, bool) {
	v, ok := e.details[key]
	return v, ok
}

// RootCause follows Unwrap to the innermost error
func (e *Error) RootCause() error {
	var err error = e
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

// String renders the error over several "Field: value" lines
func (e *Error) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Error: %s\nCode: %s\nSeverity: %s", e.message, e.code, e.severity)
	if e.operation != "" {
		fmt.Fprintf(&b, "\nOperation: %s", e.operation)
	}
	if len(e.details) > 0 {
		pairs := make([]string, 0, len(e.details))
		for _, k := range slices.Sorted(maps.Keys(e.details)) {
			pairs = append(pairs, fmt.Sprintf("%s=%v", k, e.details[k]))
		}
		fmt.Fprintf(&b, "\nDetails: {%s}", strings.Join(pairs, ", "))
	}
	if e.cause != nil {
		fmt.Fprintf(&b, "\nCause: %s", e.cause)
	}
	return b.String()
}

type errorJSON struct {
	Message   string         `json:"message"`
	Code      Code           `json:"code"`
	Severity  string         `json:"severity"`
	Operation string         `json:"operation,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
	Cause     string         `json:"cause,omitempty"`
}

// MarshalJSON feeds the JSON log formatter's error_details
func (e *Error) MarshalJSON() ([]byte, error) {
	out := errorJSON{
		Message:   e.message,
		Code:      e.code,
		Severity:  e.severity.String(),
		Operation: e.operation,
		Details:   e.details,
	}
	if e.cause != nil {
		out.Cause = e.cause.Error()
	}
	return json.Marshal(out)
}

// HasCode reports whether any Error in err's chain carries code
func HasCode(err error, code Code) bool {
	for ; err != nil; err = errors.Unwrap(err) {
		if e, ok := err.(*Error); ok && e.code == code {
			return true
		}
	}
	return false
}

// GetCode returns the code of the outermost Error in err's chain, or
// CodeUnknown
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}
	return CodeUnknown
}
