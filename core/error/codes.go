// File: codes.go
// Title: Error Code Definitions
// Description: Defines the classification codes carried by pkit errors. Codes
//              identify the kind of failure independently of its message.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation with library error codes

package error

// Code classifies an error independently of its message
type Code string

const (
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"
	CodeNotFound Code = "NOT_FOUND"

	// Input checks
	CodeInvalidInput    Code = "INVALID_INPUT"
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeInvalidFormat   Code = "INVALID_FORMAT"
	CodeValueOutOfRange Code = "VALUE_OUT_OF_RANGE"
	CodeParseFailed     Code = "PARSE_FAILED"

	CodeAssertionFailed Code = "ASSERTION_FAILED"
	CodeUnknownMethod   Code = "UNKNOWN_METHOD"

	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

type codeClass struct {
	category string
	severity Severity
}

// classes lists every known code with its category and default severity
var classes = map[Code]codeClass{
	CodeUnknown:         {"generic", SeverityMedium},
	CodeInternal:        {"generic", SeverityCritical},
	CodeNotFound:        {"generic", SeverityLow},
	CodeInvalidInput:    {"validation", SeverityLow},
	CodeInvalidArgument: {"validation", SeverityLow},
	CodeInvalidFormat:   {"validation", SeverityLow},
	CodeValueOutOfRange: {"validation", SeverityLow},
	CodeParseFailed:     {"validation", SeverityLow},
	CodeAssertionFailed: {"assertion", SeverityHigh},
	CodeUnknownMethod:   {"dispatch", SeverityLow},
	CodeConfigError:     {"configuration", SeverityHigh},
	CodeInvalidConfig:   {"configuration", SeverityHigh},
}

func (c Code) String() string { return string(c) }

// IsValid reports whether c is one of the codes above
func (c Code) IsValid() bool {
	_, ok := classes[c]
	return ok
}

// Category groups codes into generic, validation, assertion, dispatch and
// configuration
func (c Code) Category() string {
	if cl, ok := classes[c]; ok {
		return cl.category
	}
	return "generic"
}
