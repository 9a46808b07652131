// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels attached to errors so that callers and
//              the logger can prioritise them.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation with severity levels

package error

// Severity ranks errors; the logger maps it to a log level
type Severity int

const (
	// SeverityLow is a caller mistake such as malformed input
	SeverityLow Severity = iota
	// SeverityMedium is a failed operation with a usable fallback
	SeverityMedium
	// SeverityHigh is a broken invariant or unusable configuration
	SeverityHigh
	// SeverityCritical means the process cannot continue
	SeverityCritical
)

var severityNames = [...]string{"low", "medium", "high", "critical"}

func (s Severity) String() string {
	if s < 0 || int(s) >= len(severityNames) {
		return "unknown"
	}
	return severityNames[s]
}

// GetSeverityFromCode returns the default severity of code; unknown codes
// are medium
func GetSeverityFromCode(code Code) Severity {
	if cl, ok := classes[code]; ok {
		return cl.severity
	}
	return SeverityMedium
}
