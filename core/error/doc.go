// Package error provides the structured error type used by every pkit package.
//
// Package: error
// Title: pkit Structured Errors
// Description: Implements an error value carrying a classification code, a
//              severity, the failing operation and free-form details. Errors
//              wrap their cause and match kind markers created with Sentinel,
//              so callers test the kind of a failure with errors.Is instead of
//              comparing messages.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation with codes, severities and sentinels
//
// Usage:
//
//	import mdwerror "github.com/msto63/pkit/core/error"
//
//	var ErrParse = mdwerror.Sentinel(mdwerror.CodeParseFailed)
//
//	err := mdwerror.New("unexpected token").
//		WithCode(mdwerror.CodeParseFailed).
//		WithOperation("safeParseJSON").
//		WithDetail("input", raw)
//
//	if errors.Is(err, ErrParse) {
//		// handle parse failures
//	}
package error
