// Package assert provides precondition guards and kind-matched recovery.
//
// Package: assert
// Title: pkit Assertion and Guard Layer
// Description: Guard functions that return a distinguished assertion error
//              when a precondition fails, Must for call sites that prefer a
//              panic, and TryOrReturn which substitutes a fallback when an
//              error of an expected kind occurs while letting every other
//              error through unchanged.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation
//
// Error kind:
//
// Every guard failure is a *mdwerror.Error with code ASSERTION_FAILED.
// Callers test for it with errors.Is(err, assert.ErrAssertion); message
// text is never part of the match.
//
// Usage:
//
//	if err := assert.HasKeys(obj, "id", "name"); err != nil {
//		return err
//	}
//
//	v, err := assert.TryOrReturn(func() (int, error) {
//		assert.Must(assert.NonZero(d))
//		return n / d, nil
//	}, 0, assert.ErrAssertion)
package assert
