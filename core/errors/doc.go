// Package errors provides standardized error construction for pkit modules.
//
// Package: errors
// Title: pkit Error Standards
// Description: Module identifiers, a fluent ErrorBuilder and ready-made
//              constructors for the failure kinds shared by all modules.
//              Every error produced here is a *core/error.Error whose details
//              carry the module and operation names.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation
//
// Usage:
//
//	err := errors.NewErrorBuilder(errors.ModuleMathx).
//		Operation("mixColors").
//		Message("malformed hex color").
//		Code(mdwerror.CodeInvalidFormat).
//		Detail("input", color).
//		Build()
//
//	err = errors.InvalidArgument(errors.ModuleRegistry, "truncate", 0, "number")
package errors
