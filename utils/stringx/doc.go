// Package stringx provides string transforms and predicates.
//
// Package: stringx
// Title: String Operations for pkit
// Description: Pure functions over a single string subject: case
//              conversion, slugs, diacritic stripping, HTML entity escaping,
//              substring extraction, tolerant JSON and number parsing, and
//              pattern predicates. No function panics or returns an error;
//              malformed input yields a documented fallback.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation
//
// Character semantics:
//
// "Word characters" are ASCII letters, digits and underscore, matching the
// \w class of regexp. Length-based operations (Truncate, Ellipsis) count
// runes. Reverse reverses runes, so combining marks may detach from their
// base letter. Hashed iterates UTF-16 code units so its output matches other
// djb2 implementations over the same text.
//
// Usage:
//
//	stringx.ToSlug("Crème Brûlée Recipe")      // "creme-brulee-recipe"
//	stringx.SubstringFrom("a=1;b=2", "a=", ";") // "1"
//	stringx.Truncate("abcdef", 3)               // "abc…"
package stringx
