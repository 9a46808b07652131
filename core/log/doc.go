// Package log provides structured, levelled logging for pkit.
//
// Package: log
// Title: pkit Structured Logging
// Description: A small structured logger with levels, typed fields and
//              pluggable formatters (JSON, text, logfmt). Library packages do
//              not fail on malformed input; they report a diagnostic through
//              Diagnose, which writes a warn entry to the default logger.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation with text, JSON and logfmt output
//
// Usage:
//
//	logger := log.New().WithFormat(log.FormatJSON).WithLevel(log.LevelDebug)
//	logger.Info("installed tables", log.Int("methods", n))
//
//	log.Diagnose("slicex", "sumByKey", "item is not a record", log.Int("index", i))
package log
