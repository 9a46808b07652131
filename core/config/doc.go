// Package config loads pkit settings from TOML or YAML files.
//
// Package: config
// Title: pkit Configuration Management
// Description: Loads configuration files in TOML or YAML, exposes values
//              through dot-notation getters with defaults and environment
//              variable overrides, and decodes the settings that drive the
//              logger and the method-table defaults.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation with TOML/YAML support
//
// Recognised keys:
//
//	[log]
//	level  = "warn"   # trace, debug, info, warn, error, fatal
//	format = "text"   # text, json, logfmt
//
//	[string]
//	truncate_suffix = "…"
//
//	[object]
//	array_strategy = "concat"   # concat, replace, unique
//
//	[array]
//	sort_ascending = true
//
// Environment overrides:
//
// With EnvPrefix "PKIT", the key log.level is overridden by PKIT_LOG_LEVEL.
// Environment values win over file values, which win over defaults.
//
// Usage:
//
//	cfg, err := config.LoadWithOptions("pkit.toml", config.LoadOptions{EnvPrefix: "PKIT"})
//	if err != nil {
//		return err
//	}
//	settings, err := cfg.Settings()
package config
