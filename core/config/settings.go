// File: settings.go
// Title: pkit Settings
// Description: Decodes the recognised configuration keys into a typed
//              Settings value and builds the logger they describe.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package config

import (
	"errors"
	"io"

	mdwerrors "github.com/msto63/pkit/core/errors"
	"github.com/msto63/pkit/core/log"
	"github.com/msto63/pkit/utils/mapx"
	"github.com/msto63/pkit/utils/stringx"
)

// Configuration keys
const (
	KeyLogLevel       = "log.level"
	KeyLogFormat      = "log.format"
	KeyTruncateSuffix = "string.truncate_suffix"
	KeyArrayStrategy  = "object.array_strategy"
	KeySortAscending  = "array.sort_ascending"
)

// Settings holds the decoded pkit settings
type Settings struct {
	LogLevel       log.Level
	LogFormat      log.Format
	TruncateSuffix string
	ArrayStrategy  mapx.ArrayStrategy
	SortAscending  bool
}

// DefaultSettings returns the settings used when no configuration is loaded
func DefaultSettings() Settings {
	return Settings{
		LogLevel:       log.LevelWarn,
		LogFormat:      log.FormatText,
		TruncateSuffix: stringx.DefaultTruncateSuffix,
		ArrayStrategy:  mapx.ArrayConcat,
		SortAscending:  true,
	}
}

// Defaults returns DefaultSettings as a nested map suitable for LoadOptions
func Defaults() map[string]any {
	d := DefaultSettings()
	return map[string]any{
		"log": map[string]any{
			"level":  d.LogLevel.String(),
			"format": d.LogFormat.String(),
		},
		"string": map[string]any{"truncate_suffix": d.TruncateSuffix},
		"object": map[string]any{"array_strategy": string(d.ArrayStrategy)},
		"array":  map[string]any{"sort_ascending": d.SortAscending},
	}
}

// Settings decodes the recognised keys. Every invalid value is reported
// in the joined error; the returned settings keep the default for it.
func (c *Config) Settings() (Settings, error) {
	s := DefaultSettings()
	var errs []error

	if c.Has(KeyLogLevel) {
		level, err := log.ParseLevel(c.GetString(KeyLogLevel))
		if err != nil {
			errs = append(errs, invalidSetting(KeyLogLevel, err))
		} else {
			s.LogLevel = level
		}
	}

	if c.Has(KeyLogFormat) {
		format, err := log.ParseFormat(c.GetString(KeyLogFormat))
		if err != nil {
			errs = append(errs, invalidSetting(KeyLogFormat, err))
		} else {
			s.LogFormat = format
		}
	}

	if c.Has(KeyTruncateSuffix) {
		s.TruncateSuffix = c.GetString(KeyTruncateSuffix)
	}

	if c.Has(KeyArrayStrategy) {
		strategy, err := mapx.ParseArrayStrategy(c.GetString(KeyArrayStrategy))
		if err != nil {
			errs = append(errs, invalidSetting(KeyArrayStrategy, err))
		} else {
			s.ArrayStrategy = strategy
		}
	}

	s.SortAscending = c.GetBool(KeySortAscending, s.SortAscending)

	return s, errors.Join(errs...)
}

func invalidSetting(key string, cause error) error {
	return mdwerrors.ConfigError("settings", key, cause).WithDetail("key", key)
}

// Logger builds a logger writing to output with the configured level and format
func (s Settings) Logger(output io.Writer) *log.Logger {
	return log.NewWithConfig(log.Config{
		Level:  s.LogLevel,
		Format: s.LogFormat,
		Output: output,
		Name:   "pkit",
	})
}
