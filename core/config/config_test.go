// File: config_test.go
// Title: Configuration Module Tests
// Description: Tests for TOML/YAML loading, default merging, environment
//              overrides, runtime updates and settings decoding.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial test implementation

package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	mdwerror "github.com/msto63/pkit/core/error"
	"github.com/msto63/pkit/core/log"
	"github.com/msto63/pkit/utils/mapx"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Run("load TOML config", func(t *testing.T) {
		path := writeFile(t, "pkit.toml", `
[log]
level = "debug"

[string]
truncate_suffix = "..."

[limits]
width = 80
ratio = 0.5
tags = ["a", "b"]
`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Format() != FormatTOML || cfg.FilePath() != path {
			t.Errorf("Format() = %v, FilePath() = %q", cfg.Format(), cfg.FilePath())
		}
		if got := cfg.GetString("log.level"); got != "debug" {
			t.Errorf("GetString(log.level) = %q", got)
		}
		if got := cfg.GetInt("limits.width"); got != 80 {
			t.Errorf("GetInt(limits.width) = %d", got)
		}
		if got := cfg.GetFloat("limits.ratio"); got != 0.5 {
			t.Errorf("GetFloat(limits.ratio) = %v", got)
		}
		if got := cfg.GetStringSlice("limits.tags"); len(got) != 2 || got[1] != "b" {
			t.Errorf("GetStringSlice(limits.tags) = %v", got)
		}
	})

	t.Run("load YAML config", func(t *testing.T) {
		path := writeFile(t, "pkit.yaml", "log:\n  format: json\narray:\n  sort_ascending: false\n")
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Format() != FormatYAML {
			t.Errorf("Format() = %v", cfg.Format())
		}
		if got := cfg.GetString("log.format"); got != "json" {
			t.Errorf("GetString(log.format) = %q", got)
		}
		if cfg.GetBool("array.sort_ascending", true) {
			t.Error("GetBool(array.sort_ascending) = true")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
		if !errors.Is(err, mdwerror.Sentinel(mdwerror.CodeNotFound)) {
			t.Errorf("Load(absent) error = %v", err)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := Load("  ")
		if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
			t.Errorf("Load(blank) error = %v", err)
		}
	})

	t.Run("malformed content", func(t *testing.T) {
		path := writeFile(t, "bad.toml", "[log\nlevel = ")
		_, err := Load(path)
		if !mdwerror.HasCode(err, mdwerror.CodeConfigError) {
			t.Errorf("Load(bad) error = %v", err)
		}
	})
}

func TestDefaultsAndEnv(t *testing.T) {
	path := writeFile(t, "pkit.toml", "[log]\nformat = \"logfmt\"\n")
	cfg, err := LoadWithOptions(path, LoadOptions{EnvPrefix: "PKITTEST", Defaults: Defaults()})
	if err != nil {
		t.Fatalf("LoadWithOptions() error = %v", err)
	}

	if got := cfg.GetString(KeyLogFormat); got != "logfmt" {
		t.Errorf("file value lost: %q", got)
	}
	if got := cfg.GetString(KeyLogLevel); got != "warn" {
		t.Errorf("nested default not merged: %q", got)
	}

	t.Setenv("PKITTEST_LOG_LEVEL", "error")
	if got := cfg.GetString(KeyLogLevel); got != "error" {
		t.Errorf("env override ignored: %q", got)
	}
	if cfg.EnvKey(KeyTruncateSuffix) != "PKITTEST_STRING_TRUNCATE_SUFFIX" {
		t.Errorf("EnvKey() = %q", cfg.EnvKey(KeyTruncateSuffix))
	}

	t.Setenv("PKITTEST_LIMITS_WIDTH", "120")
	if !cfg.Has("limits.width") || cfg.GetInt("limits.width") != 120 {
		t.Errorf("env-only key not visible")
	}
}

func TestSetAndGetAll(t *testing.T) {
	cfg, err := LoadFromString("[a]\nb = 1\n", FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}

	cfg.Set("a.c.d", "deep")
	if got := cfg.GetString("a.c.d"); got != "deep" {
		t.Errorf("Set() nested = %q", got)
	}
	if !cfg.Has("a.b") || cfg.Has("a.x") {
		t.Error("Has() mismatch")
	}

	all := cfg.GetAll()
	all["a"].(map[string]any)["b"] = 99
	if cfg.GetInt("a.b") != 1 {
		t.Error("GetAll() exposed internal state")
	}
	if !strings.Contains(cfg.String(), "<memory>") {
		t.Errorf("String() = %q", cfg.String())
	}
}

func TestSettings(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		s, err := New(nil, "").Settings()
		if err != nil || s != DefaultSettings() {
			t.Errorf("Settings() = %+v, %v", s, err)
		}
	})

	t.Run("decoded values", func(t *testing.T) {
		cfg, err := LoadFromString(`
[log]
level = "debug"
format = "json"
[string]
truncate_suffix = " [more]"
[object]
array_strategy = "unique"
[array]
sort_ascending = false
`, FormatTOML)
		if err != nil {
			t.Fatalf("LoadFromString() error = %v", err)
		}
		s, err := cfg.Settings()
		if err != nil {
			t.Fatalf("Settings() error = %v", err)
		}
		want := Settings{
			LogLevel:       log.LevelDebug,
			LogFormat:      log.FormatJSON,
			TruncateSuffix: " [more]",
			ArrayStrategy:  mapx.ArrayUnique,
			SortAscending:  false,
		}
		if s != want {
			t.Errorf("Settings() = %+v, want %+v", s, want)
		}
	})

	t.Run("invalid values are reported", func(t *testing.T) {
		cfg, _ := LoadFromString("[log]\nlevel = \"loud\"\n[object]\narray_strategy = \"zip\"\n", FormatTOML)
		s, err := cfg.Settings()
		if err == nil || !strings.Contains(err.Error(), KeyLogLevel) || !strings.Contains(err.Error(), KeyArrayStrategy) {
			t.Errorf("Settings() error = %v", err)
		}
		if s.LogLevel != log.LevelWarn || s.ArrayStrategy != mapx.ArrayConcat {
			t.Errorf("invalid values should keep defaults: %+v", s)
		}
	})
}

func TestSettingsLogger(t *testing.T) {
	var buf bytes.Buffer
	s := DefaultSettings()
	s.LogLevel = log.LevelInfo
	s.LogFormat = log.FormatJSON

	logger := s.Logger(&buf)
	logger.Debug("hidden")
	logger.Info("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, `"shown"`) {
		t.Errorf("Logger() output = %q", out)
	}
}
