// File: config.go
// Title: Configuration Loading and Access
// Description: Implements the Config type: loading and parsing TOML and YAML
//              content, default merging, dot-notation lookup with
//              environment overrides, and runtime updates.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/pkit/core/error"
	mdwerrors "github.com/msto63/pkit/core/errors"
	"github.com/msto63/pkit/internal/value"
	"github.com/msto63/pkit/utils/mapx"
	"github.com/msto63/pkit/utils/stringx"
)

// DefaultEnvPrefix is the environment prefix used by the pkit command.
const DefaultEnvPrefix = "PKIT"

// Format is the syntax of a configuration source
type Format int

const (
	// FormatAuto picks YAML for .yaml and .yml files and TOML otherwise
	FormatAuto Format = iota
	FormatTOML
	FormatYAML
)

var formatNames = [...]string{FormatAuto: "auto", FormatTOML: "toml", FormatYAML: "yaml"}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "unknown"
	}
	return formatNames[f]
}

// Config holds nested configuration tables. It is safe for concurrent use.
type Config struct {
	mu        sync.RWMutex
	data      map[string]any
	filePath  string
	format    Format
	envPrefix string
}

// LoadOptions tune LoadWithOptions
type LoadOptions struct {
	Format    Format         // FormatAuto detects from the extension
	EnvPrefix string         // empty disables environment overrides
	Defaults  map[string]any // merged below the file's values
}

// Load reads a TOML or YAML file without defaults or environment overrides
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{})
}

// LoadWithOptions reads filePath. A missing file yields a NOT_FOUND error,
// unreadable or malformed content a CONFIG_ERROR.
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if stringx.IsBlank(filePath) {
		return nil, mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
			Operation("load").
			Message("config file path cannot be empty").
			Code(mdwerror.CodeInvalidConfig).
			Build()
	}

	content, err := os.ReadFile(filePath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, mdwerrors.NotFound(mdwerrors.ModuleConfig, "load", filePath)
	case err != nil:
		return nil, mdwerrors.ConfigError("load", filePath, err)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}
	data, err := parseContent(content, format)
	if err != nil {
		return nil, mdwerrors.ConfigError("load", filePath, err).WithDetail("format", format.String())
	}

	cfg := New(options.Defaults, options.EnvPrefix)
	cfg.data = mergeDefaults(data, options.Defaults)
	cfg.filePath = filePath
	cfg.format = format
	return cfg, nil
}

// LoadFromString parses content; FormatAuto means TOML
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}
	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, mdwerrors.ConfigError("loadFromString", "string", err).WithDetail("format", format.String())
	}

	cfg := New(nil, "")
	cfg.data = data
	cfg.format = format
	return cfg, nil
}

// New returns a configuration holding only defaults
func New(defaults map[string]any, envPrefix string) *Config {
	return &Config{
		data:      mergeDefaults(nil, defaults),
		format:    FormatAuto,
		envPrefix: envPrefix,
	}
}

// detectFormat determines the configuration format from file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parseContent parses configuration content based on format
func parseContent(content []byte, format Format) (map[string]any, error) {
	data := make(map[string]any)

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, mdwerrors.ParseFailure(mdwerrors.ModuleConfig, "parseTOML", string(content), err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, mdwerrors.ParseFailure(mdwerrors.ModuleConfig, "parseYAML", string(content), err)
		}
		if data == nil {
			data = make(map[string]any)
		}
	default:
		return nil, mdwerrors.InvalidInput(mdwerrors.ModuleConfig, "parseContent", format.String(), "toml or yaml")
	}

	return data, nil
}

// mergeDefaults fills every key missing from data with its default,
// descending into nested tables present on both sides
func mergeDefaults(data, defaults map[string]any) map[string]any {
	result := mapx.DeepClone(data)
	for k, def := range defaults {
		cur, exists := result[k]
		if !exists {
			if nested, ok := def.(map[string]any); ok {
				def = mapx.DeepClone(nested)
			}
			result[k] = def
			continue
		}
		curTable, curOK := cur.(map[string]any)
		defTable, defOK := def.(map[string]any)
		if curOK && defOK {
			result[k] = mergeDefaults(curTable, defTable)
		}
	}
	return result
}

// ===============================
// Getters
// ===============================

// lookup returns the environment override for key, or else the stored value
func (c *Config) lookup(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if env, ok := c.getEnvValue(key); ok {
		return env, true
	}
	v := c.getValue(key)
	return v, v != nil
}

// fallback returns the first optional default or the zero value
func fallback[T any](defaults []T) T {
	var zero T
	if len(defaults) > 0 {
		return defaults[0]
	}
	return zero
}

// GetString returns the value of key in its display form
func (c *Config) GetString(key string, defaultValue ...string) string {
	if v, ok := c.lookup(key); ok {
		return value.ToString(v)
	}
	return fallback(defaultValue)
}

// GetInt truncates the numeric value of key
func (c *Config) GetInt(key string, defaultValue ...int) int {
	if f, ok := c.number(key); ok {
		return int(f)
	}
	return fallback(defaultValue)
}

func (c *Config) GetFloat(key string, defaultValue ...float64) float64 {
	if f, ok := c.number(key); ok {
		return f
	}
	return fallback(defaultValue)
}

// number accepts Go numbers and numeric strings
func (c *Config) number(key string) (float64, bool) {
	v, ok := c.lookup(key)
	if !ok {
		return 0, false
	}
	if s, isText := v.(string); isText {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		return f, err == nil
	}
	return value.AsNumber(v)
}

// GetBool accepts booleans and the strings strconv.ParseBool understands
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	v, _ := c.lookup(key)
	switch b := v.(type) {
	case bool:
		return b
	case string:
		if parsed, err := strconv.ParseBool(strings.TrimSpace(b)); err == nil {
			return parsed
		}
	}
	return fallback(defaultValue)
}

// GetStringSlice returns a list value in display form; a single string
// becomes a one-element slice
func (c *Config) GetStringSlice(key string, defaultValue ...[]string) []string {
	v, _ := c.lookup(key)
	if s, ok := v.(string); ok {
		return []string{s}
	}
	if items, ok := value.AsSlice(v); ok {
		out := make([]string, len(items))
		for i, item := range items {
			out[i] = value.ToString(item)
		}
		return out
	}
	return fallback(defaultValue)
}

// getValue walks the nested tables along a dot-notation key
func (c *Config) getValue(key string) any {
	table := c.data
	parts := strings.Split(key, ".")
	for _, k := range parts[:len(parts)-1] {
		next, ok := table[k].(map[string]any)
		if !ok {
			return nil
		}
		table = next
	}
	return table[parts[len(parts)-1]]
}

// getEnvValue returns the non-empty environment override for key. Without
// a prefix there are no overrides.
func (c *Config) getEnvValue(key string) (string, bool) {
	if c.envPrefix == "" {
		return "", false
	}
	v := os.Getenv(c.EnvKey(key))
	return v, v != ""
}

// EnvKey converts a config key to its environment variable name:
// log.level with prefix PKIT becomes PKIT_LOG_LEVEL
func (c *Config) EnvKey(key string) string {
	envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if c.envPrefix != "" {
		envKey = strings.ToUpper(c.envPrefix) + "_" + envKey
	}
	return envKey
}

// Has reports whether key has a value or an environment override
func (c *Config) Has(key string) bool {
	_, ok := c.lookup(key)
	return ok
}

// Set sets a configuration value (runtime only, not persisted)
func (c *Config) Set(key string, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.data == nil {
		c.data = make(map[string]any)
	}
	parts := strings.Split(key, ".")
	table := c.data
	for _, k := range parts[:len(parts)-1] {
		next, ok := table[k].(map[string]any)
		if !ok {
			next = map[string]any{}
			table[k] = next
		}
		table = next
	}
	table[parts[len(parts)-1]] = v
}

// GetAll returns a deep copy of all configuration data
func (c *Config) GetAll() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return mapx.DeepClone(c.data)
}

// FilePath returns the path of the loaded configuration file
func (c *Config) FilePath() string {
	return c.filePath
}

// Format returns the configuration file format
func (c *Config) Format() Format {
	return c.format
}

// String returns a short description for diagnostics
func (c *Config) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	source := c.filePath
	if source == "" {
		source = "<memory>"
	}
	return fmt.Sprintf("Config{source: %s, format: %s, keys: %d}", source, c.format, len(c.data))
}
