// Package config provides credential resolution and configuration loading for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/prompt-enhancer/internal/catalog"
)

// Environment variables holding the Gemini credential, checked in order.
const (
	EnvAPIKey       = "API_KEY"
	EnvGeminiAPIKey = "GEMINI_API_KEY"
	EnvGeminiModel  = "GEMINI_MODEL"
)

// APIKey returns the credential from the process environment, or "" when none is set.
func APIKey() string {
	for _, name := range []string{EnvAPIKey, EnvGeminiAPIKey} {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v
		}
	}
	return ""
}

// IsAPIKeyConfigured reports whether a credential is available. Presentation layers use it
// to disable AI features up front instead of failing on every call.
func IsAPIKeyConfigured() bool {
	return APIKey() != ""
}

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Behavior
	APIKey    string `json:"api_key,omitempty"`    // Gemini API key
	Model     string `json:"model,omitempty"`      // Overrides the standard-tier model
	LogLevel  string `json:"log_level,omitempty"`  // debug, info, warn, error
	LogFormat string `json:"log_format,omitempty"` // text or json
	Port      int    `json:"port,omitempty"`       // HTTP port for serve

	// Default selections
	TaskType    string `json:"task_type,omitempty"`
	DetailLevel string `json:"detail_level,omitempty"`
	Tone        string `json:"tone,omitempty"`
}

// Defaults returns the built-in configuration, with the model taken from GEMINI_MODEL if set.
func Defaults() Config {
	return Config{
		Model:       strings.TrimSpace(os.Getenv(EnvGeminiModel)),
		LogLevel:    "info",
		LogFormat:   "text",
		Port:        8080,
		TaskType:    string(catalog.TaskEmailComposition),
		DetailLevel: string(catalog.DetailDetailed),
		Tone:        string(catalog.ToneNone),
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config error: unknown 'log_level' %q", c.LogLevel)
	}

	switch c.LogFormat {
	case "", "text", "json":
	default:
		return fmt.Errorf("config error: unknown 'log_format' %q", c.LogFormat)
	}

	if c.TaskType != "" {
		if _, err := catalog.ParseTaskType(c.TaskType); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}
	if c.DetailLevel != "" {
		if _, err := catalog.ParseDetailLevel(c.DetailLevel); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}
	if c.Tone != "" {
		if _, err := catalog.ParseTone(c.Tone); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.TaskType == "" {
		result.TaskType = defaults.TaskType
	}
	if result.DetailLevel == "" {
		result.DetailLevel = defaults.DetailLevel
	}
	if result.Tone == "" {
		result.Tone = defaults.Tone
	}

	return result
}

// ResolveAPIKey prefers an explicit key (flag or config file) over the environment.
func (c *Config) ResolveAPIKey() string {
	if key := strings.TrimSpace(c.APIKey); key != "" {
		return key
	}
	return APIKey()
}
