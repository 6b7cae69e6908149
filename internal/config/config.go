// Package config provides configuration loading and validation for the CLI
// and the HTTP server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// DefaultPort is the HTTP server port when none is configured.
const DefaultPort = 10000

// DefaultCity is the weather/trend location when a request carries none.
const DefaultCity = "New York"

// Config represents the stylist configuration that can be loaded from a JSON
// file, from the environment, or from CLI flags. All fields are optional;
// missing values use defaults.
type Config struct {
	// API keys
	GeminiAPIKey  string `json:"gemini_api_key,omitempty"`  // Vision model key
	OpenAIAPIKey  string `json:"openai_api_key,omitempty"`  // Image generation key
	WeatherAPIKey string `json:"weather_api_key,omitempty"` // OpenWeatherMap key

	// Server
	Port           int      `json:"port,omitempty"`
	AllowedOrigins []string `json:"allowed_origins,omitempty"`

	// Behavior
	DefaultCity   string `json:"default_city,omitempty"`
	StrictPrompts bool   `json:"strict_prompts,omitempty"` // Enforce image prompt length bounds
	Verbose       bool   `json:"verbose,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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

// FromEnv builds a Config from environment variables. Unset variables leave
// zero values for later merging.
func FromEnv() Config {
	cfg := Config{
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		WeatherAPIKey: os.Getenv("WEATHER_API_KEY"),
		DefaultCity:   os.Getenv("DEFAULT_CITY"),
	}
	if port := os.Getenv("PORT"); port != "" {
		if n, err := strconv.Atoi(port); err == nil {
			cfg.Port = n
		}
	}
	return cfg
}

// Validate checks that the configuration has valid values.
// Note: required keys are checked at the point of use, since the server can
// run in degraded mode (mock weather, placeholder images) without them.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in [0, 65535]")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to layer config file values under CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.OpenAIAPIKey == "" {
		result.OpenAIAPIKey = defaults.OpenAIAPIKey
	}
	if result.WeatherAPIKey == "" {
		result.WeatherAPIKey = defaults.WeatherAPIKey
	}
	if result.DefaultCity == "" {
		result.DefaultCity = defaults.DefaultCity
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if len(result.AllowedOrigins) == 0 {
		result.AllowedOrigins = defaults.AllowedOrigins
	}
	if !result.StrictPrompts {
		result.StrictPrompts = defaults.StrictPrompts
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}

// WithDefaults fills remaining zero values with the built-in defaults.
func (c *Config) WithDefaults() Config {
	return c.MergeWithDefaults(Config{
		Port:        DefaultPort,
		DefaultCity: DefaultCity,
	})
}
