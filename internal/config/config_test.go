package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `{
		"gemini_api_key": "gem-key",
		"openai_api_key": "oai-key",
		"port": 8080,
		"default_city": "Tokyo",
		"strict_prompts": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "gem-key", cfg.GeminiAPIKey)
	assert.Equal(t, "oai-key", cfg.OpenAIAPIKey)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "Tokyo", cfg.DefaultCity)
	assert.True(t, cfg.StrictPrompts)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfigFile(t, "{not valid json")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Port: 8080}
	assert.NoError(t, cfg.Validate())

	cfg = &Config{Port: -1}
	assert.Error(t, cfg.Validate())

	cfg = &Config{Port: 70000}
	assert.Error(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{GeminiAPIKey: "explicit", Port: 9000}
	merged := cfg.MergeWithDefaults(Config{
		GeminiAPIKey: "default",
		OpenAIAPIKey: "default-oai",
		Port:         1234,
		DefaultCity:  "Paris",
	})

	assert.Equal(t, "explicit", merged.GeminiAPIKey)
	assert.Equal(t, "default-oai", merged.OpenAIAPIKey)
	assert.Equal(t, 9000, merged.Port)
	assert.Equal(t, "Paris", merged.DefaultCity)
}

func TestWithDefaults(t *testing.T) {
	cfg := Config{}
	filled := cfg.WithDefaults()
	assert.Equal(t, DefaultPort, filled.Port)
	assert.Equal(t, DefaultCity, filled.DefaultCity)

	cfg = Config{Port: 8080, DefaultCity: "Paris"}
	filled = cfg.WithDefaults()
	assert.Equal(t, 8080, filled.Port)
	assert.Equal(t, "Paris", filled.DefaultCity)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-gem")
	t.Setenv("PORT", "4242")
	t.Setenv("DEFAULT_CITY", "Paris")

	cfg := FromEnv()
	assert.Equal(t, "env-gem", cfg.GeminiAPIKey)
	assert.Equal(t, 4242, cfg.Port)
	assert.Equal(t, "Paris", cfg.DefaultCity)
}

func TestFromEnv_BadPortIgnored(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	cfg := FromEnv()
	assert.Zero(t, cfg.Port)
}
