package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendCommand_NoImageNoMessage(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "recommend")
	cmd.Env = append(os.Environ(), "GEMINI_API_KEY=test-key")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "at least one --image or a --message")
}

func TestRecommendCommand_MissingAPIKey(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "recommend", "--message", "what should I wear?")
	cmd.Env = []string{"PATH=" + os.Getenv("PATH")}
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "GEMINI_API_KEY")
}

func TestClassifyCommand_MissingImageFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "classify")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestLoadImage(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "shirt.png")
	// Minimal PNG signature so content sniffing detects the type.
	data := []byte("\x89PNG\r\n\x1a\n0000000000")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	image, err := loadImage(path)
	require.NoError(t, err)
	assert.Equal(t, data, image.Data)
	assert.Equal(t, "image/png", image.MimeType)
}

func TestLoadImage_Missing(t *testing.T) {
	_, err := loadImage(filepath.Join(t.TempDir(), "nope.jpg"))
	assert.Error(t, err)
}

func TestLoadImage_Empty(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "empty.jpg")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := loadImage(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestLoadMergedConfig_EnvOverFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.json")
	content := `{"gemini_api_key": "file-key", "default_city": "Paris", "port": 9000}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("WEATHER_API_KEY", "")
	t.Setenv("DEFAULT_CITY", "")
	t.Setenv("PORT", "")

	cfg, err := loadMergedConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.GeminiAPIKey)
	assert.Equal(t, "Paris", cfg.DefaultCity)
	assert.Equal(t, 9000, cfg.Port)
}

func TestLoadMergedConfig_MissingFile(t *testing.T) {
	_, err := loadMergedConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
