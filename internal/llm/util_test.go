package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock_JSONFence(t *testing.T) {
	input := "```json\n{\"garment_type\": \"blazer\"}\n```"
	result := CleanJSONBlock(input)
	assert.Equal(t, `{"garment_type": "blazer"}`, result)
}

func TestCleanJSONBlock_GenericFence(t *testing.T) {
	input := "```\n{\"fit\": \"oversized\"}\n```"
	result := CleanJSONBlock(input)
	assert.Equal(t, `{"fit": "oversized"}`, result)
}

func TestCleanJSONBlock_NoFence(t *testing.T) {
	input := `{"material": "wool"}`
	assert.Equal(t, input, CleanJSONBlock(input))
}

func TestCleanJSONBlock_LanguageIdentifier(t *testing.T) {
	input := "```javascript\n{\"a\": 1}\n```"
	assert.Equal(t, `{"a": 1}`, CleanJSONBlock(input))
}

func TestExtractJSONObject_Plain(t *testing.T) {
	text := `Here is the analysis: {"garment_type": "maxi skirt", "fit": "relaxed"} Hope that helps!`
	result := ExtractJSONObject(text)
	assert.Equal(t, `{"garment_type": "maxi skirt", "fit": "relaxed"}`, result)
}

func TestExtractJSONObject_Nested(t *testing.T) {
	text := `{"outer": {"inner": "value"}, "list": [1, 2]}`
	assert.Equal(t, text, ExtractJSONObject(text))
}

func TestExtractJSONObject_BracesInStrings(t *testing.T) {
	text := `{"details": "pattern with { and } characters"}`
	assert.Equal(t, text, ExtractJSONObject(text))
}

func TestExtractJSONObject_NoObject(t *testing.T) {
	assert.Equal(t, "", ExtractJSONObject("no json here"))
}

func TestExtractJSONObject_Unbalanced(t *testing.T) {
	assert.Equal(t, "", ExtractJSONObject(`{"garment_type": "top"`))
}

func TestGetModel_ConfiguredTier(t *testing.T) {
	config := DefaultGeminiConfig()
	assert.Equal(t, "gemini-2.5-flash", config.GetModel(TierStandard))
	assert.Equal(t, "gemini-2.5-pro", config.GetModel(TierAdvanced))
}

func TestGetModel_FallbackChain(t *testing.T) {
	config := &Config{
		Provider: ProviderGemini,
		Models:   map[ModelTier]string{TierLite: "gemini-2.5-flash-lite"},
	}
	// Unknown tier falls back to standard, then lite
	assert.Equal(t, "gemini-2.5-flash-lite", config.GetModel(TierAdvanced))
}

func TestWithModel_DoesNotMutateOriginal(t *testing.T) {
	config := DefaultGeminiConfig()
	modified := config.WithModel(TierStandard, "gemini-other")

	assert.Equal(t, "gemini-other", modified.GetModel(TierStandard))
	assert.Equal(t, "gemini-2.5-flash", config.GetModel(TierStandard))
}

func TestImageFormat(t *testing.T) {
	assert.Equal(t, "jpeg", imageFormat("image/jpeg"))
	assert.Equal(t, "jpeg", imageFormat("image/jpg"))
	assert.Equal(t, "png", imageFormat("image/png"))
	assert.Equal(t, "webp", imageFormat("IMAGE/WEBP"))
	assert.Equal(t, "jpeg", imageFormat("application/octet-stream"))
}
