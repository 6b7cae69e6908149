package imagegen

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixie/outfit-stylist/internal/styling"
	"github.com/pixie/outfit-stylist/internal/types"
)

func sampleResult() *types.StylingResult {
	return &types.StylingResult{
		BaseGarment: types.GarmentAttributes{
			GarmentType:    "oversized blazer",
			AestheticStyle: "Business Casual",
			PrimaryColor:   "#000000",
		},
		StylingLogic:    "Oversized tops create a relaxed, modern aesthetic. Professional styling emphasizes clean lines and structured silhouettes.",
		Recommendations: []string{"Pair this oversized piece with fitted bottoms like skinny jeans or tailored pants."},
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(sampleResult(), SynthesisContext{Occasion: "business"})

	assert.Contains(t, prompt, "A professional fashion editorial photograph")
	assert.Contains(t, prompt, "complete business outfit")
	assert.Contains(t, prompt, "black color palette")
	assert.Contains(t, prompt, "Business Casual style and aesthetic")

	// Styling logic is excerpted to 100 chars, the first recommendation to 50.
	assert.Contains(t, prompt, sampleResult().StylingLogic[:100])
	assert.NotContains(t, prompt, sampleResult().StylingLogic)
	assert.Contains(t, prompt, sampleResult().Recommendations[0][:50])
}

func TestBuildPrompt_Defaults(t *testing.T) {
	prompt := BuildPrompt(&types.StylingResult{}, SynthesisContext{})

	assert.Contains(t, prompt, "complete casual outfit")
	assert.Contains(t, prompt, "neutral color palette")
	assert.Contains(t, prompt, "modern style and aesthetic")
}

func TestPromptColorName(t *testing.T) {
	assert.Equal(t, "violet", promptColorName("#6C5CE7"))
	assert.Equal(t, "violet", promptColorName("#6c5ce7"))
	assert.Equal(t, "navy blue", promptColorName("Navy Blue"))
	assert.Equal(t, "navy blue", promptColorName("navy blue"))
	assert.Equal(t, "charcoal", promptColorName("#2D3436"))
	assert.Equal(t, "neutral", promptColorName("#123456"))
	assert.Equal(t, "neutral", promptColorName(""))
}

func TestPromptColorName_ResolvesWholeVocabulary(t *testing.T) {
	for _, name := range styling.ColorVocabulary() {
		assert.NotEqual(t, "neutral", promptColorName(types.ColorRef(name)),
			"vocabulary color %q should resolve", name)
	}
}

func TestBuildPrompt_NamedPrimaryColor(t *testing.T) {
	result := sampleResult()
	result.BaseGarment.PrimaryColor = "Navy Blue"

	prompt := BuildPrompt(result, SynthesisContext{Occasion: "business"})
	assert.Contains(t, prompt, "navy blue color palette")
	assert.NotContains(t, prompt, "neutral color palette")
}

func TestValidatePrompt(t *testing.T) {
	assert.NoError(t, ValidatePrompt(strings.Repeat("a", 20)))
	assert.NoError(t, ValidatePrompt(strings.Repeat("a", 4000)))

	var lengthErr *PromptLengthError
	require.ErrorAs(t, ValidatePrompt("too short"), &lengthErr)
	assert.Equal(t, 9, lengthErr.Length)
	assert.Error(t, ValidatePrompt(strings.Repeat("a", 4001)))
}

func TestSynthesize_ReturnsGeneratedURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req generationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "dall-e-3", req.Model)
		assert.Equal(t, 1, req.N)
		assert.Equal(t, "1024x1024", req.Size)
		assert.Contains(t, req.Prompt, "fashion editorial")

		_, _ = w.Write([]byte(`{"data": [{"url": "https://example.com/generated.png"}]}`))
	}))
	defer server.Close()

	synth := NewSynthesizer(&Options{APIKey: "test-key", BaseURL: server.URL})
	url := synth.Synthesize(context.Background(), sampleResult(), SynthesisContext{})
	assert.Equal(t, "https://example.com/generated.png", url)
}

func TestSynthesize_PlaceholderOnErrorStatus(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusTooManyRequests, http.StatusInternalServerError} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		synth := NewSynthesizer(&Options{APIKey: "test-key", BaseURL: server.URL})
		url := synth.Synthesize(context.Background(), sampleResult(), SynthesisContext{})
		assert.Equal(t, PlaceholderURL, url, "status %d", status)
		server.Close()
	}
}

func TestSynthesize_PlaceholderOnEmptyData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": []}`))
	}))
	defer server.Close()

	synth := NewSynthesizer(&Options{APIKey: "test-key", BaseURL: server.URL})
	assert.Equal(t, PlaceholderURL, synth.Synthesize(context.Background(), sampleResult(), SynthesisContext{}))
}

func TestSynthesize_PlaceholderWithoutAPIKey(t *testing.T) {
	synth := NewSynthesizer(&Options{BaseURL: "http://127.0.0.1:1"})
	assert.Equal(t, PlaceholderURL, synth.Synthesize(context.Background(), sampleResult(), SynthesisContext{}))
}

func TestSynthesize_StrictModePassesValidPrompt(t *testing.T) {
	var called bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		_, _ = w.Write([]byte(`{"data": [{"url": "https://example.com/ok.png"}]}`))
	}))
	defer server.Close()

	// Built prompts always clear the minimum length, so strict mode lets the
	// request through; the guard itself is covered by TestValidatePrompt.
	synth := NewSynthesizer(&Options{APIKey: "test-key", BaseURL: server.URL, Strict: true})
	url := synth.Synthesize(context.Background(), sampleResult(), SynthesisContext{})
	assert.Equal(t, "https://example.com/ok.png", url)
	assert.True(t, called)
}

func TestSynthesizeVariations(t *testing.T) {
	var prompts []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req generationRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		prompts = append(prompts, req.Prompt)
		_, _ = w.Write([]byte(`{"data": [{"url": "https://example.com/variation.png"}]}`))
	}))
	defer server.Close()

	synth := NewSynthesizer(&Options{APIKey: "test-key", BaseURL: server.URL})
	variations := synth.SynthesizeVariations(context.Background(), sampleResult(), 5)

	require.Len(t, variations, 3)
	assert.Equal(t, "casual", variations[0].Style)
	assert.Equal(t, "formal", variations[1].Style)
	assert.Equal(t, "trendy", variations[2].Style)
	for _, v := range variations {
		assert.Equal(t, "https://example.com/variation.png", v.ImageURL)
	}

	require.Len(t, prompts, 3)
	assert.Contains(t, prompts[0], "casual version: relaxed, comfortable vibe")
	assert.Contains(t, prompts[1], "formal version: polished, professional look")
}

func TestNegativePrompt(t *testing.T) {
	assert.Contains(t, NegativePrompt(), "blurry")
	assert.Contains(t, NegativePrompt(), "unrealistic proportions")
}
