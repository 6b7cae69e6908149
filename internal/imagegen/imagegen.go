// Package imagegen synthesizes outfit visualization images from styling
// results via the OpenAI image-generation API. Synthesis never fails from the
// caller's perspective: any upstream problem yields a fixed placeholder URL.
package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pixie/outfit-stylist/internal/styling"
	"github.com/pixie/outfit-stylist/internal/types"
)

// DefaultBaseURL is the OpenAI image-generation endpoint.
const DefaultBaseURL = "https://api.openai.com/v1/images/generations"

// DefaultTimeout bounds one image-generation call.
const DefaultTimeout = 60 * time.Second

// PlaceholderURL is returned whenever image generation is unavailable.
const PlaceholderURL = "https://images.unsplash.com/photo-1567567739554-9a3a1a5d3b11?w=1024&h=1024&fit=crop&q=80"

// negativePrompt lists artifacts the generated image should avoid.
const negativePrompt = "blurry, distorted, low quality, poorly proportioned, wrinkled, messy, unrealistic proportions, ugly"

// Prompt length bounds enforced in strict mode.
const (
	minPromptLen = 20
	maxPromptLen = 4000
)

// Error represents a failed image generation attempt.
type Error struct {
	Message string
	Status  int
	Cause   error
}

func (e *Error) Error() string {
	switch {
	case e.Cause != nil:
		return fmt.Sprintf("imagegen error: %s: %v", e.Message, e.Cause)
	case e.Status != 0:
		return fmt.Sprintf("imagegen error: %s (status %d)", e.Message, e.Status)
	}
	return "imagegen error: " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// PromptLengthError indicates a prompt failed the local length guard.
type PromptLengthError struct {
	Length int
}

func (e *PromptLengthError) Error() string {
	return fmt.Sprintf("prompt length %d outside valid range [%d, %d]", e.Length, minPromptLen, maxPromptLen)
}

// Options configures the synthesizer.
type Options struct {
	APIKey     string
	BaseURL    string
	Model      string
	Size       string
	Quality    string
	Timeout    time.Duration
	HTTPClient *http.Client
	// Strict enables the prompt length guard before the network call.
	Strict bool
}

// DefaultOptions returns sensible defaults for the synthesizer.
func DefaultOptions() *Options {
	return &Options{
		BaseURL: DefaultBaseURL,
		Model:   "dall-e-3",
		Size:    "1024x1024",
		Quality: "standard",
		Timeout: DefaultTimeout,
	}
}

// Synthesizer generates outfit images.
type Synthesizer struct {
	apiKey     string
	baseURL    string
	model      string
	size       string
	quality    string
	strict     bool
	httpClient *http.Client
}

// NewSynthesizer creates a synthesizer. A nil opts uses DefaultOptions.
func NewSynthesizer(opts *Options) *Synthesizer {
	if opts == nil {
		opts = DefaultOptions()
	}
	defaults := DefaultOptions()

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = defaults.BaseURL
	}
	model := opts.Model
	if model == "" {
		model = defaults.Model
	}
	size := opts.Size
	if size == "" {
		size = defaults.Size
	}
	quality := opts.Quality
	if quality == "" {
		quality = defaults.Quality
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Synthesizer{
		apiKey:     opts.APIKey,
		baseURL:    baseURL,
		model:      model,
		size:       size,
		quality:    quality,
		strict:     opts.Strict,
		httpClient: httpClient,
	}
}

// SynthesisContext carries optional request context into prompt building.
type SynthesisContext struct {
	Occasion string
	Setting  string
}

// Variation is one styled variation of a base outfit image.
type Variation struct {
	Style    string `json:"style"`
	ImageURL string `json:"image_url"`
}

// Synthesize generates an outfit image for a styling result and returns its
// URL. On any failure it logs a warning and returns PlaceholderURL.
func (s *Synthesizer) Synthesize(ctx context.Context, result *types.StylingResult, sctx SynthesisContext) string {
	prompt := BuildPrompt(result, sctx)

	if s.strict {
		if err := ValidatePrompt(prompt); err != nil {
			log.Printf("Warning: image prompt rejected, using placeholder: %v", err)
			return PlaceholderURL
		}
	}

	url, err := s.generate(ctx, prompt)
	if err != nil {
		var genErr *Error
		switch {
		case errors.As(err, &genErr) && genErr.Status == http.StatusUnauthorized:
			log.Printf("Warning: image generation auth failed, check API key: %v", err)
		case errors.As(err, &genErr) && genErr.Status == http.StatusTooManyRequests:
			log.Printf("Warning: image generation rate limited: %v", err)
		default:
			log.Printf("Warning: image generation failed, using placeholder: %v", err)
		}
		return PlaceholderURL
	}
	return url
}

// SynthesizeVariations generates up to three styled variations of the outfit:
// casual, formal, and trendy.
func (s *Synthesizer) SynthesizeVariations(ctx context.Context, result *types.StylingResult, count int) []Variation {
	adjustments := []struct {
		style    string
		modifier string
	}{
		{"casual", "relaxed, comfortable vibe"},
		{"formal", "polished, professional look"},
		{"trendy", "on-trend, fashion-forward"},
	}
	if count > len(adjustments) {
		count = len(adjustments)
	}

	var variations []Variation
	for i := 0; i < count; i++ {
		modified := *result
		modified.StylingLogic = fmt.Sprintf("%s version: %s", adjustments[i].style, adjustments[i].modifier)
		variations = append(variations, Variation{
			Style:    adjustments[i].style,
			ImageURL: s.Synthesize(ctx, &modified, SynthesisContext{Occasion: adjustments[i].style}),
		})
	}
	return variations
}

// generationRequest is the OpenAI image-generation request payload.
type generationRequest struct {
	Model   string `json:"model"`
	Prompt  string `json:"prompt"`
	N       int    `json:"n"`
	Size    string `json:"size"`
	Quality string `json:"quality"`
	Style   string `json:"style"`
}

// generationResponse is the subset of the response payload the synthesizer reads.
type generationResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
}

func (s *Synthesizer) generate(ctx context.Context, prompt string) (string, error) {
	if s.apiKey == "" {
		return "", &Error{Message: "API key not configured"}
	}

	payload, err := json.Marshal(generationRequest{
		Model:   s.model,
		Prompt:  prompt,
		N:       1,
		Size:    s.size,
		Quality: s.quality,
		Style:   "natural",
	})
	if err != nil {
		return "", &Error{Message: "failed to encode request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", &Error{Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", &Error{Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", &Error{Message: "unexpected response status", Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{Message: "failed to read response body", Cause: err}
	}

	var decoded generationResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", &Error{Message: "failed to parse response", Cause: err}
	}
	if len(decoded.Data) == 0 || decoded.Data[0].URL == "" {
		return "", &Error{Message: "no image in response"}
	}
	return decoded.Data[0].URL, nil
}

// ValidatePrompt enforces the prompt length bounds.
func ValidatePrompt(prompt string) error {
	if len(prompt) < minPromptLen || len(prompt) > maxPromptLen {
		return &PromptLengthError{Length: len(prompt)}
	}
	return nil
}

// promptColorNames maps palette hex codes to the descriptive names used in
// image prompts. Unknown colors read as "neutral".
var promptColorNames = map[string]string{
	"#6C5CE7": "violet",
	"#00CEC9": "teal",
	"#FAB1A0": "coral",
	"#000000": "black",
	"#FFFFFF": "white",
	"#FF6B6B": "red",
	"#4ECDC4": "turquoise",
	"#FFD700": "gold",
	"#FFB6D9": "pink",
	"#DDA0DD": "plum",
	"#87CEEB": "sky blue",
	"#98FB98": "pale green",
	"#8B4513": "brown",
}

// promptColorName resolves a color reference for prompt text. The classifier
// prefers canonical color names over hex codes, so names resolve through the
// styling vocabulary; only colors unknown to both tables read as "neutral".
func promptColorName(color types.ColorRef) string {
	if name, ok := promptColorNames[strings.ToUpper(color.String())]; ok {
		return name
	}
	name := styling.ToColorName(color)
	if name == "" || strings.HasPrefix(name, "#") {
		return "neutral"
	}
	return strings.ToLower(name)
}

// BuildPrompt composes the image-generation prompt from the styling result and
// synthesis context.
func BuildPrompt(result *types.StylingResult, sctx SynthesisContext) string {
	occasion := sctx.Occasion
	if occasion == "" {
		occasion = "casual"
	}

	style := result.BaseGarment.AestheticStyle
	if style == "" {
		style = "modern"
	}

	parts := []string{
		"A professional fashion editorial photograph",
		fmt.Sprintf("of a stylish person wearing a complete %s outfit", occasion),
		fmt.Sprintf("featuring coordinated garments in %s color palette", promptColorName(result.BaseGarment.PrimaryColor)),
		fmt.Sprintf("%s style and aesthetic", style),
		"high-quality studio photography with professional lighting",
		"clean neutral background",
		"magazine-quality fashion editorial",
		"modern styling",
		"4K high quality",
	}

	if result.StylingLogic != "" {
		parts = append(parts, excerpt(result.StylingLogic, 100))
	}
	if len(result.Recommendations) > 0 && result.Recommendations[0] != "" {
		parts = append(parts, excerpt(result.Recommendations[0], 50))
	}

	return strings.Join(parts, ", ")
}

// NegativePrompt returns the artifacts list paired with every positive prompt.
func NegativePrompt() string {
	return negativePrompt
}

func excerpt(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}
