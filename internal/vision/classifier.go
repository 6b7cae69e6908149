// Package vision classifies clothing images into structured garment
// attributes using a multimodal LLM. Model output is extracted from free-form
// text, validated against a JSON schema, then decoded.
package vision

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/pixie/outfit-stylist/internal/llm"
	"github.com/pixie/outfit-stylist/internal/prompts"
	"github.com/pixie/outfit-stylist/internal/styling"
	"github.com/pixie/outfit-stylist/internal/types"
)

// garmentSchema is the contract the model's JSON output must satisfy before
// it is decoded into GarmentAttributes.
const garmentSchema = `{
	"type": "object",
	"required": ["garment_type", "primary_color", "fit"],
	"properties": {
		"garment_type": {"type": "string", "minLength": 1},
		"material": {"type": "string"},
		"primary_color": {"type": "string", "minLength": 1},
		"secondary_colors": {"type": "array", "items": {"type": "string"}},
		"aesthetic_style": {"type": "string"},
		"fit": {"type": "string", "enum": ["fitted", "oversized", "relaxed", "bodycon", "loose"]},
		"occasion": {"type": "array", "items": {"type": "string"}},
		"condition": {"type": "string"},
		"size_apparent": {"type": "string"},
		"details": {"type": "string"},
		"versatility_score": {"type": "integer", "minimum": 1, "maximum": 10}
	}
}`

// Classifier turns clothing images into garment attributes.
type Classifier struct {
	client llm.Client
	tier   llm.ModelTier
}

// NewClassifier creates a classifier on the given LLM client. Vision
// classification uses the standard tier.
func NewClassifier(client llm.Client) *Classifier {
	return &Classifier{
		client: client,
		tier:   llm.TierStandard,
	}
}

// Classify analyzes one clothing image and returns its structured attributes.
// Errors are either *UpstreamError or *MalformedOutputError.
func (c *Classifier) Classify(ctx context.Context, image types.ImageInput) (*types.GarmentAttributes, error) {
	template := prompts.MustGet("vision.json", "classify-garment")
	prompt := prompts.Format(template, map[string]string{
		"ColorVocabulary": strings.Join(styling.ColorVocabulary(), ", "),
	})

	raw, err := c.client.GenerateVision(ctx, []llm.ImagePart{{
		MimeType: image.MimeType,
		Data:     image.Data,
	}}, prompt, c.tier)
	if err != nil {
		return nil, &UpstreamError{
			Kind:    upstreamKind(err),
			Message: "vision model call failed",
			Cause:   err,
		}
	}

	jsonText := llm.ExtractJSONObject(llm.CleanJSONBlock(raw))
	if jsonText == "" {
		return nil, &MalformedOutputError{
			Message: "no JSON object found in model response",
			Raw:     raw,
		}
	}

	if err := validateGarmentJSON(jsonText); err != nil {
		return nil, &MalformedOutputError{
			Message: "response violates garment schema",
			Raw:     raw,
			Cause:   err,
		}
	}

	var garment types.GarmentAttributes
	if err := json.Unmarshal([]byte(jsonText), &garment); err != nil {
		return nil, &MalformedOutputError{
			Message: "failed to decode garment JSON",
			Raw:     raw,
			Cause:   err,
		}
	}

	garment.Fit = types.Fit(strings.ToLower(string(garment.Fit)))
	return &garment, nil
}

// ExtractColorPalette classifies the image and returns its primary and
// secondary colors, in that order. An empty palette is possible only when the
// classification itself fails.
func (c *Classifier) ExtractColorPalette(ctx context.Context, image types.ImageInput) ([]types.ColorRef, error) {
	garment, err := c.Classify(ctx, image)
	if err != nil {
		return nil, err
	}

	palette := make([]types.ColorRef, 0, 1+len(garment.SecondaryColors))
	if garment.PrimaryColor != "" {
		palette = append(palette, garment.PrimaryColor)
	}
	for _, color := range garment.SecondaryColors {
		if color != "" {
			palette = append(palette, color)
		}
	}
	return palette, nil
}

func validateGarmentJSON(jsonText string) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(garmentSchema),
		gojsonschema.NewStringLoader(jsonText),
	)
	if err != nil {
		return err
	}
	if result.Valid() {
		return nil
	}

	messages := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		messages = append(messages, desc.String())
	}
	return &MalformedOutputError{Message: strings.Join(messages, "; ")}
}
