package types

import "github.com/go-playground/validator/v10"

// ImageInput is one uploaded clothing image.
type ImageInput struct {
	Data     []byte `json:"-"`
	MimeType string `json:"mime_type"`
}

// RecommendRequest is the transport-independent input to the orchestrator.
type RecommendRequest struct {
	Images   []ImageInput `json:"-" validate:"max=10"`
	Message  string       `json:"message"`
	Location string       `json:"location"`
	Occasion string       `json:"occasion,omitempty"`
}

// Validate validates the RecommendRequest using the validator.
func (r *RecommendRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// RecommendationResponse is the final artifact of one pipeline run.
// Every field is always populated; GeneratedImageURL may be a placeholder URL
// but is never empty. Assembled once and never mutated after return.
type RecommendationResponse struct {
	RequestID         string              `json:"request_id"`
	Explanation       string              `json:"explanation"`
	Logic             string              `json:"logic"`
	WeatherAdjustment string              `json:"weather_adjustment"`
	Recommendations   []string            `json:"recommendations"`
	GeneratedImageURL string              `json:"generated_image_url"`
	ColorAnalysis     ColorAnalysis       `json:"color_analysis"`
	ConfidenceScore   int                 `json:"confidence_score"`
	GarmentAnalyses   []GarmentAttributes `json:"garment_analyses"`
}
