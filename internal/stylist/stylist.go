// Package stylist orchestrates the recommendation pipeline: vision
// classification, the styling rule engine, weather and trend context, and
// image synthesis, merged into one complete response. Stage failures degrade
// quality through per-stage fallbacks and never abort the pipeline.
package stylist

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pixie/outfit-stylist/internal/imagegen"
	"github.com/pixie/outfit-stylist/internal/store"
	"github.com/pixie/outfit-stylist/internal/styling"
	"github.com/pixie/outfit-stylist/internal/types"
	"github.com/pixie/outfit-stylist/internal/vision"
	"github.com/pixie/outfit-stylist/internal/weather"
)

// DefaultCity is used when a request carries no location.
const DefaultCity = "New York"

// explanationTrailer closes every explanation text.
const explanationTrailer = "Wear it with confidence: every suggestion here is chosen to work together as one look."

// ProgressEvent represents a progress update during pipeline execution.
type ProgressEvent struct {
	Step      string `json:"step"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
	Content   any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs.
type ProgressCallback func(event ProgressEvent)

// GarmentClassifier is the vision stage consumed by the orchestrator.
type GarmentClassifier interface {
	ClassifyBatch(ctx context.Context, images []types.ImageInput) vision.BatchResult
}

// ContextProvider is the weather/trend stage consumed by the orchestrator.
type ContextProvider interface {
	AdjustOutfit(ctx context.Context, result *types.StylingResult, city string) *types.ContextualAdjustment
}

// ImageSynthesizer is the image stage consumed by the orchestrator.
type ImageSynthesizer interface {
	Synthesize(ctx context.Context, result *types.StylingResult, sctx imagegen.SynthesisContext) string
}

// Options wires the pipeline stages together.
type Options struct {
	Classifier  GarmentClassifier
	Engine      *styling.Engine
	Context     ContextProvider
	Images      ImageSynthesizer
	Store       store.Store
	DefaultCity string
	// Rand drives fallback garment selection. Nil means time-seeded.
	Rand       *rand.Rand
	OnProgress ProgressCallback
}

// Orchestrator runs the full recommendation pipeline for one request at a
// time and records completed responses in the store.
type Orchestrator struct {
	classifier  GarmentClassifier
	engine      *styling.Engine
	context     ContextProvider
	images      ImageSynthesizer
	store       store.Store
	defaultCity string
	onProgress  ProgressCallback

	mu  sync.Mutex
	rng *rand.Rand
}

// New creates an orchestrator from the given stages.
func New(opts Options) *Orchestrator {
	engine := opts.Engine
	if engine == nil {
		engine = styling.NewEngine(nil)
	}

	city := opts.DefaultCity
	if city == "" {
		city = DefaultCity
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Orchestrator{
		classifier:  opts.Classifier,
		engine:      engine,
		context:     opts.Context,
		images:      opts.Images,
		store:       opts.Store,
		defaultCity: city,
		onProgress:  opts.OnProgress,
		rng:         rng,
	}
}

// Orchestrate runs the pipeline for one request. The returned response always
// has every field populated; the error is non-nil only for a defect inside
// the rule engine, which the fallback garment step prevents structurally.
func (o *Orchestrator) Orchestrate(ctx context.Context, req types.RecommendRequest) (*types.RecommendationResponse, error) {
	requestID := uuid.NewString()

	garments, usedFallback := o.collectGarments(ctx, requestID, req.Images)

	occasion := req.Occasion
	if occasion == "" {
		occasion = "casual"
	}

	o.emitProgress(requestID, "styling", fmt.Sprintf("Styling %d garment(s)", len(garments)), nil)
	result, err := o.engine.Recommend(garments, styling.Context{Occasion: occasion})
	if err != nil {
		return nil, fmt.Errorf("styling engine failed: %w", err)
	}

	city := req.Location
	if city == "" {
		city = o.defaultCity
	}
	o.emitProgress(requestID, "context", "Adjusting for weather and trends in "+city, nil)
	contextual := o.context.AdjustOutfit(ctx, result, city)

	o.emitProgress(requestID, "imagegen", "Generating outfit visualization", nil)
	imageURL := o.images.Synthesize(ctx, result, imagegen.SynthesisContext{
		Occasion: occasion,
		Setting:  city,
	})

	response := buildResponse(requestID, result, contextual, imageURL, garments, usedFallback)
	if o.store != nil {
		o.store.Set(requestID, response)
	}
	o.emitProgress(requestID, "complete", "Recommendation ready", response)
	return response, nil
}

// collectGarments classifies the uploaded images and falls back to a randomly
// drawn garment when nothing could be analyzed, so the rule engine always
// receives at least one input.
func (o *Orchestrator) collectGarments(ctx context.Context, requestID string, images []types.ImageInput) ([]types.GarmentAttributes, bool) {
	var garments []types.GarmentAttributes

	if len(images) > 0 && o.classifier != nil {
		o.emitProgress(requestID, "vision", fmt.Sprintf("Classifying %d image(s)", len(images)), nil)
		batch := o.classifier.ClassifyBatch(ctx, images)
		for _, failure := range batch.Failures {
			log.Printf("Warning: image %d classification failed: %v", failure.Index+1, failure.Err)
		}
		garments = batch.Garments
	}

	if len(garments) == 0 {
		o.emitProgress(requestID, "vision", "No garment analysis available, drawing a fallback garment", nil)
		return []types.GarmentAttributes{o.fallbackGarment()}, true
	}
	return garments, false
}

func (o *Orchestrator) emitProgress(requestID, step, message string, content any) {
	if o.onProgress != nil {
		o.onProgress(ProgressEvent{
			Step:      step,
			Message:   message,
			RequestID: requestID,
			Content:   content,
		})
	}
}

// buildResponse is the single total conversion from stage outputs to the
// response record. Every field is assigned unconditionally.
func buildResponse(
	requestID string,
	result *types.StylingResult,
	contextual *types.ContextualAdjustment,
	imageURL string,
	garments []types.GarmentAttributes,
	usedFallback bool,
) *types.RecommendationResponse {
	var source string
	if usedFallback {
		source = "No garments could be analyzed, so these suggestions start from a versatile default piece."
	} else {
		source = fmt.Sprintf("Based on %d analyzed garment(s).", len(garments))
	}

	return &types.RecommendationResponse{
		RequestID:         requestID,
		Explanation:       result.StylingLogic + " " + explanationTrailer,
		Logic:             source + " " + result.StylingLogic,
		WeatherAdjustment: contextual.Note,
		Recommendations:   result.Recommendations,
		GeneratedImageURL: imageURL,
		ColorAnalysis:     result.ColorAnalysis,
		ConfidenceScore:   result.ConfidenceScore,
		GarmentAnalyses:   garments,
	}
}

var (
	_ GarmentClassifier = (*vision.Classifier)(nil)
	_ ContextProvider   = (*weather.Provider)(nil)
	_ ImageSynthesizer  = (*imagegen.Synthesizer)(nil)
)
