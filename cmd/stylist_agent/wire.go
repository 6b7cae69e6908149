package main

import (
	"context"
	"fmt"

	"github.com/pixie/outfit-stylist/internal/config"
	"github.com/pixie/outfit-stylist/internal/imagegen"
	"github.com/pixie/outfit-stylist/internal/llm"
	"github.com/pixie/outfit-stylist/internal/store"
	"github.com/pixie/outfit-stylist/internal/stylist"
	"github.com/pixie/outfit-stylist/internal/vision"
	"github.com/pixie/outfit-stylist/internal/weather"
)

// buildOrchestrator assembles the full recommendation pipeline from the
// configuration. The returned closer releases the LLM client.
func buildOrchestrator(ctx context.Context, cfg config.Config, sessions store.Store, onProgress stylist.ProgressCallback) (*stylist.Orchestrator, func(), error) {
	client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.GeminiAPIKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	weatherOpts := weather.DefaultOptions()
	weatherOpts.APIKey = cfg.WeatherAPIKey

	imageOpts := imagegen.DefaultOptions()
	imageOpts.APIKey = cfg.OpenAIAPIKey
	imageOpts.Strict = cfg.StrictPrompts

	orchestrator := stylist.New(stylist.Options{
		Classifier:  vision.NewClassifier(client),
		Context:     weather.NewProvider(weatherOpts),
		Images:      imagegen.NewSynthesizer(imageOpts),
		Store:       sessions,
		DefaultCity: cfg.DefaultCity,
		OnProgress:  onProgress,
	})

	return orchestrator, func() { _ = client.Close() }, nil
}
