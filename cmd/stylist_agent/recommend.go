package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/pixie/outfit-stylist/internal/observability"
	"github.com/pixie/outfit-stylist/internal/store"
	"github.com/pixie/outfit-stylist/internal/stylist"
	"github.com/pixie/outfit-stylist/internal/types"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Run the full recommendation pipeline once from the command line",
	Long: `Runs the entire recommendation process for a set of clothing photos: garment classification -> styling -> weather and trend adjustment -> outfit image generation.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runRecommend,
}

var (
	recommendConfigPath string
	recommendImages     []string
	recommendMessage    string
	recommendLocation   string
	recommendOccasion   string
	recommendAPIKey     string
	recommendVerbose    bool
)

func init() {
	recommendCmd.Flags().StringVar(&recommendConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	recommendCmd.Flags().StringArrayVarP(&recommendImages, "image", "i", nil, "Path to a clothing image (repeatable, up to 10)")
	recommendCmd.Flags().StringVarP(&recommendMessage, "message", "m", "", "Free-form styling request")
	recommendCmd.Flags().StringVarP(&recommendLocation, "location", "l", "", "City for weather and trend context")
	recommendCmd.Flags().StringVar(&recommendOccasion, "occasion", "", "Occasion (casual, business, formal, party)")
	recommendCmd.Flags().BoolVarP(&recommendVerbose, "verbose", "v", false, "Print per-stage progress")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	recommendCmd.Flags().StringVar(&recommendAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(recommendConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("api-key") {
		cfg.GeminiAPIKey = recommendAPIKey
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = recommendVerbose
	}
	cfg = cfg.WithDefaults()

	if len(recommendImages) == 0 && recommendMessage == "" {
		return fmt.Errorf("provide at least one --image or a --message")
	}
	if cfg.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}

	req := types.RecommendRequest{
		Message:  recommendMessage,
		Location: recommendLocation,
		Occasion: recommendOccasion,
	}
	for _, path := range recommendImages {
		image, err := loadImage(path)
		if err != nil {
			return err
		}
		req.Images = append(req.Images, *image)
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}

	var onProgress stylist.ProgressCallback
	if cfg.Verbose {
		onProgress = func(event stylist.ProgressEvent) {
			_, _ = fmt.Fprintf(os.Stderr, "[%s] %s\n", event.Step, event.Message)
		}
	}

	orchestrator, closeClient, err := buildOrchestrator(ctx, cfg, store.NewMemory(), onProgress)
	if err != nil {
		return fmt.Errorf("failed to build pipeline: %w", err)
	}
	defer closeClient()

	response, err := orchestrator.Orchestrate(ctx, req)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintResponse(response)
	return nil
}

// loadImage reads an image file and sniffs its MIME type from the content.
func loadImage(path string) (*types.ImageInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("image %s is empty", path)
	}
	return &types.ImageInput{
		Data:     data,
		MimeType: http.DetectContentType(data),
	}, nil
}
