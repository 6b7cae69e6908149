package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pixie/outfit-stylist/internal/llm"
	"github.com/pixie/outfit-stylist/internal/observability"
	"github.com/pixie/outfit-stylist/internal/types"
	"github.com/pixie/outfit-stylist/internal/vision"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify clothing images without running the full pipeline",
	Long:  "Analyzes clothing photos with the vision model and prints the detected garment attributes plus an aggregated wardrobe profile.",
	RunE:  runClassify,
}

var (
	classifyImages []string
	classifyAPIKey string
)

func init() {
	classifyCmd.Flags().StringArrayVarP(&classifyImages, "image", "i", nil, "Path to a clothing image (repeatable, required)")
	classifyCmd.Flags().StringVar(&classifyAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	if err := classifyCmd.MarkFlagRequired("image"); err != nil {
		panic(fmt.Sprintf("failed to mark image flag as required: %v", err))
	}

	rootCmd.AddCommand(classifyCmd)
}

func runClassify(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	apiKey := classifyAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}

	var images []types.ImageInput
	for _, path := range classifyImages {
		image, err := loadImage(path)
		if err != nil {
			return err
		}
		images = append(images, *image)
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	classifier := vision.NewClassifier(client)
	profile := classifier.BuildWardrobeProfile(ctx, images)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintGarments(profile.Items)

	fmt.Printf("Analyzed %d of %d image(s)\n", profile.AnalyzedItems, profile.TotalItems)
	if len(profile.DominantColors) > 0 {
		fmt.Printf("Dominant colors: %s\n", strings.Join(profile.DominantColors, ", "))
	}
	if len(profile.StylePreferences) > 0 {
		fmt.Printf("Style preferences: %s\n", strings.Join(profile.StylePreferences, ", "))
	}
	fmt.Printf("Average versatility: %.1f/10\n", profile.AverageVersatility)
	for _, failure := range profile.Failures {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", failure)
	}
	return nil
}
