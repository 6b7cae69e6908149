package vision

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/pixie/outfit-stylist/internal/styling"
	"github.com/pixie/outfit-stylist/internal/types"
)

// BatchFailure records one image that could not be classified.
type BatchFailure struct {
	Index int
	Err   error
}

// BatchResult holds the outcome of a batch classification: successes in input
// order plus per-image failures. Failures never abort the batch.
type BatchResult struct {
	Garments []types.GarmentAttributes
	Failures []BatchFailure
}

// ClassifyBatch classifies all images concurrently. Each image settles
// independently: one failure does not cancel or affect the others.
func (c *Classifier) ClassifyBatch(ctx context.Context, images []types.ImageInput) BatchResult {
	garments := make([]*types.GarmentAttributes, len(images))
	errs := make([]error, len(images))

	g, gCtx := errgroup.WithContext(ctx)
	for i, image := range images {
		g.Go(func() error {
			garment, err := c.Classify(gCtx, image)
			if err != nil {
				errs[i] = err
				return nil
			}
			garments[i] = garment
			return nil
		})
	}
	// Goroutines report through the slices, so Wait cannot fail.
	_ = g.Wait()

	result := BatchResult{}
	for i := range images {
		if errs[i] != nil {
			result.Failures = append(result.Failures, BatchFailure{Index: i, Err: errs[i]})
			continue
		}
		result.Garments = append(result.Garments, *garments[i])
	}
	return result
}

// BuildWardrobeProfile batch-classifies the images and aggregates the results
// into a wardrobe summary: dominant colors, style preferences, and average
// versatility across the successfully analyzed items.
func (c *Classifier) BuildWardrobeProfile(ctx context.Context, images []types.ImageInput) *types.WardrobeProfile {
	batch := c.ClassifyBatch(ctx, images)

	profile := &types.WardrobeProfile{
		TotalItems:    len(images),
		AnalyzedItems: len(batch.Garments),
		Items:         batch.Garments,
	}
	for _, failure := range batch.Failures {
		profile.Failures = append(profile.Failures,
			fmt.Sprintf("image %d: %v", failure.Index+1, failure.Err))
	}

	seenColors := make(map[string]bool)
	seenStyles := make(map[string]bool)
	totalVersatility := 0
	for _, item := range batch.Garments {
		colors := append([]types.ColorRef{item.PrimaryColor}, item.SecondaryColors...)
		for _, color := range colors {
			name := styling.ToColorName(color)
			if name != "" && !seenColors[name] {
				seenColors[name] = true
				profile.DominantColors = append(profile.DominantColors, name)
			}
		}

		if item.AestheticStyle != "" && !seenStyles[item.AestheticStyle] {
			seenStyles[item.AestheticStyle] = true
			profile.StylePreferences = append(profile.StylePreferences, item.AestheticStyle)
		}

		versatility := item.VersatilityScore
		if versatility == 0 {
			versatility = 5
		}
		totalVersatility += versatility
	}

	if len(batch.Garments) > 0 {
		average := float64(totalVersatility) / float64(len(batch.Garments))
		profile.AverageVersatility = math.Round(average*10) / 10
	}
	return profile
}
