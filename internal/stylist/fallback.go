package stylist

import (
	"github.com/pixie/outfit-stylist/internal/types"
)

// Fallback garment pools. When no image could be classified, one attribute is
// drawn uniformly from each pool so downstream output stays varied instead of
// identically blank.
var (
	fallbackGarmentTypes = []string{
		"white t-shirt", "denim jacket", "black blazer",
		"knit sweater", "midi skirt", "straight-leg jeans",
	}
	fallbackStyles = []string{
		"Minimalist", "Streetwear", "Business Casual", "Preppy", "Bohemian",
	}
	fallbackColors = []types.ColorRef{
		"#000000", "#FFFFFF", "#6C5CE7", "#00CEC9", "#FAB1A0", "#2D3436",
	}
	fallbackFits = []types.Fit{
		types.FitFitted, types.FitOversized, types.FitRelaxed, types.FitLoose,
	}
	fallbackOccasions = []string{"casual", "business", "party", "formal"}
)

// fallbackGarment draws a randomized garment from the fixed pools.
func (o *Orchestrator) fallbackGarment() types.GarmentAttributes {
	o.mu.Lock()
	defer o.mu.Unlock()

	return types.GarmentAttributes{
		GarmentType:      fallbackGarmentTypes[o.rng.Intn(len(fallbackGarmentTypes))],
		AestheticStyle:   fallbackStyles[o.rng.Intn(len(fallbackStyles))],
		PrimaryColor:     fallbackColors[o.rng.Intn(len(fallbackColors))],
		Fit:              fallbackFits[o.rng.Intn(len(fallbackFits))],
		Occasions:        []string{fallbackOccasions[o.rng.Intn(len(fallbackOccasions))]},
		VersatilityScore: 5,
	}
}
