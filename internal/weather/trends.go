package weather

import (
	"github.com/pixie/outfit-stylist/internal/types"
)

// globalTrends holds the seasonal trend snapshots used when no city-specific
// entry exists.
var globalTrends = map[types.Season]types.TrendSnapshot{
	types.SeasonSpring: {
		Season:         types.SeasonSpring,
		Description:    "Spring trends emphasize pastels, floral patterns, and lightweight layers.",
		TrendingItems:  []string{"linen pants", "oversized blazer", "ballet flats", "light cardigan", "maxi skirt"},
		TrendingColors: []string{"#FFB6C1", "#98FB98", "#87CEEB"},
		TrendingStyles: []string{"minimalist", "romantic", "preppy"},
	},
	types.SeasonSummer: {
		Season:         types.SeasonSummer,
		Description:    "Summer is all about breathable fabrics, bright colors, and minimalist silhouettes.",
		TrendingItems:  []string{"crop top", "linen shorts", "sundress", "sandals", "straw hat"},
		TrendingColors: []string{"#FFD700", "#FF69B4", "#FFA500"},
		TrendingStyles: []string{"casual", "beach", "minimalist"},
	},
	types.SeasonFall: {
		Season:         types.SeasonFall,
		Description:    "Fall fashion embraces earth tones, layering, and structured pieces.",
		TrendingItems:  []string{"oversized coat", "black trousers", "ankle boots", "turtleneck", "leather jacket"},
		TrendingColors: []string{"#8B4513", "#A0522D", "#CD853F"},
		TrendingStyles: []string{"business casual", "streetwear", "minimalist"},
	},
	types.SeasonWinter: {
		Season:         types.SeasonWinter,
		Description:    "Winter calls for cozy textures, neutral tones, and statement outerwear.",
		TrendingItems:  []string{"puffer coat", "wool sweater", "wide-leg pants", "boots", "beanie"},
		TrendingColors: []string{"#000000", "#FFFFFF", "#808080"},
		TrendingStyles: []string{"minimalist", "streetwear", "business casual"},
	},
}

// cityTrends holds flat city-level entries with no seasonal breakdown.
// A matching city returns its single entry regardless of the requested season.
var cityTrends = map[string]types.TrendSnapshot{
	"Tokyo": {
		Description:    "Tokyo fashion leads with minimalist silhouettes, layering, and statement accessories.",
		TrendingItems:  []string{"oversized shirt", "slim trousers", "platform shoes", "minimal jewelry"},
		TrendingStyles: []string{"minimalist", "streetwear", "avant-garde"},
		TrendingColors: []string{"#000000", "#FFFFFF", "#808080"},
	},
	"New York": {
		Description:    "NYC style is bold, sophisticated, and trend-forward with power dressing.",
		TrendingItems:  []string{"tailored blazer", "black pants", "structured bag", "heels"},
		TrendingStyles: []string{"business", "streetwear", "chic"},
		TrendingColors: []string{"#000000", "#FFFFFF", "#FF0000"},
	},
	"Paris": {
		Description:    "Parisian style emphasizes effortless elegance and timeless pieces.",
		TrendingItems:  []string{"striped shirt", "beret", "ballet flats", "trench coat"},
		TrendingStyles: []string{"minimalist", "romantic", "preppy"},
		TrendingColors: []string{"#000000", "#FFFFFF", "#FFD700"},
	},
}

// GetTrends returns the trend snapshot for a city and season. An empty season
// defaults to the current one. City entries take precedence over the global
// seasonal table; they carry no season dimension, so a matching city returns
// the same snapshot for every season.
func (p *Provider) GetTrends(city string, season types.Season) types.TrendSnapshot {
	if season == "" {
		season = SeasonFromTime(p.now())
	}

	if snapshot, ok := cityTrends[city]; ok {
		return snapshot
	}
	if snapshot, ok := globalTrends[season]; ok {
		return snapshot
	}
	return globalTrends[types.SeasonFall]
}
