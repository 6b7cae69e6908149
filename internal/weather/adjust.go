package weather

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/pixie/outfit-stylist/internal/types"
)

// AdjustOutfit composes weather and trend context into styling adjustments for
// an outfit. Like the lookups it builds on, it is total: upstream failures
// degrade to mock data, never to an error.
func (p *Provider) AdjustOutfit(ctx context.Context, result *types.StylingResult, city string) *types.ContextualAdjustment {
	weather := p.GetWeather(ctx, city, "")
	trends := p.GetTrends(city, "")

	adjustments := weatherAdjustments(weather)
	alignment := alignWithTrends(result, trends)

	return &types.ContextualAdjustment{
		Weather:        weather,
		Adjustments:    adjustments,
		TrendingItems:  trends.TrendingItems,
		TrendAlignment: alignment,
		Note:           fmt.Sprintf("In %s, %s. %s", weather.Location, weather.Description, trends.Description),
		FinalTip: fmt.Sprintf(
			"Perfect outfit for %s weather. Remember the adjustments for optimal comfort and style!",
			weather.Description),
	}
}

// weatherAdjustments derives clothing adjustments from the temperature band
// and the weather condition. Condition adjustments are additive: a rainy cold
// day gets both the cold-band list and the rain list.
func weatherAdjustments(weather types.WeatherContext) types.WeatherAdjustments {
	temp := weather.TemperatureC
	condition := strings.ToLower(weather.Condition)
	var adjustments []string

	switch {
	case temp < 0:
		adjustments = append(adjustments,
			"Heavy coat or puffer jacket required",
			"Thermal layers underneath",
			"Warm hat, gloves, and scarf recommended",
			"Close-toe boots or insulated footwear")
	case temp < 10:
		adjustments = append(adjustments,
			"Medium-weight jacket or cardigan",
			"Long sleeves or lightweight layers",
			"Optional: hat and light scarf",
			"Closed-toe shoes")
	case temp < 20:
		adjustments = append(adjustments,
			"Light jacket or blazer",
			"Comfortable layers",
			"Breathable fabrics",
			"Versatile footwear")
	case temp < 25:
		adjustments = append(adjustments,
			"Short sleeves or sleeveless possible",
			"Light, breathable fabrics",
			"Minimal layers",
			"Open-toe options viable")
	default:
		adjustments = append(adjustments,
			"Lightweight clothing essential",
			"Breathable, moisture-wicking fabrics",
			"Sun protection (hat, sunglasses)",
			"Cooling pastels and light colors")
	}

	switch {
	case strings.Contains(condition, "rain"):
		adjustments = append(adjustments,
			"Waterproof jacket or raincoat",
			"Water-resistant shoes or boots",
			"Consider dark colors to hide water spots",
			"Optional: umbrella accessory")
	case strings.Contains(condition, "snow"):
		adjustments = append(adjustments,
			"Insulated, waterproof outerwear",
			"Snow boots with grip",
			"Complete winter accessories")
	case strings.Contains(condition, "wind"):
		adjustments = append(adjustments,
			"Fitted clothing to minimize wind drag",
			"Layered approach for temperature control",
			"Secure accessories")
	case strings.Contains(condition, "clear") || strings.Contains(condition, "sunny"):
		adjustments = append(adjustments,
			"Sun protection essential",
			"Light colors to reflect heat",
			"Breathable, loose-fitting options")
	}

	return types.WeatherAdjustments{
		TemperatureRange: fmt.Sprintf("%.0f°C (feels like %.0f°C)",
			math.Round(weather.TemperatureC), math.Round(weather.FeelsLikeC)),
		Condition:   weather.Description,
		Adjustments: adjustments,
		Humidity:    fmt.Sprintf("%d%%", weather.HumidityPct),
		WindSpeed:   fmt.Sprintf("%g m/s", weather.WindSpeed),
	}
}

// alignWithTrends scores how the outfit tracks the trend snapshot: 30 for a
// trending item appearing in the outfit text (15 otherwise), 20 for trending
// colors being available, 25 for trending styles.
func alignWithTrends(result *types.StylingResult, trends types.TrendSnapshot) types.TrendAlignment {
	alignment := types.TrendAlignment{}
	score := 0

	outfitText := outfitString(result)
	matched := false
	for _, item := range trends.TrendingItems {
		if strings.Contains(outfitText, item) {
			matched = true
			break
		}
	}
	if matched {
		alignment.Alignment = append(alignment.Alignment, "Your outfit aligns with current fashion trends")
		score += 30
	} else {
		alignment.Alignment = append(alignment.Alignment, "Your outfit features classic styles rather than trending pieces")
		score += 15
	}

	if len(trends.TrendingColors) > 0 {
		alignment.Alignment = append(alignment.Alignment,
			"Trending colors: "+strings.Join(trends.TrendingColors, ", "))
		score += 20
	}

	if len(trends.TrendingStyles) > 0 {
		alignment.Notes = append(alignment.Notes,
			fmt.Sprintf("Consider incorporating %s for on-trend appeal", trends.TrendingStyles[0]))
		score += 25
	}

	alignment.Score = score
	return alignment
}

// outfitString flattens the styling result into the text searched for trending
// item mentions.
func outfitString(result *types.StylingResult) string {
	if result == nil {
		return ""
	}
	parts := []string{result.BaseGarment.GarmentType, result.StylingLogic}
	parts = append(parts, result.Recommendations...)
	return strings.ToLower(strings.Join(parts, " "))
}
