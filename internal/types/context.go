package types

// Season represents a calendar season for trend lookups.
type Season string

// Season values.
const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
	SeasonWinter Season = "winter"
)

// WeatherContext holds weather data for one location, fetched fresh per request.
type WeatherContext struct {
	TemperatureC float64 `json:"temperature_c"`
	FeelsLikeC   float64 `json:"feels_like_c"`
	HumidityPct  int     `json:"humidity_pct"`
	Condition    string  `json:"condition"`
	Description  string  `json:"description"`
	WindSpeed    float64 `json:"wind_speed"`
	Location     string  `json:"location"`
	Country      string  `json:"country,omitempty"`
}

// TrendSnapshot describes the fashion trends for a (city, season) pair.
// City-specific entries may lack a season dimension; see the weather package.
type TrendSnapshot struct {
	Season         Season   `json:"season,omitempty"`
	Description    string   `json:"description"`
	TrendingItems  []string `json:"trending_items"`
	TrendingColors []string `json:"trending_colors"`
	TrendingStyles []string `json:"trending_styles"`
}

// WeatherAdjustments are the clothing adjustments derived from weather data.
type WeatherAdjustments struct {
	TemperatureRange string   `json:"temperature_range"`
	Condition        string   `json:"condition"`
	Adjustments      []string `json:"adjustments"`
	Humidity         string   `json:"humidity"`
	WindSpeed        string   `json:"wind_speed"`
}

// TrendAlignment scores how well an outfit tracks current trends.
type TrendAlignment struct {
	Alignment []string `json:"alignment"`
	Score     int      `json:"score"`
	Notes     []string `json:"notes,omitempty"`
}

// ContextualAdjustment is the context provider's full output: weather data,
// derived adjustments, trend alignment, and a human-readable note.
type ContextualAdjustment struct {
	Weather        WeatherContext     `json:"weather"`
	Adjustments    WeatherAdjustments `json:"adjustments"`
	TrendingItems  []string           `json:"trending_items"`
	TrendAlignment TrendAlignment     `json:"trend_alignment"`
	Note           string             `json:"note"`
	FinalTip       string             `json:"final_tip"`
}
