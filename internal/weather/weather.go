// Package weather provides weather and fashion-trend context for outfit
// recommendations. Every exported lookup is total: upstream failures fall back
// to deterministic mock data, so callers never branch on errors.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/pixie/outfit-stylist/internal/types"
)

// DefaultBaseURL is the OpenWeatherMap current-weather endpoint.
const DefaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// DefaultTimeout is the default weather request timeout.
const DefaultTimeout = 30 * time.Second

// Error represents an error during a weather fetch.
type Error struct {
	Location string
	Message  string
	Cause    error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("weather error for %s: %s: %v", e.Location, e.Message, e.Cause)
	}
	return fmt.Sprintf("weather error for %s: %s", e.Location, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures the provider.
type Options struct {
	APIKey     string
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	// Now supplies the current time for season derivation and mock weather.
	// Nil means time.Now.
	Now func() time.Time
}

// DefaultOptions returns sensible defaults for the provider.
func DefaultOptions() *Options {
	return &Options{
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// Provider fetches weather data and trend snapshots.
type Provider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	now        func() time.Time
}

// NewProvider creates a weather provider. A nil opts uses DefaultOptions.
func NewProvider(opts *Options) *Provider {
	if opts == nil {
		opts = DefaultOptions()
	}

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Provider{
		apiKey:     opts.APIKey,
		baseURL:    baseURL,
		httpClient: httpClient,
		now:        now,
	}
}

// GetWeather returns the current weather for a city. It never fails: any
// upstream problem (unreachable, non-2xx, malformed payload) falls back to the
// season-derived mock.
func (p *Provider) GetWeather(ctx context.Context, city, country string) types.WeatherContext {
	weather, err := p.fetchWeather(ctx, city, country)
	if err != nil {
		log.Printf("Warning: weather fetch failed, using mock data: %v", err)
		return MockWeather(p.now())
	}
	return *weather
}

// owmResponse mirrors the OpenWeatherMap current-weather payload.
type owmResponse struct {
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
}

func (p *Provider) fetchWeather(ctx context.Context, city, country string) (*types.WeatherContext, error) {
	location := city
	if country != "" {
		location = city + "," + country
	}

	query := url.Values{}
	query.Set("q", location)
	query.Set("appid", p.apiKey)
	query.Set("units", "metric")
	requestURL := p.baseURL + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, &Error{Location: location, Message: "failed to create request", Cause: err}
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Location: location, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{
			Location: location,
			Message:  fmt.Sprintf("unexpected status %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Location: location, Message: "failed to read response body", Cause: err}
	}

	var payload owmResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &Error{Location: location, Message: "failed to parse response", Cause: err}
	}
	if len(payload.Weather) == 0 {
		return nil, &Error{Location: location, Message: "response missing weather conditions"}
	}

	return &types.WeatherContext{
		TemperatureC: payload.Main.Temp,
		FeelsLikeC:   payload.Main.FeelsLike,
		HumidityPct:  payload.Main.Humidity,
		Condition:    payload.Weather[0].Main,
		Description:  payload.Weather[0].Description,
		WindSpeed:    payload.Wind.Speed,
		Location:     payload.Name,
		Country:      payload.Sys.Country,
	}, nil
}

// MockWeather returns deterministic weather derived from the calendar month,
// used whenever the live fetch is unavailable.
func MockWeather(now time.Time) types.WeatherContext {
	var temp float64
	var condition, description string

	switch SeasonFromTime(now) {
	case types.SeasonSpring:
		temp, condition, description = 15, "Partly Cloudy", "partly cloudy with mild temperatures"
	case types.SeasonSummer:
		temp, condition, description = 25, "Sunny", "sunny and warm"
	case types.SeasonFall:
		temp, condition, description = 18, "Cloudy", "cloudy with moderate temperatures"
	default:
		temp, condition, description = 5, "Rainy", "rainy and cold"
	}

	return types.WeatherContext{
		TemperatureC: temp,
		FeelsLikeC:   temp - 2,
		HumidityPct:  65,
		Condition:    condition,
		Description:  description,
		WindSpeed:    5,
		Location:     "Current Location",
		Country:      "--",
	}
}

// SeasonFromTime maps a calendar month to its season.
func SeasonFromTime(t time.Time) types.Season {
	switch t.Month() {
	case time.March, time.April, time.May:
		return types.SeasonSpring
	case time.June, time.July, time.August:
		return types.SeasonSummer
	case time.September, time.October, time.November:
		return types.SeasonFall
	default:
		return types.SeasonWinter
	}
}
