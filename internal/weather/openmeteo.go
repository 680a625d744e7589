package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/skystack/flightform/internal/domain"
)

const (
	// openMeteoBaseURL is the forecast endpoint of the Open-Meteo API.
	// The service is keyless, which suits a single-operator deployment.
	openMeteoBaseURL = "https://api.open-meteo.com/v1/forecast"

	// openMeteoTimeout bounds a single request.
	openMeteoTimeout = 10 * time.Second
)

// OpenMeteoProvider fetches live observations from Open-Meteo.
type OpenMeteoProvider struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewOpenMeteoProvider creates a live weather provider.
func NewOpenMeteoProvider(logger *slog.Logger) *OpenMeteoProvider {
	return &OpenMeteoProvider{
		baseURL: openMeteoBaseURL,
		client:  &http.Client{Timeout: openMeteoTimeout},
		logger:  logger,
	}
}

// openMeteoResponse mirrors the subset of the API response we consume.
type openMeteoResponse struct {
	Current struct {
		Temperature   float64 `json:"temperature_2m"`
		Humidity      int     `json:"relative_humidity_2m"`
		Precipitation float64 `json:"precipitation"`
		Pressure      float64 `json:"surface_pressure"`
		WindSpeed     float64 `json:"wind_speed_10m"`
		WindDirection float64 `json:"wind_direction_10m"`
		WeatherCode   int     `json:"weather_code"`
	} `json:"current"`
}

// Fetch retrieves the current observation for the coordinates.
func (p *OpenMeteoProvider) Fetch(ctx context.Context, lat, lon float64) (domain.WeatherSnapshot, error) {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.4f", lat))
	q.Set("longitude", fmt.Sprintf("%.4f", lon))
	q.Set("current", "temperature_2m,relative_humidity_2m,precipitation,surface_pressure,wind_speed_10m,wind_direction_10m,weather_code")
	q.Set("wind_speed_unit", "ms")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return domain.WeatherSnapshot{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return domain.WeatherSnapshot{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.WeatherSnapshot{}, fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	var body openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.WeatherSnapshot{}, fmt.Errorf("decode response: %w", err)
	}

	snap := domain.WeatherSnapshot{
		Temperature:   body.Current.Temperature,
		WindSpeed:     body.Current.WindSpeed,
		WindDirection: compassDirection(body.Current.WindDirection),
		Humidity:      body.Current.Humidity,
		Precipitation: body.Current.Precipitation,
		Visibility:    visibilityForConditions(body.Current.WeatherCode, body.Current.Precipitation),
		Pressure:      body.Current.Pressure,
		Conditions:    conditionLabel(body.Current.WeatherCode),
		CapturedAt:    time.Now(),
	}

	p.logger.Debug("weather fetched",
		"temperature", snap.Temperature,
		"wind_speed", snap.WindSpeed,
		"conditions", snap.Conditions,
	)

	return snap, nil
}

// conditionLabel maps a WMO weather code to a display label.
func conditionLabel(code int) string {
	switch {
	case code == 0:
		return "Clear"
	case code <= 2:
		return "Partly cloudy"
	case code == 3:
		return "Overcast"
	case code >= 45 && code <= 48:
		return "Fog"
	case code >= 51 && code <= 67:
		return "Rain"
	case code >= 71 && code <= 77:
		return "Snow"
	case code >= 80 && code <= 82:
		return "Rain showers"
	case code >= 95:
		return "Thunderstorm"
	}
	return "Cloudy"
}

// visibilityForConditions derives a coarse visibility category from the
// weather code and precipitation, since the current-weather endpoint
// carries no direct visibility reading.
func visibilityForConditions(code int, precipitation float64) string {
	switch {
	case code >= 45 && code <= 48: // fog
		return "Poor"
	case code >= 95 || precipitation > 2.5:
		return "Poor"
	case precipitation > 0.5:
		return "Moderate"
	case code == 3:
		return "Good"
	}
	return "Excellent"
}
