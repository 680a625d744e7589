// Package weather supplies the weather snapshot attached to a report.
//
// A Service sits in front of a Provider and guarantees that a snapshot
// is always available: fresh observations are cached for a validity
// window, a failed fetch falls back to the cache, and when neither
// exists a synthetic snapshot is generated and flagged as degraded so
// callers can tell it apart from real data. Report creation therefore
// never blocks on the weather collaborator.
package weather

import (
	"context"
	"errors"
	"time"

	"github.com/skystack/flightform/internal/domain"
)

// ErrUnavailable is returned by providers when no observation could be
// retrieved.
var ErrUnavailable = errors.New("weather data unavailable")

// Provider fetches a current weather observation for a location.
//
// Implementations:
// - OpenMeteoProvider: live observations from the Open-Meteo API
// - MockProvider: synthetic observations for development and tests
type Provider interface {
	Fetch(ctx context.Context, lat, lon float64) (domain.WeatherSnapshot, error)
}

// Provider selection constants.
const (
	ProviderOpenMeteo = "openmeteo"
	ProviderMock      = "mock"
)

// DefaultCacheTTL is the validity window of a cached snapshot.
const DefaultCacheTTL = 5 * time.Minute

// Config holds the service's location and cache settings.
type Config struct {
	// Latitude and Longitude of the operating site.
	Latitude  float64
	Longitude float64

	// CacheTTL is how long a snapshot stays valid. Zero means
	// DefaultCacheTTL.
	CacheTTL time.Duration
}
