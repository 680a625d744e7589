package weather

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/skystack/flightform/internal/domain"
)

// MockProvider is a synthetic weather provider for development and
// tests. By default it returns randomized plausible observations; tests
// can pin a response or force an error.
type MockProvider struct {
	logger *slog.Logger

	mu sync.Mutex

	// FetchResponse, when set, is returned verbatim.
	FetchResponse *domain.WeatherSnapshot

	// FetchError, when set, fails every fetch.
	FetchError error

	// FetchCalls counts invocations.
	FetchCalls int
}

// NewMockProvider creates a new mock weather provider.
func NewMockProvider(logger *slog.Logger) *MockProvider {
	return &MockProvider{logger: logger}
}

// Fetch returns a synthetic observation.
func (p *MockProvider) Fetch(ctx context.Context, lat, lon float64) (domain.WeatherSnapshot, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.FetchCalls++

	if p.FetchError != nil {
		return domain.WeatherSnapshot{}, p.FetchError
	}
	if p.FetchResponse != nil {
		return *p.FetchResponse, nil
	}

	snap := Synthetic(time.Now())
	p.logger.Debug("mock weather fetch",
		"lat", lat,
		"lon", lon,
		"temperature", snap.Temperature,
		"wind_speed", snap.WindSpeed,
	)
	return snap, nil
}
