package weather

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skystack/flightform/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCurrentLiveFetch(t *testing.T) {
	mock := NewMockProvider(testLogger())
	mock.FetchResponse = &domain.WeatherSnapshot{Temperature: 18, WindSpeed: 4, Conditions: "Clear"}

	svc := NewService(mock, Config{Latitude: 55.75, Longitude: 37.61}, testLogger())

	snap := svc.Current(context.Background())
	assert.Equal(t, 18.0, snap.Temperature)
	assert.False(t, snap.Degraded)
	assert.False(t, snap.FromCache)
	assert.False(t, snap.CapturedAt.IsZero())
	assert.Equal(t, 1, mock.FetchCalls)
}

func TestCurrentServesValidCache(t *testing.T) {
	mock := NewMockProvider(testLogger())
	mock.FetchResponse = &domain.WeatherSnapshot{Temperature: 12}

	svc := NewService(mock, Config{CacheTTL: 5 * time.Minute}, testLogger())

	first := svc.Current(context.Background())
	second := svc.Current(context.Background())

	assert.False(t, first.FromCache)
	assert.True(t, second.FromCache)
	assert.Equal(t, first.Temperature, second.Temperature)
	assert.Equal(t, 1, mock.FetchCalls, "second call must not hit the provider inside the validity window")
}

func TestCurrentFallsBackToCacheAfterExpiryRace(t *testing.T) {
	mock := NewMockProvider(testLogger())
	mock.FetchResponse = &domain.WeatherSnapshot{Temperature: 9}

	svc := NewService(mock, Config{CacheTTL: 5 * time.Minute}, testLogger())

	// Prime the cache, then break the provider and expire the entry.
	_ = svc.Current(context.Background())
	mock.FetchError = errors.New("offline")

	base := time.Now()
	svc.now = func() time.Time { return base.Add(10 * time.Minute) }

	snap := svc.Current(context.Background())
	assert.True(t, snap.Degraded, "stale cache must not be served as real data")
}

func TestCurrentSynthesizesWhenOfflineAndCacheEmpty(t *testing.T) {
	mock := NewMockProvider(testLogger())
	mock.FetchError = errors.New("no connectivity")

	svc := NewService(mock, Config{}, testLogger())

	snap := svc.Current(context.Background())
	assert.True(t, snap.Degraded)
	assert.False(t, snap.CapturedAt.IsZero())
	assert.GreaterOrEqual(t, snap.Temperature, 10.0)
	assert.LessOrEqual(t, snap.Temperature, 25.0)
	assert.NotEmpty(t, snap.WindDirection)
	assert.NotEmpty(t, snap.Conditions)
}

func TestRefreshBypassesCache(t *testing.T) {
	mock := NewMockProvider(testLogger())
	mock.FetchResponse = &domain.WeatherSnapshot{Temperature: 20}

	svc := NewService(mock, Config{}, testLogger())

	_ = svc.Current(context.Background())
	_ = svc.Refresh(context.Background())
	assert.Equal(t, 2, mock.FetchCalls)
}

func TestRefresherStopsDeterministically(t *testing.T) {
	mock := NewMockProvider(testLogger())
	mock.FetchResponse = &domain.WeatherSnapshot{Temperature: 15}

	svc := NewService(mock, Config{}, testLogger())

	var updates atomic.Int64
	r := NewRefresher(svc, 5*time.Millisecond, func(domain.WeatherSnapshot) {
		updates.Add(1)
	}, testLogger())

	r.Start(context.Background())

	require.Eventually(t, func() bool { return updates.Load() > 0 },
		time.Second, time.Millisecond, "refresher never fired")

	r.Stop()
	after := updates.Load()

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, updates.Load(), "callback fired after Stop returned")

	// Stop is idempotent.
	r.Stop()
}

func TestCompassDirection(t *testing.T) {
	tests := []struct {
		degrees float64
		want    string
	}{
		{0, "N"},
		{45, "NE"},
		{90, "E"},
		{135, "SE"},
		{180, "S"},
		{225, "SW"},
		{270, "W"},
		{315, "NW"},
		{359, "N"},
		{22, "N"},
		{23, "NE"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, compassDirection(tt.degrees), "%v degrees", tt.degrees)
	}
}

func TestConditionLabels(t *testing.T) {
	assert.Equal(t, "Clear", conditionLabel(0))
	assert.Equal(t, "Overcast", conditionLabel(3))
	assert.Equal(t, "Fog", conditionLabel(45))
	assert.Equal(t, "Rain", conditionLabel(61))
	assert.Equal(t, "Thunderstorm", conditionLabel(95))

	assert.Equal(t, "Poor", visibilityForConditions(45, 0))
	assert.Equal(t, "Moderate", visibilityForConditions(61, 1.0))
	assert.Equal(t, "Excellent", visibilityForConditions(0, 0))
}
