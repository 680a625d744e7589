package weather

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/skystack/flightform/internal/domain"
	"github.com/skystack/flightform/internal/metrics"
)

// Service answers "what is the weather right now" without ever failing.
//
// Resolution order on each call: a still-valid cache entry wins; then a
// live fetch, which on success overwrites the cache; then the cache
// again (covering a fetch that raced the validity window); and finally
// a synthetic snapshot flagged Degraded.
type Service struct {
	provider Provider
	cfg      Config
	logger   *slog.Logger

	// now is the clock; tests substitute it.
	now func() time.Time

	mu     sync.Mutex
	cached domain.WeatherSnapshot
	hasOne bool
}

// NewService creates a weather service over the given provider.
func NewService(provider Provider, cfg Config, logger *slog.Logger) *Service {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	return &Service{
		provider: provider,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
}

// Current returns a weather snapshot for the configured site. It never
// returns an error: degraded operation produces a synthetic snapshot
// with the Degraded flag set.
func (s *Service) Current(ctx context.Context) domain.WeatherSnapshot {
	if snap, ok := s.fromCache(); ok {
		metrics.WeatherFetches.WithLabelValues("cache").Inc()
		return snap
	}

	snap, err := s.provider.Fetch(ctx, s.cfg.Latitude, s.cfg.Longitude)
	if err == nil {
		snap.CapturedAt = s.now()
		s.store(snap)
		metrics.WeatherFetches.WithLabelValues("live").Inc()
		return snap
	}

	s.logger.Warn("weather fetch failed, falling back",
		"error", err,
		"lat", s.cfg.Latitude,
		"lon", s.cfg.Longitude,
	)

	// A concurrent refresh may have repopulated the cache while the
	// fetch was failing.
	if snap, ok := s.fromCache(); ok {
		metrics.WeatherFetches.WithLabelValues("cache").Inc()
		return snap
	}

	metrics.WeatherFetches.WithLabelValues("synthetic").Inc()
	synthetic := Synthetic(s.now())
	synthetic.Degraded = true
	return synthetic
}

// Refresh forces a live fetch, bypassing the cache-first shortcut. The
// background refresher uses it so the cache is renewed even while still
// valid. Falls back exactly like Current.
func (s *Service) Refresh(ctx context.Context) domain.WeatherSnapshot {
	snap, err := s.provider.Fetch(ctx, s.cfg.Latitude, s.cfg.Longitude)
	if err == nil {
		snap.CapturedAt = s.now()
		s.store(snap)
		metrics.WeatherFetches.WithLabelValues("live").Inc()
		return snap
	}

	s.logger.Warn("weather refresh failed, falling back", "error", err)

	if snap, ok := s.fromCache(); ok {
		metrics.WeatherFetches.WithLabelValues("cache").Inc()
		return snap
	}

	metrics.WeatherFetches.WithLabelValues("synthetic").Inc()
	synthetic := Synthetic(s.now())
	synthetic.Degraded = true
	return synthetic
}

func (s *Service) store(snap domain.WeatherSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cached = snap
	s.hasOne = true
}

// fromCache returns the cached snapshot if it is still inside the
// validity window, marked FromCache.
func (s *Service) fromCache() (domain.WeatherSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasOne || s.cached.Age(s.now()) > s.cfg.CacheTTL {
		return domain.WeatherSnapshot{}, false
	}
	snap := s.cached
	snap.FromCache = true
	return snap, true
}
