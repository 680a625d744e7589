package weather

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/skystack/flightform/internal/domain"
)

// Refresher re-fetches the weather on a fixed interval for the lifetime
// of an editing session, pushing each snapshot to an optional callback.
//
// Stop is deterministic: once it returns, the ticker is released and
// the callback will not be invoked again.
type Refresher struct {
	svc      *Service
	interval time.Duration
	onUpdate func(domain.WeatherSnapshot)
	logger   *slog.Logger

	stopOnce sync.Once
	stopCh   chan struct{}
	done     chan struct{}
}

// NewRefresher creates a refresher over the service. onUpdate may be
// nil; interval defaults to the cache validity window.
func NewRefresher(svc *Service, interval time.Duration, onUpdate func(domain.WeatherSnapshot), logger *slog.Logger) *Refresher {
	if interval <= 0 {
		interval = svc.cfg.CacheTTL
	}
	return &Refresher{
		svc:      svc,
		interval: interval,
		onUpdate: onUpdate,
		logger:   logger,
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the refresh loop. The context bounds each individual
// fetch, not the loop itself; use Stop to end the loop.
func (r *Refresher) Start(ctx context.Context) {
	go r.run(ctx)
	r.logger.Debug("weather refresher started", "interval", r.interval)
}

// Stop ends the loop and waits for it to exit. Safe to call more than
// once.
func (r *Refresher) Stop() {
	r.stopOnce.Do(func() {
		close(r.stopCh)
	})
	<-r.done
	r.logger.Debug("weather refresher stopped")
}

func (r *Refresher) run(ctx context.Context) {
	defer close(r.done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			snap := r.svc.Refresh(ctx)
			// Re-check before delivering so no callback runs after
			// Stop has been observed.
			select {
			case <-r.stopCh:
				return
			default:
			}
			if r.onUpdate != nil {
				r.onUpdate(snap)
			}
		}
	}
}
