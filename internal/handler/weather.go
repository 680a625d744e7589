package handler

import (
	"log/slog"
	"net/http"

	"github.com/skystack/flightform/internal/weather"
)

// WeatherHandler serves current weather for the editing UI.
type WeatherHandler struct {
	weather *weather.Service
	logger  *slog.Logger
}

// NewWeatherHandler creates a weather handler.
func NewWeatherHandler(svc *weather.Service, logger *slog.Logger) *WeatherHandler {
	return &WeatherHandler{
		weather: svc,
		logger:  logger,
	}
}

// RegisterRoutes attaches the weather endpoint to the mux.
func (h *WeatherHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/weather", h.Current)
}

// Current returns a weather snapshot. The endpoint never fails: when
// the provider is unreachable the snapshot is synthetic and flagged
// degraded.
func (h *WeatherHandler) Current(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.weather.Current(r.Context()))
}
