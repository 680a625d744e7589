package domain

import "time"

// WeatherSnapshot is a timestamped weather reading attached to a report
// at creation time. The core treats it as an opaque, already-validated
// value produced by the weather collaborator.
//
// Degraded marks synthetically generated data emitted when neither a
// live fetch nor a valid cache entry was available; callers can branch
// on it and must never mistake degraded data for a real observation.
// FromCache marks a reading served from the local cache rather than a
// fresh fetch.
type WeatherSnapshot struct {
	Temperature   float64   `json:"temperature"`   // °C
	WindSpeed     float64   `json:"windSpeed"`     // m/s
	WindDirection string    `json:"windDirection"` // 8-point compass label
	Humidity      int       `json:"humidity"`      // percent
	Precipitation float64   `json:"precipitation"` // mm
	Visibility    string    `json:"visibility"`    // category label
	Pressure      float64   `json:"pressure"`      // hPa
	Conditions    string    `json:"conditions"`
	CapturedAt    time.Time `json:"capturedAt"`
	Degraded      bool      `json:"degraded,omitempty"`
	FromCache     bool      `json:"fromCache,omitempty"`
}

// Age returns how old the snapshot is relative to now.
func (w WeatherSnapshot) Age(now time.Time) time.Duration {
	return now.Sub(w.CapturedAt)
}
