package weather

import (
	"math/rand"
	"time"

	"github.com/skystack/flightform/internal/domain"
)

var (
	compassPoints        = []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
	visibilityCategories = []string{"Excellent", "Good", "Moderate", "Poor"}
	conditionLabels      = []string{"Clear", "Partly cloudy", "Cloudy", "Overcast"}
)

// Synthetic generates a plausible snapshot for degraded operation when
// no observation and no valid cache entry exist. Value ranges mirror a
// mild temperate flying day; the caller is responsible for setting the
// Degraded flag when using this as a fallback.
func Synthetic(now time.Time) domain.WeatherSnapshot {
	return domain.WeatherSnapshot{
		Temperature:   float64(rand.Intn(15) + 10),              // 10-25 °C
		WindSpeed:     float64(rand.Intn(10) + 2),               // 2-12 m/s
		WindDirection: compassPoints[rand.Intn(len(compassPoints))],
		Humidity:      rand.Intn(50) + 30,                       // 30-80 %
		Precipitation: rand.Float64() * 5,                       // 0-5 mm
		Visibility:    visibilityCategories[rand.Intn(len(visibilityCategories))],
		Pressure:      float64(rand.Intn(30) + 990),             // 990-1020 hPa
		Conditions:    conditionLabels[rand.Intn(len(conditionLabels))],
		CapturedAt:    now,
	}
}

// compassDirection converts a wind bearing in degrees to the nearest
// 8-point compass label.
func compassDirection(degrees float64) string {
	for degrees < 0 {
		degrees += 360
	}
	idx := int((degrees+22.5)/45) % len(compassPoints)
	return compassPoints[idx]
}
