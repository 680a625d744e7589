package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/skystack/flightform/internal/domain"
)

// timeFormat is a fixed-width RFC3339 layout. Every timestamp renders
// with nine fractional digits so lexicographic order on the created_at
// column matches chronological order.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

func encodeTime(t time.Time) string {
	return t.UTC().Format(timeFormat)
}

func decodeTime(s string) (time.Time, error) {
	return time.Parse(timeFormat, s)
}

// encodeDocument serializes the full report for the document column.
func encodeDocument(report domain.Report) (string, error) {
	raw, err := json.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("encode report %s: %w", report.ID, err)
	}
	return string(raw), nil
}

// decodeDocument restores a report from its document column.
func decodeDocument(raw string) (domain.Report, error) {
	var report domain.Report
	if err := json.Unmarshal([]byte(raw), &report); err != nil {
		return domain.Report{}, fmt.Errorf("decode report document: %w", err)
	}
	return report, nil
}
