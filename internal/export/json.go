package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/skystack/flightform/internal/domain"
)

// JSONGenerator exports the full report document. The output is the
// same shape the import path accepts, so an exported report can be
// round-tripped losslessly.
type JSONGenerator struct{}

// NewJSONGenerator creates a JSON export generator.
func NewJSONGenerator() *JSONGenerator {
	return &JSONGenerator{}
}

// Format returns the output format of this generator.
func (g *JSONGenerator) Format() Format {
	return FormatJSON
}

// Generate writes the report as indented JSON.
func (g *JSONGenerator) Generate(ctx context.Context, report domain.Report, w io.Writer) (int64, error) {
	raw, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("encode report: %w", err)
	}
	raw = append(raw, '\n')

	n, err := w.Write(raw)
	return int64(n), err
}

// ParseReport reads a report previously produced by the JSON generator.
func ParseReport(r io.Reader) (domain.Report, error) {
	var report domain.Report
	dec := json.NewDecoder(r)
	if err := dec.Decode(&report); err != nil {
		return domain.Report{}, fmt.Errorf("decode report: %w", err)
	}
	if report.ID == "" {
		return domain.Report{}, fmt.Errorf("decode report: missing id")
	}
	if err := domain.ValidateSections(report.Sections); err != nil {
		return domain.Report{}, err
	}
	return report, nil
}
