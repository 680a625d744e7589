// Package export renders saved flight reports into downloadable
// artifacts.
//
// This package defines a Generator interface implemented by
// PDFGenerator and JSONGenerator, along with shared formatting and
// styling helpers.
package export

import (
	"context"
	"io"

	"github.com/skystack/flightform/internal/domain"
)

// =============================================================================
// Formats
// =============================================================================

// Format identifies an export output format.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatJSON Format = "json"
)

// IsValid returns true if the format is supported.
func (f Format) IsValid() bool {
	return f == FormatPDF || f == FormatJSON
}

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatJSON:
		return "application/json"
	}
	return "application/octet-stream"
}

// FileExtension returns the filename extension, without the dot.
func (f Format) FileExtension() string {
	return string(f)
}

// =============================================================================
// Generator Interface
// =============================================================================

// Generator defines the interface for report export generators.
// Implementations handle the specifics of each format.
type Generator interface {
	// Generate renders the report and writes it to the provided writer.
	// Returns the number of bytes written and any error.
	Generate(ctx context.Context, report domain.Report, w io.Writer) (int64, error)

	// Format returns the output format of this generator.
	Format() Format
}

// ForFormat returns the generator for the format.
func ForFormat(f Format) (Generator, bool) {
	switch f {
	case FormatPDF:
		return NewPDFGenerator(), true
	case FormatJSON:
		return NewJSONGenerator(), true
	}
	return nil, false
}

// =============================================================================
// Styling
// =============================================================================

// Colors defines the palette used in rendered documents.
var Colors = struct {
	Slate     string // Headers and accents
	TextDark  string // Primary text
	TextMuted string // Secondary text
	Border    string // Borders and dividers
	Degraded  string // Degraded-weather warning
}{
	Slate:     "#1E3A5F",
	TextDark:  "#1F2937",
	TextMuted: "#6B7280",
	Border:    "#E5E7EB",
	Degraded:  "#B45309",
}

// HexToRGB converts a hex color string to RGB values.
// Input format: "#RRGGBB" or "RRGGBB"
func HexToRGB(hex string) (r, g, b int) {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return 0, 0, 0
	}

	r = hexToDec(hex[0:2])
	g = hexToDec(hex[2:4])
	b = hexToDec(hex[4:6])
	return
}

func hexToDec(hex string) int {
	val := 0
	for _, c := range hex {
		val *= 16
		switch {
		case c >= '0' && c <= '9':
			val += int(c - '0')
		case c >= 'a' && c <= 'f':
			val += int(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			val += int(c - 'A' + 10)
		}
	}
	return val
}

// =============================================================================
// Formatting Helpers
// =============================================================================

// FormatDate formats a date for display in exports.
func FormatDate(t interface{ Format(string) string }) string {
	return t.Format("January 2, 2006")
}

// FormatDateTime formats a datetime for display in exports.
func FormatDateTime(t interface{ Format(string) string }) string {
	return t.Format("January 2, 2006 at 3:04 PM")
}
