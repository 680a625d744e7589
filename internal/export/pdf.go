package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/skystack/flightform/internal/domain"
)

// =============================================================================
// PDF Generator
// =============================================================================

// PDFGenerator renders flight reports as printable PDF documents.
type PDFGenerator struct {
	// Page dimensions (A4 in mm)
	pageWidth  float64
	pageHeight float64
	margin     float64

	// Content area
	contentWidth float64
}

// NewPDFGenerator creates a new PDF generator with default settings.
func NewPDFGenerator() *PDFGenerator {
	margin := 15.0
	pageWidth := 210.0 // A4 width in mm
	return &PDFGenerator{
		pageWidth:    pageWidth,
		pageHeight:   297.0, // A4 height in mm
		margin:       margin,
		contentWidth: pageWidth - (2 * margin),
	}
}

// Format returns the output format of this generator.
func (g *PDFGenerator) Format() Format {
	return FormatPDF
}

// Generate creates a PDF document and writes it to the provided writer.
func (g *PDFGenerator) Generate(ctx context.Context, report domain.Report, w io.Writer) (int64, error) {
	pdf := fpdf.New("P", "mm", "A4", "")

	pdf.SetTitle("Flight Report - "+report.Name, true)
	pdf.SetCreator("FlightForm", true)

	// Automatic page breaks with footer space
	pdf.SetAutoPageBreak(true, 20)

	pdf.SetFooterFunc(func() {
		g.addFooter(pdf, report)
	})

	g.addHeaderPage(pdf, report)
	g.addSections(pdf, report)

	if err := pdf.Error(); err != nil {
		return 0, fmt.Errorf("pdf generation error: %w", err)
	}

	// Write to buffer to count bytes
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return 0, fmt.Errorf("pdf output error: %w", err)
	}

	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

// =============================================================================
// Header Page
// =============================================================================

func (g *PDFGenerator) addHeaderPage(pdf *fpdf.Fpdf, report domain.Report) {
	pdf.AddPage()

	// Slate header bar
	r, gr, b := HexToRGB(Colors.Slate)
	pdf.SetFillColor(r, gr, b)
	pdf.Rect(0, 0, g.pageWidth, 55, "F")

	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 28)
	pdf.SetXY(g.margin, 18)
	pdf.Cell(0, 12, "Flight Report")

	pdf.SetFont("Helvetica", "", 14)
	pdf.SetXY(g.margin, 34)
	pdf.Cell(0, 8, report.Name)

	r, gr, b = HexToRGB(Colors.TextDark)
	pdf.SetTextColor(r, gr, b)

	// Flight metadata block
	pdf.SetXY(g.margin, 70)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "FLIGHT")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 10)
	g.addLabelValue(pdf, "Date", FormatDate(report.CreatedAt))
	g.addLabelValue(pdf, "Status", capitalize(string(report.Status)))
	if report.TemplateID != "" {
		g.addLabelValue(pdf, "Template", report.TemplateID)
	}

	// Equipment block
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "EQUIPMENT")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 10)
	g.addLabelValue(pdf, "Model", report.Equipment.Name)
	g.addLabelValue(pdf, "Weight", report.Equipment.Specs.Weight)
	g.addLabelValue(pdf, "Wingspan", report.Equipment.Specs.Wingspan)
	g.addLabelValue(pdf, "Flight time", report.Equipment.Specs.FlightTime)
	g.addLabelValue(pdf, "Max altitude", report.Equipment.Specs.MaxAltitude)
	g.addLabelValue(pdf, "Max speed", report.Equipment.Specs.MaxSpeed)
	g.addLabelValue(pdf, "Battery", report.Equipment.Specs.BatteryType)
	g.addLabelValue(pdf, "Camera", report.Equipment.Specs.CameraType)

	// Weather block
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "WEATHER AT SAVE")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 10)
	wx := report.Weather
	g.addLabelValue(pdf, "Temperature", fmt.Sprintf("%.1f °C", wx.Temperature))
	g.addLabelValue(pdf, "Wind", fmt.Sprintf("%.1f m/s %s", wx.WindSpeed, wx.WindDirection))
	g.addLabelValue(pdf, "Humidity", fmt.Sprintf("%d%%", wx.Humidity))
	g.addLabelValue(pdf, "Precipitation", fmt.Sprintf("%.1f mm", wx.Precipitation))
	g.addLabelValue(pdf, "Pressure", fmt.Sprintf("%.0f hPa", wx.Pressure))
	g.addLabelValue(pdf, "Visibility", wx.Visibility)
	g.addLabelValue(pdf, "Conditions", wx.Conditions)
	if !wx.CapturedAt.IsZero() {
		g.addLabelValue(pdf, "Captured", FormatDateTime(wx.CapturedAt))
	}

	if wx.Degraded {
		pdf.Ln(2)
		r, gr, b = HexToRGB(Colors.Degraded)
		pdf.SetTextColor(r, gr, b)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.Cell(0, 6, "Weather service was unreachable; values above are estimates.")
		pdf.Ln(6)
		r, gr, b = HexToRGB(Colors.TextDark)
		pdf.SetTextColor(r, gr, b)
	}
}

// =============================================================================
// Sections
// =============================================================================

func (g *PDFGenerator) addSections(pdf *fpdf.Fpdf, report domain.Report) {
	pdf.AddPage()
	g.addSectionHeader(pdf, "Checklist")

	if len(report.Sections) == 0 {
		pdf.SetFont("Helvetica", "I", 11)
		pdf.Cell(0, 10, "This report contains no sections.")
		return
	}

	for i, section := range report.Sections {
		// Leave room for at least the section title and one item
		if pdf.GetY() > 240 {
			pdf.AddPage()
		}

		g.addSection(pdf, section)

		if i < len(report.Sections)-1 {
			pdf.Ln(6)
			r, gr, b := HexToRGB(Colors.Border)
			pdf.SetDrawColor(r, gr, b)
			pdf.Line(g.margin, pdf.GetY(), g.pageWidth-g.margin, pdf.GetY())
			pdf.Ln(6)
		}
	}
}

func (g *PDFGenerator) addSection(pdf *fpdf.Fpdf, section domain.Section) {
	r, gr, b := HexToRGB(Colors.Slate)
	pdf.SetTextColor(r, gr, b)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, fmt.Sprintf("%d. %s", section.Order+1, section.Title))
	pdf.Ln(10)

	r, gr, b = HexToRGB(Colors.TextDark)
	pdf.SetTextColor(r, gr, b)

	if len(section.Items) == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.Cell(0, 6, "No items.")
		pdf.Ln(8)
		return
	}

	for _, item := range section.Items {
		g.addItem(pdf, item, 0)
		for _, sub := range item.SubItems {
			g.addItem(pdf, sub, 1)
		}
	}
}

// addItem renders one item line. depth 1 indents sub-items under their
// parent.
func (g *PDFGenerator) addItem(pdf *fpdf.Fpdf, item domain.Item, depth int) {
	if pdf.GetY() > 260 {
		pdf.AddPage()
	}

	indent := g.margin + float64(depth)*8
	pdf.SetX(indent)
	pdf.SetFont("Helvetica", "", 10)

	switch item.Kind {
	case domain.ItemKindCheckbox:
		glyph := "[ ]"
		if item.Value.Bool() {
			glyph = "[x]"
		}
		pdf.Cell(8, 6, glyph)
		pdf.MultiCell(g.contentWidth-(indent-g.margin)-8, 6, item.Content, "", "L", false)
	default:
		value := item.Value.String()
		if value == "" {
			r, gr, b := HexToRGB(Colors.TextMuted)
			pdf.SetTextColor(r, gr, b)
			pdf.MultiCell(g.contentWidth-(indent-g.margin), 6, item.Content+": (not filled in)", "", "L", false)
			r, gr, b = HexToRGB(Colors.TextDark)
			pdf.SetTextColor(r, gr, b)
		} else {
			pdf.MultiCell(g.contentWidth-(indent-g.margin), 6, item.Content+": "+value, "", "L", false)
		}
	}
}

// =============================================================================
// Helper Methods
// =============================================================================

func (g *PDFGenerator) addSectionHeader(pdf *fpdf.Fpdf, title string) {
	r, gr, b := HexToRGB(Colors.Slate)
	pdf.SetDrawColor(r, gr, b)
	pdf.SetLineWidth(0.5)

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(r, gr, b)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)

	pdf.Line(g.margin, pdf.GetY(), g.pageWidth-g.margin, pdf.GetY())
	pdf.Ln(8)

	r, gr, b = HexToRGB(Colors.TextDark)
	pdf.SetTextColor(r, gr, b)
}

func (g *PDFGenerator) addLabelValue(pdf *fpdf.Fpdf, label, value string) {
	if value == "" {
		return
	}
	pdf.SetX(g.margin)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(35, 6, label+":")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(g.contentWidth-35, 6, value, "", "L", false)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (g *PDFGenerator) addFooter(pdf *fpdf.Fpdf, report domain.Report) {
	pdf.SetY(-15)

	r, gr, b := HexToRGB(Colors.Border)
	pdf.SetDrawColor(r, gr, b)
	pdf.Line(g.margin, pdf.GetY()-3, g.pageWidth-g.margin, pdf.GetY()-3)

	r, gr, b = HexToRGB(Colors.TextMuted)
	pdf.SetTextColor(r, gr, b)
	pdf.SetFont("Helvetica", "", 8)

	// Left: report id. Right: page number.
	pdf.Cell(0, 10, report.ID)
	pdf.SetX(-g.margin - 30)
	pdf.CellFormat(30, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "R", false, 0, "")
}
