package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skystack/flightform/internal/domain"
)

func exportReport() domain.Report {
	created := time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)
	return domain.Report{
		ID:   "report-42",
		Name: "Powerline inspection",
		Equipment: domain.EquipmentProfile{
			ID:   "drone-001",
			Name: "miniSIGMA",
			Specs: domain.EquipmentSpecs{
				Weight:     "5 kg",
				FlightTime: "60 min",
			},
		},
		Sections: []domain.Section{
			{
				ID:    "section-1",
				Title: "Pre-flight preparation",
				Kind:  domain.SectionKindChecklist,
				Order: 0,
				Items: []domain.Item{
					{ID: "item-1", Content: "Battery charged", Kind: domain.ItemKindCheckbox, Value: domain.BoolValue(true)},
					{
						ID:      "item-2",
						Content: "Weather assessment",
						Kind:    domain.ItemKindCheckbox,
						SubItems: []domain.Item{
							{ID: "sub-1", Content: "Wind speed", Kind: domain.ItemKindNumber, Value: domain.NumberValue(4.5)},
							{ID: "sub-2", Content: "Notes", Kind: domain.ItemKindText},
						},
					},
				},
			},
			{
				ID:    "section-2",
				Title: "Landing",
				Kind:  domain.SectionKindChecklist,
				Order: 1,
				Items: []domain.Item{
					{ID: "item-3", Content: "Motors stopped", Kind: domain.ItemKindCheckbox, Value: domain.BoolValue(false)},
				},
			},
		},
		Weather: domain.WeatherSnapshot{
			Temperature:   16.2,
			WindSpeed:     4.5,
			WindDirection: "NW",
			Humidity:      55,
			Conditions:    "Partly cloudy",
			CapturedAt:    created,
		},
		CreatedAt: created,
		UpdatedAt: created,
		Status:    domain.ReportStatusCompleted,
	}
}

func TestJSONGeneratorRoundTrip(t *testing.T) {
	gen := NewJSONGenerator()
	assert.Equal(t, FormatJSON, gen.Format())

	original := exportReport()

	var buf bytes.Buffer
	n, err := gen.Generate(context.Background(), original, &buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	parsed, err := ParseReport(&buf)
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
}

func TestParseReportRejectsBadInput(t *testing.T) {
	t.Run("not json", func(t *testing.T) {
		_, err := ParseReport(bytes.NewReader([]byte("not json")))
		require.Error(t, err)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := ParseReport(bytes.NewReader([]byte(`{"name":"x"}`)))
		require.Error(t, err)
	})

	t.Run("corrupt section tree", func(t *testing.T) {
		_, err := ParseReport(bytes.NewReader([]byte(
			`{"id":"report-1","sections":[{"id":"s","title":"t","kind":"checklist","order":5,"items":[]}]}`)))
		require.Error(t, err)
		assert.Equal(t, domain.EINVALIDTREE, domain.ErrorCode(err))
	})
}

func TestPDFGenerator(t *testing.T) {
	gen := NewPDFGenerator()
	assert.Equal(t, FormatPDF, gen.Format())

	var buf bytes.Buffer
	n, err := gen.Generate(context.Background(), exportReport(), &buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Greater(t, buf.Len(), 1000, "PDF output suspiciously small")
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")), "output is not a PDF document")
}

func TestPDFGeneratorEmptyReport(t *testing.T) {
	report := domain.Report{
		ID:        "report-empty",
		Name:      "Empty",
		CreatedAt: time.Now(),
		Status:    domain.ReportStatusDraft,
	}

	var buf bytes.Buffer
	_, err := NewPDFGenerator().Generate(context.Background(), report, &buf)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestForFormat(t *testing.T) {
	gen, ok := ForFormat(FormatPDF)
	require.True(t, ok)
	assert.Equal(t, FormatPDF, gen.Format())

	gen, ok = ForFormat(FormatJSON)
	require.True(t, ok)
	assert.Equal(t, FormatJSON, gen.Format())

	_, ok = ForFormat(Format("docx"))
	assert.False(t, ok)
}

func TestFormatMetadata(t *testing.T) {
	assert.Equal(t, "application/pdf", FormatPDF.ContentType())
	assert.Equal(t, "application/json", FormatJSON.ContentType())
	assert.Equal(t, "pdf", FormatPDF.FileExtension())
	assert.True(t, FormatPDF.IsValid())
	assert.False(t, Format("docx").IsValid())
}
