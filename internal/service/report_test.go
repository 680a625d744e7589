package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skystack/flightform/internal/catalog"
	"github.com/skystack/flightform/internal/domain"
	"github.com/skystack/flightform/internal/editor"
	"github.com/skystack/flightform/internal/store"
	"github.com/skystack/flightform/internal/weather"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(t *testing.T, st store.ReportStore, w *weather.Service) ReportService {
	t.Helper()
	return NewReportService(st, catalog.Default(), w, &editor.SequenceGenerator{}, nil, testLogger())
}

func validSections() []domain.Section {
	return []domain.Section{
		{
			ID:    "section-a",
			Title: "Takeoff",
			Kind:  domain.SectionKindChecklist,
			Order: 0,
			Items: []domain.Item{
				{ID: "item-a", Content: "Engine start", Kind: domain.ItemKindCheckbox, Value: domain.BoolValue(true)},
			},
		},
	}
}

func TestCreateReport(t *testing.T) {
	ctx := context.Background()
	snap := &domain.WeatherSnapshot{Temperature: 17, Conditions: "Clear", CapturedAt: time.Now()}

	t.Run("saves a complete report", func(t *testing.T) {
		st := store.NewMemoryStore()
		svc := newTestService(t, st, nil)

		report, err := svc.CreateReport(ctx, CreateReportParams{
			Name:        "Morning survey",
			EquipmentID: "drone-001",
			Sections:    validSections(),
			Weather:     snap,
		})
		require.NoError(t, err)

		assert.NotEmpty(t, report.ID)
		assert.Equal(t, "Morning survey", report.Name)
		assert.Equal(t, "miniSIGMA", report.Equipment.Name)
		assert.Equal(t, domain.ReportStatusCompleted, report.Status)
		assert.Equal(t, 17.0, report.Weather.Temperature)
		assert.False(t, report.CreatedAt.IsZero())

		saved, err := st.List(ctx)
		require.NoError(t, err)
		require.Len(t, saved, 1)
	})

	t.Run("rejects empty name without touching the store", func(t *testing.T) {
		st := store.NewMemoryStore()
		svc := newTestService(t, st, nil)

		_, err := svc.CreateReport(ctx, CreateReportParams{
			Name:        "   ",
			EquipmentID: "drone-001",
			Sections:    validSections(),
			Weather:     snap,
		})
		require.Error(t, err)

		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "name")

		saved, listErr := st.List(ctx)
		require.NoError(t, listErr)
		assert.Empty(t, saved, "a failed save must leave the store unchanged")
	})

	t.Run("rejects unknown equipment", func(t *testing.T) {
		svc := newTestService(t, store.NewMemoryStore(), nil)

		_, err := svc.CreateReport(ctx, CreateReportParams{
			Name:        "Survey",
			EquipmentID: "drone-999",
			Sections:    validSections(),
			Weather:     snap,
		})
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "equipment")
	})

	t.Run("rejects a report with no sections", func(t *testing.T) {
		st := store.NewMemoryStore()
		svc := newTestService(t, st, nil)

		_, err := svc.CreateReport(ctx, CreateReportParams{
			Name:        "Empty form",
			EquipmentID: "drone-001",
			Sections:    []domain.Section{},
			Weather:     snap,
		})
		require.Error(t, err)

		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "sections")

		saved, listErr := st.List(ctx)
		require.NoError(t, listErr)
		assert.Empty(t, saved, "a sectionless save must not reach the store")
	})

	t.Run("rejects a corrupt section tree", func(t *testing.T) {
		svc := newTestService(t, store.NewMemoryStore(), nil)

		bad := validSections()
		bad[0].Order = 3

		_, err := svc.CreateReport(ctx, CreateReportParams{
			Name:        "Survey",
			EquipmentID: "drone-001",
			Sections:    bad,
			Weather:     snap,
		})
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "sections")
	})

	t.Run("collects every field error in one pass", func(t *testing.T) {
		svc := newTestService(t, store.NewMemoryStore(), nil)

		_, err := svc.CreateReport(ctx, CreateReportParams{
			Name:    "",
			Weather: snap,
		})
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "name")
		assert.Contains(t, ve.Fields, "equipment")
	})

	t.Run("saves with degraded weather when offline", func(t *testing.T) {
		mock := weather.NewMockProvider(testLogger())
		mock.FetchError = errors.New("no connectivity")
		wsvc := weather.NewService(mock, weather.Config{}, testLogger())

		svc := newTestService(t, store.NewMemoryStore(), wsvc)

		report, err := svc.CreateReport(ctx, CreateReportParams{
			Name:        "Offline flight",
			EquipmentID: "drone-002",
			Sections:    validSections(),
		})
		require.NoError(t, err, "an unreachable weather provider must not block saving")
		assert.True(t, report.Weather.Degraded)
		assert.False(t, report.Weather.CapturedAt.IsZero())
	})
}

func TestInstantiateTemplate(t *testing.T) {
	svc := newTestService(t, store.NewMemoryStore(), nil)

	t.Run("unknown template", func(t *testing.T) {
		_, err := svc.InstantiateTemplate("template-999")
		require.Error(t, err)
		assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))
	})

	t.Run("empty template falls back to lifecycle sections", func(t *testing.T) {
		sections, err := svc.InstantiateTemplate("template-001")
		require.NoError(t, err)

		require.NotEmpty(t, sections)
		require.NoError(t, domain.ValidateSections(sections))

		// The fallback walks the full flight lifecycle in catalog order.
		var titles []string
		for _, s := range sections {
			titles = append(titles, s.Title)
		}
		assert.Contains(t, titles[0], "Pre-flight")
		assert.Contains(t, titles[len(titles)-1], "Landing")

		// Fresh ids per instantiation.
		again, err := svc.InstantiateTemplate("template-001")
		require.NoError(t, err)
		assert.NotEqual(t, sections[0].ID, again[0].ID)
	})
}

func TestGetAndDeleteReport(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	svc := newTestService(t, st, nil)

	snap := &domain.WeatherSnapshot{Temperature: 10, CapturedAt: time.Now()}
	report, err := svc.CreateReport(ctx, CreateReportParams{
		Name:        "Survey",
		EquipmentID: "drone-001",
		Sections:    validSections(),
		Weather:     snap,
	})
	require.NoError(t, err)

	got, err := svc.GetReport(ctx, report.ID)
	require.NoError(t, err)
	assert.Equal(t, report.Name, got.Name)

	_, err = svc.GetReport(ctx, "report-nope")
	assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))

	require.NoError(t, svc.DeleteReport(ctx, report.ID))

	// Deletion is idempotent: repeating it, or deleting an id that never
	// existed, succeeds without complaint.
	require.NoError(t, svc.DeleteReport(ctx, report.ID))
	require.NoError(t, svc.DeleteReport(ctx, "report-never-existed"))

	_, err = svc.GetReport(ctx, report.ID)
	assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))
}
