package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skystack/flightform/internal/domain"
)

func sampleReport(id, name string, createdAt time.Time) domain.Report {
	return domain.Report{
		ID:   id,
		Name: name,
		Equipment: domain.EquipmentProfile{
			ID:   "drone-001",
			Name: "miniSIGMA",
		},
		Sections: []domain.Section{
			{
				ID:    "section-a",
				Title: "Takeoff",
				Kind:  domain.SectionKindChecklist,
				Order: 0,
				Items: []domain.Item{
					{
						ID:      "item-a",
						Content: "Engine start",
						Kind:    domain.ItemKindCheckbox,
						Value:   domain.BoolValue(true),
						SubItems: []domain.Item{
							{ID: "sub-a", Content: "Fuel valve open", Kind: domain.ItemKindCheckbox, Value: domain.BoolValue(true)},
						},
					},
				},
			},
		},
		Weather: domain.WeatherSnapshot{
			Temperature: 18.5,
			WindSpeed:   4.2,
			Conditions:  "Clear",
			CapturedAt:  createdAt,
		},
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
		Status:    domain.ReportStatusCompleted,
	}
}

// runStoreContract exercises the behavior every provider must share.
func runStoreContract(t *testing.T, s ReportStore) {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	first := sampleReport("report-1", "Morning survey", base)
	second := sampleReport("report-2", "Afternoon survey", base.Add(2*time.Hour))

	require.NoError(t, s.Append(ctx, first))
	require.NoError(t, s.Append(ctx, second))

	t.Run("duplicate id rejected", func(t *testing.T) {
		err := s.Append(ctx, first)
		require.Error(t, err)
	})

	t.Run("list ordered by creation time", func(t *testing.T) {
		got, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "report-1", got[0].ID)
		assert.Equal(t, "report-2", got[1].ID)
	})

	t.Run("get round-trips the document", func(t *testing.T) {
		got, err := s.Get(ctx, "report-1")
		require.NoError(t, err)
		assert.Equal(t, "Morning survey", got.Name)
		assert.Equal(t, "miniSIGMA", got.Equipment.Name)
		require.Len(t, got.Sections, 1)
		require.Len(t, got.Sections[0].Items, 1)
		item := got.Sections[0].Items[0]
		assert.True(t, item.Value.IsSet())
		assert.True(t, item.Value.Bool())
		require.Len(t, item.SubItems, 1)
		assert.Equal(t, "Fuel valve open", item.SubItems[0].Content)
		assert.Equal(t, 18.5, got.Weather.Temperature)
		assert.Equal(t, domain.ReportStatusCompleted, got.Status)
	})

	t.Run("get missing id", func(t *testing.T) {
		_, err := s.Get(ctx, "report-nope")
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
	})

	t.Run("remove is idempotent", func(t *testing.T) {
		require.NoError(t, s.Remove(ctx, "report-1"))

		got, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "report-2", got[0].ID)

		// Removing an id that is already gone is a no-op.
		require.NoError(t, s.Remove(ctx, "report-1"))
		require.NoError(t, s.Remove(ctx, "report-never"))

		got, err = s.List(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)
	})
}

func TestMemoryStoreContract(t *testing.T) {
	runStoreContract(t, NewMemoryStore())
}

func TestMemoryStoreIsolation(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	original := sampleReport("report-1", "Survey", time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, s.Append(ctx, original))

	// Mutating the caller's copy must not reach the stored document.
	original.Sections[0].Items[0].Content = "tampered"

	got, err := s.Get(ctx, "report-1")
	require.NoError(t, err)
	assert.Equal(t, "Engine start", got.Sections[0].Items[0].Content)

	// Mutating a retrieved copy must not reach the store either.
	got.Sections[0].Title = "tampered"
	again, err := s.Get(ctx, "report-1")
	require.NoError(t, err)
	assert.Equal(t, "Takeoff", again.Sections[0].Title)
}

func TestEncodeTimeIsLexicographic(t *testing.T) {
	earlier := time.Date(2024, 6, 1, 9, 59, 59, 999999999, time.UTC)
	later := time.Date(2024, 6, 1, 10, 0, 0, 1, time.UTC)

	assert.Less(t, encodeTime(earlier), encodeTime(later))

	// Zone offsets normalize to UTC before encoding.
	offset := time.FixedZone("UTC+3", 3*60*60)
	same := later.In(offset)
	assert.Equal(t, encodeTime(later), encodeTime(same))
}
