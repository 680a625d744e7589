package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skystack/flightform/internal/domain"
)

func TestEquipmentLookup(t *testing.T) {
	c := Default()

	all := c.Equipment()
	require.Len(t, all, 3)

	got, ok := c.EquipmentByID("drone-002")
	require.True(t, ok)
	assert.Equal(t, "SurveyDrone X1", got.Name)
	assert.Equal(t, "1.8 m", got.Specs.Wingspan)

	_, ok = c.EquipmentByID("drone-999")
	assert.False(t, ok)
}

func TestSectionTemplatesAreValidTrees(t *testing.T) {
	c := Default()

	for _, tpl := range c.SectionTemplates() {
		sec := tpl.Instantiate("s-test", 0)
		assert.NoError(t, domain.ValidateSections([]domain.Section{sec}), tpl.Name)
	}
}

func TestSectionTemplateCopiesAreIsolated(t *testing.T) {
	c := Default()

	tpl, ok := c.SectionTemplateByID("section-001")
	require.True(t, ok)
	require.NotEmpty(t, tpl.Items)

	tpl.Items[0].Content = "scribbled"
	tpl.Items[0].SubItems[0].Value = domain.BoolValue(true)

	again, ok := c.SectionTemplateByID("section-001")
	require.True(t, ok)
	assert.Equal(t, "Charge batteries:", again.Items[0].Content)
	assert.False(t, again.Items[0].SubItems[0].Value.Bool())
}

func TestLifecycleSections(t *testing.T) {
	c := Default()

	t.Run("default keywords select all lifecycle phases in order", func(t *testing.T) {
		got := c.LifecycleSections([]string{"pre-flight", "takeoff", "flight", "landing"})
		names := make([]string, len(got))
		for i, tpl := range got {
			names[i] = tpl.Name
		}
		assert.Equal(t, []string{
			"Pre-flight preparation (at base)",
			"Pre-flight preparation (on site)",
			"Pre-takeoff checks (before takeoff)",
			"Takeoff",
			"Route flight",
			"Landing",
		}, names)
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		got := c.LifecycleSections([]string{"LANDING"})
		require.Len(t, got, 1)
		assert.Equal(t, "section-006", got[0].ID)
	})

	t.Run("no keywords selects nothing", func(t *testing.T) {
		assert.Empty(t, c.LifecycleSections(nil))
		assert.Empty(t, c.LifecycleSections([]string{""}))
	})
}

func TestReportTemplates(t *testing.T) {
	c := Default()

	all := c.ReportTemplates()
	require.NotEmpty(t, all)
	for _, tpl := range all {
		assert.Empty(t, tpl.Sections, "built-in report templates rely on lifecycle fallback")
		_, ok := c.EquipmentByID(tpl.EquipmentID)
		assert.True(t, ok, "template %s targets unknown equipment", tpl.ID)
	}

	forX1 := c.ReportTemplatesForEquipment("drone-002")
	require.Len(t, forX1, 1)
	assert.Equal(t, "template-003", forX1[0].ID)

	_, ok := c.ReportTemplateByID("template-001")
	assert.True(t, ok)
}
