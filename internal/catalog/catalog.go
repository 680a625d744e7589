// Package catalog holds the static reference data of the application:
// equipment profiles, section templates, and report templates. Catalog
// entries are immutable after load; accessors hand out copies wherever
// a caller could otherwise mutate shared state.
package catalog

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/skystack/flightform/internal/domain"
)

// Catalog bundles the reference data sets behind lookup methods.
type Catalog struct {
	equipment        []domain.EquipmentProfile
	sectionTemplates []domain.SectionTemplate
	reportTemplates  []domain.ReportTemplate
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{
		equipment:        equipmentProfiles,
		sectionTemplates: sectionTemplates,
		reportTemplates:  reportTemplates,
	}
}

// Equipment lists all equipment profiles.
func (c *Catalog) Equipment() []domain.EquipmentProfile {
	return append([]domain.EquipmentProfile(nil), c.equipment...)
}

// EquipmentByID looks up an equipment profile.
func (c *Catalog) EquipmentByID(id string) (domain.EquipmentProfile, bool) {
	for _, e := range c.equipment {
		if e.ID == id {
			return e, true
		}
	}
	return domain.EquipmentProfile{}, false
}

// SectionTemplates lists all section templates. Items are deep-copied
// so a careless caller cannot corrupt the catalog.
func (c *Catalog) SectionTemplates() []domain.SectionTemplate {
	out := make([]domain.SectionTemplate, len(c.sectionTemplates))
	for i, t := range c.sectionTemplates {
		out[i] = t
		out[i].Items = domain.CloneItems(t.Items)
	}
	return out
}

// SectionTemplateByID looks up a section template by id.
func (c *Catalog) SectionTemplateByID(id string) (domain.SectionTemplate, bool) {
	for _, t := range c.sectionTemplates {
		if t.ID == id {
			t.Items = domain.CloneItems(t.Items)
			return t, true
		}
	}
	return domain.SectionTemplate{}, false
}

// ReportTemplates lists all report templates.
func (c *Catalog) ReportTemplates() []domain.ReportTemplate {
	out := make([]domain.ReportTemplate, len(c.reportTemplates))
	for i, t := range c.reportTemplates {
		out[i] = t
		out[i].Sections = domain.CloneSections(t.Sections)
	}
	return out
}

// ReportTemplateByID looks up a report template by id.
func (c *Catalog) ReportTemplateByID(id string) (domain.ReportTemplate, bool) {
	for _, t := range c.reportTemplates {
		if t.ID == id {
			t.Sections = domain.CloneSections(t.Sections)
			return t, true
		}
	}
	return domain.ReportTemplate{}, false
}

// ReportTemplatesForEquipment lists report templates targeting the
// given equipment model.
func (c *Catalog) ReportTemplatesForEquipment(equipmentID string) []domain.ReportTemplate {
	var out []domain.ReportTemplate
	for _, t := range c.reportTemplates {
		if t.EquipmentID == equipmentID {
			t.Sections = domain.CloneSections(t.Sections)
			out = append(out, t)
		}
	}
	return out
}

// LifecycleSections selects the section templates whose name contains
// any of the given keywords, compared under Unicode case folding so the
// match survives arbitrary casing in template names. Catalog order is
// preserved. Items of the returned templates are deep copies.
func (c *Catalog) LifecycleSections(keywords []string) []domain.SectionTemplate {
	folder := cases.Fold()
	folded := make([]string, len(keywords))
	for i, k := range keywords {
		folded[i] = folder.String(k)
	}

	var out []domain.SectionTemplate
	for _, t := range c.sectionTemplates {
		name := folder.String(t.Name)
		for _, k := range folded {
			if k != "" && strings.Contains(name, k) {
				t.Items = domain.CloneItems(t.Items)
				out = append(out, t)
				break
			}
		}
	}
	return out
}
