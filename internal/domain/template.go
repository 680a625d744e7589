package domain

import "time"

// SectionTemplate is a reusable, read-only prototype for a section.
// Instantiation deep-copies its items, so edits to an instantiated
// section never reach the template.
type SectionTemplate struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Kind      SectionKind `json:"kind"`
	Items     []Item      `json:"items"`
	CreatedAt time.Time   `json:"createdAt"`
}

// Instantiate builds a section from the template with the given id and
// order. Items are deep-copied; stored value defaults survive the copy.
func (t SectionTemplate) Instantiate(id string, order int) Section {
	return Section{
		ID:    id,
		Title: t.Name,
		Kind:  t.Kind,
		Order: order,
		Items: CloneItems(t.Items),
	}
}

// ReportTemplate bundles section prototypes for one equipment model.
//
// Empty Sections is valid: report assembly then auto-populates the
// initial sections from the lifecycle section templates.
type ReportTemplate struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Sections    []Section `json:"sections"`
	EquipmentID string    `json:"equipmentId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
