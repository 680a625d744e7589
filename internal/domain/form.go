// Package domain contains core business types and interfaces.
//
// This file defines the form tree: ordered sections of items, where an
// item may carry exactly one level of sub-items. The tree is the editable
// body of a flight report.
package domain

import "fmt"

// =============================================================================
// Kinds
// =============================================================================

// ItemKind determines which value type an item accepts.
type ItemKind string

const (
	ItemKindCheckbox ItemKind = "checkbox"
	ItemKindText     ItemKind = "text"
	ItemKindNumber   ItemKind = "number"
	ItemKindSelect   ItemKind = "select"
)

// IsValid returns true if the kind is a recognized value.
func (k ItemKind) IsValid() bool {
	switch k {
	case ItemKindCheckbox, ItemKindText, ItemKindNumber, ItemKindSelect:
		return true
	}
	return false
}

// SectionKind describes the general shape of a section. It is
// informational and does not constrain the kinds of its items.
type SectionKind string

const (
	SectionKindChecklist  SectionKind = "checklist"
	SectionKindText       SectionKind = "text"
	SectionKindParameters SectionKind = "parameters"
)

// IsValid returns true if the kind is a recognized value.
func (k SectionKind) IsValid() bool {
	switch k {
	case SectionKindChecklist, SectionKindText, SectionKindParameters:
		return true
	}
	return false
}

// =============================================================================
// Item
// =============================================================================

// Item is a single checklist/input unit within a section.
//
// SubItems nest exactly one level: a sub-item never carries sub-items of
// its own. ValidateSections enforces this.
type Item struct {
	ID       string   `json:"id"`
	Content  string   `json:"content"`
	Kind     ItemKind `json:"kind"`
	Options  []string `json:"options,omitempty"` // meaningful iff Kind == select
	Value    Value    `json:"value,omitempty"`
	SubItems []Item   `json:"subItems,omitempty"`
}

// HasSubItems returns true if the item carries at least one sub-item.
func (it *Item) HasSubItems() bool {
	return len(it.SubItems) > 0
}

// =============================================================================
// Section
// =============================================================================

// Section is a named, ordered group of items.
//
// Order is the zero-based rank among sibling sections. After any mutation
// the order fields of a section list must form the contiguous permutation
// [0..n-1] in list position; the editor engine maintains this on every
// insert, delete, and move.
type Section struct {
	ID    string      `json:"id"`
	Title string      `json:"title"`
	Kind  SectionKind `json:"kind"`
	Order int         `json:"order"`
	Items []Item      `json:"items"`
}

// =============================================================================
// Cloning
// =============================================================================

// CloneItem returns a deep copy of the item. The copy shares no slices or
// pointers with the original, so mutating one never alters the other.
func CloneItem(it Item) Item {
	out := it
	out.Value = it.Value.clone()
	if it.Options != nil {
		out.Options = append([]string(nil), it.Options...)
	}
	if it.SubItems != nil {
		out.SubItems = CloneItems(it.SubItems)
	}
	return out
}

// CloneItems returns a deep copy of an item slice.
func CloneItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	for i, it := range items {
		out[i] = CloneItem(it)
	}
	return out
}

// CloneSection returns a deep copy of the section.
func CloneSection(s Section) Section {
	out := s
	out.Items = CloneItems(s.Items)
	return out
}

// CloneSections returns a deep copy of a section slice.
func CloneSections(sections []Section) []Section {
	if sections == nil {
		return nil
	}
	out := make([]Section, len(sections))
	for i, s := range sections {
		out[i] = CloneSection(s)
	}
	return out
}

// =============================================================================
// Structural Validation
// =============================================================================

// ValidateSections checks the structural invariants of a form tree:
//
//   - section order fields equal [0..n-1] in list position
//   - section ids are unique
//   - item ids are unique within their section
//   - sub-item ids are unique within their parent item
//   - sub-items carry no sub-items of their own
//
// A violation indicates a programming defect in whatever produced the
// tree, not bad user input, so the returned error carries EINVALIDTREE.
func ValidateSections(sections []Section) error {
	const op = "domain.ValidateSections"

	sectionIDs := make(map[string]struct{}, len(sections))
	for i, s := range sections {
		if s.Order != i {
			return Errorf(EINVALIDTREE, op, "section %q has order %d at position %d", s.ID, s.Order, i)
		}
		if _, dup := sectionIDs[s.ID]; dup {
			return Errorf(EINVALIDTREE, op, "duplicate section id %q", s.ID)
		}
		sectionIDs[s.ID] = struct{}{}

		if err := validateItems(op, s.ID, s.Items); err != nil {
			return err
		}
	}
	return nil
}

func validateItems(op, sectionID string, items []Item) error {
	itemIDs := make(map[string]struct{}, len(items))
	for _, it := range items {
		if _, dup := itemIDs[it.ID]; dup {
			return Errorf(EINVALIDTREE, op, "duplicate item id %q in section %q", it.ID, sectionID)
		}
		itemIDs[it.ID] = struct{}{}

		subIDs := make(map[string]struct{}, len(it.SubItems))
		for _, sub := range it.SubItems {
			if _, dup := subIDs[sub.ID]; dup {
				return Errorf(EINVALIDTREE, op, "duplicate sub-item id %q under item %q", sub.ID, it.ID)
			}
			subIDs[sub.ID] = struct{}{}

			if len(sub.SubItems) > 0 {
				return Errorf(EINVALIDTREE, op,
					"sub-item %q under item %q carries nested sub-items", sub.ID, it.ID)
			}
		}
	}
	return nil
}

// sectionIndex returns the position of the section with the given id, or -1.
func sectionIndex(sections []Section, id string) int {
	for i := range sections {
		if sections[i].ID == id {
			return i
		}
	}
	return -1
}

// SectionByID returns the section with the given id.
func SectionByID(sections []Section, id string) (Section, bool) {
	if i := sectionIndex(sections, id); i >= 0 {
		return sections[i], true
	}
	return Section{}, false
}

// String implements fmt.Stringer for diagnostics.
func (s Section) String() string {
	return fmt.Sprintf("section %s %q (order=%d, items=%d)", s.ID, s.Title, s.Order, len(s.Items))
}
