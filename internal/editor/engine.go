// Package editor implements the form editing engine: the operations
// that create, mutate, reorder, and delete nodes in a report's section
// tree, including instantiation from section templates.
//
// Every operation is a pure transformation: it takes the current section
// list and returns a new one, cloning nested nodes along the path to the
// change instead of mutating in place. Callers can therefore treat each
// returned tree as an immutable snapshot, and the order-contiguity
// invariant is re-established mechanically after every structural
// change. Operations addressing a missing id are silent no-ops, never
// errors; callers must not assume existence.
//
// Presentation state (which sections are expanded, selection, and so on)
// lives entirely with the caller. Operations that create a node return
// its id so the caller can maintain that state itself.
package editor

import (
	"github.com/skystack/flightform/internal/domain"
)

// Default labels for freshly created nodes. The user renames them in place.
const (
	DefaultSectionTitle = "New section"
	DefaultItemContent  = "New item"
	DefaultSubItemLabel = "New sub-item"
)

// Engine performs form tree transformations. It is stateless apart from
// its id generator and safe for reuse across trees.
type Engine struct {
	ids IDGenerator
}

// New creates an Engine backed by the given id generator.
func New(ids IDGenerator) *Engine {
	return &Engine{ids: ids}
}

// =============================================================================
// Section operations
// =============================================================================

// AddSection appends a new empty checklist section and returns the new
// list together with the created section's id.
func (e *Engine) AddSection(sections []domain.Section) ([]domain.Section, string) {
	id := e.ids.NewID("section")
	next := domain.CloneSections(sections)
	next = append(next, domain.Section{
		ID:    id,
		Title: DefaultSectionTitle,
		Kind:  domain.SectionKindChecklist,
		Order: len(sections),
		Items: []domain.Item{},
	})
	return next, id
}

// AddSectionFromTemplate appends a section instantiated from the
// template. Items are deep-copied: mutating the new section never
// alters the template.
func (e *Engine) AddSectionFromTemplate(sections []domain.Section, tpl domain.SectionTemplate) ([]domain.Section, string) {
	id := e.ids.NewID("section")
	next := domain.CloneSections(sections)
	next = append(next, tpl.Instantiate(id, len(sections)))
	return next, id
}

// RenameSection replaces the title of the matching section.
func (e *Engine) RenameSection(sections []domain.Section, sectionID, title string) []domain.Section {
	return mapSections(sections, sectionID, func(s domain.Section) domain.Section {
		s.Title = title
		return s
	})
}

// DeleteSection removes the matching section and renumbers the
// survivors so their order fields are again [0..n-1] in list position.
// Deleting a missing id returns an equal list.
func (e *Engine) DeleteSection(sections []domain.Section, sectionID string) []domain.Section {
	next := make([]domain.Section, 0, len(sections))
	for _, s := range sections {
		if s.ID == sectionID {
			continue
		}
		c := domain.CloneSection(s)
		c.Order = len(next)
		next = append(next, c)
	}
	return next
}

// MoveSectionUp swaps the section with its predecessor. A section
// already at the top stays put.
func (e *Engine) MoveSectionUp(sections []domain.Section, sectionID string) []domain.Section {
	i := indexOf(sections, sectionID)
	if i <= 0 {
		return domain.CloneSections(sections)
	}
	return swap(sections, i-1, i)
}

// MoveSectionDown swaps the section with its successor. A section
// already at the bottom stays put.
func (e *Engine) MoveSectionDown(sections []domain.Section, sectionID string) []domain.Section {
	i := indexOf(sections, sectionID)
	if i < 0 || i >= len(sections)-1 {
		return domain.CloneSections(sections)
	}
	return swap(sections, i, i+1)
}

// =============================================================================
// Item operations
// =============================================================================

// AddItem appends a fresh checkbox item to the target section and
// returns the new list with the created item's id. The id is empty when
// the section does not exist.
func (e *Engine) AddItem(sections []domain.Section, sectionID string) ([]domain.Section, string) {
	if indexOf(sections, sectionID) < 0 {
		return domain.CloneSections(sections), ""
	}
	id := e.ids.NewID("item")
	next := mapSections(sections, sectionID, func(s domain.Section) domain.Section {
		s.Items = append(s.Items, domain.Item{
			ID:      id,
			Content: DefaultItemContent,
			Kind:    domain.ItemKindCheckbox,
			Value:   domain.BoolValue(false),
		})
		return s
	})
	return next, id
}

// UpdateItemContent replaces the label of the matching item.
func (e *Engine) UpdateItemContent(sections []domain.Section, sectionID, itemID, content string) []domain.Section {
	return mapItems(sections, sectionID, itemID, func(it domain.Item) domain.Item {
		it.Content = content
		return it
	})
}

// UpdateItemValue replaces the value of the matching item.
func (e *Engine) UpdateItemValue(sections []domain.Section, sectionID, itemID string, value domain.Value) []domain.Section {
	return mapItems(sections, sectionID, itemID, func(it domain.Item) domain.Item {
		it.Value = value
		return it
	})
}

// DeleteItem removes the matching item from the section. Items carry no
// order field, so nothing is renumbered; position is the slice index.
func (e *Engine) DeleteItem(sections []domain.Section, sectionID, itemID string) []domain.Section {
	return mapSections(sections, sectionID, func(s domain.Section) domain.Section {
		items := make([]domain.Item, 0, len(s.Items))
		for _, it := range s.Items {
			if it.ID != itemID {
				items = append(items, it)
			}
		}
		s.Items = items
		return s
	})
}

// =============================================================================
// Sub-item operations
// =============================================================================

// AddSubItem appends a fresh checkbox sub-item under the target item,
// initializing the sub-item list if absent. Only top-level items are
// addressable as parents, which keeps the one-level nesting invariant:
// a sub-item can never acquire children. The returned id is empty when
// the parent was not found.
func (e *Engine) AddSubItem(sections []domain.Section, sectionID, itemID string) ([]domain.Section, string) {
	if !itemExists(sections, sectionID, itemID) {
		return domain.CloneSections(sections), ""
	}
	id := e.ids.NewID("subitem")
	next := mapItems(sections, sectionID, itemID, func(it domain.Item) domain.Item {
		it.SubItems = append(it.SubItems, domain.Item{
			ID:      id,
			Content: DefaultSubItemLabel,
			Kind:    domain.ItemKindCheckbox,
			Value:   domain.BoolValue(false),
		})
		return it
	})
	return next, id
}

// UpdateSubItemContent replaces the label of the matching sub-item.
func (e *Engine) UpdateSubItemContent(sections []domain.Section, sectionID, itemID, subItemID, content string) []domain.Section {
	return mapSubItems(sections, sectionID, itemID, subItemID, func(sub domain.Item) domain.Item {
		sub.Content = content
		return sub
	})
}

// UpdateSubItemValue replaces the value of the matching sub-item.
func (e *Engine) UpdateSubItemValue(sections []domain.Section, sectionID, itemID, subItemID string, value domain.Value) []domain.Section {
	return mapSubItems(sections, sectionID, itemID, subItemID, func(sub domain.Item) domain.Item {
		sub.Value = value
		return sub
	})
}

// DeleteSubItem removes the matching sub-item from its parent.
func (e *Engine) DeleteSubItem(sections []domain.Section, sectionID, itemID, subItemID string) []domain.Section {
	return mapItems(sections, sectionID, itemID, func(it domain.Item) domain.Item {
		subs := make([]domain.Item, 0, len(it.SubItems))
		for _, sub := range it.SubItems {
			if sub.ID != subItemID {
				subs = append(subs, sub)
			}
		}
		if len(subs) == 0 && it.SubItems == nil {
			return it
		}
		it.SubItems = subs
		return it
	})
}

// =============================================================================
// Internal helpers
// =============================================================================

func indexOf(sections []domain.Section, id string) int {
	for i := range sections {
		if sections[i].ID == id {
			return i
		}
	}
	return -1
}

func itemExists(sections []domain.Section, sectionID, itemID string) bool {
	i := indexOf(sections, sectionID)
	if i < 0 {
		return false
	}
	for _, it := range sections[i].Items {
		if it.ID == itemID {
			return true
		}
	}
	return false
}

// swap returns a clone of sections with positions i and j exchanged and
// their order fields reassigned to their new indexes. Only the two
// swapped entries change; every other order field is already correct.
func swap(sections []domain.Section, i, j int) []domain.Section {
	next := domain.CloneSections(sections)
	next[i], next[j] = next[j], next[i]
	next[i].Order = i
	next[j].Order = j
	return next
}

// mapSections clones the list, applying fn to the section with the
// given id. fn receives (and returns) a clone, so it may mutate freely.
func mapSections(sections []domain.Section, sectionID string, fn func(domain.Section) domain.Section) []domain.Section {
	next := make([]domain.Section, len(sections))
	for i, s := range sections {
		c := domain.CloneSection(s)
		if s.ID == sectionID {
			c = fn(c)
		}
		next[i] = c
	}
	return next
}

func mapItems(sections []domain.Section, sectionID, itemID string, fn func(domain.Item) domain.Item) []domain.Section {
	return mapSections(sections, sectionID, func(s domain.Section) domain.Section {
		for i, it := range s.Items {
			if it.ID == itemID {
				s.Items[i] = fn(it)
			}
		}
		return s
	})
}

func mapSubItems(sections []domain.Section, sectionID, itemID, subItemID string, fn func(domain.Item) domain.Item) []domain.Section {
	return mapItems(sections, sectionID, itemID, func(it domain.Item) domain.Item {
		for i, sub := range it.SubItems {
			if sub.ID == subItemID {
				it.SubItems[i] = fn(sub)
			}
		}
		return it
	})
}
