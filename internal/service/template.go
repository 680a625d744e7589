package service

import (
	"github.com/skystack/flightform/internal/domain"
)

// DefaultLifecycleKeywords select the flight-lifecycle section templates
// used when a report template carries no sections of its own. A section
// template qualifies when its name contains any keyword, matched
// case-insensitively.
var DefaultLifecycleKeywords = []string{
	"pre-flight",
	"takeoff",
	"flight",
	"landing",
}

// InstantiateTemplate resolves the initial sections for a new editing
// session based on a report template.
//
// A template with stored sections yields a deep copy of them. A template
// with no sections falls back to the lifecycle section templates,
// instantiated in catalog order with fresh ids and orders 0..n-1.
func (s *reportService) InstantiateTemplate(templateID string) ([]domain.Section, error) {
	const op = "service.InstantiateTemplate"

	tpl, ok := s.catalog.ReportTemplateByID(templateID)
	if !ok {
		return nil, domain.NotFound(op, "report template", templateID)
	}

	if len(tpl.Sections) > 0 {
		sections := domain.CloneSections(tpl.Sections)
		for i := range sections {
			sections[i].Order = i
		}
		return sections, nil
	}

	lifecycle := s.catalog.LifecycleSections(s.lifecycleKeywords)
	sections := make([]domain.Section, 0, len(lifecycle))
	for i, st := range lifecycle {
		sections = append(sections, st.Instantiate(s.ids.NewID("section"), i))
	}

	s.logger.Debug("template has no sections, populated from lifecycle templates",
		"template_id", templateID,
		"sections", len(sections),
	)
	return sections, nil
}
