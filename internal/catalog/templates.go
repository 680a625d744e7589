package catalog

import "github.com/skystack/flightform/internal/domain"

// Built-in report templates. Their section lists are intentionally
// empty: report assembly populates the initial sections from the
// lifecycle section templates at instantiation time.
var reportTemplates = []domain.ReportTemplate{
	{
		ID:          "template-001",
		Name:        "Standard checklist for miniSIGMA",
		Description: "Complete checklist for conducting miniSIGMA flights",
		Sections:    []domain.Section{},
		EquipmentID: "drone-001",
		CreatedAt:   catalogEpoch,
		UpdatedAt:   catalogEpoch,
	},
	{
		ID:          "template-003",
		Name:        "Checklist for SurveyDrone X1",
		Description: "Standard checklist for conducting SurveyDrone X1 flights",
		Sections:    []domain.Section{},
		EquipmentID: "drone-002",
		CreatedAt:   catalogEpoch,
		UpdatedAt:   catalogEpoch,
	},
}
