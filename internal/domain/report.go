package domain

import "time"

// ReportStatus represents the lifecycle state of a report.
type ReportStatus string

const (
	ReportStatusDraft     ReportStatus = "draft"
	ReportStatusCompleted ReportStatus = "completed"
)

// IsValid returns true if the status is a recognized value.
func (s ReportStatus) IsValid() bool {
	return s == ReportStatusDraft || s == ReportStatusCompleted
}

// Report is the finalized flight-report aggregate.
//
// A report is constructed once by report assembly at save time and never
// mutated afterwards; it leaves the store only by explicit deletion. The
// equipment profile is embedded by value so catalog changes made after
// the flight never retroactively alter the record.
type Report struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	TemplateID string           `json:"templateId,omitempty"` // empty for ad-hoc reports
	Equipment  EquipmentProfile `json:"equipment"`
	Sections   []Section        `json:"sections"`
	Weather    WeatherSnapshot  `json:"weather"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
	Status     ReportStatus     `json:"status"`
}

// Clone returns a deep copy of the report.
func (r Report) Clone() Report {
	out := r
	out.Sections = CloneSections(r.Sections)
	return out
}

// ItemCount returns the total number of items including sub-items.
func (r Report) ItemCount() int {
	n := 0
	for _, s := range r.Sections {
		for _, it := range s.Items {
			n += 1 + len(it.SubItems)
		}
	}
	return n
}
