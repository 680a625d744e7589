package service

import (
	"sort"
	"time"

	"github.com/skystack/flightform/internal/domain"
)

// SortDirection orders report lists by creation date.
type SortDirection string

const (
	SortNewestFirst SortDirection = "desc"
	SortOldestFirst SortDirection = "asc"
)

// ReportFilter narrows a report list. Zero-valued criteria do not
// constrain; set criteria combine conjunctively. Date bounds are
// inclusive.
type ReportFilter struct {
	Start       time.Time
	End         time.Time
	EquipmentID string
}

// IsZero reports whether the filter constrains nothing.
func (f ReportFilter) IsZero() bool {
	return f.Start.IsZero() && f.End.IsZero() && f.EquipmentID == ""
}

func (f ReportFilter) matches(r domain.Report) bool {
	if !f.Start.IsZero() && r.CreatedAt.Before(f.Start) {
		return false
	}
	if !f.End.IsZero() && r.CreatedAt.After(f.End) {
		return false
	}
	if f.EquipmentID != "" && r.Equipment.ID != f.EquipmentID {
		return false
	}
	return true
}

// FilterReports returns the reports matching the filter, preserving
// input order. An all-zero filter returns the input unchanged.
func FilterReports(reports []domain.Report, f ReportFilter) []domain.Report {
	if f.IsZero() {
		return reports
	}
	out := make([]domain.Report, 0, len(reports))
	for _, r := range reports {
		if f.matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// SortReportsByDate returns the reports ordered by creation date,
// leaving the input untouched. The sort is stable so reports sharing a
// timestamp keep their relative order.
func SortReportsByDate(reports []domain.Report, dir SortDirection) []domain.Report {
	out := append([]domain.Report(nil), reports...)
	sort.SliceStable(out, func(i, j int) bool {
		if dir == SortOldestFirst {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[j].CreatedAt.Before(out[i].CreatedAt)
	})
	return out
}
