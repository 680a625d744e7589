// Package service implements the application's business operations over
// the domain types, the catalog, and the report store.
package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/skystack/flightform/internal/catalog"
	"github.com/skystack/flightform/internal/domain"
	"github.com/skystack/flightform/internal/editor"
	"github.com/skystack/flightform/internal/metrics"
	"github.com/skystack/flightform/internal/store"
	"github.com/skystack/flightform/internal/weather"
)

// ReportService handles flight-report assembly, retrieval, and deletion.
type ReportService interface {
	// InstantiateTemplate returns the initial sections for a new editing
	// session started from a report template.
	InstantiateTemplate(templateID string) ([]domain.Section, error)

	// CreateReport validates the editing state, freezes it together with
	// a weather snapshot, and appends the finished report to the store.
	CreateReport(ctx context.Context, params CreateReportParams) (domain.Report, error)

	// ListReports returns saved reports matching the filter, ordered per
	// the sort direction.
	ListReports(ctx context.Context, filter ReportFilter, sort SortDirection) ([]domain.Report, error)

	// GetReport returns a single saved report.
	GetReport(ctx context.Context, id string) (domain.Report, error)

	// DeleteReport removes a saved report. Deleting an absent id is a
	// no-op.
	DeleteReport(ctx context.Context, id string) error
}

// CreateReportParams carries the editing state being saved.
type CreateReportParams struct {
	Name        string
	TemplateID  string
	EquipmentID string
	Sections    []domain.Section

	// Weather, when nil, is captured from the weather service at save
	// time.
	Weather *domain.WeatherSnapshot
}

type reportService struct {
	store             store.ReportStore
	catalog           *catalog.Catalog
	weather           *weather.Service
	ids               editor.IDGenerator
	lifecycleKeywords []string
	logger            *slog.Logger
	now               func() time.Time
}

// NewReportService creates a report service. weatherSvc may be nil when
// every caller supplies its own snapshot. Passing nil keywords selects
// DefaultLifecycleKeywords.
func NewReportService(
	st store.ReportStore,
	cat *catalog.Catalog,
	weatherSvc *weather.Service,
	ids editor.IDGenerator,
	keywords []string,
	logger *slog.Logger,
) ReportService {
	if keywords == nil {
		keywords = DefaultLifecycleKeywords
	}
	return &reportService{
		store:             st,
		catalog:           cat,
		weather:           weatherSvc,
		ids:               ids,
		lifecycleKeywords: keywords,
		logger:            logger,
		now:               time.Now,
	}
}

func (s *reportService) CreateReport(ctx context.Context, params CreateReportParams) (domain.Report, error) {
	const op = "service.CreateReport"

	var validationErr error

	name := strings.TrimSpace(params.Name)
	if name == "" {
		validationErr = domain.AddFieldError(validationErr, "name", "Report name is required")
	}

	var equipment domain.EquipmentProfile
	if params.EquipmentID == "" {
		validationErr = domain.AddFieldError(validationErr, "equipment", "Equipment is required")
	} else {
		var ok bool
		equipment, ok = s.catalog.EquipmentByID(params.EquipmentID)
		if !ok {
			validationErr = domain.AddFieldError(validationErr, "equipment", "Unknown equipment id")
		}
	}

	if len(params.Sections) == 0 {
		validationErr = domain.AddFieldError(validationErr, "sections", "At least one section is required")
	} else if err := domain.ValidateSections(params.Sections); err != nil {
		validationErr = domain.AddFieldError(validationErr, "sections", err.Error())
	}

	if validationErr != nil {
		if ve, ok := validationErr.(*domain.ValidationError); ok {
			ve.Op = op
		}
		return domain.Report{}, validationErr
	}

	// A caller-supplied snapshot wins; otherwise capture now. The
	// weather service degrades instead of failing, so an offline save
	// still succeeds.
	var snap domain.WeatherSnapshot
	switch {
	case params.Weather != nil:
		snap = *params.Weather
	case s.weather != nil:
		snap = s.weather.Current(ctx)
	}

	now := s.now()
	report := domain.Report{
		ID:         s.ids.NewID("report"),
		Name:       name,
		TemplateID: params.TemplateID,
		Equipment:  equipment,
		Sections:   domain.CloneSections(params.Sections),
		Weather:    snap,
		CreatedAt:  now,
		UpdatedAt:  now,
		Status:     domain.ReportStatusCompleted,
	}

	if err := s.store.Append(ctx, report); err != nil {
		metrics.StoreErrors.WithLabelValues("append").Inc()
		return domain.Report{}, domain.Storage(err, op, "Failed to save report")
	}

	metrics.ReportsCreated.Inc()
	s.logger.Info("report saved",
		"report_id", report.ID,
		"name", report.Name,
		"equipment_id", report.Equipment.ID,
		"items", report.ItemCount(),
		"weather_degraded", report.Weather.Degraded,
	)
	return report, nil
}

func (s *reportService) ListReports(ctx context.Context, filter ReportFilter, sort SortDirection) ([]domain.Report, error) {
	const op = "service.ListReports"

	reports, err := s.store.List(ctx)
	if err != nil {
		metrics.StoreErrors.WithLabelValues("list").Inc()
		return nil, domain.Storage(err, op, "Failed to list reports")
	}

	return SortReportsByDate(FilterReports(reports, filter), sort), nil
}

func (s *reportService) GetReport(ctx context.Context, id string) (domain.Report, error) {
	const op = "service.GetReport"

	report, err := s.store.Get(ctx, id)
	if err != nil {
		if store.IsNotFound(err) {
			return domain.Report{}, domain.NotFound(op, "report", id)
		}
		metrics.StoreErrors.WithLabelValues("get").Inc()
		return domain.Report{}, domain.Storage(err, op, "Failed to load report")
	}
	return report, nil
}

func (s *reportService) DeleteReport(ctx context.Context, id string) error {
	const op = "service.DeleteReport"

	if err := s.store.Remove(ctx, id); err != nil {
		metrics.StoreErrors.WithLabelValues("remove").Inc()
		return domain.Storage(err, op, "Failed to delete report")
	}

	metrics.ReportsDeleted.Inc()
	s.logger.Info("report deleted", "report_id", id)
	return nil
}
