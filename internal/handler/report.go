package handler

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/skystack/flightform/internal/domain"
	"github.com/skystack/flightform/internal/export"
	"github.com/skystack/flightform/internal/metrics"
	"github.com/skystack/flightform/internal/service"
	"github.com/skystack/flightform/internal/storage"
)

// ReportHandler serves the flight-report endpoints.
type ReportHandler struct {
	reports service.ReportService
	storage storage.Storage
	logger  *slog.Logger
}

// NewReportHandler creates a report handler.
func NewReportHandler(reports service.ReportService, st storage.Storage, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		reports: reports,
		storage: st,
		logger:  logger,
	}
}

// RegisterRoutes attaches the report endpoints to the mux.
func (h *ReportHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/reports", h.Create)
	mux.HandleFunc("GET /api/reports", h.List)
	mux.HandleFunc("GET /api/reports/{id}", h.Get)
	mux.HandleFunc("DELETE /api/reports/{id}", h.Delete)
	mux.HandleFunc("GET /api/reports/{id}/export", h.Export)
}

// createReportRequest is the save-report payload.
type createReportRequest struct {
	Name        string                  `json:"name"`
	TemplateID  string                  `json:"templateId,omitempty"`
	EquipmentID string                  `json:"equipmentId"`
	Sections    []domain.Section        `json:"sections"`
	Weather     *domain.WeatherSnapshot `json:"weather,omitempty"`
}

// Create saves a finished report.
func (h *ReportHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReportRequest
	if err := decodeJSON(r, &req); err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	report, err := h.reports.CreateReport(r.Context(), service.CreateReportParams{
		Name:        req.Name,
		TemplateID:  req.TemplateID,
		EquipmentID: req.EquipmentID,
		Sections:    req.Sections,
		Weather:     req.Weather,
	})
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, report)
}

// List returns saved reports, optionally filtered and sorted.
//
// Query parameters:
//   - start, end: inclusive date bounds (RFC 3339 or YYYY-MM-DD)
//   - equipment_id: exact equipment match
//   - sort: "asc" or "desc" (default desc, newest first)
func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var filter service.ReportFilter
	var err error

	if v := q.Get("start"); v != "" {
		filter.Start, err = parseDateParam(v, false)
		if err != nil {
			ErrorResponse(w, r, h.logger, domain.Invalid("handler.ListReports", "Invalid start date"))
			return
		}
	}
	if v := q.Get("end"); v != "" {
		filter.End, err = parseDateParam(v, true)
		if err != nil {
			ErrorResponse(w, r, h.logger, domain.Invalid("handler.ListReports", "Invalid end date"))
			return
		}
	}
	filter.EquipmentID = q.Get("equipment_id")

	sort := service.SortNewestFirst
	switch q.Get("sort") {
	case "", "desc":
	case "asc":
		sort = service.SortOldestFirst
	default:
		ErrorResponse(w, r, h.logger, domain.Invalid("handler.ListReports", "sort must be 'asc' or 'desc'"))
		return
	}

	reports, err := h.reports.ListReports(r.Context(), filter, sort)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}
	if reports == nil {
		reports = []domain.Report{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"reports": reports,
		"count":   len(reports),
	})
}

// Get returns a single saved report.
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	report, err := h.reports.GetReport(r.Context(), r.PathValue("id"))
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// Delete removes a saved report.
func (h *ReportHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.reports.DeleteReport(r.Context(), r.PathValue("id")); err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Export renders a report in the requested format, archives the
// artifact in object storage, and streams it to the client.
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	const op = "handler.ExportReport"

	format := export.Format(r.URL.Query().Get("format"))
	if format == "" {
		format = export.FormatPDF
	}

	gen, ok := export.ForFormat(format)
	if !ok {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, fmt.Sprintf("Unsupported export format %q", format)))
		return
	}

	report, err := h.reports.GetReport(r.Context(), r.PathValue("id"))
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	var buf bytes.Buffer
	if _, err := gen.Generate(r.Context(), report, &buf); err != nil {
		ErrorResponse(w, r, h.logger,
			domain.Internal(err, op, "Failed to generate export"))
		return
	}

	// Archive the artifact before streaming; failure here is logged but
	// does not block the download.
	key := storage.ExportKey(report.ID, format.FileExtension())
	if err := h.storage.Put(r.Context(), key, bytes.NewReader(buf.Bytes()), storage.PutOptions{
		ContentType: format.ContentType(),
	}); err != nil {
		h.logger.Warn("failed to archive export artifact",
			"report_id", report.ID,
			"key", key,
			"error", err,
		)
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", exportFilename(report, format)))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))

	if _, err := io.Copy(w, &buf); err != nil {
		h.logger.Warn("export download interrupted",
			"report_id", report.ID,
			"error", err,
		)
		return
	}

	metrics.ReportsExported.WithLabelValues(string(format)).Inc()
	h.logger.Info("report exported",
		"report_id", report.ID,
		"format", format,
		"key", key,
	)
}

// exportFilename builds a download filename from the report name and
// creation date.
func exportFilename(report domain.Report, format export.Format) string {
	return fmt.Sprintf("flight-report-%s.%s",
		report.CreatedAt.Format("2006-01-02"), format.FileExtension())
}

// parseDateParam accepts RFC 3339 timestamps and bare dates. A bare end
// date extends to the end of that day so the bound stays inclusive.
func parseDateParam(v string, isEnd bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, err
	}
	if isEnd {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}
