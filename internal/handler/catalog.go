package handler

import (
	"log/slog"
	"net/http"

	"github.com/skystack/flightform/internal/catalog"
	"github.com/skystack/flightform/internal/domain"
	"github.com/skystack/flightform/internal/service"
)

// CatalogHandler serves the static reference data: equipment profiles
// and templates.
type CatalogHandler struct {
	catalog *catalog.Catalog
	reports service.ReportService
	logger  *slog.Logger
}

// NewCatalogHandler creates a catalog handler.
func NewCatalogHandler(cat *catalog.Catalog, reports service.ReportService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: cat,
		reports: reports,
		logger:  logger,
	}
}

// RegisterRoutes attaches the catalog endpoints to the mux.
func (h *CatalogHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/equipment", h.ListEquipment)
	mux.HandleFunc("GET /api/equipment/{id}", h.GetEquipment)
	mux.HandleFunc("GET /api/templates/sections", h.ListSectionTemplates)
	mux.HandleFunc("GET /api/templates/reports", h.ListReportTemplates)
	mux.HandleFunc("GET /api/templates/reports/{id}", h.GetReportTemplate)
	mux.HandleFunc("GET /api/templates/reports/{id}/sections", h.InstantiateTemplate)
}

// ListEquipment returns all equipment profiles.
func (h *CatalogHandler) ListEquipment(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"equipment": h.catalog.Equipment(),
	})
}

// GetEquipment returns one equipment profile.
func (h *CatalogHandler) GetEquipment(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	profile, ok := h.catalog.EquipmentByID(id)
	if !ok {
		ErrorResponse(w, r, h.logger, domain.NotFound("handler.GetEquipment", "equipment", id))
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// ListSectionTemplates returns the section template library.
func (h *CatalogHandler) ListSectionTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"templates": h.catalog.SectionTemplates(),
	})
}

// ListReportTemplates returns report templates, optionally filtered by
// equipment.
func (h *CatalogHandler) ListReportTemplates(w http.ResponseWriter, r *http.Request) {
	var templates []domain.ReportTemplate
	if equipmentID := r.URL.Query().Get("equipment_id"); equipmentID != "" {
		templates = h.catalog.ReportTemplatesForEquipment(equipmentID)
	} else {
		templates = h.catalog.ReportTemplates()
	}
	if templates == nil {
		templates = []domain.ReportTemplate{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"templates": templates,
	})
}

// GetReportTemplate returns one report template.
func (h *CatalogHandler) GetReportTemplate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	tpl, ok := h.catalog.ReportTemplateByID(id)
	if !ok {
		ErrorResponse(w, r, h.logger, domain.NotFound("handler.GetReportTemplate", "report template", id))
		return
	}
	writeJSON(w, http.StatusOK, tpl)
}

// InstantiateTemplate returns fresh starting sections for an editing
// session based on the template. Each call issues new ids.
func (h *CatalogHandler) InstantiateTemplate(w http.ResponseWriter, r *http.Request) {
	sections, err := h.reports.InstantiateTemplate(r.PathValue("id"))
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}
	if sections == nil {
		sections = []domain.Section{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"sections": sections,
	})
}
