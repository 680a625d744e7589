package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skystack/flightform/internal/catalog"
	"github.com/skystack/flightform/internal/domain"
	"github.com/skystack/flightform/internal/editor"
	"github.com/skystack/flightform/internal/service"
	"github.com/skystack/flightform/internal/storage"
	"github.com/skystack/flightform/internal/store"
	"github.com/skystack/flightform/internal/weather"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cat := catalog.Default()
	st := store.NewMemoryStore()

	mock := weather.NewMockProvider(logger)
	mock.FetchResponse = &domain.WeatherSnapshot{Temperature: 18, Conditions: "Clear"}
	wsvc := weather.NewService(mock, weather.Config{}, logger)

	reports := service.NewReportService(st, cat, wsvc, editor.UUIDGenerator{}, nil, logger)

	objStore, err := storage.NewLocalStorage(storage.LocalConfig{
		BasePath: t.TempDir(),
		BaseURL:  "http://localhost:8080/files",
	}, logger)
	require.NoError(t, err)

	mux := http.NewServeMux()
	NewReportHandler(reports, objStore, logger).RegisterRoutes(mux)
	NewCatalogHandler(cat, reports, logger).RegisterRoutes(mux)
	NewWeatherHandler(wsvc, logger).RegisterRoutes(mux)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func createReportPayload(name string) string {
	return `{
		"name": "` + name + `",
		"equipmentId": "drone-001",
		"sections": [
			{
				"id": "section-1",
				"title": "Takeoff",
				"kind": "checklist",
				"order": 0,
				"items": [
					{"id": "item-1", "content": "Engine start", "kind": "checkbox", "value": true}
				]
			}
		]
	}`
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestCreateReportEndpoint(t *testing.T) {
	srv := newTestServer(t)

	t.Run("valid payload", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/api/reports", createReportPayload("Morning survey"))
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		report := decodeBody[domain.Report](t, resp)
		assert.NotEmpty(t, report.ID)
		assert.Equal(t, "Morning survey", report.Name)
		assert.Equal(t, "miniSIGMA", report.Equipment.Name)
		// Weather is captured server-side when the client omits it.
		assert.Equal(t, 18.0, report.Weather.Temperature)
	})

	t.Run("validation failure returns field errors", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/api/reports", `{"name":"","equipmentId":"drone-001","sections":[]}`)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decodeBody[JSONError](t, resp)
		assert.Equal(t, domain.EINVALID, body.Error.Code)
		assert.Contains(t, body.Error.Fields, "name")
		assert.Contains(t, body.Error.Fields, "sections")
	})

	t.Run("malformed body", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/api/reports", `{not json`)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestListReportsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	for _, name := range []string{"First", "Second"} {
		resp := postJSON(t, srv.URL+"/api/reports", createReportPayload(name))
		resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	type listResponse struct {
		Reports []domain.Report `json:"reports"`
		Count   int             `json:"count"`
	}

	t.Run("lists newest first by default", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/reports")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody[listResponse](t, resp)
		require.Equal(t, 2, body.Count)
		assert.Equal(t, "Second", body.Reports[0].Name)
	})

	t.Run("oldest first", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/reports?sort=asc")
		require.NoError(t, err)
		body := decodeBody[listResponse](t, resp)
		require.Equal(t, 2, body.Count)
		assert.Equal(t, "First", body.Reports[0].Name)
	})

	t.Run("equipment filter excludes everything else", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/reports?equipment_id=drone-003")
		require.NoError(t, err)
		body := decodeBody[listResponse](t, resp)
		assert.Equal(t, 0, body.Count)
		assert.NotNil(t, body.Reports)
	})

	t.Run("bad date parameter", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/reports?start=junk")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetAndDeleteReportEndpoints(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/reports", createReportPayload("Survey"))
	created := decodeBody[domain.Report](t, resp)

	t.Run("get", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/reports/" + created.ID)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		got := decodeBody[domain.Report](t, resp)
		assert.Equal(t, created.ID, got.ID)
	})

	t.Run("get missing", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/reports/report-missing")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("delete then gone", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/reports/"+created.ID, nil)
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)

		getResp, err := http.Get(srv.URL + "/api/reports/" + created.ID)
		require.NoError(t, err)
		getResp.Body.Close()
		assert.Equal(t, http.StatusNotFound, getResp.StatusCode)
	})

	t.Run("delete missing id is a no-op", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/reports/report-missing", nil)
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})
}

func TestExportEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/reports", createReportPayload("Export me"))
	created := decodeBody[domain.Report](t, resp)

	t.Run("json export round-trips", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/reports/" + created.ID + "/export?format=json")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
		assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")

		var exported domain.Report
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&exported))
		assert.Equal(t, created.ID, exported.ID)
	})

	t.Run("pdf export is the default", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/reports/" + created.ID + "/export")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
	})

	t.Run("unsupported format", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/reports/" + created.ID + "/export?format=docx")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestCatalogEndpoints(t *testing.T) {
	srv := newTestServer(t)

	t.Run("equipment list", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/equipment")
		require.NoError(t, err)
		body := decodeBody[map[string][]domain.EquipmentProfile](t, resp)
		assert.NotEmpty(t, body["equipment"])
	})

	t.Run("equipment by id", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/equipment/drone-001")
		require.NoError(t, err)
		profile := decodeBody[domain.EquipmentProfile](t, resp)
		assert.Equal(t, "miniSIGMA", profile.Name)
	})

	t.Run("section templates", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/templates/sections")
		require.NoError(t, err)
		body := decodeBody[map[string][]domain.SectionTemplate](t, resp)
		assert.NotEmpty(t, body["templates"])
	})

	t.Run("instantiate empty template falls back to lifecycle sections", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/templates/reports/template-001/sections")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody[map[string][]domain.Section](t, resp)
		sections := body["sections"]
		require.NotEmpty(t, sections)
		require.NoError(t, domain.ValidateSections(sections))
	})

	t.Run("unknown template", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/templates/reports/template-999/sections")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestWeatherEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/weather")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	snap := decodeBody[domain.WeatherSnapshot](t, resp)
	assert.Equal(t, 18.0, snap.Temperature)
	assert.False(t, snap.Degraded)
}
