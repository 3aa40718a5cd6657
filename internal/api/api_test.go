package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/vent-agent/internal/api"
	"github.com/povarna/generative-ai-agents/vent-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/vent-agent/internal/database"
	"github.com/povarna/generative-ai-agents/vent-agent/internal/executor"
	"github.com/povarna/generative-ai-agents/vent-agent/internal/intersect"
	"github.com/povarna/generative-ai-agents/vent-agent/internal/models"
	"github.com/povarna/generative-ai-agents/vent-agent/internal/overlap"
	"github.com/rs/zerolog"
)

const sampleInput = `0,9 -> 5,9
8,0 -> 0,8
9,4 -> 3,4
2,2 -> 2,1
7,0 -> 7,4
6,4 -> 2,0
0,9 -> 2,9
3,4 -> 1,4
0,0 -> 8,8
5,5 -> 8,2
`

type memoryReports struct {
	reports map[string]models.CountResult
}

func (m *memoryReports) SaveReport(_ context.Context, result models.CountResult) error {
	m.reports[result.ID] = result
	return nil
}

func (m *memoryReports) GetReport(_ context.Context, id string) (models.CountResult, error) {
	report, ok := m.reports[id]
	if !ok {
		return models.CountResult{}, database.ErrReportNotFound
	}
	return report, nil
}

func (m *memoryReports) ListReports(_ context.Context, limit int) ([]models.CountResult, error) {
	ids := make([]string, 0, len(m.reports))
	for id := range m.reports {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]models.CountResult, 0, limit)
	for _, id := range ids {
		if len(out) == limit {
			break
		}
		out = append(out, m.reports[id])
	}
	return out, nil
}

func setupTestAPI(t *testing.T, reports api.ReportStore) *restful.Container {
	t.Helper()

	logger := zerolog.Nop()
	exec := executor.NewExecutor(
		overlap.NewCounter(2),
		intersect.NewValidator(),
		nil,
		executor.Settings{Validate: true, MaxValidatorSegments: 100},
		&logger,
	)

	container := restful.NewContainer()
	container.Filter(middleware.RecoverPanic)
	api.RegisterRoutes(container, api.NewHandler(exec, reports, &logger))
	api.RegisterDocs(container)
	return container
}

func TestAPI_Health(t *testing.T) {
	container := setupTestAPI(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	recorder := httptest.NewRecorder()
	container.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", recorder.Code)
	}

	var response api.HealthResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response.Status != "ok" {
		t.Errorf("Expected status 'ok', got '%s'", response.Status)
	}
}

func TestAPI_CountOverlaps_JSON(t *testing.T) {
	reports := &memoryReports{reports: map[string]models.CountResult{}}
	container := setupTestAPI(t, reports)

	countRequest := models.CountRequest{
		ID: "json-001",
		Lines: []models.VentLine{
			{X1: 0, Y1: 9, X2: 5, Y2: 9},
			{X1: 0, Y1: 9, X2: 2, Y2: 9},
		},
	}
	body, err := json.Marshal(countRequest)
	if err != nil {
		t.Fatalf("Failed to marshal request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/overlaps", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	container.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", recorder.Code, recorder.Body.String())
	}

	var result models.CountResult
	if err := json.Unmarshal(recorder.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if result.ID != "json-001" {
		t.Errorf("Expected ID 'json-001', got '%s'", result.ID)
	}
	if result.AxisAligned != 3 || result.All != 3 {
		t.Errorf("Expected 3/3, got %d/%d", result.AxisAligned, result.All)
	}
	if _, ok := reports.reports["json-001"]; !ok {
		t.Error("Expected report to be stored")
	}
}

func TestAPI_CountOverlaps_Text(t *testing.T) {
	container := setupTestAPI(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/overlaps/text?id=text-001", strings.NewReader(sampleInput))
	req.Header.Set("Content-Type", "text/plain")
	recorder := httptest.NewRecorder()
	container.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", recorder.Code, recorder.Body.String())
	}

	var result models.CountResult
	if err := json.Unmarshal(recorder.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if result.AxisAligned != 5 {
		t.Errorf("Expected 5 straight-line overlaps, got %d", result.AxisAligned)
	}
	if result.All != 12 {
		t.Errorf("Expected 12 overlaps, got %d", result.All)
	}
	if !result.Validated {
		t.Error("Expected result to be cross-checked")
	}
}

func TestAPI_CountOverlaps_Errors(t *testing.T) {
	container := setupTestAPI(t, nil)

	tests := []struct {
		name        string
		path        string
		contentType string
		body        string
		status      int
	}{
		{"unsupported slope", "/api/v1/overlaps", "application/json", `{"id":"x","lines":[{"x1":0,"y1":0,"x2":1,"y2":2}]}`, http.StatusUnprocessableEntity},
		{"malformed json", "/api/v1/overlaps", "application/json", `{"lines":`, http.StatusBadRequest},
		{"negative threshold", "/api/v1/overlaps", "application/json", `{"lines":[],"threshold":-1}`, http.StatusBadRequest},
		{"bad vent line", "/api/v1/overlaps/text", "text/plain", "0,9 -> 5\n", http.StatusBadRequest},
		{"bad threshold param", "/api/v1/overlaps/text?threshold=zero", "text/plain", sampleInput, http.StatusBadRequest},
		{"negative coordinate", "/api/v1/overlaps", "application/json", `{"lines":[{"x1":-3,"y1":4,"x2":1,"y2":4}]}`, http.StatusBadRequest},
		{"max int coordinate", "/api/v1/overlaps", "application/json", `{"lines":[{"x1":0,"y1":0,"x2":9223372036854775807,"y2":0},{"x1":0,"y1":0,"x2":0,"y2":0}]}`, http.StatusBadRequest},
		{"max int text line", "/api/v1/overlaps/text", "text/plain", "0,0 -> 9223372036854775807,0\n0,0 -> 0,0\n", http.StatusBadRequest},
		{"oversized json body", "/api/v1/overlaps", "application/json", `{"id":"` + strings.Repeat("a", 9<<20) + `","lines":[]}`, http.StatusBadRequest},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, test.path, strings.NewReader(test.body))
			req.Header.Set("Content-Type", test.contentType)
			recorder := httptest.NewRecorder()
			container.ServeHTTP(recorder, req)

			if recorder.Code != test.status {
				t.Errorf("Expected status %d, got %d. Body: %s", test.status, recorder.Code, recorder.Body.String())
			}
		})
	}
}

func TestAPI_GetReport(t *testing.T) {
	reports := &memoryReports{reports: map[string]models.CountResult{
		"stored": {ID: "stored", AxisAligned: 5, All: 12, Threshold: 2},
	}}
	container := setupTestAPI(t, reports)

	recorder := httptest.NewRecorder()
	container.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/reports/stored", nil))
	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", recorder.Code)
	}

	recorder = httptest.NewRecorder()
	container.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/reports/missing", nil))
	if recorder.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", recorder.Code)
	}
}

func TestAPI_GetReport_NoStore(t *testing.T) {
	container := setupTestAPI(t, nil)

	recorder := httptest.NewRecorder()
	container.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/reports/any", nil))
	if recorder.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503, got %d", recorder.Code)
	}
}

func TestAPI_ListReports(t *testing.T) {
	reports := &memoryReports{reports: map[string]models.CountResult{
		"a": {ID: "a", AxisAligned: 5, All: 12, Threshold: 2},
		"b": {ID: "b", AxisAligned: 1, All: 1, Threshold: 2},
		"c": {ID: "c", AxisAligned: 0, All: 3, Threshold: 2},
	}}
	container := setupTestAPI(t, reports)

	recorder := httptest.NewRecorder()
	container.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/reports?limit=2", nil))
	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", recorder.Code)
	}

	var listed []models.CountResult
	if err := json.Unmarshal(recorder.Body.Bytes(), &listed); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(listed) != 2 {
		t.Errorf("Expected 2 reports, got %d", len(listed))
	}

	recorder = httptest.NewRecorder()
	container.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/reports?limit=zero", nil))
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", recorder.Code)
	}
}

func TestAPI_Docs(t *testing.T) {
	container := setupTestAPI(t, nil)

	recorder := httptest.NewRecorder()
	container.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/apidocs.json", nil))
	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), "/api/v1/overlaps") {
		t.Error("Expected the overlaps route in the OpenAPI document")
	}
}
