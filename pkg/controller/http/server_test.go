package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	server "github.com/secmon-lab/briareos/pkg/controller/http"
	"github.com/secmon-lab/briareos/pkg/domain/model"
	"github.com/secmon-lab/briareos/pkg/domain/taxonomy"
	"github.com/secmon-lab/briareos/pkg/repository/memory"
	"github.com/secmon-lab/briareos/pkg/service/detect"
	"github.com/secmon-lab/briareos/pkg/usecase"
)

func newServer(t *testing.T) *server.Server {
	t.Helper()
	tax, err := taxonomy.New()
	gt.NoError(t, err)
	uc := usecase.New(memory.New(), detect.New(tax))
	return server.New(uc)
}

func postJSON(t *testing.T, srv *server.Server, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func get(t *testing.T, srv *server.Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestClassifyEndpoint(t *testing.T) {
	srv := newServer(t)

	rec := postJSON(t, srv, "/api/classify",
		`{"session_id": "s1", "message": "Je n'ai pas été payé depuis 120 jours"}`)
	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var resp struct {
		SessionID      string  `json:"session_id"`
		Category       string  `json:"category"`
		Agent          string  `json:"agent"`
		Escalate       bool    `json:"escalate"`
		EscalationType string  `json:"escalation_type"`
		Priority       string  `json:"priority"`
		ProcessingMS   float64 `json:"processing_time_ms"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	gt.Value(t, resp.SessionID).Equal("s1")
	gt.Value(t, resp.Category).Equal("payment-tracking")
	gt.Value(t, resp.Agent).Equal("payment")
	gt.Bool(t, resp.Escalate).True()
	gt.Value(t, resp.EscalationType).Equal("general")
	gt.Value(t, resp.Priority).Equal("HIGH")
}

func TestClassifyGeneratesSessionID(t *testing.T) {
	srv := newServer(t)

	rec := postJSON(t, srv, "/api/classify", `{"message": "Bonjour, une question"}`)
	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var resp struct {
		SessionID string `json:"session_id"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	gt.Value(t, len(resp.SessionID)).Equal(36) // UUID v4
}

func TestClassifyRejectsInvalidInput(t *testing.T) {
	srv := newServer(t)

	cases := []struct {
		name string
		body string
	}{
		{"malformed json", `{"message": `},
		{"empty message", `{"session_id": "s", "message": ""}`},
		{"too short", `{"session_id": "s", "message": "a"}`},
		{"too long", `{"session_id": "s", "message": "` + strings.Repeat("a", 1001) + `"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postJSON(t, srv, "/api/classify", tc.body)
			gt.Value(t, rec.Code).Equal(http.StatusBadRequest)
		})
	}
}

func TestSessionLifecycleEndpoints(t *testing.T) {
	srv := newServer(t)

	rec := postJSON(t, srv, "/api/classify",
		`{"session_id": "s1", "message": "Je veux devenir ambassadeur"}`)
	gt.Value(t, rec.Code).Equal(http.StatusOK)

	rec = get(t, srv, "/api/sessions/s1/export")
	gt.Value(t, rec.Code).Equal(http.StatusOK)
	var blob model.SessionExport
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &blob))
	gt.Array(t, blob.Messages).Length(1)

	rec = postJSON(t, srv, "/api/sessions/s1/clear", "")
	gt.Value(t, rec.Code).Equal(http.StatusOK)

	rec = postJSON(t, srv, "/api/sessions/s1/clear", "")
	gt.Value(t, rec.Code).Equal(http.StatusNotFound)

	rec = get(t, srv, "/api/sessions/s1/export")
	gt.Value(t, rec.Code).Equal(http.StatusNotFound)

	// Re-import the exported blob under a new session
	data, err := json.Marshal(&blob)
	gt.NoError(t, err)
	rec = postJSON(t, srv, "/api/sessions/s2/import", string(data))
	gt.Value(t, rec.Code).Equal(http.StatusOK)

	rec = get(t, srv, "/api/sessions/s2/export")
	gt.Value(t, rec.Code).Equal(http.StatusOK)
	var restored model.SessionExport
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &restored))
	gt.Value(t, restored.Session.ID).Equal(model.SessionID("s2"))
}

func TestImportRejectsMalformedBlob(t *testing.T) {
	srv := newServer(t)

	rec := postJSON(t, srv, "/api/sessions/s/import", `{"session": {"id": "", "status": "active"}}`)
	gt.Value(t, rec.Code).Equal(http.StatusBadRequest)

	rec = postJSON(t, srv, "/api/sessions/s/import", `not json`)
	gt.Value(t, rec.Code).Equal(http.StatusBadRequest)
}

func TestStatsEndpoint(t *testing.T) {
	srv := newServer(t)

	postJSON(t, srv, "/api/classify", `{"session_id": "s1", "message": "Bonjour tout le monde"}`)
	postJSON(t, srv, "/api/classify", `{"session_id": "s2", "message": "Quelles sont vos formations ?"}`)

	rec := get(t, srv, "/api/stats")
	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var stats model.StoreStats
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	gt.Value(t, stats.TotalSessions).Equal(2)
	gt.Value(t, stats.TotalMessages).Equal(2)
}

func TestCatalogEndpoints(t *testing.T) {
	srv := newServer(t)

	rec := get(t, srv, "/api/categories")
	gt.Value(t, rec.Code).Equal(http.StatusOK)
	var categories struct {
		Categories []struct {
			ID       string `json:"id"`
			Priority string `json:"priority"`
			Agent    string `json:"agent"`
		} `json:"categories"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
	gt.Array(t, categories.Categories).Length(28)

	rec = get(t, srv, "/api/agents")
	gt.Value(t, rec.Code).Equal(http.StatusOK)
	var agents struct {
		Agents []struct {
			ID             string `json:"id"`
			Specialization string `json:"specialization"`
		} `json:"agents"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &agents))
	gt.Array(t, agents.Agents).Length(7)
}

func TestSweepEndpoint(t *testing.T) {
	srv := newServer(t)

	rec := postJSON(t, srv, "/api/sweep", "")
	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var resp struct {
		Status  string `json:"status"`
		Removed int    `json:"removed"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	gt.Value(t, resp.Status).Equal("swept")
	gt.Value(t, resp.Removed).Equal(0)
}

func TestHealthEndpoint(t *testing.T) {
	srv := newServer(t)

	rec := get(t, srv, "/api/health")
	gt.Value(t, rec.Code).Equal(http.StatusOK)
	gt.Bool(t, bytes.Contains(rec.Body.Bytes(), []byte(`"ok"`))).True()
}
