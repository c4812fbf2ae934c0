package ui

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scistat/adapters/memory"
	"scistat/app"
	"scistat/domain/report"
	"scistat/ports"
)

func newTestServer(t *testing.T) (*Server, ports.ReportRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	repo := memory.NewReportRepository()
	return NewServer(app.NewAnalyzerService(repo, nil), repo, "0"), repo
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)
	w := do(t, s, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestAnalyzeSingleSample(t *testing.T) {
	s, repo := newTestServer(t)
	w := do(t, s, http.MethodPost, "/api/analyze", `{"x":[1,2,3,4,5],"name":"readings"}`)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"sections"`)
	assert.Contains(t, body, "Shapiro-Wilk")

	stored, err := repo.List(context.Background(), 10, 0)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, report.KindSingle, stored[0].Kind)
}

func TestAnalyzeGroups(t *testing.T) {
	s, _ := newTestServer(t)
	payload := `{"groups":[
		{"label":"control","values":[1,2,3,4,5]},
		{"label":"treated","values":[1,2,3,4,5,100]}
	]}`
	w := do(t, s, http.MethodPost, "/api/analyze", payload)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Welch's T Test")
}

func TestAnalyzeRejectsMalformedBody(t *testing.T) {
	s, _ := newTestServer(t)
	w := do(t, s, http.MethodPost, "/api/analyze", "not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeRejectsEmptyRequest(t *testing.T) {
	s, _ := newTestServer(t)
	w := do(t, s, http.MethodPost, "/api/analyze", `{}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGetReportNotFound(t *testing.T) {
	s, _ := newTestServer(t)
	w := do(t, s, http.MethodGet, "/api/reports/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListReports(t *testing.T) {
	s, _ := newTestServer(t)
	require.Equal(t, http.StatusOK, do(t, s, http.MethodPost, "/api/analyze", `{"x":[1,2,3,4,5]}`).Code)

	w := do(t, s, http.MethodGet, "/api/reports", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"reports"`)
}

func TestReportPageRendersHTML(t *testing.T) {
	s, repo := newTestServer(t)

	rep := &report.Report{ID: "r1", Kind: report.KindSingle, Alpha: 0.05, Title: "Trial"}
	rep.Append("Statistics", "Count = 5")
	require.NoError(t, repo.Save(context.Background(), rep))

	w := do(t, s, http.MethodGet, "/reports/r1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "<h1")
	assert.Contains(t, w.Body.String(), "Trial")
}
