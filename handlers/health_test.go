package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	app := setup(t)

	rec := serve(app, newJSONRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]string
	decodeBody(t, rec, &got)
	assert.Equal(t, map[string]string{"status": "healthy", "version": "test", "environment": "test"}, got)
}

func TestMetrics(t *testing.T) {
	app := setup(t)

	serve(app, newJSONRequest(http.MethodPost, "/api/attendance/subjects", map[string]interface{}{"name": "Math", "total": 30}))
	serve(app, newJSONRequest(http.MethodGet, withSubjects("/api/attendance", "{"), nil))

	rec := serve(app, newJSONRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `dashboard_attendance_operations_total{operation="add_subject",result="ok"}`)
	assert.Contains(t, rec.Body.String(), `dashboard_subjects_decode_errors_total{source="query"}`)
}

func TestStatic(t *testing.T) {
	app := setup(t)

	rec := serve(app, newPageRequest("/static/style.css", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/css")
}
