package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"uni_dashboard/catalog"
	"uni_dashboard/config"
	"uni_dashboard/routes"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment:        config.EnvTest,
		ServerPort:         "8080",
		SessionSecret:      "test-session-secret-0123456789abcdef",
		SessionName:        "dashboard_session",
		SessionMaxAge:      time.Hour,
		CORSAllowedOrigins: []string{"*"},
		DefaultTotal:       30,
		Author:             "Tester",
		AppTitle:           "Test Dashboard",
		ShutdownTimeout:    time.Second,
		Catalog:            catalog.Default(),
	}
}

func setup(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r, err := routes.NewRouter(testConfig(), "test")
	require.NoError(t, err)
	return r
}

// withSubjects builds path?subjects=<raw>.
func withSubjects(path, raw string) string {
	return path + "?" + url.Values{"subjects": {raw}}.Encode()
}

func newJSONRequest(method, path string, body interface{}) *http.Request {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func newFormRequest(path string, form url.Values, cookies []*http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

func newPageRequest(path string, cookies []*http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	data, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, v), "body: %s", data)
}
