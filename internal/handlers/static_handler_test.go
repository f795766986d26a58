package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStaticHandler(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte("<html>app</html>"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "assets", "app.js"), []byte("console.log(1)"), 0o644))

	handler := NewStaticHandler(root, zap.NewNop())

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
		expectedBody   string
	}{
		{name: "existing asset", method: http.MethodGet, path: "/assets/app.js", expectedStatus: http.StatusOK, expectedBody: "console.log(1)"},
		{name: "root", method: http.MethodGet, path: "/", expectedStatus: http.StatusOK, expectedBody: "<html>app</html>"},
		{name: "client route falls back to index", method: http.MethodGet, path: "/courses/ethical-hacking", expectedStatus: http.StatusOK, expectedBody: "<html>app</html>"},
		{name: "directory falls back to index", method: http.MethodGet, path: "/assets", expectedStatus: http.StatusOK, expectedBody: "<html>app</html>"},
		{name: "traversal stays below root", method: http.MethodGet, path: "/../../etc/passwd", expectedStatus: http.StatusOK, expectedBody: "<html>app</html>"},
		{name: "unknown api route", method: http.MethodGet, path: "/api/unknown", expectedStatus: http.StatusNotFound},
		{name: "post rejected", method: http.MethodPost, path: "/", expectedStatus: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, rec.Body.String())
			}
		})
	}
}

func TestStaticHandler_MissingIndex(t *testing.T) {
	handler := NewStaticHandler(t.TempDir(), zap.NewNop())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not found", responseMessage(t, rec))
}
