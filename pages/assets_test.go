package pages

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestInitAndServe(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	for _, name := range []string{"index.html", "app.css", "app.js"} {
		if _, ok := assets[name]; !ok {
			t.Errorf("Missing embedded asset %s", name)
		}
	}

	router := gin.New()
	router.GET("/", ServeIndex)
	router.GET("/static/*filepath", ServeStatic)

	tests := []struct {
		name     string
		path     string
		wantCode int
		wantType string
	}{
		{"index", "/", http.StatusOK, "text/html"},
		{"css", "/static/app.css", http.StatusOK, "text/css"},
		{"js", "/static/app.js", http.StatusOK, "javascript"},
		{"missing", "/static/nope.png", http.StatusNotFound, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			router.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Fatalf("status = %d; want %d", w.Code, tt.wantCode)
			}
			if tt.wantType != "" && !strings.Contains(w.Header().Get("Content-Type"), tt.wantType) {
				t.Errorf("Content-Type = %q; want %q", w.Header().Get("Content-Type"), tt.wantType)
			}
		})
	}
}

func TestServeGzip(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	router := gin.New()
	router.GET("/", ServeIndex)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}
	if w.Header().Get("Content-Encoding") != "gzip" {
		t.Error("Expected gzipped response for gzip-accepting client")
	}
}
