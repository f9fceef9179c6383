package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func doCORSRequest(allowed []string, method, origin string) *httptest.ResponseRecorder {
	r := gin.New()
	r.Use(CORS(allowed))
	r.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.OPTIONS("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(method, "/test", http.NoBody)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name        string
		allowed     []string
		method      string
		origin      string
		wantStatus  int
		wantAllowed string
	}{
		{"known_origin", []string{"https://app.celerey.co"}, http.MethodGet, "https://app.celerey.co", http.StatusOK, "https://app.celerey.co"},
		{"wildcard", []string{"*"}, http.MethodGet, "https://elsewhere.example", http.StatusOK, "https://elsewhere.example"},
		{"unknown_origin", []string{"https://app.celerey.co"}, http.MethodGet, "https://evil.example", http.StatusOK, ""},
		{"no_origin", []string{"*"}, http.MethodGet, "", http.StatusOK, ""},
		{"preflight_known", []string{"https://app.celerey.co"}, http.MethodOptions, "https://app.celerey.co", http.StatusNoContent, "https://app.celerey.co"},
		{"preflight_unknown", []string{"https://app.celerey.co"}, http.MethodOptions, "https://evil.example", http.StatusForbidden, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doCORSRequest(tt.allowed, tt.method, tt.origin)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantAllowed {
				t.Errorf("expected allow-origin %q, got %q", tt.wantAllowed, got)
			}
		})
	}
}
