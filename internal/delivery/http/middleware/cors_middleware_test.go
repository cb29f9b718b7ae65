package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCORSAllowedOrigins(t *testing.T) {
	cases := []struct {
		name           string
		origins        []string
		requestOrigin  string
		expectedHeader string
	}{
		{
			name:           "empty list allows all",
			origins:        nil,
			requestOrigin:  "https://admin.hospital.test",
			expectedHeader: "*",
		},
		{
			name:           "wildcard entry allows all",
			origins:        []string{"*"},
			requestOrigin:  "https://anywhere.test",
			expectedHeader: "*",
		},
		{
			name:           "listed origin is echoed",
			origins:        []string{"https://admin.hospital.test"},
			requestOrigin:  "https://admin.hospital.test",
			expectedHeader: "https://admin.hospital.test",
		},
		{
			name:           "unlisted origin gets no header",
			origins:        []string{"https://admin.hospital.test"},
			requestOrigin:  "https://evil.test",
			expectedHeader: "",
		},
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	for _, c := range cases {
		m := NewCORSMiddleware(c.origins)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if c.requestOrigin != "" {
			req.Header.Set("Origin", c.requestOrigin)
		}
		rec := httptest.NewRecorder()

		m.Handle(next).ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != c.expectedHeader {
			t.Errorf("%s: expected %q, got %q", c.name, c.expectedHeader, got)
		}
	}
}

func TestCORSPreflightShortCircuits(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	m := NewCORSMiddleware(nil)
	req := httptest.NewRequest(http.MethodOptions, "/doctors", nil)
	rec := httptest.NewRecorder()

	m.Handle(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if called {
		t.Error("preflight must not reach the next handler")
	}
}
