package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCORSMiddleware_Preflight(t *testing.T) {
	var reachedNext bool
	handler := CORSMiddleware([]string{"*"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reachedNext = true
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/upload/photo", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String(), "preflight answers with an empty body")
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Content-Type")
	assert.False(t, reachedNext, "preflight must not reach the router")
}

func TestCORSMiddleware_PassesNonPreflight(t *testing.T) {
	handler := CORSMiddleware([]string{"https://terteryan.example"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/media", nil)
	req.Header.Set("Origin", "https://terteryan.example")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://terteryan.example", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestGetAllowedOrigin(t *testing.T) {
	tests := []struct {
		name    string
		origin  string
		allowed []string
		want    string
	}{
		{"wildcard", "http://localhost:3000", []string{"*"}, "*"},
		{"exact match", "https://a.example", []string{"https://a.example"}, "https://a.example"},
		{"case insensitive", "https://A.example", []string{"https://a.example"}, "https://A.example"},
		{"no match", "https://evil.example", []string{"https://a.example"}, ""},
		{"no origin header", "", []string{"*"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, getAllowedOrigin(tt.origin, tt.allowed))
		})
	}
}
