// Copyright (C) 2026 Acme Logistics (engineering@acmelogistics.io)
// Tests for route wiring and auth coverage

package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AcmeLogistics/loadboard/services/loadboard/callstore"
	"github.com/AcmeLogistics/loadboard/services/loadboard/datatypes"
	"github.com/AcmeLogistics/loadboard/services/loadboard/middleware"
	"github.com/AcmeLogistics/loadboard/services/loadboard/search"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testRouter(apiKey string) *gin.Engine {
	router := gin.New()
	SetupRoutes(router, Deps{
		Search:         search.NewEngine([]datatypes.Load{}),
		Store:          callstore.NewMemoryStore(),
		Feed:           callstore.NewFeed(),
		APIKey:         apiKey,
		AllowedOrigins: []string{"http://localhost:5173"},
	})
	return router
}

func TestHealthIsUnauthenticated(t *testing.T) {
	router := testRouter("secret")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIRoutesRequireKey(t *testing.T) {
	router := testRouter("secret")

	endpoints := []struct {
		method string
		path   string
	}{
		{"GET", "/loads/search"},
		{"POST", "/negotiation/evaluate"},
		{"POST", "/carrier/validate"},
		{"POST", "/calls/log"},
		{"GET", "/metrics/summary"},
		{"GET", "/metrics/calls"},
	}

	for _, ep := range endpoints {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(ep.method, ep.path, nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", ep.method, ep.path)
	}
}

func TestValidKeyPassesThrough(t *testing.T) {
	router := testRouter("secret")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/metrics/summary", nil)
	req.Header.Set(middleware.APIKeyHeader, "secret")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

// With no key configured the server fails closed rather than open.
func TestMissingServerKeyFailsClosed(t *testing.T) {
	router := testRouter("")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/metrics/summary", nil)
	req.Header.Set(middleware.APIKeyHeader, "anything")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_API_KEY not configured")
}

// Browser WebSocket clients cannot set headers, so the feed route takes
// the key as a query parameter. A keyed plain-HTTP request reaches the
// handler and fails the upgrade (400), never the auth check (401).
func TestCallFeedAcceptsQueryParamKey(t *testing.T) {
	router := testRouter("secret")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/calls/ws", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/calls/ws?api_key=secret", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	router := testRouter("secret")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("OPTIONS", "/loads/search", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}
