package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registrarStub struct {
	registerFn func(r chi.Router, authMiddleware func(http.Handler) http.Handler)
}

func (s registrarStub) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	s.registerFn(r, authMiddleware)
}

func TestRootBanner(t *testing.T) {
	rr := httptest.NewRecorder()
	New(nil).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, float64(http.StatusOK), body["code"])
	assert.Equal(t, bannerMessage, body["message"])
}

func TestUnknownRouteUsesEnvelope(t *testing.T) {
	rr := httptest.NewRecorder()
	New(nil).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"code":404,"message":"Resource not found"}`, rr.Body.String())
}

func TestOpenAPIDocumentIsValidJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	New(nil).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/swagger/openapi.json", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var doc struct {
		Paths map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &doc))
	assert.Contains(t, doc.Paths, "/api/v1/payment/release")
	assert.Contains(t, doc.Paths, "/api/v1/payment/partial-refund")
}

func TestDocsRedirect(t *testing.T) {
	rr := httptest.NewRecorder()
	New(nil).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/docs", nil))

	assert.Equal(t, http.StatusMovedPermanently, rr.Code)
	assert.Equal(t, "/swagger/", rr.Header().Get("Location"))
}

func TestRegistrarsReceiveAuthMiddleware(t *testing.T) {
	guarded := false
	auth := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			guarded = true
			next.ServeHTTP(w, r)
		})
	}

	h := New(auth, registrarStub{registerFn: func(r chi.Router, mw func(http.Handler) http.Handler) {
		r.With(mw).Get("/guarded", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
	}})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/guarded", nil))

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.True(t, guarded)
}

func TestMetricsExposeRoutePatterns(t *testing.T) {
	h := New(nil)
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.True(t, strings.Contains(body, `http_requests_total{method="GET",route="/health",status="200"}`), body)
	assert.Contains(t, body, "http_request_duration_seconds")
}
