package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itinero-server/internal/middleware"
)

func TestMetrics_RecordsRequestsByRoutePattern(t *testing.T) {
	m := middleware.NewMetrics()

	r := chi.NewRouter()
	r.Use(m.Handler())
	r.Get("/trips/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, target := range []string{"/trips/1", "/trips/2"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := httptest.NewRecorder()
	m.ScrapeHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	// Both requests collapse onto the route pattern, not the concrete paths.
	assert.Contains(t, string(body), `http_requests_total{method="GET",route="/trips/{id}",status="200"} 2`)
	assert.NotContains(t, string(body), `route="/trips/1"`)
	assert.Contains(t, string(body), "http_request_duration_seconds_bucket")
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	// Two servers in one process must not trip duplicate registration.
	require.NotPanics(t, func() {
		middleware.NewMetrics()
		middleware.NewMetrics()
	})
}
