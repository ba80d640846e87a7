package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware_RecordsRoutePatternAndStatus(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/api/history/{index}/download", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/history/{index}/download", "Not Found"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/history/3/download", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/history/{index}/download", "Not Found"))
	assert.Equal(t, before+1, after)
}

func TestGenerationMetrics(t *testing.T) {
	before := testutil.ToFloat64(generationsTotal.WithLabelValues("failure", "http"))
	GenerationTotal("failure", "http")
	assert.Equal(t, before+1, testutil.ToFloat64(generationsTotal.WithLabelValues("failure", "http")))

	GenerationStarted()
	assert.Equal(t, 1.0, testutil.ToFloat64(generationInFlight))
	GenerationFinished()
	assert.Equal(t, 0.0, testutil.ToFloat64(generationInFlight))
}
