package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/2beens/gymroutines/internal/telemetry/metrics"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestMetrics(t *testing.T) {
	metricsManager, reg := metrics.NewTestManagerAndRegistry()

	r := mux.NewRouter()
	r.HandleFunc("/routines/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.HandleFunc("/routines", func(w http.ResponseWriter, r *http.Request) {})
	r.Use(RequestMetrics(metricsManager))

	for _, path := range []string{"/routines/1", "/routines/2", "/routines"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, float64(2), testutil.ToFloat64(metricsManager.CounterRequests.With(prometheus.Labels{
		"method": http.MethodGet,
		"status": "404",
	})))
	assert.Equal(t, float64(1), testutil.ToFloat64(metricsManager.CounterRequests.With(prometheus.Labels{
		"method": http.MethodGet,
		"status": "200",
	})))
	assert.Equal(t, float64(0), testutil.ToFloat64(metricsManager.GaugeRequests))

	families, err := reg.Gather()
	require.NoError(t, err)
	var routes []string
	for _, mf := range families {
		if mf.GetName() != "backend_test_server_request_duration_seconds" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "route" {
					routes = append(routes, l.GetValue())
				}
			}
		}
	}
	assert.ElementsMatch(t, []string{"/routines/{id}", "/routines"}, routes)
}

func TestDrainAndCloseRequest(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	rr := httptest.NewRecorder()
	DrainAndCloseRequest()(next).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/routines", nil))
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rr.Code)
}
