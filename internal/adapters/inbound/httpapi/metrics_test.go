package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordsRoutePattern(t *testing.T) {
	m, err := NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/items/{id}", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("item"))
	})
	r.Get("/teapot", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	serve(r, httptest.NewRequest(http.MethodGet, "/items/7", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/items/8", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/teapot", nil))

	assert.InDelta(t, 2, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/items/{id}", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/teapot", "418")), 0)
	assert.Equal(t, 2, testutil.CollectAndCount(m.duration))
	assert.InDelta(t, 0, testutil.ToFloat64(m.inFlight), 0)
}

func TestMetrics_UnmatchedRoute(t *testing.T) {
	m, err := NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	serve(h, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.InDelta(t, 1, testutil.ToFloat64(m.requests.WithLabelValues("GET", unmatchedRoute, "404")), 0)
}

func TestNewMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	require.NoError(t, err)

	_, err = NewMetrics(reg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "register http metrics")
}
