// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-account-service/internal/logger"
	"github.com/MKhiriev/go-account-service/internal/metrics"
)

func TestWithMetrics_DisabledIsPassThrough(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	wrapped := h.withMetrics(next)

	rr := httptest.NewRecorder()
	wrapped.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestWithMetrics_LabelsByRoutePattern(t *testing.T) {
	collector := metrics.NewCollector("test")
	h := &Handler{metrics: collector, logger: logger.Nop()}

	router := chi.NewRouter()
	router.Use(h.withMetrics)
	router.Get("/accounts/{id:[0-9]+}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, target := range []string{"/accounts/1", "/accounts/2", "/accounts/3"} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
		require.Equal(t, http.StatusNotFound, rr.Code)
	}

	expected := `
# HELP test_http_requests_total Total number of HTTP requests handled.
# TYPE test_http_requests_total counter
test_http_requests_total{method="GET",route="/accounts/{id:[0-9]+}",status="404"} 3
`
	err := testutil.GatherAndCompare(collector.Registry(), strings.NewReader(expected), "test_http_requests_total")
	assert.NoError(t, err)

	inFlight, err := testutil.GatherAndCount(collector.Registry(), "test_http_inflight_requests")
	require.NoError(t, err)
	assert.Equal(t, 1, inFlight)
}
