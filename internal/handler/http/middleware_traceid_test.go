// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-account-service/internal/logger"
)

// newTestHandler returns a Handler with a nop logger and no services.
func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantReused bool
	}{
		{name: "no header generates uuid"},
		{name: "client id is reused", header: "req-42.retry:1", wantReused: true},
		{name: "uuid from upstream is reused", header: "0f8fad5b-d9cb-469f-a165-70867728950e", wantReused: true},
		{name: "oversized id is replaced", header: strings.Repeat("a", maxTraceIDLength+1)},
		{name: "id with spaces is replaced", header: "two words"},
		{name: "id with newline is replaced", header: "abc\ninjected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusTeapot)
			})

			req := httptest.NewRequest(http.MethodGet, "/accounts", nil)
			if tt.header != "" {
				req.Header.Set(traceIDHeader, tt.header)
			}

			rr := httptest.NewRecorder()
			newTestHandler().withTraceID(next).ServeHTTP(rr, req)

			assert.True(t, called)
			assert.Equal(t, http.StatusTeapot, rr.Code)

			got := rr.Header().Get(traceIDHeader)
			if tt.wantReused {
				assert.Equal(t, tt.header, got)
				return
			}
			_, err := uuid.Parse(got)
			assert.NoError(t, err, "expected generated uuid, got %q", got)
		})
	}
}

func TestWithTraceID_GeneratesUniqueIDs(t *testing.T) {
	h := newTestHandler()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		rr := httptest.NewRecorder()
		h.withTraceID(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/accounts", nil))
		seen[rr.Header().Get(traceIDHeader)] = struct{}{}
	}

	assert.Len(t, seen, 50)
}

func TestWithTraceID_RequestLoggerCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside handler")
	})

	req := httptest.NewRequest(http.MethodGet, "/accounts/1", nil)
	req.Header.Set(traceIDHeader, "trace-in-logs")

	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	require.NotEmpty(t, buf.String())
	assert.Contains(t, buf.String(), `"trace_id":"trace-in-logs"`)
	assert.Contains(t, buf.String(), `"message":"inside handler"`)
}

func TestWithTraceID_OriginalRequestNotMutated(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/accounts", nil)
	originalCtx := req.Context()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotSame(t, req, r)
	})
	newTestHandler().withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, originalCtx, req.Context())
	assert.Empty(t, req.Header.Get(traceIDHeader))
}

func TestIsValidTraceID(t *testing.T) {
	assert.True(t, isValidTraceID("abc-DEF_123.x:y"))
	assert.True(t, isValidTraceID(strings.Repeat("z", maxTraceIDLength)))
	assert.False(t, isValidTraceID(""))
	assert.False(t, isValidTraceID("tab\there"))
	assert.False(t, isValidTraceID("ünïcode"))
}
