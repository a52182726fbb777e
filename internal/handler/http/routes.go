// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// accountIDPattern only matches decimal ids, so any other path segment is
// reported as 404 rather than 405.
const accountIDPattern = "/{id:[0-9]+}"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(middleware.Recoverer)
	router.Use(middleware.GetHead)
	router.Use(h.withResponsePolicy)
	router.Use(withGZip)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	router.Get("/", h.index)
	router.Get("/health", h.health)

	router.Post("/accounts", h.createAccount)
	router.Get("/accounts", h.listAccounts)

	router.Get("/accounts"+accountIDPattern, h.getAccount)
	router.Put("/accounts"+accountIDPattern, h.updateAccount)
	router.Delete("/accounts"+accountIDPattern, h.deleteAccount)

	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	return router
}
