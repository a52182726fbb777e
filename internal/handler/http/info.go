// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-account-service/internal/logger"
	"github.com/MKhiriev/go-account-service/models"
)

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetAppInfo(r.Context())

	if err := WriteJSON(w, http.StatusOK, info); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing app info")
	}
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := WriteJSON(w, http.StatusOK, models.HealthResponse{Status: "OK"}); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing health status")
	}
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrResourceNotFound)
}
