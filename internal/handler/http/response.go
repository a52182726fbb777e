// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-account-service/internal/logger"
	"github.com/MKhiriev/go-account-service/models"
)

const contentTypeJSON = "application/json"

// WriteJSON encodes v as the response body with the given status.
// A nil v writes the status only.
func WriteJSON(w http.ResponseWriter, status int, v any) error {
	if v == nil {
		w.WriteHeader(status)
		return nil
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// writeError maps err to its status and writes an [models.ErrorResponse].
// Server errors are logged and their details are not exposed.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	message := err.Error()
	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Msg("request failed with internal error")
		message = "the server encountered an internal error"
	}

	body := models.ErrorResponse{
		Status:  status,
		Error:   http.StatusText(status),
		Message: message,
	}
	if encodeErr := WriteJSON(w, status, body); encodeErr != nil {
		logger.FromRequest(r).Err(encodeErr).Msg("error writing error response")
	}
}
