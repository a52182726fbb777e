// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-account-service/internal/logger"
)

// maxBodyBytes bounds account payloads.
const maxBodyBytes = 1 << 20

func (h *Handler) createAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := checkContentType(r, contentTypeJSON); err != nil {
		log.Warn().Err(err).Str("content_type", r.Header.Get("Content-Type")).Msg("unsupported content type")
		writeError(w, r, err)
		return
	}

	payload, err := decodePayload(w, r, false)
	if err != nil {
		log.Warn().Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, err)
		return
	}

	account, err := h.services.AccountService.CreateAccount(r.Context(), payload)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/accounts/%d", account.ID))
	if err = WriteJSON(w, http.StatusCreated, account); err != nil {
		log.Err(err).Msg("error writing created account")
	}
}

func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	var name *string
	if values, ok := r.URL.Query()["name"]; ok && len(values) > 0 {
		name = &values[0]
	}

	accounts, err := h.services.AccountService.ListAccounts(r.Context(), name)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = WriteJSON(w, http.StatusOK, accounts); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing accounts")
	}
}

func (h *Handler) getAccount(w http.ResponseWriter, r *http.Request) {
	id, err := accountIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	account, err := h.services.AccountService.GetAccount(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = WriteJSON(w, http.StatusOK, account); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing account")
	}
}

func (h *Handler) updateAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := accountIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	payload, err := decodePayload(w, r, true)
	if err != nil {
		log.Warn().Err(err).Int64("account_id", id).Msg("Invalid JSON was passed")

		// a missing account is reported before a malformed body
		if _, lookupErr := h.services.AccountService.GetAccount(ctx, id); lookupErr != nil {
			writeError(w, r, lookupErr)
			return
		}
		writeError(w, r, err)
		return
	}

	account, err := h.services.AccountService.UpdateAccount(ctx, id, payload)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = WriteJSON(w, http.StatusOK, account); err != nil {
		log.Err(err).Msg("error writing updated account")
	}
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	id, err := accountIDFromRequest(r)
	if err != nil {
		// no stored account has an id outside int64
		logger.FromRequest(r).Debug().Err(err).Msg("delete of out of range account id")
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err = h.services.AccountService.DeleteAccount(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// accountIDFromRequest reads the {id} URL parameter. An id that does not fit
// into int64 cannot exist, so it is reported as not found.
func accountIDFromRequest(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid account id: %w", ErrResourceNotFound, err)
	}
	return id, nil
}

func checkContentType(r *http.Request, want string) error {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != want {
		return ErrUnsupportedMediaType
	}
	return nil
}

// decodePayload reads the body as a single JSON object. When allowEmpty is
// set an empty body yields an empty object.
func decodePayload(w http.ResponseWriter, r *http.Request, allowEmpty bool) (map[string]any, error) {
	var payload map[string]any

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	err := dec.Decode(&payload)
	switch {
	case errors.Is(err, io.EOF) && allowEmpty:
		return map[string]any{}, nil
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	if err = dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after JSON value", ErrInvalidJSON)
	}

	if payload == nil && allowEmpty {
		return map[string]any{}, nil
	}
	return payload, nil
}
