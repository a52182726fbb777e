// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrInvalidJSON is returned when a request body is not a JSON object.
	ErrInvalidJSON = errors.New("request body is not a valid JSON object")

	// ErrUnsupportedMediaType is returned when a body carrying request is not
	// declared as application/json.
	ErrUnsupportedMediaType = errors.New("content type must be application/json")

	ErrResourceNotFound = errors.New("the requested resource was not found")
	ErrMethodNotAllowed = errors.New("method not allowed for this resource")
)
