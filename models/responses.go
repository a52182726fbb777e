// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	// Status repeats the HTTP status code.
	Status int `json:"status"`

	// Error is the canonical status text, e.g. "Not Found".
	Error string `json:"error"`

	// Message is a human-readable description of what went wrong.
	Message string `json:"message"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

// AppInfo describes the running service on the index route.
type AppInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}
