// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app is the composition root of the account service. It connects
// to the database, applies migrations and assembles storages, services,
// handlers and the HTTP server from a [config.StructuredConfig].
package app
