// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-account-service/internal/logger"

// Storages groups every storage the service layer depends on.
type Storages struct {
	AccountStorage AccountStorage
}

// NewStorages builds all storages over one database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		AccountStorage: NewAccountStorage(db, logger),
	}
}
