// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/account_store_mock.go -package=mock

package store

import (
	"context"

	"github.com/MKhiriev/go-account-service/models"
)

// AccountRepository executes account queries inside one transaction.
// Implementations are obtained from [AccountStorage.WithinTx] and must not be
// used after the callback returns.
type AccountRepository interface {
	// Create inserts account and returns it with the id assigned by storage.
	Create(ctx context.Context, account models.Account) (models.Account, error)
	// Update overwrites the row with account.ID. A zero id is
	// [models.ErrDataValidation]; an unknown id is [ErrAccountNotFound].
	Update(ctx context.Context, account models.Account) (models.Account, error)
	// Delete removes the row with id. Deleting a missing row is not an error.
	Delete(ctx context.Context, id int64) error
	// All returns every account ordered by id.
	All(ctx context.Context) ([]models.Account, error)
	// Find returns the account with id or [ErrAccountNotFound].
	Find(ctx context.Context, id int64) (models.Account, error)
	// FindByName returns the accounts whose name equals name exactly.
	FindByName(ctx context.Context, name string) ([]models.Account, error)
	// FindByEmail returns the accounts whose email equals email exactly.
	FindByEmail(ctx context.Context, email string) ([]models.Account, error)
}

// TxFunc is the unit of work run by [AccountStorage.WithinTx].
type TxFunc func(ctx context.Context, repo AccountRepository) error

// AccountStorage scopes account repositories to a database transaction.
type AccountStorage interface {
	// WithinTx begins a transaction, runs fn with a repository bound to it and
	// commits when fn returns nil. The transaction is rolled back on any error
	// or panic.
	WithinTx(ctx context.Context, fn TxFunc) error
}

// ErrorClassificator interprets driver-specific errors.
type ErrorClassificator interface {
	// Classify labels err as transient or permanent. The label is only
	// attached to the driver error log entry as the "classification" field;
	// nothing retries on it.
	Classify(err error) ErrorClassification
	// Translate maps driver errors caused by bad input to
	// [models.ErrDataValidation] and returns other errors unchanged.
	Translate(err error) error
}
