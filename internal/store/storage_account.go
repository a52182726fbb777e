// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-account-service/internal/logger"
)

// accountStorage is the default implementation of [AccountStorage].
//
// Each call to WithinTx acquires a connection from the pool for one
// transaction and releases it when the callback finishes, whatever the
// outcome.
type accountStorage struct {
	db     *DB
	logger *logger.Logger
}

// NewAccountStorage constructs an [AccountStorage] over db.
func NewAccountStorage(db *DB, logger *logger.Logger) AccountStorage {
	logger.Debug().Str("dialect", string(db.dialect)).Msg("creating account storage")

	return &accountStorage{
		db:     db,
		logger: logger,
	}
}

// WithinTx implements [AccountStorage].
func (s *accountStorage) WithinTx(ctx context.Context, fn TxFunc) error {
	log := logger.FromContext(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "accountStorage.WithinTx").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	// no-op after a successful commit
	defer tx.Rollback()

	if err = fn(ctx, newAccountRepository(tx, s.db)); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "accountStorage.WithinTx").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
