// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-account-service/internal/logger"
	"github.com/MKhiriev/go-account-service/models"
)

// executor is the subset of *sql.DB and *sql.Tx the repository needs.
type executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// accountRepository is the SQL implementation of [AccountRepository].
// Every method runs on exec, which is the transaction opened by
// [accountStorage.WithinTx].
type accountRepository struct {
	exec               executor
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
}

func newAccountRepository(exec executor, db *DB) *accountRepository {
	return &accountRepository{
		exec:               exec,
		builder:            db.builder(),
		errorClassificator: db.errorClassificator,
	}
}

// Create inserts account and returns it with its new id.
func (r *accountRepository) Create(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAccountQuery(r.builder, account)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.Create").Msg("failed to create query")
		return models.Account{}, err
	}

	if err = r.exec.QueryRowContext(ctx, query, args...).Scan(&account.ID); err != nil {
		r.logDriverError(log, err, "accountRepository.Create").
			Str("email", account.Email).
			Msg("failed to insert account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingStatement, r.translate(err))
	}

	log.Debug().
		Str("func", "accountRepository.Create").
		Int64("account_id", account.ID).
		Msg("account inserted")

	return account, nil
}

// Update overwrites every column of the row identified by account.ID.
func (r *accountRepository) Update(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	if account.ID == 0 {
		log.Warn().Str("func", "accountRepository.Update").Msg("update of an unpersisted account")
		return models.Account{}, fmt.Errorf("%w: account has no id, it must be created before it can be updated", models.ErrDataValidation)
	}

	query, args, err := buildUpdateAccountQuery(r.builder, account)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.Update").Msg("failed to create query")
		return models.Account{}, err
	}

	result, err := r.exec.ExecContext(ctx, query, args...)
	if err != nil {
		r.logDriverError(log, err, "accountRepository.Update").
			Int64("account_id", account.ID).
			Msg("failed to update account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingStatement, r.translate(err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "accountRepository.Update").
			Int64("account_id", account.ID).
			Msg("failed to read affected rows")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if rowsAffected == 0 {
		log.Warn().
			Str("func", "accountRepository.Update").
			Int64("account_id", account.ID).
			Msg("record not found")
		return models.Account{}, ErrAccountNotFound
	}

	return account, nil
}

// Delete removes the row with id if it exists.
func (r *accountRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAccountQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.Delete").Msg("failed to create query")
		return err
	}

	if _, err = r.exec.ExecContext(ctx, query, args...); err != nil {
		r.logDriverError(log, err, "accountRepository.Delete").
			Int64("account_id", id).
			Msg("failed to delete account")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// All returns every account in id order.
func (r *accountRepository) All(ctx context.Context) ([]models.Account, error) {
	return r.selectAccounts(ctx, "accountRepository.All", nil)
}

// Find returns the account with id.
func (r *accountRepository) Find(ctx context.Context, id int64) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAccountsQuery(r.builder, sq.Eq{models.FieldID: id})
	if err != nil {
		log.Err(err).Str("func", "accountRepository.Find").Msg("failed to create query")
		return models.Account{}, err
	}

	account, err := scanAccount(r.exec.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		r.logDriverError(log, err, "accountRepository.Find").
			Int64("account_id", id).
			Msg("failed to scan account row")
		return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return account, nil
}

// FindByName returns the accounts named exactly name.
func (r *accountRepository) FindByName(ctx context.Context, name string) ([]models.Account, error) {
	return r.selectAccounts(ctx, "accountRepository.FindByName", sq.Eq{models.FieldName: name})
}

// FindByEmail returns the accounts whose email is exactly email.
func (r *accountRepository) FindByEmail(ctx context.Context, email string) ([]models.Account, error) {
	return r.selectAccounts(ctx, "accountRepository.FindByEmail", sq.Eq{models.FieldEmail: email})
}

func (r *accountRepository) selectAccounts(ctx context.Context, funcName string, filter sq.Eq) ([]models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAccountsQuery(r.builder, filter)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to create query")
		return nil, err
	}

	rows, err := r.exec.QueryContext(ctx, query, args...)
	if err != nil {
		r.logDriverError(log, err, funcName).Msg("failed to execute query for getting accounts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	accounts := make([]models.Account, 0)

	for rows.Next() {
		account, scanErr := scanAccount(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan account row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		accounts = append(accounts, account)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return accounts, nil
}

// scanAccount reads one row selected with accountColumns.
func scanAccount(row rowScanner) (models.Account, error) {
	var account models.Account

	err := row.Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.Address,
		&account.PhoneNumber,
		&account.DateJoined,
	)

	return account, err
}

// translate maps driver errors caused by bad input to models.ErrDataValidation.
func (r *accountRepository) translate(err error) error {
	if r.errorClassificator == nil {
		return err
	}

	return r.errorClassificator.Translate(err)
}

func (r *accountRepository) logDriverError(log *logger.Logger, err error, funcName string) *zerolog.Event {
	event := log.Err(err).Str("func", funcName)
	if r.errorClassificator != nil {
		event = event.Stringer("classification", r.errorClassificator.Classify(err))
	}
	if code := postgresError(err); code != "" {
		event = event.Str("pg_code", code)
	}

	return event
}
