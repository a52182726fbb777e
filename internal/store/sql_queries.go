// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-account-service/models"
)

const accountsTable = "accounts"

// accountColumns is the SELECT list every account query scans with [scanAccount].
var accountColumns = []string{
	models.FieldID,
	models.FieldName,
	models.FieldEmail,
	models.FieldAddress,
	models.FieldPhoneNumber,
	models.FieldDateJoined,
}

func buildInsertAccountQuery(b sq.StatementBuilderType, account models.Account) (string, []any, error) {
	query, args, err := b.
		Insert(accountsTable).
		Columns(
			models.FieldName,
			models.FieldEmail,
			models.FieldAddress,
			models.FieldPhoneNumber,
			models.FieldDateJoined,
		).
		Values(
			account.Name,
			account.Email,
			account.Address,
			account.PhoneNumber,
			account.DateJoined,
		).
		Suffix("RETURNING " + models.FieldID).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildUpdateAccountQuery(b sq.StatementBuilderType, account models.Account) (string, []any, error) {
	query, args, err := b.
		Update(accountsTable).
		Set(models.FieldName, account.Name).
		Set(models.FieldEmail, account.Email).
		Set(models.FieldAddress, account.Address).
		Set(models.FieldPhoneNumber, account.PhoneNumber).
		Set(models.FieldDateJoined, account.DateJoined).
		Where(sq.Eq{models.FieldID: account.ID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeleteAccountQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	query, args, err := b.
		Delete(accountsTable).
		Where(sq.Eq{models.FieldID: id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSelectAccountsQuery selects accounts ordered by id. A nil filter
// selects every row.
func buildSelectAccountsQuery(b sq.StatementBuilderType, filter sq.Eq) (string, []any, error) {
	selectBuilder := b.
		Select(accountColumns...).
		From(accountsTable).
		OrderBy(models.FieldID)

	if len(filter) > 0 {
		selectBuilder = selectBuilder.Where(filter)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
