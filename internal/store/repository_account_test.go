// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-account-service/internal/logger"
	"github.com/MKhiriev/go-account-service/models"
)

var accountRowColumns = []string{"id", "name", "email", "address", "phone_number", "date_joined"}

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return &DB{
		DB:                 sqlDB,
		dialect:            DialectPostgres,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}, mock
}

func newTestAccountRepo(t *testing.T) (*accountRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock := newTestDB(t)
	return newAccountRepository(db.DB, db), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func testAccount() models.Account {
	phone := "+1 555 0100"
	return models.Account{
		Name:        "Al",
		Email:       "al@x.com",
		Address:     "1 Rd",
		PhoneNumber: &phone,
		DateJoined:  models.NewDate(time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)),
	}
}

func TestAccountRepository_Create_Success(t *testing.T) {
	repo, mock := newTestAccountRepo(t)
	account := testAccount()

	mock.ExpectQuery(`INSERT INTO accounts \(name,email,address,phone_number,date_joined\) VALUES \(\$1,\$2,\$3,\$4,\$5\) RETURNING id`).
		WithArgs("Al", "al@x.com", "1 Rd", "+1 555 0100", "2026-10-18").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	created, err := repo.Create(context.Background(), account)

	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, account.Name, created.Name)
	assert.Equal(t, account.DateJoined, created.DateJoined)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_Create_NullPhone(t *testing.T) {
	repo, mock := newTestAccountRepo(t)
	account := testAccount()
	account.PhoneNumber = nil

	mock.ExpectQuery("INSERT INTO accounts").
		WithArgs("Al", "al@x.com", "1 Rd", nil, "2026-10-18").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	created, err := repo.Create(context.Background(), account)

	require.NoError(t, err)
	assert.Nil(t, created.PhoneNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_Create_Errors(t *testing.T) {
	tests := []struct {
		name           string
		dbErr          error
		wantValidation bool
	}{
		{name: "value too long", dbErr: pgError(pgerrcode.StringDataRightTruncationDataException), wantValidation: true},
		{name: "not null violation", dbErr: pgError(pgerrcode.NotNullViolation), wantValidation: true},
		{name: "connection failure", dbErr: pgError(pgerrcode.ConnectionFailure)},
		{name: "plain error", dbErr: errors.New("db network error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestAccountRepo(t)

			mock.ExpectQuery("INSERT INTO accounts").WillReturnError(tt.dbErr)

			_, err := repo.Create(context.Background(), testAccount())

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrExecutingStatement)
			assert.Equal(t, tt.wantValidation, errors.Is(err, models.ErrDataValidation))
		})
	}
}

func TestAccountRepository_DriverErrorLogFields(t *testing.T) {
	tests := []struct {
		name      string
		dbErr     error
		wantClass string
		wantCode  string
	}{
		{name: "connection failure", dbErr: pgError(pgerrcode.ConnectionFailure), wantClass: "retryable", wantCode: pgerrcode.ConnectionFailure},
		{name: "unique violation", dbErr: pgError(pgerrcode.UniqueViolation), wantClass: "non-retryable", wantCode: pgerrcode.UniqueViolation},
		{name: "plain error", dbErr: errors.New("db network error"), wantClass: "non-retryable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestAccountRepo(t)
			var buf bytes.Buffer
			ctx := logger.New("test", &buf).WithContext(context.Background())

			mock.ExpectQuery("INSERT INTO accounts").WillReturnError(tt.dbErr)

			_, err := repo.Create(ctx, testAccount())

			require.Error(t, err)
			assert.Contains(t, buf.String(), `"classification":"`+tt.wantClass+`"`)
			if tt.wantCode != "" {
				assert.Contains(t, buf.String(), `"pg_code":"`+tt.wantCode+`"`)
			} else {
				assert.NotContains(t, buf.String(), "pg_code")
			}
		})
	}
}

func TestAccountRepository_Update_Success(t *testing.T) {
	repo, mock := newTestAccountRepo(t)
	account := testAccount()
	account.ID = 3

	mock.ExpectExec(`UPDATE accounts SET name = \$1, email = \$2, address = \$3, phone_number = \$4, date_joined = \$5 WHERE id = \$6`).
		WithArgs("Al", "al@x.com", "1 Rd", "+1 555 0100", "2026-10-18", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	updated, err := repo.Update(context.Background(), account)

	require.NoError(t, err)
	assert.Equal(t, account, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_Update_WithoutID(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	_, err := repo.Update(context.Background(), testAccount())

	assert.ErrorIs(t, err, models.ErrDataValidation)
	// nothing reaches the database
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_Update_NotFound(t *testing.T) {
	repo, mock := newTestAccountRepo(t)
	account := testAccount()
	account.ID = 9999

	mock.ExpectExec("UPDATE accounts").WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.Update(context.Background(), account)

	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestAccountRepository_Update_DBError(t *testing.T) {
	repo, mock := newTestAccountRepo(t)
	account := testAccount()
	account.ID = 1

	mock.ExpectExec("UPDATE accounts").WillReturnError(errors.New("db failure"))

	_, err := repo.Update(context.Background(), account)

	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NotErrorIs(t, err, models.ErrDataValidation)
}

func TestAccountRepository_Delete(t *testing.T) {
	tests := []struct {
		name   string
		result sql.Result
	}{
		{name: "existing row", result: sqlmock.NewResult(0, 1)},
		{name: "missing row is not an error", result: sqlmock.NewResult(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestAccountRepo(t)

			mock.ExpectExec(`DELETE FROM accounts WHERE id = \$1`).
				WithArgs(int64(5)).
				WillReturnResult(tt.result)

			err := repo.Delete(context.Background(), 5)

			require.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAccountRepository_Delete_DBError(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectExec("DELETE FROM accounts").WillReturnError(errors.New("db failure"))

	err := repo.Delete(context.Background(), 5)

	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestAccountRepository_All(t *testing.T) {
	repo, mock := newTestAccountRepo(t)
	joined := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT id, name, email, address, phone_number, date_joined FROM accounts ORDER BY id`).
		WillReturnRows(sqlmock.NewRows(accountRowColumns).
			AddRow(int64(1), "Al", "al@x.com", "1 Rd", nil, joined).
			AddRow(int64(2), "Bo", "bo@x.com", "2 Rd", "555", "2026-03-04"))

	accounts, err := repo.All(context.Background())

	require.NoError(t, err)
	require.Len(t, accounts, 2)

	assert.Equal(t, int64(1), accounts[0].ID)
	assert.Nil(t, accounts[0].PhoneNumber)
	assert.Equal(t, "2026-01-02", accounts[0].DateJoined.String())

	assert.Equal(t, "Bo", accounts[1].Name)
	require.NotNil(t, accounts[1].PhoneNumber)
	assert.Equal(t, "555", *accounts[1].PhoneNumber)
	assert.Equal(t, "2026-03-04", accounts[1].DateJoined.String())
}

func TestAccountRepository_All_Empty(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM accounts").
		WillReturnRows(sqlmock.NewRows(accountRowColumns))

	accounts, err := repo.All(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, accounts)
	assert.Empty(t, accounts)
}

func TestAccountRepository_All_Errors(t *testing.T) {
	t.Run("query error", func(t *testing.T) {
		repo, mock := newTestAccountRepo(t)
		mock.ExpectQuery("SELECT (.+) FROM accounts").WillReturnError(errors.New("db failure"))

		_, err := repo.All(context.Background())

		assert.ErrorIs(t, err, ErrExecutingQuery)
	})

	t.Run("scan error", func(t *testing.T) {
		repo, mock := newTestAccountRepo(t)
		// intentionally wrong shape
		mock.ExpectQuery("SELECT (.+) FROM accounts").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

		_, err := repo.All(context.Background())

		assert.ErrorIs(t, err, ErrScanningRow)
	})

	t.Run("iteration error", func(t *testing.T) {
		repo, mock := newTestAccountRepo(t)
		mock.ExpectQuery("SELECT (.+) FROM accounts").
			WillReturnRows(sqlmock.NewRows(accountRowColumns).
				AddRow(int64(1), "Al", "al@x.com", "1 Rd", nil, "2026-01-02").
				RowError(0, errors.New("connection reset")))

		_, err := repo.All(context.Background())

		assert.ErrorIs(t, err, ErrScanningRows)
	})
}

func TestAccountRepository_Find(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM accounts WHERE id = \$1 ORDER BY id`).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(accountRowColumns).
			AddRow(int64(4), "Al", "al@x.com", "1 Rd", "555", "2026-10-18"))

	account, err := repo.Find(context.Background(), 4)

	require.NoError(t, err)
	assert.Equal(t, int64(4), account.ID)
	assert.Equal(t, "<Account Al id=[4]>", account.String())
}

func TestAccountRepository_Find_NotFound(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM accounts WHERE id").
		WithArgs(int64(9999)).
		WillReturnRows(sqlmock.NewRows(accountRowColumns))

	_, err := repo.Find(context.Background(), 9999)

	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestAccountRepository_Find_DBError(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM accounts WHERE id").
		WillReturnError(errors.New("db failure"))

	_, err := repo.Find(context.Background(), 1)

	assert.ErrorIs(t, err, ErrScanningRow)
	assert.NotErrorIs(t, err, ErrAccountNotFound)
}

func TestAccountRepository_FindByName(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM accounts WHERE name = \$1 ORDER BY id`).
		WithArgs("X").
		WillReturnRows(sqlmock.NewRows(accountRowColumns).
			AddRow(int64(1), "X", "a@x.com", "1 Rd", nil, "2026-10-18").
			AddRow(int64(3), "X", "c@x.com", "3 Rd", nil, "2026-10-18"))

	accounts, err := repo.FindByName(context.Background(), "X")

	require.NoError(t, err)
	require.Len(t, accounts, 2)
	for _, a := range accounts {
		assert.Equal(t, "X", a.Name)
	}
}

func TestAccountRepository_FindByEmail(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM accounts WHERE email = \$1 ORDER BY id`).
		WithArgs("nobody@x.com").
		WillReturnRows(sqlmock.NewRows(accountRowColumns))

	accounts, err := repo.FindByEmail(context.Background(), "nobody@x.com")

	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestAccountRepository_SQLitePlaceholders(t *testing.T) {
	db, mock := newTestDB(t)
	db.dialect = DialectSQLite
	db.errorClassificator = NewSQLiteErrorClassifier()
	repo := newAccountRepository(db.DB, db)

	mock.ExpectQuery(`SELECT (.+) FROM accounts WHERE name = \? ORDER BY id`).
		WithArgs("X").
		WillReturnRows(sqlmock.NewRows(accountRowColumns))

	_, err := repo.FindByName(context.Background(), "X")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
