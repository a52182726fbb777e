// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

package service

import (
	"context"

	"github.com/MKhiriev/go-account-service/models"
)

// AccountService implements the account use cases on top of the store.
// Payloads are decoded JSON objects; type checks happen here so that the
// update use case can report a missing account before a malformed body.
type AccountService interface {
	CreateAccount(ctx context.Context, payload map[string]any) (models.Account, error)
	GetAccount(ctx context.Context, id int64) (models.Account, error)
	// ListAccounts returns every account, or only those named *name when name
	// is not nil.
	ListAccounts(ctx context.Context, name *string) ([]models.Account, error)
	UpdateAccount(ctx context.Context, id int64, payload map[string]any) (models.Account, error)
	DeleteAccount(ctx context.Context, id int64) error
}

type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppInfo
}

// AccountServiceWrapper defines middleware composition for AccountService.
// Implementations wrap an existing AccountService to add behavior such as
// metrics or logging.
type AccountServiceWrapper interface {
	Wrap(AccountService) AccountService // returns a decorated AccountService applying additional behavior
}
