// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"unicode/utf8"

	"github.com/MKhiriev/go-account-service/models"
)

// Column sizes of the accounts table.
const (
	MaxNameLength        = 64
	MaxEmailLength       = 64
	MaxAddressLength     = 256
	MaxPhoneNumberLength = 32
)

// FieldPersisted is a pseudo-field that requires the account to carry an id.
const FieldPersisted = "persisted"

// defaultAccountFields is what Validate checks when no fields are named.
var defaultAccountFields = []string{
	models.FieldName,
	models.FieldEmail,
	models.FieldAddress,
	models.FieldPhoneNumber,
	models.FieldDateJoined,
}

// AccountValidator implements [Validator] for [models.Account].
type AccountValidator struct{}

// NewAccountValidator returns an [AccountValidator] as a [Validator].
func NewAccountValidator() Validator {
	return &AccountValidator{}
}

// Validate accepts models.Account and *models.Account. Named fields restrict
// the check to that subset; [FieldPersisted] may be added to require an id.
func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Account:
		return v.validateAccount(ctx, value, fields...)
	case *models.Account:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateAccount(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validateAccount(_ context.Context, account models.Account, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultAccountFields
	}

	for _, f := range fields {
		switch f {
		case FieldPersisted, models.FieldID:
			if account.ID <= 0 {
				return ErrInvalidAccountID
			}
		case models.FieldName:
			if account.Name == "" {
				return ErrEmptyName
			}
			if tooLong(account.Name, MaxNameLength) {
				return ErrNameTooLong
			}
		case models.FieldEmail:
			if tooLong(account.Email, MaxEmailLength) {
				return ErrEmailTooLong
			}
		case models.FieldAddress:
			if tooLong(account.Address, MaxAddressLength) {
				return ErrAddressTooLong
			}
		case models.FieldPhoneNumber:
			if account.PhoneNumber != nil && tooLong(*account.PhoneNumber, MaxPhoneNumberLength) {
				return ErrPhoneNumberTooLong
			}
		case models.FieldDateJoined:
			if account.DateJoined.IsZero() {
				return ErrEmptyDateJoined
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func tooLong(s string, limit int) bool {
	return utf8.RuneCountInString(s) > limit
}
