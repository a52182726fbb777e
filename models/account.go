// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// Account field names as they appear in JSON payloads and table columns.
const (
	FieldID          = "id"
	FieldName        = "name"
	FieldEmail       = "email"
	FieldAddress     = "address"
	FieldPhoneNumber = "phone_number"
	FieldDateJoined  = "date_joined"
)

// Account is a snapshot of one row of the accounts table.
//
// The persistence layer owns the authoritative copy; an Account value is
// only valid for the duration of the request that loaded it.
type Account struct {
	// ID is the surrogate key assigned by storage on creation.
	// Zero means the account has not been persisted yet.
	ID int64 `json:"id"`

	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`

	// PhoneNumber is optional and rendered as JSON null when absent.
	PhoneNumber *string `json:"phone_number"`

	// DateJoined is never zero for a persisted account.
	DateJoined Date `json:"date_joined"`
}

// String renders the account for diagnostics: <Account {name} id=[{id}]>.
func (a Account) String() string {
	return fmt.Sprintf("<Account %s id=[%d]>", a.Name, a.ID)
}

// DeserializeAccount builds a new Account from a decoded JSON object.
//
// name, email and address must be present and be strings. phone_number may
// be absent, null or a string. date_joined may be absent, null or an ISO
// date string; when it is absent the account joins on today's date. Any id
// in the payload is ignored because ids are assigned by storage.
//
// Every failure wraps [ErrDataValidation].
func DeserializeAccount(payload map[string]any, today time.Time) (Account, error) {
	if payload == nil {
		return Account{}, fmt.Errorf("%w: body of request contained no data", ErrDataValidation)
	}

	var (
		account Account
		err     error
	)

	if account.Name, err = requiredString(payload, FieldName); err != nil {
		return Account{}, err
	}
	if account.Email, err = requiredString(payload, FieldEmail); err != nil {
		return Account{}, err
	}
	if account.Address, err = requiredString(payload, FieldAddress); err != nil {
		return Account{}, err
	}
	if account.PhoneNumber, err = optionalString(payload, FieldPhoneNumber); err != nil {
		return Account{}, err
	}

	dateJoined, err := optionalDate(payload, FieldDateJoined)
	if err != nil {
		return Account{}, err
	}
	if dateJoined == nil {
		account.DateJoined = NewDate(today)
	} else {
		account.DateJoined = *dateJoined
	}

	return account, nil
}

func requiredString(payload map[string]any, field string) (string, error) {
	raw, ok := payload[field]
	if !ok || raw == nil {
		return "", fmt.Errorf("%w: missing %s", ErrDataValidation, field)
	}

	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string, got %T", ErrDataValidation, field, raw)
	}
	return s, nil
}

func optionalString(payload map[string]any, field string) (*string, error) {
	raw, ok := payload[field]
	if !ok || raw == nil {
		return nil, nil
	}

	s, ok := raw.(string)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be a string, got %T", ErrDataValidation, field, raw)
	}
	return &s, nil
}

func optionalDate(payload map[string]any, field string) (*Date, error) {
	s, err := optionalString(payload, field)
	if err != nil || s == nil || *s == "" {
		return nil, err
	}

	d, err := ParseDate(*s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an ISO date (YYYY-MM-DD): %q", ErrDataValidation, field, *s)
	}
	return &d, nil
}
