// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// AccountPatch describes a partial update of an account.
// Only non-nil fields are written; every other stored field is kept.
type AccountPatch struct {
	Name    *string
	Email   *string
	Address *string

	// PhoneNumber is applied when PhoneNumberSet is true, which lets a
	// payload clear the number with an explicit null.
	PhoneNumber    *string
	PhoneNumberSet bool

	DateJoined *Date
}

// ParseAccountPatch extracts the fields present in a decoded JSON object.
//
// Keys that are present are type-checked exactly as in [DeserializeAccount]:
// name, email and address must be strings (null is rejected), phone_number
// may be a string or null, date_joined must be an ISO date string. Unknown
// keys and id are ignored. Failures wrap [ErrDataValidation].
func ParseAccountPatch(payload map[string]any) (AccountPatch, error) {
	var patch AccountPatch

	for _, field := range []string{FieldName, FieldEmail, FieldAddress} {
		if _, ok := payload[field]; !ok {
			continue
		}

		value, err := requiredString(payload, field)
		if err != nil {
			return AccountPatch{}, err
		}

		switch field {
		case FieldName:
			patch.Name = &value
		case FieldEmail:
			patch.Email = &value
		case FieldAddress:
			patch.Address = &value
		}
	}

	if _, ok := payload[FieldPhoneNumber]; ok {
		phone, err := optionalString(payload, FieldPhoneNumber)
		if err != nil {
			return AccountPatch{}, err
		}
		patch.PhoneNumber = phone
		patch.PhoneNumberSet = true
	}

	if raw, ok := payload[FieldDateJoined]; ok && raw != nil {
		if _, isString := raw.(string); !isString {
			return AccountPatch{}, fmt.Errorf("%w: %s must be a string, got %T", ErrDataValidation, FieldDateJoined, raw)
		}
		dateJoined, err := optionalDate(payload, FieldDateJoined)
		if err != nil {
			return AccountPatch{}, err
		}
		patch.DateJoined = dateJoined
	}

	return patch, nil
}

// IsEmpty reports whether the patch changes nothing.
func (p AccountPatch) IsEmpty() bool {
	return p.Name == nil &&
		p.Email == nil &&
		p.Address == nil &&
		!p.PhoneNumberSet &&
		p.DateJoined == nil
}

// Apply overwrites the fields of account that the patch carries.
// The id is never touched.
func (p AccountPatch) Apply(account *Account) {
	if p.Name != nil {
		account.Name = *p.Name
	}
	if p.Email != nil {
		account.Email = *p.Email
	}
	if p.Address != nil {
		account.Address = *p.Address
	}
	if p.PhoneNumberSet {
		account.PhoneNumber = p.PhoneNumber
	}
	if p.DateJoined != nil {
		account.DateJoined = *p.DateJoined
	}
}
