// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-account-service/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Account rule violations. All of them wrap [models.ErrDataValidation] so the
// transport layer maps them to the same status as deserialization failures.
var (
	ErrEmptyName          = fmt.Errorf("%w: name must not be empty", models.ErrDataValidation)
	ErrNameTooLong        = fmt.Errorf("%w: name is too long", models.ErrDataValidation)
	ErrEmailTooLong       = fmt.Errorf("%w: email is too long", models.ErrDataValidation)
	ErrAddressTooLong     = fmt.Errorf("%w: address is too long", models.ErrDataValidation)
	ErrPhoneNumberTooLong = fmt.Errorf("%w: phone_number is too long", models.ErrDataValidation)
	ErrEmptyDateJoined    = fmt.Errorf("%w: date_joined is required", models.ErrDataValidation)
	ErrInvalidAccountID   = fmt.Errorf("%w: account id is required", models.ErrDataValidation)
)
