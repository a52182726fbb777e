// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

// ErrDataValidation is the root of every account validation failure: a
// missing required field, a field of the wrong JSON type, a malformed date,
// or an attempt to update an account that has no id yet. Callers match it
// with [errors.Is]; the wrapped message names the offending field.
var ErrDataValidation = errors.New("invalid account")
