// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrEmailAlreadyInUse = errors.New("email is already used by another account")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrNameIsNotSpecified    = errors.New("app name is not specified")
)
