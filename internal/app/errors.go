// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import "errors"

var (
	ErrConnectingDB      = errors.New("error connecting to database")
	ErrMigratingDB       = errors.New("error applying migrations")
	ErrBuildingServices  = errors.New("error building services")
	ErrBuildingHandlers  = errors.New("error building handlers")
	ErrBuildingServer    = errors.New("error building server")
	ErrNoConfigsProvided = errors.New("no configs provided")
)
