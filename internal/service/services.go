// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-account-service/internal/config"
	"github.com/MKhiriev/go-account-service/internal/logger"
	"github.com/MKhiriev/go-account-service/internal/metrics"
	"github.com/MKhiriev/go-account-service/internal/store"
)

type Services struct {
	AccountService AccountService
	AppInfoService AppInfoService
}

// NewServices builds every service. When collector is not nil the account
// service is wrapped with [AccountMetricsService].
func NewServices(storages *store.Storages, cfg config.StructuredConfig, collector *metrics.Collector, logger *logger.Logger, opts ...AccountServiceOption) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	accountService := NewAccountService(storages.AccountStorage, logger, opts...)
	if collector != nil {
		accountService = NewAccountMetricsService(collector).Wrap(accountService)
	}

	return &Services{
		AccountService: accountService,
		AppInfoService: appInfoService,
	}, nil
}
