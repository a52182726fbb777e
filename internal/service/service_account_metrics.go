// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-account-service/internal/metrics"
	"github.com/MKhiriev/go-account-service/models"
)

// Operation labels reported by [AccountMetricsService].
const (
	OperationCreate = "create"
	OperationGet    = "get"
	OperationList   = "list"
	OperationUpdate = "update"
	OperationDelete = "delete"
)

// AccountMetricsService records the outcome and duration of every
// AccountService call.
type AccountMetricsService struct {
	inner     AccountService
	collector *metrics.Collector
}

func NewAccountMetricsService(collector *metrics.Collector) AccountServiceWrapper {
	return &AccountMetricsService{
		collector: collector,
	}
}

func (m *AccountMetricsService) CreateAccount(ctx context.Context, payload map[string]any) (models.Account, error) {
	start := time.Now()
	account, err := m.inner.CreateAccount(ctx, payload)
	m.collector.RecordAccountOperation(OperationCreate, time.Since(start), err)
	return account, err
}

func (m *AccountMetricsService) GetAccount(ctx context.Context, id int64) (models.Account, error) {
	start := time.Now()
	account, err := m.inner.GetAccount(ctx, id)
	m.collector.RecordAccountOperation(OperationGet, time.Since(start), err)
	return account, err
}

func (m *AccountMetricsService) ListAccounts(ctx context.Context, name *string) ([]models.Account, error) {
	start := time.Now()
	accounts, err := m.inner.ListAccounts(ctx, name)
	m.collector.RecordAccountOperation(OperationList, time.Since(start), err)
	return accounts, err
}

func (m *AccountMetricsService) UpdateAccount(ctx context.Context, id int64, payload map[string]any) (models.Account, error) {
	start := time.Now()
	account, err := m.inner.UpdateAccount(ctx, id, payload)
	m.collector.RecordAccountOperation(OperationUpdate, time.Since(start), err)
	return account, err
}

func (m *AccountMetricsService) DeleteAccount(ctx context.Context, id int64) error {
	start := time.Now()
	err := m.inner.DeleteAccount(ctx, id)
	m.collector.RecordAccountOperation(OperationDelete, time.Since(start), err)
	return err
}

func (m *AccountMetricsService) Wrap(wrapped AccountService) AccountService {
	m.inner = wrapped
	return m
}
