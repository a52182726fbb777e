// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-account-service/internal/metrics"
	"github.com/MKhiriev/go-account-service/internal/mock"
	"github.com/MKhiriev/go-account-service/internal/service"
	"github.com/MKhiriev/go-account-service/internal/store"
	"github.com/MKhiriev/go-account-service/models"
)

func TestAccountMetricsService_RecordsOutcomes(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockAccountService(ctrl)
	collector := metrics.NewCollector("test")

	svc := service.NewAccountMetricsService(collector).Wrap(inner)

	inner.EXPECT().GetAccount(gomock.Any(), int64(1)).Return(models.Account{ID: 1}, nil)
	inner.EXPECT().GetAccount(gomock.Any(), int64(2)).Return(models.Account{}, store.ErrAccountNotFound)
	inner.EXPECT().ListAccounts(gomock.Any(), nil).Return([]models.Account{}, nil)
	inner.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(models.Account{ID: 3}, nil)
	inner.EXPECT().UpdateAccount(gomock.Any(), int64(3), gomock.Any()).Return(models.Account{}, service.ErrEmailAlreadyInUse)
	inner.EXPECT().DeleteAccount(gomock.Any(), int64(3)).Return(nil)

	ctx := context.Background()

	got, err := svc.GetAccount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)

	_, err = svc.GetAccount(ctx, 2)
	assert.ErrorIs(t, err, store.ErrAccountNotFound)

	_, err = svc.ListAccounts(ctx, nil)
	require.NoError(t, err)
	_, err = svc.CreateAccount(ctx, map[string]any{})
	require.NoError(t, err)
	_, err = svc.UpdateAccount(ctx, 3, map[string]any{})
	assert.ErrorIs(t, err, service.ErrEmailAlreadyInUse)
	require.NoError(t, svc.DeleteAccount(ctx, 3))

	expected := `
# HELP test_accounts_operations_total Total number of account operations by outcome.
# TYPE test_accounts_operations_total counter
test_accounts_operations_total{operation="create",outcome="ok"} 1
test_accounts_operations_total{operation="delete",outcome="ok"} 1
test_accounts_operations_total{operation="get",outcome="error"} 1
test_accounts_operations_total{operation="get",outcome="ok"} 1
test_accounts_operations_total{operation="list",outcome="ok"} 1
test_accounts_operations_total{operation="update",outcome="error"} 1
`
	err = testutil.GatherAndCompare(collector.Registry(), strings.NewReader(expected), "test_accounts_operations_total")
	assert.NoError(t, err)
}
