// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-account-service/internal/config"
	"github.com/MKhiriev/go-account-service/internal/handler"
	"github.com/MKhiriev/go-account-service/internal/logger"
	"github.com/MKhiriev/go-account-service/internal/metrics"
	"github.com/MKhiriev/go-account-service/internal/server"
	"github.com/MKhiriev/go-account-service/internal/service"
	"github.com/MKhiriev/go-account-service/internal/store"
	"github.com/MKhiriev/go-account-service/models"
)

// App owns every long-lived dependency of a running service.
type App struct {
	db       *store.DB
	handlers *handler.Handlers
	server   server.Server
	logger   *logger.Logger
}

// New connects to the configured database and builds the whole dependency
// graph. Options are passed to the account service.
func New(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger, opts ...service.AccountServiceOption) (*App, error) {
	if cfg == nil {
		return nil, ErrNoConfigsProvided
	}

	log.Info().
		Str("build_version", buildInfo.BuildVersion()).
		Str("build_date", buildInfo.BuildDate()).
		Str("build_commit", buildInfo.BuildCommit()).
		Msg("building application")

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectingDB, err)
	}

	app, err := build(db, cfg, log, opts...)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return app, nil
}

func build(db *store.DB, cfg *config.StructuredConfig, log *logger.Logger, opts ...service.AccountServiceOption) (*App, error) {
	if cfg.Storage.DB.Migrate {
		if err := db.Migrate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMigratingDB, err)
		}
		log.Info().Str("dialect", string(db.Dialect())).Msg("migrations applied")
	}

	storages := store.NewStorages(db, log)
	collector := metrics.NewCollector("")

	services, err := service.NewServices(storages, *cfg, collector, log, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingServices, err)
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, collector, log)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingHandlers, err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingServer, err)
	}

	return &App{
		db:       db,
		handlers: handlers,
		server:   srv,
		logger:   log,
	}, nil
}

// Handler returns a fresh router over the application's services.
func (a *App) Handler() http.Handler {
	return a.handlers.HTTP.Init()
}

// Run serves requests until ctx is cancelled or a termination signal
// arrives, then closes the database.
func (a *App) Run(ctx context.Context) error {
	runErr := a.server.RunServer(ctx)
	closeErr := a.Close()

	return errors.Join(runErr, closeErr)
}

// Close releases the database connection pool.
func (a *App) Close() error {
	if err := a.db.Close(); err != nil {
		a.logger.Err(err).Msg("error closing database")
		return fmt.Errorf("error closing database: %w", err)
	}
	return nil
}
