// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-account-service/internal/logger"
	"github.com/MKhiriev/go-account-service/internal/store"
	"github.com/MKhiriev/go-account-service/internal/validators"
	"github.com/MKhiriev/go-account-service/models"
)

// Clock returns the current time. It is swapped in tests to pin "today".
type Clock func() time.Time

// accountService implements [AccountService].
//
// Every method runs in exactly one transaction obtained from
// [store.AccountStorage.WithinTx], so reads made to decide on a write (the
// existence and email checks of an update) see the same snapshot as the
// write itself.
type accountService struct {
	// accountStorage opens transaction-scoped repositories.
	accountStorage store.AccountStorage

	// validator enforces non-empty and column size rules.
	validator validators.Validator

	// now provides the join date of accounts created without one.
	now Clock

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// AccountServiceOption customizes an accountService.
type AccountServiceOption func(*accountService)

// WithClock replaces time.Now as the source of "today".
func WithClock(clock Clock) AccountServiceOption {
	return func(s *accountService) {
		if clock != nil {
			s.now = clock
		}
	}
}

func NewAccountService(accountStorage store.AccountStorage, logger *logger.Logger, opts ...AccountServiceOption) AccountService {
	s := &accountService{
		accountStorage: accountStorage,
		validator:      validators.NewAccountValidator(),
		now:            time.Now,
		logger:         logger,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// CreateAccount deserializes payload, validates it and inserts a new row.
// Email uniqueness is not checked on creation.
//
// Returns:
//   - an error wrapping [models.ErrDataValidation] for a bad payload;
//   - a wrapped storage error if the insert fails.
func (s *accountService) CreateAccount(ctx context.Context, payload map[string]any) (models.Account, error) {
	log := logger.FromContext(ctx)

	account, err := models.DeserializeAccount(payload, s.now().UTC())
	if err != nil {
		log.Warn().Err(err).Msg("invalid account payload")
		return models.Account{}, err
	}

	if err = s.validator.Validate(ctx, account); err != nil {
		log.Warn().Err(err).Str("account", account.String()).Msg("account validation failed")
		return models.Account{}, err
	}

	var created models.Account
	err = s.accountStorage.WithinTx(ctx, func(ctx context.Context, repo store.AccountRepository) error {
		created, err = repo.Create(ctx, account)
		return err
	})
	if err != nil {
		log.Err(err).Str("account", account.String()).Msg("account creation ended with error")
		return models.Account{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	log.Info().Str("account", created.String()).Msg("account created")
	return created, nil
}

func (s *accountService) GetAccount(ctx context.Context, id int64) (models.Account, error) {
	var account models.Account
	err := s.accountStorage.WithinTx(ctx, func(ctx context.Context, repo store.AccountRepository) error {
		var err error
		account, err = repo.Find(ctx, id)
		return err
	})
	if err != nil {
		return models.Account{}, fmt.Errorf("account search by id failed: %w", err)
	}

	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, name *string) ([]models.Account, error) {
	var accounts []models.Account
	err := s.accountStorage.WithinTx(ctx, func(ctx context.Context, repo store.AccountRepository) error {
		var err error
		if name != nil {
			accounts, err = repo.FindByName(ctx, *name)
		} else {
			accounts, err = repo.All(ctx)
		}
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("account listing failed")
		return nil, fmt.Errorf("account listing failed: %w", err)
	}

	if accounts == nil {
		accounts = []models.Account{}
	}
	return accounts, nil
}

// UpdateAccount applies the fields present in payload to the account with id.
//
// The checks run in this order and the first failure wins:
//  1. the account must exist ([store.ErrAccountNotFound]);
//  2. the payload must be well typed and the result valid
//     ([models.ErrDataValidation]);
//  3. a new email must not belong to another account ([ErrEmailAlreadyInUse]).
//
// Nothing is written unless all checks pass.
func (s *accountService) UpdateAccount(ctx context.Context, id int64, payload map[string]any) (models.Account, error) {
	log := logger.FromContext(ctx).With().Int64("account_id", id).Logger()

	var updated models.Account
	err := s.accountStorage.WithinTx(ctx, func(ctx context.Context, repo store.AccountRepository) error {
		account, err := repo.Find(ctx, id)
		if err != nil {
			return err
		}

		patch, err := models.ParseAccountPatch(payload)
		if err != nil {
			return err
		}
		if patch.IsEmpty() {
			updated = account
			return nil
		}

		patch.Apply(&account)
		if err = s.validator.Validate(ctx, account, validators.FieldPersisted); err != nil {
			return err
		}
		if err = s.validator.Validate(ctx, account); err != nil {
			return err
		}

		if patch.Email != nil {
			if err = checkEmailIsFree(ctx, repo, account.Email, account.ID); err != nil {
				return err
			}
		}

		updated, err = repo.Update(ctx, account)
		return err
	})
	if err != nil {
		log.Warn().Err(err).Msg("account update rejected")
		return models.Account{}, fmt.Errorf("account update ended with error: %w", err)
	}

	log.Info().Str("account", updated.String()).Msg("account updated")
	return updated, nil
}

// DeleteAccount removes the account with id. A missing account is not an error.
func (s *accountService) DeleteAccount(ctx context.Context, id int64) error {
	err := s.accountStorage.WithinTx(ctx, func(ctx context.Context, repo store.AccountRepository) error {
		return repo.Delete(ctx, id)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("account_id", id).Msg("account deletion ended with error")
		return fmt.Errorf("account deletion ended with error: %w", err)
	}

	return nil
}

func checkEmailIsFree(ctx context.Context, repo store.AccountRepository, email string, ownerID int64) error {
	owners, err := repo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	for _, owner := range owners {
		if owner.ID != ownerID {
			return fmt.Errorf("%w: %s", ErrEmailAlreadyInUse, email)
		}
	}
	return nil
}
