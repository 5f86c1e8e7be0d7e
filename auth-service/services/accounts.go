package services

import (
	"context"
	"errors"
	"time"

	"sitegate-backend/shared/database/models"
	"sitegate-backend/shared/database/stores"
	utils "sitegate-backend/shared/utils/auth"
)

// AccountService is the account registry: it creates accounts, enforces
// username/email uniqueness, and resolves login identifiers.
type AccountService struct {
	accounts stores.AccountStore
}

func NewAccountService(accounts stores.AccountStore) *AccountService {
	return &AccountService{accounts: accounts}
}

// Register creates a new account after checking both uniqueness constraints.
// The check-then-create window is backed by the store's unique constraints:
// a racing create surfaces as the same conflict instead of overwriting.
func (s *AccountService) Register(ctx context.Context, username, email, password string) (*models.Account, error) {
	if err := utils.ValidateRequired(username, "username"); err != nil {
		return nil, &ValidationError{Err: err}
	}
	if err := utils.ValidateEmail(email); err != nil {
		return nil, &ValidationError{Err: err}
	}
	if err := utils.ValidatePassword(password); err != nil {
		return nil, &ValidationError{Err: err}
	}

	// Check username uniqueness
	if _, err := s.accounts.GetByUsername(ctx, username); err == nil {
		return nil, ErrDuplicateUsername
	} else if !errors.Is(err, stores.ErrNotFound) {
		return nil, err
	}

	// Check email uniqueness
	if _, err := s.accounts.GetByEmail(ctx, email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, stores.ErrNotFound) {
		return nil, err
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &models.Account{
		Username:  username,
		Email:     email,
		Password:  hashedPassword,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, stores.ErrDuplicate) {
			// A concurrent registration won the write between the lookups and
			// this create. Report whichever constraint it tripped.
			if _, lookupErr := s.accounts.GetByUsername(ctx, username); lookupErr == nil {
				return nil, ErrDuplicateUsername
			}
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	return account, nil
}

// Get looks up an account by its exact username.
func (s *AccountService) Get(ctx context.Context, username string) (*models.Account, error) {
	account, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

// FindByEmail looks up an account by its email address.
func (s *AccountService) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

// FindByIdentifier resolves a login identifier, first as a username, then as
// an email address.
func (s *AccountService) FindByIdentifier(ctx context.Context, identifier string) (*models.Account, error) {
	account, err := s.accounts.GetByUsername(ctx, identifier)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, stores.ErrNotFound) {
		return nil, err
	}
	return s.FindByEmail(ctx, identifier)
}

// UpdatePassword replaces an account's password hash.
func (s *AccountService) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	if err := s.accounts.UpdatePassword(ctx, username, passwordHash); err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return ErrAccountNotFound
		}
		return err
	}
	return nil
}

// Delete removes an account. Deleting an absent account is not an error.
func (s *AccountService) Delete(ctx context.Context, username string) error {
	return s.accounts.Delete(ctx, username)
}
