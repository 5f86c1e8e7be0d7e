package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sitegate-backend/shared/database/models"
	utils "sitegate-backend/shared/utils/auth"
)

// storeTimeout bounds a single request's store work. A timed-out store call
// is an error outcome, never a silent success.
const storeTimeout = 5 * time.Second

// Mailer is the outbound email collaborator. The SMTP implementation lives in
// shared/mailer; it applies its own network timeout and is never retried here.
type Mailer interface {
	SendPasswordResetEmail(toEmail, username, resetURL string) error
}

// AuthService coordinates the account lifecycle: registration, login, the
// password reset flow, and the account deletion cascade.
type AuthService struct {
	registry    *AccountService
	resetTokens *ResetTokenService
	mailer      Mailer
	frontendURL string
}

func NewAuthService(registry *AccountService, resetTokens *ResetTokenService, mailer Mailer, frontendURL string) *AuthService {
	return &AuthService{
		registry:    registry,
		resetTokens: resetTokens,
		mailer:      mailer,
		frontendURL: frontendURL,
	}
}

// Register creates a new account.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*models.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	return s.registry.Register(ctx, username, email, password)
}

// Login resolves the identifier as a username or email and verifies the
// password. Unknown identifier and wrong password are indistinguishable to
// the caller.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*models.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	account, err := s.registry.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, account.Password) {
		return nil, ErrInvalidCredentials
	}

	return account, nil
}

// RequestPasswordReset issues a reset token and emails the reset link.
// An unknown email reports success without issuing anything; both paths
// deliberately converge so callers cannot probe which addresses exist.
// A mail-send failure for a known address is the one surfaced error.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	account, err := s.registry.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil
		}
		return err
	}

	resetToken, err := s.resetTokens.Issue(ctx, account.Username, account.Email)
	if err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.frontendURL, resetToken.Token)
	if err := s.mailer.SendPasswordResetEmail(account.Email, account.Username, resetURL); err != nil {
		return fmt.Errorf("%w: %v", ErrMailSend, err)
	}

	return nil
}

// CompletePasswordReset validates the token, rewrites the account password,
// and consumes the token — in that order. The password update is durable
// before the token is burned, so a crash in between leaves a still-valid
// token rather than a silently lost reset.
func (s *AuthService) CompletePasswordReset(ctx context.Context, token, newPassword string) error {
	if err := utils.ValidatePassword(newPassword); err != nil {
		return ErrWeakPassword
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	resetToken, err := s.resetTokens.Validate(ctx, token)
	if err != nil {
		return err
	}

	account, err := s.registry.Get(ctx, resetToken.AccountID)
	if err != nil {
		return err
	}

	hashedPassword, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := s.registry.UpdatePassword(ctx, account.Username, hashedPassword); err != nil {
		return err
	}

	return s.resetTokens.Consume(ctx, token)
}

// DeleteAccount removes the account and every reset token referencing it.
// The token cascade runs even when the account delete fails; the first
// failure is reported.
func (s *AuthService) DeleteAccount(ctx context.Context, username string) error {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	delErr := s.registry.Delete(ctx, username)

	if tokenErr := s.resetTokens.DeleteAllForAccount(ctx, username); tokenErr != nil && delErr == nil {
		delErr = tokenErr
	}

	return delErr
}
