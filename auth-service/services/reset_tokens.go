package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"sitegate-backend/shared/database/models/auth"
	"sitegate-backend/shared/database/stores"
	utils "sitegate-backend/shared/utils/auth"
)

const (
	// resetTokenBytes is the entropy of a reset token before hex encoding.
	resetTokenBytes = 32
	// resetTokenTTL is how long an issued token stays valid.
	resetTokenTTL = 1 * time.Hour
)

// ResetTokenService issues, validates, and consumes password reset tokens.
type ResetTokenService struct {
	tokens stores.ResetTokenStore
}

func NewResetTokenService(tokens stores.ResetTokenStore) *ResetTokenService {
	return &ResetTokenService{tokens: tokens}
}

// Issue creates a fresh one-hour reset token for the account. Outstanding
// tokens for the same account are left alone; each is independently valid
// until it expires, is consumed, or the account is deleted.
func (s *ResetTokenService) Issue(ctx context.Context, accountID, email string) (*auth.PasswordResetToken, error) {
	tokenString, err := utils.GenerateRandomToken(resetTokenBytes)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	resetToken := &auth.PasswordResetToken{
		ID:        uuid.New(),
		AccountID: accountID,
		Token:     tokenString,
		Email:     email,
		ExpiresAt: now.Add(resetTokenTTL),
		Used:      false,
		CreatedAt: now,
	}

	if err := s.tokens.Create(ctx, resetToken); err != nil {
		return nil, err
	}

	return resetToken, nil
}

// Validate looks up a token and reports its state: missing, already used,
// expired, or live. The live record is returned for the caller to resolve
// the owning account.
func (s *ResetTokenService) Validate(ctx context.Context, token string) (*auth.PasswordResetToken, error) {
	resetToken, err := s.tokens.Get(ctx, token)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	if resetToken.Used {
		return nil, ErrTokenUsed
	}
	if !time.Now().UTC().Before(resetToken.ExpiresAt) {
		return nil, ErrTokenExpired
	}

	return resetToken, nil
}

// Consume marks a token used. The store update is conditional on used=false,
// so of two racing consumers exactly one succeeds and the other gets
// ErrTokenUsed.
func (s *ResetTokenService) Consume(ctx context.Context, token string) error {
	consumed, err := s.tokens.MarkUsed(ctx, token, time.Now().UTC())
	if err != nil {
		return err
	}
	if !consumed {
		return ErrTokenUsed
	}
	return nil
}

// DeleteAllForAccount removes every token referencing the account, as part of
// the account deletion cascade. Failure is surfaced so the caller never ends
// up with a deleted account and silently orphaned tokens.
func (s *ResetTokenService) DeleteAllForAccount(ctx context.Context, accountID string) error {
	return s.tokens.DeleteByAccount(ctx, accountID)
}
