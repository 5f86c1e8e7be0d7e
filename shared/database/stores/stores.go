// Package stores holds the persistence interfaces the auth services depend on,
// plus their gorm-backed implementations. Service code only sees the
// interfaces; tests substitute in-memory fakes.
package stores

import (
	"context"
	"errors"
	"time"

	"sitegate-backend/shared/database/models"
	"sitegate-backend/shared/database/models/auth"
)

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a create violates a uniqueness constraint.
	ErrDuplicate = errors.New("duplicate record")
)

// AccountStore persists accounts keyed by username, with a secondary lookup
// by email.
type AccountStore interface {
	GetByUsername(ctx context.Context, username string) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	Create(ctx context.Context, account *models.Account) error
	UpdatePassword(ctx context.Context, username, passwordHash string) error
	Delete(ctx context.Context, username string) error
}

// ResetTokenStore persists password reset tokens keyed by the token string.
type ResetTokenStore interface {
	Get(ctx context.Context, token string) (*auth.PasswordResetToken, error)
	Create(ctx context.Context, resetToken *auth.PasswordResetToken) error
	// MarkUsed flips used=false to used=true in a single conditional update
	// and reports whether this call won the flip. A false return with a nil
	// error means another caller consumed the token first.
	MarkUsed(ctx context.Context, token string, usedAt time.Time) (bool, error)
	DeleteByAccount(ctx context.Context, accountID string) error
}
