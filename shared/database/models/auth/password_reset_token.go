package auth

import (
	"time"

	"github.com/google/uuid"
)

// PasswordResetToken is a single-use, one-hour credential for resetting an
// account password. The token string is the lookup key; AccountID points back
// at the owning account for the deletion cascade.
type PasswordResetToken struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AccountID string     `json:"account_id" gorm:"size:100;index;not null"`
	Token     string     `json:"token" gorm:"size:255;uniqueIndex;not null"`
	Email     string     `json:"email" gorm:"size:255"` // captured at issuance, audit only
	ExpiresAt time.Time  `json:"expires_at" gorm:"not null"`
	Used      bool       `json:"used" gorm:"default:false"`
	UsedAt    *time.Time `json:"used_at"`
	CreatedAt time.Time  `json:"created_at"`
}
