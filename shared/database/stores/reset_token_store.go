package stores

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"sitegate-backend/shared/database/models/auth"
)

// GormResetTokenStore implements ResetTokenStore on top of the
// password_reset_tokens table.
type GormResetTokenStore struct {
	db *gorm.DB
}

func NewGormResetTokenStore(db *gorm.DB) *GormResetTokenStore {
	return &GormResetTokenStore{db: db}
}

func (s *GormResetTokenStore) Get(ctx context.Context, token string) (*auth.PasswordResetToken, error) {
	var resetToken auth.PasswordResetToken
	if err := s.db.WithContext(ctx).Where("token = ?", token).First(&resetToken).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &resetToken, nil
}

func (s *GormResetTokenStore) Create(ctx context.Context, resetToken *auth.PasswordResetToken) error {
	if err := s.db.WithContext(ctx).Create(resetToken).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// MarkUsed is the conditional update that makes consumption single-use: only
// one caller can observe used=false, so a lost race reports zero rows.
func (s *GormResetTokenStore) MarkUsed(ctx context.Context, token string, usedAt time.Time) (bool, error) {
	result := s.db.WithContext(ctx).Model(&auth.PasswordResetToken{}).
		Where("token = ? AND used = ?", token, false).
		Updates(map[string]interface{}{
			"used":    true,
			"used_at": usedAt,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *GormResetTokenStore) DeleteByAccount(ctx context.Context, accountID string) error {
	return s.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Delete(&auth.PasswordResetToken{}).Error
}
