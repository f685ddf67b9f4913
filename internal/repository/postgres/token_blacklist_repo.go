package postgres

import (
	"context"
	"time"

	"github.com/dcamargo/restaurant-finder/internal/domain"
	"gorm.io/gorm"
)

type tokenBlacklistRepository struct {
	db *gorm.DB
}

func NewTokenBlacklistRepository(db *gorm.DB) *tokenBlacklistRepository {
	return &tokenBlacklistRepository{db: db}
}

func (r *tokenBlacklistRepository) Create(ctx context.Context, token *domain.BlacklistedToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

func (r *tokenBlacklistRepository) ExistsByToken(ctx context.Context, token string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.BlacklistedToken{}).
		Where("token = ?", token).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteOlderThan is a single bulk conditional delete, safe to run
// concurrently with inserts.
func (r *tokenBlacklistRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("blacklisted_at < ?", cutoff).
		Delete(&domain.BlacklistedToken{})
	return result.RowsAffected, result.Error
}
