package postgres

import (
	"context"

	"github.com/dcamargo/restaurant-finder/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type placeCacheRepository struct {
	db *gorm.DB
}

func NewPlaceCacheRepository(db *gorm.DB) *placeCacheRepository {
	return &placeCacheRepository{db: db}
}

func (r *placeCacheRepository) Get(ctx context.Context, key string) (*domain.PlaceCache, error) {
	var entry domain.PlaceCache
	err := r.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *placeCacheRepository) Put(ctx context.Context, entry *domain.PlaceCache) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			UpdateAll: true,
		}).
		Create(entry).Error
}
