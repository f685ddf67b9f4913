package repository

import (
	"context"
	"time"

	"github.com/dcamargo/restaurant-finder/internal/domain"
	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetAll(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type TokenBlacklistRepository interface {
	Create(ctx context.Context, token *domain.BlacklistedToken) error
	ExistsByToken(ctx context.Context, token string) (bool, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	GetByDateRange(ctx context.Context, start, end time.Time, offset, limit int) ([]*domain.Transaction, int64, error)
	GetByUserAndDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time, offset, limit int) ([]*domain.Transaction, int64, error)
}

type PlaceCacheRepository interface {
	Get(ctx context.Context, key string) (*domain.PlaceCache, error)
	Put(ctx context.Context, entry *domain.PlaceCache) error
}

type Repositories struct {
	User           UserRepository
	TokenBlacklist TokenBlacklistRepository
	Transaction    TransactionRepository
	PlaceCache     PlaceCacheRepository
}
