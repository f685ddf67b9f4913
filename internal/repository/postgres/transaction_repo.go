package postgres

import (
	"context"
	"time"

	"github.com/dcamargo/restaurant-finder/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *transactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

func (r *transactionRepository) GetByDateRange(ctx context.Context, start, end time.Time, offset, limit int) ([]*domain.Transaction, int64, error) {
	return r.query(r.db.WithContext(ctx).
		Model(&domain.Transaction{}).
		Where("created_at BETWEEN ? AND ?", start, end), offset, limit)
}

func (r *transactionRepository) GetByUserAndDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time, offset, limit int) ([]*domain.Transaction, int64, error) {
	return r.query(r.db.WithContext(ctx).
		Model(&domain.Transaction{}).
		Where("user_id = ? AND created_at BETWEEN ? AND ?", userID, start, end), offset, limit)
}

func (r *transactionRepository) query(q *gorm.DB, offset, limit int) ([]*domain.Transaction, int64, error) {
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var transactions []*domain.Transaction
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&transactions).Error
	if err != nil {
		return nil, 0, err
	}
	return transactions, total, nil
}
