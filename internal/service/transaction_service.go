package service

import (
	"context"
	"errors"
	"time"

	"github.com/dcamargo/restaurant-finder/internal/domain"
	"github.com/dcamargo/restaurant-finder/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionService struct {
	transactionRepo repository.TransactionRepository
	userRepo        repository.UserRepository
}

func NewTransactionService(transactionRepo repository.TransactionRepository, userRepo repository.UserRepository) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
	}
}

type PaginatedTransactions struct {
	Data       []*domain.Transaction `json:"data"`
	TotalItems int64                 `json:"totalItems"`
	Page       int                   `json:"page"`
	Limit      int                   `json:"limit"`
}

// Record persists one audit entry. Callers treat failures as best-effort.
func (s *TransactionService) Record(ctx context.Context, tx *domain.Transaction) error {
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now()
	}
	return s.transactionRepo.Create(ctx, tx)
}

func (s *TransactionService) ListByDateRange(ctx context.Context, start, end time.Time, page, limit int) (*PaginatedTransactions, error) {
	page, limit = normalizePage(page, limit)

	data, total, err := s.transactionRepo.GetByDateRange(ctx, start, end, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	return &PaginatedTransactions{Data: data, TotalItems: total, Page: page, Limit: limit}, nil
}

func (s *TransactionService) ListMineByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time, page, limit int) (*PaginatedTransactions, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	page, limit = normalizePage(page, limit)

	data, total, err := s.transactionRepo.GetByUserAndDateRange(ctx, userID, start, end, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	return &PaginatedTransactions{Data: data, TotalItems: total, Page: page, Limit: limit}, nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}
