package service

import (
	"context"
	"time"

	"github.com/dcamargo/restaurant-finder/internal/domain"
	"github.com/dcamargo/restaurant-finder/internal/repository"
	"github.com/google/uuid"
)

// TokenAuthority decides whether an issued token is still acceptable.
// The variant (allow-list in a cache vs. deny-list in the database) is a
// wiring-time decision; handlers and middleware only ever see this
// interface.
type TokenAuthority interface {
	// OnIssue is called after a token has been signed for a user.
	OnIssue(ctx context.Context, userID uuid.UUID, token string) error

	// OnRevoke invalidates a session. Idempotent.
	OnRevoke(ctx context.Context, userID uuid.UUID, token string) error

	// IsAcceptable reports whether a cryptographically valid token should
	// still be honored.
	IsAcceptable(ctx context.Context, userID uuid.UUID, token string) (bool, error)
}

// DenyListAuthority keeps revoked tokens in a durable blacklist. A token is
// acceptable unless it has been revoked; nothing needs to happen at issue
// time. Blacklist rows are pruned by the BlacklistSweeper.
type DenyListAuthority struct {
	blacklistRepo repository.TokenBlacklistRepository
}

func NewDenyListAuthority(blacklistRepo repository.TokenBlacklistRepository) *DenyListAuthority {
	return &DenyListAuthority{blacklistRepo: blacklistRepo}
}

func (a *DenyListAuthority) OnIssue(ctx context.Context, userID uuid.UUID, token string) error {
	return nil
}

func (a *DenyListAuthority) OnRevoke(ctx context.Context, userID uuid.UUID, token string) error {
	return a.blacklistRepo.Create(ctx, &domain.BlacklistedToken{
		ID:            uuid.New(),
		Token:         token,
		BlacklistedAt: time.Now(),
	})
}

func (a *DenyListAuthority) IsAcceptable(ctx context.Context, userID uuid.UUID, token string) (bool, error) {
	revoked, err := a.blacklistRepo.ExistsByToken(ctx, token)
	if err != nil {
		return false, err
	}
	return !revoked, nil
}
