package service

import (
	"context"
	"log"
	"time"

	"github.com/dcamargo/restaurant-finder/internal/repository"
)

// BlacklistSweeper periodically deletes blacklisted tokens older than the
// retention window. By then the tokens have long expired cryptographically,
// so dropping the rows cannot resurrect a session.
type BlacklistSweeper struct {
	blacklistRepo repository.TokenBlacklistRepository
	retention     time.Duration
	interval      time.Duration
}

func NewBlacklistSweeper(blacklistRepo repository.TokenBlacklistRepository, retention, interval time.Duration) *BlacklistSweeper {
	return &BlacklistSweeper{
		blacklistRepo: blacklistRepo,
		retention:     retention,
		interval:      interval,
	}
}

// Run blocks until ctx is cancelled, sweeping once per interval.
func (s *BlacklistSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.SweepOnce(ctx); err != nil {
				log.Printf("ERROR [BlacklistSweeper] sweep failed: %v", err)
			}
		}
	}
}

func (s *BlacklistSweeper) SweepOnce(ctx context.Context) error {
	removed, err := s.blacklistRepo.DeleteOlderThan(ctx, time.Now().Add(-s.retention))
	if err != nil {
		return err
	}
	if removed > 0 {
		log.Printf("[BlacklistSweeper] removed %d blacklisted tokens older than %s", removed, s.retention)
	}
	return nil
}
