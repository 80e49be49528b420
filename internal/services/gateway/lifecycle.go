package gateway

import (
	"context"
	"fmt"
	"log"
	"time"
)

// RunCleanup deletes every transaction older than the retention period,
// whatever its status. The scan works on a snapshot taken at sweep start,
// so records created mid-sweep are never considered. Only one sweep runs
// at a time; a second call while one is active is a no-op.
func (s *service) RunCleanup(ctx context.Context) (int, error) {
	if !s.sweeping.CompareAndSwap(false, true) {
		return 0, nil
	}
	defer s.sweeping.Store(false)

	snapshot, err := s.repo.All()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	now := s.now()
	deleted := 0
	for _, tx := range snapshot {
		if now.Sub(tx.CreatedAt) <= s.cfg.RetentionPeriod {
			continue
		}
		if err := s.repo.Delete(tx.ID); err != nil {
			log.Printf("failed to delete transaction %s: %v", tx.ID, err)
			continue
		}
		if err := s.cache.InvalidateTransaction(ctx, tx.ID); err != nil {
			log.Printf("failed to invalidate transaction %s: %v", tx.ID, err)
		}
		deleted++
	}

	if deleted > 0 {
		log.Printf("cleaned up %d old transactions", deleted)
	}
	return deleted, nil
}

// StartCleanup runs one sweep immediately, then repeats on the configured
// interval until the context is cancelled.
func (s *service) StartCleanup(ctx context.Context) {
	if _, err := s.RunCleanup(ctx); err != nil {
		log.Printf("cleanup failed: %v", err)
	}

	interval := s.cfg.CleanupInterval
	if interval <= 0 {
		interval = time.Hour
	}
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := s.RunCleanup(ctx); err != nil {
					log.Printf("cleanup failed: %v", err)
				}
			}
		}
	}()
}
