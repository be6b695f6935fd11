package scoringservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const persistConcurrency = 4

// Start runs the periodic refresher: it recomputes the competition
// standings, persists the per-seller counters and swaps the cached
// snapshot. Reads stay cheap and the document listeners of the UI layer
// see a few-seconds-stale view, which is acceptable.
func (s *Service) Start(ctx context.Context, interval time.Duration) {
	zap.L().Info("scoring refresher started", zap.Duration("interval", interval))
	go s.run(ctx, interval)
}

func (s *Service) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping scoring refresher")
			return
		case <-ticker.C:
			if err := s.Refresh(ctx); err != nil && !errors.Is(err, ErrWindowInactive) {
				zap.L().Error("leaderboard refresh failed", zap.Error(err))
			}
		}
	}
}

// Refresh recomputes the scores, persists them and updates the cache.
// An inactive window clears the cache and reports ErrWindowInactive.
func (s *Service) Refresh(ctx context.Context) error {
	scores, err := s.Scores(ctx)
	if err != nil {
		if errors.Is(err, ErrWindowInactive) {
			s.swapCache(nil)
		}
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(persistConcurrency)
	for _, score := range scores {
		score := score
		g.Go(func() error {
			return s.sellerRepo.UpdateCompetitionStats(gctx,
				score.SellerID, score.Revenue, score.Qty, score.Score)
		})
	}
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to persist competition stats", zap.Error(err))
		return err
	}

	s.swapCache(scores)
	return nil
}

func (s *Service) swapCache(scores []SellerScore) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cached = scores
	s.refreshedAt = time.Now()
}
