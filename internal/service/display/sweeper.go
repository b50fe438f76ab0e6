package display

import (
	"context"
	"time"

	"go.uber.org/zap"

	"shopadmin-service/internal/domain/display"
	"shopadmin-service/internal/pkg/clock"
)

// StatusSweeper periodically reclassifies time-bound banners against their
// display windows. Only banners whose computed status differs from the
// stored one are written, so a sweep with no elapsed time is a no-op and the
// loop is idempotent. Concurrent request-path updates are fine: status is a
// pure function of the timestamps, so a stale write self-corrects on the
// next pass.
type StatusSweeper struct {
	banners  display.BannerRepository
	feed     FeedInvalidator
	clk      clock.Clock
	interval time.Duration
	logger   *zap.Logger
}

func NewStatusSweeper(
	banners display.BannerRepository,
	feed FeedInvalidator,
	clk clock.Clock,
	interval time.Duration,
	logger *zap.Logger,
) *StatusSweeper {
	return &StatusSweeper{
		banners:  banners,
		feed:     feed,
		clk:      clk,
		interval: interval,
		logger:   logger,
	}
}

// Run sweeps once immediately, then on every tick until the context ends.
func (s *StatusSweeper) Run(ctx context.Context) {
	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *StatusSweeper) sweep(ctx context.Context) {
	transitions, err := s.SweepOnce(ctx)
	if err != nil {
		s.logger.Error("banner status sweep failed", zap.Error(err))
		return
	}
	if transitions > 0 {
		s.logger.Info("banner status sweep applied transitions", zap.Int("transitions", transitions))
	}
}

// SweepOnce reclassifies every banner and persists only the diffs. It
// returns the number of transitions written.
func (s *StatusSweeper) SweepOnce(ctx context.Context) (int, error) {
	banners, err := s.banners.List(ctx)
	if err != nil {
		return 0, err
	}

	now := s.clk.Now()
	transitions := 0
	for _, b := range banners {
		next := display.ClassifyWindow(now, b.Window.Start, b.Window.End)
		if next == b.Status {
			continue
		}
		if err := s.banners.UpdateStatus(ctx, b.ID, next); err != nil {
			return transitions, err
		}
		transitions++
	}

	if transitions > 0 && s.feed != nil {
		if err := s.feed.Invalidate(ctx); err != nil {
			s.logger.Warn("failed to invalidate feed cache after sweep", zap.Error(err))
		}
	}

	return transitions, nil
}
