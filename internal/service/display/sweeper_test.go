package display

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shopadmin-service/internal/domain/display"
	"shopadmin-service/internal/pkg/clock"
)

func TestSweepOnceTransitionsAndIdempotence(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewFake(base)

	banners := &stubBannerRepo{banners: map[int64]*display.Banner{
		1: {
			ID:     1,
			Title:  "Upcoming",
			Window: display.TimeWindow{Start: base.Add(time.Hour), End: base.Add(2 * time.Hour)},
			Status: display.StatusScheduled,
		},
		2: {
			ID:     2,
			Title:  "Running",
			Window: display.TimeWindow{Start: base.Add(-time.Hour), End: base.Add(time.Hour)},
			Status: display.StatusScheduled,
		},
		3: {
			ID:     3,
			Title:  "Over",
			Window: display.TimeWindow{Start: base.Add(-3 * time.Hour), End: base.Add(-2 * time.Hour)},
			Status: display.StatusActive,
		},
	}}
	feed := &stubFeed{}
	sweeper := NewStatusSweeper(banners, feed, clk, time.Hour, zap.NewNop())

	transitions, err := sweeper.SweepOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, transitions)
	assert.Equal(t, display.StatusScheduled, banners.banners[1].Status)
	assert.Equal(t, display.StatusActive, banners.banners[2].Status)
	assert.Equal(t, display.StatusExpired, banners.banners[3].Status)
	assert.Equal(t, 1, feed.invalidations)

	// Nothing changed since the last pass, so no writes happen.
	writesBefore := banners.statusWrites
	transitions, err = sweeper.SweepOnce(context.Background())
	require.NoError(t, err)
	assert.Zero(t, transitions)
	assert.Equal(t, writesBefore, banners.statusWrites)
	assert.Equal(t, 1, feed.invalidations)
}

func TestSweepFollowsClockForward(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewFake(base)

	banners := &stubBannerRepo{banners: map[int64]*display.Banner{
		1: {
			ID:     1,
			Title:  "Window",
			Window: display.TimeWindow{Start: base.Add(time.Hour), End: base.Add(2 * time.Hour)},
			Status: display.StatusScheduled,
		},
	}}
	sweeper := NewStatusSweeper(banners, &stubFeed{}, clk, time.Hour, zap.NewNop())

	clk.Advance(90 * time.Minute)
	transitions, err := sweeper.SweepOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, transitions)
	assert.Equal(t, display.StatusActive, banners.banners[1].Status)

	clk.Advance(time.Hour)
	transitions, err = sweeper.SweepOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, transitions)
	assert.Equal(t, display.StatusExpired, banners.banners[1].Status)
}
