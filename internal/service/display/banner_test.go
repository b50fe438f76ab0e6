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
	xerrors "shopadmin-service/internal/pkg/errors"
)

func newBannerFixture(t *testing.T) (*BannerService, *stubBannerRepo, *clock.FakeClock) {
	t.Helper()
	banners := &stubBannerRepo{banners: map[int64]*display.Banner{}}
	clk := clock.NewFake(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	svc := NewBannerService(banners, newTestResolver(), &stubFeed{}, clk, zap.NewNop())
	return svc, banners, clk
}

func TestCreateBannerDerivesStatusFromWindow(t *testing.T) {
	svc, _, clk := newBannerFixture(t)
	now := clk.Now()

	b, err := svc.CreateBanner(context.Background(), &display.CreateBannerRequest{
		Title:     "March Deals",
		Source:    display.SourceSelector{Type: display.SourceDeal, DealID: int64p(30)},
		StartDate: now.Add(time.Hour),
		EndDate:   now.Add(48 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, display.StatusScheduled, b.Status)

	b2, err := svc.CreateBanner(context.Background(), &display.CreateBannerRequest{
		Title:     "Running Now",
		Source:    display.SourceSelector{Type: display.SourceCategory, CategoryID: int64p(10)},
		StartDate: now.Add(-time.Hour),
		EndDate:   now.Add(time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, display.StatusActive, b2.Status)
}

func TestCreateBannerRejectsDuplicateTitle(t *testing.T) {
	svc, _, clk := newBannerFixture(t)
	now := clk.Now()

	req := &display.CreateBannerRequest{
		Title:     "March Deals",
		Source:    display.SourceSelector{Type: display.SourceCategory, CategoryID: int64p(10)},
		StartDate: now,
		EndDate:   now.Add(time.Hour),
	}
	_, err := svc.CreateBanner(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.CreateBanner(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, xerrors.ErrConflict)
}

func TestCreateBannerRejectsUnresolvableSource(t *testing.T) {
	svc, banners, clk := newBannerFixture(t)
	now := clk.Now()

	_, err := svc.CreateBanner(context.Background(), &display.CreateBannerRequest{
		Title:     "Ghost Category",
		Source:    display.SourceSelector{Type: display.SourceCategory, CategoryID: int64p(999)},
		StartDate: now,
		EndDate:   now.Add(time.Hour),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, xerrors.ErrNotFound)
	assert.Empty(t, banners.banners)
}

func TestUpdateBannerSwitchingSourceClearsOtherSlots(t *testing.T) {
	svc, banners, clk := newBannerFixture(t)
	now := clk.Now()

	b, err := svc.CreateBanner(context.Background(), &display.CreateBannerRequest{
		Title:     "Switcher",
		Source:    display.SourceSelector{Type: display.SourceManual, ProductIDs: []int64{1, 2}},
		StartDate: now,
		EndDate:   now.Add(time.Hour),
	})
	require.NoError(t, err)

	newSource := display.SourceSelector{
		Type: display.SourceDeal,
		// Stale payloads from the previous variant must not survive the switch.
		ProductIDs: []int64{1, 2},
		DealID:     int64p(30),
	}
	updated, err := svc.UpdateBanner(context.Background(), b.ID, &display.UpdateBannerRequest{
		Source: &newSource,
	})
	require.NoError(t, err)

	assert.Equal(t, display.SourceDeal, updated.Source.Type)
	assert.Empty(t, updated.Source.ProductIDs)
	assert.Nil(t, updated.Source.CategoryID)
	assert.Nil(t, updated.Source.SubcategoryID)
	require.NotNil(t, updated.Source.DealID)
	assert.Equal(t, int64(30), *updated.Source.DealID)

	stored := banners.banners[b.ID]
	assert.Empty(t, stored.Source.ProductIDs)
}

func TestUpdateBannerWindowRecomputesStatus(t *testing.T) {
	svc, _, clk := newBannerFixture(t)
	now := clk.Now()

	b, err := svc.CreateBanner(context.Background(), &display.CreateBannerRequest{
		Title:     "Shifting",
		Source:    display.SourceSelector{Type: display.SourceExternal, ExternalURL: "https://example.com"},
		StartDate: now.Add(time.Hour),
		EndDate:   now.Add(2 * time.Hour),
	})
	require.NoError(t, err)
	require.Equal(t, display.StatusScheduled, b.Status)

	past := now.Add(-2 * time.Hour)
	end := now.Add(-time.Hour)
	updated, err := svc.UpdateBanner(context.Background(), b.ID, &display.UpdateBannerRequest{
		StartDate: &past,
		EndDate:   &end,
	})
	require.NoError(t, err)
	assert.Equal(t, display.StatusExpired, updated.Status)
}

func TestGetBannerToleratesDanglingTarget(t *testing.T) {
	svc, banners, clk := newBannerFixture(t)
	now := clk.Now()

	b, err := svc.CreateBanner(context.Background(), &display.CreateBannerRequest{
		Title:     "Dangling",
		Source:    display.SourceSelector{Type: display.SourceCategory, CategoryID: int64p(10)},
		StartDate: now,
		EndDate:   now.Add(time.Hour),
	})
	require.NoError(t, err)

	// Simulate the category disappearing after the banner was created.
	stored := banners.banners[b.ID]
	stored.Source.CategoryID = int64p(999)

	view, err := svc.GetBanner(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, display.SourceCategory, view.Resolved.Type)
	assert.Nil(t, view.Resolved.Category)
}
