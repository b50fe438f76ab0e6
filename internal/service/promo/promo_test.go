package promo

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shopadmin-service/internal/domain/promo"
	"shopadmin-service/internal/pkg/clock"
	xerrors "shopadmin-service/internal/pkg/errors"
)

type memPromoRepo struct {
	promos map[int64]*promo.Promo
	nextID int64
}

func newMemPromoRepo() *memPromoRepo {
	return &memPromoRepo{promos: map[int64]*promo.Promo{}, nextID: 1}
}

func (m *memPromoRepo) Create(ctx context.Context, p *promo.Promo) error {
	for _, existing := range m.promos {
		if existing.Code == p.Code {
			return fmt.Errorf("code %q: %w", p.Code, xerrors.ErrConflict)
		}
	}
	p.ID = m.nextID
	m.nextID++
	copied := *p
	m.promos[p.ID] = &copied
	return nil
}

func (m *memPromoRepo) FindByID(ctx context.Context, id int64) (*promo.Promo, error) {
	p, ok := m.promos[id]
	if !ok {
		return nil, fmt.Errorf("promo %d: %w", id, xerrors.ErrNotFound)
	}
	copied := *p
	return &copied, nil
}

func (m *memPromoRepo) FindByCode(ctx context.Context, code string) (*promo.Promo, error) {
	for _, p := range m.promos {
		if p.Code == code {
			copied := *p
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("promo %q: %w", code, xerrors.ErrNotFound)
}

func (m *memPromoRepo) List(ctx context.Context) ([]promo.Promo, error) { return nil, nil }

func (m *memPromoRepo) Update(ctx context.Context, p *promo.Promo) error {
	if _, ok := m.promos[p.ID]; !ok {
		return fmt.Errorf("promo %d: %w", p.ID, xerrors.ErrNotFound)
	}
	copied := *p
	m.promos[p.ID] = &copied
	return nil
}

func (m *memPromoRepo) IncrementUses(ctx context.Context, id int64) error {
	p, ok := m.promos[id]
	if !ok {
		return fmt.Errorf("promo %d: %w", id, xerrors.ErrNotFound)
	}
	p.CurrentUses++
	return nil
}

func (m *memPromoRepo) Delete(ctx context.Context, id int64) error {
	delete(m.promos, id)
	return nil
}

func newPromoFixture(t *testing.T) (*Service, *memPromoRepo, *clock.FakeClock) {
	t.Helper()
	repo := newMemPromoRepo()
	clk := clock.NewFake(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	return NewService(repo, clk, zap.NewNop()), repo, clk
}

func int32p(v int32) *int32 { return &v }

func TestCreatePromoUppercasesAndGeneratesCodes(t *testing.T) {
	svc, _, clk := newPromoFixture(t)
	now := clk.Now()

	p, err := svc.CreatePromo(context.Background(), &promo.CreatePromoRequest{
		Code:            "  welcome10 ",
		DiscountPercent: 10,
		StartDate:       now,
		EndDate:         now.Add(24 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, "WELCOME10", p.Code)

	generated, err := svc.CreatePromo(context.Background(), &promo.CreatePromoRequest{
		DiscountPercent: 5,
		StartDate:       now,
		EndDate:         now.Add(24 * time.Hour),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(generated.Code, "PROMO-"))
	assert.NotEqual(t, "PROMO-", generated.Code)
}

func TestValidateCode(t *testing.T) {
	svc, repo, clk := newPromoFixture(t)
	now := clk.Now()

	created, err := svc.CreatePromo(context.Background(), &promo.CreatePromoRequest{
		Code:            "SAVE20",
		DiscountPercent: 20,
		MaxUses:         int32p(2),
		StartDate:       now.Add(-time.Hour),
		EndDate:         now.Add(time.Hour),
	})
	require.NoError(t, err)

	t.Run("valid code is case-insensitive", func(t *testing.T) {
		p, err := svc.ValidateCode(context.Background(), "save20")
		require.NoError(t, err)
		assert.Equal(t, 20.0, p.DiscountPercent)
	})

	t.Run("unknown code", func(t *testing.T) {
		_, err := svc.ValidateCode(context.Background(), "NOPE")
		assert.ErrorIs(t, err, xerrors.ErrNotFound)
	})

	t.Run("outside window", func(t *testing.T) {
		clk.Advance(3 * time.Hour)
		_, err := svc.ValidateCode(context.Background(), "SAVE20")
		assert.ErrorIs(t, err, xerrors.ErrInvalidInput)
		clk.Set(now)
	})

	t.Run("inactive", func(t *testing.T) {
		repo.promos[created.ID].Status = promo.PromoStatusInactive
		_, err := svc.ValidateCode(context.Background(), "SAVE20")
		assert.ErrorIs(t, err, xerrors.ErrInvalidInput)
		repo.promos[created.ID].Status = promo.PromoStatusActive
	})

	t.Run("exhausted", func(t *testing.T) {
		repo.promos[created.ID].CurrentUses = 2
		_, err := svc.ValidateCode(context.Background(), "SAVE20")
		assert.ErrorIs(t, err, xerrors.ErrInvalidInput)
		repo.promos[created.ID].CurrentUses = 0
	})
}

func TestRedeemCountsUses(t *testing.T) {
	svc, repo, clk := newPromoFixture(t)
	now := clk.Now()

	created, err := svc.CreatePromo(context.Background(), &promo.CreatePromoRequest{
		Code:            "ONCE",
		DiscountPercent: 15,
		MaxUses:         int32p(1),
		StartDate:       now.Add(-time.Hour),
		EndDate:         now.Add(time.Hour),
	})
	require.NoError(t, err)

	p, err := svc.Redeem(context.Background(), "once")
	require.NoError(t, err)
	assert.Equal(t, 1, p.CurrentUses)
	assert.Equal(t, 1, repo.promos[created.ID].CurrentUses)

	_, err = svc.Redeem(context.Background(), "ONCE")
	require.Error(t, err)
	assert.ErrorIs(t, err, xerrors.ErrInvalidInput)
}
