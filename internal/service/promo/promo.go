package promo

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"strings"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"shopadmin-service/internal/domain/display"
	"shopadmin-service/internal/domain/promo"
	"shopadmin-service/internal/pkg/clock"
	xerrors "shopadmin-service/internal/pkg/errors"
)

type Service struct {
	promos promo.Repository
	clk    clock.Clock
	logger *zap.Logger
}

func NewService(promos promo.Repository, clk clock.Clock, logger *zap.Logger) *Service {
	return &Service{promos: promos, clk: clk, logger: logger}
}

// CreatePromo stores a new code. When no code is supplied one is generated;
// codes are stored uppercase so redemption is case-insensitive.
func (s *Service) CreatePromo(ctx context.Context, req *promo.CreatePromoRequest) (*promo.Promo, error) {
	window := display.TimeWindow{Start: req.StartDate, End: req.EndDate}
	if err := window.Validate(); err != nil {
		return nil, err
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if code == "" {
		code = s.generateCode()
	}

	p := &promo.Promo{
		Code:            code,
		Description:     sql.NullString{String: req.Description, Valid: req.Description != ""},
		DiscountPercent: req.DiscountPercent,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Status:          promo.PromoStatusActive,
	}
	if req.MaxUses != nil {
		p.MaxUses = sql.NullInt32{Int32: *req.MaxUses, Valid: true}
	}

	if err := s.promos.Create(ctx, p); err != nil {
		s.logger.Error("failed to create promo", zap.String("code", code), zap.Error(err))
		return nil, err
	}

	s.logger.Info("promo created", zap.Int64("promo_id", p.ID), zap.String("code", p.Code))
	return p, nil
}

func (s *Service) GetPromo(ctx context.Context, id int64) (*promo.Promo, error) {
	return s.promos.FindByID(ctx, id)
}

func (s *Service) ListPromos(ctx context.Context) ([]promo.Promo, error) {
	return s.promos.List(ctx)
}

func (s *Service) UpdatePromo(ctx context.Context, id int64, req *promo.UpdatePromoRequest) (*promo.Promo, error) {
	p, err := s.promos.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		p.Description = sql.NullString{String: *req.Description, Valid: *req.Description != ""}
	}
	if req.DiscountPercent != nil {
		p.DiscountPercent = *req.DiscountPercent
	}
	if req.MaxUses != nil {
		p.MaxUses = sql.NullInt32{Int32: *req.MaxUses, Valid: true}
	}
	if req.StartDate != nil {
		p.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		p.EndDate = *req.EndDate
	}
	if req.Status != nil {
		if *req.Status != promo.PromoStatusActive && *req.Status != promo.PromoStatusInactive {
			return nil, fmt.Errorf("invalid promo status %q: %w", *req.Status, xerrors.ErrInvalidInput)
		}
		p.Status = *req.Status
	}

	window := display.TimeWindow{Start: p.StartDate, End: p.EndDate}
	if err := window.Validate(); err != nil {
		return nil, err
	}

	if err := s.promos.Update(ctx, p); err != nil {
		s.logger.Error("failed to update promo", zap.Int64("promo_id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("promo updated", zap.Int64("promo_id", id))
	return p, nil
}

func (s *Service) DeletePromo(ctx context.Context, id int64) error {
	if err := s.promos.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("promo deleted", zap.Int64("promo_id", id))
	return nil
}

// ValidateCode checks a code for redemption: it must exist, be active, be
// inside its validity window and not exhausted. Unknown codes surface as
// not-found; known but unusable codes report why.
func (s *Service) ValidateCode(ctx context.Context, code string) (*promo.Promo, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, fmt.Errorf("promo code is required: %w", xerrors.ErrInvalidInput)
	}

	p, err := s.promos.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if p.Status != promo.PromoStatusActive {
		return nil, fmt.Errorf("promo %q is inactive: %w", code, xerrors.ErrInvalidInput)
	}
	now := s.clk.Now()
	if display.ClassifyWindow(now, p.StartDate, p.EndDate) != display.StatusActive {
		return nil, fmt.Errorf("promo %q is outside its validity window: %w", code, xerrors.ErrInvalidInput)
	}
	if p.Exhausted() {
		return nil, fmt.Errorf("promo %q has no uses left: %w", code, xerrors.ErrInvalidInput)
	}

	return p, nil
}

// Redeem validates the code and records one use.
func (s *Service) Redeem(ctx context.Context, code string) (*promo.Promo, error) {
	p, err := s.ValidateCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if err := s.promos.IncrementUses(ctx, p.ID); err != nil {
		s.logger.Error("failed to record promo use", zap.Int64("promo_id", p.ID), zap.Error(err))
		return nil, err
	}
	p.CurrentUses++

	s.logger.Info("promo redeemed", zap.Int64("promo_id", p.ID), zap.String("code", p.Code))
	return p, nil
}

func (s *Service) generateCode() string {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(s.clk.Now().UnixNano())), 0)
	id := ulid.MustNew(ulid.Timestamp(s.clk.Now()), entropy)
	return "PROMO-" + id.String()[18:]
}
