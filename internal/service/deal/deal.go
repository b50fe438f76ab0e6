package deal

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"shopadmin-service/internal/domain/deal"
	"shopadmin-service/internal/domain/display"
	xerrors "shopadmin-service/internal/pkg/errors"
)

// ProductRepricer recomputes stored final prices for products attached to a
// deal after its percent or status changes.
type ProductRepricer interface {
	RepriceDealProducts(ctx context.Context, dealID int64) error
}

type Service struct {
	deals    deal.Repository
	repricer ProductRepricer
	logger   *zap.Logger
}

func NewService(deals deal.Repository, repricer ProductRepricer, logger *zap.Logger) *Service {
	return &Service{deals: deals, repricer: repricer, logger: logger}
}

func (s *Service) CreateDeal(ctx context.Context, req *deal.CreateDealRequest) (*deal.Deal, error) {
	window := display.TimeWindow{Start: req.StartDate, End: req.EndDate}
	if err := window.Validate(); err != nil {
		return nil, err
	}

	d := &deal.Deal{
		Title:           req.Title,
		Description:     sql.NullString{String: req.Description, Valid: req.Description != ""},
		ImageURL:        sql.NullString{String: req.ImageURL, Valid: req.ImageURL != ""},
		DiscountPercent: req.DiscountPercent,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Status:          deal.DealStatusEnabled,
	}

	if err := s.deals.Create(ctx, d); err != nil {
		s.logger.Error("failed to create deal", zap.Error(err))
		return nil, err
	}

	s.logger.Info("deal created",
		zap.Int64("deal_id", d.ID),
		zap.Float64("discount_percent", d.DiscountPercent),
	)
	return d, nil
}

func (s *Service) GetDeal(ctx context.Context, id int64) (*deal.Deal, error) {
	return s.deals.FindByID(ctx, id)
}

func (s *Service) ListDeals(ctx context.Context) ([]deal.Deal, error) {
	return s.deals.List(ctx)
}

func (s *Service) UpdateDeal(ctx context.Context, id int64, req *deal.UpdateDealRequest) (*deal.Deal, error) {
	d, err := s.deals.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	percentChanged := false
	if req.Title != nil {
		d.Title = *req.Title
	}
	if req.Description != nil {
		d.Description = sql.NullString{String: *req.Description, Valid: *req.Description != ""}
	}
	if req.ImageURL != nil {
		d.ImageURL = sql.NullString{String: *req.ImageURL, Valid: *req.ImageURL != ""}
	}
	if req.DiscountPercent != nil {
		percentChanged = d.DiscountPercent != *req.DiscountPercent
		d.DiscountPercent = *req.DiscountPercent
	}
	if req.StartDate != nil {
		d.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		d.EndDate = *req.EndDate
	}

	window := display.TimeWindow{Start: d.StartDate, End: d.EndDate}
	if err := window.Validate(); err != nil {
		return nil, err
	}

	if err := s.deals.Update(ctx, d); err != nil {
		s.logger.Error("failed to update deal", zap.Int64("deal_id", id), zap.Error(err))
		return nil, err
	}

	if percentChanged {
		s.reprice(ctx, id)
	}

	s.logger.Info("deal updated", zap.Int64("deal_id", id))
	return d, nil
}

func (s *Service) UpdateDealStatus(ctx context.Context, id int64, status deal.DealStatus) error {
	if status != deal.DealStatusEnabled && status != deal.DealStatusDisabled {
		return fmt.Errorf("invalid deal status %q: %w", status, xerrors.ErrInvalidInput)
	}

	if err := s.deals.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	s.reprice(ctx, id)
	s.logger.Info("deal status updated", zap.Int64("deal_id", id), zap.String("status", string(status)))
	return nil
}

// DeleteDeal removes the deal and reprices any products still pointing at
// it; the dangling reference then contributes no discount.
func (s *Service) DeleteDeal(ctx context.Context, id int64) error {
	if err := s.deals.Delete(ctx, id); err != nil {
		return err
	}

	s.reprice(ctx, id)
	s.logger.Info("deal deleted", zap.Int64("deal_id", id))
	return nil
}

func (s *Service) reprice(ctx context.Context, dealID int64) {
	if s.repricer == nil {
		return
	}
	if err := s.repricer.RepriceDealProducts(ctx, dealID); err != nil {
		s.logger.Error("failed to reprice deal products", zap.Int64("deal_id", dealID), zap.Error(err))
	}
}
