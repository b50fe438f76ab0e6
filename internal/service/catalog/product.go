package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"shopadmin-service/internal/domain/catalog"
	"shopadmin-service/internal/domain/deal"
	"shopadmin-service/internal/domain/pricing"
	xerrors "shopadmin-service/internal/pkg/errors"
)

// FeedInvalidator drops any cached storefront feed after a catalog write.
type FeedInvalidator interface {
	Invalidate(ctx context.Context) error
}

type ProductService struct {
	products      catalog.ProductRepository
	categories    catalog.CategoryRepository
	subcategories catalog.SubcategoryRepository
	deals         deal.Repository
	feed          FeedInvalidator
	logger        *zap.Logger
}

func NewProductService(
	products catalog.ProductRepository,
	categories catalog.CategoryRepository,
	subcategories catalog.SubcategoryRepository,
	deals deal.Repository,
	feed FeedInvalidator,
	logger *zap.Logger,
) *ProductService {
	return &ProductService{
		products:      products,
		categories:    categories,
		subcategories: subcategories,
		deals:         deals,
		feed:          feed,
		logger:        logger,
	}
}

// CreateProduct validates the category placement and deal attachment, then
// computes and stores the final price. A deal attached at creation time must
// be enabled, and a computed price below zero aborts the create before any
// write happens.
func (s *ProductService) CreateProduct(ctx context.Context, req *catalog.CreateProductRequest) (*catalog.Product, error) {
	p := &catalog.Product{
		Name:           req.Name,
		Description:    sql.NullString{String: req.Description, Valid: req.Description != ""},
		BasePrice:      req.BasePrice,
		DiscountAmount: req.DiscountAmount,
		DiscountKind:   req.DiscountKind,
		Stock:          req.Stock,
		ImageURL:       sql.NullString{String: req.ImageURL, Valid: req.ImageURL != ""},
		Status:         catalog.ProductStatusEnabled,
	}

	if req.CategoryID != nil {
		if _, err := s.categories.FindByID(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		p.CategoryID = sql.NullInt64{Int64: *req.CategoryID, Valid: true}
	}

	if req.SubcategoryID != nil {
		if req.CategoryID == nil {
			return nil, fmt.Errorf("subcategory requires a category: %w", xerrors.ErrInvalidInput)
		}
		sub, err := s.subcategories.FindByID(ctx, *req.SubcategoryID)
		if err != nil {
			return nil, err
		}
		if sub.CategoryID != *req.CategoryID {
			return nil, fmt.Errorf("subcategory %d does not belong to category %d: %w",
				*req.SubcategoryID, *req.CategoryID, xerrors.ErrInvalidInput)
		}
		p.SubcategoryID = sql.NullInt64{Int64: *req.SubcategoryID, Valid: true}
	}

	var dealPercent float64
	if req.DealID != nil {
		d, err := s.deals.FindByID(ctx, *req.DealID)
		if err != nil {
			return nil, err
		}
		if !d.Enabled() {
			return nil, fmt.Errorf("deal %d is not enabled: %w", d.ID, xerrors.ErrInvalidInput)
		}
		dealPercent = d.DiscountPercent
		p.DealID = sql.NullInt64{Int64: d.ID, Valid: true}
	}

	final, err := pricing.FinalPrice(p.BasePrice, p.DiscountAmount, p.DiscountKind, dealPercent)
	if err != nil {
		return nil, err
	}
	p.FinalPrice = final

	if err := s.products.Create(ctx, p); err != nil {
		s.logger.Error("failed to create product", zap.Error(err))
		return nil, err
	}

	s.invalidateFeed(ctx)
	s.logger.Info("product created",
		zap.Int64("product_id", p.ID),
		zap.String("name", p.Name),
		zap.Float64("final_price", p.FinalPrice),
	)
	return p, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id int64) (*catalog.Product, error) {
	return s.products.FindByID(ctx, id)
}

func (s *ProductService) ListProducts(ctx context.Context, filters *catalog.ProductListFilters) (*catalog.ProductListResponse, error) {
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.PageSize < 1 {
		filters.PageSize = 20
	}

	products, total, err := s.products.List(ctx, filters)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(filters.PageSize) - 1) / int64(filters.PageSize))
	return &catalog.ProductListResponse{
		Products:   products,
		Total:      total,
		Page:       filters.Page,
		PageSize:   filters.PageSize,
		TotalPages: totalPages,
	}, nil
}

// UpdateProduct applies a partial update and recomputes the final price
// whenever any pricing input changed. Attaching a deal on update requires
// the deal to exist but not to be enabled; the price simply reflects its
// percent.
func (s *ProductService) UpdateProduct(ctx context.Context, id int64, req *catalog.UpdateProductRequest) (*catalog.Product, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = sql.NullString{String: *req.Description, Valid: *req.Description != ""}
	}
	if req.ImageURL != nil {
		p.ImageURL = sql.NullString{String: *req.ImageURL, Valid: *req.ImageURL != ""}
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}

	if req.CategoryID != nil {
		if _, err := s.categories.FindByID(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		p.CategoryID = sql.NullInt64{Int64: *req.CategoryID, Valid: true}
	}
	if req.SubcategoryID != nil {
		if !p.CategoryID.Valid {
			return nil, fmt.Errorf("subcategory requires a category: %w", xerrors.ErrInvalidInput)
		}
		sub, err := s.subcategories.FindByID(ctx, *req.SubcategoryID)
		if err != nil {
			return nil, err
		}
		if sub.CategoryID != p.CategoryID.Int64 {
			return nil, fmt.Errorf("subcategory %d does not belong to category %d: %w",
				*req.SubcategoryID, p.CategoryID.Int64, xerrors.ErrInvalidInput)
		}
		p.SubcategoryID = sql.NullInt64{Int64: *req.SubcategoryID, Valid: true}
	}

	repriceNeeded := req.BasePrice != nil || req.DiscountAmount != nil ||
		req.DiscountKind != nil || req.DealID != nil || req.ClearDeal

	if req.BasePrice != nil {
		p.BasePrice = *req.BasePrice
	}
	if req.DiscountAmount != nil {
		p.DiscountAmount = *req.DiscountAmount
	}
	if req.DiscountKind != nil {
		p.DiscountKind = *req.DiscountKind
	}
	if req.ClearDeal {
		p.DealID = sql.NullInt64{}
	}
	if req.DealID != nil {
		if _, err := s.deals.FindByID(ctx, *req.DealID); err != nil {
			return nil, err
		}
		p.DealID = sql.NullInt64{Int64: *req.DealID, Valid: true}
	}

	if repriceNeeded {
		final, err := s.computeFinalPrice(ctx, p)
		if err != nil {
			return nil, err
		}
		p.FinalPrice = final
	}

	if err := s.products.Update(ctx, p); err != nil {
		s.logger.Error("failed to update product", zap.Int64("product_id", id), zap.Error(err))
		return nil, err
	}

	s.invalidateFeed(ctx)
	s.logger.Info("product updated", zap.Int64("product_id", id))
	return p, nil
}

func (s *ProductService) UpdateProductStatus(ctx context.Context, id int64, status catalog.ProductStatus) error {
	if status != catalog.ProductStatusEnabled && status != catalog.ProductStatusDisabled {
		return fmt.Errorf("invalid product status %q: %w", status, xerrors.ErrInvalidInput)
	}

	if err := s.products.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	s.invalidateFeed(ctx)
	s.logger.Info("product status updated", zap.Int64("product_id", id), zap.String("status", string(status)))
	return nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateFeed(ctx)
	s.logger.Info("product deleted", zap.Int64("product_id", id))
	return nil
}

// RepriceDealProducts recomputes stored final prices for every product
// attached to the deal. Called after a deal's percent or status changes so
// cached prices never lag the deal definition.
func (s *ProductService) RepriceDealProducts(ctx context.Context, dealID int64) error {
	products, err := s.products.ListByDeal(ctx, dealID)
	if err != nil {
		return err
	}

	for i := range products {
		p := &products[i]
		final, err := s.computeFinalPrice(ctx, p)
		if err != nil {
			s.logger.Error("failed to reprice product",
				zap.Int64("product_id", p.ID),
				zap.Int64("deal_id", dealID),
				zap.Error(err),
			)
			continue
		}
		if final == p.FinalPrice {
			continue
		}
		p.FinalPrice = final
		if err := s.products.Update(ctx, p); err != nil {
			s.logger.Error("failed to save repriced product", zap.Int64("product_id", p.ID), zap.Error(err))
		}
	}

	s.invalidateFeed(ctx)
	return nil
}

// computeFinalPrice resolves the current deal percent, if any, and applies
// the pricing rules. A dangling deal reference contributes no discount.
func (s *ProductService) computeFinalPrice(ctx context.Context, p *catalog.Product) (float64, error) {
	var dealPercent float64
	if p.DealID.Valid {
		d, err := s.deals.FindByID(ctx, p.DealID.Int64)
		switch {
		case err == nil && d.Enabled():
			dealPercent = d.DiscountPercent
		case err != nil && !xerrors.Is(err, xerrors.ErrNotFound):
			return 0, err
		}
	}
	return pricing.FinalPrice(p.BasePrice, p.DiscountAmount, p.DiscountKind, dealPercent)
}

func (s *ProductService) invalidateFeed(ctx context.Context) {
	if s.feed == nil {
		return
	}
	if err := s.feed.Invalidate(ctx); err != nil {
		s.logger.Warn("failed to invalidate feed cache", zap.Error(err))
	}
}
