package display

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"shopadmin-service/internal/domain/display"
	"shopadmin-service/internal/pkg/clock"
	xerrors "shopadmin-service/internal/pkg/errors"
)

// FeedInvalidator drops any cached storefront feed after a display write.
type FeedInvalidator interface {
	Invalidate(ctx context.Context) error
}

type BannerService struct {
	banners  display.BannerRepository
	resolver *SourceResolver
	feed     FeedInvalidator
	clk      clock.Clock
	logger   *zap.Logger
}

func NewBannerService(
	banners display.BannerRepository,
	resolver *SourceResolver,
	feed FeedInvalidator,
	clk clock.Clock,
	logger *zap.Logger,
) *BannerService {
	return &BannerService{
		banners:  banners,
		resolver: resolver,
		feed:     feed,
		clk:      clk,
		logger:   logger,
	}
}

// CreateBanner validates the window and selector, resolves the selector
// against the catalog and persists the banner with its derived status.
func (s *BannerService) CreateBanner(ctx context.Context, req *display.CreateBannerRequest) (*display.Banner, error) {
	window := display.TimeWindow{Start: req.StartDate, End: req.EndDate}
	if err := window.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.resolver.Resolve(ctx, req.Source, ResolveOptions{}); err != nil {
		return nil, err
	}

	exists, err := s.banners.ExistsByTitle(ctx, req.Title, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check banner title: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("banner title %q already exists: %w", req.Title, xerrors.ErrConflict)
	}

	b := &display.Banner{
		Title:  req.Title,
		Source: req.Source.Normalized(),
		Window: window,
		Status: display.ClassifyWindow(s.clk.Now(), window.Start, window.End),
	}
	if req.ImageURL != "" {
		b.ImageURL = sql.NullString{String: req.ImageURL, Valid: true}
	}

	if err := s.banners.Create(ctx, b); err != nil {
		s.logger.Error("failed to create banner", zap.Error(err))
		return nil, err
	}

	s.invalidateFeed(ctx)
	s.logger.Info("banner created",
		zap.Int64("banner_id", b.ID),
		zap.String("source", string(b.Source.Type)),
		zap.String("status", string(b.Status)),
	)

	return b, nil
}

// UpdateBanner re-resolves the selector whenever it changes; persisting the
// normalized selector clears the other relation slots in the same statement.
func (s *BannerService) UpdateBanner(ctx context.Context, id int64, req *display.UpdateBannerRequest) (*display.Banner, error) {
	b, err := s.banners.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil && *req.Title != b.Title {
		exists, err := s.banners.ExistsByTitle(ctx, *req.Title, id)
		if err != nil {
			return nil, fmt.Errorf("failed to check banner title: %w", err)
		}
		if exists {
			return nil, fmt.Errorf("banner title %q already exists: %w", *req.Title, xerrors.ErrConflict)
		}
		b.Title = *req.Title
	}
	if req.ImageURL != nil {
		b.ImageURL = sql.NullString{String: *req.ImageURL, Valid: *req.ImageURL != ""}
	}
	if req.StartDate != nil {
		b.Window.Start = *req.StartDate
	}
	if req.EndDate != nil {
		b.Window.End = *req.EndDate
	}
	if err := b.Window.Validate(); err != nil {
		return nil, err
	}

	if req.Source != nil {
		if _, err := s.resolver.Resolve(ctx, *req.Source, ResolveOptions{}); err != nil {
			return nil, err
		}
		b.Source = req.Source.Normalized()
	}

	b.Status = display.ClassifyWindow(s.clk.Now(), b.Window.Start, b.Window.End)

	if err := s.banners.Update(ctx, b); err != nil {
		s.logger.Error("failed to update banner", zap.Int64("banner_id", id), zap.Error(err))
		return nil, err
	}

	s.invalidateFeed(ctx)
	s.logger.Info("banner updated", zap.Int64("banner_id", id))

	return b, nil
}

func (s *BannerService) GetBanner(ctx context.Context, id int64) (*display.BannerView, error) {
	b, err := s.banners.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resolved, err := s.resolver.Resolve(ctx, b.Source, ResolveOptions{})
	if err != nil {
		// The referenced target may have been deleted since; surface the
		// banner with an empty resolution rather than failing the read.
		resolved = &display.ResolvedSource{Type: b.Source.Type}
	}

	return &display.BannerView{Banner: *b, Resolved: *resolved}, nil
}

func (s *BannerService) ListBanners(ctx context.Context) ([]display.Banner, error) {
	return s.banners.List(ctx)
}

// DeleteBanner removes the banner without cascading onto resolved targets.
func (s *BannerService) DeleteBanner(ctx context.Context, id int64) error {
	if err := s.banners.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateFeed(ctx)
	s.logger.Info("banner deleted", zap.Int64("banner_id", id))

	return nil
}

func (s *BannerService) invalidateFeed(ctx context.Context) {
	if s.feed == nil {
		return
	}
	if err := s.feed.Invalidate(ctx); err != nil {
		s.logger.Warn("failed to invalidate feed cache", zap.Error(err))
	}
}
