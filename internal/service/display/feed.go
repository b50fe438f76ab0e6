package display

import (
	"context"

	"go.uber.org/zap"

	"shopadmin-service/internal/domain/catalog"
	"shopadmin-service/internal/domain/display"
	"shopadmin-service/internal/pkg/clock"
)

// How many products a category/subcategory source contributes to the feed.
const feedProductLimit = 20

// FeedStore is the cache contract for the assembled storefront feed.
type FeedStore interface {
	Get(ctx context.Context) (*display.HomeFeed, error)
	Set(ctx context.Context, feed *display.HomeFeed) error
	Invalidate(ctx context.Context) error
}

// FeedService assembles the public storefront home feed: active banners and
// enabled sections with their sources materialized into product lists. This
// is where category/subcategory/deal sources are expanded; the resolver
// itself leaves them as references.
type FeedService struct {
	banners  display.BannerRepository
	sections display.SectionRepository
	products catalog.ProductRepository
	resolver *SourceResolver
	store    FeedStore
	clk      clock.Clock
	logger   *zap.Logger
}

func NewFeedService(
	banners display.BannerRepository,
	sections display.SectionRepository,
	products catalog.ProductRepository,
	resolver *SourceResolver,
	store FeedStore,
	clk clock.Clock,
	logger *zap.Logger,
) *FeedService {
	return &FeedService{
		banners:  banners,
		sections: sections,
		products: products,
		resolver: resolver,
		store:    store,
		clk:      clk,
		logger:   logger,
	}
}

// HomeFeed returns the cached feed when present, otherwise rebuilds and
// caches it.
func (s *FeedService) HomeFeed(ctx context.Context) (*display.HomeFeed, error) {
	if s.store != nil {
		cached, err := s.store.Get(ctx)
		if err != nil {
			s.logger.Warn("feed cache read failed", zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	feed, err := s.buildFeed(ctx)
	if err != nil {
		return nil, err
	}

	if s.store != nil {
		if err := s.store.Set(ctx, feed); err != nil {
			s.logger.Warn("feed cache write failed", zap.Error(err))
		}
	}

	return feed, nil
}

func (s *FeedService) buildFeed(ctx context.Context) (*display.HomeFeed, error) {
	feed := &display.HomeFeed{GeneratedAt: s.clk.Now()}

	banners, err := s.banners.ListByStatus(ctx, display.StatusActive)
	if err != nil {
		return nil, err
	}
	for _, b := range banners {
		view, err := s.materialize(ctx, b.Source)
		if err != nil {
			// A dangling target must not break the whole feed.
			s.logger.Warn("skipping banner with unresolvable source",
				zap.Int64("banner_id", b.ID), zap.Error(err))
			continue
		}
		feed.Banners = append(feed.Banners, display.BannerView{Banner: b, Resolved: *view})
	}

	sections, err := s.sections.ListEnabled(ctx)
	if err != nil {
		return nil, err
	}
	for _, sec := range sections {
		view, err := s.materialize(ctx, sec.Source)
		if err != nil {
			s.logger.Warn("skipping section with unresolvable source",
				zap.Int64("section_id", sec.ID), zap.Error(err))
			continue
		}
		feed.Sections = append(feed.Sections, display.SectionView{Section: sec, Resolved: *view})
	}

	return feed, nil
}

// materialize resolves a selector and expands reference sources into their
// product lists.
func (s *FeedService) materialize(ctx context.Context, sel display.SourceSelector) (*display.ResolvedSource, error) {
	resolved, err := s.resolver.Resolve(ctx, sel, ResolveOptions{})
	if err != nil {
		return nil, err
	}

	switch resolved.Type {
	case display.SourceCategory:
		resolved.Products, err = s.products.ListByCategory(ctx, resolved.Category.ID, feedProductLimit)
	case display.SourceSubcategory:
		resolved.Products, err = s.products.ListBySubcategory(ctx, resolved.Subcategory.ID, feedProductLimit)
	case display.SourceDeal:
		resolved.Products, err = s.products.ListByDeal(ctx, resolved.Deal.ID)
	}
	if err != nil {
		return nil, err
	}

	return resolved, nil
}
