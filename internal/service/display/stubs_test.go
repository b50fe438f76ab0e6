package display

import (
	"context"
	"fmt"

	"shopadmin-service/internal/domain/catalog"
	"shopadmin-service/internal/domain/deal"
	"shopadmin-service/internal/domain/display"
	xerrors "shopadmin-service/internal/pkg/errors"
)

type stubProductRepo struct {
	products map[int64]catalog.Product
}

func (s *stubProductRepo) Create(ctx context.Context, p *catalog.Product) error { return nil }

func (s *stubProductRepo) FindByID(ctx context.Context, id int64) (*catalog.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, fmt.Errorf("product %d: %w", id, xerrors.ErrNotFound)
	}
	return &p, nil
}

func (s *stubProductRepo) FindByIDs(ctx context.Context, ids []int64) ([]catalog.Product, error) {
	seen := make(map[int64]bool)
	var out []catalog.Product
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if p, ok := s.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubProductRepo) List(ctx context.Context, filters *catalog.ProductListFilters) ([]catalog.Product, int64, error) {
	return nil, 0, nil
}

func (s *stubProductRepo) ListByCategory(ctx context.Context, categoryID int64, limit int) ([]catalog.Product, error) {
	var out []catalog.Product
	for _, p := range s.products {
		if p.CategoryID.Valid && p.CategoryID.Int64 == categoryID && p.Status == catalog.ProductStatusEnabled {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubProductRepo) ListBySubcategory(ctx context.Context, subcategoryID int64, limit int) ([]catalog.Product, error) {
	var out []catalog.Product
	for _, p := range s.products {
		if p.SubcategoryID.Valid && p.SubcategoryID.Int64 == subcategoryID && p.Status == catalog.ProductStatusEnabled {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubProductRepo) ListByDeal(ctx context.Context, dealID int64) ([]catalog.Product, error) {
	var out []catalog.Product
	for _, p := range s.products {
		if p.DealID.Valid && p.DealID.Int64 == dealID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubProductRepo) Update(ctx context.Context, p *catalog.Product) error { return nil }

func (s *stubProductRepo) UpdateStatus(ctx context.Context, id int64, status catalog.ProductStatus) error {
	return nil
}

func (s *stubProductRepo) Delete(ctx context.Context, id int64) error { return nil }

type stubCategoryRepo struct {
	categories map[int64]catalog.Category
}

func (s *stubCategoryRepo) Create(ctx context.Context, c *catalog.Category) error { return nil }

func (s *stubCategoryRepo) FindByID(ctx context.Context, id int64) (*catalog.Category, error) {
	c, ok := s.categories[id]
	if !ok {
		return nil, fmt.Errorf("category %d: %w", id, xerrors.ErrNotFound)
	}
	return &c, nil
}

func (s *stubCategoryRepo) List(ctx context.Context) ([]catalog.Category, error) { return nil, nil }

func (s *stubCategoryRepo) Update(ctx context.Context, c *catalog.Category) error { return nil }

func (s *stubCategoryRepo) Delete(ctx context.Context, id int64) error { return nil }

type stubSubcategoryRepo struct {
	subcategories map[int64]catalog.Subcategory
}

func (s *stubSubcategoryRepo) Create(ctx context.Context, sub *catalog.Subcategory) error {
	return nil
}

func (s *stubSubcategoryRepo) FindByID(ctx context.Context, id int64) (*catalog.Subcategory, error) {
	sub, ok := s.subcategories[id]
	if !ok {
		return nil, fmt.Errorf("subcategory %d: %w", id, xerrors.ErrNotFound)
	}
	return &sub, nil
}

func (s *stubSubcategoryRepo) ListByCategory(ctx context.Context, categoryID int64) ([]catalog.Subcategory, error) {
	return nil, nil
}

func (s *stubSubcategoryRepo) Update(ctx context.Context, sub *catalog.Subcategory) error {
	return nil
}

func (s *stubSubcategoryRepo) Delete(ctx context.Context, id int64) error { return nil }

type stubDealRepo struct {
	deals map[int64]deal.Deal
}

func (s *stubDealRepo) Create(ctx context.Context, d *deal.Deal) error { return nil }

func (s *stubDealRepo) FindByID(ctx context.Context, id int64) (*deal.Deal, error) {
	d, ok := s.deals[id]
	if !ok {
		return nil, fmt.Errorf("deal %d: %w", id, xerrors.ErrNotFound)
	}
	return &d, nil
}

func (s *stubDealRepo) List(ctx context.Context) ([]deal.Deal, error) { return nil, nil }

func (s *stubDealRepo) Update(ctx context.Context, d *deal.Deal) error { return nil }

func (s *stubDealRepo) UpdateStatus(ctx context.Context, id int64, status deal.DealStatus) error {
	return nil
}

func (s *stubDealRepo) Delete(ctx context.Context, id int64) error { return nil }

type stubBannerRepo struct {
	banners       map[int64]*display.Banner
	statusWrites  int
	updatedTitles map[int64]string
}

func (s *stubBannerRepo) Create(ctx context.Context, b *display.Banner) error {
	if s.banners == nil {
		s.banners = make(map[int64]*display.Banner)
	}
	b.ID = int64(len(s.banners) + 1)
	copied := *b
	s.banners[b.ID] = &copied
	return nil
}

func (s *stubBannerRepo) FindByID(ctx context.Context, id int64) (*display.Banner, error) {
	b, ok := s.banners[id]
	if !ok {
		return nil, fmt.Errorf("banner %d: %w", id, xerrors.ErrNotFound)
	}
	copied := *b
	return &copied, nil
}

func (s *stubBannerRepo) List(ctx context.Context) ([]display.Banner, error) {
	out := make([]display.Banner, 0, len(s.banners))
	for _, b := range s.banners {
		out = append(out, *b)
	}
	return out, nil
}

func (s *stubBannerRepo) ListByStatus(ctx context.Context, status display.Status) ([]display.Banner, error) {
	var out []display.Banner
	for _, b := range s.banners {
		if b.Status == status {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (s *stubBannerRepo) ExistsByTitle(ctx context.Context, title string, excludeID int64) (bool, error) {
	for _, b := range s.banners {
		if b.Title == title && b.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubBannerRepo) Update(ctx context.Context, b *display.Banner) error {
	copied := *b
	s.banners[b.ID] = &copied
	return nil
}

func (s *stubBannerRepo) UpdateStatus(ctx context.Context, id int64, status display.Status) error {
	b, ok := s.banners[id]
	if !ok {
		return fmt.Errorf("banner %d: %w", id, xerrors.ErrNotFound)
	}
	b.Status = status
	s.statusWrites++
	return nil
}

func (s *stubBannerRepo) Delete(ctx context.Context, id int64) error {
	delete(s.banners, id)
	return nil
}

type stubSectionRepo struct {
	sections map[int64]*display.HomepageSection
}

func (s *stubSectionRepo) Create(ctx context.Context, sec *display.HomepageSection) error {
	if s.sections == nil {
		s.sections = make(map[int64]*display.HomepageSection)
	}
	sec.ID = int64(len(s.sections) + 1)
	copied := *sec
	s.sections[sec.ID] = &copied
	return nil
}

func (s *stubSectionRepo) FindByID(ctx context.Context, id int64) (*display.HomepageSection, error) {
	sec, ok := s.sections[id]
	if !ok {
		return nil, fmt.Errorf("section %d: %w", id, xerrors.ErrNotFound)
	}
	copied := *sec
	return &copied, nil
}

func (s *stubSectionRepo) List(ctx context.Context) ([]display.HomepageSection, error) {
	out := make([]display.HomepageSection, 0, len(s.sections))
	for _, sec := range s.sections {
		out = append(out, *sec)
	}
	return out, nil
}

func (s *stubSectionRepo) ListEnabled(ctx context.Context) ([]display.HomepageSection, error) {
	var out []display.HomepageSection
	for _, sec := range s.sections {
		if sec.Enabled {
			out = append(out, *sec)
		}
	}
	return out, nil
}

func (s *stubSectionRepo) ExistsByTitle(ctx context.Context, title string, excludeID int64) (bool, error) {
	for _, sec := range s.sections {
		if sec.Title == title && sec.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubSectionRepo) Update(ctx context.Context, sec *display.HomepageSection) error {
	copied := *sec
	s.sections[sec.ID] = &copied
	return nil
}

func (s *stubSectionRepo) Delete(ctx context.Context, id int64) error {
	delete(s.sections, id)
	return nil
}

type stubFeed struct {
	invalidations int
}

func (s *stubFeed) Invalidate(ctx context.Context) error {
	s.invalidations++
	return nil
}
