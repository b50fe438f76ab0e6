package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shopadmin-service/internal/domain/catalog"
	"shopadmin-service/internal/domain/deal"
	"shopadmin-service/internal/domain/pricing"
	xerrors "shopadmin-service/internal/pkg/errors"
)

type memProductRepo struct {
	products map[int64]*catalog.Product
	nextID   int64
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: map[int64]*catalog.Product{}, nextID: 1}
}

func (m *memProductRepo) Create(ctx context.Context, p *catalog.Product) error {
	p.ID = m.nextID
	m.nextID++
	copied := *p
	m.products[p.ID] = &copied
	return nil
}

func (m *memProductRepo) FindByID(ctx context.Context, id int64) (*catalog.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, fmt.Errorf("product %d: %w", id, xerrors.ErrNotFound)
	}
	copied := *p
	return &copied, nil
}

func (m *memProductRepo) FindByIDs(ctx context.Context, ids []int64) ([]catalog.Product, error) {
	var out []catalog.Product
	seen := make(map[int64]bool)
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if p, ok := m.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *memProductRepo) List(ctx context.Context, filters *catalog.ProductListFilters) ([]catalog.Product, int64, error) {
	return nil, 0, nil
}

func (m *memProductRepo) ListByCategory(ctx context.Context, categoryID int64, limit int) ([]catalog.Product, error) {
	return nil, nil
}

func (m *memProductRepo) ListBySubcategory(ctx context.Context, subcategoryID int64, limit int) ([]catalog.Product, error) {
	return nil, nil
}

func (m *memProductRepo) ListByDeal(ctx context.Context, dealID int64) ([]catalog.Product, error) {
	var out []catalog.Product
	for _, p := range m.products {
		if p.DealID.Valid && p.DealID.Int64 == dealID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *memProductRepo) Update(ctx context.Context, p *catalog.Product) error {
	if _, ok := m.products[p.ID]; !ok {
		return fmt.Errorf("product %d: %w", p.ID, xerrors.ErrNotFound)
	}
	copied := *p
	m.products[p.ID] = &copied
	return nil
}

func (m *memProductRepo) UpdateStatus(ctx context.Context, id int64, status catalog.ProductStatus) error {
	p, ok := m.products[id]
	if !ok {
		return fmt.Errorf("product %d: %w", id, xerrors.ErrNotFound)
	}
	p.Status = status
	return nil
}

func (m *memProductRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.products[id]; !ok {
		return fmt.Errorf("product %d: %w", id, xerrors.ErrNotFound)
	}
	delete(m.products, id)
	return nil
}

type memCategoryRepo struct {
	categories map[int64]catalog.Category
}

func (m *memCategoryRepo) Create(ctx context.Context, c *catalog.Category) error { return nil }

func (m *memCategoryRepo) FindByID(ctx context.Context, id int64) (*catalog.Category, error) {
	c, ok := m.categories[id]
	if !ok {
		return nil, fmt.Errorf("category %d: %w", id, xerrors.ErrNotFound)
	}
	return &c, nil
}

func (m *memCategoryRepo) List(ctx context.Context) ([]catalog.Category, error) { return nil, nil }

func (m *memCategoryRepo) Update(ctx context.Context, c *catalog.Category) error { return nil }

func (m *memCategoryRepo) Delete(ctx context.Context, id int64) error { return nil }

type memSubcategoryRepo struct {
	subcategories map[int64]catalog.Subcategory
}

func (m *memSubcategoryRepo) Create(ctx context.Context, s *catalog.Subcategory) error { return nil }

func (m *memSubcategoryRepo) FindByID(ctx context.Context, id int64) (*catalog.Subcategory, error) {
	s, ok := m.subcategories[id]
	if !ok {
		return nil, fmt.Errorf("subcategory %d: %w", id, xerrors.ErrNotFound)
	}
	return &s, nil
}

func (m *memSubcategoryRepo) ListByCategory(ctx context.Context, categoryID int64) ([]catalog.Subcategory, error) {
	return nil, nil
}

func (m *memSubcategoryRepo) Update(ctx context.Context, s *catalog.Subcategory) error { return nil }

func (m *memSubcategoryRepo) Delete(ctx context.Context, id int64) error { return nil }

type memDealRepo struct {
	deals map[int64]deal.Deal
}

func (m *memDealRepo) Create(ctx context.Context, d *deal.Deal) error { return nil }

func (m *memDealRepo) FindByID(ctx context.Context, id int64) (*deal.Deal, error) {
	d, ok := m.deals[id]
	if !ok {
		return nil, fmt.Errorf("deal %d: %w", id, xerrors.ErrNotFound)
	}
	return &d, nil
}

func (m *memDealRepo) List(ctx context.Context) ([]deal.Deal, error) { return nil, nil }

func (m *memDealRepo) Update(ctx context.Context, d *deal.Deal) error { return nil }

func (m *memDealRepo) UpdateStatus(ctx context.Context, id int64, status deal.DealStatus) error {
	d, ok := m.deals[id]
	if !ok {
		return fmt.Errorf("deal %d: %w", id, xerrors.ErrNotFound)
	}
	d.Status = status
	m.deals[id] = d
	return nil
}

func (m *memDealRepo) Delete(ctx context.Context, id int64) error {
	delete(m.deals, id)
	return nil
}

func newProductFixture(t *testing.T) (*ProductService, *memProductRepo, *memDealRepo) {
	t.Helper()
	products := newMemProductRepo()
	categories := &memCategoryRepo{categories: map[int64]catalog.Category{
		10: {ID: 10, Name: "Electronics"},
	}}
	subcategories := &memSubcategoryRepo{subcategories: map[int64]catalog.Subcategory{
		20: {ID: 20, CategoryID: 10, Name: "Phones"},
		21: {ID: 21, CategoryID: 99, Name: "Orphan"},
	}}
	deals := &memDealRepo{deals: map[int64]deal.Deal{
		30: {ID: 30, DiscountPercent: 10, Status: deal.DealStatusEnabled},
		31: {ID: 31, DiscountPercent: 50, Status: deal.DealStatusDisabled},
	}}
	svc := NewProductService(products, categories, subcategories, deals, nil, zap.NewNop())
	return svc, products, deals
}

func int64p(v int64) *int64 { return &v }

func float64p(v float64) *float64 { return &v }

func TestCreateProductComputesFinalPrice(t *testing.T) {
	svc, _, _ := newProductFixture(t)

	p, err := svc.CreateProduct(context.Background(), &catalog.CreateProductRequest{
		Name:           "Phone",
		CategoryID:     int64p(10),
		BasePrice:      100,
		DiscountAmount: 20,
		DiscountKind:   pricing.KindPercentage,
		DealID:         int64p(30),
		Stock:          5,
	})
	require.NoError(t, err)

	// 100 - 20% vendor discount - 10% deal on the original base.
	assert.Equal(t, 70.0, p.FinalPrice)
	assert.Equal(t, catalog.ProductStatusEnabled, p.Status)
}

func TestCreateProductRejectsDisabledDeal(t *testing.T) {
	svc, products, _ := newProductFixture(t)

	_, err := svc.CreateProduct(context.Background(), &catalog.CreateProductRequest{
		Name:         "Phone",
		CategoryID:   int64p(10),
		BasePrice:    100,
		DiscountKind: pricing.KindPercentage,
		DealID:       int64p(31),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, xerrors.ErrInvalidInput)
	assert.Empty(t, products.products)
}

func TestCreateProductNegativePriceAbortsBeforeSave(t *testing.T) {
	svc, products, _ := newProductFixture(t)

	_, err := svc.CreateProduct(context.Background(), &catalog.CreateProductRequest{
		Name:           "Overdiscounted",
		CategoryID:     int64p(10),
		BasePrice:      50,
		DiscountAmount: 60,
		DiscountKind:   pricing.KindFlat,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, xerrors.ErrInvalidInput)
	assert.Empty(t, products.products)
}

func TestCreateProductSubcategoryMustBelongToCategory(t *testing.T) {
	svc, products, _ := newProductFixture(t)

	_, err := svc.CreateProduct(context.Background(), &catalog.CreateProductRequest{
		Name:          "Phone",
		CategoryID:    int64p(10),
		SubcategoryID: int64p(21),
		BasePrice:     100,
		DiscountKind:  pricing.KindPercentage,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, xerrors.ErrInvalidInput)
	assert.Empty(t, products.products)
}

func TestUpdateProductRecomputesPriceOnPricingChange(t *testing.T) {
	svc, _, _ := newProductFixture(t)

	p, err := svc.CreateProduct(context.Background(), &catalog.CreateProductRequest{
		Name:         "Phone",
		CategoryID:   int64p(10),
		BasePrice:    100,
		DiscountKind: pricing.KindPercentage,
	})
	require.NoError(t, err)
	require.Equal(t, 100.0, p.FinalPrice)

	updated, err := svc.UpdateProduct(context.Background(), p.ID, &catalog.UpdateProductRequest{
		BasePrice:      float64p(200),
		DiscountAmount: float64p(25),
	})
	require.NoError(t, err)
	assert.Equal(t, 150.0, updated.FinalPrice)
}

func TestUpdateProductNegativePriceLeavesStoredProductUntouched(t *testing.T) {
	svc, products, _ := newProductFixture(t)

	p, err := svc.CreateProduct(context.Background(), &catalog.CreateProductRequest{
		Name:         "Phone",
		CategoryID:   int64p(10),
		BasePrice:    100,
		DiscountKind: pricing.KindPercentage,
	})
	require.NoError(t, err)

	_, err = svc.UpdateProduct(context.Background(), p.ID, &catalog.UpdateProductRequest{
		DiscountAmount: float64p(150),
		DiscountKind:   func() *pricing.DiscountKind { k := pricing.KindFlat; return &k }(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, xerrors.ErrInvalidInput)

	stored := products.products[p.ID]
	assert.Equal(t, 100.0, stored.FinalPrice)
	assert.Equal(t, 0.0, stored.DiscountAmount)
}

func TestRepriceDealProducts(t *testing.T) {
	svc, products, deals := newProductFixture(t)

	p, err := svc.CreateProduct(context.Background(), &catalog.CreateProductRequest{
		Name:         "Phone",
		CategoryID:   int64p(10),
		BasePrice:    100,
		DiscountKind: pricing.KindPercentage,
		DealID:       int64p(30),
	})
	require.NoError(t, err)
	require.Equal(t, 90.0, p.FinalPrice)

	// Disabling the deal removes its contribution on the next reprice.
	require.NoError(t, deals.UpdateStatus(context.Background(), 30, deal.DealStatusDisabled))
	require.NoError(t, svc.RepriceDealProducts(context.Background(), 30))
	assert.Equal(t, 100.0, products.products[p.ID].FinalPrice)

	// Re-enabling restores it.
	require.NoError(t, deals.UpdateStatus(context.Background(), 30, deal.DealStatusEnabled))
	require.NoError(t, svc.RepriceDealProducts(context.Background(), 30))
	assert.Equal(t, 90.0, products.products[p.ID].FinalPrice)
}
