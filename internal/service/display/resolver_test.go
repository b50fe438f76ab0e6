package display

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopadmin-service/internal/domain/catalog"
	"shopadmin-service/internal/domain/deal"
	"shopadmin-service/internal/domain/display"
	xerrors "shopadmin-service/internal/pkg/errors"
)

func int64p(v int64) *int64 { return &v }

func newTestResolver() *SourceResolver {
	products := &stubProductRepo{products: map[int64]catalog.Product{
		1: {ID: 1, Name: "Phone"},
		2: {ID: 2, Name: "Laptop"},
		3: {ID: 3, Name: "Headphones"},
	}}
	categories := &stubCategoryRepo{categories: map[int64]catalog.Category{
		10: {ID: 10, Name: "Electronics"},
		11: {ID: 11, Name: "Clothing"},
	}}
	subcategories := &stubSubcategoryRepo{subcategories: map[int64]catalog.Subcategory{
		20: {ID: 20, CategoryID: 10, Name: "Phones"},
	}}
	deals := &stubDealRepo{deals: map[int64]deal.Deal{
		30: {ID: 30, Title: "Flash Sale", DiscountPercent: 10, Status: deal.DealStatusEnabled},
		31: {ID: 31, Title: "Old Sale", DiscountPercent: 50, Status: deal.DealStatusDisabled},
	}}
	return NewSourceResolver(products, categories, subcategories, deals)
}

func TestResolveManualPreservesOrderAndDuplicates(t *testing.T) {
	r := newTestResolver()

	resolved, err := r.Resolve(context.Background(), display.SourceSelector{
		Type:       display.SourceManual,
		ProductIDs: []int64{3, 1, 3, 2},
	}, ResolveOptions{})
	require.NoError(t, err)

	ids := make([]int64, 0, len(resolved.Products))
	for _, p := range resolved.Products {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int64{3, 1, 3, 2}, ids)
}

func TestResolveManualReportsAllMissingIDs(t *testing.T) {
	r := newTestResolver()

	_, err := r.Resolve(context.Background(), display.SourceSelector{
		Type:       display.SourceManual,
		ProductIDs: []int64{1, 99, 2, 100, 99},
	}, ResolveOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, xerrors.ErrNotFound)
	assert.Contains(t, err.Error(), "99")
	assert.Contains(t, err.Error(), "100")
}

func TestResolveCategory(t *testing.T) {
	r := newTestResolver()

	resolved, err := r.Resolve(context.Background(), display.SourceSelector{
		Type:       display.SourceCategory,
		CategoryID: int64p(10),
	}, ResolveOptions{})
	require.NoError(t, err)
	require.NotNil(t, resolved.Category)
	assert.Equal(t, "Electronics", resolved.Category.Name)
}

func TestResolveSubcategoryOwnershipMismatch(t *testing.T) {
	r := newTestResolver()

	_, err := r.Resolve(context.Background(), display.SourceSelector{
		Type:          display.SourceSubcategory,
		SubcategoryID: int64p(20),
		CategoryID:    int64p(11),
	}, ResolveOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, xerrors.ErrNotFound)

	resolved, err := r.Resolve(context.Background(), display.SourceSelector{
		Type:          display.SourceSubcategory,
		SubcategoryID: int64p(20),
		CategoryID:    int64p(10),
	}, ResolveOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(20), resolved.Subcategory.ID)
}

func TestResolveDealEnabledRequirement(t *testing.T) {
	r := newTestResolver()

	// Display resolution accepts a disabled deal.
	resolved, err := r.Resolve(context.Background(), display.SourceSelector{
		Type:   display.SourceDeal,
		DealID: int64p(31),
	}, ResolveOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(31), resolved.Deal.ID)

	// The strict path does not.
	_, err = r.Resolve(context.Background(), display.SourceSelector{
		Type:   display.SourceDeal,
		DealID: int64p(31),
	}, ResolveOptions{RequireEnabledDeal: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, xerrors.ErrInvalidInput)

	_, err = r.ResolveDeal(context.Background(), 30, true)
	assert.NoError(t, err)
}

func TestResolveExternalPassesURLThrough(t *testing.T) {
	r := newTestResolver()

	resolved, err := r.Resolve(context.Background(), display.SourceSelector{
		Type:        display.SourceExternal,
		ExternalURL: "https://example.com/sale",
	}, ResolveOptions{})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/sale", resolved.ExternalURL)
}

func TestResolveRejectsInvalidSelectors(t *testing.T) {
	r := newTestResolver()

	tests := []struct {
		name string
		sel  display.SourceSelector
	}{
		{"unknown type", display.SourceSelector{Type: "mystery"}},
		{"manual without products", display.SourceSelector{Type: display.SourceManual}},
		{"category without id", display.SourceSelector{Type: display.SourceCategory}},
		{"deal without id", display.SourceSelector{Type: display.SourceDeal}},
		{"external without url", display.SourceSelector{Type: display.SourceExternal}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Resolve(context.Background(), tt.sel, ResolveOptions{})
			require.Error(t, err)
			assert.ErrorIs(t, err, xerrors.ErrInvalidInput)
		})
	}
}
