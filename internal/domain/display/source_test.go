package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xerrors "shopadmin-service/internal/pkg/errors"
)

func int64Ptr(v int64) *int64 { return &v }

func TestSourceSelectorValidate(t *testing.T) {
	valid := []struct {
		name string
		sel  SourceSelector
	}{
		{"manual", SourceSelector{Type: SourceManual, ProductIDs: []int64{1, 2}}},
		{"manual with duplicate ids", SourceSelector{Type: SourceManual, ProductIDs: []int64{1, 1}}},
		{"category", SourceSelector{Type: SourceCategory, CategoryID: int64Ptr(3)}},
		{"subcategory", SourceSelector{Type: SourceSubcategory, SubcategoryID: int64Ptr(4)}},
		{"subcategory with owning category", SourceSelector{Type: SourceSubcategory, SubcategoryID: int64Ptr(4), CategoryID: int64Ptr(3)}},
		{"deal", SourceSelector{Type: SourceDeal, DealID: int64Ptr(5)}},
		{"external", SourceSelector{Type: SourceExternal, ExternalURL: "https://example.com/sale"}},
	}
	for _, tt := range valid {
		t.Run("valid "+tt.name, func(t *testing.T) {
			assert.NoError(t, tt.sel.Validate())
		})
	}

	invalid := []struct {
		name string
		sel  SourceSelector
	}{
		{"manual with empty list", SourceSelector{Type: SourceManual}},
		{"category without id", SourceSelector{Type: SourceCategory}},
		{"subcategory without id", SourceSelector{Type: SourceSubcategory, CategoryID: int64Ptr(3)}},
		{"deal without id", SourceSelector{Type: SourceDeal}},
		{"external without url", SourceSelector{Type: SourceExternal}},
		{"missing tag", SourceSelector{}},
		{"unknown tag", SourceSelector{Type: SourceType("wishlist")}},
	}
	for _, tt := range invalid {
		t.Run("invalid "+tt.name, func(t *testing.T) {
			err := tt.sel.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, xerrors.ErrInvalidInput)
		})
	}
}

func TestSourceSelectorNormalized(t *testing.T) {
	// A selector switched from manual to category must not carry the old
	// payloads along.
	sel := SourceSelector{
		Type:          SourceCategory,
		CategoryID:    int64Ptr(7),
		ProductIDs:    []int64{1, 2, 3},
		SubcategoryID: int64Ptr(9),
		DealID:        int64Ptr(11),
		ExternalURL:   "https://stale.example.com",
	}

	got := sel.Normalized()

	assert.Equal(t, SourceCategory, got.Type)
	require.NotNil(t, got.CategoryID)
	assert.Equal(t, int64(7), *got.CategoryID)
	assert.Nil(t, got.ProductIDs)
	assert.Nil(t, got.SubcategoryID)
	assert.Nil(t, got.DealID)
	assert.Empty(t, got.ExternalURL)
}

func TestSourceSelectorNormalized_KeepsSubcategoryCrossCheck(t *testing.T) {
	sel := SourceSelector{
		Type:          SourceSubcategory,
		SubcategoryID: int64Ptr(4),
		CategoryID:    int64Ptr(3),
		ProductIDs:    []int64{1},
	}

	got := sel.Normalized()

	require.NotNil(t, got.SubcategoryID)
	require.NotNil(t, got.CategoryID)
	assert.Nil(t, got.ProductIDs)
}
