package display

import (
	"context"
	"fmt"

	"shopadmin-service/internal/domain/catalog"
	"shopadmin-service/internal/domain/deal"
	"shopadmin-service/internal/domain/display"
	xerrors "shopadmin-service/internal/pkg/errors"
)

// ResolveOptions tunes the strictness of resolution per call site.
type ResolveOptions struct {
	// RequireEnabledDeal makes a deal source fail unless the deal is enabled.
	// Product pricing needs this; display resolution does not.
	RequireEnabledDeal bool
}

// SourceResolver validates a source selector against the catalog and
// materializes the referenced entities. It only reads; the caller persists
// the resolved relation.
type SourceResolver struct {
	products      catalog.ProductRepository
	categories    catalog.CategoryRepository
	subcategories catalog.SubcategoryRepository
	deals         deal.Repository
}

func NewSourceResolver(
	products catalog.ProductRepository,
	categories catalog.CategoryRepository,
	subcategories catalog.SubcategoryRepository,
	deals deal.Repository,
) *SourceResolver {
	return &SourceResolver{
		products:      products,
		categories:    categories,
		subcategories: subcategories,
		deals:         deals,
	}
}

// Resolve checks the selector's referenced entities exist and returns them.
// Manual lists come back in caller order, duplicates included. All missing
// product ids are reported in one error so the caller sees the full picture.
func (r *SourceResolver) Resolve(ctx context.Context, sel display.SourceSelector, opts ResolveOptions) (*display.ResolvedSource, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}

	resolved := &display.ResolvedSource{Type: sel.Type}

	switch sel.Type {
	case display.SourceManual:
		products, err := r.resolveManual(ctx, sel.ProductIDs)
		if err != nil {
			return nil, err
		}
		resolved.Products = products

	case display.SourceCategory:
		c, err := r.categories.FindByID(ctx, *sel.CategoryID)
		if err != nil {
			return nil, err
		}
		resolved.Category = c

	case display.SourceSubcategory:
		s, err := r.subcategories.FindByID(ctx, *sel.SubcategoryID)
		if err != nil {
			return nil, err
		}
		if sel.CategoryID != nil && s.CategoryID != *sel.CategoryID {
			return nil, fmt.Errorf("subcategory %d does not belong to category %d: %w",
				s.ID, *sel.CategoryID, xerrors.ErrNotFound)
		}
		resolved.Subcategory = s

	case display.SourceDeal:
		d, err := r.ResolveDeal(ctx, *sel.DealID, opts.RequireEnabledDeal)
		if err != nil {
			return nil, err
		}
		resolved.Deal = d

	case display.SourceExternal:
		resolved.ExternalURL = sel.ExternalURL
	}

	return resolved, nil
}

// ResolveDeal looks up a deal by id, optionally requiring it to be enabled.
// Exposed separately because product pricing resolves deals outside of any
// selector.
func (r *SourceResolver) ResolveDeal(ctx context.Context, id int64, requireEnabled bool) (*deal.Deal, error) {
	d, err := r.deals.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if requireEnabled && !d.Enabled() {
		return nil, fmt.Errorf("deal %d is not enabled: %w", id, xerrors.ErrInvalidInput)
	}

	return d, nil
}

func (r *SourceResolver) resolveManual(ctx context.Context, ids []int64) ([]catalog.Product, error) {
	found, err := r.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]catalog.Product, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}

	var missing []int64
	seenMissing := make(map[int64]bool)
	products := make([]catalog.Product, 0, len(ids))
	for _, id := range ids {
		p, ok := byID[id]
		if !ok {
			if !seenMissing[id] {
				missing = append(missing, id)
				seenMissing[id] = true
			}
			continue
		}
		// Duplicates pass through undeduplicated, in caller order.
		products = append(products, p)
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("products not found: %v: %w", missing, xerrors.ErrNotFound)
	}

	return products, nil
}
