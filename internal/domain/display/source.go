package display

import (
	"fmt"

	"shopadmin-service/internal/domain/catalog"
	"shopadmin-service/internal/domain/deal"
	xerrors "shopadmin-service/internal/pkg/errors"
)

// SourceType tags how a banner or homepage section selects the products it
// displays.
type SourceType string

const (
	SourceManual      SourceType = "manual"
	SourceCategory    SourceType = "category"
	SourceSubcategory SourceType = "subcategory"
	SourceDeal        SourceType = "deal"
	SourceExternal    SourceType = "external"
)

// SourceSelector is a tagged union: exactly one variant is active per
// banner/section, determined by Type. The payload fields for the inactive
// variants must stay empty; persisting a selector clears the other relation
// slots so two variants can never both be set.
type SourceSelector struct {
	Type SourceType `json:"product_source" binding:"required"`

	// manual
	ProductIDs []int64 `json:"product_ids,omitempty"`
	// category
	CategoryID *int64 `json:"category_id,omitempty"`
	// subcategory; CategoryID may additionally be set on the strict update
	// path, in which case the subcategory must belong to that category.
	SubcategoryID *int64 `json:"subcategory_id,omitempty"`
	// deal
	DealID *int64 `json:"deal_id,omitempty"`
	// external
	ExternalURL string `json:"external_url,omitempty"`
}

// Validate checks that the active variant carries its required payload.
// Existence of the referenced entities is the resolver's job, not Validate's.
func (s *SourceSelector) Validate() error {
	switch s.Type {
	case SourceManual:
		if len(s.ProductIDs) == 0 {
			return xerrors.Wrap(xerrors.ErrInvalidInput, "manual source requires a non-empty product id list")
		}
	case SourceCategory:
		if s.CategoryID == nil {
			return xerrors.Wrap(xerrors.ErrInvalidInput, "category source requires a category id")
		}
	case SourceSubcategory:
		if s.SubcategoryID == nil {
			return xerrors.Wrap(xerrors.ErrInvalidInput, "subcategory source requires a subcategory id")
		}
	case SourceDeal:
		if s.DealID == nil {
			return xerrors.Wrap(xerrors.ErrInvalidInput, "deal source requires a deal id")
		}
	case SourceExternal:
		if s.ExternalURL == "" {
			return xerrors.Wrap(xerrors.ErrInvalidInput, "external source requires a url")
		}
	default:
		return fmt.Errorf("unsupported source type %q: %w", s.Type, xerrors.ErrInvalidInput)
	}
	return nil
}

// Normalized returns a copy of the selector with every inactive variant's
// payload cleared, keeping the "exactly one active variant" invariant when
// the selector is persisted over a previous one.
func (s SourceSelector) Normalized() SourceSelector {
	out := SourceSelector{Type: s.Type}
	switch s.Type {
	case SourceManual:
		out.ProductIDs = s.ProductIDs
	case SourceCategory:
		out.CategoryID = s.CategoryID
	case SourceSubcategory:
		out.SubcategoryID = s.SubcategoryID
		out.CategoryID = s.CategoryID
	case SourceDeal:
		out.DealID = s.DealID
	case SourceExternal:
		out.ExternalURL = s.ExternalURL
	}
	return out
}

// ResolvedSource is the output of source resolution: the materialized
// reference(s) behind a validated selector. Only the fields matching the
// selector's type are populated. For category/subcategory/deal sources the
// explicit product list is resolved lazily by downstream display logic.
type ResolvedSource struct {
	Type        SourceType           `json:"product_source"`
	Products    []catalog.Product    `json:"products,omitempty"`
	Category    *catalog.Category    `json:"category,omitempty"`
	Subcategory *catalog.Subcategory `json:"subcategory,omitempty"`
	Deal        *deal.Deal           `json:"deal,omitempty"`
	ExternalURL string               `json:"external_url,omitempty"`
}
