package catalog

import "context"

type CategoryRepository interface {
	Create(ctx context.Context, c *Category) error
	FindByID(ctx context.Context, id int64) (*Category, error)
	List(ctx context.Context) ([]Category, error)
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id int64) error
}

type SubcategoryRepository interface {
	Create(ctx context.Context, s *Subcategory) error
	FindByID(ctx context.Context, id int64) (*Subcategory, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]Subcategory, error)
	Update(ctx context.Context, s *Subcategory) error
	Delete(ctx context.Context, id int64) error
}

type ProductRepository interface {
	Create(ctx context.Context, p *Product) error
	FindByID(ctx context.Context, id int64) (*Product, error)
	// FindByIDs returns the products whose ids are in the given set, in no
	// particular order. Missing ids are simply absent from the result.
	FindByIDs(ctx context.Context, ids []int64) ([]Product, error)
	List(ctx context.Context, filters *ProductListFilters) ([]Product, int64, error)
	ListByCategory(ctx context.Context, categoryID int64, limit int) ([]Product, error)
	ListBySubcategory(ctx context.Context, subcategoryID int64, limit int) ([]Product, error)
	ListByDeal(ctx context.Context, dealID int64) ([]Product, error)
	Update(ctx context.Context, p *Product) error
	UpdateStatus(ctx context.Context, id int64, status ProductStatus) error
	Delete(ctx context.Context, id int64) error
}
