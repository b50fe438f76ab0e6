package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"shopadmin-service/internal/domain/catalog"
	xerrors "shopadmin-service/internal/pkg/errors"
)

type ProductRepository struct {
	db *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{db: db}
}

const productColumns = `
	id, name, description, image_url, category_id, subcategory_id,
	base_price, discount, discount_type, deal_id, final_price,
	stock, status, created_at, updated_at
`

func scanProduct(row interface{ Scan(...any) error }) (*catalog.Product, error) {
	var p catalog.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.ImageURL, &p.CategoryID, &p.SubcategoryID,
		&p.BasePrice, &p.DiscountAmount, &p.DiscountKind, &p.DealID, &p.FinalPrice,
		&p.Stock, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *catalog.Product) error {
	query := `
		INSERT INTO products (
			name, description, image_url, category_id, subcategory_id,
			base_price, discount, discount_type, deal_id, final_price, stock, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(
		ctx, query,
		p.Name, p.Description, p.ImageURL, p.CategoryID, p.SubcategoryID,
		p.BasePrice, p.DiscountAmount, p.DiscountKind, p.DealID, p.FinalPrice,
		p.Stock, p.Status,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", classifyError(err))
	}

	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*catalog.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = $1`, productColumns)

	p, err := scanProduct(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to find product %d: %w", id, classifyError(err))
	}

	return p, nil
}

// FindByIDs returns the products in the given id set; absent ids are simply
// missing from the result, callers decide how to report them.
func (r *ProductRepository) FindByIDs(ctx context.Context, ids []int64) ([]catalog.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = ANY($1)`, productColumns)

	rows, err := r.db.Query(ctx, query, pq.Int64Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}
	defer rows.Close()

	var products []catalog.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *p)
	}

	return products, rows.Err()
}

func (r *ProductRepository) List(ctx context.Context, filters *catalog.ProductListFilters) ([]catalog.Product, int64, error) {
	conditions := []string{"TRUE"}
	args := []interface{}{}
	argPos := 1

	if filters.CategoryID != nil {
		conditions = append(conditions, fmt.Sprintf("category_id = $%d", argPos))
		args = append(args, *filters.CategoryID)
		argPos++
	}
	if filters.SubcategoryID != nil {
		conditions = append(conditions, fmt.Sprintf("subcategory_id = $%d", argPos))
		args = append(args, *filters.SubcategoryID)
		argPos++
	}
	if filters.DealID != nil {
		conditions = append(conditions, fmt.Sprintf("deal_id = $%d", argPos))
		args = append(args, *filters.DealID)
		argPos++
	}
	if filters.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argPos))
		args = append(args, *filters.Status)
		argPos++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM products WHERE %s", whereClause)
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.PageSize < 1 {
		filters.PageSize = 20
	}
	offset := (filters.Page - 1) * filters.PageSize

	query := fmt.Sprintf(`
		SELECT %s FROM products
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, productColumns, whereClause, argPos, argPos+1)
	args = append(args, filters.PageSize, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []catalog.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *p)
	}

	return products, total, rows.Err()
}

func (r *ProductRepository) ListByCategory(ctx context.Context, categoryID int64, limit int) ([]catalog.Product, error) {
	return r.listWhere(ctx, "category_id = $1 AND status = 'enabled'", limit, categoryID)
}

func (r *ProductRepository) ListBySubcategory(ctx context.Context, subcategoryID int64, limit int) ([]catalog.Product, error) {
	return r.listWhere(ctx, "subcategory_id = $1 AND status = 'enabled'", limit, subcategoryID)
}

func (r *ProductRepository) ListByDeal(ctx context.Context, dealID int64) ([]catalog.Product, error) {
	return r.listWhere(ctx, "deal_id = $1", 0, dealID)
}

func (r *ProductRepository) listWhere(ctx context.Context, where string, limit int, args ...interface{}) ([]catalog.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE %s ORDER BY created_at DESC`, productColumns, where)
	if limit > 0 {
		query = fmt.Sprintf("%s LIMIT %d", query, limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []catalog.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *p)
	}

	return products, rows.Err()
}

func (r *ProductRepository) Update(ctx context.Context, p *catalog.Product) error {
	query := `
		UPDATE products
		SET name = $1, description = $2, image_url = $3, category_id = $4,
		    subcategory_id = $5, base_price = $6, discount = $7, discount_type = $8,
		    deal_id = $9, final_price = $10, stock = $11, updated_at = NOW()
		WHERE id = $12
		RETURNING updated_at
	`

	err := r.db.QueryRow(
		ctx, query,
		p.Name, p.Description, p.ImageURL, p.CategoryID, p.SubcategoryID,
		p.BasePrice, p.DiscountAmount, p.DiscountKind, p.DealID, p.FinalPrice,
		p.Stock, p.ID,
	).Scan(&p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update product %d: %w", p.ID, classifyError(err))
	}

	return nil
}

func (r *ProductRepository) UpdateStatus(ctx context.Context, id int64, status catalog.ProductStatus) error {
	tag, err := r.db.Exec(ctx, `UPDATE products SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update product status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product %d: %w", id, xerrors.ErrNotFound)
	}

	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product %d: %w", id, xerrors.ErrNotFound)
	}

	return nil
}
