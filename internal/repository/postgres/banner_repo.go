package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"shopadmin-service/internal/domain/display"
	xerrors "shopadmin-service/internal/pkg/errors"
)

type BannerRepository struct {
	db *pgxpool.Pool
}

func NewBannerRepository(db *pgxpool.Pool) *BannerRepository {
	return &BannerRepository{db: db}
}

// selectorColumns flattens a selector onto the five mutually exclusive
// relation columns. The selector must already be normalized, so every
// inactive variant maps to NULL and a write can never leave two variants set.
func selectorColumns(sel display.SourceSelector) (productIDs pq.Int64Array, categoryID, subcategoryID, dealID sql.NullInt64, externalURL sql.NullString) {
	switch sel.Type {
	case display.SourceManual:
		productIDs = pq.Int64Array(sel.ProductIDs)
	case display.SourceCategory:
		categoryID = sql.NullInt64{Int64: *sel.CategoryID, Valid: true}
	case display.SourceSubcategory:
		subcategoryID = sql.NullInt64{Int64: *sel.SubcategoryID, Valid: true}
	case display.SourceDeal:
		dealID = sql.NullInt64{Int64: *sel.DealID, Valid: true}
	case display.SourceExternal:
		externalURL = sql.NullString{String: sel.ExternalURL, Valid: true}
	}
	return
}

// selectorFromColumns rebuilds the selector union from the flattened columns.
func selectorFromColumns(sourceType display.SourceType, productIDs pq.Int64Array, categoryID, subcategoryID, dealID sql.NullInt64, externalURL sql.NullString) display.SourceSelector {
	sel := display.SourceSelector{Type: sourceType}
	switch sourceType {
	case display.SourceManual:
		sel.ProductIDs = []int64(productIDs)
	case display.SourceCategory:
		if categoryID.Valid {
			sel.CategoryID = &categoryID.Int64
		}
	case display.SourceSubcategory:
		if subcategoryID.Valid {
			sel.SubcategoryID = &subcategoryID.Int64
		}
	case display.SourceDeal:
		if dealID.Valid {
			sel.DealID = &dealID.Int64
		}
	case display.SourceExternal:
		sel.ExternalURL = externalURL.String
	}
	return sel
}

func (r *BannerRepository) Create(ctx context.Context, b *display.Banner) error {
	productIDs, categoryID, subcategoryID, dealID, externalURL := selectorColumns(b.Source)

	query := `
		INSERT INTO banners (
			title, image_url, product_source, product_ids, category_id,
			subcategory_id, deal_id, external_url, start_date, end_date, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(
		ctx, query,
		b.Title, b.ImageURL, b.Source.Type, productIDs, categoryID,
		subcategoryID, dealID, externalURL, b.Window.Start, b.Window.End, b.Status,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create banner: %w", classifyError(err))
	}

	return nil
}

const bannerColumns = `
	id, title, image_url, product_source, product_ids, category_id,
	subcategory_id, deal_id, external_url, start_date, end_date, status,
	created_at, updated_at
`

func scanBanner(row interface{ Scan(...any) error }) (*display.Banner, error) {
	var (
		b             display.Banner
		sourceType    display.SourceType
		productIDs    pq.Int64Array
		categoryID    sql.NullInt64
		subcategoryID sql.NullInt64
		dealID        sql.NullInt64
		externalURL   sql.NullString
	)

	err := row.Scan(
		&b.ID, &b.Title, &b.ImageURL, &sourceType, &productIDs, &categoryID,
		&subcategoryID, &dealID, &externalURL, &b.Window.Start, &b.Window.End,
		&b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.Source = selectorFromColumns(sourceType, productIDs, categoryID, subcategoryID, dealID, externalURL)
	return &b, nil
}

func (r *BannerRepository) FindByID(ctx context.Context, id int64) (*display.Banner, error) {
	query := fmt.Sprintf(`SELECT %s FROM banners WHERE id = $1`, bannerColumns)

	b, err := scanBanner(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to find banner %d: %w", id, classifyError(err))
	}

	return b, nil
}

func (r *BannerRepository) List(ctx context.Context) ([]display.Banner, error) {
	return r.listWhere(ctx, "TRUE")
}

func (r *BannerRepository) ListByStatus(ctx context.Context, status display.Status) ([]display.Banner, error) {
	return r.listWhere(ctx, "status = $1", status)
}

func (r *BannerRepository) listWhere(ctx context.Context, where string, args ...interface{}) ([]display.Banner, error) {
	query := fmt.Sprintf(`SELECT %s FROM banners WHERE %s ORDER BY created_at DESC`, bannerColumns, where)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list banners: %w", err)
	}
	defer rows.Close()

	var banners []display.Banner
	for rows.Next() {
		b, err := scanBanner(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan banner: %w", err)
		}
		banners = append(banners, *b)
	}

	return banners, rows.Err()
}

func (r *BannerRepository) ExistsByTitle(ctx context.Context, title string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM banners WHERE title = $1 AND id <> $2)`,
		title, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check banner title: %w", err)
	}

	return exists, nil
}

// Update rewrites all selector columns in one statement, so switching the
// source variant clears the previous relation slots atomically.
func (r *BannerRepository) Update(ctx context.Context, b *display.Banner) error {
	productIDs, categoryID, subcategoryID, dealID, externalURL := selectorColumns(b.Source)

	query := `
		UPDATE banners
		SET title = $1, image_url = $2, product_source = $3, product_ids = $4,
		    category_id = $5, subcategory_id = $6, deal_id = $7, external_url = $8,
		    start_date = $9, end_date = $10, status = $11, updated_at = NOW()
		WHERE id = $12
		RETURNING updated_at
	`

	err := r.db.QueryRow(
		ctx, query,
		b.Title, b.ImageURL, b.Source.Type, productIDs, categoryID,
		subcategoryID, dealID, externalURL, b.Window.Start, b.Window.End,
		b.Status, b.ID,
	).Scan(&b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update banner %d: %w", b.ID, classifyError(err))
	}

	return nil
}

func (r *BannerRepository) UpdateStatus(ctx context.Context, id int64, status display.Status) error {
	tag, err := r.db.Exec(ctx, `UPDATE banners SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update banner status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("banner %d: %w", id, xerrors.ErrNotFound)
	}

	return nil
}

// Delete removes only the banner row; resolved targets are never cascaded.
func (r *BannerRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM banners WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete banner %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("banner %d: %w", id, xerrors.ErrNotFound)
	}

	return nil
}
