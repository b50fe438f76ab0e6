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

type SectionRepository struct {
	db *pgxpool.Pool
}

func NewSectionRepository(db *pgxpool.Pool) *SectionRepository {
	return &SectionRepository{db: db}
}

const sectionColumns = `
	id, title, position, enabled, product_source, product_ids, category_id,
	subcategory_id, deal_id, external_url, created_at, updated_at
`

func scanSection(row interface{ Scan(...any) error }) (*display.HomepageSection, error) {
	var (
		s             display.HomepageSection
		sourceType    display.SourceType
		productIDs    pq.Int64Array
		categoryID    sql.NullInt64
		subcategoryID sql.NullInt64
		dealID        sql.NullInt64
		externalURL   sql.NullString
	)

	err := row.Scan(
		&s.ID, &s.Title, &s.Position, &s.Enabled, &sourceType, &productIDs,
		&categoryID, &subcategoryID, &dealID, &externalURL, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.Source = selectorFromColumns(sourceType, productIDs, categoryID, subcategoryID, dealID, externalURL)
	return &s, nil
}

func (r *SectionRepository) Create(ctx context.Context, s *display.HomepageSection) error {
	productIDs, categoryID, subcategoryID, dealID, externalURL := selectorColumns(s.Source)

	query := `
		INSERT INTO homepage_sections (
			title, position, enabled, product_source, product_ids,
			category_id, subcategory_id, deal_id, external_url
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(
		ctx, query,
		s.Title, s.Position, s.Enabled, s.Source.Type, productIDs,
		categoryID, subcategoryID, dealID, externalURL,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create section: %w", classifyError(err))
	}

	return nil
}

func (r *SectionRepository) FindByID(ctx context.Context, id int64) (*display.HomepageSection, error) {
	query := fmt.Sprintf(`SELECT %s FROM homepage_sections WHERE id = $1`, sectionColumns)

	s, err := scanSection(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to find section %d: %w", id, classifyError(err))
	}

	return s, nil
}

func (r *SectionRepository) List(ctx context.Context) ([]display.HomepageSection, error) {
	return r.listWhere(ctx, "TRUE")
}

func (r *SectionRepository) ListEnabled(ctx context.Context) ([]display.HomepageSection, error) {
	return r.listWhere(ctx, "enabled")
}

func (r *SectionRepository) listWhere(ctx context.Context, where string) ([]display.HomepageSection, error) {
	query := fmt.Sprintf(`SELECT %s FROM homepage_sections WHERE %s ORDER BY position, id`, sectionColumns, where)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list sections: %w", err)
	}
	defer rows.Close()

	var sections []display.HomepageSection
	for rows.Next() {
		s, err := scanSection(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan section: %w", err)
		}
		sections = append(sections, *s)
	}

	return sections, rows.Err()
}

func (r *SectionRepository) ExistsByTitle(ctx context.Context, title string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM homepage_sections WHERE title = $1 AND id <> $2)`,
		title, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check section title: %w", err)
	}

	return exists, nil
}

// Update rewrites all selector columns in one statement, so switching the
// source variant clears the previous relation slots atomically.
func (r *SectionRepository) Update(ctx context.Context, s *display.HomepageSection) error {
	productIDs, categoryID, subcategoryID, dealID, externalURL := selectorColumns(s.Source)

	query := `
		UPDATE homepage_sections
		SET title = $1, position = $2, enabled = $3, product_source = $4,
		    product_ids = $5, category_id = $6, subcategory_id = $7,
		    deal_id = $8, external_url = $9, updated_at = NOW()
		WHERE id = $10
		RETURNING updated_at
	`

	err := r.db.QueryRow(
		ctx, query,
		s.Title, s.Position, s.Enabled, s.Source.Type, productIDs,
		categoryID, subcategoryID, dealID, externalURL, s.ID,
	).Scan(&s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update section %d: %w", s.ID, classifyError(err))
	}

	return nil
}

func (r *SectionRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM homepage_sections WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete section %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("section %d: %w", id, xerrors.ErrNotFound)
	}

	return nil
}
