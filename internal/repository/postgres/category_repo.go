package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"shopadmin-service/internal/domain/catalog"
	xerrors "shopadmin-service/internal/pkg/errors"
)

type CategoryRepository struct {
	db *pgxpool.Pool
}

func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, c *catalog.Category) error {
	query := `
		INSERT INTO categories (name, description, image_url)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, c.Name, c.Description, c.ImageURL).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", classifyError(err))
	}

	return nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id int64) (*catalog.Category, error) {
	query := `
		SELECT id, name, description, image_url, created_at, updated_at
		FROM categories
		WHERE id = $1
	`

	var c catalog.Category
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Description, &c.ImageURL, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find category %d: %w", id, classifyError(err))
	}

	return &c, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]catalog.Category, error) {
	query := `
		SELECT id, name, description, image_url, created_at, updated_at
		FROM categories
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []catalog.Category
	for rows.Next() {
		var c catalog.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.ImageURL, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

func (r *CategoryRepository) Update(ctx context.Context, c *catalog.Category) error {
	query := `
		UPDATE categories
		SET name = $1, description = $2, image_url = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query, c.Name, c.Description, c.ImageURL, c.ID).Scan(&c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update category %d: %w", c.ID, classifyError(err))
	}

	return nil
}

// Delete removes the category only; products referencing it keep existing
// (the foreign keys are ON DELETE SET NULL).
func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("category %d: %w", id, xerrors.ErrNotFound)
	}

	return nil
}
