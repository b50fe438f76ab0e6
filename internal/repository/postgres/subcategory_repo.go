package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"shopadmin-service/internal/domain/catalog"
	xerrors "shopadmin-service/internal/pkg/errors"
)

type SubcategoryRepository struct {
	db *pgxpool.Pool
}

func NewSubcategoryRepository(db *pgxpool.Pool) *SubcategoryRepository {
	return &SubcategoryRepository{db: db}
}

func (r *SubcategoryRepository) Create(ctx context.Context, s *catalog.Subcategory) error {
	query := `
		INSERT INTO subcategories (category_id, name, image_url)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, s.CategoryID, s.Name, s.ImageURL).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create subcategory: %w", classifyError(err))
	}

	return nil
}

func (r *SubcategoryRepository) FindByID(ctx context.Context, id int64) (*catalog.Subcategory, error) {
	query := `
		SELECT id, category_id, name, image_url, created_at, updated_at
		FROM subcategories
		WHERE id = $1
	`

	var s catalog.Subcategory
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.CategoryID, &s.Name, &s.ImageURL, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find subcategory %d: %w", id, classifyError(err))
	}

	return &s, nil
}

func (r *SubcategoryRepository) ListByCategory(ctx context.Context, categoryID int64) ([]catalog.Subcategory, error) {
	query := `
		SELECT id, category_id, name, image_url, created_at, updated_at
		FROM subcategories
		WHERE category_id = $1
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subcategories: %w", err)
	}
	defer rows.Close()

	var subcategories []catalog.Subcategory
	for rows.Next() {
		var s catalog.Subcategory
		if err := rows.Scan(&s.ID, &s.CategoryID, &s.Name, &s.ImageURL, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan subcategory: %w", err)
		}
		subcategories = append(subcategories, s)
	}

	return subcategories, rows.Err()
}

func (r *SubcategoryRepository) Update(ctx context.Context, s *catalog.Subcategory) error {
	query := `
		UPDATE subcategories
		SET name = $1, image_url = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query, s.Name, s.ImageURL, s.ID).Scan(&s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update subcategory %d: %w", s.ID, classifyError(err))
	}

	return nil
}

func (r *SubcategoryRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM subcategories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete subcategory %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("subcategory %d: %w", id, xerrors.ErrNotFound)
	}

	return nil
}
