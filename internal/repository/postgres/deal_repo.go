package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"shopadmin-service/internal/domain/deal"
	xerrors "shopadmin-service/internal/pkg/errors"
)

type DealRepository struct {
	db *pgxpool.Pool
}

func NewDealRepository(db *pgxpool.Pool) *DealRepository {
	return &DealRepository{db: db}
}

func (r *DealRepository) Create(ctx context.Context, d *deal.Deal) error {
	query := `
		INSERT INTO deals (title, description, image_url, discount_percent, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(
		ctx, query,
		d.Title, d.Description, d.ImageURL, d.DiscountPercent, d.StartDate, d.EndDate, d.Status,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create deal: %w", classifyError(err))
	}

	return nil
}

func (r *DealRepository) FindByID(ctx context.Context, id int64) (*deal.Deal, error) {
	query := `
		SELECT id, title, description, image_url, discount_percent, start_date, end_date, status, created_at, updated_at
		FROM deals
		WHERE id = $1
	`

	var d deal.Deal
	err := r.db.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.Title, &d.Description, &d.ImageURL, &d.DiscountPercent,
		&d.StartDate, &d.EndDate, &d.Status, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find deal %d: %w", id, classifyError(err))
	}

	return &d, nil
}

func (r *DealRepository) List(ctx context.Context) ([]deal.Deal, error) {
	query := `
		SELECT id, title, description, image_url, discount_percent, start_date, end_date, status, created_at, updated_at
		FROM deals
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list deals: %w", err)
	}
	defer rows.Close()

	var deals []deal.Deal
	for rows.Next() {
		var d deal.Deal
		if err := rows.Scan(
			&d.ID, &d.Title, &d.Description, &d.ImageURL, &d.DiscountPercent,
			&d.StartDate, &d.EndDate, &d.Status, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan deal: %w", err)
		}
		deals = append(deals, d)
	}

	return deals, rows.Err()
}

func (r *DealRepository) Update(ctx context.Context, d *deal.Deal) error {
	query := `
		UPDATE deals
		SET title = $1, description = $2, image_url = $3, discount_percent = $4,
		    start_date = $5, end_date = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING updated_at
	`

	err := r.db.QueryRow(
		ctx, query,
		d.Title, d.Description, d.ImageURL, d.DiscountPercent, d.StartDate, d.EndDate, d.ID,
	).Scan(&d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update deal %d: %w", d.ID, classifyError(err))
	}

	return nil
}

func (r *DealRepository) UpdateStatus(ctx context.Context, id int64, status deal.DealStatus) error {
	tag, err := r.db.Exec(ctx, `UPDATE deals SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update deal status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("deal %d: %w", id, xerrors.ErrNotFound)
	}

	return nil
}

func (r *DealRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM deals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete deal %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("deal %d: %w", id, xerrors.ErrNotFound)
	}

	return nil
}
