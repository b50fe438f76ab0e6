package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"shopadmin-service/internal/domain/promo"
	xerrors "shopadmin-service/internal/pkg/errors"
)

type PromoRepository struct {
	db *pgxpool.Pool
}

func NewPromoRepository(db *pgxpool.Pool) *PromoRepository {
	return &PromoRepository{db: db}
}

const promoColumns = `
	id, code, description, discount_percent, max_uses, current_uses,
	start_date, end_date, status, created_at, updated_at
`

func scanPromo(row interface{ Scan(...any) error }) (*promo.Promo, error) {
	var p promo.Promo
	err := row.Scan(
		&p.ID, &p.Code, &p.Description, &p.DiscountPercent, &p.MaxUses, &p.CurrentUses,
		&p.StartDate, &p.EndDate, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PromoRepository) Create(ctx context.Context, p *promo.Promo) error {
	query := `
		INSERT INTO promos (code, description, discount_percent, max_uses, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, current_uses, created_at, updated_at
	`

	err := r.db.QueryRow(
		ctx, query,
		p.Code, p.Description, p.DiscountPercent, p.MaxUses, p.StartDate, p.EndDate, p.Status,
	).Scan(&p.ID, &p.CurrentUses, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create promo: %w", classifyError(err))
	}

	return nil
}

func (r *PromoRepository) FindByID(ctx context.Context, id int64) (*promo.Promo, error) {
	query := fmt.Sprintf(`SELECT %s FROM promos WHERE id = $1`, promoColumns)

	p, err := scanPromo(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to find promo %d: %w", id, classifyError(err))
	}

	return p, nil
}

func (r *PromoRepository) FindByCode(ctx context.Context, code string) (*promo.Promo, error) {
	query := fmt.Sprintf(`SELECT %s FROM promos WHERE code = $1`, promoColumns)

	p, err := scanPromo(r.db.QueryRow(ctx, query, code))
	if err != nil {
		return nil, fmt.Errorf("failed to find promo %q: %w", code, classifyError(err))
	}

	return p, nil
}

func (r *PromoRepository) List(ctx context.Context) ([]promo.Promo, error) {
	query := fmt.Sprintf(`SELECT %s FROM promos ORDER BY created_at DESC`, promoColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list promos: %w", err)
	}
	defer rows.Close()

	var promos []promo.Promo
	for rows.Next() {
		p, err := scanPromo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan promo: %w", err)
		}
		promos = append(promos, *p)
	}

	return promos, rows.Err()
}

func (r *PromoRepository) Update(ctx context.Context, p *promo.Promo) error {
	query := `
		UPDATE promos
		SET description = $1, discount_percent = $2, max_uses = $3,
		    start_date = $4, end_date = $5, status = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING updated_at
	`

	err := r.db.QueryRow(
		ctx, query,
		p.Description, p.DiscountPercent, p.MaxUses, p.StartDate, p.EndDate, p.Status, p.ID,
	).Scan(&p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update promo %d: %w", p.ID, classifyError(err))
	}

	return nil
}

func (r *PromoRepository) IncrementUses(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `UPDATE promos SET current_uses = current_uses + 1, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to increment promo uses: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("promo %d: %w", id, xerrors.ErrNotFound)
	}

	return nil
}

func (r *PromoRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM promos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete promo %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("promo %d: %w", id, xerrors.ErrNotFound)
	}

	return nil
}
