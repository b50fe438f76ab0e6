package promo

import "context"

type Repository interface {
	Create(ctx context.Context, p *Promo) error
	FindByID(ctx context.Context, id int64) (*Promo, error)
	FindByCode(ctx context.Context, code string) (*Promo, error)
	List(ctx context.Context) ([]Promo, error)
	Update(ctx context.Context, p *Promo) error
	IncrementUses(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}
