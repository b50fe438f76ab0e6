package deal

import "context"

type Repository interface {
	Create(ctx context.Context, d *Deal) error
	FindByID(ctx context.Context, id int64) (*Deal, error)
	List(ctx context.Context) ([]Deal, error)
	Update(ctx context.Context, d *Deal) error
	UpdateStatus(ctx context.Context, id int64, status DealStatus) error
	Delete(ctx context.Context, id int64) error
}
