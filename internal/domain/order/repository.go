package order

import "context"

type Repository interface {
	// Create persists the order and its items in one transaction.
	Create(ctx context.Context, o *Order) error
	FindByID(ctx context.Context, id int64) (*Order, error)
	FindByReference(ctx context.Context, reference string) (*Order, error)
	List(ctx context.Context, filters *OrderListFilters) ([]Order, int64, error)
	UpdateStatus(ctx context.Context, id int64, status OrderStatus) error
}
