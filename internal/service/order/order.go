package order

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"shopadmin-service/internal/domain/catalog"
	"shopadmin-service/internal/domain/notification"
	"shopadmin-service/internal/domain/order"
	"shopadmin-service/internal/domain/pricing"
	"shopadmin-service/internal/domain/promo"
	"shopadmin-service/internal/pkg/clock"
	xerrors "shopadmin-service/internal/pkg/errors"
)

// PromoRedeemer validates a promo code and records its use.
type PromoRedeemer interface {
	Redeem(ctx context.Context, code string) (*promo.Promo, error)
}

type Service struct {
	orders        order.Repository
	products      catalog.ProductRepository
	promos        PromoRedeemer
	notifications notification.Repository
	clk           clock.Clock
	logger        *zap.Logger
}

func NewService(
	orders order.Repository,
	products catalog.ProductRepository,
	promos PromoRedeemer,
	notifications notification.Repository,
	clk clock.Clock,
	logger *zap.Logger,
) *Service {
	return &Service{
		orders:        orders,
		products:      products,
		promos:        promos,
		notifications: notifications,
		clk:           clk,
		logger:        logger,
	}
}

// CreateOrder verifies every item references an existing enabled product,
// captures each unit price from the product's current final price, applies
// an optional promo and persists order plus items in one transaction.
func (s *Service) CreateOrder(ctx context.Context, req *order.CreateOrderRequest) (*order.Order, error) {
	ids := make([]int64, 0, len(req.Items))
	for _, item := range req.Items {
		ids = append(ids, item.ProductID)
	}

	products, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*catalog.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	var missing []int64
	seen := make(map[int64]bool)
	for _, id := range ids {
		if byID[id] == nil && !seen[id] {
			missing = append(missing, id)
			seen[id] = true
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("products not found: %v: %w", missing, xerrors.ErrNotFound)
	}

	o := &order.Order{
		Reference:     s.generateReference(),
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: sql.NullString{String: req.CustomerEmail, Valid: req.CustomerEmail != ""},
		Address:       sql.NullString{String: req.Address, Valid: req.Address != ""},
		Status:        order.StatusPlaced,
	}

	var total float64
	for _, item := range req.Items {
		p := byID[item.ProductID]
		if p.Status != catalog.ProductStatusEnabled {
			return nil, fmt.Errorf("product %d is not available: %w", p.ID, xerrors.ErrInvalidInput)
		}
		if p.Stock < item.Quantity {
			return nil, fmt.Errorf("insufficient stock for product %d: %w", p.ID, xerrors.ErrInvalidInput)
		}
		o.Items = append(o.Items, order.OrderItem{
			ProductID: p.ID,
			Quantity:  item.Quantity,
			UnitPrice: p.FinalPrice,
		})
		total += p.FinalPrice * float64(item.Quantity)
	}

	if req.PromoCode != "" {
		pr, err := s.promos.Redeem(ctx, req.PromoCode)
		if err != nil {
			return nil, err
		}
		o.PromoCode = sql.NullString{String: pr.Code, Valid: true}
		total -= total * pr.DiscountPercent / 100
	}
	o.Total = pricing.Round2(total)

	if err := s.orders.Create(ctx, o); err != nil {
		s.logger.Error("failed to create order", zap.Error(err))
		return nil, err
	}

	s.notify(ctx, o)
	s.logger.Info("order created",
		zap.Int64("order_id", o.ID),
		zap.String("reference", o.Reference),
		zap.Float64("total", o.Total),
	)
	return o, nil
}

func (s *Service) GetOrder(ctx context.Context, id int64) (*order.Order, error) {
	return s.orders.FindByID(ctx, id)
}

func (s *Service) GetOrderByReference(ctx context.Context, reference string) (*order.Order, error) {
	return s.orders.FindByReference(ctx, reference)
}

func (s *Service) ListOrders(ctx context.Context, filters *order.OrderListFilters) (*order.OrderListResponse, error) {
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.PageSize < 1 {
		filters.PageSize = 20
	}

	orders, total, err := s.orders.List(ctx, filters)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(filters.PageSize) - 1) / int64(filters.PageSize))
	return &order.OrderListResponse{
		Orders:     orders,
		Total:      total,
		Page:       filters.Page,
		PageSize:   filters.PageSize,
		TotalPages: totalPages,
	}, nil
}

// UpdateOrderStatus enforces the status pipeline; delivered and cancelled
// orders never move again.
func (s *Service) UpdateOrderStatus(ctx context.Context, id int64, status order.OrderStatus) (*order.Order, error) {
	o, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !order.CanTransition(o.Status, status) {
		return nil, fmt.Errorf("cannot move order from %q to %q: %w", o.Status, status, xerrors.ErrInvalidInput)
	}

	if err := s.orders.UpdateStatus(ctx, id, status); err != nil {
		s.logger.Error("failed to update order status", zap.Int64("order_id", id), zap.Error(err))
		return nil, err
	}
	o.Status = status

	s.logger.Info("order status updated",
		zap.Int64("order_id", id),
		zap.String("status", string(status)),
	)
	return o, nil
}

func (s *Service) notify(ctx context.Context, o *order.Order) {
	if s.notifications == nil {
		return
	}
	n := &notification.Notification{
		Title:   "New order placed",
		Message: fmt.Sprintf("Order %s placed by %s for %.2f", o.Reference, o.CustomerName, o.Total),
		Type:    notification.TypeOrder,
		Metadata: map[string]interface{}{
			"order_id":  o.ID,
			"reference": o.Reference,
		},
	}
	if err := s.notifications.Create(ctx, n); err != nil {
		s.logger.Warn("failed to record order notification", zap.Int64("order_id", o.ID), zap.Error(err))
	}
}

func (s *Service) generateReference() string {
	now := s.clk.Now()
	entropy := ulid.Monotonic(rand.New(rand.NewSource(now.UnixNano())), 0)
	return "ORD-" + ulid.MustNew(ulid.Timestamp(now), entropy).String()
}
