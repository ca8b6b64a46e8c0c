package ports

import (
	"context"

	"github.com/bricklane/bricks-shop/internal/domain"
)

// OrderReadService — сервис чтения заказов.
type OrderReadService interface {
	GetOrder(ctx context.Context, orderUID string) (*domain.Order, error)
	OrdersByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*domain.Order, error)
}
