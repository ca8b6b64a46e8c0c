package ports

import (
	"context"

	"github.com/bricklane/bricks-shop/internal/domain"
)

type OrderRepository interface {
	GetByUID(ctx context.Context, orderUID string) (*domain.Order, error)
	ListByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*domain.Order, error)
}
