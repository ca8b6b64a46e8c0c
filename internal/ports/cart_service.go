package ports

import (
	"context"

	"github.com/bricklane/bricks-shop/internal/domain"
)

// CartService — операции корзины, видимые HTTP-слою.
type CartService interface {
	GetCart(ctx context.Context, customerID string) (*domain.Cart, error)
	AddItem(ctx context.Context, customerID, article string, qty int) error
	RemoveItem(ctx context.Context, customerID, article string) error
	Checkout(ctx context.Context, customerID string) (*domain.Order, error)
}
