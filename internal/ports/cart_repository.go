package ports

import (
	"context"

	"github.com/bricklane/bricks-shop/internal/domain"
)

type CartRepository interface {
	// GetByCustomer — корзина покупателя; пустая корзина — не ошибка.
	GetByCustomer(ctx context.Context, customerID string) (*domain.Cart, error)

	// UpsertItem — добавить строку или увеличить количество существующей.
	UpsertItem(ctx context.Context, customerID, article string, qty int) error

	// RemoveItem — удалить строку из корзины (отсутствие строки — не ошибка).
	RemoveItem(ctx context.Context, customerID, article string) error

	// Checkout — транзакционное оформление: блокировка позиций, проверка и
	// списание остатков, создание заказа, очистка корзины.
	Checkout(ctx context.Context, customerID, orderUID string) (*domain.Order, error)
}
