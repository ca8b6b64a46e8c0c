package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bricklane/bricks-shop/internal/domain"
	"github.com/bricklane/bricks-shop/internal/ports"
	"github.com/bricklane/bricks-shop/pkg/metrics"
)

// Проверка, что CartService удовлетворяет интерфейсу CartService.
var _ ports.CartService = (*CartService)(nil)

// CartService — прикладная логика корзины и оформления заказа.
type CartService struct {
	carts  ports.CartRepository
	bricks ports.BrickRepository
	log    ports.Logger
}

// NewCartService — DI-конструктор.
func NewCartService(carts ports.CartRepository, bricks ports.BrickRepository, log ports.Logger) *CartService {
	return &CartService{carts: carts, bricks: bricks, log: log}
}

// GetCart — корзина покупателя; пустая корзина — валидный результат.
func (s *CartService) GetCart(ctx context.Context, customerID string) (*domain.Cart, error) {
	return s.carts.GetByCustomer(ctx, customerID)
}

// AddItem — добавить позицию в корзину.
// Перед вставкой проверяем, что артикул известен каталогу и остатка хватает
// на запрошенное количество (финальная проверка всё равно произойдёт в Checkout).
func (s *CartService) AddItem(ctx context.Context, customerID, article string, qty int) error {
	brick, err := s.bricks.GetByArticle(ctx, article)
	if err != nil {
		s.log.Errorf(ctx, "repo.GetByArticle failed article=%s err=%v", article, err)
		return err
	}
	if brick == nil {
		return fmt.Errorf("%w: %s", domain.ErrUnknownArticle, article)
	}
	if brick.Stock < qty {
		return fmt.Errorf("%w: article=%s have=%d want=%d",
			domain.ErrInsufficientStock, article, brick.Stock, qty)
	}

	if err := s.carts.UpsertItem(ctx, customerID, article, qty); err != nil {
		s.log.Errorf(ctx, "carts.UpsertItem failed customer=%s article=%s err=%v", customerID, article, err)
		return err
	}
	s.log.Infof(ctx, "cart item added customer=%s article=%s qty=%d", customerID, article, qty)
	return nil
}

// RemoveItem — удалить позицию из корзины; отсутствие позиции — не ошибка.
func (s *CartService) RemoveItem(ctx context.Context, customerID, article string) error {
	return s.carts.RemoveItem(ctx, customerID, article)
}

// Checkout — оформить заказ из корзины. UID заказа генерируется здесь,
// вся работа с остатками и очисткой корзины — одна транзакция в репозитории.
func (s *CartService) Checkout(ctx context.Context, customerID string) (*domain.Order, error) {
	orderUID := uuid.NewString()

	start := time.Now()
	order, err := s.carts.Checkout(ctx, customerID, orderUID)
	if err != nil {
		metrics.CheckoutFailed.WithLabelValues(checkoutFailReason(err)).Inc()
		s.log.Errorf(ctx, "checkout failed customer=%s err=%v", customerID, err)
		return nil, err
	}

	metrics.OrdersCheckedOut.Inc()
	s.log.Infof(ctx, "order created uid=%s customer=%s total=%d took=%s",
		order.OrderUID, order.CustomerID, order.TotalCents, time.Since(start))
	return order, nil
}

// checkoutFailReason — метка причины для метрики.
func checkoutFailReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmptyCart):
		return "empty_cart"
	case errors.Is(err, domain.ErrInsufficientStock):
		return "out_of_stock"
	default:
		return "internal"
	}
}
