package usecase

import (
	"context"

	"github.com/bricklane/bricks-shop/internal/domain"
	"github.com/bricklane/bricks-shop/internal/ports"
)

// Проверка, что OrderService удовлетворяет интерфейсу OrderReadService.
var _ ports.OrderReadService = (*OrderService)(nil)

// OrderService — чтение оформленных заказов. Запись идёт только через Checkout.
type OrderService struct {
	repo ports.OrderRepository
	log  ports.Logger
}

// NewOrderService — DI-конструктор.
func NewOrderService(repo ports.OrderRepository, log ports.Logger) *OrderService {
	return &OrderService{repo: repo, log: log}
}

// GetOrder — заказ по UID; (nil, nil), если записи нет.
func (s *OrderService) GetOrder(ctx context.Context, orderUID string) (*domain.Order, error) {
	order, err := s.repo.GetByUID(ctx, orderUID)
	if err != nil {
		s.log.Errorf(ctx, "repo.GetByUID failed order_uid=%s err=%v", orderUID, err)
		return nil, err
	}
	return order, nil
}

// OrdersByCustomer — постраничный список заказов покупателя.
func (s *OrderService) OrdersByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*domain.Order, error) {
	return s.repo.ListByCustomer(ctx, customerID, limit, offset)
}
