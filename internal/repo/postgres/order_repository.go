package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/bricklane/bricks-shop/internal/domain"
	"github.com/bricklane/bricks-shop/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что OrderRepository удовлетворяет интерфейсу OrderRepository.
var _ ports.OrderRepository = (*OrderRepository)(nil)

// OrderRepository — чтение заказов (записи создаёт только Checkout корзины).
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository — конструктор OrderRepository.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository { return &OrderRepository{pool: pool} }

// GetByUID — получить заказ по uid. Если не нашли, возвращает (nil, nil).
func (r *OrderRepository) GetByUID(ctx context.Context, orderUID string) (*domain.Order, error) {
	var order domain.Order

	err := r.pool.QueryRow(ctx, `
		SELECT order_uid, customer_id, status, total_cents, created_at
		FROM orders WHERE order_uid = $1
	`, orderUID).Scan(&order.OrderUID, &order.CustomerID, &order.Status, &order.TotalCents, &order.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select order: %w", err)
	}

	// items (0..N)
	rows, err := r.pool.Query(ctx, `
		SELECT article, name, qty, price_cents
		FROM order_items WHERE order_uid = $1
		ORDER BY article
	`, orderUID)
	if err != nil {
		return nil, fmt.Errorf("select order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.Article, &item.Name, &item.Qty, &item.PriceCents); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		order.Items = append(order.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("order items rows: %w", err)
	}

	return &order, nil
}

// ListByCustomer — постраничный список заказов клиента: страница базовых записей
// плюс один запрос строк по всем UID страницы, склейка в памяти с сохранением порядка.
func (r *OrderRepository) ListByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*domain.Order, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.pool.Query(ctx, `
		SELECT order_uid, customer_id, status, total_cents, created_at
		FROM orders
		WHERE customer_id = $1
		ORDER BY created_at DESC, order_uid DESC
		LIMIT $2 OFFSET $3
	`, customerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("select customer orders: %w", err)
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0, limit)
	byUID := make(map[string]*domain.Order, limit)
	uids := make([]string, 0, limit)

	for rows.Next() {
		order := &domain.Order{}
		if err := rows.Scan(&order.OrderUID, &order.CustomerID, &order.Status, &order.TotalCents, &order.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order base: %w", err)
		}
		orders = append(orders, order)
		byUID[order.OrderUID] = order
		uids = append(uids, order.OrderUID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("orders rows: %w", err)
	}
	if len(orders) == 0 {
		return orders, nil // пустая страница
	}

	// Строки для всех UID страницы.
	iRows, err := r.pool.Query(ctx, `
		SELECT order_uid, article, name, qty, price_cents
		FROM order_items
		WHERE order_uid = ANY($1::text[])
		ORDER BY order_uid, article
	`, uids)
	if err != nil {
		return nil, fmt.Errorf("select order items: %w", err)
	}
	defer iRows.Close()

	for iRows.Next() {
		var uid string
		var item domain.OrderItem
		if err := iRows.Scan(&uid, &item.Article, &item.Name, &item.Qty, &item.PriceCents); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		if order := byUID[uid]; order != nil {
			order.Items = append(order.Items, item)
		}
	}
	if err := iRows.Err(); err != nil {
		return nil, fmt.Errorf("order items rows: %w", err)
	}

	return orders, nil
}
