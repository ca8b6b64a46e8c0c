package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bricklane/bricks-shop/internal/domain"
	"github.com/bricklane/bricks-shop/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что CartRepository удовлетворяет интерфейсу CartRepository.
var _ ports.CartRepository = (*CartRepository)(nil)

// CartRepository — реализация корзины на Postgres (pgxpool).
type CartRepository struct {
	pool *pgxpool.Pool
}

// NewCartRepository — конструктор CartRepository.
func NewCartRepository(pool *pgxpool.Pool) *CartRepository { return &CartRepository{pool: pool} }

// GetByCustomer — корзина с актуальными именами/ценами из каталога.
// Пустая корзина — валидный результат, не ошибка.
func (r *CartRepository) GetByCustomer(ctx context.Context, customerID string) (*domain.Cart, error) {
	if customerID == "" {
		return nil, errors.New("customer_id is required")
	}

	rows, err := r.pool.Query(ctx, `
		SELECT ci.article, b.name, ci.qty, b.price_cents
		FROM cart_items ci
		JOIN bricks b ON b.article = ci.article
		WHERE ci.customer_id = $1
		ORDER BY ci.added_at, ci.article
	`, customerID)
	if err != nil {
		return nil, fmt.Errorf("select cart: %w", err)
	}
	defer rows.Close()

	cart := &domain.Cart{CustomerID: customerID}
	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(&item.Article, &item.Name, &item.Qty, &item.PriceCents); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		cart.Items = append(cart.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("cart rows: %w", err)
	}

	cart.TotalCents = cart.Total()
	return cart, nil
}

// UpsertItem — добавить строку или нарастить количество существующей.
func (r *CartRepository) UpsertItem(ctx context.Context, customerID, article string, qty int) error {
	if customerID == "" || article == "" {
		return errors.New("customer_id and article are required")
	}
	if qty <= 0 {
		return errors.New("qty must be positive")
	}

	if _, err := r.pool.Exec(ctx, `
		INSERT INTO cart_items (customer_id, article, qty)
		VALUES ($1, $2, $3)
		ON CONFLICT (customer_id, article) DO UPDATE SET
			qty = cart_items.qty + EXCLUDED.qty
	`, customerID, article, qty); err != nil {
		return fmt.Errorf("upsert cart item: %w", err)
	}
	return nil
}

// RemoveItem — удалить строку; отсутствие строки — не ошибка.
func (r *CartRepository) RemoveItem(ctx context.Context, customerID, article string) error {
	if _, err := r.pool.Exec(ctx, `
		DELETE FROM cart_items WHERE customer_id = $1 AND article = $2
	`, customerID, article); err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	return nil
}

// Checkout — транзакционное оформление заказа:
//  1. строки корзины + позиции каталога под FOR UPDATE (защита от гонок по остаткам);
//  2. проверка остатков — при нехватке вся транзакция откатывается (ErrInsufficientStock);
//  3. списание остатков и вставка заказа, строки заказа через COPY;
//  4. очистка корзины.
func (r *CartRepository) Checkout(ctx context.Context, customerID, orderUID string) (order *domain.Order, err error) {
	if customerID == "" || orderUID == "" {
		return nil, errors.New("customer_id and order_uid are required")
	}

	transaction, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		// При уже завершённой транзакции Rollback вернёт ErrTxClosed — это норма.
		rbErr := transaction.Rollback(ctx)
		if rbErr == nil || errors.Is(rbErr, pgx.ErrTxClosed) {
			return
		}
		// Откат не прошёл (оборванное соединение и т.п.) — наверх, не глотаем.
		if err != nil {
			err = errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
			return
		}
		order, err = nil, fmt.Errorf("rollback: %w", rbErr)
	}()

	// 1) Строки корзины с блокировкой позиций каталога.
	rows, err := transaction.Query(ctx, `
		SELECT ci.article, b.name, ci.qty, b.price_cents, b.stock
		FROM cart_items ci
		JOIN bricks b ON b.article = ci.article
		WHERE ci.customer_id = $1
		ORDER BY ci.article
		FOR UPDATE OF b
	`, customerID)
	if err != nil {
		return nil, fmt.Errorf("select cart for update: %w", err)
	}

	type line struct {
		item  domain.OrderItem
		stock int
	}
	var lines []line
	for rows.Next() {
		var l line
		if err := rows.Scan(&l.item.Article, &l.item.Name, &l.item.Qty, &l.item.PriceCents, &l.stock); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan cart line: %w", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("cart lines rows: %w", err)
	}
	rows.Close()

	if len(lines) == 0 {
		return nil, domain.ErrEmptyCart
	}

	// 2) Проверка остатков.
	for _, l := range lines {
		if l.stock < l.item.Qty {
			return nil, fmt.Errorf("%w: article=%s have=%d want=%d",
				domain.ErrInsufficientStock, l.item.Article, l.stock, l.item.Qty)
		}
	}

	// 3) Списание остатков.
	for _, l := range lines {
		if _, err := transaction.Exec(ctx, `
			UPDATE bricks SET stock = stock - $2, updated_at = now()
			WHERE article = $1
		`, l.item.Article, l.item.Qty); err != nil {
			return nil, fmt.Errorf("decrement stock: %w", err)
		}
	}

	// Заказ.
	order = &domain.Order{
		OrderUID:   orderUID,
		CustomerID: customerID,
		Status:     domain.OrderStatusCreated,
		CreatedAt:  time.Now().UTC(),
	}
	for _, l := range lines {
		order.Items = append(order.Items, l.item)
		order.TotalCents += l.item.PriceCents * int64(l.item.Qty)
	}

	if _, err := transaction.Exec(ctx, `
		INSERT INTO orders (order_uid, customer_id, status, total_cents, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, order.OrderUID, order.CustomerID, order.Status, order.TotalCents, order.CreatedAt); err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	// Строки заказа через COPY (CopyFromRows); быстрее, чем INSERT в цикле.
	if err := copyOrderItems(ctx, transaction, order.OrderUID, order.Items); err != nil {
		return nil, err
	}

	// 4) Очистка корзины.
	if _, err := transaction.Exec(ctx, `
		DELETE FROM cart_items WHERE customer_id = $1
	`, customerID); err != nil {
		return nil, fmt.Errorf("clear cart: %w", err)
	}

	// Завершаем транзакцию
	if err := transaction.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return order, nil
}

// copyOrderItems — вставка строк заказа через COPY.
func copyOrderItems(ctx context.Context, tx pgx.Tx, orderUID string, items []domain.OrderItem) error {
	rows := make([][]any, 0, len(items))
	for _, item := range items {
		rows = append(rows, []any{orderUID, item.Article, item.Name, item.Qty, item.PriceCents})
	}

	_, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"order_items"},
		[]string{"order_uid", "article", "name", "qty", "price_cents"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("copy order items: %w", err)
	}
	return nil
}
