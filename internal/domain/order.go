package domain

import "time"

// Статусы заказа.
const (
	OrderStatusCreated = "created"
)

// OrderItem — строка заказа (снимок позиции каталога на момент оформления).
type OrderItem struct {
	Article    string `json:"article"`
	Name       string `json:"name"`
	Qty        int    `json:"qty"`
	PriceCents int64  `json:"price_cents"`
}

// Order — оформленный заказ.
type Order struct {
	OrderUID   string      `json:"order_uid"`
	CustomerID string      `json:"customer_id"`
	Status     string      `json:"status"`
	TotalCents int64       `json:"total_cents"`
	CreatedAt  time.Time   `json:"created_at"`
	Items      []OrderItem `json:"items"`
}
