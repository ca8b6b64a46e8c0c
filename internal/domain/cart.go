package domain

// CartItem — строка корзины; цена фиксируется в момент добавления.
type CartItem struct {
	Article    string `json:"article"`
	Name       string `json:"name"`
	Qty        int    `json:"qty"`
	PriceCents int64  `json:"price_cents"`
}

// Cart — корзина покупателя. TotalCents считается при сборке из строк.
type Cart struct {
	CustomerID string     `json:"customer_id"`
	Items      []CartItem `json:"items"`
	TotalCents int64      `json:"total_cents"`
}

// Total — сумма по строкам корзины.
func (c *Cart) Total() int64 {
	var sum int64
	for i := range c.Items {
		sum += c.Items[i].PriceCents * int64(c.Items[i].Qty)
	}
	return sum
}
