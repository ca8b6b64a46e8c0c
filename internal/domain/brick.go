package domain

import "time"

// Brick — позиция каталога. Артикул — естественный ключ.
// Цены храним в центах (int64), чтобы не связываться с float.
type Brick struct {
	Article    string    `json:"article"`
	Name       string    `json:"name"`
	Color      string    `json:"color"`
	Category   string    `json:"category"`
	PriceCents int64     `json:"price_cents"`
	Stock      int       `json:"stock"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// StockUpdate — сообщение об изменении остатка/цены из внешней системы учёта.
// Stock — абсолютное значение (не дельта); PriceCents <= 0 означает «цену не трогать».
type StockUpdate struct {
	Article    string    `json:"article"`
	Stock      int       `json:"stock"`
	PriceCents int64     `json:"price_cents"`
	UpdatedAt  time.Time `json:"updated_at"`
}
