//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/bricklane/bricks-shop/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// Мини-генератор валидной позиции каталога
func MakeBrick(opts ...func(*domain.Brick)) domain.Brick {
	b := domain.Brick{
		Article:    "BRK-" + UniqSuffix(),
		Name:       "Brick 2x4",
		Color:      "red",
		Category:   "basic",
		PriceCents: 499,
		Stock:      100,
		UpdatedAt:  time.Now().UTC().Truncate(time.Second),
	}

	for _, fn := range opts {
		fn(&b)
	}
	return b
}

func WithArticle(article string) func(*domain.Brick) {
	return func(b *domain.Brick) { b.Article = article }
}

func WithStock(stock int) func(*domain.Brick) {
	return func(b *domain.Brick) { b.Stock = stock }
}

func WithPriceCents(price int64) func(*domain.Brick) {
	return func(b *domain.Brick) { b.PriceCents = price }
}

// Мини-генератор сообщения об остатках для существующей позиции
func MakeStockUpdate(article string, stock int) domain.StockUpdate {
	return domain.StockUpdate{
		Article:    article,
		Stock:      stock,
		PriceCents: 0, // цену не трогаем
		UpdatedAt:  time.Now().UTC().Truncate(time.Second),
	}
}
