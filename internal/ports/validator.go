package ports

import (
	"context"

	"github.com/bricklane/bricks-shop/internal/domain"
)

type StockValidator interface {
	Validate(ctx context.Context, upd *domain.StockUpdate) error
}
