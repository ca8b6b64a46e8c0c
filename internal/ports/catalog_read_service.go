package ports

import (
	"context"

	"github.com/bricklane/bricks-shop/internal/domain"
)

// CatalogService — операции каталога, видимые HTTP-слою.
type CatalogService interface {
	GetBrick(ctx context.Context, article string) (*domain.Brick, error)
	ListBricks(ctx context.Context, limit, offset int) ([]*domain.Brick, error)
	SaveBrick(ctx context.Context, brick *domain.Brick) error
}
