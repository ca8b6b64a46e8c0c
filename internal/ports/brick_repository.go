package ports

import (
	"context"

	"github.com/bricklane/bricks-shop/internal/domain"
)

type BrickRepository interface {
	// GetByArticle — вернуть позицию по артикулу; (nil, nil), если записи нет.
	GetByArticle(ctx context.Context, article string) (*domain.Brick, error)

	// List — постраничный список каталога (сортировка по артикулу).
	List(ctx context.Context, limit, offset int) ([]*domain.Brick, error)

	// Upsert — идемпотентная вставка/обновление позиции.
	Upsert(ctx context.Context, brick *domain.Brick) error

	// ApplyStock — применить обновление остатка/цены; вернуть обновлённую позицию.
	// (nil, nil), если артикул каталогу неизвестен.
	ApplyStock(ctx context.Context, upd *domain.StockUpdate) (*domain.Brick, error)

	// LastUpdated — N последних обновлённых позиций (для прогрева кэша).
	LastUpdated(ctx context.Context, n int) ([]*domain.Brick, error)
}
