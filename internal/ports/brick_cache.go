package ports

import (
	"context"

	"github.com/bricklane/bricks-shop/internal/domain"
)

// BrickCache — интерфейс кэша каталога.
// Требования к реализации: потокобезопасность; доступ по ключу не хуже O(1); возврат копий сущности.
type BrickCache interface {
	// Get — вернуть позицию по артикулу; (brick, true) при попадании, (nil, false) при промахе/истечении.
	Get(ctx context.Context, article string) (*domain.Brick, bool)

	// Set — сохранить/обновить позицию в кэше.
	Set(ctx context.Context, brick *domain.Brick) error

	// WarmUp — массовая загрузка кэша (например, при старте).
	WarmUp(ctx context.Context, bricks []*domain.Brick) error
}
