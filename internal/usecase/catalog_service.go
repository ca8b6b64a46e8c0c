package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bricklane/bricks-shop/internal/domain"
	"github.com/bricklane/bricks-shop/internal/ports"
	"github.com/bricklane/bricks-shop/pkg/validate"
)

// Проверка, что CatalogService удовлетворяет интерфейсу CatalogService.
var _ ports.CatalogService = (*CatalogService)(nil)

// CatalogService — прикладная логика каталога (без знаний о транспорте).
type CatalogService struct {
	repo      ports.BrickRepository // прямой доступ к хранилищу
	cache     ports.BrickCache      // прямой доступ к кэшу
	log       ports.Logger          // прямой доступ к логгеру
	validator ports.StockValidator  // прямой доступ к валидатору
}

// NewCatalogService — DI-конструктор.
func NewCatalogService(
	repo ports.BrickRepository,
	cache ports.BrickCache,
	log ports.Logger,
	validator ports.StockValidator,
) *CatalogService {
	return &CatalogService{
		repo:      repo,
		cache:     cache,
		log:       log,
		validator: validator,
	}
}

// GetBrick — получить позицию по артикулу: сначала из кэша, при промахе — из БД с записью в кэш.
// Возвращает (*Brick, nil) или (nil, nil), если записи нет.
func (s *CatalogService) GetBrick(ctx context.Context, article string) (*domain.Brick, error) {
	if brick, found := s.cache.Get(ctx, article); found {
		s.log.Infof(ctx, "cache hit for article=%s", article)
		return brick, nil
	}
	s.log.Infof(ctx, "cache miss for article=%s", article)

	start := time.Now()
	brick, err := s.repo.GetByArticle(ctx, article)
	if err != nil {
		s.log.Errorf(ctx, "repo.GetByArticle failed article=%s err=%v", article, err)
		return nil, err
	}

	if brick != nil {
		// Кэшируем результат
		if setErr := s.cache.Set(ctx, brick); setErr != nil {
			s.log.Warnf(ctx, "cache.Set failed article=%s err=%v", article, setErr)
		}
	}

	s.log.Infof(ctx, "db fetch article=%s took=%s", article, time.Since(start))
	return brick, nil
}

// ListBricks — проксирование в репозиторий (пагинация уже валидирована на верхнем уровне).
func (s *CatalogService) ListBricks(ctx context.Context, limit, offset int) ([]*domain.Brick, error) {
	return s.repo.List(ctx, limit, offset)
}

// SaveBrick — идемпотентное сохранение позиции каталога + обновление кэша.
func (s *CatalogService) SaveBrick(ctx context.Context, brick *domain.Brick) error {
	if brick == nil || brick.Article == "" {
		return fmt.Errorf("brick with article is required")
	}

	if err := s.repo.Upsert(ctx, brick); err != nil {
		s.log.Errorf(ctx, "repo.Upsert failed article=%s err=%v", brick.Article, err)
		return fmt.Errorf("failed to save brick: %w", err)
	}

	if err := s.cache.Set(ctx, brick); err != nil {
		s.log.Warnf(ctx, "cache.Set failed article=%s err=%v", brick.Article, err)
	}

	s.log.Infof(ctx, "brick saved article=%s stock=%d", brick.Article, brick.Stock)
	return nil
}

// ApplyStockMessage — применить сообщение об остатках, пришедшее из Kafka (raw JSON).
// Шаги:
//  1. строгий парсинг JSON (DisallowUnknownFields) —> отлавливаем незадокументированные поля;
//  2. доменная валидация (вернёт validate.ErrInvalidStockUpdate при проблемах);
//  3. применение к БД (абсолютный остаток, цена — только если PriceCents > 0);
//  4. положить обновлённую позицию в кэш.
func (s *CatalogService) ApplyStockMessage(ctx context.Context, raw []byte) error {
	upd, err := validate.ValidateStockFromJSON(ctx, s.validator, raw)
	if err != nil {
		s.log.Warnf(ctx, "stock message rejected err=%v", err)
		return err
	}

	brick, err := s.repo.ApplyStock(ctx, upd)
	if err != nil {
		s.log.Errorf(ctx, "repo.ApplyStock failed article=%s err=%v", upd.Article, err)
		return fmt.Errorf("failed to apply stock: %w", err)
	}
	if brick == nil {
		// Неизвестный артикул — сообщение считаем обработанным, но в кэш класть нечего.
		s.log.Warnf(ctx, "stock update for unknown article=%s skipped", upd.Article)
		return nil
	}

	if setErr := s.cache.Set(ctx, brick); setErr != nil {
		s.log.Warnf(ctx, "cache.Set failed article=%s err=%v", brick.Article, setErr)
	}

	s.log.Infof(ctx, "stock applied article=%s stock=%d", brick.Article, brick.Stock)
	return nil
}

// WarmUpCache — прогрев кэша последними N обновлёнными позициями из БД.
// Если n <= 0, прогрев не выполняется (но это не ошибка).
func (s *CatalogService) WarmUpCache(ctx context.Context, n int) error {
	if n <= 0 {
		s.log.Warnf(ctx, "cache warm-up skipped: n <= 0 (n=%d)", n)
		return nil
	}

	start := time.Now()
	list, err := s.repo.LastUpdated(ctx, n)
	if err != nil {
		s.log.Errorf(ctx, "repo.LastUpdated failed n=%d err=%v", n, err)
		return err
	}
	if warmUpErr := s.cache.WarmUp(ctx, list); warmUpErr != nil {
		s.log.Warnf(ctx, "cache.WarmUp failed err=%v", warmUpErr)
	}
	s.log.Infof(ctx, "cache warmed with %d bricks in %s", len(list), time.Since(start))
	return nil
}
