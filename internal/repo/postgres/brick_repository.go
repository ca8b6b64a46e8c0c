package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/bricklane/bricks-shop/internal/domain"
	"github.com/bricklane/bricks-shop/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что BrickRepository удовлетворяет интерфейсу BrickRepository.
var _ ports.BrickRepository = (*BrickRepository)(nil)

// BrickRepository — реализация репозитория каталога на Postgres (pgxpool).
type BrickRepository struct {
	pool *pgxpool.Pool
}

// NewBrickRepository — конструктор BrickRepository.
func NewBrickRepository(pool *pgxpool.Pool) *BrickRepository { return &BrickRepository{pool: pool} }

// GetByArticle — получить позицию по артикулу. Если не нашли, возвращает (nil, nil).
func (r *BrickRepository) GetByArticle(ctx context.Context, article string) (*domain.Brick, error) {
	var b domain.Brick

	err := r.pool.QueryRow(ctx, `
		SELECT article, name, color, category, price_cents, stock, updated_at
		FROM bricks WHERE article = $1
	`, article).Scan(&b.Article, &b.Name, &b.Color, &b.Category, &b.PriceCents, &b.Stock, &b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select brick: %w", err)
	}
	return &b, nil
}

// List — постраничный список каталога (стабильный порядок по артикулу).
func (r *BrickRepository) List(ctx context.Context, limit, offset int) ([]*domain.Brick, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.pool.Query(ctx, `
		SELECT article, name, color, category, price_cents, stock, updated_at
		FROM bricks
		ORDER BY article
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("select bricks: %w", err)
	}
	defer rows.Close()

	bricks := make([]*domain.Brick, 0, limit)
	for rows.Next() {
		b := &domain.Brick{}
		if err := rows.Scan(&b.Article, &b.Name, &b.Color, &b.Category, &b.PriceCents, &b.Stock, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan brick: %w", err)
		}
		bricks = append(bricks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("bricks rows: %w", err)
	}
	return bricks, nil
}

// Upsert — идемпотентная вставка/обновление по артикулу (PRIMARY KEY).
func (r *BrickRepository) Upsert(ctx context.Context, brick *domain.Brick) error {
	if brick == nil || brick.Article == "" {
		return errors.New("brick is empty or article is required")
	}

	if _, err := r.pool.Exec(ctx, `
		INSERT INTO bricks (article, name, color, category, price_cents, stock, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (article) DO UPDATE SET
			name = EXCLUDED.name,
			color = EXCLUDED.color,
			category = EXCLUDED.category,
			price_cents = EXCLUDED.price_cents,
			stock = EXCLUDED.stock,
			updated_at = now()
	`, brick.Article, brick.Name, brick.Color, brick.Category, brick.PriceCents, brick.Stock); err != nil {
		return fmt.Errorf("upsert brick: %w", err)
	}
	return nil
}

// ApplyStock — применяет обновление остатка (и цены, если она задана) и
// возвращает актуальную строку. Для неизвестного артикула — (nil, nil).
func (r *BrickRepository) ApplyStock(ctx context.Context, upd *domain.StockUpdate) (*domain.Brick, error) {
	if upd == nil || upd.Article == "" {
		return nil, errors.New("stock update is empty or article is required")
	}

	var b domain.Brick
	err := r.pool.QueryRow(ctx, `
		UPDATE bricks SET
			stock = $2,
			price_cents = CASE WHEN $3::bigint > 0 THEN $3 ELSE price_cents END,
			updated_at = now()
		WHERE article = $1
		RETURNING article, name, color, category, price_cents, stock, updated_at
	`, upd.Article, upd.Stock, upd.PriceCents).Scan(
		&b.Article, &b.Name, &b.Color, &b.Category, &b.PriceCents, &b.Stock, &b.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("apply stock: %w", err)
	}
	return &b, nil
}

// LastUpdated — N последних обновлённых позиций (для прогрева кэша).
func (r *BrickRepository) LastUpdated(ctx context.Context, n int) ([]*domain.Brick, error) {
	if n <= 0 {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT article, name, color, category, price_cents, stock, updated_at
		FROM bricks
		ORDER BY updated_at DESC
		LIMIT $1
	`, n)
	if err != nil {
		return nil, fmt.Errorf("select last bricks: %w", err)
	}
	defer rows.Close()

	var result []*domain.Brick
	for rows.Next() {
		b := &domain.Brick{}
		if err := rows.Scan(&b.Article, &b.Name, &b.Color, &b.Category, &b.PriceCents, &b.Stock, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan brick: %w", err)
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("last rows: %w", err)
	}
	return result, nil
}
