package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/bricklane/bricks-shop/internal/domain"
	"github.com/bricklane/bricks-shop/internal/ports"
	"github.com/bricklane/bricks-shop/pkg/metrics"
)

// Проверка, что LRUCacheTTL удовлетворяет интерфейсу BrickCache.
var _ ports.BrickCache = (*LRUCacheTTL)(nil)

type entry struct {
	article   string
	brick     *domain.Brick
	expiresAt time.Time
}

// LRUCacheTTL — потокобезопасный LRU-кэш каталога с TTL.
// ttl <= 0 отключает истечение по времени.
type LRUCacheTTL struct {
	capacity int
	ttl      time.Duration

	ll    *list.List
	index map[string]*list.Element

	mu sync.Mutex
}

func NewLRUCacheTTL(capacity int, ttl time.Duration) *LRUCacheTTL {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRUCacheTTL{
		capacity: capacity,
		ttl:      ttl,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
	}
}

// Get — вернуть позицию по артикулу; продлевает TTL при попадании.
func (c *LRUCacheTTL) Get(_ context.Context, article string) (*domain.Brick, bool) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[article]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	ent := elem.Value.(*entry)
	if c.isExpired(ent, now) {
		metrics.CacheOps.WithLabelValues("expired").Inc()
		c.removeElement(elem)
		metrics.CacheSize.Set(float64(len(c.index)))
		return nil, false
	}
	c.ll.MoveToFront(elem)

	if c.ttl > 0 {
		ent.expiresAt = c.expiryFrom(now)
	}

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return cloneBrick(ent.brick), true
}

// Set — сохранить/обновить позицию; при переполнении вытесняет LRU-хвост.
func (c *LRUCacheTTL) Set(_ context.Context, brick *domain.Brick) error {
	if brick == nil || brick.Article == "" {
		return nil
	}
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[brick.Article]; ok {
		ent := elem.Value.(*entry)
		ent.brick = cloneBrick(brick)
		ent.expiresAt = c.expiryFrom(now)
		c.ll.MoveToFront(elem)
		return nil
	}

	c.pruneExpiredFromBack(now)

	elem := c.ll.PushFront(&entry{
		article:   brick.Article,
		brick:     cloneBrick(brick),
		expiresAt: c.expiryFrom(now),
	})
	c.index[brick.Article] = elem
	metrics.CacheSize.Set(float64(len(c.index)))

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	return nil
}

// WarmUp — массовая загрузка (например, при старте).
func (c *LRUCacheTTL) WarmUp(ctx context.Context, bricks []*domain.Brick) error {
	for _, brick := range bricks {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.Set(ctx, brick); err != nil {
			return err
		}
	}
	return nil
}
