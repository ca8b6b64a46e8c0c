//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/bricklane/bricks-shop/internal/domain"
	pgrepo "github.com/bricklane/bricks-shop/internal/repo/postgres"
	"github.com/bricklane/bricks-shop/internal/testutil"
)

// newRepoPool — Postgres в контейнере + миграции + пул на тест.
// Остановка контейнера и закрытие пула — через t.Cleanup.
func newRepoPool(t *testing.T) (context.Context, *pgxpool.Pool) {
	t.Helper()

	// длинный контекст — только на подъём контейнера
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	t.Cleanup(cancelStart)

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopPG(context.Background()) })

	// миграции
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	// короткий контекст — на сами БД-операции
	ctxTest, cancelTest := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancelTest)

	pool, err := pgxpool.New(ctxTest, pg.DSN)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return ctxTest, pool
}

// 1) Upsert + GetByArticle: вставка, чтение, повторный Upsert обновляет поля.
func TestBrickRepo_UpsertAndGet_TC(t *testing.T) {
	t.Parallel()

	ctx, pool := newRepoPool(t)
	repo := pgrepo.NewBrickRepository(pool)

	b := testutil.MakeBrick()
	require.NoError(t, repo.Upsert(ctx, &b))

	got, err := repo.GetByArticle(ctx, b.Article)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, b.Article, got.Article)
	require.Equal(t, b.Name, got.Name)
	require.Equal(t, b.PriceCents, got.PriceCents)
	require.Equal(t, b.Stock, got.Stock)

	// неизвестный артикул — (nil, nil), не ошибка
	missing, err := repo.GetByArticle(ctx, "BRK-no-such")
	require.NoError(t, err)
	require.Nil(t, missing)

	// повторный Upsert — апдейт по артикулу
	b.Name = "Brick 2x4 renamed"
	b.Stock = 7
	require.NoError(t, repo.Upsert(ctx, &b))

	got, err = repo.GetByArticle(ctx, b.Article)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "Brick 2x4 renamed", got.Name)
	require.Equal(t, 7, got.Stock)
}

// 2) ApplyStock: остаток меняется всегда, цена — только при PriceCents > 0.
func TestBrickRepo_ApplyStock_TC(t *testing.T) {
	t.Parallel()

	ctx, pool := newRepoPool(t)
	repo := pgrepo.NewBrickRepository(pool)

	b := testutil.MakeBrick(testutil.WithPriceCents(499), testutil.WithStock(100))
	require.NoError(t, repo.Upsert(ctx, &b))

	// PriceCents=0 — «цену не трогать»
	upd := testutil.MakeStockUpdate(b.Article, 42)
	got, err := repo.ApplyStock(ctx, &upd)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, 42, got.Stock)
	require.Equal(t, int64(499), got.PriceCents)

	// PriceCents>0 — и остаток, и цена
	upd = testutil.MakeStockUpdate(b.Article, 10)
	upd.PriceCents = 999
	got, err = repo.ApplyStock(ctx, &upd)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, 10, got.Stock)
	require.Equal(t, int64(999), got.PriceCents)

	// неизвестный артикул — (nil, nil)
	missUpd := testutil.MakeStockUpdate("BRK-no-such", 1)
	miss, err := repo.ApplyStock(ctx, &missUpd)
	require.NoError(t, err)
	require.Nil(t, miss)
}

// 3) List (порядок по артикулу, limit/offset) и LastUpdated (порядок по updated_at).
func TestBrickRepo_ListAndLastUpdated_TC(t *testing.T) {
	t.Parallel()

	ctx, pool := newRepoPool(t)
	repo := pgrepo.NewBrickRepository(pool)

	suffix := testutil.UniqSuffix()
	articles := []string{"A-" + suffix, "B-" + suffix, "C-" + suffix}
	for _, article := range articles {
		b := testutil.MakeBrick(testutil.WithArticle(article))
		require.NoError(t, repo.Upsert(ctx, &b))
	}

	page, err := repo.List(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.Equal(t, articles[0], page[0].Article)
	require.Equal(t, articles[1], page[1].Article)

	page, err = repo.List(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	require.Equal(t, articles[2], page[0].Article)

	// последним обновляли C — он и должен быть первым
	last, err := repo.LastUpdated(ctx, 1)
	require.NoError(t, err)
	require.Len(t, last, 1)
	require.Equal(t, articles[2], last[0].Article)

	// n<=0 — пустой результат без похода в БД
	none, err := repo.LastUpdated(ctx, 0)
	require.NoError(t, err)
	require.Nil(t, none)
}

// 4) Корзина: повторный UpsertItem наращивает qty, RemoveItem чистит строку.
func TestCartRepo_UpsertAccumulateAndRemove_TC(t *testing.T) {
	t.Parallel()

	ctx, pool := newRepoPool(t)
	bricks := pgrepo.NewBrickRepository(pool)
	carts := pgrepo.NewCartRepository(pool)

	customer := "customer-" + testutil.UniqSuffix()
	b := testutil.MakeBrick(testutil.WithPriceCents(500))
	require.NoError(t, bricks.Upsert(ctx, &b))

	require.NoError(t, carts.UpsertItem(ctx, customer, b.Article, 2))
	require.NoError(t, carts.UpsertItem(ctx, customer, b.Article, 3))

	cart, err := carts.GetByCustomer(ctx, customer)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.Equal(t, 5, cart.Items[0].Qty)
	require.Equal(t, int64(2500), cart.TotalCents)

	require.NoError(t, carts.RemoveItem(ctx, customer, b.Article))

	cart, err = carts.GetByCustomer(ctx, customer)
	require.NoError(t, err)
	require.Empty(t, cart.Items)
	require.Equal(t, int64(0), cart.TotalCents)

	// удаление отсутствующей строки — не ошибка
	require.NoError(t, carts.RemoveItem(ctx, customer, b.Article))
}

// 5) Checkout: заказ собран, остатки списаны, корзина пуста, заказ читается.
func TestCartRepo_Checkout_TC(t *testing.T) {
	t.Parallel()

	ctx, pool := newRepoPool(t)
	bricks := pgrepo.NewBrickRepository(pool)
	carts := pgrepo.NewCartRepository(pool)
	orders := pgrepo.NewOrderRepository(pool)

	customer := "customer-" + testutil.UniqSuffix()
	b1 := testutil.MakeBrick(testutil.WithPriceCents(500), testutil.WithStock(10))
	b2 := testutil.MakeBrick(testutil.WithPriceCents(300), testutil.WithStock(4))
	require.NoError(t, bricks.Upsert(ctx, &b1))
	require.NoError(t, bricks.Upsert(ctx, &b2))

	require.NoError(t, carts.UpsertItem(ctx, customer, b1.Article, 3))
	require.NoError(t, carts.UpsertItem(ctx, customer, b2.Article, 4))

	uid := uuid.NewString()
	order, err := carts.Checkout(ctx, customer, uid)
	require.NoError(t, err)
	require.NotNil(t, order)
	require.Equal(t, uid, order.OrderUID)
	require.Equal(t, domain.OrderStatusCreated, order.Status)
	require.Len(t, order.Items, 2)
	require.Equal(t, int64(3*500+4*300), order.TotalCents)

	// остатки списаны
	got1, err := bricks.GetByArticle(ctx, b1.Article)
	require.NoError(t, err)
	require.Equal(t, 7, got1.Stock)
	got2, err := bricks.GetByArticle(ctx, b2.Article)
	require.NoError(t, err)
	require.Equal(t, 0, got2.Stock)

	// корзина пуста
	cart, err := carts.GetByCustomer(ctx, customer)
	require.NoError(t, err)
	require.Empty(t, cart.Items)

	// заказ читается и по uid, и в списке клиента
	saved, err := orders.GetByUID(ctx, uid)
	require.NoError(t, err)
	require.NotNil(t, saved)
	require.Equal(t, order.TotalCents, saved.TotalCents)
	require.Len(t, saved.Items, 2)

	list, err := orders.ListByCustomer(ctx, customer, 10, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, uid, list[0].OrderUID)
	require.Len(t, list[0].Items, 2)
}

// 6) Checkout пустой корзины — ErrEmptyCart, заказа нет.
func TestCartRepo_Checkout_EmptyCart_TC(t *testing.T) {
	t.Parallel()

	ctx, pool := newRepoPool(t)
	carts := pgrepo.NewCartRepository(pool)
	orders := pgrepo.NewOrderRepository(pool)

	uid := uuid.NewString()
	order, err := carts.Checkout(ctx, "customer-"+testutil.UniqSuffix(), uid)
	require.ErrorIs(t, err, domain.ErrEmptyCart)
	require.Nil(t, order)

	saved, err := orders.GetByUID(ctx, uid)
	require.NoError(t, err)
	require.Nil(t, saved)
}

// 7) Нехватка остатка: транзакция откатывается целиком —
// остатки и корзина остаются как были, заказ не создан.
func TestCartRepo_Checkout_InsufficientStock_TC(t *testing.T) {
	t.Parallel()

	ctx, pool := newRepoPool(t)
	bricks := pgrepo.NewBrickRepository(pool)
	carts := pgrepo.NewCartRepository(pool)
	orders := pgrepo.NewOrderRepository(pool)

	customer := "customer-" + testutil.UniqSuffix()
	ok := testutil.MakeBrick(testutil.WithStock(10))
	scarce := testutil.MakeBrick(testutil.WithStock(2))
	require.NoError(t, bricks.Upsert(ctx, &ok))
	require.NoError(t, bricks.Upsert(ctx, &scarce))

	require.NoError(t, carts.UpsertItem(ctx, customer, ok.Article, 1))
	require.NoError(t, carts.UpsertItem(ctx, customer, scarce.Article, 5))

	uid := uuid.NewString()
	order, err := carts.Checkout(ctx, customer, uid)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	require.Nil(t, order)

	// ничего не списано, даже по позиции с достаточным остатком
	gotOK, err := bricks.GetByArticle(ctx, ok.Article)
	require.NoError(t, err)
	require.Equal(t, 10, gotOK.Stock)
	gotScarce, err := bricks.GetByArticle(ctx, scarce.Article)
	require.NoError(t, err)
	require.Equal(t, 2, gotScarce.Stock)

	// корзина не тронута
	cart, err := carts.GetByCustomer(ctx, customer)
	require.NoError(t, err)
	require.Len(t, cart.Items, 2)

	saved, err := orders.GetByUID(ctx, uid)
	require.NoError(t, err)
	require.Nil(t, saved)
}
