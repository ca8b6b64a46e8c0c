//go:build integration

package migrations_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/bricklane/bricks-shop/internal/testutil"
	"github.com/bricklane/bricks-shop/migrations"
)

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

// Migrate идемпотентен: повторный прогон на уже мигрированной схеме — no-op,
// все таблицы на месте.
func TestMigrate_Idempotent_TC(t *testing.T) {
	t.Parallel()

	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	defer func() { _ = stopPG(context.Background()) }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	require.NoError(t, migrations.Migrate(ctx, pg.DSN, nopLogger{}))
	// второй прогон — без ошибок
	require.NoError(t, migrations.Migrate(ctx, pg.DSN, nopLogger{}))

	pool, err := pgxpool.New(ctx, pg.DSN)
	require.NoError(t, err)
	defer pool.Close()

	for _, table := range []string{"bricks", "cart_items", "orders", "order_items"} {
		var exists bool
		require.NoError(t, pool.QueryRow(ctx, `
			SELECT EXISTS (
				SELECT 1 FROM information_schema.tables
				WHERE table_schema = 'public' AND table_name = $1
			)
		`, table).Scan(&exists))
		require.True(t, exists, "table %s must exist after migrations", table)
	}
}
