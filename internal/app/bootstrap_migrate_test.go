package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bricklane/bricks-shop/config"
	"github.com/bricklane/bricks-shop/internal/ports"
)

// Ошибка миграции: Bootstrap возвращает ошибку до создания HTTP-сервера,
// а уже захваченный пул освобождается стеком.
func TestBootstrap_MigrationFailure_NoServerAndPoolReleased(t *testing.T) {
	t.Setenv("BRICKS_POSTGRES_URL", "postgres://127.0.0.1:1/bricks")
	t.Setenv("BRICKS_POSTGRES_USER", "bricks")
	t.Setenv("BRICKS_POSTGRES_PASSWORD", "secret")

	origPool, origMigrate := newPoolFn, migrateFn
	t.Cleanup(func() { newPoolFn, migrateFn = origPool, origMigrate })

	// ленивый пул без Ping: до БД дело не дойдёт, закрыть его Bootstrap обязан сам
	var captured *pgxpool.Pool
	newPoolFn = func(ctx context.Context, dsn string, _, _ int32) (*pgxpool.Pool, error) {
		p, err := pgxpool.New(ctx, dsn)
		captured = p
		return p, err
	}

	errMigrate := errors.New("migration broken")
	migrateFn = func(context.Context, string, ports.Logger) error { return errMigrate }

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	a, cleanup, err := Bootstrap(context.Background(), &cfg)
	if !errors.Is(err, errMigrate) {
		t.Fatalf("want migration error, got %v", err)
	}
	if a != nil {
		t.Fatalf("no app (and no http.Server) must be constructed on migration failure, got %+v", a)
	}
	if cleanup != nil {
		cleanup() // возвращённая заглушка безопасна для вызова
	}

	if captured == nil {
		t.Fatal("pool was never acquired")
	}
	// Acquire на закрытом пуле сразу возвращает "closed pool" — пул освобождён стеком
	// (ошибка подключения выглядела бы иначе).
	if _, aErr := captured.Acquire(context.Background()); aErr == nil || !strings.Contains(aErr.Error(), "closed pool") {
		t.Fatalf("pool must be closed after migration failure, Acquire err=%v", aErr)
	}
}
