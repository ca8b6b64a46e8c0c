package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/bricklane/bricks-shop/internal/ports"
	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver name = "pgx"
	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// Migrate — применяет миграции схемы и возвращает управление только после
// их полного завершения. Подключение — собственное, короткоживущее, из "сырого"
// DSN: общий пул приложения здесь не используется, чтобы изменение инициализации
// пула не могло пропустить миграции. Логгер goose задаётся явно (DI),
// без скрытого глобального состояния.
func Migrate(ctx context.Context, dsn string, log ports.Logger) error {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(gooseLogger{ctx: ctx, log: log})

	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("goose set dialect: %w", err)
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

// gooseLogger — адаптер ports.Logger под goose.Logger.
type gooseLogger struct {
	ctx context.Context
	log ports.Logger
}

func (g gooseLogger) Printf(format string, v ...interface{}) {
	g.log.Infof(g.ctx, "goose: "+format, v...)
}

// Fatalf у goose вызывается только из CLI-сценариев; в библиотечном режиме
// трактуем его как ошибку в логе, завершение процесса решает вызывающий.
func (g gooseLogger) Fatalf(format string, v ...interface{}) {
	g.log.Errorf(g.ctx, "goose: "+format, v...)
}
