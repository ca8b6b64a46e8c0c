package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bricklane/bricks-shop/config"
	cachemem "github.com/bricklane/bricks-shop/internal/cache/memory"
	"github.com/bricklane/bricks-shop/internal/kafka"
	"github.com/bricklane/bricks-shop/internal/ports"
	"github.com/bricklane/bricks-shop/internal/repo/postgres"
	rest "github.com/bricklane/bricks-shop/internal/transport/http"
	"github.com/bricklane/bricks-shop/internal/usecase"
	"github.com/bricklane/bricks-shop/migrations"
	"github.com/bricklane/bricks-shop/pkg/logger"
	"github.com/bricklane/bricks-shop/pkg/metrics"
	"github.com/bricklane/bricks-shop/pkg/telemetry"
	"github.com/bricklane/bricks-shop/pkg/validate"
)

// App — собранное приложение и его внешние интерфейсы (HTTP, consumer).
type App struct {
	Logger          ports.Logger          // логгер
	HTTPServer      *http.Server          // HTTP-сервер
	KafkaConsumer   ports.MessageConsumer // консьюмер сообщений
	gracefulTimeout time.Duration         // время ожидания завершения HTTP-сервера
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// Сшивки жизненного цикла: пул и миграции подменяются в unit-тестах,
// в проде здесь всегда реальные реализации.
var (
	newPoolFn = postgres.NewPool
	migrateFn = migrations.Migrate
)

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// newHTTPServer — HTTP-сервер из конфигурации. Нулевые таймауты у net/http
// означают отсутствие лимита: IdleTimeout=0 (дефолт конфигурации) держит
// простаивающие keep-alive соединения бессрочно.
func newHTTPServer(cfg config.HTTP, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
// Порядок захвата: логгер → метрики → пул → миграции → трейсинг → сервисы →
// роутер → HTTP-сервер → консьюмер; освобождение — строго обратное (closerStack).
// Миграции выполняются ДО создания HTTP-сервера: ни один запрос не должен
// попасть на немигрированную схему.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	stack := &closerStack{}

	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}
	stack.push(func() { _ = cleanupLogger() })

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Пул подключений Postgres.
	dsn := cfg.Postgres.DSN()
	pool, err := newPoolFn(ctx, dsn, cfg.Postgres.MaxConns, cfg.Postgres.MinConns)
	if err != nil {
		stack.close()
		return nil, func() {}, err
	}
	stack.push(pool.Close)

	// Миграции схемы (goose, на собственном соединении поверх pgx stdlib).
	// Ошибка миграции освобождает пул и не даёт подняться listener'у.
	if err := migrateFn(ctx, dsn, logg); err != nil {
		stack.close()
		return nil, func() {}, err
	}

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	if cfg.Tracing.Enabled {
		shutdownTrace, tErr := telemetry.SetupTracing(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			stack.push(func() {
				if terr := shutdownTrace(context.Background()); terr != nil {
					logg.Warnf(ctx, "shutdown tracing: %v", terr)
				}
			})
		}
	}

	// Сборка зависимостей доменного слоя.
	brickCache := cachemem.NewLRUCacheTTL(cfg.Cache.Capacity, cfg.Cache.TTL)
	brickRepo := postgres.NewBrickRepository(pool)
	cartRepo := postgres.NewCartRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)

	catalogService := usecase.NewCatalogService(brickRepo, brickCache, logg, validate.NewStockValidator())
	cartService := usecase.NewCartService(cartRepo, brickRepo, logg)
	orderService := usecase.NewOrderService(orderRepo, logg)

	// Прогрев кэша последними обновлёнными позициями.
	if n := cfg.Cache.WarmUpN; n > 0 {
		if err := catalogService.WarmUpCache(ctx, n); err != nil {
			logg.Warnf(ctx, "warm-up cache failed: %v", err)
		}
	}

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер. IdleTimeout по умолчанию 0 — бесконечный:
	// долгоживущие соединения не рвутся по таймеру простоя.
	httpHandler := rest.NewHandler(catalogService, cartService, orderService, logg, cfg.HTTP.HandlerTimeout)
	router := rest.NewRouter(httpHandler, "./web", otelServiceName)

	httpSrv := newHTTPServer(cfg.HTTP, router)

	// Конфигурация и создание консьюмера Kafka.
	kafkaCfg := kafka.ConsumerConfig{
		Brokers:        cfg.Kafka.Brokers,
		GroupID:        cfg.Kafka.GroupID,
		Topic:          cfg.Kafka.Topic,
		StartOffset:    cfg.Kafka.StartOffset,
		ProcessTimeout: cfg.Kafka.ProcessTimeout,
		RetryInitial:   cfg.Kafka.RetryInitial,
		RetryMax:       cfg.Kafka.RetryMax,
	}
	consumer := kafka.NewConsumer(&kafkaCfg, catalogService, logg)
	stack.push(func() {
		if err := consumer.Close(); err != nil {
			logg.Warnf(ctx, "kafka consumer close error: %v", err)
		}
	})

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		KafkaConsumer:   consumer,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	return app, stack.close, nil
}

// Run — запускает HTTP-сервер и консьюмера; ждёт отмены контекста или ошибки и останавливает их.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 2)

	// Запуск консьюмера.
	go func() {
		a.Logger.Infof(ctx, "kafka consumer starting")
		if err := a.KafkaConsumer.Run(ctx); err != nil {
			errCh <- err
		}
	}()

	// Запуск HTTP-сервера.
	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Ожидание сигнала остановки или фоновой ошибки.
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			a.Logger.Infof(ctx, "background component stopped: %v", err)
		} else {
			a.Logger.Warnf(ctx, "background error: %v", err)
		}
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-сервера: активные запросы дорабатывают.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	// Остановка Kafka-консьюмера
	if err := a.KafkaConsumer.Close(); err != nil {
		a.Logger.Warnf(ctx, "kafka consumer close error: %v", err)
	}

	a.Logger.Infof(ctx, "service stopped")
	return nil
}
