package config

import (
	"net/url"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// HTTP — настройки HTTP-сервера.
// IdleTimeout по умолчанию 0 (бесконечный): ответы могут быть долгоживущими
// стримами, и сервер не должен рвать их по таймеру простоя.
type HTTP struct {
	Addr              string        `default:":8080" envconfig:"ADDR"`
	GinMode           string        `default:"debug" envconfig:"GIN_MODE"`
	ReadTimeout       time.Duration `default:"0" envconfig:"READ_TIMEOUT"`
	WriteTimeout      time.Duration `default:"0" envconfig:"WRITE_TIMEOUT"`
	ReadHeaderTimeout time.Duration `default:"5s" envconfig:"READ_HEADER_TIMEOUT"`
	IdleTimeout       time.Duration `default:"0" envconfig:"IDLE_TIMEOUT"`
	HandlerTimeout    time.Duration `default:"3s" envconfig:"HANDLER_TIMEOUT"`
	GracefulTimeout   time.Duration `default:"5s" envconfig:"GRACEFUL_TIMEOUT"`
}

type Metrics struct {
	Addr string `default:":2112" envconfig:"ADDR"`
}

// Postgres — обязательная тройка: URL базы + учётные данные.
// Отсутствие любого из трёх ключей — ошибка конфигурации до захвата ресурсов.
type Postgres struct {
	URL      string `envconfig:"URL" required:"true"`
	User     string `envconfig:"USER" required:"true"`
	Password string `envconfig:"PASSWORD" required:"true"`
	MaxConns int32  `default:"10" envconfig:"MAX_CONNS"`
	MinConns int32  `default:"0" envconfig:"MIN_CONNS"`
}

// DSN — собирает строку подключения из URL и учётных данных.
func (p Postgres) DSN() string {
	u, err := url.Parse(p.URL)
	if err != nil {
		return p.URL
	}
	u.User = url.UserPassword(p.User, p.Password)
	return u.String()
}

type Kafka struct {
	Brokers        []string      `default:"kafka:9092" envconfig:"BROKERS"`
	Topic          string        `default:"bricks-stock" envconfig:"TOPIC"`
	GroupID        string        `default:"bricks-shop" envconfig:"GROUP_ID"`
	StartOffset    string        `default:"last" envconfig:"START_OFFSET"`
	ProcessTimeout time.Duration `default:"5s" envconfig:"PROCESS_TIMEOUT"`
	RetryInitial   time.Duration `default:"1s" envconfig:"RETRY_INITIAL"`
	RetryMax       time.Duration `default:"30s" envconfig:"RETRY_MAX"`
}

type Cache struct {
	Capacity int           `default:"1000" envconfig:"CAPACITY"`
	TTL      time.Duration `default:"10m" envconfig:"TTL"`
	WarmUpN  int           `default:"100" envconfig:"WARM_UP_N"`
}

type Tracing struct {
	Enabled     bool    `default:"false" envconfig:"OTEL_ENABLED"`
	ServiceName string  `default:"bricks-shop" envconfig:"OTEL_SERVICE_NAME"`
	Endpoint    string  `default:"jaeger:4318" envconfig:"OTEL_ENDPOINT"`
	SampleRatio float64 `default:"1" envconfig:"OTEL_SAMPLE_RATIO"`
}

type Logger struct {
	IsProd bool `default:"false" envconfig:"IS_PROD"`
}

type Config struct {
	HTTP     HTTP
	Metrics  Metrics
	Postgres Postgres
	Kafka    Kafka
	Cache    Cache
	Tracing  Tracing
	Logger   Logger
}

// Load — конфигурация процесса из окружения с префиксом BRICKS.
func Load() (Config, error) { return LoadWithPrefix("BRICKS") }

// LoadWithPrefix — то же с произвольным префиксом (используется в тестах,
// чтобы не пересекаться с окружением процесса).
func LoadWithPrefix(prefix string) (Config, error) {
	var c Config
	if err := envconfig.Process(prefix, &c); err != nil {
		return Config{}, err
	}
	return c, nil
}
