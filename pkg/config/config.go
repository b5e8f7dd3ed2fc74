package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP     HTTP
	Logger   Logger
	Backend  Backend
	Postgres Postgres
	Kafka    Kafka
	Mailer   Mailer
	Receipt  Receipt
}

type HTTP struct {
	Port int `env:"HTTP_PORT" envDefault:"8080"`
}

type Logger struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// Backend is the REST API that owns requisitions, fuel prices and user sessions.
type Backend struct {
	BaseURL              string        `env:"BACKEND_BASE_URL"`
	ServiceToken         string        `env:"BACKEND_SERVICE_TOKEN" envDefault:""` // used by background jobs
	Timeout              time.Duration `env:"BACKEND_TIMEOUT" envDefault:"30s"`
	PriceRetryAttempts   int           `env:"BACKEND_PRICE_RETRY_ATTEMPTS" envDefault:"3"`
	PriceRefreshInterval time.Duration `env:"BACKEND_PRICE_REFRESH_INTERVAL" envDefault:"10m"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN" envDefault:""` // empty disables the receipt journal
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type Kafka struct {
	Brokers             []string `env:"KAFKA_BROKERS" envDefault:""`
	VoucherSettledTopic string   `env:"KAFKA_VOUCHER_SETTLED_TOPIC" envDefault:"voucher-settled"`
}

type Mailer struct {
	Enabled    bool     `env:"MAILER_ENABLED" envDefault:"false"`
	Host       string   `env:"MAILER_HOST" envDefault:""`
	Port       int      `env:"MAILER_PORT" envDefault:"587"`
	Login      string   `env:"MAILER_LOGIN" envDefault:""`
	Password   string   `env:"MAILER_PASSWORD" envDefault:""`
	From       string   `env:"MAILER_FROM" envDefault:""`
	FromName   string   `env:"MAILER_FROM_NAME" envDefault:"NextFuel"`
	Recipients []string `env:"MAILER_RECIPIENTS" envDefault:""`
}

type Receipt struct {
	TimeZone string `env:"RECEIPT_TIME_ZONE" envDefault:"America/Sao_Paulo"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
