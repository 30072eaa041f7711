package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Postgres Postgres `validate:"required"`

	PayHere PayHere `validate:"required"`

	SMTP SMTP `validate:"required"`

	JWT JWT `validate:"required"`

	Mail Mail

	Cache Cache
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MigrationsPath string `validate:"required"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

type PayHere struct {
	MerchantID string `validate:"required"`
	Secret     string `validate:"required"`
	Currency   string `validate:"required,len=3"`

	// Base URLs used to build the return/cancel/notify redirect endpoints.
	FrontendURL string `validate:"required,url"`
	BackendURL  string `validate:"required,url"`
}

type SMTP struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	User     string `validate:"required"`
	Password string `validate:"required"`
	From     string `validate:"required"`

	Timeout time.Duration `validate:"gt=0"`
}

type JWT struct {
	Secret string `validate:"required"`
}

type Mail struct {
	MaxAttempts int           `validate:"gte=1"`
	RetryDelay  time.Duration `validate:"gte=0"`

	// DispatchTimeout bounds a whole background dispatch, lookups included.
	DispatchTimeout time.Duration `validate:"gt=0"`
}

type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "fashion"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MigrationsPath: env("MIGRATIONS_PATH", "./migrations"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		PayHere: PayHere{
			MerchantID: env("PAYHERE_MERCHANT_ID", ""),
			Secret:     env("PAYHERE_SECRET", ""),
			Currency:   env("PAYHERE_CURRENCY", "LKR"),

			FrontendURL: env("FRONTEND_URL", "http://localhost:3000"),
			BackendURL:  env("BACKEND_URL", "http://localhost:8080"),
		},

		SMTP: SMTP{
			Host:     env("SMTP_HOST", "localhost"),
			Port:     envInt("SMTP_PORT", 587),
			User:     env("SMTP_USER", ""),
			Password: env("SMTP_PASS", ""),
			From:     env("SMTP_FROM", ""),

			Timeout: envDuration("SMTP_TIMEOUT", 30*time.Second),
		},

		JWT: JWT{
			Secret: env("JWT_SECRET", ""),
		},

		Mail: Mail{
			MaxAttempts:     envInt("MAIL_MAX_ATTEMPTS", 3),
			RetryDelay:      envDuration("MAIL_RETRY_DELAY", 2*time.Second),
			DispatchTimeout: envDuration("MAIL_DISPATCH_TIMEOUT", 2*time.Minute),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", 10*time.Minute),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
