package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"orderhub/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	LogLevel   slog.Level

	CORSAllowedOrigins []string

	LockTimeout     time.Duration
	CreditCacheSize int
	CreditCacheTTL  time.Duration

	KafkaHost              string
	KafkaOrderChangedTopic string
	NotifyTimeout          time.Duration

	ReconciliationSchedule string
}

// LoadConfig reads .env when present and then the process environment.
func LoadConfig(getenv func(string) string) (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return ConfigFromEnv(getenv)
}

// ConfigFromEnv builds a Config from getenv, applying defaults and validating
// every value.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	env := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	cfg := Config{
		HTTPPort:               env("HTTP_PORT", "8080"),
		DBHost:                 env("DB_HOST", "localhost"),
		DBPort:                 env("DB_PORT", "5432"),
		DBUser:                 env("DB_USER", ""),
		DBPassword:             env("DB_PASSWORD", ""),
		DBName:                 env("DB_NAME", ""),
		DBSslMode:              env("DB_SSLMODE", "disable"),
		KafkaHost:              env("KAFKA_HOST", ""),
		KafkaOrderChangedTopic: env("KAFKA_ORDER_CHANGED_TOPIC", "orders.status.changed"),
		ReconciliationSchedule: env("RECONCILIATION_SCHEDULE", jobs.DefaultReconciliationSchedule),
	}

	for _, origin := range strings.Split(env("CORS_ALLOWED_ORIGINS", "*"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	var errList []error

	if err := cfg.LogLevel.UnmarshalText([]byte(env("LOG_LEVEL", "INFO"))); err != nil {
		errList = append(errList, fmt.Errorf("LOG_LEVEL: %w", err))
	}

	duration := func(key, def string, target *time.Duration) {
		d, err := time.ParseDuration(env(key, def))
		switch {
		case err != nil:
			errList = append(errList, fmt.Errorf("%s: %w", key, err))
		case d <= 0:
			errList = append(errList, fmt.Errorf("%s: must be positive, got %s", key, d))
		default:
			*target = d
		}
	}
	duration("LOCK_TIMEOUT", "2s", &cfg.LockTimeout)
	duration("CREDIT_CACHE_TTL", "30s", &cfg.CreditCacheTTL)
	duration("NOTIFY_TIMEOUT", "5s", &cfg.NotifyTimeout)

	size, err := strconv.Atoi(env("CREDIT_CACHE_SIZE", "1024"))
	switch {
	case err != nil:
		errList = append(errList, fmt.Errorf("CREDIT_CACHE_SIZE: %w", err))
	case size <= 0:
		errList = append(errList, fmt.Errorf("CREDIT_CACHE_SIZE: must be positive, got %d", size))
	default:
		cfg.CreditCacheSize = size
	}

	if _, err = strconv.Atoi(cfg.HTTPPort); err != nil {
		errList = append(errList, fmt.Errorf("HTTP_PORT: %w", err))
	}

	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	if _, err = parser.Parse(cfg.ReconciliationSchedule); err != nil {
		errList = append(errList, fmt.Errorf("RECONCILIATION_SCHEDULE: %w", err))
	}

	if err = errors.Join(errList...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DSN is the PostgreSQL connection string for gorm's postgres driver.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// KafkaEnabled reports whether status changes are published to Kafka.
func (c Config) KafkaEnabled() bool {
	return c.KafkaHost != ""
}
