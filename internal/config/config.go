package config

import (
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config stores service settings.
type Config struct {
	Port       int
	LogLevel   string
	DB         DB
	Redis      Redis
	Kafka      Kafka
	Dispatch   Dispatch
	StoreRetry StoreRetry
	RateLimit  RateLimit
	CORS       CORS
}

// DB stores Postgres connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN returns a pgx connection string.
func (d DB) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Pass),
		Host:     net.JoinHostPort(d.Host, d.Port),
		Path:     "/" + d.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// Redis stores assignment cache settings. An empty Addr disables the cache.
type Redis struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// Enabled reports whether the cache is configured.
func (r Redis) Enabled() bool { return strings.TrimSpace(r.Addr) != "" }

// Kafka stores broker settings for the order-paid consumer and the rider notifier.
type Kafka struct {
	Brokers     []string
	GroupID     string
	OrdersTopic string
	NotifyTopic string
}

// Dispatch stores rider matching and sweep settings.
type Dispatch struct {
	RiderStaleness time.Duration
	StoreTimeout   time.Duration
	SweepInterval  time.Duration
	SweepBatch     int
}

// StoreRetry stores retry settings for order lookups.
type StoreRetry struct {
	MaxAttempts int
	MinDelay    time.Duration
	MaxDelay    time.Duration
}

// RateLimit stores per-client rate limiting settings for the dispatch route.
type RateLimit struct {
	Enabled bool
	Rate    float64
	Burst   int
	TTL     time.Duration
}

// CORS stores allowed origins for the dispatch route.
type CORS struct {
	AllowedOrigins []string
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:       DefaultPort(),
		LogLevel:   defaultLogLevel,
		DB:         DefaultDB(),
		Redis:      DefaultRedis(),
		Dispatch:   DefaultDispatch(),
		StoreRetry: DefaultStoreRetry(),
		RateLimit:  DefaultRateLimit(),
		CORS:       DefaultCORS(),
	}

	if err := loadEnv(cfg); err != nil {
		return nil, err
	}

	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	pflag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	if err := pflag.CommandLine.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadEnv(cfg *Config) error {
	var err error

	if cfg.Port, err = envInt("PORT", cfg.Port); err != nil {
		return err
	}
	cfg.LogLevel = envString("LOG_LEVEL", cfg.LogLevel)

	cfg.DB.Host = envString("POSTGRES_HOST", cfg.DB.Host)
	cfg.DB.Port = envString("POSTGRES_PORT", cfg.DB.Port)
	if _, err := strconv.Atoi(cfg.DB.Port); err != nil {
		return fmt.Errorf("invalid POSTGRES_PORT %q: %w", cfg.DB.Port, err)
	}
	cfg.DB.User = envString("POSTGRES_USER", cfg.DB.User)
	cfg.DB.Pass = envString("POSTGRES_PASSWORD", cfg.DB.Pass)
	cfg.DB.Name = envString("POSTGRES_DB", cfg.DB.Name)

	cfg.Redis.Addr = envString("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = envString("REDIS_PASSWORD", cfg.Redis.Password)
	if cfg.Redis.DB, err = envInt("REDIS_DB", cfg.Redis.DB); err != nil {
		return err
	}
	if cfg.Redis.TTL, err = envDuration("REDIS_TTL", cfg.Redis.TTL); err != nil {
		return err
	}

	cfg.Kafka.Brokers = envList("KAFKA_BROKERS", cfg.Kafka.Brokers)
	cfg.Kafka.GroupID = envString("KAFKA_GROUP_ID", cfg.Kafka.GroupID)
	cfg.Kafka.OrdersTopic = envString("KAFKA_ORDERS_TOPIC", cfg.Kafka.OrdersTopic)
	cfg.Kafka.NotifyTopic = envString("KAFKA_NOTIFY_TOPIC", cfg.Kafka.NotifyTopic)

	if cfg.Dispatch.RiderStaleness, err = envDuration("DISPATCH_RIDER_STALENESS", cfg.Dispatch.RiderStaleness); err != nil {
		return err
	}
	if cfg.Dispatch.StoreTimeout, err = envDuration("DISPATCH_STORE_TIMEOUT", cfg.Dispatch.StoreTimeout); err != nil {
		return err
	}
	if cfg.Dispatch.SweepInterval, err = envDuration("DISPATCH_SWEEP_INTERVAL", cfg.Dispatch.SweepInterval); err != nil {
		return err
	}
	if cfg.Dispatch.SweepBatch, err = envInt("DISPATCH_SWEEP_BATCH", cfg.Dispatch.SweepBatch); err != nil {
		return err
	}

	if cfg.StoreRetry.MaxAttempts, err = envInt("STORE_RETRY_ATTEMPTS", cfg.StoreRetry.MaxAttempts); err != nil {
		return err
	}
	if cfg.StoreRetry.MinDelay, err = envDuration("STORE_RETRY_MIN_DELAY", cfg.StoreRetry.MinDelay); err != nil {
		return err
	}
	if cfg.StoreRetry.MaxDelay, err = envDuration("STORE_RETRY_MAX_DELAY", cfg.StoreRetry.MaxDelay); err != nil {
		return err
	}

	if cfg.RateLimit.Enabled, err = envBool("RATE_LIMIT_ENABLED", cfg.RateLimit.Enabled); err != nil {
		return err
	}
	if cfg.RateLimit.Rate, err = envFloat("RATE_LIMIT_RPS", cfg.RateLimit.Rate); err != nil {
		return err
	}
	if cfg.RateLimit.Burst, err = envInt("RATE_LIMIT_BURST", cfg.RateLimit.Burst); err != nil {
		return err
	}
	if cfg.RateLimit.TTL, err = envDuration("RATE_LIMIT_TTL", cfg.RateLimit.TTL); err != nil {
		return err
	}

	cfg.CORS.AllowedOrigins = envList("CORS_ALLOWED_ORIGINS", cfg.CORS.AllowedOrigins)
	return nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.Dispatch.RiderStaleness <= 0 {
		return fmt.Errorf("invalid rider staleness: %s", c.Dispatch.RiderStaleness)
	}
	if c.Dispatch.StoreTimeout <= 0 {
		return fmt.Errorf("invalid store timeout: %s", c.Dispatch.StoreTimeout)
	}
	if c.Dispatch.SweepInterval <= 0 {
		return fmt.Errorf("invalid sweep interval: %s", c.Dispatch.SweepInterval)
	}
	if c.Dispatch.SweepBatch <= 0 {
		return fmt.Errorf("invalid sweep batch: %d", c.Dispatch.SweepBatch)
	}
	if c.StoreRetry.MaxAttempts <= 0 {
		return fmt.Errorf("invalid store retry attempts: %d", c.StoreRetry.MaxAttempts)
	}
	return nil
}

func envString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := envString(key, "")
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func envFloat(key string, def float64) (float64, error) {
	v := envString(key, "")
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return f, nil
}

func envBool(key string, def bool) (bool, error) {
	v := envString(key, "")
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return b, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := envString(key, "")
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}

func envList(key string, def []string) []string {
	v := envString(key, "")
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
