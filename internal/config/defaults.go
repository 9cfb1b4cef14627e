package config

import "time"

const (
	defaultPort     = 8080
	defaultLogLevel = "info"
)

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "myuser",
	Pass: "mypassword",
	Name: "test_db",
}

var defaultRedis = Redis{
	TTL: 24 * time.Hour,
}

var defaultDispatch = Dispatch{
	RiderStaleness: 2 * time.Minute,
	StoreTimeout:   3 * time.Second,
	SweepInterval:  15 * time.Second,
	SweepBatch:     50,
}

var defaultStoreRetry = StoreRetry{
	MaxAttempts: 3,
	MinDelay:    50 * time.Millisecond,
	MaxDelay:    400 * time.Millisecond,
}

var defaultRateLimit = RateLimit{
	Enabled: true,
	Rate:    5,
	Burst:   10,
	TTL:     5 * time.Minute,
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultRedis returns the default cache settings (disabled).
func DefaultRedis() Redis {
	return defaultRedis
}

// DefaultDispatch returns the default dispatch settings.
func DefaultDispatch() Dispatch {
	return defaultDispatch
}

// DefaultStoreRetry returns the default order lookup retry settings.
func DefaultStoreRetry() StoreRetry {
	return defaultStoreRetry
}

// DefaultRateLimit returns the default rate limit settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}

// DefaultCORS returns the permissive CORS settings used by the dispatch route.
func DefaultCORS() CORS {
	return CORS{AllowedOrigins: []string{"*"}}
}
