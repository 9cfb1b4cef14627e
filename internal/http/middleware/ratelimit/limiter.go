package ratelimit

import (
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"golang.org/x/time/rate"
)

// Config stores per-client limiter settings.
type Config struct {
	Rate  float64       // requests per second
	Burst int           // bucket capacity
	TTL   time.Duration // idle clients are forgotten after TTL
}

// ClientLimiter keeps one token bucket per client key. Buckets live in a TTL
// cache, so clients that went quiet are evicted instead of growing the map.
type ClientLimiter struct {
	mu      sync.Mutex
	clock   Clock
	limit   rate.Limit
	burst   int
	buckets *ttlcache.Cache[string, *rate.Limiter]
}

// NewClientLimiter creates a ClientLimiter. A nil clock uses wall time.
func NewClientLimiter(clock Clock, cfg Config) *ClientLimiter {
	if clock == nil {
		clock = realClock{}
	}
	if cfg.Rate <= 0 {
		cfg.Rate = 1
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 5 * time.Minute
	}
	return &ClientLimiter{
		clock: clock,
		limit: rate.Limit(cfg.Rate),
		burst: cfg.Burst,
		buckets: ttlcache.New[string, *rate.Limiter](
			ttlcache.WithTTL[string, *rate.Limiter](cfg.TTL),
		),
	}
}

// Allow consumes one token from the key's bucket.
func (l *ClientLimiter) Allow(key string) bool {
	return l.bucket(key).AllowN(l.clock.Now(), 1)
}

func (l *ClientLimiter) bucket(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Get продлевает TTL записи
	if item := l.buckets.Get(key); item != nil {
		return item.Value()
	}
	lim := rate.NewLimiter(l.limit, l.burst)
	l.buckets.Set(key, lim, ttlcache.DefaultTTL)
	return lim
}

// Len returns the number of tracked clients.
func (l *ClientLimiter) Len() int {
	return l.buckets.Len()
}

// Start runs expired bucket eviction until Stop is called. It blocks.
func (l *ClientLimiter) Start() {
	l.buckets.Start()
}

// Stop ends the eviction loop started by Start.
func (l *ClientLimiter) Stop() {
	l.buckets.Stop()
}
