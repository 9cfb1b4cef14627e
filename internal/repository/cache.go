package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"vendora-dispatch/internal/domain"
	"vendora-dispatch/internal/logx"
)

const defaultCacheTTL = 24 * time.Hour

type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// AssignmentCache stores assignments in Redis keyed by order id.
type AssignmentCache struct {
	client redisClient
	ttl    time.Duration
}

// NewAssignmentCache creates an AssignmentCache. A non-positive ttl falls back to 24h.
func NewAssignmentCache(client redisClient, ttl time.Duration) *AssignmentCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &AssignmentCache{client: client, ttl: ttl}
}

// NewRedisClient connects to Redis and pings it.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return client, nil
}

func assignmentKey(orderID string) string {
	return "assignment:order:" + orderID
}

// Get returns the cached assignment or (nil, nil) on a miss.
func (c *AssignmentCache) Get(ctx context.Context, orderID string) (*domain.Assignment, error) {
	data, err := c.client.Get(ctx, assignmentKey(orderID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get %s: %w", assignmentKey(orderID), err)
	}

	var a domain.Assignment
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("decode cached assignment: %w", err)
	}
	return &a, nil
}

// Put caches a.
func (c *AssignmentCache) Put(ctx context.Context, a domain.Assignment) error {
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("encode assignment: %w", err)
	}
	if err := c.client.Set(ctx, assignmentKey(a.OrderID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", assignmentKey(a.OrderID), err)
	}
	return nil
}

type assignmentStore interface {
	GetByOrderID(ctx context.Context, orderID string) (*domain.Assignment, error)
	Insert(ctx context.Context, a *domain.Assignment) error
}

// CachedAssignments reads assignments through an AssignmentCache. Cache
// failures are logged and never fail the call. Only completed assignments are
// cached: every earlier status can still change outside this service.
type CachedAssignments struct {
	next   assignmentStore
	cache  *AssignmentCache
	logger logx.Logger
}

// NewCachedAssignments wraps next with cache.
func NewCachedAssignments(next assignmentStore, cache *AssignmentCache, logger logx.Logger) *CachedAssignments {
	if logger == nil {
		logger = logx.Nop()
	}
	return &CachedAssignments{next: next, cache: cache, logger: logger}
}

// GetByOrderID implements the dispatch assignment store.
func (c *CachedAssignments) GetByOrderID(ctx context.Context, orderID string) (*domain.Assignment, error) {
	a, err := c.cache.Get(ctx, orderID)
	if err != nil {
		c.logger.Warn("assignment cache read failed", logx.String("order_id", orderID), logx.Err(err))
	}
	if a != nil && a.Status == domain.AssignmentCompleted {
		return a, nil
	}

	a, err = c.next.GetByOrderID(ctx, orderID)
	if err != nil || a == nil {
		return a, err
	}
	c.put(ctx, *a)
	return a, nil
}

// Insert implements the dispatch assignment store.
func (c *CachedAssignments) Insert(ctx context.Context, a *domain.Assignment) error {
	return c.next.Insert(ctx, a)
}

func (c *CachedAssignments) put(ctx context.Context, a domain.Assignment) {
	if a.Status != domain.AssignmentCompleted {
		return
	}
	if err := c.cache.Put(ctx, a); err != nil {
		c.logger.Warn("assignment cache write failed", logx.String("order_id", a.OrderID), logx.Err(err))
	}
}
