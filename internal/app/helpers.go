package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jpillora/backoff"

	"vendora-dispatch/internal/logx"
	"vendora-dispatch/internal/repository"
)

var newPool = repository.NewPool

const dbAttemptTimeout = 3 * time.Second

// connectDbWithRetry пытается подключиться к БД retries раз, увеличивая паузу между попытками.
func connectDbWithRetry(ctx context.Context, logger logx.Logger, dsn string, retries int, delay time.Duration) (*pgxpool.Pool, error) {
	b := &backoff.Backoff{Min: delay, Max: 10 * delay, Factor: 2}

	var lastErr error
	for i := 1; i <= retries; i++ {
		attemptCtx, cancel := context.WithTimeout(ctx, dbAttemptTimeout)
		pool, err := newPool(attemptCtx, dsn)
		cancel()
		if err == nil {
			logger.Info("db connected", logx.Int("attempt", i))
			return pool, nil
		}
		lastErr = err
		logger.Warn("db connect failed",
			logx.Int("attempt", i),
			logx.Int("retries", retries),
			logx.Err(err),
		)
		if i == retries {
			break
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("db connect interrupted: %w", ctx.Err())
		case <-time.After(b.Duration()):
		}
	}
	return nil, fmt.Errorf("db connect failed after %d attempts: %w", retries, lastErr)
}
