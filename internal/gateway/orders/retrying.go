package order

import (
	"context"
	"time"

	"github.com/jpillora/backoff"

	"vendora-dispatch/internal/domain"
	"vendora-dispatch/internal/logx"
	"vendora-dispatch/internal/repository"
)

type reader interface {
	GetPaidOrder(ctx context.Context, orderID string) (*domain.Order, error)
}

type counter interface {
	Inc()
}

// RetryConfig описывает поведение RetryingReader
type RetryConfig struct {
	MaxAttempts int
	MinDelay    time.Duration
	MaxDelay    time.Duration
}

// RetryingReader retries transient order lookup failures with exponential backoff.
type RetryingReader struct {
	next      reader
	logger    logx.Logger
	retries   counter
	cfg       RetryConfig
	retryable func(error) bool
	wait      func(context.Context, time.Duration) bool
}

// NewRetryingReader returns nil when next is nil.
func NewRetryingReader(next reader, logger logx.Logger, retries counter, cfg RetryConfig) *RetryingReader {
	if next == nil {
		return nil
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &RetryingReader{
		next:      next,
		logger:    logger,
		retries:   retries,
		cfg:       cfg,
		retryable: repository.IsTransient,
		wait:      sleepWithContext,
	}
}

// GetPaidOrder calls the wrapped reader until it succeeds, fails permanently
// or the attempts are used up. The last error is returned unchanged.
func (g *RetryingReader) GetPaidOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	b := &backoff.Backoff{
		Min:    g.cfg.MinDelay,
		Max:    g.cfg.MaxDelay,
		Factor: 2,
	}

	var lastErr error
	for attempt := 1; attempt <= g.cfg.MaxAttempts; attempt++ {
		ord, err := g.next.GetPaidOrder(ctx, orderID)
		if err == nil {
			return ord, nil
		}
		lastErr = err

		if ctx.Err() != nil || attempt == g.cfg.MaxAttempts || !g.retryable(err) {
			break
		}

		delay := b.Duration()
		if g.retries != nil {
			g.retries.Inc()
		}
		g.logger.Warn("order lookup retry",
			logx.String("order_id", orderID),
			logx.Int("attempt", attempt),
			logx.Duration("delay", delay),
			logx.Err(err),
		)
		if !g.wait(ctx, delay) {
			break
		}
	}
	return nil, lastErr
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
