package app

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"vendora-dispatch/internal/config"
	"vendora-dispatch/internal/http/handlers"
	"vendora-dispatch/internal/http/middleware/ratelimit"
	"vendora-dispatch/internal/http/router"
	"vendora-dispatch/internal/logx"
)

func registerHTTP(container *dig.Container) error {
	return provideAll(container,
		handlers.New,
		handlers.NewDispatchUsecase,
		handlers.NewDispatchHandler,
		newRateLimiter,
		newRateLimitMiddleware,
		newRouterOptions,
		router.New,
		newHTTPServer,
	)
}

// newRateLimiter returns a per-client limiter whose idle buckets are evicted
// until ctx is done.
func newRateLimiter(ctx context.Context, cfg *config.Config) ratelimit.Limiter {
	rl := cfg.RateLimit
	if !rl.Enabled {
		return ratelimit.NopLimiter{}
	}
	lim := ratelimit.NewClientLimiter(nil, ratelimit.Config{
		Rate:  rl.Rate,
		Burst: rl.Burst,
		TTL:   rl.TTL,
	})
	go lim.Start()
	go func() {
		<-ctx.Done()
		lim.Stop()
	}()
	return lim
}

type rateLimitIn struct {
	dig.In

	Config  *config.Config
	Logger  logx.Logger
	Counter prometheus.Counter `name:"rate_limit_exceeded_total"`
	Limiter ratelimit.Limiter
}

// newRateLimitMiddleware returns nil when limiting is disabled.
func newRateLimitMiddleware(in rateLimitIn) *ratelimit.Middleware {
	if !in.Config.RateLimit.Enabled {
		return nil
	}
	return ratelimit.New(in.Logger, in.Counter, in.Limiter)
}

type routerOptionsIn struct {
	dig.In

	Config    *config.Config
	Logger    logx.Logger
	RateLimit *ratelimit.Middleware
	Metrics   http.Handler `name:"metrics_handler"`
}

func newRouterOptions(in routerOptionsIn) router.Options {
	return router.Options{
		Logger:         in.Logger,
		RateLimit:      in.RateLimit,
		AllowedOrigins: in.Config.CORS.AllowedOrigins,
		Metrics:        in.Metrics,
	}
}
