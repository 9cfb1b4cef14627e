package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/dig"

	"vendora-dispatch/internal/http/middleware"
	"vendora-dispatch/internal/metrics"
)

type metricsOut struct {
	dig.Out

	RateLimitExceededTotal prometheus.Counter `name:"rate_limit_exceeded_total"`
	StoreRetriesTotal      prometheus.Counter `name:"store_retries_total"`
	Dispatch               *metrics.Dispatch
	Handler                http.Handler `name:"metrics_handler"`
}

func registerMetrics(container *dig.Container) error {
	return provideAll(container, provideMetrics)
}

// provideMetrics registers collectors with the default registry. Collectors
// that are already registered are reused.
func provideMetrics() (metricsOut, error) {
	reg := prometheus.DefaultRegisterer

	rl, err := metrics.RegisterCounter(reg, "rate_limit_exceeded_total", metrics.NewRateLimitExceededTotal())
	if err != nil {
		return metricsOut{}, err
	}
	sr, err := metrics.RegisterCounter(reg, "store_retries_total", metrics.NewStoreRetriesTotal())
	if err != nil {
		return metricsOut{}, err
	}
	d := metrics.NewDispatch()
	if err := d.Register(reg); err != nil {
		return metricsOut{}, err
	}
	for _, c := range middleware.Collectors() {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if !errors.As(err, &are) {
				return metricsOut{}, fmt.Errorf("register http collectors: %w", err)
			}
		}
	}

	return metricsOut{
		RateLimitExceededTotal: rl,
		StoreRetriesTotal:      sr,
		Dispatch:               d,
		Handler:                promhttp.Handler(),
	}, nil
}
