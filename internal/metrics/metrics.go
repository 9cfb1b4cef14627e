package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewStoreRetriesTotal returns a Prometheus counter for retried order lookups
func NewStoreRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "store_retries_total",
		Help: "Total number of retry attempts performed on order lookups",
	})
}

// Dispatch holds the dispatch counters and implements the dispatch service Metrics port.
type Dispatch struct {
	requests     *prometheus.CounterVec
	claimLost    prometheus.Counter
	sweepOffered prometheus.Counter
}

// NewDispatch creates the dispatch counters. They are not registered.
func NewDispatch() *Dispatch {
	return &Dispatch{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dispatch_requests_total",
			Help: "Total number of dispatch calls by outcome",
		}, []string{"outcome"}),
		claimLost: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rider_claim_lost_total",
			Help: "Total number of rider claims lost to a concurrent dispatch",
		}),
		sweepOffered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sweep_offered_total",
			Help: "Total number of queued assignments offered by the sweeper",
		}),
	}
}

// Collectors returns every collector for registration.
func (d *Dispatch) Collectors() []prometheus.Collector {
	return []prometheus.Collector{d.requests, d.claimLost, d.sweepOffered}
}

// Register registers the counters. Counters already present in reg are reused,
// so building the process twice against one registry keeps a single series.
func (d *Dispatch) Register(reg prometheus.Registerer) error {
	requests, err := register(reg, "dispatch_requests_total", d.requests)
	if err != nil {
		return err
	}
	claimLost, err := register(reg, "rider_claim_lost_total", d.claimLost)
	if err != nil {
		return err
	}
	sweepOffered, err := register(reg, "sweep_offered_total", d.sweepOffered)
	if err != nil {
		return err
	}
	d.requests, d.claimLost, d.sweepOffered = requests, claimLost, sweepOffered
	return nil
}

// RegisterCounter registers c or returns the counter already registered under the same name.
func RegisterCounter(reg prometheus.Registerer, name string, c prometheus.Counter) (prometheus.Counter, error) {
	return register(reg, name, c)
}

func register[T prometheus.Collector](reg prometheus.Registerer, name string, c T) (T, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(T); ok {
			return existing, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("register %s: %w", name, err)
}

// Outcome counts one dispatch call.
func (d *Dispatch) Outcome(outcome string) {
	d.requests.WithLabelValues(outcome).Inc()
}

// ClaimLost counts a lost rider claim.
func (d *Dispatch) ClaimLost() {
	d.claimLost.Inc()
}

// SweepOffered counts assignments offered by one sweep.
func (d *Dispatch) SweepOffered(n int) {
	if n > 0 {
		d.sweepOffered.Add(float64(n))
	}
}
