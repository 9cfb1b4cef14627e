package dispatch

import (
	"context"
	"fmt"
	"time"

	"vendora-dispatch/internal/apperr"
	"vendora-dispatch/internal/domain"
	"vendora-dispatch/internal/geo"
	"vendora-dispatch/internal/logx"
	"vendora-dispatch/internal/ports/sweeptx"
)

// SweepOptions tunes the queued-assignment sweeper.
type SweepOptions struct {
	Batch          int
	Timeout        time.Duration
	RiderStaleness time.Duration
	Metrics        Metrics
}

// Sweeper offers queued assignments to riders that became available after dispatch.
type Sweeper struct {
	runner    sweeptx.Runner
	notifier  Notifier
	logger    logx.Logger
	metrics   Metrics
	batch     int
	timeout   time.Duration
	staleness time.Duration
	now       func() time.Time
}

// NewSweeper creates a Sweeper.
func NewSweeper(runner sweeptx.Runner, notifier Notifier, logger logx.Logger, opts SweepOptions) *Sweeper {
	if opts.Batch <= 0 {
		opts.Batch = 50
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.RiderStaleness <= 0 {
		opts.RiderStaleness = 2 * time.Minute
	}
	if opts.Metrics == nil {
		opts.Metrics = nopMetrics{}
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Sweeper{
		runner:    runner,
		notifier:  notifier,
		logger:    logger,
		metrics:   opts.Metrics,
		batch:     opts.Batch,
		timeout:   opts.Timeout,
		staleness: opts.RiderStaleness,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Sweep locks the oldest queued assignments and offers each one to the
// nearest active rider. When a rider claim loses the race the next nearest
// rider is tried. Notifications are sent after the transaction commits.
func (s *Sweeper) Sweep(ctx context.Context) (domain.SweepResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var (
		result  domain.SweepResult
		offered []domain.Assignment
	)

	err := s.runner.WithTx(ctx, func(tx sweeptx.Repository) error {
		queued, err := tx.LockQueued(ctx, s.batch)
		if err != nil {
			return err
		}
		result.Scanned = len(queued)
		if len(queued) == 0 {
			return nil
		}

		now := s.now()
		pool, err := tx.ListActiveRiders(ctx, now.Add(-s.staleness))
		if err != nil {
			return err
		}

		for _, a := range queued {
			if len(pool) == 0 {
				break
			}
			pickup := geo.Point{Lat: a.PickupLat, Lng: a.PickupLng}
			for {
				cand, ok := SelectNearest(pickup, pool, now, s.staleness)
				if !ok {
					pool = nil
					break
				}
				pool = withoutRider(pool, cand.Rider.ID)

				claimed, err := tx.ClaimRider(ctx, cand.Rider.ID)
				if err != nil {
					return err
				}
				if !claimed {
					s.metrics.ClaimLost()
					continue
				}
				if err := tx.OfferAssignment(ctx, a.ID, cand.Rider.ID); err != nil {
					return err
				}
				riderID := cand.Rider.ID
				a.RiderSessionID = &riderID
				a.Status = domain.AssignmentOffered
				offered = append(offered, a)
				break
			}
		}
		return nil
	})
	if err != nil {
		return domain.SweepResult{}, fmt.Errorf("%w: sweep queued assignments: %w", apperr.ErrUnavailable, err)
	}

	result.Offered = len(offered)
	s.metrics.SweepOffered(result.Offered)

	for _, a := range offered {
		s.notify(ctx, a)
	}
	if result.Offered > 0 {
		s.logger.Info("queued assignments offered",
			logx.Int("scanned", result.Scanned),
			logx.Int("offered", result.Offered),
		)
	}
	return result, nil
}

func (s *Sweeper) notify(ctx context.Context, a domain.Assignment) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.NotifyRiderOffered(ctx, a.RiderID(), a); err != nil {
		s.logger.Warn("rider notification failed",
			logx.String("assignment_id", a.ID),
			logx.String("rider_id", a.RiderID()),
			logx.Err(err),
		)
	}
}

// Run sweeps every interval until ctx is done.
func (s *Sweeper) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger.Info("queued assignment sweeper started", logx.Duration("interval", interval))
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("queued assignment sweeper stopped")
			return ctx.Err()
		case <-ticker.C:
			if _, err := s.Sweep(ctx); err != nil {
				s.logger.Error("sweep failed", logx.Err(err))
			}
		}
	}
}
