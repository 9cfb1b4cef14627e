package dispatch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"vendora-dispatch/internal/apperr"
	"vendora-dispatch/internal/domain"
	"vendora-dispatch/internal/geo"
	"vendora-dispatch/internal/logx"
)

// Dispatch outcomes reported to Metrics.
const (
	OutcomeOffered  = "offered"
	OutcomeQueued   = "queued"
	OutcomeExisting = "existing"
	OutcomeError    = "error"
)

// Options tunes the dispatch service.
type Options struct {
	StoreTimeout   time.Duration
	RiderStaleness time.Duration
	Metrics        Metrics
}

// Service assigns paid orders to the nearest active rider.
type Service struct {
	orders       OrderReader
	assignments  AssignmentStore
	riders       RiderStore
	notifier     Notifier
	logger       logx.Logger
	metrics      Metrics
	storeTimeout time.Duration
	staleness    time.Duration
	now          func() time.Time
	newID        func() string
	inflight     singleflight.Group
}

// NewService creates a dispatch Service.
func NewService(
	orders OrderReader,
	assignments AssignmentStore,
	riders RiderStore,
	notifier Notifier,
	logger logx.Logger,
	opts Options,
) *Service {
	if opts.StoreTimeout <= 0 {
		opts.StoreTimeout = 3 * time.Second
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
	return &Service{
		orders:       orders,
		assignments:  assignments,
		riders:       riders,
		notifier:     notifier,
		logger:       logger,
		metrics:      opts.Metrics,
		storeTimeout: opts.StoreTimeout,
		staleness:    opts.RiderStaleness,
		now:          func() time.Time { return time.Now().UTC() },
		newID:        uuid.NewString,
	}
}

// Dispatch creates the delivery assignment for a paid order, or returns the
// existing one. Concurrent calls for the same order inside this process share
// a single execution; a caller whose ctx ends stops waiting without cancelling
// the shared work.
func (s *Service) Dispatch(ctx context.Context, orderID string) (domain.DispatchResult, error) {
	orderID, err := validateOrderID(orderID)
	if err != nil {
		s.metrics.Outcome(OutcomeError)
		return domain.DispatchResult{}, err
	}

	// общий вызов не отменяется вместе с первым запросом, его ограничивают таймауты хранилища
	ch := s.inflight.DoChan(orderID, func() (any, error) {
		return s.dispatch(context.WithoutCancel(ctx), orderID)
	})

	select {
	case <-ctx.Done():
		err = fmt.Errorf("%w: dispatch order %q: %w", apperr.ErrUnavailable, orderID, ctx.Err())
	case res := <-ch:
		if res.Err == nil {
			return res.Val.(domain.DispatchResult), nil
		}
		err = res.Err
	}

	s.metrics.Outcome(OutcomeError)
	s.logger.Warn("dispatch failed",
		logx.String("order_id", orderID),
		logx.Err(err),
	)
	return domain.DispatchResult{}, err
}

func (s *Service) dispatch(ctx context.Context, orderID string) (domain.DispatchResult, error) {
	order, pickup, dropoff, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return domain.DispatchResult{}, err
	}

	existing, err := s.findExisting(ctx, orderID)
	if err != nil {
		return domain.DispatchResult{}, err
	}
	if existing != nil {
		return s.existingResult(*existing), nil
	}

	quote, err := NewQuote(pickup, dropoff)
	if err != nil {
		return domain.DispatchResult{}, err
	}

	now := s.now()
	riders, err := s.listRiders(ctx, now)
	if err != nil {
		return domain.DispatchResult{}, err
	}
	cand, matched := SelectNearest(pickup, riders, now, s.staleness)

	a := s.newAssignment(order, pickup, dropoff, quote, now)
	if matched {
		riderID := cand.Rider.ID
		a.RiderSessionID = &riderID
		a.Status = domain.AssignmentOffered
	}

	if err := s.insert(ctx, &a); err != nil {
		if !errors.Is(err, apperr.ErrConflict) {
			return domain.DispatchResult{}, err
		}
		// another writer created the assignment between the guard and the insert
		existing, ferr := s.findExisting(ctx, orderID)
		if ferr != nil {
			return domain.DispatchResult{}, ferr
		}
		if existing == nil {
			return domain.DispatchResult{}, err
		}
		return s.existingResult(*existing), nil
	}

	if matched {
		s.claimRider(ctx, a, cand)
		s.notify(ctx, a)
	}

	result := domain.DispatchResult{
		AssignmentID:             a.ID,
		Status:                   a.Status,
		RiderAssigned:            matched,
		RiderID:                  a.RiderID(),
		DistanceKm:               a.DistanceKm,
		DeliveryFeeKobo:          a.DeliveryFeeKobo,
		EstimatedDurationMinutes: a.EstimatedDurationMinutes,
	}
	s.metrics.Outcome(string(a.Status))

	s.logger.Info("delivery assigned",
		logx.String("event", "delivery_assigned"),
		logx.String("order_id", a.OrderID),
		logx.String("assignment_id", a.ID),
		logx.String("status", string(a.Status)),
		logx.String("rider_id", a.RiderID()),
		logx.Float64("distance_km", a.DistanceKm),
		logx.Int64("delivery_fee_kobo", a.DeliveryFeeKobo),
		logx.Int("estimated_duration_minutes", a.EstimatedDurationMinutes),
	)

	return result, nil
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.storeTimeout)
}

func (s *Service) loadOrder(ctx context.Context, orderID string) (domain.Order, geo.Point, geo.Point, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	order, err := s.orders.GetPaidOrder(ctx, orderID)
	if err != nil {
		return domain.Order{}, geo.Point{}, geo.Point{}, storeError("lookup order", err)
	}
	if order == nil {
		return domain.Order{}, geo.Point{}, geo.Point{}, fmt.Errorf("%w: order %q does not exist or is not paid", apperr.ErrNotFound, orderID)
	}
	dropoff, ok := order.Dropoff()
	if !ok {
		return domain.Order{}, geo.Point{}, geo.Point{}, fmt.Errorf("%w: order %q has no delivery location", apperr.ErrNotFound, orderID)
	}
	pickup, ok := order.Store.Pickup()
	if !ok {
		return domain.Order{}, geo.Point{}, geo.Point{}, fmt.Errorf("%w: store %q has no pickup location", apperr.ErrNotFound, order.StoreID)
	}
	return *order, pickup, dropoff, nil
}

func (s *Service) findExisting(ctx context.Context, orderID string) (*domain.Assignment, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	a, err := s.assignments.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, storeError("lookup assignment", err)
	}
	return a, nil
}

func (s *Service) listRiders(ctx context.Context, now time.Time) ([]domain.RiderSession, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	riders, err := s.riders.ListActive(ctx, now.Add(-s.staleness))
	if err != nil {
		return nil, storeError("list riders", err)
	}
	return riders, nil
}

func (s *Service) insert(ctx context.Context, a *domain.Assignment) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.assignments.Insert(ctx, a); err != nil {
		return storeError("insert assignment", err)
	}
	return nil
}

// claimRider flips the rider to unavailable. The assignment is already
// persisted, so every failure here is logged and swallowed.
func (s *Service) claimRider(ctx context.Context, a domain.Assignment, cand Candidate) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	claimed, err := s.riders.Claim(ctx, cand.Rider.ID)
	switch {
	case err != nil:
		s.logger.Warn("rider availability update failed",
			logx.String("order_id", a.OrderID),
			logx.String("assignment_id", a.ID),
			logx.String("rider_id", cand.Rider.ID),
			logx.Err(fmt.Errorf("%w: %w", apperr.ErrSideEffect, err)),
		)
	case !claimed:
		s.metrics.ClaimLost()
		s.logger.Warn("rider was no longer available, may already be engaged",
			logx.String("order_id", a.OrderID),
			logx.String("assignment_id", a.ID),
			logx.String("rider_id", cand.Rider.ID),
		)
	default:
		s.logger.Debug("rider claimed",
			logx.String("rider_id", cand.Rider.ID),
			logx.Float64("distance_to_pickup_km", cand.DistanceKm),
		)
	}
}

func (s *Service) notify(ctx context.Context, a domain.Assignment) {
	if s.notifier == nil {
		return
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.notifier.NotifyRiderOffered(ctx, a.RiderID(), a); err != nil {
		s.logger.Warn("rider notification failed",
			logx.String("assignment_id", a.ID),
			logx.String("rider_id", a.RiderID()),
			logx.Err(fmt.Errorf("%w: %w", apperr.ErrSideEffect, err)),
		)
	}
}

func (s *Service) newAssignment(order domain.Order, pickup, dropoff geo.Point, q Quote, now time.Time) domain.Assignment {
	return domain.Assignment{
		ID:                       s.newID(),
		OrderID:                  order.ID,
		VendorID:                 order.VendorID,
		PickupLat:                pickup.Lat,
		PickupLng:                pickup.Lng,
		PickupAddress:            order.Store.BaseAddress,
		DeliveryLat:              dropoff.Lat,
		DeliveryLng:              dropoff.Lng,
		DeliveryAddress:          order.CustomerAddress,
		DistanceKm:               RoundKm(q.DistanceKm),
		DeliveryFeeKobo:          q.FeeKobo,
		EstimatedDurationMinutes: q.DurationMinutes,
		Status:                   domain.AssignmentQueued,
		CreatedAt:                now,
		UpdatedAt:                now,
	}
}

func (s *Service) existingResult(a domain.Assignment) domain.DispatchResult {
	s.metrics.Outcome(OutcomeExisting)
	s.logger.Info("delivery assignment already exists",
		logx.String("order_id", a.OrderID),
		logx.String("assignment_id", a.ID),
		logx.String("status", string(a.Status)),
	)
	return domain.DispatchResult{
		AssignmentID: a.ID,
		Status:       a.Status,
		Existing:     true,
	}
}

func validateOrderID(raw string) (string, error) {
	orderID := strings.TrimSpace(raw)
	if orderID == "" {
		return "", fmt.Errorf("%w: order_id is required", apperr.ErrInvalid)
	}
	return orderID, nil
}

// storeError keeps domain sentinels and classifies everything else as a store failure.
func storeError(op string, err error) error {
	if errors.Is(err, apperr.ErrConflict) || errors.Is(err, apperr.ErrNotFound) || errors.Is(err, apperr.ErrInvalid) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", apperr.ErrUnavailable, op, err)
}

type nopMetrics struct{}

func (nopMetrics) Outcome(string)   {}
func (nopMetrics) ClaimLost()       {}
func (nopMetrics) SweepOffered(int) {}
