//go:generate mockgen -source=contracts.go -destination=dispatch_mocks_test.go -package=dispatch

package dispatch

import (
	"context"
	"time"

	"vendora-dispatch/internal/domain"
)

// OrderReader loads a paid order joined with its store location.
// It returns (nil, nil) when the order does not exist or is not paid.
type OrderReader interface {
	GetPaidOrder(ctx context.Context, orderID string) (*domain.Order, error)
}

// AssignmentStore persists delivery assignments.
// Insert returns apperr.ErrConflict when an assignment for the order already exists.
type AssignmentStore interface {
	GetByOrderID(ctx context.Context, orderID string) (*domain.Assignment, error)
	Insert(ctx context.Context, a *domain.Assignment) error
}

// RiderStore reads rider sessions and flips availability.
type RiderStore interface {
	ListActive(ctx context.Context, seenSince time.Time) ([]domain.RiderSession, error)
	// Claim marks the rider unavailable only if it is still available and
	// reports whether this call performed the transition.
	Claim(ctx context.Context, riderID string) (bool, error)
}

// Notifier alerts a rider about a new offer.
type Notifier interface {
	NotifyRiderOffered(ctx context.Context, riderID string, a domain.Assignment) error
}

// Metrics records dispatch outcomes.
type Metrics interface {
	Outcome(outcome string)
	ClaimLost()
	SweepOffered(n int)
}
