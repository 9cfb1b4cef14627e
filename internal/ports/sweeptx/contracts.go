package sweeptx

import (
	"context"
	"time"

	"vendora-dispatch/internal/domain"
)

// Repository is the set of queued-assignment operations run inside one transaction.
type Repository interface {
	LockQueued(ctx context.Context, limit int) ([]domain.Assignment, error)
	ListActiveRiders(ctx context.Context, seenSince time.Time) ([]domain.RiderSession, error)
	ClaimRider(ctx context.Context, riderID string) (bool, error)
	OfferAssignment(ctx context.Context, assignmentID, riderID string) error
}

// Runner is a transaction runner.
type Runner interface {
	WithTx(ctx context.Context, fn func(tx Repository) error) error
}
