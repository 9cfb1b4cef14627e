//go:generate mockgen -source=contracts.go -destination=orders_mocks_test.go -package=orders_test

package orders

import (
	"context"

	"vendora-dispatch/internal/domain"
)

// DispatchPort abstracts the dispatch operation needed by the Processor
// when handling order events
type DispatchPort interface {
	Dispatch(ctx context.Context, orderID string) (domain.DispatchResult, error)
}
