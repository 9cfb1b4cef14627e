package app

import (
	"context"
	"errors"
	"time"

	"vendora-dispatch/internal/apperr"
	"vendora-dispatch/internal/service/orders"
	"vendora-dispatch/internal/transport/kafka"
)

const orderEventTimeout = 15 * time.Second

type orderEventHandler interface {
	Handle(ctx context.Context, e orders.Event) error
}

// makeOrdersKafka adapts the processor to the consumer. Errors that a retry
// cannot fix are marked permanent so the consumer commits past them.
func makeOrdersKafka(h orderEventHandler) kafka.HandleFunc {
	return func(ctx context.Context, event orders.Event) error {
		ctx, cancel := context.WithTimeout(ctx, orderEventTimeout)
		defer cancel()

		err := h.Handle(ctx, event)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, apperr.ErrInvalid), errors.Is(err, apperr.ErrNotFound):
			return kafka.Permanent(err)
		default:
			return err
		}
	}
}
