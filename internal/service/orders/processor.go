package orders

import (
	"context"
	"errors"

	"vendora-dispatch/internal/apperr"
	"vendora-dispatch/internal/logx"
)

// Processor processes order events
type Processor struct {
	dispatch DispatchPort
	logger   logx.Logger
	factory  *actionFactory
}

// NewProcessor creates a new orders.Processor
func NewProcessor(dispatchSvc DispatchPort, logger logx.Logger) *Processor {
	if logger == nil {
		logger = logx.Nop()
	}
	p := &Processor{
		dispatch: dispatchSvc,
		logger:   logger,
	}
	p.factory = newActionFactory(p.onPaid)
	return p
}

// Handle processes a single Event. Statuses without an action are ignored.
func (p *Processor) Handle(ctx context.Context, e Event) error {
	if p.factory == nil {
		return nil
	}
	fn, ok := p.factory.get(e.Status)
	if !ok {
		p.logger.Debug("order event ignored",
			logx.String("order_id", e.OrderID),
			logx.String("status", e.Status),
		)
		return nil
	}
	return fn(ctx, e)
}

func (p *Processor) onPaid(ctx context.Context, e Event) error {
	res, err := p.dispatch.Dispatch(ctx, e.OrderID)
	if errors.Is(err, apperr.ErrConflict) {
		return nil
	}
	if err != nil {
		return err
	}
	p.logger.Info("order event dispatched",
		logx.String("order_id", e.OrderID),
		logx.String("assignment_id", res.AssignmentID),
		logx.String("status", string(res.Status)),
		logx.Bool("existing", res.Existing),
	)
	return nil
}
