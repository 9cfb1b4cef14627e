// Package notify delivers rider offer notifications.
package notify

import (
	"context"

	"vendora-dispatch/internal/domain"
	"vendora-dispatch/internal/logx"
)

// LogNotifier writes offers to the log. It is used when no broker is configured.
type LogNotifier struct {
	logger logx.Logger
}

// NewLogNotifier creates a LogNotifier.
func NewLogNotifier(logger logx.Logger) *LogNotifier {
	if logger == nil {
		logger = logx.Nop()
	}
	return &LogNotifier{logger: logger}
}

// NotifyRiderOffered logs the offer and never fails.
func (n *LogNotifier) NotifyRiderOffered(_ context.Context, riderID string, a domain.Assignment) error {
	n.logger.Info("rider offered delivery",
		logx.String("rider_id", riderID),
		logx.String("assignment_id", a.ID),
		logx.String("order_id", a.OrderID),
		logx.String("pickup_address", a.PickupAddress),
		logx.Float64("distance_km", a.DistanceKm),
		logx.Int64("delivery_fee_kobo", a.DeliveryFeeKobo),
	)
	return nil
}
