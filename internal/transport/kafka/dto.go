package kafka

import (
	"strings"
	"time"

	"vendora-dispatch/internal/service/orders"
)

// EventDTO is the wire form of an order payment event
type EventDTO struct {
	OrderID string    `json:"order_id"`
	Status  string    `json:"status"`
	PaidAt  time.Time `json:"paid_at"`
}

// ToDomain converts EventDTO to orders.Event
func ToDomain(dto EventDTO) orders.Event {
	return orders.Event{
		OrderID: strings.TrimSpace(dto.OrderID),
		Status:  strings.TrimSpace(dto.Status),
		PaidAt:  dto.PaidAt,
	}
}
