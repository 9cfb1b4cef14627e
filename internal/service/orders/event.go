package orders

import (
	"time"
)

// Event is a single order payment event
type Event struct {
	OrderID string
	Status  string
	PaidAt  time.Time
}
