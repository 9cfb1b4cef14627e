package dispatch

import (
	"fmt"
	"math"

	"vendora-dispatch/internal/apperr"
	"vendora-dispatch/internal/geo"
)

const (
	feeBlockKm         = 3.0
	feePerBlockNaira   = 1000
	koboPerNaira       = 100
	minutesPerKm       = 3.0
	minDurationMinutes = 15
)

// Quote is the priced delivery between a pickup and a dropoff point.
type Quote struct {
	// DistanceKm is unrounded; fee and duration are derived from it.
	DistanceKm      float64
	FeeKobo         int64
	DurationMinutes int
}

// NewQuote prices the trip from pickup to dropoff. A non-finite distance is
// reported as apperr.ErrInvalid.
func NewQuote(pickup, dropoff geo.Point) (Quote, error) {
	d := geo.Distance(pickup, dropoff)
	if !geo.Finite(d) {
		return Quote{}, fmt.Errorf("%w: distance between pickup and delivery is not finite", apperr.ErrInvalid)
	}
	return Quote{
		DistanceKm:      d,
		FeeKobo:         DeliveryFeeKobo(d),
		DurationMinutes: EstimatedDurationMinutes(d),
	}, nil
}

// DeliveryFeeKobo charges ₦1,000 per started 3 km block. Zero distance costs nothing.
func DeliveryFeeKobo(distanceKm float64) int64 {
	blocks := math.Ceil(distanceKm / feeBlockKm)
	return int64(blocks) * feePerBlockNaira * koboPerNaira
}

// EstimatedDurationMinutes assumes 3 minutes per km with a 15 minute floor.
func EstimatedDurationMinutes(distanceKm float64) int {
	m := int(math.Round(distanceKm * minutesPerKm))
	if m < minDurationMinutes {
		return minDurationMinutes
	}
	return m
}

// RoundKm rounds a distance to two decimals for storage and responses.
func RoundKm(distanceKm float64) float64 {
	return math.Round(distanceKm*100) / 100
}
