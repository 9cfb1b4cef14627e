package dispatch

import (
	"time"

	"vendora-dispatch/internal/domain"
	"vendora-dispatch/internal/geo"
)

// Candidate is an eligible rider with its distance to the pickup point.
type Candidate struct {
	Rider      domain.RiderSession
	DistanceKm float64
}

// SelectNearest returns the eligible rider closest to pickup. Eligible means
// available, seen within staleness of now, and with both coordinates known.
// On equal distances the rider that appears first in riders wins.
func SelectNearest(pickup geo.Point, riders []domain.RiderSession, now time.Time, staleness time.Duration) (Candidate, bool) {
	var (
		best  Candidate
		found bool
	)
	for _, r := range riders {
		if !r.Active(now, staleness) {
			continue
		}
		pos, ok := r.Position()
		if !ok {
			continue
		}
		d := geo.Distance(pos, pickup)
		if !geo.Finite(d) {
			continue
		}
		if !found || d < best.DistanceKm {
			best = Candidate{Rider: r, DistanceKm: d}
			found = true
		}
	}
	return best, found
}

func withoutRider(riders []domain.RiderSession, id string) []domain.RiderSession {
	out := make([]domain.RiderSession, 0, len(riders))
	for _, r := range riders {
		if r.ID != id {
			out = append(out, r)
		}
	}
	return out
}
