package domain

import (
	"time"

	"vendora-dispatch/internal/geo"
)

// RiderSession is a rider's live presence record.
type RiderSession struct {
	ID          string
	Name        string
	Phone       string
	Lat         *float64
	Lng         *float64
	IsAvailable bool
	LastSeenAt  time.Time
}

// Position returns the last reported point; ok is false when a coordinate is missing.
func (r RiderSession) Position() (geo.Point, bool) {
	return point(r.Lat, r.Lng)
}

// Active reports whether the rider is available and was seen within staleness of now.
func (r RiderSession) Active(now time.Time, staleness time.Duration) bool {
	if !r.IsAvailable || r.LastSeenAt.IsZero() {
		return false
	}
	return !r.LastSeenAt.Before(now.Add(-staleness))
}
