package dispatch

import "time"

// SetClock overrides the service clock.
func SetClock(s *Service, now func() time.Time) { s.now = now }

// SetIDGenerator overrides assignment id generation.
func SetIDGenerator(s *Service, newID func() string) { s.newID = newID }

// SetSweepClock overrides the sweeper clock.
func SetSweepClock(s *Sweeper, now func() time.Time) { s.now = now }

var WithoutRider = withoutRider
