package clock

import "time"

// Clock allows injecting time in services.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// NewSystem returns a clock backed by time.Now in the local zone.
// Arrival times are shown to customers, so no UTC conversion happens here.
func NewSystem() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

type fixedClock struct {
	now time.Time
}

// NewFixed returns a clock that always returns t unchanged.
func NewFixed(t time.Time) Clock {
	return fixedClock{now: t}
}

func (f fixedClock) Now() time.Time {
	return f.now
}
