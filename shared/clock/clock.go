package clock

import "time"

// Clock abstracts wall time so refund tiering and availability horizons can
// be tested against a fixed calendar date.
type Clock interface {
	Now() time.Time
	// Today returns the current UTC calendar date truncated to midnight.
	Today() time.Time
}

type utcClock struct{}

func (utcClock) Now() time.Time {
	return time.Now().UTC()
}

func (utcClock) Today() time.Time {
	now := time.Now().UTC()

	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func New() Clock {
	return utcClock{}
}

type fixedClock struct {
	at time.Time
}

func (f fixedClock) Now() time.Time {
	return f.at
}

func (f fixedClock) Today() time.Time {
	return time.Date(f.at.Year(), f.at.Month(), f.at.Day(), 0, 0, 0, 0, time.UTC)
}

// NewFixed returns a Clock pinned to the given instant.
func NewFixed(at time.Time) Clock {
	return fixedClock{at: at.UTC()}
}
