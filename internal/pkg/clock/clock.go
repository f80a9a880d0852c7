package clock

import (
	"sync/atomic"
	"time"
)

// Clock is the only source of "now" for pricing, token expiry and the offer
// janitor. Implementations return UTC.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return RealClock{}
}

func (RealClock) Now() time.Time {
	return time.Now().UTC()
}

// MockClock is a settable clock for tests; it may be read and moved from
// several goroutines.
type MockClock struct {
	nanos atomic.Int64
}

func NewMockClock(t time.Time) *MockClock {
	c := &MockClock{}
	c.Set(t)
	return c
}

func (c *MockClock) Now() time.Time {
	return time.Unix(0, c.nanos.Load()).UTC()
}

func (c *MockClock) Set(t time.Time) {
	c.nanos.Store(t.UnixNano())
}

func (c *MockClock) Add(d time.Duration) {
	c.nanos.Add(int64(d))
}
