package clock

import (
	"sync"
	"time"
)

// Layout is RFC 3339 with a fixed microsecond fraction.
const Layout = "2006-01-02T15:04:05.000000Z07:00"

// Clock hands out wall-clock instants that never go backwards, even if the
// system clock is stepped between calls.
type Clock struct {
	mu   sync.Mutex
	now  func() time.Time
	last time.Time
}

func New() *Clock {
	return NewWithSource(time.Now)
}

// NewWithSource builds a Clock over an arbitrary time source.
func NewWithSource(now func() time.Time) *Clock {
	return &Clock{now: now}
}

func (c *Clock) Now() time.Time {
	// Round(0) drops the monotonic reading so Before compares wall time.
	t := c.now().Round(0)

	c.mu.Lock()
	defer c.mu.Unlock()
	if t.Before(c.last) {
		t = c.last
	}
	c.last = t
	return t
}

// Timestamp formats Now with Layout.
func (c *Clock) Timestamp() string {
	return c.Now().Format(Layout)
}
