package clock

import (
	"sort"
	"sync"
	"time"
)

// Fake is a manual Clock for tests. Callbacks fire only when Advance
// moves the fake time past their deadline, in deadline order.
type Fake struct {
	mu      sync.Mutex
	now     time.Time
	pending []fakeTimer
}

type fakeTimer struct {
	at time.Time
	f  func()
}

// NewFake creates a Fake starting at an arbitrary fixed instant.
func NewFake() *Fake {
	return &Fake{now: time.Unix(0, 0)}
}

// Now returns the fake's current time.
func (c *Fake) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

// AfterFunc registers f to run once the fake time advances by d.
func (c *Fake) AfterFunc(d time.Duration, f func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pending = append(c.pending, fakeTimer{at: c.now.Add(d), f: f})
}

// Advance moves the fake time forward, firing due callbacks in deadline
// order. Time steps to each due timer's deadline before its callback
// runs, so a callback scheduling follow-up timers does so relative to
// its own deadline and the chain completes within one Advance when it
// fits the window. Callbacks run without the lock held.
func (c *Fake) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	for {
		f := c.popDue(target)
		if f == nil {
			break
		}

		f()
	}

	c.mu.Lock()
	c.now = target
	c.mu.Unlock()
}

// popDue removes the earliest timer due by target and steps now to its
// deadline.
func (c *Fake) popDue(target time.Time) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	sort.SliceStable(c.pending, func(i, j int) bool {
		return c.pending[i].at.Before(c.pending[j].at)
	})

	if len(c.pending) == 0 || c.pending[0].at.After(target) {
		return nil
	}

	tm := c.pending[0]
	c.pending = c.pending[1:]

	if tm.at.After(c.now) {
		c.now = tm.at
	}

	return tm.f
}
