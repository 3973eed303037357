package clock

import (
	"context"
	"sync"
	"time"
)

// Layout renders like "10/18/2026 03:04PM PKT".
const Layout = "01/02/2006 03:04PM MST"

const DefaultTimeZone = "Asia/Karachi"

// Clock keeps a displayed time that a ticker refreshes. It is independent of
// the catalogue.
type Clock struct {
	loc    *time.Location
	source func() time.Time

	mu  sync.RWMutex
	now time.Time
}

func New(loc *time.Location) *Clock {
	if loc == nil {
		loc = time.UTC
	}
	c := &Clock{loc: loc, source: time.Now}
	c.now = c.source()
	return c
}

// Run refreshes the clock every interval and blocks until ctx is cancelled.
func (c *Clock) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			c.tick()
		}
	}
}

func (c *Clock) tick() {
	now := c.source()
	c.mu.Lock()
	c.now = now
	c.mu.Unlock()
}

// Now returns the last ticked time in the clock's zone.
func (c *Clock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now.In(c.loc)
}

func (c *Clock) Formatted() string {
	return c.Now().Format(Layout)
}

func (c *Clock) Location() *time.Location {
	return c.loc
}
