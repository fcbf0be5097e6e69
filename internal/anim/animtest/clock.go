// Package animtest provides a deterministic clock for animation tests.
package animtest

import (
	"sync"
	"time"
)

// Epoch is the instant every VirtualClock starts at.
var Epoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// VirtualClock advances instantly: waiting for d moves virtual time forward by
// d and returns a channel that is already ready.
type VirtualClock struct {
	mu    sync.Mutex
	now   time.Time
	hooks []func(time.Time)
}

func NewVirtualClock() *VirtualClock {
	return &VirtualClock{now: Epoch}
}

func (c *VirtualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *VirtualClock) After(d time.Duration) <-chan time.Time {
	now := c.Advance(d)
	ch := make(chan time.Time, 1)
	ch <- now
	return ch
}

// Advance moves virtual time forward and runs the advance hooks.
func (c *VirtualClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	if d > 0 {
		c.now = c.now.Add(d)
	}
	now := c.now
	hooks := append([]func(time.Time){}, c.hooks...)
	c.mu.Unlock()

	for _, hook := range hooks {
		hook(now)
	}
	return now
}

// OnAdvance registers fn to run after every advance, with the new time.
func (c *VirtualClock) OnAdvance(fn func(now time.Time)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hooks = append(c.hooks, fn)
}

// Elapsed reports how far the clock has moved since Epoch.
func (c *VirtualClock) Elapsed() time.Duration {
	return c.Now().Sub(Epoch)
}
