package anim

import (
	"context"
	"time"
)

// FrameInterval paces animation updates at roughly 60 frames per second.
const FrameInterval = 16 * time.Millisecond

// Clock is the time source animations and delays are measured against.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time                         { return time.Now() }
func (systemClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// SystemClock returns a Clock backed by the wall clock.
func SystemClock() Clock {
	return systemClock{}
}

// Delay suspends the caller for d. Cancellation wins over an expired timer,
// so a caller that sees a nil error may assume ctx was still live afterwards.
func Delay(ctx context.Context, clock Clock, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-clock.After(d):
		return ctx.Err()
	}
}
