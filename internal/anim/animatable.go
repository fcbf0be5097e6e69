package anim

import (
	"context"
	"errors"
	"sync"
	"time"

	"fyne.io/fyne/v2"
)

// ErrInterrupted is returned by AnimateTo when a newer animation or a snap
// took over the value before the tween finished.
var ErrInterrupted = errors.New("animation interrupted")

// Tween describes a duration-based animation.
type Tween struct {
	Duration time.Duration
	Curve    fyne.AnimationCurve
}

func (t Tween) curve() fyne.AnimationCurve {
	if t.Curve == nil {
		return Standard
	}
	return t.Curve
}

// Animatable is a float32 that moves toward a target over time.
// The most recent AnimateTo or SnapTo owns the value.
type Animatable struct {
	state *State[float32]
	clock Clock

	mu  sync.Mutex
	gen uint64
}

func NewAnimatable(initial float32, clock Clock) *Animatable {
	if clock == nil {
		clock = SystemClock()
	}
	return &Animatable{
		state: NewState(initial),
		clock: clock,
	}
}

func (a *Animatable) Value() float32 {
	return a.state.Get()
}

func (a *Animatable) Subscribe(fn func(float32)) func() {
	return a.state.Subscribe(fn)
}

// SnapTo jumps to value, interrupting any running animation.
func (a *Animatable) SnapTo(value float32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.gen++
	a.state.Set(value)
}

// AnimateTo moves the value to target following tween and blocks until the
// target is reached, ctx is cancelled or another animation takes over.
func (a *Animatable) AnimateTo(ctx context.Context, target float32, tween Tween) error {
	a.mu.Lock()
	a.gen++
	gen := a.gen
	a.mu.Unlock()

	start := a.Value()
	begin := a.clock.Now()
	curve := tween.curve()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		elapsed := a.clock.Now().Sub(begin)
		done := tween.Duration <= 0 || elapsed >= tween.Duration

		value := target
		if !done {
			fraction := float32(elapsed) / float32(tween.Duration)
			value = start + (target-start)*curve(fraction)
		}
		if !a.setIfCurrent(gen, value) {
			return ErrInterrupted
		}
		if done {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-a.clock.After(FrameInterval):
		}
	}
}

func (a *Animatable) setIfCurrent(gen uint64, value float32) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.gen != gen {
		return false
	}
	a.state.Set(value)
	return true
}
