package anim_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kei-portfolio/internal/anim"
	"kei-portfolio/internal/anim/animtest"
)

func TestCubicBezierEndpointsAndMonotonic(t *testing.T) {
	for name, curve := range map[string]func(float32) float32{
		"standard":           anim.Standard,
		"linear out slow in": anim.LinearOutSlowIn,
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, float32(0), curve(0))
			assert.Equal(t, float32(1), curve(1))
			assert.Equal(t, float32(0), curve(-0.5))
			assert.Equal(t, float32(1), curve(1.5))

			prev := float32(0)
			for i := 1; i <= 100; i++ {
				v := curve(float32(i) / 100)
				require.GreaterOrEqual(t, v, prev, "step %d", i)
				prev = v
			}
		})
	}
}

func TestLinearOutSlowInIsAheadOfLinear(t *testing.T) {
	assert.Greater(t, anim.LinearOutSlowIn(0.5), float32(0.5))
}

func TestAnimateToReachesTargetMonotonically(t *testing.T) {
	clock := animtest.NewVirtualClock()
	a := anim.NewAnimatable(-100, clock)

	var seen []float32
	a.Subscribe(func(v float32) { seen = append(seen, v) })

	err := a.AnimateTo(context.Background(), 0, anim.Tween{Duration: 500 * time.Millisecond, Curve: anim.LinearOutSlowIn})
	require.NoError(t, err)

	assert.Equal(t, float32(0), a.Value())
	require.NotEmpty(t, seen)
	for i := 1; i < len(seen); i++ {
		assert.GreaterOrEqual(t, seen[i], seen[i-1])
	}
	assert.GreaterOrEqual(t, clock.Elapsed(), 500*time.Millisecond)
	assert.Less(t, clock.Elapsed(), 500*time.Millisecond+anim.FrameInterval)
}

func TestAnimateToZeroDurationSnaps(t *testing.T) {
	a := anim.NewAnimatable(0, animtest.NewVirtualClock())
	require.NoError(t, a.AnimateTo(context.Background(), 1, anim.Tween{}))
	assert.Equal(t, float32(1), a.Value())
}

func TestAnimateToStopsOnCancel(t *testing.T) {
	clock := animtest.NewVirtualClock()
	ctx, cancel := context.WithCancel(context.Background())
	clock.OnAdvance(func(time.Time) {
		if clock.Elapsed() >= 200*time.Millisecond {
			cancel()
		}
	})

	a := anim.NewAnimatable(0, clock)
	err := a.AnimateTo(ctx, 1, anim.Tween{Duration: time.Second})

	require.ErrorIs(t, err, context.Canceled)
	assert.Greater(t, a.Value(), float32(0))
	assert.Less(t, a.Value(), float32(1))
}

func TestSnapInterruptsAnimation(t *testing.T) {
	clock := animtest.NewVirtualClock()
	a := anim.NewAnimatable(0, clock)
	clock.OnAdvance(func(time.Time) {
		if clock.Elapsed() >= 100*time.Millisecond && a.Value() < 0.99 {
			a.SnapTo(0.99)
		}
	})

	err := a.AnimateTo(context.Background(), 1, anim.Tween{Duration: time.Second})
	require.ErrorIs(t, err, anim.ErrInterrupted)
	assert.Equal(t, float32(0.99), a.Value())
}

func TestDelay(t *testing.T) {
	clock := animtest.NewVirtualClock()
	require.NoError(t, anim.Delay(context.Background(), clock, 1500*time.Millisecond))
	assert.Equal(t, 1500*time.Millisecond, clock.Elapsed())

	require.NoError(t, anim.Delay(context.Background(), clock, 0))
	assert.Equal(t, 1500*time.Millisecond, clock.Elapsed())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, anim.Delay(ctx, clock, time.Second), context.Canceled)
	assert.Equal(t, 1500*time.Millisecond, clock.Elapsed())
}

func TestStateNotifiesOnlyOnChange(t *testing.T) {
	s := anim.NewState("")
	var calls []string
	unsubscribe := s.Subscribe(func(v string) { calls = append(calls, v) })

	s.Set("H")
	s.Set("H")
	s.Set("He")
	unsubscribe()
	s.Set("Hel")

	assert.Equal(t, []string{"H", "He"}, calls)
	assert.Equal(t, "Hel", s.Get())
}
