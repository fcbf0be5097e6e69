package splash

import (
	"image"
	"image/color"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kei-portfolio/internal/anim/animtest"
	"kei-portfolio/internal/debug"
	"kei-portfolio/internal/gui/theme"
	"kei-portfolio/internal/logger"
)

func newTestScreen(t *testing.T, clock *animtest.VirtualClock, toProfile func()) *Screen {
	t.Helper()
	test.NewTempApp(t)

	dc := debug.NewCoordinator(debug.DefaultConfig(), logger.NoOp{})
	t.Cleanup(dc.Shutdown)

	return NewScreen(Deps{
		Greeting:  "Hello!!",
		Icon:      image.NewNRGBA(image.Rect(0, 0, 16, 16)),
		Theme:     theme.ForVariant("light"),
		Debug:     dc,
		Clock:     clock,
		RunOnMain: func(f func()) { f() },
	}, toProfile)
}

func waitDone(t *testing.T, s *Screen) {
	t.Helper()
	select {
	case <-s.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("splash run did not finish")
	}
}

func TestScreenRendersInitialState(t *testing.T) {
	s := newTestScreen(t, animtest.NewVirtualClock(), func() {})

	assert.Equal(t, float64(1), s.icon.Translucency)
	assert.Equal(t, StartOffsetX, s.offset.X)
	assert.Equal(t, "", s.label.Text)
	assert.False(t, s.gap.Visible())
}

func TestScreenNavigatesOnceAfterIntro(t *testing.T) {
	calls := 0
	s := newTestScreen(t, animtest.NewVirtualClock(), func() { calls++ })

	s.Mount()
	waitDone(t, s)
	s.Mount()

	assert.Equal(t, 1, calls)
	assert.Equal(t, float64(0), s.icon.Translucency)
	assert.Equal(t, float32(0), s.offset.X)
	assert.Equal(t, "Hello!!", s.label.Text)
	assert.True(t, s.gap.Visible())
	assert.Equal(t, uint8(0xff), s.label.Color.(color.NRGBA).A)
}

func TestScreenUnmountCancelsIntro(t *testing.T) {
	clock := animtest.NewVirtualClock()
	calls := 0
	var s *Screen
	s = newTestScreen(t, clock, func() { calls++ })
	clock.OnAdvance(func(time.Time) {
		if clock.Elapsed() >= FadeInDuration+SlideInDuration+300*time.Millisecond {
			s.Unmount()
		}
	})

	s.Mount()
	waitDone(t, s)

	assert.Zero(t, calls)
	assert.Less(t, len([]rune(s.Sequencer().Revealed().Get())), len([]rune("Hello!!")))

	s.Mount()
	assert.Zero(t, calls, "a cancelled intro is not restarted")
}

func TestScreenRecordsStepTimings(t *testing.T) {
	test.NewTempApp(t)
	dc := debug.NewCoordinator(debug.DefaultConfig(), logger.NoOp{})
	t.Cleanup(dc.Shutdown)

	s := NewScreen(Deps{
		Greeting:  "Hi",
		Icon:      image.NewNRGBA(image.Rect(0, 0, 16, 16)),
		Theme:     theme.ForVariant("dark"),
		Debug:     dc,
		Clock:     animtest.NewVirtualClock(),
		RunOnMain: func(f func()) { f() },
	}, func() {})
	s.Mount()
	waitDone(t, s)

	ops := dc.TimingTracker().Operations()
	require.Equal(t, []string{"splash.fade_in", "splash.hold", "splash.reveal", "splash.slide_in"}, ops)
	assert.Equal(t, HoldDuration, dc.TimingTracker().GetAverageTime("splash.hold"))
	assert.Equal(t, 2*CharDelay, dc.TimingTracker().GetAverageTime("splash.reveal"))
}
