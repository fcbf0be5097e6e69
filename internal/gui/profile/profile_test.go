package profile

import (
	"image"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"kei-portfolio/internal/anim/animtest"
	"kei-portfolio/internal/config"
	"kei-portfolio/internal/debug"
	"kei-portfolio/internal/gui/theme"
	"kei-portfolio/internal/logger"
)

func newTestScreen(t *testing.T) *Screen {
	t.Helper()
	test.NewTempApp(t)

	dc := debug.NewCoordinator(debug.DefaultConfig(), logger.NoOp{})
	t.Cleanup(dc.Shutdown)

	return NewScreen(Deps{
		Name:      "Kei",
		About:     "Builds small apps.",
		Links:     []string{"github.com/kei"},
		Icon:      image.NewNRGBA(image.Rect(0, 0, 16, 16)),
		Theme:     theme.ForVariant("light"),
		Debug:     dc,
		Clock:     animtest.NewVirtualClock(),
		RunOnMain: func(f func()) { f() },
		Spawn:     func(f func()) { f() },
	})
}

func TestScreenSwitchesVariantAtBreakpoint(t *testing.T) {
	s := newTestScreen(t)
	content := s.Content()

	tests := []struct {
		name    string
		width   float32
		desktop bool
	}{
		{"narrow", 360, false},
		{"just below", config.MobileWidth - 1, false},
		{"at breakpoint", config.MobileWidth, true},
		{"wide", 1280, true},
		{"back to narrow", 400, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content.Resize(fyne.NewSize(tt.width, 800))
			assert.Equal(t, tt.desktop, s.desktop.Content().Visible())
			assert.Equal(t, !tt.desktop, s.mobile.Visible())
		})
	}
}

func TestWorksIconGrowsOnHoverAndShrinksBack(t *testing.T) {
	s := newTestScreen(t)
	works := s.Desktop().WorksIcon()
	assert.Equal(t, config.WorksIconRestSize, works.CircleSize())

	works.Label().MouseIn(nil)
	assert.InDelta(t, config.WorksIconHoverSize, works.CircleSize(), 0.01)

	works.Label().MouseOut()
	assert.InDelta(t, config.WorksIconRestSize, works.CircleSize(), 0.01)
}

func TestUnmountStopsHoverAnimation(t *testing.T) {
	s := newTestScreen(t)
	var pending []func()
	s.desktop.deps.Spawn = func(f func()) { pending = append(pending, f) }

	s.Mount()
	works := s.Desktop().WorksIcon()
	works.Label().MouseIn(nil)
	s.Unmount()

	for _, run := range pending {
		run()
	}
	assert.Equal(t, config.WorksIconRestSize, works.CircleSize())
}
