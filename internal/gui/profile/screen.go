// Package profile is the landing screen shown after the splash intro.
package profile

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"kei-portfolio/internal/anim"
	"kei-portfolio/internal/config"
	"kei-portfolio/internal/debug"
	"kei-portfolio/internal/gui/layout"
	"kei-portfolio/internal/gui/theme"
)

type Deps struct {
	Name  string
	About string
	Links []string
	Icon  image.Image
	Theme *theme.Theme
	Debug debug.Coordinator
	Clock anim.Clock

	// RunOnMain defaults to fyne.Do and Spawn to a new goroutine.
	RunOnMain func(func())
	Spawn     func(func())
}

// Screen picks the mobile or desktop variant from the width it is laid out
// at, on every layout pass.
type Screen struct {
	deps       Deps
	responsive *layout.Responsive
	mobile     fyne.CanvasObject
	desktop    *DesktopContent
	root       *fyne.Container
}

func NewScreen(deps Deps) *Screen {
	if deps.RunOnMain == nil {
		deps.RunOnMain = fyne.Do
	}
	if deps.Spawn == nil {
		deps.Spawn = func(f func()) { go f() }
	}

	s := &Screen{
		deps:    deps,
		mobile:  NewMobileContent(deps.Theme),
		desktop: NewDesktopContent(deps),
	}
	s.responsive = layout.NewResponsive(config.MobileWidth, s.onDeviceChange)
	s.root = container.New(s.responsive, s.mobile, s.desktop.Content())
	return s
}

func (s *Screen) Content() fyne.CanvasObject {
	return s.root
}

func (s *Screen) Mount() {
	s.deps.Debug.Logger().Debug("Profile", "mounted", nil)
}

// Unmount stops the hover animation if one is running.
func (s *Screen) Unmount() {
	s.desktop.Stop()
}

func (s *Screen) Desktop() *DesktopContent {
	return s.desktop
}

func (s *Screen) onDeviceChange(device layout.DeviceType) {
	s.deps.Debug.Logger().Debug("Profile", "layout variant selected", map[string]interface{}{
		"device":     device.String(),
		"breakpoint": config.MobileWidth,
	})
}
