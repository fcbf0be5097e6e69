package app

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/mobile"

	"kei-portfolio/internal/debug"
	"kei-portfolio/internal/navigation"
)

type Handlers struct {
	controller *navigation.Controller
	debugCoord *debug.DebugCoordinator
	window     fyne.Window
	logger     debug.Logger
}

func NewHandlers(controller *navigation.Controller, dc *debug.DebugCoordinator, window fyne.Window) *Handlers {
	return &Handlers{
		controller: controller,
		debugCoord: dc,
		window:     window,
		logger:     dc.Logger(),
	}
}

// HandleBack pops one destination; at the root it does nothing.
func (h *Handlers) HandleBack() bool {
	if !h.controller.PopBackStack() {
		h.logger.Debug("Handlers", "back ignored at root", map[string]interface{}{
			"route": h.controller.Current().ID(),
		})
		return false
	}
	return true
}

func (h *Handlers) HandleKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyEscape, mobile.KeyBack:
		h.HandleBack()
	}
}

func (h *Handlers) HandleShowTimings() {
	dialog.ShowInformation("Splash Timings", h.debugCoord.TimingReport(), h.window)
}
