package app

import "fyne.io/fyne/v2"

func (a *Application) setupMenus() {
	navigateMenu := fyne.NewMenu("Navigate",
		fyne.NewMenuItem("Back", func() {
			a.handlers.HandleBack()
		}),
	)

	debugMenu := fyne.NewMenu("Debug",
		fyne.NewMenuItem("Splash Timings", func() {
			a.handlers.HandleShowTimings()
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(navigateMenu, debugMenu))
}
