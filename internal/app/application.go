package app

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"kei-portfolio/internal/anim"
	"kei-portfolio/internal/config"
	"kei-portfolio/internal/debug"
	"kei-portfolio/internal/gui/resources"
	"kei-portfolio/internal/gui/theme"
	"kei-portfolio/internal/logger"
	"kei-portfolio/internal/navigation"
)

const (
	AppName    = "Kei Portfolio"
	AppID      = "dev.kei.portfolio"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	debugCoord *debug.DebugCoordinator
	controller *navigation.Controller
	host       *navigation.Host
	handlers   *Handlers
	lifecycle  *Lifecycle
}

func NewApplication(cfg config.Config, log logger.Logger) (*Application, error) {
	return newApplication(app.NewWithID(AppID), cfg, log, anim.SystemClock())
}

func newApplication(fyneApp fyne.App, cfg config.Config, log logger.Logger, clock anim.Clock) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	th := theme.ForVariant(cfg.Theme.Variant)
	fyneApp.Settings().SetTheme(th)

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.SetPadded(false)
	window.CenterOnScreen()
	window.SetMaster()

	debugConfig := debug.DefaultConfig()
	debugConfig.LogEvents = cfg.Log.Level == "debug"
	debugCoord := debug.NewCoordinator(debugConfig, log)

	log.Info("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"window_width":  cfg.Window.Width,
		"window_height": cfg.Window.Height,
		"theme":         cfg.Theme.Variant,
	})

	icon := resources.LoadProfileIcon(cfg.Profile.IconPath, cfg.Profile.Name, th.Palette, log)

	graph := NewNavGraph(Screens{
		Config: cfg,
		Theme:  th,
		Icon:   icon,
		Debug:  debugCoord,
		Clock:  clock,
	})
	controller := navigation.NewController(graph, log, debugCoord.EventPublisher())
	host := navigation.NewHost(controller, debugCoord, th.Palette.Surface, navigation.WithClock(clock))

	a := &Application{
		fyneApp:    fyneApp,
		window:     window,
		debugCoord: debugCoord,
		controller: controller,
		host:       host,
		handlers:   NewHandlers(controller, debugCoord, window),
		lifecycle:  NewLifecycle(debugCoord, host),
	}

	a.setupMenus()
	window.Canvas().SetOnTypedKey(a.handlers.HandleKey)
	window.SetContent(host.Content())

	log.Info("Application", "initialization complete", nil)
	return a, nil
}

func (a *Application) Run() error {
	log := a.debugCoord.Logger()

	a.window.SetCloseIntercept(func() {
		log.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
		a.window.Close()
	})
	a.lifecycle.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})

	a.host.Start()
	a.window.Show()

	log.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	a.lifecycle.Shutdown()
	return nil
}
