package app

import (
	"image"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kei-portfolio/internal/anim/animtest"
	"kei-portfolio/internal/config"
	"kei-portfolio/internal/debug"
	"kei-portfolio/internal/gui/profile"
	"kei-portfolio/internal/gui/splash"
	"kei-portfolio/internal/gui/theme"
	"kei-portfolio/internal/logger"
	"kei-portfolio/internal/navigation"
)

func testConfig() config.Config {
	return config.Config{
		Log:     config.LogConfig{Level: "info"},
		Window:  config.WindowConfig{Width: 800, Height: 600},
		Splash:  config.SplashConfig{Greeting: "Hi"},
		Profile: config.ProfileConfig{Name: "Kei", About: "About me", Links: []string{"kei.dev"}},
		Theme:   config.ThemeConfig{Variant: "light"},
	}
}

type recordingNavigator struct {
	mu     sync.Mutex
	routes []navigation.Route
}

func (r *recordingNavigator) Navigate(route navigation.Route) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = append(r.routes, route)
}

func (r *recordingNavigator) Routes() []navigation.Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]navigation.Route(nil), r.routes...)
}

func testScreens(t *testing.T) Screens {
	t.Helper()
	test.NewTempApp(t)

	dc := debug.NewCoordinator(debug.DefaultConfig(), logger.NoOp{})
	t.Cleanup(dc.Shutdown)

	return Screens{
		Config:    testConfig(),
		Theme:     theme.ForVariant("light"),
		Icon:      image.NewNRGBA(image.Rect(0, 0, 8, 8)),
		Debug:     dc,
		Clock:     animtest.NewVirtualClock(),
		RunOnMain: func(f func()) { f() },
	}
}

func TestNavGraphTransitions(t *testing.T) {
	graph := NewNavGraph(testScreens(t))
	assert.Equal(t, navigation.Splash, graph.Start())

	s, ok := graph.Destination(navigation.Splash)
	require.True(t, ok)
	assert.Equal(t, 2000*time.Millisecond, s.PopEnter.Duration)
	assert.Equal(t, float32(0.1), s.PopEnter.From)
	assert.Equal(t, 2000*time.Millisecond, s.PopExit.Duration)

	p, ok := graph.Destination(navigation.Profile)
	require.True(t, ok)
	assert.Equal(t, 1000*time.Millisecond, p.PopEnter.Duration)
	assert.Equal(t, float32(0.1), p.PopEnter.From)
	assert.Equal(t, 2000*time.Millisecond, p.PopExit.Duration)
}

func TestSplashDestinationNavigatesToProfileOnce(t *testing.T) {
	graph := NewNavGraph(testScreens(t))
	nav := &recordingNavigator{}

	dest, _ := graph.Destination(navigation.Splash)
	screen, ok := dest.Build(nav).(*splash.Screen)
	require.True(t, ok)

	screen.Mount()
	select {
	case <-screen.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("intro did not finish")
	}
	screen.Mount()

	assert.Equal(t, []navigation.Route{navigation.Profile}, nav.Routes())
}

func TestProfileDestinationBuildsProfileScreen(t *testing.T) {
	graph := NewNavGraph(testScreens(t))

	dest, _ := graph.Destination(navigation.Profile)
	_, ok := dest.Build(&recordingNavigator{}).(*profile.Screen)
	assert.True(t, ok)
}

// frozenClock never lets time pass, parking every transition until shutdown.
type frozenClock struct{}

func (frozenClock) Now() time.Time                       { return animtest.Epoch }
func (frozenClock) After(time.Duration) <-chan time.Time { return nil }

func newTestApplication(t *testing.T) *Application {
	t.Helper()
	a, err := newApplication(test.NewTempApp(t), testConfig(), logger.NoOp{}, frozenClock{})
	require.NoError(t, err)
	t.Cleanup(a.lifecycle.Shutdown)
	return a
}

func TestNewApplicationRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Theme.Variant = "sepia"

	_, err := newApplication(test.NewTempApp(t), cfg, logger.NoOp{}, animtest.NewVirtualClock())
	assert.Error(t, err)
}

func TestBackKeysPopTheStack(t *testing.T) {
	a := newTestApplication(t)
	assert.Equal(t, navigation.Splash, a.controller.Current())

	a.handlers.HandleKey(&fyne.KeyEvent{Name: fyne.KeyEscape})
	assert.Equal(t, navigation.Splash, a.controller.Current())

	a.controller.Navigate(navigation.Profile)
	a.handlers.HandleKey(&fyne.KeyEvent{Name: fyne.KeyEscape})
	assert.Equal(t, navigation.Splash, a.controller.Current())

	a.controller.Navigate(navigation.Profile)
	a.handlers.HandleKey(&fyne.KeyEvent{Name: mobile.KeyBack})
	assert.Equal(t, []navigation.Route{navigation.Splash}, a.controller.BackStack())

	a.controller.Navigate(navigation.Profile)
	a.handlers.HandleKey(&fyne.KeyEvent{Name: fyne.KeySpace})
	assert.Equal(t, navigation.Profile, a.controller.Current())
}

func TestMenusExposeBackAndTimings(t *testing.T) {
	a := newTestApplication(t)

	menu := a.window.MainMenu()
	require.NotNil(t, menu)
	require.Len(t, menu.Items, 2)
	assert.Equal(t, "Navigate", menu.Items[0].Label)
	assert.Equal(t, "Back", menu.Items[0].Items[0].Label)
	assert.Equal(t, "Debug", menu.Items[1].Label)
	assert.Equal(t, "Splash Timings", menu.Items[1].Items[0].Label)
}
