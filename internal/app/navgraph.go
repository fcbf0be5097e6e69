package app

import (
	"image"
	"time"

	"kei-portfolio/internal/anim"
	"kei-portfolio/internal/config"
	"kei-portfolio/internal/debug"
	"kei-portfolio/internal/gui/profile"
	"kei-portfolio/internal/gui/splash"
	"kei-portfolio/internal/gui/theme"
	"kei-portfolio/internal/navigation"
)

// Transitions used when a destination is revealed or left by back navigation.
var (
	SplashPopEnter  = navigation.FadeIn(2000*time.Millisecond, 0.1)
	SplashPopExit   = navigation.FadeOut(2000 * time.Millisecond)
	ProfilePopEnter = navigation.FadeIn(1000*time.Millisecond, 0.1)
	ProfilePopExit  = navigation.FadeOut(2000 * time.Millisecond)
)

// Screens holds what every destination is built from.
type Screens struct {
	Config config.Config
	Theme  *theme.Theme
	Icon   image.Image
	Debug  debug.Coordinator
	Clock  anim.Clock

	// RunOnMain is passed through to the screens; nil means fyne.Do.
	RunOnMain func(func())
}

// NewNavGraph wires Splash as the start destination, moving on to Profile
// once the intro has played.
func NewNavGraph(s Screens) *navigation.Graph {
	return navigation.NewGraph(navigation.Splash,
		navigation.Destination{
			Route:    navigation.Splash,
			PopEnter: SplashPopEnter,
			PopExit:  SplashPopExit,
			Build: func(nav navigation.Navigator) navigation.Screen {
				return splash.NewScreen(splash.Deps{
					Greeting:  s.Config.Splash.Greeting,
					Icon:      s.Icon,
					Theme:     s.Theme,
					Debug:     s.Debug,
					Clock:     s.Clock,
					RunOnMain: s.RunOnMain,
				}, func() { nav.Navigate(navigation.Profile) })
			},
		},
		navigation.Destination{
			Route:    navigation.Profile,
			PopEnter: ProfilePopEnter,
			PopExit:  ProfilePopExit,
			Build: func(navigation.Navigator) navigation.Screen {
				return profile.NewScreen(profile.Deps{
					Name:      s.Config.Profile.Name,
					About:     s.Config.Profile.About,
					Links:     s.Config.Profile.Links,
					Icon:      s.Icon,
					Theme:     s.Theme,
					Debug:     s.Debug,
					Clock:     s.Clock,
					RunOnMain: s.RunOnMain,
				})
			},
		},
	)
}
