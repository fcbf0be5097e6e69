package navigation

import (
	"time"

	"fyne.io/fyne/v2"

	"kei-portfolio/internal/anim"
)

// Fade is an opacity transition applied to a screen as it enters or leaves.
type Fade struct {
	Duration time.Duration
	From     float32
	To       float32
	Curve    fyne.AnimationCurve
}

// FadeIn brings a screen from initialAlpha to fully opaque.
func FadeIn(d time.Duration, initialAlpha float32) Fade {
	return Fade{Duration: d, From: initialAlpha, To: 1, Curve: anim.Standard}
}

// FadeOut takes a screen from fully opaque to invisible.
func FadeOut(d time.Duration) Fade {
	return Fade{Duration: d, From: 1, To: 0, Curve: anim.Standard}
}

func (f Fade) Tween() anim.Tween {
	return anim.Tween{Duration: f.Duration, Curve: f.Curve}
}

// Host defaults for forward navigation.
var (
	DefaultEnter = FadeIn(700*time.Millisecond, 0)
	DefaultExit  = FadeOut(700 * time.Millisecond)
)
