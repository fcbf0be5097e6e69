package config

import "time"

// UiConfig holds layout constants shared by every screen.
const (
	ExtraSmallPadding float32 = 4
	SmallPadding      float32 = 8
	MediumPadding     float32 = 16
	LargePadding      float32 = 24
	ContentPadding    float32 = 16

	LargeIconSize float32 = 120
	DefaultWeight float32 = 1

	// MobileWidth is the breakpoint between the mobile and desktop layouts.
	// Widths strictly below it are mobile.
	MobileWidth float32 = 600
)

// UiDimensions holds sizes specific to individual screens.
const (
	MediumIconSize float32 = 80

	SplashTextSpacing float32 = 10

	WorksIconRestSize  float32 = 160
	WorksIconHoverSize float32 = 220
	WorksIconAnimation         = 300 * time.Millisecond

	DecorCircleSmall float32 = 24
	DecorCircleLarge float32 = 48
)
