package components

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"

	"kei-portfolio/internal/config"
	"kei-portfolio/internal/gui/theme"
)

// ProfileHeader is the avatar followed by the name, which takes the
// remaining width and is centred vertically against the avatar.
func ProfileHeader(icon image.Image, name string, th *theme.Theme) fyne.CanvasObject {
	gap := canvas.NewRectangle(color.Transparent)
	gap.SetMinSize(fyne.NewSize(config.SmallPadding*2, 0))

	leading := container.NewHBox(Avatar(icon, config.LargeIconSize), gap)
	label := container.NewVBox(layout.NewSpacer(), HeadlineLargeText(name, th), layout.NewSpacer())

	return container.NewBorder(nil, nil, leading, nil, label)
}
