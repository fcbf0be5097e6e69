package profile

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"kei-portfolio/internal/config"
	"kei-portfolio/internal/gui/components"
	"kei-portfolio/internal/gui/layout"
	"kei-portfolio/internal/gui/theme"
)

func NewMobileContent(th *theme.Theme) fyne.CanvasObject {
	surface := canvas.NewRectangle(th.Palette.Surface)
	column := container.NewVBox(components.BodyMediumText("Mobile Content", th, th.Palette.OnSurface))
	return container.NewStack(surface, container.New(layout.All(config.ContentPadding), column))
}
