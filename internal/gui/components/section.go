package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"kei-portfolio/internal/config"
	"kei-portfolio/internal/gui/layout"
	"kei-portfolio/internal/gui/theme"
)

func SectionTitle(title string, th *theme.Theme) fyne.CanvasObject {
	return container.New(layout.Vertical(config.SmallPadding), HeadlineMediumText(title, th))
}

func SectionSubTitle(title string, th *theme.Theme) fyne.CanvasObject {
	return container.New(layout.Vertical(config.ExtraSmallPadding), TitleMediumText(title, th))
}

func SectionContent(content fyne.CanvasObject) fyne.CanvasObject {
	return container.New(layout.Horizontal(config.MediumPadding), content)
}
