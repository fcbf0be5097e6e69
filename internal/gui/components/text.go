package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"kei-portfolio/internal/gui/theme"
)

func styledText(text string, size float32, c color.Color, bold bool) *canvas.Text {
	t := canvas.NewText(text, c)
	t.TextSize = size
	t.TextStyle = fyne.TextStyle{Bold: bold}
	return t
}

func HeadlineLargeText(text string, th *theme.Theme) *canvas.Text {
	return styledText(text, th.Typography.HeadlineLarge, th.Palette.OnSurface, true)
}

func HeadlineMediumText(text string, th *theme.Theme) *canvas.Text {
	return styledText(text, th.Typography.HeadlineMedium, th.Palette.OnSurface, true)
}

func TitleMediumText(text string, th *theme.Theme) *canvas.Text {
	return styledText(text, th.Typography.TitleMedium, th.Palette.OnSurface, true)
}

// BodyMediumText takes its colour explicitly since it is drawn on surfaces
// other than the background.
func BodyMediumText(text string, th *theme.Theme, c color.Color) *canvas.Text {
	return styledText(text, th.Typography.BodyMedium, c, false)
}
