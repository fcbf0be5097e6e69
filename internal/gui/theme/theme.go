// Package theme holds the app palette and typography and exposes them as a
// fyne.Theme.
package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Palette is the colour scheme screens draw with directly.
type Palette struct {
	Surface   color.NRGBA
	OnSurface color.NRGBA
	Primary   color.NRGBA
	OnPrimary color.NRGBA
	Secondary color.NRGBA
	Tertiary  color.NRGBA
}

// Typography holds the text sizes of the type scale in use.
type Typography struct {
	HeadlineLarge  float32
	HeadlineMedium float32
	TitleMedium    float32
	BodyMedium     float32
}

var DefaultTypography = Typography{
	HeadlineLarge:  32,
	HeadlineMedium: 28,
	TitleMedium:    16,
	BodyMedium:     14,
}

var (
	LightPalette = Palette{
		Surface:   color.NRGBA{R: 0xfe, G: 0xf7, B: 0xff, A: 0xff},
		OnSurface: color.NRGBA{R: 0x1d, G: 0x1b, B: 0x20, A: 0xff},
		Primary:   color.NRGBA{R: 0x65, G: 0x55, B: 0x8f, A: 0xff},
		OnPrimary: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Secondary: color.NRGBA{R: 0xe8, G: 0xde, B: 0xf8, A: 0xff},
		Tertiary:  color.NRGBA{R: 0xff, G: 0xd8, B: 0xe4, A: 0xff},
	}

	DarkPalette = Palette{
		Surface:   color.NRGBA{R: 0x14, G: 0x12, B: 0x18, A: 0xff},
		OnSurface: color.NRGBA{R: 0xe6, G: 0xe0, B: 0xe9, A: 0xff},
		Primary:   color.NRGBA{R: 0xcf, G: 0xbc, B: 0xff, A: 0xff},
		OnPrimary: color.NRGBA{R: 0x38, G: 0x1e, B: 0x72, A: 0xff},
		Secondary: color.NRGBA{R: 0x4a, G: 0x44, B: 0x58, A: 0xff},
		Tertiary:  color.NRGBA{R: 0x63, G: 0x3b, B: 0x48, A: 0xff},
	}
)

// Theme bundles a palette and type scale. It implements fyne.Theme so that
// stock widgets match the custom drawn components.
type Theme struct {
	Palette    Palette
	Typography Typography
	variant    fyne.ThemeVariant
}

// ForVariant returns the theme for "dark", falling back to light otherwise.
func ForVariant(name string) *Theme {
	if name == "dark" {
		return &Theme{Palette: DarkPalette, Typography: DefaultTypography, variant: theme.VariantDark}
	}
	return &Theme{Palette: LightPalette, Typography: DefaultTypography, variant: theme.VariantLight}
}

func (t *Theme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return t.Palette.Surface
	case theme.ColorNameForeground:
		return t.Palette.OnSurface
	case theme.ColorNamePrimary:
		return t.Palette.Primary
	}
	return theme.DefaultTheme().Color(name, t.variant)
}

func (t *Theme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *Theme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *Theme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNameText {
		return t.Typography.BodyMedium
	}
	return theme.DefaultTheme().Size(name)
}
