package components

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"kei-portfolio/internal/gui/layout"
)

// Circle is a filled disc of the given diameter. Negative sizes draw nothing.
func Circle(size float32, c color.Color) fyne.CanvasObject {
	return container.New(layout.NewFixedSize(size, size, layout.AlignTopStart), canvas.NewCircle(c))
}

// Avatar shows an already circular image at a fixed square size.
func Avatar(img image.Image, size float32) *fyne.Container {
	picture := canvas.NewImageFromImage(img)
	picture.FillMode = canvas.ImageFillContain
	picture.ScaleMode = canvas.ImageScaleSmooth
	return container.New(layout.NewFixedSize(size, size, layout.AlignCenter), picture)
}
