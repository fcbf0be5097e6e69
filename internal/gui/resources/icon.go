// Package resources loads the images screens show.
package resources

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"kei-portfolio/internal/gui/theme"
	"kei-portfolio/internal/logger"
)

// IconSize is the pixel edge of the square, circular profile icon.
const IconSize = 256

// LoadProfileIcon reads the image at path and crops it to a circle. An empty
// path or a failed read yields a placeholder built from the name's initial.
func LoadProfileIcon(path, name string, palette theme.Palette, log logger.Logger) image.Image {
	if path == "" {
		return CircleCrop(Placeholder(name, palette), IconSize)
	}

	img, err := DecodeFile(path)
	if err != nil {
		log.Warning("Resources", "profile icon unavailable, using placeholder", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		return CircleCrop(Placeholder(name, palette), IconSize)
	}
	return CircleCrop(img, IconSize)
}

func DecodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open icon: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode icon %s: %w", path, err)
	}
	return img, nil
}

// Placeholder draws the first letter of name on the secondary colour.
func Placeholder(name string, palette theme.Palette) image.Image {
	const cell = 32
	small := image.NewNRGBA(image.Rect(0, 0, cell, cell))
	draw.Draw(small, small.Bounds(), image.NewUniform(palette.Secondary), image.Point{}, draw.Src)

	initial, _ := utf8.DecodeRuneInString(strings.TrimSpace(name))
	if initial != utf8.RuneError && initial < utf8.RuneSelf {
		face := basicfont.Face7x13
		d := &font.Drawer{
			Dst:  small,
			Src:  image.NewUniform(palette.OnSurface),
			Face: face,
		}
		glyph := string(unicode.ToUpper(initial))
		width := d.MeasureString(glyph).Ceil()
		d.Dot = fixed.P((cell-width)/2, (cell+face.Ascent-face.Descent)/2)
		d.DrawString(glyph)
	}

	out := image.NewNRGBA(image.Rect(0, 0, IconSize, IconSize))
	xdraw.NearestNeighbor.Scale(out, out.Bounds(), small, small.Bounds(), xdraw.Src, nil)
	return out
}

// CircleCrop scales src to cover a size×size square and clears everything
// outside the inscribed circle.
func CircleCrop(src image.Image, size int) *image.NRGBA {
	if size <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0))
	}

	square := image.NewNRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(square, square.Bounds(), src, coverRect(src.Bounds()), xdraw.Src, nil)

	out := image.NewNRGBA(square.Bounds())
	draw.DrawMask(out, out.Bounds(), square, image.Point{}, &circleMask{size: size}, image.Point{}, draw.Over)
	return out
}

// coverRect is the largest centred square inside r.
func coverRect(r image.Rectangle) image.Rectangle {
	side := r.Dx()
	if r.Dy() < side {
		side = r.Dy()
	}
	x := r.Min.X + (r.Dx()-side)/2
	y := r.Min.Y + (r.Dy()-side)/2
	return image.Rect(x, y, x+side, y+side)
}

type circleMask struct {
	size int
}

func (c *circleMask) ColorModel() color.Model { return color.AlphaModel }

func (c *circleMask) Bounds() image.Rectangle { return image.Rect(0, 0, c.size, c.size) }

func (c *circleMask) At(x, y int) color.Color {
	r := float64(c.size) / 2
	dx, dy := float64(x)+0.5-r, float64(y)+0.5-r
	if dx*dx+dy*dy <= r*r {
		return color.Alpha{A: 0xff}
	}
	return color.Alpha{}
}
