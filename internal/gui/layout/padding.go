package layout

import "fyne.io/fyne/v2"

// Padding insets its children by fixed amounts on each side.
type Padding struct {
	Top, Bottom, Left, Right float32
}

// Vertical pads only top and bottom.
func Vertical(p float32) *Padding {
	return &Padding{Top: p, Bottom: p}
}

// Horizontal pads only left and right.
func Horizontal(p float32) *Padding {
	return &Padding{Left: p, Right: p}
}

// All pads every side equally.
func All(p float32) *Padding {
	return &Padding{Top: p, Bottom: p, Left: p, Right: p}
}

func (p *Padding) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	inner := fyne.NewSize(
		nonNegative(containerSize.Width-p.Left-p.Right),
		nonNegative(containerSize.Height-p.Top-p.Bottom),
	)
	for _, obj := range objects {
		obj.Resize(inner)
		obj.Move(fyne.NewPos(p.Left, p.Top))
	}
}

func (p *Padding) MinSize(objects []fyne.CanvasObject) fyne.Size {
	return maxMinSize(objects).Add(fyne.NewSize(p.Left+p.Right, p.Top+p.Bottom))
}

func nonNegative(v float32) float32 {
	if v < 0 {
		return 0
	}
	return v
}
