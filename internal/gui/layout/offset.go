package layout

import "fyne.io/fyne/v2"

// Offset draws its single child shifted horizontally by X without changing
// the space it takes in the parent.
type Offset struct {
	X float32
}

func (o *Offset) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	for _, obj := range objects {
		obj.Resize(containerSize)
		obj.Move(fyne.NewPos(o.X, 0))
	}
}

func (o *Offset) MinSize(objects []fyne.CanvasObject) fyne.Size {
	return maxMinSize(objects)
}

func maxMinSize(objects []fyne.CanvasObject) fyne.Size {
	size := fyne.NewSize(0, 0)
	for _, obj := range objects {
		size = size.Max(obj.MinSize())
	}
	return size
}
