package layout

import "fyne.io/fyne/v2"

// FixedSize gives every child exactly Size, anchored according to Align.
type FixedSize struct {
	Size  fyne.Size
	Align Alignment
}

type Alignment int

const (
	AlignTopStart Alignment = iota
	AlignCenter
	AlignBottomEnd
)

func NewFixedSize(width, height float32, align Alignment) *FixedSize {
	return &FixedSize{
		Size:  fyne.NewSize(nonNegative(width), nonNegative(height)),
		Align: align,
	}
}

func (f *FixedSize) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	pos := fyne.NewPos(0, 0)
	switch f.Align {
	case AlignCenter:
		pos = fyne.NewPos((containerSize.Width-f.Size.Width)/2, (containerSize.Height-f.Size.Height)/2)
	case AlignBottomEnd:
		pos = fyne.NewPos(containerSize.Width-f.Size.Width, containerSize.Height-f.Size.Height)
	}

	for _, obj := range objects {
		obj.Resize(f.Size)
		obj.Move(pos)
	}
}

func (f *FixedSize) MinSize([]fyne.CanvasObject) fyne.Size {
	return f.Size
}
