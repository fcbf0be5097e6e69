package layout

import (
	"fyne.io/fyne/v2"
)

// Responsive shows exactly one of two objects depending on the width it is
// laid out at: objects[0] for Mobile and objects[1] for Desktop. The choice
// is recomputed on every layout pass.
type Responsive struct {
	Breakpoint float32

	// OnChange, if set, runs when the chosen variant differs from the last pass.
	OnChange func(DeviceType)

	last    DeviceType
	hasLast bool
}

func NewResponsive(breakpoint float32, onChange func(DeviceType)) *Responsive {
	return &Responsive{Breakpoint: breakpoint, OnChange: onChange}
}

func (r *Responsive) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	if len(objects) < 2 {
		return
	}

	device := ClassifyWidth(containerSize.Width, r.Breakpoint)
	shown, hidden := objects[0], objects[1]
	if device == Desktop {
		shown, hidden = objects[1], objects[0]
	}

	hidden.Hide()
	shown.Show()
	shown.Move(fyne.NewPos(0, 0))
	shown.Resize(containerSize)

	if !r.hasLast || r.last != device {
		r.last, r.hasLast = device, true
		if r.OnChange != nil {
			r.OnChange(device)
		}
	}
}

// MinSize is the mobile variant's, so the window can always shrink into it.
func (r *Responsive) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) == 0 {
		return fyne.NewSize(0, 0)
	}
	return objects[0].MinSize()
}
