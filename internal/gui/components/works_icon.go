package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"kei-portfolio/internal/config"
	"kei-portfolio/internal/gui/theme"
)

var _ desktop.Hoverable = (*HoverText)(nil)

// HoverText is a text label that reports the pointer entering and leaving it.
type HoverText struct {
	widget.BaseWidget

	Text    *canvas.Text
	OnHover func(hovered bool)

	hovered bool
}

func NewHoverText(text *canvas.Text, onHover func(bool)) *HoverText {
	h := &HoverText{Text: text, OnHover: onHover}
	h.ExtendBaseWidget(h)
	return h
}

func (h *HoverText) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(h.Text)
}

func (h *HoverText) Hovered() bool {
	return h.hovered
}

func (h *HoverText) MouseIn(*desktop.MouseEvent) {
	h.setHovered(true)
}

func (h *HoverText) MouseMoved(*desktop.MouseEvent) {}

func (h *HoverText) MouseOut() {
	h.setHovered(false)
}

func (h *HoverText) setHovered(hovered bool) {
	if h.hovered == hovered {
		return
	}
	h.hovered = hovered
	if h.OnHover != nil {
		h.OnHover(hovered)
	}
}

// WorksIcon draws a quarter disc growing out of its bottom-end corner with a
// "Works" label on top. The disc radius is driven from outside through
// SetCircleSize.
type WorksIcon struct {
	widget.BaseWidget

	circle *canvas.Circle
	label  *HoverText
	size   float32
}

func NewWorksIcon(animatedSize float32, circleColor color.Color, th *theme.Theme, onHover func(bool)) *WorksIcon {
	w := &WorksIcon{
		circle: canvas.NewCircle(circleColor),
		label:  NewHoverText(BodyMediumText("Works", th, th.Palette.OnPrimary), onHover),
		size:   clampSize(animatedSize),
	}
	w.ExtendBaseWidget(w)
	return w
}

func (w *WorksIcon) SetCircleSize(size float32) {
	w.size = clampSize(size)
	w.Refresh()
}

func (w *WorksIcon) CircleSize() float32 {
	return w.size
}

// Label exposes the hover target.
func (w *WorksIcon) Label() *HoverText {
	return w.label
}

func (w *WorksIcon) CreateRenderer() fyne.WidgetRenderer {
	return &worksIconRenderer{icon: w}
}

type worksIconRenderer struct {
	icon *WorksIcon
}

func (r *worksIconRenderer) Layout(size fyne.Size) {
	radius := r.icon.size
	r.icon.circle.Move(fyne.NewPos(size.Width-radius, size.Height-radius))
	r.icon.circle.Resize(fyne.NewSize(radius*2, radius*2))

	labelSize := r.icon.label.MinSize()
	r.icon.label.Resize(labelSize)
	r.icon.label.Move(fyne.NewPos(
		size.Width-config.LargePadding-labelSize.Width,
		size.Height-config.LargePadding-labelSize.Height,
	))
}

func (r *worksIconRenderer) MinSize() fyne.Size {
	return fyne.NewSize(config.LargeIconSize, config.LargeIconSize)
}

func (r *worksIconRenderer) Refresh() {
	r.Layout(r.icon.Size())
	r.icon.circle.Refresh()
	r.icon.label.Refresh()
}

func (r *worksIconRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.icon.circle, r.icon.label}
}

func (r *worksIconRenderer) Destroy() {}

func clampSize(size float32) float32 {
	if size < 0 {
		return 0
	}
	return size
}
