package profile

import (
	"context"
	"errors"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"kei-portfolio/internal/anim"
	"kei-portfolio/internal/config"
	"kei-portfolio/internal/gui/components"
	"kei-portfolio/internal/gui/layout"
)

// DesktopContent is the wide layout: header, sections and the works icon
// whose disc grows while the pointer is over its label.
type DesktopContent struct {
	deps  Deps
	root  *fyne.Container
	works *components.WorksIcon
	size  *anim.Animatable

	mu     sync.Mutex
	cancel context.CancelFunc
}

func NewDesktopContent(deps Deps) *DesktopContent {
	th := deps.Theme
	d := &DesktopContent{
		deps: deps,
		size: anim.NewAnimatable(config.WorksIconRestSize, deps.Clock),
	}
	d.works = components.NewWorksIcon(config.WorksIconRestSize, th.Palette.Primary, th, d.onHover)
	d.size.Subscribe(func(v float32) {
		deps.RunOnMain(func() { d.works.SetCircleSize(v) })
	})

	about := components.BodyMediumText(deps.About, th, th.Palette.OnSurface)
	links := container.NewVBox()
	for _, link := range deps.Links {
		links.Add(container.NewHBox(
			components.Circle(config.DecorCircleSmall, th.Palette.Tertiary),
			components.BodyMediumText(link, th, th.Palette.OnSurface),
		))
	}

	column := container.NewVBox(
		components.ProfileHeader(deps.Icon, deps.Name, th),
		components.SectionTitle("About", th),
		components.SectionContent(about),
		components.SectionSubTitle("Links", th),
		components.SectionContent(links),
	)

	decor := container.New(
		layout.NewFixedSize(config.DecorCircleLarge, config.DecorCircleLarge, layout.AlignTopStart),
		components.Circle(config.DecorCircleLarge, th.Palette.Secondary),
	)

	d.root = container.NewStack(
		canvas.NewRectangle(th.Palette.Surface),
		container.NewBorder(nil, nil, nil, decor),
		container.New(layout.All(config.ContentPadding), column),
		d.works,
	)
	return d
}

func (d *DesktopContent) Content() fyne.CanvasObject {
	return d.root
}

func (d *DesktopContent) WorksIcon() *components.WorksIcon {
	return d.works
}

// Stop cancels a running hover animation, leaving the size where it is.
func (d *DesktopContent) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}

func (d *DesktopContent) onHover(hovered bool) {
	target := config.WorksIconRestSize
	if hovered {
		target = config.WorksIconHoverSize
	}

	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	d.mu.Unlock()

	d.deps.Spawn(func() {
		defer cancel()
		err := d.size.AnimateTo(ctx, target, anim.Tween{Duration: config.WorksIconAnimation, Curve: anim.Standard})
		if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, anim.ErrInterrupted) {
			d.deps.Debug.Logger().Error("Profile", err, nil)
		}
	})
}
