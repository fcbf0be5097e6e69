package navigation

import (
	"context"
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"kei-portfolio/internal/anim"
	"kei-portfolio/internal/debug"
)

// Host shows the controller's current destination. Fyne has no per-container
// opacity, so fades are drawn with a background coloured scrim over the
// screen: the leaving screen fades out, then the entering screen fades in.
type Host struct {
	controller *Controller
	logger     debug.Logger
	events     debug.EventPublisher
	background color.NRGBA

	body  *fyne.Container
	scrim *canvas.Rectangle
	root  *fyne.Container

	alpha *anim.Animatable

	// Overridable for tests.
	runOnMain func(func())
	spawn     func(func())

	mu               sync.Mutex
	current          Screen
	currentEntry     Entry
	cancelTransition context.CancelFunc
	isShutdown       bool
}

type HostOption func(*Host)

// WithClock drives transitions from clock instead of the wall clock.
func WithClock(clock anim.Clock) HostOption {
	return func(h *Host) { h.alpha = anim.NewAnimatable(1, clock) }
}

// WithScheduler replaces fyne.Do and goroutine spawning.
func WithScheduler(runOnMain, spawn func(func())) HostOption {
	return func(h *Host) {
		h.runOnMain = runOnMain
		h.spawn = spawn
	}
}

func NewHost(controller *Controller, dc debug.Coordinator, background color.Color, opts ...HostOption) *Host {
	bg := color.NRGBAModel.Convert(background).(color.NRGBA)

	h := &Host{
		controller: controller,
		logger:     dc.Logger(),
		events:     dc.EventPublisher(),
		background: bg,
		body:       container.NewStack(),
		scrim:      canvas.NewRectangle(color.Transparent),
		alpha:      anim.NewAnimatable(1, nil),
		runOnMain:  fyne.Do,
		spawn:      func(f func()) { go f() },
	}
	for _, opt := range opts {
		opt(h)
	}

	h.root = container.NewStack(h.body, h.scrim)
	h.alpha.Subscribe(func(v float32) {
		h.runOnMain(func() { h.applyAlpha(v) })
	})
	controller.OnChange(func(change Change) {
		h.runOnMain(func() { h.show(change) })
	})

	return h
}

func (h *Host) Content() fyne.CanvasObject {
	return h.root
}

// Start mounts the controller's current entry without a transition.
func (h *Host) Start() {
	entry := h.controller.CurrentEntry()
	h.alpha.SnapTo(1)
	h.mount(entry)
}

// CurrentScreen returns the mounted screen, or nil during an exit fade.
func (h *Host) CurrentScreen() Screen {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}

// Shutdown unmounts the current screen and stops any transition.
func (h *Host) Shutdown() {
	h.mu.Lock()
	if h.isShutdown {
		h.mu.Unlock()
		return
	}
	h.isShutdown = true
	cancel := h.cancelTransition
	h.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	h.unmountCurrent()
	h.logger.Info("NavHost", "shutdown completed", nil)
}

func (h *Host) transitionsFor(change Change) (exit, enter Fade) {
	if !change.Pop {
		return DefaultExit, DefaultEnter
	}
	from := h.controller.Graph().mustDestination(change.From.Route)
	to := h.controller.Graph().mustDestination(change.To.Route)
	return from.PopExit, to.PopEnter
}

func (h *Host) show(change Change) {
	h.mu.Lock()
	if h.isShutdown {
		h.mu.Unlock()
		return
	}
	if h.cancelTransition != nil {
		h.cancelTransition()
	}
	ctx, cancel := context.WithCancel(context.Background())
	h.cancelTransition = cancel
	h.mu.Unlock()

	exit, enter := h.transitionsFor(change)
	fadeOut := len(h.body.Objects) > 0 && exit.Duration > 0
	h.unmountCurrent()

	h.spawn(func() {
		defer cancel()

		if fadeOut {
			if err := h.alpha.AnimateTo(ctx, exit.To, exit.Tween()); err != nil {
				return
			}
		}

		mounted := make(chan bool, 1)
		h.runOnMain(func() {
			if ctx.Err() != nil {
				mounted <- false
				return
			}
			h.alpha.SnapTo(enter.From)
			h.mount(change.To)
			mounted <- true
		})
		if !<-mounted {
			return
		}

		_ = h.alpha.AnimateTo(ctx, enter.To, enter.Tween())
	})
}

func (h *Host) mount(entry Entry) {
	dest := h.controller.Graph().mustDestination(entry.Route)
	screen := dest.Build(h.controller)

	h.mu.Lock()
	h.current = screen
	h.currentEntry = entry
	h.mu.Unlock()

	h.body.Objects = []fyne.CanvasObject{screen.Content()}
	h.body.Refresh()
	screen.Mount()

	fields := map[string]interface{}{"route": entry.Route.ID(), "entry": entry.ID.String()}
	h.logger.Debug("NavHost", "screen mounted", fields)
	if h.events != nil {
		h.events.Publish(debug.Event{Type: debug.TopicScreenMounted, Data: fields})
	}
}

// unmountCurrent stops the current screen's work; its content stays visible
// until the next screen replaces it so it can fade out.
func (h *Host) unmountCurrent() {
	h.mu.Lock()
	screen, entry := h.current, h.currentEntry
	h.current = nil
	h.mu.Unlock()

	if screen == nil {
		return
	}
	screen.Unmount()

	fields := map[string]interface{}{"route": entry.Route.ID(), "entry": entry.ID.String()}
	h.logger.Debug("NavHost", "screen unmounted", fields)
	if h.events != nil {
		h.events.Publish(debug.Event{Type: debug.TopicScreenUnmounted, Data: fields})
	}
}

func (h *Host) applyAlpha(contentAlpha float32) {
	if contentAlpha < 0 {
		contentAlpha = 0
	}
	if contentAlpha > 1 {
		contentAlpha = 1
	}
	scrim := h.background
	scrim.A = uint8((1 - contentAlpha) * 255)
	h.scrim.FillColor = scrim
	h.scrim.Refresh()
}

// ScrimAlpha reports the current scrim opacity in [0,1].
func (h *Host) ScrimAlpha() float32 {
	c, ok := h.scrim.FillColor.(color.NRGBA)
	if !ok {
		return 0
	}
	return float32(c.A) / 255
}
