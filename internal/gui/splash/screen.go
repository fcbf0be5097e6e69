package splash

import (
	"context"
	"errors"
	"image"
	"image/color"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	fynelayout "fyne.io/fyne/v2/layout"
	"github.com/google/uuid"

	"kei-portfolio/internal/anim"
	"kei-portfolio/internal/config"
	"kei-portfolio/internal/debug"
	"kei-portfolio/internal/gui/components"
	"kei-portfolio/internal/gui/layout"
	"kei-portfolio/internal/gui/theme"
)

// Deps are the collaborators a splash screen is built from.
type Deps struct {
	Greeting string
	Icon     image.Image
	Theme    *theme.Theme
	Debug    debug.Coordinator
	Clock    anim.Clock

	// RunOnMain defaults to fyne.Do.
	RunOnMain func(func())
}

// Screen renders a Sequencer and runs it once per mount. Unmounting cancels
// the run; toProfile is then never called.
type Screen struct {
	seq       *Sequencer
	toProfile func()
	deps      Deps
	mountID   uuid.UUID

	root     fyne.CanvasObject
	icon     *canvas.Image
	offset   *layout.Offset
	iconBox  *fyne.Container
	row      *fyne.Container
	gap      *canvas.Rectangle
	label    *canvas.Text
	rowColor color.NRGBA

	mu          sync.Mutex
	mounted     bool
	ran         bool
	completed   bool
	cancel      context.CancelFunc
	unsubscribe []func()
	done        chan struct{}
}

func NewScreen(deps Deps, toProfile func()) *Screen {
	if deps.RunOnMain == nil {
		deps.RunOnMain = fyne.Do
	}

	s := &Screen{
		seq:       NewSequencer(deps.Greeting, deps.Clock),
		toProfile: toProfile,
		deps:      deps,
		mountID:   uuid.New(),
		rowColor:  deps.Theme.Palette.OnSurface,
		done:      make(chan struct{}),
	}
	s.build()
	s.render()
	return s
}

func (s *Screen) build() {
	avatar := components.Avatar(s.deps.Icon, config.MediumIconSize)
	s.icon = avatar.Objects[0].(*canvas.Image)
	s.offset = &layout.Offset{}
	s.iconBox = container.New(s.offset, avatar)

	s.gap = canvas.NewRectangle(color.Transparent)
	s.gap.SetMinSize(fyne.NewSize(config.SplashTextSpacing*2, 0))

	s.label = components.HeadlineLargeText("", s.deps.Theme)
	labelBox := container.NewVBox(fynelayout.NewSpacer(), s.label, fynelayout.NewSpacer())

	background := canvas.NewRectangle(s.deps.Theme.Palette.Surface)
	s.row = container.NewHBox(s.iconBox, s.gap, labelBox)
	s.root = container.NewStack(background, container.NewCenter(s.row))
}

func (s *Screen) Content() fyne.CanvasObject {
	return s.root
}

func (s *Screen) Sequencer() *Sequencer {
	return s.seq
}

// Done is closed when the run started by Mount returns, however it ended.
func (s *Screen) Done() <-chan struct{} {
	return s.done
}

// Mount starts the intro. Mounting again, even after an unmount, does not
// restart it: the sequence is keyed on this screen instance.
func (s *Screen) Mount() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ran {
		return
	}
	s.ran = true
	s.mounted = true

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	redraw := func() { s.deps.RunOnMain(s.render) }
	s.unsubscribe = []func(){
		s.seq.Alpha().Subscribe(func(float32) { redraw() }),
		s.seq.OffsetX().Subscribe(func(float32) { redraw() }),
		s.seq.Revealed().Subscribe(func(string) { redraw() }),
	}
	s.seq.OnStep(s.reportStep)

	go s.run(ctx)
}

// Unmount abandons the intro if it is still playing.
func (s *Screen) Unmount() {
	s.mu.Lock()
	if !s.mounted {
		s.mu.Unlock()
		return
	}
	s.mounted = false
	cancel := s.cancel
	unsubscribe := s.unsubscribe
	s.unsubscribe = nil
	s.mu.Unlock()

	cancel()
	for _, fn := range unsubscribe {
		fn()
	}
}

func (s *Screen) run(ctx context.Context) {
	defer close(s.done)
	log := s.deps.Debug.Logger()

	err := s.seq.Run(ctx, s.complete)
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		log.Debug("Splash", "intro cancelled by unmount", map[string]interface{}{
			"mount": s.mountID.String(),
			"shown": s.seq.Revealed().Get(),
		})
	default:
		log.Error("Splash", err, map[string]interface{}{"mount": s.mountID.String()})
	}
}

// complete fires toProfile at most once and never after Unmount.
func (s *Screen) complete() {
	s.mu.Lock()
	if !s.mounted || s.completed {
		s.mu.Unlock()
		return
	}
	s.completed = true
	s.mu.Unlock()

	s.deps.Debug.Logger().Info("Splash", "intro finished", map[string]interface{}{
		"mount": s.mountID.String(),
	})
	s.toProfile()
}

func (s *Screen) reportStep(step Step, took time.Duration) {
	fields := map[string]interface{}{
		"mount": s.mountID.String(),
		"step":  step.String(),
		"took":  took.String(),
	}
	s.deps.Debug.TimingTracker().Record("splash."+step.String(), took)
	s.deps.Debug.EventPublisher().Publish(debug.Event{Type: debug.TopicSplashStep, Data: fields})
	s.deps.Debug.Logger().Debug("Splash", "step finished", fields)
}

// render draws the current state; it runs on the UI thread.
func (s *Screen) render() {
	state := s.seq.State()

	s.icon.Translucency = float64(1 - state.Alpha)
	s.offset.X = state.OffsetX

	c := s.rowColor
	c.A = uint8(float32(c.A) * state.Alpha)
	s.label.Color = c
	s.label.Text = state.Revealed

	// The separator only appears once there is text to separate.
	if state.Revealed == "" {
		s.gap.Hide()
	} else {
		s.gap.Show()
	}

	s.icon.Refresh()
	s.label.Refresh()
	s.row.Refresh()
}
