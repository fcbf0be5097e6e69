// Package splash plays the intro: fade in, slide in, type out the greeting,
// hold, then hand over to the profile screen.
package splash

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"kei-portfolio/internal/anim"
)

const (
	FadeInDuration  = 1500 * time.Millisecond
	SlideInDuration = 500 * time.Millisecond
	CharDelay       = 100 * time.Millisecond
	HoldDuration    = 1500 * time.Millisecond

	// StartOffsetX is where the icon slides in from.
	StartOffsetX float32 = -100
)

// ErrAlreadyStarted is returned when Run is called on a sequencer that has
// already been run; an intro plays at most once per sequencer.
var ErrAlreadyStarted = errors.New("splash: sequence already started")

type Step int

const (
	StepFadeIn Step = iota
	StepSlideIn
	StepReveal
	StepHold
)

func (s Step) String() string {
	switch s {
	case StepFadeIn:
		return "fade_in"
	case StepSlideIn:
		return "slide_in"
	case StepReveal:
		return "reveal"
	case StepHold:
		return "hold"
	}
	return "unknown"
}

// State is a snapshot of everything the splash screen draws from.
type State struct {
	Alpha    float32
	OffsetX  float32
	Revealed string
}

// Sequencer owns the three animated values of one splash mount. Each value is
// written only by its own step and the steps run strictly one after another.
type Sequencer struct {
	clock  anim.Clock
	target []rune

	alpha    *anim.Animatable
	offsetX  *anim.Animatable
	revealed *anim.State[string]

	onStep  func(step Step, took time.Duration)
	started atomic.Bool
}

func NewSequencer(target string, clock anim.Clock) *Sequencer {
	if clock == nil {
		clock = anim.SystemClock()
	}
	return &Sequencer{
		clock:    clock,
		target:   []rune(target),
		alpha:    anim.NewAnimatable(0, clock),
		offsetX:  anim.NewAnimatable(StartOffsetX, clock),
		revealed: anim.NewState(""),
	}
}

func (s *Sequencer) Alpha() *anim.Animatable       { return s.alpha }
func (s *Sequencer) OffsetX() *anim.Animatable     { return s.offsetX }
func (s *Sequencer) Revealed() *anim.State[string] { return s.revealed }

func (s *Sequencer) Target() string {
	return string(s.target)
}

func (s *Sequencer) State() State {
	return State{
		Alpha:    s.alpha.Value(),
		OffsetX:  s.offsetX.Value(),
		Revealed: s.revealed.Get(),
	}
}

// OnStep registers a hook called after each step completes. It must be set
// before Run.
func (s *Sequencer) OnStep(fn func(step Step, took time.Duration)) {
	s.onStep = fn
}

// TotalDuration is how long an uninterrupted run takes, frame rounding aside.
func (s *Sequencer) TotalDuration() time.Duration {
	return FadeInDuration + SlideInDuration + CharDelay*time.Duration(len(s.target)) + HoldDuration
}

// Run plays the intro and calls onComplete once it has fully finished. If ctx
// is cancelled first, Run returns ctx.Err() and onComplete is never called.
func (s *Sequencer) Run(ctx context.Context, onComplete func()) error {
	if !s.started.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}

	steps := []struct {
		step Step
		run  func(context.Context) error
	}{
		{StepFadeIn, s.fadeIn},
		{StepSlideIn, s.slideIn},
		{StepReveal, s.reveal},
		{StepHold, s.hold},
	}

	for _, st := range steps {
		begin := s.clock.Now()
		if err := st.run(ctx); err != nil {
			return err
		}
		if s.onStep != nil {
			s.onStep(st.step, s.clock.Now().Sub(begin))
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	onComplete()
	return nil
}

func (s *Sequencer) fadeIn(ctx context.Context) error {
	return s.alpha.AnimateTo(ctx, 1, anim.Tween{Duration: FadeInDuration, Curve: anim.Standard})
}

func (s *Sequencer) slideIn(ctx context.Context) error {
	return s.offsetX.AnimateTo(ctx, 0, anim.Tween{Duration: SlideInDuration, Curve: anim.LinearOutSlowIn})
}

func (s *Sequencer) reveal(ctx context.Context) error {
	for i := range s.target {
		if err := anim.Delay(ctx, s.clock, CharDelay); err != nil {
			return err
		}
		s.revealed.Set(string(s.target[:i+1]))
	}
	return nil
}

func (s *Sequencer) hold(ctx context.Context) error {
	return anim.Delay(ctx, s.clock, HoldDuration)
}
