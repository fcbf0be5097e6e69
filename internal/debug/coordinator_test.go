package debug

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"kei-portfolio/internal/debug/eventbus"
	"kei-portfolio/internal/logger"
)

func TestCoordinatorTimingReport(t *testing.T) {
	dc := NewCoordinator(DefaultConfig(), logger.NoOp{})
	t.Cleanup(dc.Shutdown)

	assert.Equal(t, "No timings recorded yet.", dc.TimingReport())

	dc.TimingTracker().Record("splash.hold", 1500*time.Millisecond)
	dc.TimingTracker().Record("splash.fade_in", 1500*time.Millisecond)

	assert.Equal(t, "splash.fade_in: 1.5s\nsplash.hold: 1.5s", dc.TimingReport())
}

func TestCoordinatorForwardsTimingEvents(t *testing.T) {
	dc := NewCoordinator(DefaultConfig(), logger.NoOp{})
	t.Cleanup(dc.Shutdown)

	got := make(chan Event, 1)
	dc.EventPublisher().Subscribe("timing.completed", eventbus.HandlerFunc{
		ID: "test",
		Fn: func(e Event) { got <- e },
	})
	dc.TimingTracker().Record("splash.slide_in", 500*time.Millisecond)

	select {
	case e := <-got:
		assert.Equal(t, "splash.slide_in", e.Data["operation"])
	case <-time.After(2 * time.Second):
		t.Fatal("timing event not forwarded")
	}
}

func TestProductionConfigDisablesTiming(t *testing.T) {
	dc := NewCoordinator(ProductionConfig(), logger.NoOp{})
	t.Cleanup(dc.Shutdown)

	dc.TimingTracker().Record("x", time.Second)
	assert.Empty(t, dc.TimingTracker().Operations())
}
