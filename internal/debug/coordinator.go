package debug

import (
	"fmt"
	"strings"

	"kei-portfolio/internal/debug/eventbus"
	"kei-portfolio/internal/debug/timing"
)

// timingEventBus forwards timing events onto the shared bus.
type timingEventBus struct {
	bus *eventbus.Bus
}

func (t *timingEventBus) Publish(event timing.Event) {
	t.bus.Publish(Event{
		Type:      event.Type,
		Timestamp: event.Timestamp,
		Data:      event.Data,
	})
}

type DebugCoordinator struct {
	logger        Logger
	timingTracker *timing.Tracker
	eventBus      *eventbus.Bus
}

func NewCoordinator(config Config, log Logger) *DebugCoordinator {
	bus := eventbus.NewBus(config.EventBufferSize)

	timingTracker := timing.NewTracker(&timingEventBus{bus: bus})
	timingTracker.SetEnabled(config.EnableTimingTracking)

	dc := &DebugCoordinator{
		logger:        log,
		timingTracker: timingTracker,
		eventBus:      bus,
	}

	if config.LogEvents {
		bus.Subscribe(eventbus.AllTopics, eventbus.HandlerFunc{
			ID: "debug-log",
			Fn: func(event Event) {
				log.Debug("EventBus", event.Type, event.Data)
			},
		})
	}

	return dc
}

func (dc *DebugCoordinator) Logger() Logger {
	return dc.logger
}

func (dc *DebugCoordinator) TimingTracker() TimingTracker {
	return dc.timingTracker
}

func (dc *DebugCoordinator) EventPublisher() EventPublisher {
	return dc.eventBus
}

// TimingReport renders the average of every tracked operation, one per line.
func (dc *DebugCoordinator) TimingReport() string {
	ops := dc.timingTracker.Operations()
	if len(ops) == 0 {
		return "No timings recorded yet."
	}

	var b strings.Builder
	for _, op := range ops {
		fmt.Fprintf(&b, "%s: %s\n", op, dc.timingTracker.GetAverageTime(op))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (dc *DebugCoordinator) Shutdown() {
	dc.eventBus.Shutdown()
}

type Config struct {
	EnableTimingTracking bool
	LogEvents            bool
	EventBufferSize      int
}

func DefaultConfig() Config {
	return Config{
		EnableTimingTracking: true,
		LogEvents:            true,
		EventBufferSize:      256,
	}
}

func ProductionConfig() Config {
	return Config{
		EnableTimingTracking: false,
		LogEvents:            false,
		EventBufferSize:      32,
	}
}
