package debug

import (
	"context"
	"time"

	"kei-portfolio/internal/debug/eventbus"
	"kei-portfolio/internal/logger"
)

// Event topics published by the app.
const (
	TopicRouteChanged    = "route.changed"
	TopicScreenMounted   = "screen.mounted"
	TopicScreenUnmounted = "screen.unmounted"
	TopicSplashStep      = "splash.step"
)

type (
	Event        = eventbus.Event
	EventHandler = eventbus.EventHandler
	Logger       = logger.Logger
)

// EventPublisher distributes debug events to subscribers without blocking
type EventPublisher interface {
	Publish(event Event)
	Subscribe(eventType string, handler EventHandler)
	Unsubscribe(eventType string, handler EventHandler)
}

// TimingTracker measures operation performance
type TimingTracker interface {
	StartTiming(operation string) context.Context
	EndTiming(ctx context.Context) time.Duration
	Record(operation string, duration time.Duration)
	GetAverageTime(operation string) time.Duration
	Operations() []string
}

// Coordinator combines all debug capabilities
type Coordinator interface {
	Logger() Logger
	TimingTracker() TimingTracker
	EventPublisher() EventPublisher
	Shutdown()
}
