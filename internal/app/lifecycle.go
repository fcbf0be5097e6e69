package app

import (
	"kei-portfolio/internal/debug"
	"kei-portfolio/internal/navigation"
	"kei-portfolio/internal/shutdown"
)

// Lifecycle stops the app's long lived parts in reverse dependency order:
// the navigation host first, so a playing intro is cancelled, then the debug
// coordinator so it still sees the host's unmount events.
type Lifecycle struct {
	manager *shutdown.Manager
	logger  debug.Logger
}

func NewLifecycle(dc debug.Coordinator, host *navigation.Host) *Lifecycle {
	manager := shutdown.NewManager(dc.Logger())
	manager.Register("debug", dc)
	manager.Register("navhost", host)

	return &Lifecycle{
		manager: manager,
		logger:  dc.Logger(),
	}
}

// Listen runs onSignal after a SIGINT or SIGTERM has shut everything down.
func (l *Lifecycle) Listen(onSignal func()) {
	l.manager.Listen()
	go func() {
		<-l.manager.Done()
		onSignal()
	}()
}

func (l *Lifecycle) Shutdown() {
	l.manager.Shutdown()
}

func (l *Lifecycle) Done() <-chan struct{} {
	return l.manager.Done()
}
