package navigation

import (
	"sync"

	"github.com/google/uuid"

	"kei-portfolio/internal/debug"
)

// Entry is one visit to a route. Each push gets a fresh ID, so re-entering a
// route produces a new entry and a new screen mount.
type Entry struct {
	Route Route
	ID    uuid.UUID
}

// Change describes a move of the current entry.
type Change struct {
	From Entry
	To   Entry
	Pop  bool
}

// Controller owns the back stack. The current route is the top of the stack
// and there is always exactly one.
type Controller struct {
	graph  *Graph
	logger debug.Logger
	events debug.EventPublisher

	mu        sync.Mutex
	stack     []Entry
	listeners []func(Change)
}

func NewController(graph *Graph, logger debug.Logger, events debug.EventPublisher) *Controller {
	return &Controller{
		graph:  graph,
		logger: logger,
		events: events,
		stack:  []Entry{{Route: graph.Start(), ID: uuid.New()}},
	}
}

func (c *Controller) Graph() *Graph {
	return c.graph
}

func (c *Controller) Current() Route {
	return c.CurrentEntry().Route
}

func (c *Controller) CurrentEntry() Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stack[len(c.stack)-1]
}

// BackStack returns the routes from bottom to top.
func (c *Controller) BackStack() []Route {
	c.mu.Lock()
	defer c.mu.Unlock()

	routes := make([]Route, len(c.stack))
	for i, e := range c.stack {
		routes[i] = e.Route
	}
	return routes
}

// OnChange registers fn to run after every route change, on the goroutine
// that requested it.
func (c *Controller) OnChange(fn func(Change)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// Navigate pushes route. Navigating to an unregistered route panics.
func (c *Controller) Navigate(route Route) {
	c.graph.mustDestination(route)

	c.mu.Lock()
	from := c.stack[len(c.stack)-1]
	to := Entry{Route: route, ID: uuid.New()}
	c.stack = append(c.stack, to)
	listeners := append([]func(Change){}, c.listeners...)
	c.mu.Unlock()

	c.notify(Change{From: from, To: to}, listeners)
}

// PopBackStack returns to the previous entry. It reports false and does
// nothing when the current entry is the root.
func (c *Controller) PopBackStack() bool {
	c.mu.Lock()
	if len(c.stack) < 2 {
		c.mu.Unlock()
		return false
	}
	from := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	// The revealed entry is composed again from scratch.
	c.stack[len(c.stack)-1].ID = uuid.New()
	to := c.stack[len(c.stack)-1]
	listeners := append([]func(Change){}, c.listeners...)
	c.mu.Unlock()

	c.notify(Change{From: from, To: to, Pop: true}, listeners)
	return true
}

func (c *Controller) notify(change Change, listeners []func(Change)) {
	fields := map[string]interface{}{
		"from":  change.From.Route.ID(),
		"to":    change.To.Route.ID(),
		"pop":   change.Pop,
		"entry": change.To.ID.String(),
	}
	c.logger.Info("Navigation", "route changed", fields)
	if c.events != nil {
		c.events.Publish(debug.Event{Type: debug.TopicRouteChanged, Data: fields})
	}

	for _, fn := range listeners {
		fn(change)
	}
}
