package navigation

import (
	"fmt"

	"fyne.io/fyne/v2"
)

// Screen is a mounted destination. Mount starts its behaviour and Unmount
// abandons any pending work; both are called on the UI thread.
type Screen interface {
	Content() fyne.CanvasObject
	Mount()
	Unmount()
}

// Navigator is the capability handed to screens that need to move on.
type Navigator interface {
	Navigate(route Route)
}

// Destination binds a route to the screen it shows and the transitions used
// when it is re-entered or left through back navigation.
type Destination struct {
	Route    Route
	PopEnter Fade
	PopExit  Fade
	Build    func(nav Navigator) Screen
}

// Graph is the immutable set of destinations reachable in the app.
type Graph struct {
	start        Route
	destinations map[Route]Destination
}

// NewGraph panics on duplicate routes, a missing builder or an unregistered
// start route: all of them are wiring mistakes.
func NewGraph(start Route, destinations ...Destination) *Graph {
	g := &Graph{
		start:        start,
		destinations: make(map[Route]Destination, len(destinations)),
	}
	for _, d := range destinations {
		if _, dup := g.destinations[d.Route]; dup {
			panic(fmt.Sprintf("navigation: route %q registered twice", d.Route))
		}
		if d.Build == nil {
			panic(fmt.Sprintf("navigation: route %q has no screen builder", d.Route))
		}
		g.destinations[d.Route] = d
	}
	if _, ok := g.destinations[start]; !ok {
		panic(fmt.Sprintf("navigation: start route %q is not registered", start))
	}
	return g
}

func (g *Graph) Start() Route {
	return g.start
}

func (g *Graph) Destination(route Route) (Destination, bool) {
	d, ok := g.destinations[route]
	return d, ok
}

func (g *Graph) mustDestination(route Route) Destination {
	d, ok := g.destinations[route]
	if !ok {
		panic(fmt.Sprintf("navigation: route %q is not registered", route))
	}
	return d
}
