package navigation

import "fmt"

// Route is a navigable screen destination.
type Route int

const (
	Splash Route = iota
	Profile
)

// Routes lists every route in declaration order.
func Routes() []Route {
	return []Route{Splash, Profile}
}

// ID is the stable string identifier of the route.
func (r Route) ID() string {
	switch r {
	case Splash:
		return "splash"
	case Profile:
		return "profile"
	}
	panic(fmt.Sprintf("navigation: unknown route %d", int(r)))
}

func (r Route) String() string {
	return r.ID()
}

func ParseRoute(id string) (Route, bool) {
	for _, r := range Routes() {
		if r.ID() == id {
			return r, true
		}
	}
	return 0, false
}
