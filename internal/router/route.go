package router

import "strings"

// Route identifies a screen
type Route string

const (
	RouteRoot    Route = "/"
	RouteLogin   Route = "/login"
	RouteHome    Route = "/home"
	RouteForm    Route = "/form"
	RouteDetails Route = "/details"
)

// String returns the route path
func (r Route) String() string {
	return string(r)
}

// IsKnown reports whether r is one of the screen routes
func (r Route) IsKnown() bool {
	switch r {
	case RouteLogin, RouteHome, RouteForm, RouteDetails:
		return true
	default:
		return false
	}
}

// ParseRoute normalizes a host-reported route. The root route and anything
// unrecognized resolve to RouteLogin.
func ParseRoute(raw string) Route {
	route := Route(strings.TrimSpace(raw))
	if route.IsKnown() {
		return route
	}
	return RouteLogin
}
