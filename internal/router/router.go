package router

import (
	"errors"
	"log/slog"

	"github.com/ytget/navdemo/internal/logging"
	"github.com/ytget/navdemo/internal/session"
)

// ErrNoLoginBuilder is returned by Start when RouteLogin has no builder.
var ErrNoLoginBuilder = errors.New("router: no builder registered for " + string(RouteLogin))

// Navigator is the navigation API handed to builders
type Navigator interface {
	Navigate(route Route)
	Pop()
}

// Builder produces the view for a route. It may read the session store and
// capture nav for the view's own handlers.
type Builder func(nav Navigator, store *session.Store) View

// RenderFunc displays the view currently on top of the stack
type RenderFunc func(View)

// Router owns the view stack and the route table
type Router struct {
	builders map[Route]Builder
	stack    *Stack
	store    *session.Store
	onRender RenderFunc
	logger   *slog.Logger
}

// New creates a router whose builders read from store
func New(store *session.Store) *Router {
	return &Router{
		builders: make(map[Route]Builder),
		stack:    NewStack(),
		store:    store,
		logger:   logging.GetLogger(),
	}
}

// Register binds a builder to a route, replacing any previous one
func (r *Router) Register(route Route, fn Builder) *Router {
	r.builders[route] = fn
	return r
}

// OnRender sets the callback invoked after every stack mutation
func (r *Router) OnRender(fn RenderFunc) *Router {
	r.onRender = fn
	return r
}

// Start navigates to the host-reported initial route, normalizing the root
// route to RouteLogin.
func (r *Router) Start(initial string) error {
	if _, ok := r.builders[RouteLogin]; !ok {
		return ErrNoLoginBuilder
	}
	r.Navigate(ParseRoute(initial))
	return nil
}

// Navigate builds the view for route and pushes it. RouteLogin, unknown
// routes and routes without a builder clear the stack and show login.
func (r *Router) Navigate(route Route) {
	fn, ok := r.builders[route]
	if !ok || route == RouteLogin {
		if route != RouteLogin {
			r.logger.Debug("unknown route, falling back to login", "route", route)
		}
		r.resetToLogin()
		r.render()
		return
	}

	r.stack.Push(r.build(route, fn))
	r.logger.Debug("navigated", "route", route, "depth", r.stack.Len())
	r.render()
}

// Pop removes the top view and shows the one underneath. It does nothing
// when only one view is left.
func (r *Router) Pop() {
	if r.stack.Len() <= 1 {
		r.logger.Debug("pop ignored at root", "depth", r.stack.Len())
		return
	}

	popped := r.stack.Pop()
	top := r.stack.Peek()
	r.logger.Debug("popped", "from", popped.Route, "to", top.Route, "depth", r.stack.Len())

	// Login is never resumed; it is rebuilt as the sole entry.
	if top.Route == RouteLogin {
		r.resetToLogin()
	}
	r.render()
}

// Rebuild replaces the top view with a freshly built view for the same
// route. The rest of the stack is untouched.
func (r *Router) Rebuild() {
	top := r.stack.Peek()
	if top == nil {
		return
	}
	fn, ok := r.builders[top.Route]
	if !ok {
		return
	}

	r.stack.Pop()
	r.stack.Push(r.build(top.Route, fn))
	r.logger.Debug("rebuilt", "route", top.Route, "depth", r.stack.Len())
	r.render()
}

// Top returns the visible view. ok is false before Start.
func (r *Router) Top() (View, bool) {
	top := r.stack.Peek()
	if top == nil {
		return View{}, false
	}
	return *top, true
}

// Len returns the stack depth
func (r *Router) Len() int {
	return r.stack.Len()
}

// Routes returns the routes on the stack, bottom first
func (r *Router) Routes() []Route {
	return r.stack.Routes()
}

// Store returns the session store passed to builders
func (r *Router) Store() *session.Store {
	return r.store
}

func (r *Router) resetToLogin() {
	fn, ok := r.builders[RouteLogin]
	if !ok {
		r.logger.Error("cannot show login: no builder registered")
		return
	}
	r.stack.Clear()
	r.stack.Push(r.build(RouteLogin, fn))
	r.logger.Debug("navigated", "route", RouteLogin, "depth", r.stack.Len())
}

func (r *Router) build(route Route, fn Builder) View {
	view := fn(r, r.store)
	view.Route = route
	return view
}

func (r *Router) render() {
	if r.onRender == nil {
		return
	}
	if top := r.stack.Peek(); top != nil {
		r.onRender(*top)
	}
}
