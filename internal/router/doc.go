// Package router implements screen navigation over an explicit view stack.
//
// Each route is bound to a Builder that produces a View from the session
// store. Navigating to a route builds its view and pushes it; navigating to
// RouteLogin clears the stack first, so the login screen is always the sole
// entry. Pop removes the top view and re-resolves the route underneath it.
//
//	r := router.New(session.New())
//	r.Register(router.RouteLogin, buildLogin).
//		Register(router.RouteHome, buildHome).
//		OnRender(func(v router.View) { window.SetContent(v.Content) })
//	r.Start("")
//
// Views are snapshots: going back re-displays the view already on the stack
// instead of building it again. The exception is RouteLogin, which is rebuilt
// (and clears the stack) every time it becomes the top.
package router
