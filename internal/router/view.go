package router

import "fyne.io/fyne/v2"

// View is a rendered screen snapshot. Builders create a new View each time
// a route is pushed; the router never mutates one.
type View struct {
	Route    Route
	Title    string
	ShowBack bool
	Content  fyne.CanvasObject
}
