package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/navdemo/internal/logging"
	"github.com/ytget/navdemo/internal/router"
	"github.com/ytget/navdemo/internal/validation"
)

// recordingNavigator remembers every navigation request
type recordingNavigator struct {
	routes []router.Route
	pops   int
}

func (n *recordingNavigator) Navigate(route router.Route) {
	n.routes = append(n.routes, route)
}

func (n *recordingNavigator) Pop() {
	n.pops++
}

// newTestRootUI returns a RootUI with only the pieces screen builders use
func newTestRootUI(t *testing.T) *RootUI {
	t.Helper()
	test.NewApp()
	return &RootUI{
		localization: NewLocalization(),
		validator:    validation.New(),
		logger:       logging.GetLogger(),
	}
}

// collect walks the object tree and returns every object of type T
func collect[T fyne.CanvasObject](obj fyne.CanvasObject) []T {
	var found []T
	var walk func(fyne.CanvasObject)
	walk = func(o fyne.CanvasObject) {
		if o == nil {
			return
		}
		if match, ok := o.(T); ok {
			found = append(found, match)
		}
		switch v := o.(type) {
		case *fyne.Container:
			for _, child := range v.Objects {
				walk(child)
			}
		case *container.Scroll:
			walk(v.Content)
		case *widget.Card:
			walk(v.Content)
		case *BackSwipeArea:
			walk(v.content)
		}
	}
	walk(obj)
	return found
}

func findButton(obj fyne.CanvasObject, text string) *widget.Button {
	for _, b := range collect[*widget.Button](obj) {
		if b.Text == text {
			return b
		}
	}
	return nil
}

func findEntry(obj fyne.CanvasObject, placeholder string) *widget.Entry {
	for _, e := range collect[*widget.Entry](obj) {
		if e.PlaceHolder == placeholder {
			return e
		}
	}
	return nil
}

func labelTexts(obj fyne.CanvasObject) []string {
	var texts []string
	for _, l := range collect[*widget.Label](obj) {
		texts = append(texts, l.Text)
	}
	return texts
}
