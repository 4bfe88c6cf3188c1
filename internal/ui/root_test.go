package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/navdemo/internal/model"
	"github.com/ytget/navdemo/internal/router"
	"github.com/ytget/navdemo/internal/session"
)

func newStartedRootUI(t *testing.T) (*RootUI, fyne.Window) {
	t.Helper()
	app := test.NewApp()
	w := test.NewWindow(nil)
	t.Cleanup(w.Close)

	ui := NewRootUI(w, app)
	require.NoError(t, ui.Start(""))
	return ui, w
}

func topView(t *testing.T, ui *RootUI) router.View {
	t.Helper()
	top, ok := ui.Router().Top()
	require.True(t, ok)
	return top
}

func login(t *testing.T, ui *RootUI) {
	t.Helper()
	content := topView(t, ui).Content
	findEntry(content, "Email").SetText("a@b.c")
	findEntry(content, "Password").SetText("secret")
	test.Tap(findButton(content, "Login"))
}

func TestRootUIStartsOnLogin(t *testing.T) {
	ui, w := newStartedRootUI(t)

	assert.Equal(t, "Exercise 5 - Navigation & Routing", w.Title())
	assert.Equal(t, []router.Route{router.RouteLogin}, ui.Router().Routes())
	assert.Equal(t, "Login", ui.AppBar().Title())
	assert.False(t, ui.AppBar().BackVisible())

	data, ok := session.GetAs[model.FormData](ui.Store(), session.KeyFormData)
	require.True(t, ok)
	assert.True(t, data.IsZero())
}

func TestRootUILoginRejected(t *testing.T) {
	ui, _ := newStartedRootUI(t)

	content := topView(t, ui).Content
	findEntry(content, "Password").SetText("secret")
	test.Tap(findButton(content, "Login"))

	assert.Equal(t, 1, ui.Router().Len())
	assert.Contains(t, labelTexts(content), "Please enter email")
}

func TestRootUIFullFlow(t *testing.T) {
	ui, _ := newStartedRootUI(t)

	login(t, ui)
	require.Equal(t, []router.Route{router.RouteLogin, router.RouteHome}, ui.Router().Routes())
	assert.True(t, ui.AppBar().BackVisible())

	test.Tap(findButton(topView(t, ui).Content, "Go to Form"))
	require.Equal(t, router.RouteForm, topView(t, ui).Route)
	formContent := topView(t, ui).Content

	findEntry(formContent, "Full name").SetText("Alice")
	for _, sel := range collect[*widget.Select](formContent) {
		sel.SetSelected("Sweden")
	}
	test.Tap(findButton(formContent, "Submit"))

	require.Equal(t, []router.Route{router.RouteLogin, router.RouteHome, router.RouteForm, router.RouteDetails}, ui.Router().Routes())
	data, ok := session.GetAs[model.FormData](ui.Store(), session.KeyFormData)
	require.True(t, ok)
	assert.Equal(t, model.FormData{Name: "Alice", Country: model.CountrySweden}, data)

	details := topView(t, ui).Content
	texts := labelTexts(details)
	assert.Contains(t, texts, "Alice")
	assert.Contains(t, texts, "Sweden")
	assert.Equal(t, "Details", ui.AppBar().Title())

	// back shows the resident form with its entered values
	ui.Router().Pop()
	assert.Equal(t, router.RouteForm, topView(t, ui).Route)
	assert.Same(t, formContent, topView(t, ui).Content)
	assert.Equal(t, "Alice", findEntry(formContent, "Full name").Text)
}

func TestRootUIPopToLoginRebuilds(t *testing.T) {
	ui, _ := newStartedRootUI(t)
	firstLogin := topView(t, ui).Content

	login(t, ui)
	ui.Router().Pop()

	assert.Equal(t, []router.Route{router.RouteLogin}, ui.Router().Routes())
	assert.NotSame(t, firstLogin, topView(t, ui).Content)
	assert.Equal(t, "", findEntry(topView(t, ui).Content, "Email").Text)
	assert.False(t, ui.AppBar().BackVisible())

	ui.Router().Pop()
	assert.Equal(t, 1, ui.Router().Len())
}

func TestRootUIFormRejectedKeepsStore(t *testing.T) {
	ui, _ := newStartedRootUI(t)
	previous := model.FormData{Name: "Bob", Gender: model.GenderMale, Country: model.CountryFinland}
	ui.Store().Set(session.KeyFormData, previous)
	login(t, ui)
	ui.Router().Navigate(router.RouteForm)

	findEntry(topView(t, ui).Content, "Address").SetText("Main st 1")
	test.Tap(findButton(topView(t, ui).Content, "Submit"))

	assert.Equal(t, router.RouteForm, topView(t, ui).Route)
	assert.Contains(t, labelTexts(topView(t, ui).Content), "Name is required")
	data, ok := session.GetAs[model.FormData](ui.Store(), session.KeyFormData)
	require.True(t, ok)
	assert.Equal(t, previous, data, "a rejected submit leaves the stored snapshot alone")
}

func TestRootUIDetailsWithoutSubmit(t *testing.T) {
	ui, _ := newStartedRootUI(t)
	ui.Router().Navigate(router.RouteDetails)

	texts := labelTexts(topView(t, ui).Content)
	assert.Contains(t, texts, "Details")
	assert.Contains(t, texts, "-")
}

func TestRootUIBackSources(t *testing.T) {
	tests := []struct {
		name string
		back func(t *testing.T, ui *RootUI, w fyne.Window)
	}{
		{"app bar button", func(_ *testing.T, ui *RootUI, _ fyne.Window) {
			test.Tap(ui.AppBar().back)
		}},
		{"escape key", func(_ *testing.T, _ *RootUI, w fyne.Window) {
			w.Canvas().OnTypedKey()(&fyne.KeyEvent{Name: fyne.KeyEscape})
		}},
		{"mobile back key", func(_ *testing.T, _ *RootUI, w fyne.Window) {
			w.Canvas().OnTypedKey()(&fyne.KeyEvent{Name: mobile.KeyBack})
		}},
		{"swipe right", func(t *testing.T, _ *RootUI, w fyne.Window) {
			area := collect[*BackSwipeArea](w.Content())
			require.Len(t, area, 1)
			area[0].TouchDown(&mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(0, 100)}})
			area[0].TouchUp(&mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(200, 100)}})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, w := newStartedRootUI(t)
			login(t, ui)
			ui.Router().Navigate(router.RouteForm)
			require.Equal(t, 3, ui.Router().Len())

			tt.back(t, ui, w)

			assert.Equal(t, []router.Route{router.RouteLogin, router.RouteHome}, ui.Router().Routes())
			assert.Equal(t, "Home", ui.AppBar().Title())
		})

		t.Run(tt.name+" with date picker open", func(t *testing.T) {
			ui, w := newStartedRootUI(t)
			login(t, ui)
			ui.Router().Navigate(router.RouteForm)
			form := topView(t, ui).Content

			test.Tap(findButton(form, ""))
			overlay := w.Canvas().Overlays().Top()
			require.NotNil(t, overlay, "date picker should be showing")

			tt.back(t, ui, w)

			assert.Equal(t, []router.Route{router.RouteLogin, router.RouteHome, router.RouteForm}, ui.Router().Routes())
			assert.Same(t, form, topView(t, ui).Content)
			assert.Equal(t, "Form", ui.AppBar().Title())
			assert.Same(t, overlay, w.Canvas().Overlays().Top())

			w.Canvas().Overlays().Remove(overlay)
			tt.back(t, ui, w)
			assert.Equal(t, []router.Route{router.RouteLogin, router.RouteHome}, ui.Router().Routes())
		})
	}
}

func TestRootUISettingsDialogBlocksBack(t *testing.T) {
	ui, w := newStartedRootUI(t)
	login(t, ui)

	ui.onShowSettings()
	require.NotNil(t, w.Canvas().Overlays().Top())

	w.Canvas().OnTypedKey()(&fyne.KeyEvent{Name: fyne.KeyEscape})

	assert.Equal(t, []router.Route{router.RouteLogin, router.RouteHome}, ui.Router().Routes())
}

func TestRootUILanguageChange(t *testing.T) {
	ui, w := newStartedRootUI(t)
	firstLogin := topView(t, ui).Content

	ui.onLanguageChange("ru")

	assert.Equal(t, "ru", ui.settings.GetLanguage())
	assert.Equal(t, ui.localization.GetText(KeyAppTitle), w.Title())
	assert.Equal(t, ui.localization.GetText(KeyLoginTitle), ui.AppBar().Title())
	assert.Equal(t, 1, ui.Router().Len())
	assert.NotSame(t, firstLogin, topView(t, ui).Content)
	assert.NotNil(t, findEntry(topView(t, ui).Content, ui.localization.GetText(KeyEmail)))
}

func TestRootUILanguageChangeRebuildsHome(t *testing.T) {
	ui, _ := newStartedRootUI(t)
	login(t, ui)
	before := topView(t, ui).Content

	ui.onLanguageChange("pt")

	assert.Equal(t, []router.Route{router.RouteLogin, router.RouteHome}, ui.Router().Routes())
	assert.NotSame(t, before, topView(t, ui).Content)
	assert.Equal(t, ui.localization.GetText(KeyHomeTitle), ui.AppBar().Title())
	assert.NotNil(t, findButton(topView(t, ui).Content, ui.localization.GetText(KeyGoToForm)))
}

func TestRootUILanguageChangeKeepsFormInput(t *testing.T) {
	ui, _ := newStartedRootUI(t)
	login(t, ui)
	ui.Router().Navigate(router.RouteForm)
	form := topView(t, ui).Content
	findEntry(form, "Full name").SetText("Alice")

	ui.onLanguageChange("ru")

	assert.Same(t, form, topView(t, ui).Content)
	assert.Equal(t, "Alice", findEntry(form, "Full name").Text)
	assert.Equal(t, ui.localization.GetText(KeyFormTitle), ui.AppBar().Title())

	ui.Router().Pop()
	assert.Equal(t, ui.localization.GetText(KeyHomeTitle), ui.AppBar().Title(),
		"resident views show titles in the current language")
}
