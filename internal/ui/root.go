package ui

import (
	"log/slog"
	"maps"
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"

	"github.com/ytget/navdemo/internal/config"
	"github.com/ytget/navdemo/internal/logging"
	"github.com/ytget/navdemo/internal/model"
	"github.com/ytget/navdemo/internal/router"
	"github.com/ytget/navdemo/internal/session"
	"github.com/ytget/navdemo/internal/validation"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	validator    *validation.Validator
	store        *session.Store
	router       *router.Router
	logger       *slog.Logger

	appBar *AppBar
	body   *fyne.Container
}

// NewRootUI creates and initializes the main UI. Call Start to show the first screen.
func NewRootUI(window fyne.Window, app fyne.App) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	store := session.New()
	store.Set(session.KeyFormData, model.FormData{})

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		validator:    validation.New(),
		store:        store,
		logger:       logging.GetLogger(),
	}

	ui.router = router.New(store).
		Register(router.RouteLogin, ui.buildLoginView).
		Register(router.RouteHome, ui.buildHomeView).
		Register(router.RouteForm, ui.buildFormView).
		Register(router.RouteDetails, ui.buildDetailsView).
		OnRender(ui.render)

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	ui.logger.Debug("root UI initialized", "session", store.ID())
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.appBar = NewAppBar(ui.back)
	ui.body = container.NewStack()

	content := container.NewBorder(ui.appBar.Container(), nil, nil, nil, NewBackSwipeArea(ui.body, ui.back))
	ui.window.SetContent(content)

	ui.setupBackHandlers()
}

// setupBackHandlers routes the Escape and Back keys and Alt+Left to Pop
func (ui *RootUI) setupBackHandlers() {
	canvas := ui.window.Canvas()
	canvas.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyEscape, mobile.KeyBack:
			ui.back()
		}
	})

	altLeft := &desktop.CustomShortcut{KeyName: fyne.KeyLeft, Modifier: fyne.KeyModifierAlt}
	canvas.AddShortcut(altLeft, func(fyne.Shortcut) {
		ui.back()
	})
}

// back pops the current screen unless a dialog is showing. The dialog
// belongs to the top screen and must be closed first.
func (ui *RootUI) back() {
	if ui.window.Canvas().Overlays().Top() != nil {
		ui.logger.Debug("back ignored while a dialog is open")
		return
	}
	ui.router.Pop()
}

// Start shows the screen for the host's initial route
func (ui *RootUI) Start(initial string) error {
	return ui.router.Start(initial)
}

// Router returns the navigation router
func (ui *RootUI) Router() *router.Router {
	return ui.router
}

// Store returns the session store
func (ui *RootUI) Store() *session.Store {
	return ui.store
}

// AppBar returns the title bar
func (ui *RootUI) AppBar() *AppBar {
	return ui.appBar
}

// routeTitles maps each screen to its app bar title key
var routeTitles = map[router.Route]string{
	router.RouteLogin:   KeyLoginTitle,
	router.RouteHome:    KeyHomeTitle,
	router.RouteForm:    KeyFormTitle,
	router.RouteDetails: KeyDetailsTitle,
}

// render shows v below the app bar. The title follows the current language
// even for views built before a language change.
func (ui *RootUI) render(v router.View) {
	title := v.Title
	if key, ok := routeTitles[v.Route]; ok {
		title = ui.localization.GetText(key)
	}
	ui.appBar.Update(title, v.ShowBack && ui.router.Len() > 1)
	ui.body.Objects = []fyne.CanvasObject{v.Content}
	ui.body.Refresh()
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	languages := ui.localization.GetAvailableLanguages()
	for _, code := range slices.Sorted(maps.Keys(languages)) {
		langCode := code
		langItem := fyne.NewMenuItem(languages[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates texts after a language change. The top screen is
// rebuilt, except the form, which keeps its entered values and only gets a
// fresh title.
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	top, ok := ui.router.Top()
	if !ok {
		return
	}
	if top.Route == router.RouteForm {
		ui.render(top)
		return
	}
	ui.router.Rebuild()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
		dialog.ShowInformation(ui.localization.GetText(KeySettings), ui.localization.GetText(KeySettingsSaved), ui.window)
	})
}
