package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/navdemo/internal/router"
	"github.com/ytget/navdemo/internal/session"
)

func (ui *RootUI) buildHomeView(nav router.Navigator, _ *session.Store) router.View {
	welcome := widget.NewLabelWithStyle(ui.localization.GetText(KeyWelcome), fyne.TextAlignCenter, fyne.TextStyle{})
	welcome.Wrapping = fyne.TextWrapWord

	toForm := widget.NewButtonWithIcon(ui.localization.GetText(KeyGoToForm), theme.NavigateNextIcon(), func() {
		nav.Navigate(router.RouteForm)
	})
	toForm.Importance = widget.HighImportance

	return router.View{
		Title:    ui.localization.GetText(KeyHomeTitle),
		ShowBack: true,
		Content:  container.NewPadded(container.NewVBox(welcome, container.NewCenter(toForm))),
	}
}
