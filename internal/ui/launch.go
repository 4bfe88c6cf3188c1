package ui

import (
	"fmt"

	"fyne.io/fyne/v2"

	"github.com/ytget/navdemo/internal/config"
	"github.com/ytget/navdemo/internal/logging"
)

// Launch applies stored preferences to myApp and opens the main window on
// the login screen. The caller shows the window.
func Launch(myApp fyne.App) (fyne.Window, error) {
	settings := config.NewSettings(myApp)
	logging.SetRawLogLevel(settings.GetLogLevel())

	myApp.Settings().SetTheme(NewLightTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(settings.GetWindowSize())
	myWindow.SetCloseIntercept(func() {
		size := myWindow.Canvas().Size()
		settings.SetWindowSize(int(size.Width), int(size.Height))
		myWindow.Close()
	})

	rootUI := NewRootUI(myWindow, myApp)
	if err := rootUI.Start(""); err != nil {
		return nil, fmt.Errorf("start navigation: %w", err)
	}
	return myWindow, nil
}
