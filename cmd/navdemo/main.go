package main

import (
	"os"

	"fyne.io/fyne/v2/app"

	"github.com/ytget/navdemo/internal/logging"
	"github.com/ytget/navdemo/internal/ui"
)

func main() {
	myWindow, err := ui.Launch(app.NewWithID(ui.AppID))
	if err != nil {
		logging.GetLogger().Error("failed to start", "error", err)
		os.Exit(1)
	}

	myWindow.ShowAndRun()
}
