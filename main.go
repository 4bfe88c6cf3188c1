package main

import (
	"os"

	"fyne.io/fyne/v2/app"

	"github.com/ytget/navdemo/internal/logging"
	"github.com/ytget/navdemo/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	logger := logging.GetLogger()

	myApp := app.NewWithID(ui.AppID)
	myWindow, err := ui.Launch(myApp)
	if err != nil {
		logger.Error("failed to start", "error", err)
		os.Exit(1)
	}
	logger.Info("started", "app", ui.AppName, "version", version)

	myWindow.ShowAndRun()
}
