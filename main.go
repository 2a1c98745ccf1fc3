package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"

	"github.com/shishloto/shish-loto/internal/game"
	"github.com/shishloto/shish-loto/internal/platform"
	"github.com/shishloto/shish-loto/internal/storage"
	"github.com/shishloto/shish-loto/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "com.shishloto.shish-loto"

	WindowWidth  = 900
	WindowHeight = 700
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	logger.Info().Str("version", version).Msg("shish loto starting")

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	gameTheme := ui.NewGameTheme()
	myApp.Settings().SetTheme(gameTheme)

	myWindow := myApp.NewWindow(fmt.Sprintf("Shish Loto v%s", version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	dataDir, err := platform.AppDataDir()
	if err != nil {
		logger.Fatal().Err(err).Msg("no writable data directory")
	}

	store := storage.NewStore(dataDir, logger)
	session := game.NewSession()

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, gameTheme, session, store, logger)

	// Show and run
	myWindow.ShowAndRun()
}
