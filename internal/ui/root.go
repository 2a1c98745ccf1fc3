package ui

import (
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	fynestorage "fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/shishloto/shish-loto/internal/config"
	"github.com/shishloto/shish-loto/internal/game"
	"github.com/shishloto/shish-loto/internal/model"
	"github.com/shishloto/shish-loto/internal/palette"
	"github.com/shishloto/shish-loto/internal/platform"
	"github.com/shishloto/shish-loto/internal/storage"
)

// RootUI owns the main window: the timer bar, the barrel grid, and the
// lifecycle of the track detail popup. It is the only consumer of
// game.Change values.
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	gameTheme    *GameTheme
	session      *game.Session
	store        *storage.Store
	settings     *config.Settings
	localization *Localization
	logger       zerolog.Logger

	tracks []model.Track
	tiles  []*BarrelTile
	detail *TrackWindow

	timerLabel    *canvas.Text
	startPauseBtn *widget.Button
	undoBtn       *widget.Button
	resetBtn      *widget.Button
	tracksBtn     *widget.Button
	backgroundBtn *widget.Button
	background    *canvas.Image

	watcher    *storage.Watcher
	ticker     *time.Ticker
	tickerDone chan struct{}
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, gameTheme *GameTheme, session *game.Session, store *storage.Store, logger zerolog.Logger) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		gameTheme:    gameTheme,
		session:      session,
		store:        store,
		settings:     settings,
		localization: localization,
		logger:       logger.With().Str("component", "ui").Str("session_id", session.ID()).Logger(),
	}

	tracks, err := store.Load()
	ui.tracks = tracks
	if err != nil {
		ui.logger.Warn().Err(err).Msg("track list loaded with fallback")
		widget.ShowPopUp(widget.NewLabel(localization.GetText(KeyLoadWarning)), window.Canvas())
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	ui.createMenu()
	ui.startTicker()
	ui.startWatcher()

	window.SetOnClosed(ui.Stop)
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Timer display
	ui.timerLabel = canvas.NewText(ui.session.FormatElapsed(), theme.Color(theme.ColorNameForeground))
	ui.timerLabel.TextSize = TimerTextSize
	ui.timerLabel.TextStyle = fyne.TextStyle{Bold: true}

	// Control buttons
	ui.startPauseBtn = widget.NewButton(IconPlayPause+" "+ui.localization.GetText(KeyStartPause), ui.onToggleTimer)
	ui.startPauseBtn.Importance = widget.HighImportance

	ui.undoBtn = widget.NewButton(IconUndo+" "+ui.localization.GetText(KeyUndo), ui.onUndo)
	ui.undoBtn.Importance = widget.WarningImportance

	ui.resetBtn = widget.NewButton(IconReset+" "+ui.localization.GetText(KeyReset), ui.onReset)
	ui.resetBtn.Importance = widget.DangerImportance

	ui.tracksBtn = widget.NewButton(IconTracks+" "+ui.localization.GetText(KeyTracks), ui.onShowTracks)
	ui.tracksBtn.Importance = widget.SuccessImportance

	ui.backgroundBtn = widget.NewButton(IconBackground+" "+ui.localization.GetText(KeyBackground), ui.onChangeBackground)
	ui.backgroundBtn.Importance = widget.LowImportance

	topPanel := container.NewBorder(
		nil, nil,
		ui.timerLabel,
		container.NewHBox(ui.startPauseBtn, ui.undoBtn, ui.resetBtn, ui.tracksBtn, ui.backgroundBtn),
	)

	// Barrel grid
	ui.tiles = make([]*BarrelTile, model.NumTiles)
	grid := container.NewGridWithColumns(model.GridCols)
	for i := 0; i < model.NumTiles; i++ {
		tile := NewBarrelTile(i, ui.onTileTapped)
		ui.tiles[i] = tile
		grid.Add(tile)
	}

	board := container.NewBorder(topPanel, nil, nil, nil, grid)

	// Background image sits behind the board; hidden until one is chosen
	ui.background = &canvas.Image{FillMode: canvas.ImageFillStretch}
	ui.background.Hide()

	ui.window.SetContent(container.NewStack(ui.background, board))

	if bg := ui.settings.GetBackgroundImage(); bg != "" {
		ui.applyBackground(bg)
	}

	ui.logger.Info().Msg("UI setup completed")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
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

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.startPauseBtn.SetText(IconPlayPause + " " + ui.localization.GetText(KeyStartPause))
	ui.undoBtn.SetText(IconUndo + " " + ui.localization.GetText(KeyUndo))
	ui.resetBtn.SetText(IconReset + " " + ui.localization.GetText(KeyReset))
	ui.tracksBtn.SetText(IconTracks + " " + ui.localization.GetText(KeyTracks))
	ui.backgroundBtn.SetText(IconBackground + " " + ui.localization.GetText(KeyBackground))
}

// applyChange renders exactly what a session transition reports as changed.
func (ui *RootUI) applyChange(change game.Change) {
	for _, index := range change.Tiles {
		ui.tiles[index].SetMarked(ui.session.Marked(index))
	}

	if change.CloseDetail {
		ui.closeDetail()
	}
	if change.OpenDetail != game.NoTile {
		ui.openDetail(change.OpenDetail)
	}

	if change.TimerChanged {
		ui.timerLabel.Text = ui.session.FormatElapsed()
		ui.timerLabel.Refresh()
	}
}

// onTileTapped handles a barrel click
func (ui *RootUI) onTileTapped(index int) {
	change, err := ui.session.MarkTile(index)
	if err != nil {
		// Out-of-range index can only come from broken wiring
		ui.logger.Error().Err(err).Int("tile", index).Msg("mark rejected")
		return
	}

	if len(change.Tiles) > 0 {
		ui.logger.Info().Int("tile", index).Int("marked", ui.session.MarkedCount()).Msg("barrel marked")
	}
	ui.applyChange(change)
}

// onToggleTimer handles the start/pause button
func (ui *RootUI) onToggleTimer() {
	change := ui.session.ToggleTimer()
	ui.logger.Info().Bool("running", ui.session.Running()).Msg("timer toggled")
	ui.applyChange(change)
}

// onUndo handles the undo button
func (ui *RootUI) onUndo() {
	change := ui.session.Undo()
	if len(change.Tiles) > 0 {
		ui.logger.Info().Int("tile", change.Tiles[0]).Msg("mark undone")
	}
	ui.applyChange(change)
}

// onReset handles the reset button, optionally asking for confirmation
func (ui *RootUI) onReset() {
	if !ui.settings.GetConfirmReset() {
		ui.doReset()
		return
	}

	dialog.ShowConfirm(
		ui.localization.GetText(KeyResetTitle),
		ui.localization.GetText(KeyResetMessage),
		func(confirmed bool) {
			if confirmed {
				ui.doReset()
			}
		},
		ui.window,
	)
}

func (ui *RootUI) doReset() {
	change := ui.session.Reset()
	ui.logger.Info().Msg("session reset")
	ui.applyChange(change)
}

// openDetail shows the track popup for a tile, replacing any open one.
func (ui *RootUI) openDetail(index int) {
	ui.closeDetail()
	ui.detail = ShowTrackWindow(ui.window, ui.tracks[index], index, ui.localization,
		ui.onOpenLink,
		func() {
			ui.session.CloseDetail()
			ui.detail = nil
		})
}

// closeDetail hides the track popup if one is open.
func (ui *RootUI) closeDetail() {
	if ui.detail != nil {
		ui.detail.Hide()
		ui.detail = nil
	}
}

// onOpenLink opens the track's stored URL in the default browser.
func (ui *RootUI) onOpenLink(url string) {
	if err := platform.OpenURL(url); err != nil {
		ui.logger.Error().Err(err).Str("url", url).Msg("failed to open link")
	}
}

// onShowTracks opens the track editor dialog
func (ui *RootUI) onShowTracks() {
	NewTracksDialog(ui.window, ui.localization, ui.store, ui.tracks, func(edited []model.Track) {
		if err := ui.store.Save(edited); err != nil {
			ui.logger.Error().Err(err).Msg("track list save failed")
			widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeySaveFailed)+": "+err.Error()), ui.window.Canvas())
			return
		}
		ui.tracks = edited
		ui.logger.Info().Msg("track list saved")
	}).Show()
}

// onChangeBackground lets the host pick a background image and restyles the
// controls from its dominant color.
func (ui *RootUI) onChangeBackground() {
	picker := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		ui.settings.SetBackgroundImage(path)
		ui.applyBackground(path)
	}, ui.window)
	picker.SetFilter(fynestorage.NewExtensionFileFilter(imageExtensions))
	picker.SetTitleText(ui.localization.GetText(KeyChooseBackground))
	picker.Show()
}

// applyBackground shows the image behind the grid and retunes the theme
// primary to its dominant color.
func (ui *RootUI) applyBackground(path string) {
	if _, err := os.Stat(path); err != nil {
		ui.logger.Warn().Err(err).Str("path", path).Msg("background image missing")
		return
	}

	ui.background.File = path
	ui.background.Translucency = 1 - BackgroundImageDim
	ui.background.Show()
	ui.background.Refresh()

	extracted, err := palette.Extract(path)
	if err != nil {
		ui.logger.Warn().Err(err).Str("path", path).Msg("palette extraction failed")
		return
	}

	ui.gameTheme.SetPrimary(extracted.Primary)
	ui.app.Settings().SetTheme(ui.gameTheme)
	ui.logger.Info().Bool("dark", extracted.IsDark).Msg("background applied")
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.window, ui.localization, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeySettingsSaved)), ui.window.Canvas())
	}).Show()
}

// startTicker drives the session timer at a fixed one-second interval, so
// each Tick maps to one wall-clock second. The tick source always fires; the
// session drops ticks while idle, which is what gives pause its semantics.
func (ui *RootUI) startTicker() {
	ui.ticker = time.NewTicker(time.Second)
	ui.tickerDone = make(chan struct{})

	go func(ticker *time.Ticker, done chan struct{}) {
		for {
			select {
			case <-ticker.C:
				fyne.Do(func() {
					ui.applyChange(ui.session.Tick())
				})
			case <-done:
				return
			}
		}
	}(ui.ticker, ui.tickerDone)
}

// stopTicker stops the tick source.
func (ui *RootUI) stopTicker() {
	if ui.ticker != nil {
		ui.ticker.Stop()
		close(ui.tickerDone)
		ui.ticker = nil
	}
}

// startWatcher refreshes the grid when tracks.json changes on disk.
func (ui *RootUI) startWatcher() {
	watcher, err := ui.store.Watch(func() {
		fyne.Do(ui.reloadTracks)
	})
	if err != nil {
		ui.logger.Warn().Err(err).Msg("track list watcher unavailable")
		return
	}
	ui.watcher = watcher
}

// reloadTracks re-reads tracks.json after an external edit.
func (ui *RootUI) reloadTracks() {
	tracks, err := ui.store.Load()
	if err != nil {
		ui.logger.Warn().Err(err).Msg("track list reload failed")
		return
	}
	ui.tracks = tracks
	ui.logger.Info().Msg("track list reloaded")
	widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyTracksReloaded)), ui.window.Canvas())
}

// Stop releases the ticker and watcher. Safe to call once on window close.
func (ui *RootUI) Stop() {
	ui.stopTicker()
	if ui.watcher != nil {
		ui.watcher.Close()
		ui.watcher = nil
	}
}
