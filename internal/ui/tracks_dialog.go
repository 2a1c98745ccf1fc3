package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	fynestorage "fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/shishloto/shish-loto/internal/metadata"
	"github.com/shishloto/shish-loto/internal/model"
	"github.com/shishloto/shish-loto/internal/storage"
)

// Image file extensions accepted by the cover and background pickers.
var imageExtensions = []string{".png", ".jpg", ".jpeg", ".bmp"}

// TracksDialog is the track and cover editor: one row per barrel with a title
// entry and a cover chooser, plus bulk title import from a folder of audio
// files. Edits are applied to a working copy and committed on Save.
type TracksDialog struct {
	window       fyne.Window
	localization *Localization
	store        *storage.Store
	extractor    *metadata.Extractor

	tracks  []model.Track // working copy
	entries []*widget.Entry
	covers  []*fyne.Container

	dialog *dialog.ConfirmDialog
	onSave func(tracks []model.Track)
}

// NewTracksDialog creates the editor over a copy of tracks. onSave receives
// the edited collection when the host confirms.
func NewTracksDialog(window fyne.Window, localization *Localization, store *storage.Store, tracks []model.Track, onSave func(tracks []model.Track)) *TracksDialog {
	td := &TracksDialog{
		window:       window,
		localization: localization,
		store:        store,
		extractor:    metadata.NewExtractor(),
		tracks:       append([]model.Track(nil), model.Normalize(tracks)...),
		onSave:       onSave,
	}

	td.createUI()
	return td
}

// Show displays the editor dialog
func (td *TracksDialog) Show() {
	td.dialog.Show()
}

// createUI creates the editor dialog UI
func (td *TracksDialog) createUI() {
	rows := container.NewVBox()

	td.entries = make([]*widget.Entry, model.NumTiles)
	td.covers = make([]*fyne.Container, model.NumTiles)

	for i := 0; i < model.NumTiles; i++ {
		index := i // capture for closures

		entry := widget.NewEntry()
		entry.SetText(td.tracks[i].Title)
		entry.SetPlaceHolder(model.DefaultTitle(i))
		td.entries[i] = entry

		cover := container.NewGridWrap(fyne.NewSize(EditorCoverSize, EditorCoverSize), td.coverObject(i))
		td.covers[i] = cover

		chooseBtn := widget.NewButton(IconFolder, func() {
			td.onChooseCover(index)
		})
		chooseBtn.Importance = widget.LowImportance

		row := container.NewBorder(
			nil, nil,
			widget.NewLabel(fmt.Sprintf("%d.", i+1)),
			container.NewHBox(cover, chooseBtn),
			entry,
		)
		rows.Add(row)
	}

	importBtn := widget.NewButton(IconFolder+" "+td.localization.GetText(KeyImportFolder), td.onImportFolder)

	content := container.NewBorder(
		importBtn, nil, nil, nil,
		container.NewVScroll(rows),
	)

	td.dialog = dialog.NewCustomConfirm(
		td.localization.GetText(KeyTrackEditor),
		td.localization.GetText(KeySave),
		td.localization.GetText(KeyCancel),
		content,
		td.onConfirm,
		td.window,
	)
	td.dialog.Resize(fyne.NewSize(EditorDialogWidth, EditorDialogHeight))
}

// coverObject returns the thumbnail for row i, or a placeholder.
func (td *TracksDialog) coverObject(i int) fyne.CanvasObject {
	if td.tracks[i].HasImage() {
		img := canvas.NewImageFromFile(td.tracks[i].ImagePath)
		img.FillMode = canvas.ImageFillContain
		return img
	}
	placeholder := widget.NewLabel(IconBackground)
	placeholder.Alignment = fyne.TextAlignCenter
	return placeholder
}

// onChooseCover opens a file picker and imports the chosen image into the app
// data dir so the stored reference survives the original file moving.
func (td *TracksDialog) onChooseCover(index int) {
	picker := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		srcPath := reader.URI().Path()
		reader.Close()

		dst, err := td.store.ImportCover(index, srcPath)
		if err != nil {
			dialog.ShowError(err, td.window)
			return
		}

		td.tracks[index].ImagePath = dst
		td.covers[index].Objects = []fyne.CanvasObject{td.coverObject(index)}
		td.covers[index].Refresh()
	}, td.window)
	picker.SetFilter(fynestorage.NewExtensionFileFilter(imageExtensions))
	picker.SetTitleText(td.localization.GetText(KeyChooseImage))
	picker.Show()
}

// onImportFolder fills titles from the audio files in a chosen folder.
func (td *TracksDialog) onImportFolder() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}

		titles, err := td.extractor.ImportTitles(uri.Path(), model.NumTiles)
		if err != nil {
			dialog.ShowError(fmt.Errorf("%s: %w", td.localization.GetText(KeyImportFailed), err), td.window)
			return
		}

		for i, title := range titles {
			td.entries[i].SetText(title)
		}
	}, td.window)
}

// onConfirm handles the Save/Cancel choice
func (td *TracksDialog) onConfirm(confirmed bool) {
	if !confirmed {
		return
	}

	for i, entry := range td.entries {
		title := entry.Text
		if title == "" {
			title = model.DefaultTitle(i)
		}
		td.tracks[i].Title = title
	}

	if td.onSave != nil {
		td.onSave(td.tracks)
	}
}
