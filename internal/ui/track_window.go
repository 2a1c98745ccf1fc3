package ui

import (
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/shishloto/shish-loto/internal/model"
)

// TrackWindow is the track detail popup shown when a barrel is marked: cover
// image and title, centered over the board. The popup is not modal: the board
// stays reachable underneath, so marking the next barrel replaces the open
// detail. Only one is open at a time; the root UI closes the previous one
// before showing the next.
type TrackWindow struct {
	popup  *widget.PopUp
	window fyne.Window
}

// ShowTrackWindow builds and shows the detail popup for the given track.
// onOpenLink is invoked with the track URL when the host clicks the link
// button; onClose when the popup's close button is used.
func ShowTrackWindow(window fyne.Window, track model.Track, index int, localization *Localization, onOpenLink func(url string), onClose func()) *TrackWindow {
	tw := &TrackWindow{window: window}

	closeBtn := widget.NewButton(IconClose, func() {
		tw.Hide()
		if onClose != nil {
			onClose()
		}
	})
	closeBtn.Importance = widget.DangerImportance

	var cover fyne.CanvasObject
	if track.HasImage() {
		if _, err := os.Stat(track.ImagePath); err == nil {
			img := canvas.NewImageFromFile(track.ImagePath)
			img.FillMode = canvas.ImageFillContain
			cover = img
		}
	}
	if cover == nil {
		placeholder := widget.NewLabel(IconMusic + " " + localization.GetText(KeyNoImage))
		placeholder.Alignment = fyne.TextAlignCenter
		cover = container.NewCenter(placeholder)
	}

	title := widget.NewLabel(track.DisplayTitle(index))
	title.Alignment = fyne.TextAlignCenter
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Wrapping = fyne.TextWrapWord

	bottom := container.NewVBox(title)
	if track.URL != "" {
		linkBtn := widget.NewButton(localization.GetText(KeyOpenLink), func() {
			if onOpenLink != nil {
				onOpenLink(track.URL)
			}
		})
		linkBtn.Importance = widget.LowImportance
		bottom.Add(container.NewCenter(linkBtn))
	}

	content := container.NewBorder(
		container.NewBorder(nil, nil, nil, closeBtn), // top, close button right-aligned
		bottom, // bottom
		nil,
		nil,
		cover, // center
	)

	tw.popup = widget.NewPopUp(content, window.Canvas())

	canvasSize := window.Canvas().Size()
	w := canvasSize.Width * DetailWidthRatio
	h := canvasSize.Height * DetailHeightRatio
	if w < DetailMinWidth {
		w = DetailMinWidth
	}
	if h < DetailMinHeight {
		h = DetailMinHeight
	}
	tw.popup.Resize(fyne.NewSize(w, h))
	tw.popup.ShowAtPosition(fyne.NewPos((canvasSize.Width-w)/2, (canvasSize.Height-h)/2))

	return tw
}

// Hide dismisses the popup.
func (tw *TrackWindow) Hide() {
	if tw.popup != nil {
		tw.popup.Hide()
	}
}
