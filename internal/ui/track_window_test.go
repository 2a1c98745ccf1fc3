package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/shishloto/shish-loto/internal/model"
)

func TestShowTrackWindow_IsNotModal(t *testing.T) {
	window := test.NewWindow(widget.NewLabel("board"))
	defer window.Close()
	window.Resize(fyne.NewSize(800, 600))

	ShowTrackWindow(window, model.Track{Title: "Song"}, 0, NewLocalization(), nil, nil)

	if window.Canvas().Overlays().Top() == nil {
		t.Fatal("Expected the detail popup to be shown as an overlay")
	}

	// A tap outside the popup must dismiss it; a modal overlay would swallow
	// the tap and keep the board unreachable.
	test.TapCanvas(window.Canvas(), fyne.NewPos(1, 1))

	if window.Canvas().Overlays().Top() != nil {
		t.Error("Expected a tap outside the popup to dismiss it")
	}
}

func TestShowTrackWindow_CloseButtonReportsClose(t *testing.T) {
	window := test.NewWindow(widget.NewLabel("board"))
	defer window.Close()
	window.Resize(fyne.NewSize(800, 600))

	closed := false
	tw := ShowTrackWindow(window, model.Track{Title: "Song"}, 0, NewLocalization(), nil, func() {
		closed = true
	})

	// The close button sits in the top-right corner of the popup content.
	pos := tw.popup.Content.Position()
	size := tw.popup.Content.Size()
	test.TapCanvas(window.Canvas(), fyne.NewPos(pos.X+size.Width-10, pos.Y+10))

	if !closed {
		t.Error("Expected the close button to invoke the close callback")
	}
	if window.Canvas().Overlays().Top() != nil {
		t.Error("Expected the popup to be hidden after closing")
	}
}
