package ui

import (
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// Tile colors, matching the classic barrel look: sky blue ring with a white
// number when open, dark red ring with dimmed number once marked.
var (
	tileRingColor       = color.RGBA{R: 135, G: 206, B: 250, A: 255}
	tileRingMarked      = color.RGBA{R: 128, G: 0, B: 0, A: 255}
	tileNumberColor     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	tileNumberMarked    = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	tileNumberShadow    = color.RGBA{R: 0, G: 0, B: 0, A: 160}
	tileShadowOffsetPx  = float32(2)
	tileCircleSizeRatio = float32(0.9)
	tileTextSizeDivisor = float32(3.6)
)

// BarrelTile is one numbered cell of the grid. It renders a ring with the
// 1-indexed barrel number and reports taps with its index.
type BarrelTile struct {
	widget.BaseWidget

	index    int
	marked   bool
	onTapped func(index int)
}

// NewBarrelTile creates the tile for the given 0-based index.
func NewBarrelTile(index int, onTapped func(index int)) *BarrelTile {
	tile := &BarrelTile{
		index:    index,
		onTapped: onTapped,
	}
	tile.ExtendBaseWidget(tile)
	return tile
}

// Index returns the tile's 0-based board index.
func (bt *BarrelTile) Index() int {
	return bt.index
}

// Marked reports the rendered marked state.
func (bt *BarrelTile) Marked() bool {
	return bt.marked
}

// SetMarked updates the rendered marked state.
func (bt *BarrelTile) SetMarked(marked bool) {
	if bt.marked == marked {
		return
	}
	bt.marked = marked
	bt.Refresh()
}

// Tapped implements fyne.Tappable.
func (bt *BarrelTile) Tapped(_ *fyne.PointEvent) {
	if bt.onTapped != nil {
		bt.onTapped(bt.index)
	}
}

// Cursor implements desktop.Cursorable so the tile reads as clickable.
func (bt *BarrelTile) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

// CreateRenderer implements fyne.Widget.
func (bt *BarrelTile) CreateRenderer() fyne.WidgetRenderer {
	circle := canvas.NewCircle(color.Transparent)
	circle.StrokeColor = tileRingColor
	circle.StrokeWidth = TileStrokeBase

	number := strconv.Itoa(bt.index + 1)

	shadow := canvas.NewText(number, tileNumberShadow)
	shadow.TextStyle = fyne.TextStyle{Bold: true}

	label := canvas.NewText(number, tileNumberColor)
	label.TextStyle = fyne.TextStyle{Bold: true}

	r := &barrelTileRenderer{
		tile:   bt,
		circle: circle,
		shadow: shadow,
		label:  label,
	}
	r.Refresh()
	return r
}

type barrelTileRenderer struct {
	tile   *BarrelTile
	circle *canvas.Circle
	shadow *canvas.Text
	label  *canvas.Text
}

func (r *barrelTileRenderer) Layout(size fyne.Size) {
	d := size.Width
	if size.Height < d {
		d = size.Height
	}

	circleSize := d * tileCircleSizeRatio
	r.circle.Resize(fyne.NewSize(circleSize, circleSize))
	r.circle.Move(fyne.NewPos((size.Width-circleSize)/2, (size.Height-circleSize)/2))
	r.circle.StrokeWidth = maxFloat32(TileStrokeBase, d/25)

	textSize := maxFloat32(10, d/tileTextSizeDivisor)
	r.label.TextSize = textSize
	r.shadow.TextSize = textSize

	measured := fyne.MeasureText(r.label.Text, textSize, r.label.TextStyle)
	labelPos := fyne.NewPos((size.Width-measured.Width)/2, (size.Height-measured.Height)/2)
	r.label.Move(labelPos)
	r.shadow.Move(labelPos.AddXY(tileShadowOffsetPx, tileShadowOffsetPx))
}

func (r *barrelTileRenderer) MinSize() fyne.Size {
	return fyne.NewSize(TileMinSize, TileMinSize)
}

func (r *barrelTileRenderer) Refresh() {
	if r.tile.marked {
		r.circle.StrokeColor = tileRingMarked
		r.label.Color = tileNumberMarked
	} else {
		r.circle.StrokeColor = tileRingColor
		r.label.Color = tileNumberColor
	}
	r.circle.Refresh()
	r.shadow.Refresh()
	r.label.Refresh()
}

func (r *barrelTileRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.circle, r.shadow, r.label}
}

func (r *barrelTileRenderer) Destroy() {}

func maxFloat32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
