package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/shishloto/shish-loto/internal/palette"
)

// GameTheme is the application theme. Its primary color can be replaced at
// runtime with the dominant color of the chosen background image.
type GameTheme struct {
	primary color.Color
	focus   color.Color
	accent  color.Color
}

// NewGameTheme creates the theme with the default primary color.
func NewGameTheme() *GameTheme {
	t := &GameTheme{}
	t.SetPrimary(color.RGBA{R: 106, G: 17, B: 203, A: 255}) // violet, matching the default button gradient
	return t
}

// SetPrimary replaces the primary color and rederives the focus and hyperlink
// accents from it. The caller must re-apply the theme for existing widgets to
// pick it up.
func (t *GameTheme) SetPrimary(c color.Color) {
	t.primary = c
	t.focus = palette.Lighten(c, HoverLightenAmount)
	t.accent = palette.Darken(c, AccentDarkenAmount)
}

// Color returns theme colors
func (t *GameTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return t.primary
	case theme.ColorNameFocus:
		return t.focus
	case theme.ColorNameHyperlink:
		return t.accent
	case theme.ColorNameSuccess:
		return color.RGBA{R: 34, G: 197, B: 94, A: 255} // Green, tracks editor accent
	case theme.ColorNameError:
		return color.RGBA{R: 244, G: 63, B: 94, A: 255} // Rose, reset accent
	case theme.ColorNameWarning:
		return color.RGBA{R: 234, G: 179, B: 8, A: 255} // Amber, undo accent
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *GameTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *GameTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with slightly tightened spacing so 50 tiles fit
// comfortably on one screen.
func (t *GameTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 16
	case theme.SizeNameInputRadius:
		return 3
	}

	return theme.DefaultTheme().Size(name)
}
