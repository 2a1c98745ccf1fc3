package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconPlayPause  = "▶"
	IconUndo       = "↩"
	IconReset      = "🔄"
	IconTracks     = "🎶"
	IconBackground = "🖼"
	IconFolder     = "📂"
	IconClose      = "✕"
	IconMusic      = "🎵"
)

// Layout sizing (tiles / grid)
const (
	TileMinSize    float32 = 56
	TimerTextSize  float32 = 40
	TileStrokeBase float32 = 3
)

// Track detail popup sizing
const (
	DetailWidthRatio  float32 = 0.75
	DetailHeightRatio float32 = 0.75
	DetailMinWidth    float32 = 400
	DetailMinHeight   float32 = 300
)

// Editor dialog sizing
const (
	EditorDialogWidth  float32 = 560
	EditorDialogHeight float32 = 720
	EditorCoverSize    float32 = 56
)

// Settings dialog sizing
const (
	SettingsDialogWidth  float32 = 460
	SettingsDialogHeight float32 = 320
)

// Palette theming
const (
	HoverLightenAmount = 0.08
	AccentDarkenAmount = 0.12
	BackgroundImageDim = 0.85
)
