package ui

// Package ui contains the Fyne-based desktop user interface: the barrel grid,
// timer bar, track detail popup, and the editor/settings dialogs. It consumes
// game.Change values from the session state machine and renders exactly what
// changed. All UI strings are localized via Localization.
