package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage        = "app_language"
	KeyBackgroundImage = "background_image"
	KeyConfirmReset    = "confirm_reset"
)

// Default values
const (
	DefaultLanguage     = "system"
	DefaultConfirmReset = true
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
	}
}

// GetBackgroundImage returns the stored background image path, empty when the
// host has not chosen one.
func (s *Settings) GetBackgroundImage() string {
	return s.app.Preferences().String(KeyBackgroundImage)
}

// SetBackgroundImage sets the background image path
func (s *Settings) SetBackgroundImage(path string) {
	s.app.Preferences().SetString(KeyBackgroundImage, path)
}

// GetConfirmReset returns whether resetting the board asks for confirmation
func (s *Settings) GetConfirmReset() bool {
	return s.app.Preferences().BoolWithFallback(KeyConfirmReset, DefaultConfirmReset)
}

// SetConfirmReset sets whether resetting the board asks for confirmation
func (s *Settings) SetConfirmReset(confirm bool) {
	s.app.Preferences().SetBool(KeyConfirmReset, confirm)
}
