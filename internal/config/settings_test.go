package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("ru")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "ru" {
		t.Errorf("Expected language 'ru', got %s", retrievedLang)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}

func TestBackgroundImage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// No background by default
	if settings.GetBackgroundImage() != "" {
		t.Errorf("Expected empty default background, got %s", settings.GetBackgroundImage())
	}

	settings.SetBackgroundImage("/images/party.png")
	if settings.GetBackgroundImage() != "/images/party.png" {
		t.Errorf("Expected stored background path, got %s", settings.GetBackgroundImage())
	}
}

func TestConfirmReset(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetConfirmReset() != DefaultConfirmReset {
		t.Errorf("Expected default confirm reset %v", DefaultConfirmReset)
	}

	settings.SetConfirmReset(false)
	if settings.GetConfirmReset() {
		t.Error("Expected confirm reset to be disabled")
	}
}
