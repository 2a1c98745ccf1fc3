package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyStartPause       = "start_pause"
	KeyUndo             = "undo"
	KeyReset            = "reset"
	KeyTracks           = "tracks"
	KeyBackground       = "background"
	KeySettings         = "settings"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeyConfirmReset     = "confirm_reset"
	KeyTrackEditor      = "track_editor"
	KeyImportFolder     = "import_folder"
	KeyChooseImage      = "choose_image"
	KeyChooseBackground = "choose_background"
	KeyNoImage          = "no_image"
	KeyOpenLink         = "open_link"
	KeyResetTitle       = "reset_title"
	KeyResetMessage     = "reset_message"
	KeySaveFailed       = "save_failed"
	KeyLoadWarning      = "load_warning"
	KeyImportFailed     = "import_failed"
	KeyTracksReloaded   = "tracks_reloaded"
	KeySettingsSaved    = "settings_saved"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
	}
}

// initializeTexts fills the translation tables
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Shish Loto",
		KeyStartPause:       "Start/Pause",
		KeyUndo:             "Undo",
		KeyReset:            "Reset all barrels",
		KeyTracks:           "Tracks…",
		KeyBackground:       "Background",
		KeySettings:         "Settings",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeyConfirmReset:     "Confirm before reset",
		KeyTrackEditor:      "Track and cover editor",
		KeyImportFolder:     "Import titles from folder",
		KeyChooseImage:      "Choose an image",
		KeyChooseBackground: "Choose a background",
		KeyNoImage:          "No image",
		KeyOpenLink:         "Open link",
		KeyResetTitle:       "Reset session",
		KeyResetMessage:     "Unmark all barrels and zero the timer?",
		KeySaveFailed:       "Failed to save track list",
		KeyLoadWarning:      "Track list could not be read, using defaults",
		KeyImportFailed:     "Failed to import titles",
		KeyTracksReloaded:   "Track list reloaded",
		KeySettingsSaved:    "Settings saved",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Шиш Лото",
		KeyStartPause:       "Старт/Пауза",
		KeyUndo:             "Назад",
		KeyReset:            "Сброс всех бочонков",
		KeyTracks:           "Треки…",
		KeyBackground:       "Фон",
		KeySettings:         "Настройки",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeyFile:             "Файл",
		KeyLanguage:         "Язык",
		KeyConfirmReset:     "Подтверждать сброс",
		KeyTrackEditor:      "Редактор треков и обложек",
		KeyImportFolder:     "Импорт названий из папки",
		KeyChooseImage:      "Выберите изображение",
		KeyChooseBackground: "Выберите фон",
		KeyNoImage:          "Нет изображения",
		KeyOpenLink:         "Открыть ссылку",
		KeyResetTitle:       "Сброс игры",
		KeyResetMessage:     "Снять отметки со всех бочонков и обнулить таймер?",
		KeySaveFailed:       "Не удалось сохранить список треков",
		KeyLoadWarning:      "Список треков не прочитан, загружены значения по умолчанию",
		KeyImportFailed:     "Не удалось импортировать названия",
		KeyTracksReloaded:   "Список треков перечитан",
		KeySettingsSaved:    "Настройки сохранены",
	}
}
