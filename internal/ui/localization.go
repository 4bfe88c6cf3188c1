package ui

import (
	"embed"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/ytget/navdemo/internal/logging"
)

//go:embed locales/*.toml
var localeFS embed.FS

// Text keys for localization
const (
	KeyAppTitle = "app_title"
	KeyBack     = "back"
	KeyClose    = "close"

	KeyLoginTitle       = "login_title"
	KeyEmail            = "email"
	KeyPassword         = "password"
	KeyLogin            = "login"
	KeyEmailRequired    = "email_required"
	KeyPasswordRequired = "password_required"
	KeyFieldEmail       = "field_email"
	KeyFieldPassword    = "field_password"
	KeyConjunctionAnd   = "conjunction_and"
	KeyPleaseEnter      = "please_enter"

	KeyHomeTitle = "home_title"
	KeyWelcome   = "welcome"
	KeyGoToForm  = "go_to_form"

	KeyFormTitle     = "form_title"
	KeyFullName      = "full_name"
	KeyDateOfBirth   = "date_of_birth"
	KeyPickDate      = "pick_date"
	KeyGender        = "gender"
	KeyAddress       = "address"
	KeyCountry       = "country"
	KeySubmit        = "submit"
	KeyNameRequired  = "name_required"
	KeySelectCountry = "select_country"

	KeyDetailsTitle     = "details_title"
	KeySubmittedDetails = "submitted_details"

	KeyFile              = "file"
	KeySettings          = "settings"
	KeyLanguage          = "language"
	KeyLogLevel          = "log_level"
	KeyInterfaceSettings = "interface_settings"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
)

// Localization manages UI text translations backed by the embedded message files
type Localization struct {
	bundle          *i18n.Bundle
	localizer       *i18n.Localizer
	currentLanguage string
}

// NewLocalization creates a new localization manager set to English
func NewLocalization() *Localization {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(localeFS, "locales/*.toml")
	if err != nil {
		logging.GetLogger().Error("failed to list message files", "error", err)
	}
	for _, path := range files {
		if _, err := bundle.LoadMessageFileFS(localeFS, path); err != nil {
			logging.GetLogger().Error("failed to load message file", "path", path, "error", err)
		}
	}

	l := &Localization{bundle: bundle}
	l.SetLanguage("en")
	return l
}

// SetLanguage sets the current language. Unknown codes are ignored.
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.GetAvailableLanguages()[lang]; !exists {
		return
	}

	l.currentLanguage = lang
	l.localizer = i18n.NewLocalizer(l.bundle, lang, language.English.String())
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	return l.Format(key, nil)
}

// Format returns localized text for key with data substituted into its template.
// Falls back to English, then to the key itself.
func (l *Localization) Format(key string, data map[string]any) string {
	text, _ := l.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if text == "" {
		return key
	}
	return text
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
		"pt": "Português",
	}
}
