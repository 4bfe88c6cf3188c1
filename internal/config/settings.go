package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage     = "app_language"
	KeyLogLevel     = "log_level"
	KeyWindowWidth  = "window_width"
	KeyWindowHeight = "window_height"
)

// Default values
const (
	DefaultLanguage     = "system"
	DefaultLogLevel     = "info"
	DefaultWindowWidth  = 420
	DefaultWindowHeight = 780
)

// Window size bounds
const (
	MinWindowWidth  = 320
	MinWindowHeight = 480
	MaxWindowSize   = 1920
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

// GetLogLevel returns the configured log level name
func (s *Settings) GetLogLevel() string {
	level := s.app.Preferences().String(KeyLogLevel)
	if level == "" {
		s.SetLogLevel(DefaultLogLevel)
		return DefaultLogLevel
	}
	return level
}

// SetLogLevel sets the log level. Unknown names reset it to the default.
func (s *Settings) SetLogLevel(level string) {
	valid := false
	for _, option := range s.GetLogLevelOptions() {
		if option == level {
			valid = true
			break
		}
	}
	if !valid {
		level = DefaultLogLevel
	}
	s.app.Preferences().SetString(KeyLogLevel, level)
}

// GetWindowSize returns the initial window size
func (s *Settings) GetWindowSize() fyne.Size {
	width := s.app.Preferences().Int(KeyWindowWidth)
	if width <= 0 {
		width = DefaultWindowWidth
	}
	height := s.app.Preferences().Int(KeyWindowHeight)
	if height <= 0 {
		height = DefaultWindowHeight
	}
	return fyne.NewSize(float32(width), float32(height))
}

// SetWindowSize stores the initial window size, clamped to sane bounds
func (s *Settings) SetWindowSize(width, height int) {
	s.app.Preferences().SetInt(KeyWindowWidth, clamp(width, MinWindowWidth, MaxWindowSize))
	s.app.Preferences().SetInt(KeyWindowHeight, clamp(height, MinWindowHeight, MaxWindowSize))
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetLogLevelOptions returns available log levels, most verbose first
func (s *Settings) GetLogLevelOptions() []string {
	return []string{"debug", "info", "warn", "error"}
}

func clamp(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
