package config

import (
	"strings"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyPrefAPIURL       = "api_url"
	KeyPrefLanguage     = "app_language"
	KeyPrefImageWorkers = "image_workers"
)

// Preference defaults and bounds
const (
	DefaultLanguage = "system"
	MinImageWorkers = 1
	MaxImageWorkers = 10
)

// Settings manages per-user GUI preferences on top of the loaded Config
type Settings struct {
	app      fyne.App
	defaults Config
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App, defaults Config) *Settings {
	return &Settings{app: app, defaults: defaults}
}

// GetAPIURL returns the backend base URL, preferring the stored preference
func (s *Settings) GetAPIURL() string {
	apiURL := s.app.Preferences().String(KeyPrefAPIURL)
	if apiURL == "" {
		return s.defaults.APIURL
	}
	return apiURL
}

// SetAPIURL stores the backend base URL; an invalid URL is rejected
func (s *Settings) SetAPIURL(apiURL string) error {
	apiURL = strings.TrimRight(strings.TrimSpace(apiURL), "/")
	if err := ValidateAPIURL(apiURL); err != nil {
		return err
	}
	s.app.Preferences().SetString(KeyPrefAPIURL, apiURL)
	return nil
}

// GetImageWorkers returns the number of concurrent image loads
func (s *Settings) GetImageWorkers() int {
	value := s.app.Preferences().Int(KeyPrefImageWorkers)
	if value <= 0 {
		return clampWorkers(s.defaults.ImageWorkers)
	}
	return value
}

// SetImageWorkers sets the number of concurrent image loads
func (s *Settings) SetImageWorkers(count int) {
	s.app.Preferences().SetInt(KeyPrefImageWorkers, clampWorkers(count))
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyPrefLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyPrefLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"fr":     "Français",
	}
}

func clampWorkers(count int) int {
	if count < MinImageWorkers {
		return MinImageWorkers
	}
	if count > MaxImageWorkers {
		return MaxImageWorkers
	}
	return count
}
