package resource

import (
	"fmt"

	"github.com/spf13/viper"

	"placebot/internal/models"
)

// defaults is the built-in English string table. Locale files loaded from
// disk override individual keys.
var defaults = map[string]string{
	"prompt.location":         "Where should I look? Please share a location.",
	"native.button":           "Share my location",
	"native.retry":            "Please use the button below to share your location.",
	"picker.empty":            "Please type the address you are looking for.",
	"picker.no_results":       "I could not find that address. Please try a different one.",
	"picker.choose":           "Which one did you mean? Reply with a number.",
	"picker.invalid_choice":   "Please reply with one of the listed numbers.",
	"required.intro":          "I need a few more details about this location.",
	"required.empty":          "I still need a value for that. Please try again.",
	"required.street_address": "What is the street address?",
	"required.locality":       "Which city or town?",
	"required.region":         "Which state or region?",
	"required.postal_code":    "What is the postal code?",
	"required.country":        "Which country?",
	"done.place":              "Here is the location I recorded:",
}

// Manager resolves localized strings with a per-key fallback to the built-in
// English table.
type Manager struct {
	locale    string
	overrides map[string]string
}

// NewManager creates a manager for the given locale with built-in strings
// only.
func NewManager(locale string) *Manager {
	return &Manager{locale: locale, overrides: map[string]string{}}
}

// LoadDir reads <locale>.yaml from dir and overlays its keys onto the
// built-in table. A missing file for the default locale is not an error.
func (m *Manager) LoadDir(dir string) error {
	v := viper.New()
	v.SetConfigName(m.locale)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("resource: failed to read locale %q: %w", m.locale, err)
	}

	for _, key := range v.AllKeys() {
		m.overrides[key] = v.GetString(key)
	}
	return nil
}

// Get returns the string for a key, falling back to the built-in table and
// finally to the key itself so a missing entry stays visible.
func (m *Manager) Get(key string) string {
	if s, ok := m.overrides[key]; ok && s != "" {
		return s
	}
	if s, ok := defaults[key]; ok {
		return s
	}
	return key
}

// RequiredFieldPrompt returns the question asked for a single missing
// address field.
func (m *Manager) RequiredFieldPrompt(field models.Field) string {
	return m.Get("required." + field.String())
}

// Locale reports the locale this manager resolves for.
func (m *Manager) Locale() string {
	return m.locale
}
