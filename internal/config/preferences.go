package config

import (
	"github.com/goccy/go-yaml"

	"github.com/fernandofreitas03/textfmt/internal/errors"
)

const preferencesFile = "preferences.yaml"

// Preferences are the user's default formatting options, applied when a
// request does not specify its own.
type Preferences struct {
	Width   int  `yaml:"width,omitempty"`
	Justify bool `yaml:"justify,omitempty"`
}

func LoadPreferences(backend Backend) (Preferences, error) {
	var prefs Preferences

	raw, err := backend.Get(preferencesFile)
	if err != nil {
		return prefs, errors.Wrap(err, "unable to read preferences")
	}
	if raw == "" {
		return prefs, nil
	}

	if err := yaml.Unmarshal([]byte(raw), &prefs); err != nil {
		return prefs, errors.Wrap(err, "unable to parse preferences")
	}

	return prefs, nil
}

func SavePreferences(backend Backend, prefs Preferences) error {
	encoded, err := yaml.Marshal(prefs)
	if err != nil {
		return errors.Wrap(err, "unable to encode preferences")
	}

	if err := backend.Set(preferencesFile, string(encoded)); err != nil {
		return errors.Wrap(err, "unable to write preferences")
	}

	return nil
}
