package prefs

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"gh-wrapped/internal/i18n"
)

// Theme is the colour scheme of the terminal output.
type Theme string

const (
	Dark  Theme = "dark"
	Light Theme = "light"
)

// Toggle flips between dark and light.
func (t Theme) Toggle() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

const (
	keyLanguage = "lang"
	keyTheme    = "theme"
)

// Preferences are read once at startup and only change through the toggles.
type Preferences struct {
	Language i18n.Language
	Theme    Theme
}

// Defaults are used for values that were never saved.
var Defaults = Preferences{Language: i18n.Primary, Theme: Dark}

// Load reads the saved preferences. Missing or unknown values fall back to
// Defaults.
func (s *Store) Load(ctx context.Context) (Preferences, error) {
	p := Defaults

	lang, err := s.Get(ctx, keyLanguage)
	switch {
	case err == nil:
		if l := i18n.Language(lang); l.Valid() {
			p.Language = l
		} else {
			log.Warn().Str("lang", lang).Msg("Ignoring unknown saved language")
		}
	case !errors.Is(err, ErrNotFound):
		return p, err
	}

	theme, err := s.Get(ctx, keyTheme)
	switch {
	case err == nil:
		if t := Theme(theme); t == Dark || t == Light {
			p.Theme = t
		}
	case !errors.Is(err, ErrNotFound):
		return p, err
	}
	return p, nil
}

// ToggleLanguage switches the language and persists the new value.
func (s *Store) ToggleLanguage(ctx context.Context, p Preferences) (Preferences, error) {
	p.Language = p.Language.Toggle()
	if err := s.Set(ctx, keyLanguage, string(p.Language)); err != nil {
		return p, err
	}
	log.Debug().Str("lang", string(p.Language)).Msg("Language toggled")
	return p, nil
}

// ToggleTheme switches the theme and persists the new value.
func (s *Store) ToggleTheme(ctx context.Context, p Preferences) (Preferences, error) {
	p.Theme = p.Theme.Toggle()
	if err := s.Set(ctx, keyTheme, string(p.Theme)); err != nil {
		return p, err
	}
	log.Debug().Str("theme", string(p.Theme)).Msg("Theme toggled")
	return p, nil
}
