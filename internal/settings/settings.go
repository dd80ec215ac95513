// Package settings reads and writes the working-hours policy and theme kept
// in the key-value store
package settings

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ayoisaiah/clockout/internal/apperr"
	"github.com/ayoisaiah/clockout/store"
)

const (
	DefaultWeekdayHours = 8
	DefaultWeekendHours = 5

	// maxHours bounds both stored and saved hours to a single day.
	maxHours = 24

	themeDark  = "true"
	themeLight = "false"
)

var (
	errInvalidHours = &apperr.Error{
		Message: "%s must be a whole number of hours between 1 and %d, got %d",
	}

	errMalformedSetting = &apperr.Error{
		Message: "stored %s value %q is malformed, using the default",
	}

	errUnknownTheme = &apperr.Error{
		Message: "unknown theme %q (must be dark or light)",
	}
)

// Settings holds the user's policy settings.
type Settings struct {
	WeekdayHours int
	WeekendHours int
	DarkTheme    bool
}

// Default returns the settings used when nothing is stored.
func Default() Settings {
	return Settings{
		WeekdayHours: DefaultWeekdayHours,
		WeekendHours: DefaultWeekendHours,
	}
}

// Provider supplies the current settings.
type Provider interface {
	Settings() (Settings, error)
}

// Checker is implemented by providers that can report stored values they
// replaced with defaults.
type Checker interface {
	Check() ([]error, error)
}

// StoreProvider reads settings from the key-value store on every call so
// that changes are picked up without a restart.
type StoreProvider struct {
	KV store.KV
}

// Settings loads the settings, logging any malformed values it replaced
// with their defaults.
func (p *StoreProvider) Settings() (Settings, error) {
	s, warnings, err := Load(p.KV)

	for _, w := range warnings {
		slog.Warn("ignoring stored setting", slog.Any("error", w))
	}

	return s, err
}

// Check returns the malformed settings that Settings replaces with their
// defaults.
func (p *StoreProvider) Check() ([]error, error) {
	_, warnings, err := Load(p.KV)

	return warnings, err
}

// Load reads the settings stored in kv. Absent or malformed values fall back
// to their defaults; malformed ones are reported as warnings.
func Load(kv store.KV) (Settings, []error, error) {
	s := Default()

	var warnings []error

	hours := []struct {
		key string
		dst *int
	}{
		{store.KeyWeekdayHours, &s.WeekdayHours},
		{store.KeyWeekendHours, &s.WeekendHours},
	}

	for _, h := range hours {
		v, ok, err := kv.Get(h.key)
		if err != nil {
			return s, warnings, fmt.Errorf("reading %s: %w", h.key, err)
		}

		if !ok {
			continue
		}

		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n < 1 || n > maxHours {
			warnings = append(warnings, errMalformedSetting.Fmt(h.key, v))
			continue
		}

		*h.dst = n
	}

	theme, ok, err := kv.Get(store.KeyTheme)
	if err != nil {
		return s, warnings, fmt.Errorf("reading %s: %w", store.KeyTheme, err)
	}

	if ok {
		s.DarkTheme = theme == themeDark
	}

	return s, warnings, nil
}

// Validate checks that the hours are within range.
func (s Settings) Validate() error {
	if s.WeekdayHours < 1 || s.WeekdayHours > maxHours {
		return errInvalidHours.Fmt(store.KeyWeekdayHours, maxHours, s.WeekdayHours)
	}

	if s.WeekendHours < 1 || s.WeekendHours > maxHours {
		return errInvalidHours.Fmt(store.KeyWeekendHours, maxHours, s.WeekendHours)
	}

	return nil
}

// Save validates s and writes it to kv in one batch.
func Save(kv store.KV, s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}

	theme := themeLight
	if s.DarkTheme {
		theme = themeDark
	}

	return store.Apply(kv,
		store.Put(store.KeyWeekdayHours, strconv.Itoa(s.WeekdayHours)),
		store.Put(store.KeyWeekendHours, strconv.Itoa(s.WeekendHours)),
		store.Put(store.KeyTheme, theme),
	)
}

// ParseTheme converts a user supplied theme name.
func ParseTheme(name string) (dark bool, err error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dark", themeDark:
		return true, nil
	case "light", themeLight:
		return false, nil
	}

	return false, errUnknownTheme.Fmt(name)
}

// ThemeName returns the display name of the theme.
func (s Settings) ThemeName() string {
	if s.DarkTheme {
		return "dark"
	}

	return "light"
}
