package settings

import (
	"strconv"

	"reefscout/internal/store"
)

// Background themes the frontend can render.
const (
	BackgroundRed  = "red"
	BackgroundBlue = "blue"
	BackgroundGray = "gray"
)

// Settings holds the persisted display preferences. The actual theming
// is the frontend's business; this only round-trips the choices through
// the slot store.
type Settings struct {
	store      store.Store
	darkMode   bool
	background string
}

// New builds settings rehydrated from the store. Missing or
// unrecognized values fall back to light mode on gray.
func New(st store.Store) *Settings {
	s := &Settings{store: st, background: BackgroundGray}
	if raw, ok := st.Read(store.KeyDarkMode); ok {
		s.darkMode = raw == "true"
	}
	if raw, ok := st.Read(store.KeyBackground); ok {
		switch raw {
		case BackgroundRed, BackgroundBlue, BackgroundGray:
			s.background = raw
		}
	}
	return s
}

// DarkMode reports whether dark mode is on.
func (s *Settings) DarkMode() bool {
	return s.darkMode
}

// SetDarkMode stores the dark-mode flag.
func (s *Settings) SetDarkMode(on bool) {
	s.darkMode = on
	s.store.Write(store.KeyDarkMode, strconv.FormatBool(on))
}

// Background returns the current background theme.
func (s *Settings) Background() string {
	return s.background
}

// SetBackground stores the background theme. Unknown themes are
// ignored.
func (s *Settings) SetBackground(theme string) {
	switch theme {
	case BackgroundRed, BackgroundBlue, BackgroundGray:
	default:
		return
	}
	s.background = theme
	s.store.Write(store.KeyBackground, theme)
}
