package binding

import (
	"context"
	"fmt"

	"reefscout/internal/settings"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// SettingsBinding provides frontend bindings for display preferences.
type SettingsBinding struct {
	ctx      context.Context
	settings *settings.Settings
}

// NewSettingsBinding creates a new SettingsBinding instance.
func NewSettingsBinding(s *settings.Settings) *SettingsBinding {
	return &SettingsBinding{settings: s}
}

// SetContext sets the Wails runtime context.
func (s *SettingsBinding) SetContext(ctx context.Context) {
	s.ctx = ctx
}

// DarkMode reports whether dark mode is enabled.
func (s *SettingsBinding) DarkMode() bool {
	return s.settings.DarkMode()
}

// SetDarkMode toggles dark mode.
func (s *SettingsBinding) SetDarkMode(on bool) {
	s.settings.SetDarkMode(on)
	runtime.LogInfo(s.ctx, fmt.Sprintf("Dark mode set to %v", on))
}

// Background returns the current background theme.
func (s *SettingsBinding) Background() string {
	return s.settings.Background()
}

// SetBackground selects a background theme.
func (s *SettingsBinding) SetBackground(theme string) string {
	s.settings.SetBackground(theme)
	runtime.LogInfo(s.ctx, fmt.Sprintf("Background set to %s", s.settings.Background()))
	return s.settings.Background()
}
