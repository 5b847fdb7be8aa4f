package theme

import (
	"errors"
	"fmt"

	"todo-list/internal/domain"
)

var (
	ErrThemeNotFound = errors.New("theme not found")
)

type Manager struct {
	themes map[domain.ThemeMode]*Theme
}

func NewManager() *Manager {
	return &Manager{
		themes: GetPredefinedThemes(),
	}
}

// returns the palette for a mode
func (m *Manager) GetTheme(mode domain.ThemeMode) (*Theme, error) {
	theme, exists := m.themes[mode]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrThemeNotFound, mode)
	}
	return theme, nil
}

// returns the palette for a mode, light if unknown
func (m *Manager) MustTheme(mode domain.ThemeMode) *Theme {
	t, err := m.GetTheme(mode)
	if err != nil {
		return m.GetDefaultTheme()
	}
	return t
}

// returns default theme
func (m *Manager) GetDefaultTheme() *Theme {
	return m.themes[domain.DefaultTheme]
}

var globalManager = NewManager()

// returns theme by mode using the global manager
func GetTheme(mode domain.ThemeMode) (*Theme, error) {
	return globalManager.GetTheme(mode)
}

// returns theme by mode using the global manager, light if unknown
func ForMode(mode domain.ThemeMode) *Theme {
	return globalManager.MustTheme(mode)
}

// returns the default theme using the global manager
func GetDefaultTheme() *Theme {
	return globalManager.GetDefaultTheme()
}
