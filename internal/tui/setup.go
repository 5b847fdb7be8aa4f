package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"todo-list/internal/display"
	"todo-list/internal/domain"
	"todo-list/internal/render"
	"todo-list/internal/store"
	"todo-list/internal/theme"
)

// ThemePickerModel lets the user choose between the light and dark themes
// with a live preview. The choice is persisted through the store on enter.
type ThemePickerModel struct {
	store         *store.Store
	modes         []domain.ThemeMode
	selectedIndex int
	currentTheme  *theme.Theme
	width         int
	height        int
	quitting      bool
	confirmed     bool
	err           error
}

func NewThemePicker(s *store.Store) ThemePickerModel {
	modes := []domain.ThemeMode{domain.ThemeLight, domain.ThemeDark}

	selected := 0
	for i, mode := range modes {
		if mode == s.Theme() {
			selected = i
		}
	}

	return ThemePickerModel{
		store:         s,
		modes:         modes,
		selectedIndex: selected,
		currentTheme:  theme.ForMode(modes[selected]),
		width:         80,
		height:        24,
	}
}

func (m ThemePickerModel) Init() tea.Cmd {
	return nil
}

// Selected returns the highlighted mode.
func (m ThemePickerModel) Selected() domain.ThemeMode {
	return m.modes[m.selectedIndex]
}

// Confirmed reports whether the selection was saved.
func (m ThemePickerModel) Confirmed() bool {
	return m.confirmed
}

func (m ThemePickerModel) Err() error {
	return m.err
}

func (m ThemePickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"))):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k", "left", "h"))):
			if m.selectedIndex > 0 {
				m.selectedIndex--
				m.currentTheme = theme.ForMode(m.Selected())
			}
			return m, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j", "right", "l"))):
			if m.selectedIndex < len(m.modes)-1 {
				m.selectedIndex++
				m.currentTheme = theme.ForMode(m.Selected())
			}
			return m, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
			if err := m.store.SetTheme(context.Background(), m.Selected()); err != nil {
				m.err = err
			} else {
				m.confirmed = true
			}
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m ThemePickerModel) View() string {
	if m.quitting {
		if m.confirmed || m.err != nil {
			return ""
		}
		return "Theme unchanged.\n"
	}

	styles := theme.NewStyles(m.currentTheme)

	left := lipgloss.NewStyle().
		Width(24).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.currentTheme.BorderColor)).
		Padding(1).
		Render(m.renderModeList())

	rightWidth := m.width - 32
	if rightWidth < 30 {
		rightWidth = 30
	}
	right := lipgloss.NewStyle().
		Width(rightWidth).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.currentTheme.BorderColor)).
		Padding(1).
		Render(m.renderPreview(styles))

	main := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	header := styles.TUITitle.Render("  Theme  ")
	help := styles.TUIHelp.Render("↑/k: up • ↓/j: down • enter: save • q: cancel")

	return fmt.Sprintf("%s\n\n%s\n\n%s\n", header, main, help)
}

func (m ThemePickerModel) renderModeList() string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.currentTheme.Primary)).
		Render("Themes"))
	b.WriteString("\n\n")

	for i, mode := range m.modes {
		line := "  " + string(mode)
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(m.currentTheme.TextSecondary))
		if i == m.selectedIndex {
			line = "▶ " + string(mode)
			style = lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.currentTheme.SelectedFg)).
				Background(lipgloss.Color(m.currentTheme.SelectedBg)).
				Bold(true)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

// sample rows rendered with the highlighted theme
func (m ThemePickerModel) renderPreview(styles *theme.Styles) string {
	sample := []domain.Task{
		domain.NewTask("Water the plants"),
		domain.NewTask("Reply to the landlord"),
		domain.NewTask("Book dentist appointment"),
	}
	sample[1].Completed = true
	sample[2].State = domain.StatePendingRemoval

	var b strings.Builder
	b.WriteString(styles.TabActive.Render("1 All"))
	b.WriteString(styles.Tab.Render("2 Active"))
	b.WriteString(styles.Tab.Render("3 Completed"))
	b.WriteString("\n\n")

	for _, row := range render.Project(sample, domain.FilterAll).Visible() {
		b.WriteString(fmt.Sprintf("%s %s  %s\n",
			display.GetCheckbox(row.Completed),
			styles.TaskText(row.Completed, row.Removing).Render(row.Text),
			display.GetDeleteMarker(row.Removing),
		))
	}

	b.WriteString("\n")
	b.WriteString(styles.Announcement.Render("Added task Water the plants"))

	return b.String()
}
