package theme

import (
	"github.com/charmbracelet/lipgloss"
)

type Styles struct {
	// cli
	Success   lipgloss.Style
	Error     lipgloss.Style
	Info      lipgloss.Style
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Header    lipgloss.Style
	Separator lipgloss.Style

	// task rows
	ActiveText    lipgloss.Style
	CompletedText lipgloss.Style
	RemovingText  lipgloss.Style
	SelectedRow   lipgloss.Style

	// tui
	TUITitle     lipgloss.Style
	TUIHelp      lipgloss.Style
	Tab          lipgloss.Style
	TabActive    lipgloss.Style
	InputBox     lipgloss.Style
	InputBoxBlur lipgloss.Style
	EmptyState   lipgloss.Style
	Announcement lipgloss.Style
}

// creates all styles based on the given theme
func NewStyles(t *Theme) *Styles {
	return &Styles{
		// cli
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Error)).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Secondary)).
			PaddingTop(1).
			PaddingBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextMuted)).
			Italic(true),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.HeaderFg)).
			Background(lipgloss.Color(t.HeaderBg)).
			PaddingLeft(1).
			PaddingRight(1),

		Separator: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Separator)),

		// task rows
		ActiveText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TaskActive)),

		CompletedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TaskCompleted)).
			Strikethrough(true),

		RemovingText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TaskRemoving)).
			Faint(true),

		SelectedRow: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.SelectedFg)).
			Background(lipgloss.Color(t.SelectedBg)).
			Bold(true),

		// tui
		TUITitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.HeaderFg)).
			Background(lipgloss.Color(t.HeaderBg)).
			Padding(0, 1),

		TUIHelp: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.HelpText)),

		Tab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextSecondary)).
			Padding(0, 1),

		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.TabActiveFg)).
			Background(lipgloss.Color(t.TabActiveBg)).
			Padding(0, 1),

		InputBox: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderColor)).
			Padding(0, 1),

		InputBoxBlur: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Separator)).
			Padding(0, 1),

		EmptyState: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextMuted)).
			Italic(true),

		Announcement: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Announcement)),
	}
}

// style for a task row's text
func (s *Styles) TaskText(completed, removing bool) lipgloss.Style {
	switch {
	case removing:
		return s.RemovingText
	case completed:
		return s.CompletedText
	default:
		return s.ActiveText
	}
}
