package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"todo-list/internal/display"
	"todo-list/internal/domain"
	"todo-list/internal/render"
)

const emptyStateText = "No tasks yet"

// renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	v := m.view()

	var b strings.Builder

	b.WriteString(m.styles.TUITitle.Render("  todo  "))
	b.WriteString("\n\n")

	b.WriteString(m.renderTabs(v.Filter))
	b.WriteString("\n\n")

	b.WriteString(m.renderInput())
	b.WriteString("\n\n")

	b.WriteString(m.renderRows(v))
	b.WriteString("\n")

	b.WriteString(m.renderStatusBar(v))
	b.WriteString("\n")

	// live region, kept as its own line so the layout does not jump
	b.WriteString(m.styles.Announcement.Render(m.region.Text()))
	b.WriteString("\n")

	b.WriteString(m.renderHelp())

	return b.String()
}

func (m Model) renderTabs(active domain.Filter) string {
	tabs := make([]string, 0, len(domain.Filters()))
	for i, f := range domain.Filters() {
		label := fmt.Sprintf("%d %s", i+1, display.FilterLabel(f))
		if f == active {
			tabs = append(tabs, m.styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, m.styles.Tab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderInput() string {
	style := m.styles.InputBoxBlur
	if m.focus == focusForm {
		style = m.styles.InputBox
	}

	width := m.width - 4
	if width < 20 {
		width = 20
	}
	return style.Width(width).Render(m.input.View())
}

func (m Model) renderRows(v render.View) string {
	if v.ShowEmptyState {
		return m.styles.EmptyState.Render(emptyStateText) + "\n"
	}

	textWidth := m.width - 14
	if textWidth < 10 {
		textWidth = 10
	}

	var b strings.Builder
	for i, row := range v.Visible() {
		selected := m.focus == focusList && i == m.cursor

		prefix := "  "
		if selected {
			prefix = "› "
		}

		text := display.Truncate(row.Text, textWidth)
		line := fmt.Sprintf("%s%s %s  %s",
			prefix,
			display.GetCheckbox(row.Completed),
			m.styles.TaskText(row.Completed, row.Removing).Render(text),
			display.GetDeleteMarker(row.Removing),
		)

		if selected {
			line = m.styles.SelectedRow.Render(line)
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderStatusBar(v render.View) string {
	counts := v.Counts()
	status := display.Summary(counts.Total, counts.Completed)

	if m.err != nil {
		return status + "  " + m.styles.Error.Render(m.err.Error())
	}
	return m.styles.Subtitle.Render(status)
}

func (m Model) renderHelp() string {
	if m.focus == focusForm {
		return m.help.View(formKeyMap{m.keys})
	}
	return m.help.View(m.keys)
}
