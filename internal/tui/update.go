package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"todo-list/internal/domain"
	"todo-list/internal/store"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case finalizeDeleteMsg:
		before := m.region.Seq()
		if err := m.store.FinalizeDelete(m.ctx, msg.id); err != nil {
			m.err = err
		}
		m.clampCursor()
		return m, m.announcementCmd(before)

	case clearAnnouncementMsg:
		m.region.Clear(msg.seq)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.focus == focusForm {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	before := m.region.Seq()

	// work in every focus area
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m.quit()

	case key.Matches(msg, m.keys.ToggleTheme):
		m.toggleTheme()
		return m, nil

	case key.Matches(msg, m.keys.NextFilter):
		m.setFilter(m.store.Filter().Next())
		return m, nil
	}

	if m.focus == focusForm {
		return m.updateForm(msg, before)
	}
	return m.updateList(msg, before)
}

func (m Model) updateForm(msg tea.KeyMsg, before uint64) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.submit()
		return m, m.announcementCmd(before)

	case key.Matches(msg, m.keys.FocusList):
		m.focusList()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg, before uint64) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.FocusForm):
		m.focusForm()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.view().Visible())-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Toggle):
		m.toggleSelected()
		return m, m.announcementCmd(before)

	case key.Matches(msg, m.keys.Delete):
		return m, m.deleteSelected()

	case key.Matches(msg, m.keys.FilterAll):
		m.setFilter(domain.FilterAll)

	case key.Matches(msg, m.keys.FilterActive):
		m.setFilter(domain.FilterActive)

	case key.Matches(msg, m.keys.FilterCompleted):
		m.setFilter(domain.FilterCompleted)

	case key.Matches(msg, m.keys.CycleFilter):
		m.setFilter(m.store.Filter().Next())

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	}

	return m, nil
}

// adds the input as a task; whitespace-only input is dropped without a message
func (m *Model) submit() {
	text := m.input.Value()
	m.input.Reset()
	m.input.Focus()

	_, err := m.store.Add(m.ctx, text)
	switch {
	case errors.Is(err, store.ErrEmptyText):
		return
	case err != nil:
		m.err = err
		return
	}
	m.err = nil
}

func (m *Model) toggleSelected() {
	row, ok := m.selectedRow()
	if !ok || row.Removing {
		return
	}

	if _, err := m.store.Toggle(m.ctx, row.ID); err != nil {
		if errors.Is(err, store.ErrPendingRemoval) {
			return
		}
		m.err = err
		return
	}
	m.err = nil
	m.clampCursor()
}

// first phase of a delete; the row is finalized once deleteDelay elapses
func (m *Model) deleteSelected() tea.Cmd {
	row, ok := m.selectedRow()
	if !ok || row.Removing {
		return nil
	}

	started, err := m.store.BeginDelete(m.ctx, row.ID)
	if err != nil {
		m.err = err
		return nil
	}
	if !started {
		return nil
	}

	m.logger.Debug("delete scheduled", "id", row.ID, "delay", m.deleteDelay)
	return finalizeDeleteCmd(row.ID, m.deleteDelay)
}

func (m *Model) setFilter(f domain.Filter) {
	m.store.SetFilter(f)
	m.clampCursor()
}

func (m *Model) toggleTheme() {
	mode, err := m.store.ToggleTheme(m.ctx)
	if err != nil {
		m.err = err
		return
	}
	m.logger.Debug("theme changed", "theme", mode)
	m.applyTheme()
}

func (m *Model) focusList() {
	m.focus = focusList
	m.input.Blur()
	m.clampCursor()
}

func (m *Model) focusForm() {
	m.focus = focusForm
	m.input.Focus()
}

// pending deletions are finalized before the program exits
func (m Model) quit() (tea.Model, tea.Cmd) {
	if err := m.store.FlushPending(m.ctx); err != nil {
		m.logger.Error("failed to flush pending deletes", "err", err)
	}
	m.quitting = true
	return m, tea.Quit
}
