package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// finalizeDeleteMsg fires once the removal delay for a task has elapsed
type finalizeDeleteMsg struct {
	id string
}

// clearAnnouncementMsg empties the live region if seq is still current
type clearAnnouncementMsg struct {
	seq uint64
}

func finalizeDeleteCmd(id string, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return finalizeDeleteMsg{id: id}
	})
}

func clearAnnouncementCmd(seq uint64, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return clearAnnouncementMsg{seq: seq}
	})
}

// schedules a clear if the last action produced a new announcement
func (m *Model) announcementCmd(before uint64) tea.Cmd {
	seq := m.region.Seq()
	if seq == before {
		return nil
	}
	return clearAnnouncementCmd(seq, m.region.ClearAfter())
}
