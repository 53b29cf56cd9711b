package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickCmd returns a command that sends TickMsg after d.
func TickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// WatchTrackFinished returns a command that waits for the player to reach
// the end of the source.
func (m Model) WatchTrackFinished() tea.Cmd {
	ch := m.Player.FinishedChan()
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		<-ch
		return TrackFinishedMsg{}
	}
}

// WatchStderr returns a command that waits for the next captured stderr line.
func (m Model) WatchStderr() tea.Cmd {
	ch := m.stderrLines
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		line, ok := <-ch
		if !ok {
			return StderrClosedMsg{}
		}
		return StderrMsg(line)
	}
}
