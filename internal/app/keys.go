package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/scrubber/internal/keymap"
	"github.com/llehouerou/scrubber/internal/scrub"
)

// barKeys maps actions handled by the scrub bar to its keys.
var barKeys = map[keymap.Action]scrub.Key{
	keymap.ActionSeekBack:       scrub.KeyLeft,
	keymap.ActionSeekForward:    scrub.KeyRight,
	keymap.ActionPlayPause:      scrub.KeyPlayPause,
	keymap.ActionSeekStart:      scrub.KeyHome,
	keymap.ActionSeekEnd:        scrub.KeyEnd,
	keymap.ActionClearSelection: scrub.KeyClear,
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key dismisses the error line
	if m.ErrorMsg != "" {
		m.ErrorMsg = ""
		return m, nil
	}

	action := m.Keys.Resolve(msg.String())

	if m.ShowHelp {
		switch action {
		case keymap.ActionHelp, keymap.ActionClearSelection:
			m.toggleHelp()
		case keymap.ActionQuit:
			return m, tea.Quit
		}
		return m, nil
	}

	if k, ok := barKeys[action]; ok {
		if m.Bar.HandleKey(k) {
			m.publishLooping()
			m.refreshProgress()
			return m, nil
		}
	}

	return m.handleAction(action)
}

func (m Model) handleAction(action keymap.Action) (tea.Model, tea.Cmd) {
	switch action {
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionHelp:
		m.toggleHelp()
	case keymap.ActionStop:
		m.Bar.StopLoop()
		m.Player.Stop()
		m.publishLooping()
		m.refreshProgress()
	case keymap.ActionVolumeUp:
		m.Player.SetVolume(min(m.Player.Volume()+m.volumeStep, 1))
	case keymap.ActionVolumeDown:
		m.Player.SetVolume(max(m.Player.Volume()-m.volumeStep, 0))
	case keymap.ActionMute:
		m.Player.SetMuted(!m.Player.Muted())
	case keymap.ActionLoopSelection:
		m.toggleLoop()
		m.publishLooping()
		m.refreshProgress()
	}
	return m, nil
}

func (m *Model) toggleHelp() {
	m.ShowHelp = !m.ShowHelp
}
