package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/scrubber/internal/errmsg"
	"github.com/llehouerou/scrubber/internal/mpris"
	"github.com/llehouerou/scrubber/internal/ui"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case TickMsg:
		m.refreshProgress()
		return m, TickCmd(m.tick)

	case TrackFinishedMsg:
		return m.handleTrackFinished()

	case StderrMsg:
		m.log.Warn("stderr", "line", string(msg))
		m.StatusMsg = string(msg)
		return m, m.WatchStderr()

	case StderrClosedMsg:
		return m, nil

	case ConfigReloadedMsg:
		return m.handleConfigReloaded(msg)

	case MPRISReadyMsg:
		m.host.mpris = msg.Adapter
		m.publishLooping()
		return m, nil

	case MPRISMsg:
		m.handleMPRIS(msg.Command)
		return m, nil

	case SetSelectionMsg:
		m.handleSetSelection(msg)
		return m, nil
	}

	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.Help.Width = max(msg.Width-2*ui.BarMargin, 0)
	m.Scrubbar.SetLayout(ui.BarMargin, barRow, msg.Width-2*ui.BarMargin)
	m.Bar.Refresh()
	m.refreshProgress()
	return m, nil
}

func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.ShowHelp {
		return m, nil
	}
	if ev, ok := m.Scrubbar.Pointer(msg); ok {
		if m.Bar.HandlePointer(ev) {
			m.refreshProgress()
			m.publishLooping()
		}
	}
	return m, nil
}

func (m Model) handleTrackFinished() (tea.Model, tea.Cmd) {
	if m.Bar.Looping() {
		if err := m.Bar.Loop(); err != nil {
			m.Bar.StopLoop()
			m.Player.Stop()
		}
	} else {
		m.Player.Stop()
	}
	m.publishLooping()
	m.refreshProgress()
	return m, m.WatchTrackFinished()
}

func (m Model) handleConfigReloaded(msg ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.log.Error("config reload failed", "err", msg.Err)
		m.ErrorMsg = errmsg.Format(errmsg.OpConfigReload, msg.Err)
		return m, nil
	}
	restart, err := m.applyConfig(msg.Config)
	if err != nil {
		m.log.Error("config reload rejected", "err", err)
		m.ErrorMsg = errmsg.Format(errmsg.OpKeysLoad, err)
		return m, nil
	}
	m.log.Info("config reloaded", "files", msg.Config.Files)
	m.StatusMsg = "Config reloaded"
	if restart {
		m.StatusMsg = "Config reloaded, restart to switch input mode"
	}
	return m, nil
}

func (m *Model) handleMPRIS(cmd mpris.Command) {
	switch c := cmd.(type) {
	case mpris.Play:
		m.Player.Play()
	case mpris.Pause:
		m.Player.Pause()
	case mpris.PlayPause:
		m.Player.Toggle()
	case mpris.Stop:
		m.Bar.StopLoop()
		m.Player.Stop()
	case mpris.Seek:
		m.Player.SeekTo(m.Player.Position() + c.Offset)
	case mpris.SetPosition:
		m.Player.SeekTo(c.Position)
	case mpris.SetVolume:
		m.Player.SetVolume(c.Level)
	case mpris.SetLoop:
		if c.On != m.Bar.Looping() {
			m.toggleLoop()
		}
	}
	m.publishLooping()
	m.refreshProgress()
}

func (m *Model) handleSetSelection(msg SetSelectionMsg) {
	if msg.Selection == nil {
		m.host.handle.ClearSelection()
		m.publishLooping()
		return
	}
	if err := m.host.handle.SetSelection(*msg.Selection); err != nil {
		m.ErrorMsg = errmsg.Format(errmsg.OpSelectionSet, err)
	}
}

// refreshProgress pushes the playback position to the bar.
func (m *Model) refreshProgress() {
	pos := m.Player.Position()
	if m.Bar.Observe(pos) {
		pos = m.Player.Position()
	}
	m.Scrubbar.SetProgress(pos, m.Player.Duration())
}

func (m *Model) toggleLoop() {
	if m.Bar.Looping() {
		m.Bar.StopLoop()
		m.StatusMsg = "Loop off"
		return
	}
	if err := m.Bar.Loop(); err != nil {
		m.ErrorMsg = errmsg.Format(errmsg.OpSelectionLoop, err)
		return
	}
	m.StatusMsg = "Looping selection"
}

func (m *Model) publishLooping() {
	if m.host.mpris != nil {
		m.host.mpris.SetLooping(m.Bar.Looping())
	}
}
