package app

import (
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/scrubber/internal/keymap"
	"github.com/llehouerou/scrubber/internal/ui"
	"github.com/llehouerou/scrubber/internal/ui/playerbar"
	"github.com/llehouerou/scrubber/internal/ui/popup"
	"github.com/llehouerou/scrubber/internal/ui/render"
	"github.com/llehouerou/scrubber/internal/ui/styles"
)

// Screen rows. The bar's options popup takes the row below barRow.
const (
	barRow  = 2
	helpRow = barRow + ui.BarHeight + 1
)

// popupChrome is the popup's border and padding width plus screen margin.
const popupChrome = 10

// View renders the application UI.
func (m Model) View() string {
	if m.Width <= 0 {
		return ""
	}
	inner := max(m.Width-2*ui.BarMargin, 0)
	margin := strings.Repeat(" ", ui.BarMargin)

	m.Scrubbar.SetLabel(m.selectionLabel())

	lines := make([]string, 0, helpRow+4)
	lines = append(lines, margin+playerbar.Render(m.playerState(), inner))
	for len(lines) < barRow {
		lines = append(lines, "")
	}
	lines = append(lines,
		margin+m.Scrubbar.BarView(),
		margin+m.Scrubbar.OptionsView(),
		"",
	)
	lines = append(lines, margin+m.Help.ShortHelpView(m.Keys.ShortHelp()))

	if msg := m.messageLine(inner); msg != "" {
		for len(lines) < m.Height-1 {
			lines = append(lines, "")
		}
		lines = append(lines, margin+msg)
	}

	view := strings.Join(lines, "\n")
	if m.ShowHelp {
		view = m.overlayHelp(view, lines)
	}
	if m.Zones != nil {
		return m.Zones.Scan(view)
	}
	return view
}

// overlayHelp shows the full key list in a popup over the view.
func (m Model) overlayHelp(view string, lines []string) string {
	for n := len(lines); n < m.Height; n++ {
		view += "\n"
	}
	h := m.Help
	h.Width = max(m.Width-popupChrome, 0)
	box := popup.RenderBordered("Keys", h.FullHelpView(m.Keys.FullHelp()), m.Width, m.Height, popup.SizeAuto)
	return popup.Compose(view, box, m.Width)
}

func (m Model) playerState() playerbar.State {
	s := playerbar.State{
		Playback: m.Player.State(),
		Position: m.Player.Position(),
		Duration: m.Player.Duration(),
		Volume:   m.Player.Volume(),
		Muted:    m.Player.Muted(),
		Looping:  m.Bar.Looping(),
	}
	if info := m.Player.TrackInfo(); info != nil {
		s.Title = info.Title
		s.Artist = info.Artist
	} else if src := m.Player.Source(); src != "" {
		s.Title = filepath.Base(src)
	}
	if sel := m.host.selection; sel != nil {
		s.Selection = sel.String()
	}
	return s
}

// selectionLabel is the options popup text, e.g. "2.5s  L loop  esc clear".
func (m Model) selectionLabel() string {
	sel := m.host.selection
	if sel == nil {
		return ""
	}
	parts := []string{humanize.FtoaWithDigits(sel.Duration, 2) + "s"}
	if k := m.Keys.KeysFor(keymap.ActionLoopSelection); len(k) > 0 {
		verb := "loop"
		if m.Bar.Looping() {
			verb = "stop loop"
		}
		parts = append(parts, k[0]+" "+verb)
	}
	if k := m.Keys.KeysFor(keymap.ActionClearSelection); len(k) > 0 {
		parts = append(parts, k[0]+" clear")
	}
	return strings.Join(parts, "  ")
}

func (m Model) messageLine(width int) string {
	s := styles.T().S()
	switch {
	case m.ErrorMsg != "":
		return s.Error.Render(render.Truncate(m.ErrorMsg, width))
	case m.StatusMsg != "":
		return s.Muted.Render(render.Truncate(m.StatusMsg, width))
	}
	return ""
}
