package scrubbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/scrubber/internal/ui/render"
	"github.com/llehouerou/scrubber/internal/ui/styles"
)

const (
	playedCell   = "━"
	unplayedCell = "─"
)

// View renders the bar row and, below it, the options popup row.
func (m *Model) View() string {
	return m.BarView() + "\n" + m.OptionsView()
}

// BarView renders the bar row alone, marked for hit testing.
func (m *Model) BarView() string {
	width := m.Width()
	if width <= 0 {
		return ""
	}
	line := m.renderCells(width)
	if m.zones != nil {
		line = m.zones.Mark(m.zoneID, line)
	}
	return line
}

// OptionsView renders the options popup row, blank while it is hidden.
func (m *Model) OptionsView() string {
	width := m.Width()
	if m.noOptions || !m.options.Visible() || m.label == "" {
		return render.EmptyLine(width)
	}
	left := 0
	if start, _, ok := m.selection.Cells(width); ok {
		left = start
	}
	popup := styles.T().S().Options.Render("▲ " + m.label)
	return render.PlaceAt(popup, left, width)
}

// Played returns the number of cells covered by the played portion.
func (m *Model) Played() int {
	width := m.Width()
	if m.duration <= 0 || width <= 0 {
		return 0
	}
	ratio := float64(m.position) / float64(m.duration)
	return max(0, min(int(float64(width)*ratio), width))
}

func (m *Model) renderCells(width int) string {
	t := styles.T()
	s := t.S()

	played := m.Played()
	gradient := styles.Blend(played, t.Primary, t.Secondary)
	selStart, selEnd, hasSel := m.selection.Cells(width)
	selected := func(i int) bool { return hasSel && i >= selStart && i < selEnd }

	var b strings.Builder
	for i := 0; i < width; {
		// Unplayed cells outside the selection render as one run
		if i >= played && !selected(i) {
			j := i
			for j < width && !selected(j) {
				j++
			}
			b.WriteString(s.Track.Render(strings.Repeat(unplayedCell, j-i)))
			i = j
			continue
		}

		style := s.Track
		cell := unplayedCell
		if i < played {
			style = lipgloss.NewStyle().Foreground(gradient[i])
			cell = playedCell
		}
		if selected(i) {
			style = style.Background(t.BgSelection)
		}
		b.WriteString(style.Render(cell))
		i++
	}
	return b.String()
}
