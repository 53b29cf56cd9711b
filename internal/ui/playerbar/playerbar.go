// Package playerbar renders the status line above the timeline bar.
package playerbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/scrubber/internal/icons"
	"github.com/llehouerou/scrubber/internal/media"
	"github.com/llehouerou/scrubber/internal/ui/render"
	"github.com/llehouerou/scrubber/internal/ui/styles"
)

// State holds everything needed to render the status line.
type State struct {
	Playback  media.State
	Title     string
	Artist    string
	Position  time.Duration
	Duration  time.Duration
	Volume    float64
	Muted     bool
	Selection string // "" when nothing is selected
	Looping   bool
}

// Render returns the status line for the given width.
// Format: ▶  Artist - Title   [sel 1.50s+2.00s]   1:23 / 4:56   vol 80%
func Render(s State, width int) string {
	if width <= 0 {
		return ""
	}

	title := s.Title
	if title == "" {
		title = "No track"
	}
	styledTitle := titleStyle().Render(render.Sanitize(title))
	if s.Playback == media.Playing && s.Title != "" {
		t := styles.T()
		styledTitle = styles.ApplyBoldGradient(render.Sanitize(title), t.Primary, t.Secondary)
	}
	if s.Artist != "" {
		styledTitle = artistStyle().Render(render.Sanitize(s.Artist)+" - ") + styledTitle
	}

	var right []string
	if s.Selection != "" {
		sel := s.Selection
		if s.Looping {
			sel = icons.Loop() + " " + sel
		}
		right = append(right, selectionStyle().Render(sel))
	}
	right = append(right,
		timeStyle().Render(fmt.Sprintf("%s / %s", FormatDuration(s.Position), FormatDuration(s.Duration))),
		RenderVolume(s.Volume, s.Muted),
	)
	rightStr := strings.Join(right, "   ")

	left := statusIcon(s.Playback) + "  "
	avail := width - lipgloss.Width(left) - lipgloss.Width(rightStr) - 1
	if avail < 1 {
		return render.TruncateStyled(left+rightStr, width)
	}
	left += render.TruncateStyled(styledTitle, avail)
	return render.Row(left, rightStr, width)
}

func statusIcon(s media.State) string {
	switch s {
	case media.Playing:
		return icons.Play()
	case media.Paused:
		return icons.Pause()
	default:
		return icons.Stop()
	}
}

// RenderVolume renders the volume indicator, e.g. "🔊  80%".
func RenderVolume(volume float64, muted bool) string {
	pct := int(volume*100 + 0.5)
	icon := icons.Volume()
	if muted {
		icon = icons.VolumeMute()
	}
	return timeStyle().Render(fmt.Sprintf("%s %3d%%", icon, pct))
}

// FormatDuration formats d as m:ss, or h:mm:ss from one hour.
func FormatDuration(d time.Duration) string {
	d = max(d, 0)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
