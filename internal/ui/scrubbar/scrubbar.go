// Package scrubbar renders the timeline bar and turns terminal mouse
// events into pointer events for the scrub core.
//
// One terminal cell is one pixel. The bar's screen position comes from
// bubblezone when the host scans its view, and from the layout set with
// SetLayout otherwise.
package scrubbar

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/llehouerou/scrubber/internal/scrub"
	"github.com/llehouerou/scrubber/internal/ui"
)

const zoneName = "scrubbar"

// Model is the bar component. It implements scrub.Surface.
type Model struct {
	ui.Base

	left, row int

	zones  *zone.Manager
	zoneID string

	selection Region
	options   Region
	noOptions bool

	position time.Duration
	duration time.Duration
	label    string

	pressed bool
	inside  bool
}

var _ scrub.Surface = (*Model)(nil)

// Option configures a Model.
type Option func(*Model)

// WithZones uses z for hit testing and for the bar's screen offset. The
// host must pass its full view through z.Scan.
func WithZones(z *zone.Manager) Option {
	return func(m *Model) {
		m.zones = z
		m.zoneID = z.NewPrefix() + zoneName
	}
}

// WithoutOptions renders no options popup; the scrub core then sees no
// options region.
func WithoutOptions() Option {
	return func(m *Model) { m.noOptions = true }
}

// New creates a bar.
func New(opts ...Option) *Model {
	m := &Model{zoneID: zoneName}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetLayout places the bar at column left of screen row row, width cells wide.
func (m *Model) SetLayout(left, row, width int) {
	m.left = left
	m.row = row
	m.SetSize(max(width, 0), ui.BarHeight)
}

// Row returns the screen row of the bar.
func (m *Model) Row() int { return m.row }

// SetProgress updates the played portion.
func (m *Model) SetProgress(position, duration time.Duration) {
	m.position = position
	m.duration = duration
}

// SetLabel sets the text of the options popup.
func (m *Model) SetLabel(label string) { m.label = label }

// Offset returns the bar's left edge in screen columns.
func (m *Model) Offset() float64 {
	if z := m.zone(); z != nil {
		return float64(z.StartX)
	}
	return float64(m.left)
}

// ScrollWidth returns the bar width in cells.
func (m *Model) ScrollWidth() float64 {
	return float64(m.Width())
}

// Region returns the named region, or nil.
func (m *Model) Region(name scrub.RegionName) scrub.Region {
	switch name {
	case scrub.RegionSelection:
		return &m.selection
	case scrub.RegionOptions:
		if m.noOptions {
			return nil
		}
		return &m.options
	}
	return nil
}

// SelectionRegion exposes the selection region for inspection.
func (m *Model) SelectionRegion() *Region { return &m.selection }

// OptionsRegion exposes the options region for inspection.
func (m *Model) OptionsRegion() *Region { return &m.options }

func (m *Model) zone() *zone.ZoneInfo {
	if m.zones == nil {
		return nil
	}
	z := m.zones.Get(m.zoneID)
	if z == nil || z.IsZero() {
		return nil
	}
	return z
}

// InBounds reports whether the mouse event is over the bar row.
func (m *Model) InBounds(msg tea.MouseMsg) bool {
	if z := m.zone(); z != nil {
		return z.InBounds(msg)
	}
	return msg.Y == m.row && msg.X >= m.left && msg.X < m.left+m.Width()
}

// Pointer translates a mouse event into a pointer event.
//
// A left press on the bar starts a gesture. While the button is held,
// motion on the bar moves and motion off the bar leaves, once. The release
// ends the gesture with an up unless the pointer already left.
func (m *Model) Pointer(msg tea.MouseMsg) (scrub.PointerEvent, bool) {
	if m.Width() < ui.MinBarWidth {
		return scrub.PointerEvent{}, false
	}
	inside := m.InBounds(msg)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !inside {
			return scrub.PointerEvent{}, false
		}
		m.pressed = true
		m.inside = true
		return m.event(scrub.PointerDown, msg), true

	case tea.MouseActionMotion:
		if !m.pressed {
			return scrub.PointerEvent{}, false
		}
		if !inside {
			if !m.inside {
				return scrub.PointerEvent{}, false
			}
			m.inside = false
			return m.event(scrub.PointerLeave, msg), true
		}
		m.inside = true
		return m.event(scrub.PointerMove, msg), true

	case tea.MouseActionRelease:
		if !m.pressed {
			return scrub.PointerEvent{}, false
		}
		wasInside := m.inside
		m.pressed = false
		m.inside = false
		if !wasInside {
			return scrub.PointerEvent{}, false
		}
		return m.event(scrub.PointerUp, msg), true
	}
	return scrub.PointerEvent{}, false
}

// Pressed reports whether a gesture started on the bar is in progress.
func (m *Model) Pressed() bool { return m.pressed }

func (m *Model) event(kind scrub.PointerKind, msg tea.MouseMsg) scrub.PointerEvent {
	return scrub.PointerEvent{
		Kind:             kind,
		ClientX:          float64(msg.X),
		TargetOffsetLeft: m.Offset(),
	}
}
