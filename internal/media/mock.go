package media

import "time"

// Mock is a test double for Controller.
// It records commands and lets tests drive state, source and duration,
// emitting the same events a real controller would.
type Mock struct {
	state     State
	position  time.Duration
	duration  time.Duration
	source    string
	listeners Listeners

	playCalls    int
	pauseCalls   int
	toggleCalls  int
	seekCalls    []time.Duration
	percentCalls []float64
}

// NewMock creates a new mock controller in the Stopped state.
func NewMock() *Mock {
	return &Mock{state: Stopped}
}

func (m *Mock) Play() {
	m.playCalls++
	m.setState(Playing)
}

func (m *Mock) Pause() {
	m.pauseCalls++
	if m.state == Playing {
		m.setState(Paused)
	}
}

func (m *Mock) Toggle() {
	m.toggleCalls++
	switch m.state {
	case Playing:
		m.setState(Paused)
	case Paused, Stopped:
		m.setState(Playing)
	}
}

func (m *Mock) SeekTo(pos time.Duration) {
	m.seekCalls = append(m.seekCalls, pos)
	m.position = pos
}

func (m *Mock) SeekPercent(percent float64) {
	m.percentCalls = append(m.percentCalls, percent)
	if m.duration > 0 {
		m.position = time.Duration(float64(m.duration) * percent / 100)
	}
}

func (m *Mock) State() State { return m.state }

func (m *Mock) Position() time.Duration { return m.position }

func (m *Mock) Duration() time.Duration { return m.duration }

func (m *Mock) Source() string { return m.source }

func (m *Mock) Subscribe(fn Listener) func() { return m.listeners.Add(fn) }

func (m *Mock) setState(s State) {
	if s == m.state {
		return
	}
	prev := m.state
	m.state = s
	m.listeners.Emit(Event{Kind: EventState, Previous: prev, State: s})
}

// Test helpers

// SetState changes the state and notifies listeners.
func (m *Mock) SetState(s State) { m.setState(s) }

// SetPosition sets the reported position without recording a seek.
func (m *Mock) SetPosition(d time.Duration) { m.position = d }

// SetDuration changes the duration and emits EventDuration.
func (m *Mock) SetDuration(d time.Duration) {
	m.duration = d
	m.listeners.Emit(Event{Kind: EventDuration, Duration: d})
}

// LoadSource simulates loading a new source with the given duration.
func (m *Mock) LoadSource(src string, d time.Duration) {
	m.source = src
	m.duration = d
	m.position = 0
	m.listeners.Emit(Event{Kind: EventSource, Source: src, Duration: d})
}

func (m *Mock) PlayCalls() int { return m.playCalls }

func (m *Mock) PauseCalls() int { return m.pauseCalls }

func (m *Mock) ToggleCalls() int { return m.toggleCalls }

func (m *Mock) SeekCalls() []time.Duration { return m.seekCalls }

func (m *Mock) PercentCalls() []float64 { return m.percentCalls }

func (m *Mock) ListenerCount() int { return m.listeners.Len() }

// ResetCalls forgets recorded commands.
func (m *Mock) ResetCalls() {
	m.playCalls = 0
	m.pauseCalls = 0
	m.toggleCalls = 0
	m.seekCalls = nil
	m.percentCalls = nil
}

// Verify Mock implements Controller at compile time.
var _ Controller = (*Mock)(nil)
