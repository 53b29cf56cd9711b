// Package media defines the media-control contract consumed by the scrub bar.
package media

import "time"

// State represents the playback state machine.
//
//	┌──────────┐      play       ┌──────────┐
//	│  Stopped │ ───────────────▶│  Playing │
//	└──────────┘                 └──────────┘
//	     ▲                         │      ▲
//	     │ stop              pause │      │ play
//	     │                         ▼      │
//	     │                       ┌──────────┐
//	     └───────────────────────│  Paused  │
//	                  stop       └──────────┘
//
// Toggle cycles Playing ↔ Paused and starts playback from Stopped when a
// source is loaded.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a source is engaged (Playing or Paused).
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}

// Controller is the media-control API the scrub bar drives.
//
// Implementations deliver events synchronously to listeners on the goroutine
// that caused the change.
type Controller interface {
	Play()
	Pause()
	Toggle()

	// SeekTo moves playback to an absolute position. Out-of-range targets
	// are clamped by the implementation.
	SeekTo(pos time.Duration)
	// SeekPercent moves playback to a percentage (0-100) of the duration.
	SeekPercent(percent float64)

	State() State
	Position() time.Duration
	Duration() time.Duration
	Source() string

	// Subscribe registers a listener and returns a function removing it.
	Subscribe(fn Listener) (cancel func())
}
