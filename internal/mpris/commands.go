// Package mpris exposes the player on D-Bus as an MPRIS media player, so
// desktop media keys and widgets can drive it.
//
// D-Bus calls arrive on their own goroutine. Queries read the player
// directly; commands are handed to a send function (tea.Program.Send) and
// executed on the UI goroutine.
package mpris

import (
	"time"

	"github.com/llehouerou/scrubber/internal/media"
	"github.com/llehouerou/scrubber/internal/player"
)

// Player is the read side of the player. Implementations must be safe for
// concurrent use.
type Player interface {
	State() media.State
	Position() time.Duration
	Volume() float64
	TrackInfo() *player.TrackInfo
}

// Command is a request from the desktop to the application.
type Command interface {
	command()
}

type (
	// Play starts or resumes playback.
	Play struct{}
	// Pause pauses playback.
	Pause struct{}
	// PlayPause toggles playback.
	PlayPause struct{}
	// Stop stops playback and rewinds.
	Stop struct{}
	// Seek moves playback by a relative offset.
	Seek struct{ Offset time.Duration }
	// SetPosition moves playback to an absolute position.
	SetPosition struct{ Position time.Duration }
	// SetVolume sets the volume level (0.0 to 1.0).
	SetVolume struct{ Level float64 }
	// SetLoop turns looping of the current selection on or off.
	SetLoop struct{ On bool }
)

func (Play) command()        {}
func (Pause) command()       {}
func (PlayPause) command()   {}
func (Stop) command()        {}
func (Seek) command()        {}
func (SetPosition) command() {}
func (SetVolume) command()   {}
func (SetLoop) command()     {}
