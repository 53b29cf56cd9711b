package app

import (
	"time"

	"github.com/llehouerou/scrubber/internal/config"
	"github.com/llehouerou/scrubber/internal/mpris"
	"github.com/llehouerou/scrubber/internal/scrub"
)

// TickMsg is sent periodically to refresh the played portion and to let a
// looping selection jump back.
type TickMsg time.Time

// TrackFinishedMsg is sent when the source plays to its end.
type TrackFinishedMsg struct{}

// StderrMsg carries one line of captured C library output.
type StderrMsg string

// StderrClosedMsg is sent when the stderr capture stops.
type StderrClosedMsg struct{}

// ConfigReloadedMsg is sent by the config watcher after a config file
// changed on disk.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}

// MPRISMsg wraps a command received from the desktop.
type MPRISMsg struct {
	Command mpris.Command
}

// MPRISReadyMsg hands the started MPRIS adapter to the model.
type MPRISReadyMsg struct {
	Adapter LoopReporter
}

// SetSelectionMsg sets (or, with a nil Selection, clears) the selection
// from outside the bar.
type SetSelectionMsg struct {
	Selection *scrub.Selection
}
