// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Playback actions
	ActionPlayPause  Action = "play_pause"
	ActionStop       Action = "stop"
	ActionVolumeUp   Action = "volume_up"
	ActionVolumeDown Action = "volume_down"
	ActionMute       Action = "mute"

	// Timeline actions, handled by the scrub bar
	ActionSeekBack    Action = "seek_back"
	ActionSeekForward Action = "seek_forward"
	ActionSeekStart   Action = "seek_start"
	ActionSeekEnd     Action = "seek_end"

	// Selection actions
	ActionClearSelection Action = "clear_selection" // esc
	ActionLoopSelection  Action = "loop_selection"  // l - toggles looping
)

// Actions lists every action, in help order.
var Actions = []Action{
	ActionQuit,
	ActionHelp,
	ActionPlayPause,
	ActionStop,
	ActionVolumeUp,
	ActionVolumeDown,
	ActionMute,
	ActionSeekBack,
	ActionSeekForward,
	ActionSeekStart,
	ActionSeekEnd,
	ActionClearSelection,
	ActionLoopSelection,
}

// Valid reports whether a is a known action.
func (a Action) Valid() bool {
	for _, known := range Actions {
		if a == known {
			return true
		}
	}
	return false
}
