// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Playback operations
	OpFileLoad      Op = "load file"
	OpPlaybackStart Op = "start playback"
	OpPlaybackSeek  Op = "seek"

	// Selection operations
	OpSelectionSet  Op = "set selection"
	OpSelectionLoop Op = "loop selection"

	// Configuration
	OpConfigLoad   Op = "load config"
	OpConfigReload Op = "reload config"
	OpKeysLoad     Op = "apply key bindings"

	// Desktop integration
	OpMPRISStart Op = "start media key integration"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
