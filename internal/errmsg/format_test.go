//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"fmt"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpFileLoad,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpFileLoad,
			err:      errors.New("file not found"),
			expected: "Failed to load file: file not found",
		},
		{
			name:     "selection operation",
			op:       OpSelectionSet,
			err:      errors.New("duration unknown"),
			expected: "Failed to set selection: duration unknown",
		},
		{
			name:     "wrapped error keeps its chain in the text",
			op:       OpConfigReload,
			err:      fmt.Errorf("load config.toml: %w", errors.New("bad toml")),
			expected: "Failed to reload config: load config.toml: bad toml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpFileLoad,
			context:  "song.flac",
			err:      nil,
			expected: "",
		},
		{
			name:     "with context",
			op:       OpFileLoad,
			context:  "song.flac",
			err:      errors.New("unsupported format"),
			expected: "Failed to load file 'song.flac': unsupported format",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpPlaybackSeek,
			context:  "",
			err:      errors.New("end of stream"),
			expected: "Failed to seek: end of stream",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith() = %q, want %q", result, tt.expected)
			}
		})
	}
}
