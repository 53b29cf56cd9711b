//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"slices"
	"testing"
)

func TestResolver_Resolve(t *testing.T) {
	bindings := []Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
		{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
		{ActionSeekBack, []string{"left", "h"}, "Seek back", "timeline"},
	}

	r := NewResolver(bindings)

	tests := []struct {
		key      string
		expected Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{" ", ActionPlayPause},
		{"left", ActionSeekBack},
		{"h", ActionSeekBack},
		{"unknown", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			result := r.Resolve(tt.key)
			if result != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.key, result, tt.expected)
			}
		})
	}
}

func TestResolver_KeysFor(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
		{ActionQuit, []string{"q"}, "Quit", "playback"},
	})

	if keys := r.KeysFor(ActionQuit); !slices.Equal(keys, []string{"q", "ctrl+c"}) {
		t.Errorf("KeysFor(quit) = %v", keys)
	}
	if keys := r.KeysFor(ActionStop); keys != nil {
		t.Errorf("KeysFor(stop) = %v, want nil", keys)
	}
}

func TestResolver_WithDefaultBindings(t *testing.T) {
	r := NewResolver(Bindings)

	tests := map[string]Action{
		"q":     ActionQuit,
		" ":     ActionPlayPause,
		"left":  ActionSeekBack,
		"right": ActionSeekForward,
		"home":  ActionSeekStart,
		"end":   ActionSeekEnd,
		"esc":   ActionClearSelection,
		"L":     ActionLoopSelection,
	}
	for k, want := range tests {
		if got := r.Resolve(k); got != want {
			t.Errorf("Resolve(%q) = %q, want %q", k, got, want)
		}
	}
}

func TestResolver_Help(t *testing.T) {
	r := NewResolver(Bindings)

	short := r.ShortHelp()
	if len(short) != 6 {
		t.Fatalf("ShortHelp has %d bindings, want 6", len(short))
	}
	if h := short[0].Help(); h.Key != "space" || h.Desc != "Play/pause" {
		t.Errorf("first short help = %+v", h)
	}
	if h := short[1].Help(); h.Key != "←" {
		t.Errorf("seek back shown as %q", h.Key)
	}

	full := r.FullHelp()
	if len(full) != len(helpContexts) {
		t.Fatalf("FullHelp has %d columns, want %d", len(full), len(helpContexts))
	}
	if len(full[0]) != len(ByContext("timeline")) {
		t.Errorf("timeline column has %d bindings", len(full[0]))
	}
}

func TestResolver_EmptyBindings(t *testing.T) {
	r := NewResolver([]Binding{})

	if action := r.Resolve("q"); action != "" {
		t.Errorf("Resolve on empty resolver should return empty, got %q", action)
	}
	if keys := r.KeysFor(ActionQuit); keys != nil {
		t.Errorf("KeysFor on empty resolver should return nil, got %v", keys)
	}
	if len(r.ShortHelp()) != 0 || len(r.FullHelp()) != 0 {
		t.Error("empty resolver should have no help")
	}
}

func TestDedupe(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{"no duplicates", []string{"a", "b", "c"}, []string{"a", "b", "c"}},
		{"with duplicates", []string{"a", "b", "a", "c", "b"}, []string{"a", "b", "c"}},
		{"empty slice", []string{}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := dedupe(tt.input); !slices.Equal(result, tt.expected) {
				t.Errorf("dedupe(%v) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}
