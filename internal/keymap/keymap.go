package keymap

import (
	"fmt"
	"slices"
)

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "timeline", "selection"
}

// Bindings contains the default key bindings.
var Bindings = []Binding{
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Toggle help", "global"},

	{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
	{ActionStop, []string{"s"}, "Stop", "playback"},
	{ActionVolumeUp, []string{"+", "="}, "Volume up", "playback"},
	{ActionVolumeDown, []string{"-"}, "Volume down", "playback"},
	{ActionMute, []string{"m"}, "Mute", "playback"},

	{ActionSeekBack, []string{"left", "h"}, "Seek back", "timeline"},
	{ActionSeekForward, []string{"right", "l"}, "Seek forward", "timeline"},
	{ActionSeekStart, []string{"home"}, "Seek to start", "timeline"},
	{ActionSeekEnd, []string{"end"}, "Seek to end", "timeline"},

	{ActionClearSelection, []string{"esc"}, "Clear selection", "selection"},
	{ActionLoopSelection, []string{"L"}, "Loop selection", "selection"},
}

// ByContext returns the default key bindings filtered by context.
func ByContext(context string) []Binding {
	return filterContext(Bindings, context)
}

func filterContext(bindings []Binding, context string) []Binding {
	var result []Binding
	for _, kb := range bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// WithOverrides returns a copy of bindings where each overridden action is
// bound to the given keys instead of its defaults. A key taken by an
// override is removed from every other action.
func WithOverrides(bindings []Binding, overrides map[string][]string) ([]Binding, error) {
	taken := make(map[string]Action)
	for name, keys := range overrides {
		a := Action(name)
		if !a.Valid() {
			return nil, fmt.Errorf("unknown action %q", name)
		}
		if len(keys) == 0 {
			return nil, fmt.Errorf("action %q: no keys", name)
		}
		for _, k := range keys {
			if other, ok := taken[k]; ok && other != a {
				return nil, fmt.Errorf("key %q bound to both %q and %q", k, other, a)
			}
			taken[k] = a
		}
	}

	result := make([]Binding, 0, len(bindings))
	for _, b := range bindings {
		if keys, ok := overrides[string(b.Action)]; ok {
			b.Keys = slices.Clone(keys)
		} else {
			b.Keys = slices.DeleteFunc(slices.Clone(b.Keys), func(k string) bool {
				_, ok := taken[k]
				return ok
			})
			if len(b.Keys) == 0 {
				continue
			}
		}
		result = append(result, b)
	}
	return result, nil
}
