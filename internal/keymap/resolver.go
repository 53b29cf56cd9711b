package keymap

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// Resolver maps key strings to actions.
type Resolver struct {
	bindings map[string]Action   // key -> action
	byAction map[Action][]string // action -> keys (for help/documentation)
	help     []key.Binding
	groups   [][]key.Binding
}

var _ help.KeyMap = (*Resolver)(nil)

// helpContexts is the column order of the full help view.
var helpContexts = []string{"timeline", "selection", "playback", "global"}

// NewResolver creates a resolver from bindings.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings: make(map[string]Action),
		byAction: make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, k := range b.Keys {
			r.bindings[k] = b.Action
		}
		r.byAction[b.Action] = append(r.byAction[b.Action], b.Keys...)
	}
	for action, keys := range r.byAction {
		r.byAction[action] = dedupe(keys)
	}

	for _, ctx := range helpContexts {
		var group []key.Binding
		for _, b := range filterContext(bindings, ctx) {
			group = append(group, helpBinding(b))
		}
		if len(group) > 0 {
			r.groups = append(r.groups, group)
		}
	}
	for _, a := range []Action{ActionPlayPause, ActionSeekBack, ActionSeekForward, ActionLoopSelection, ActionHelp, ActionQuit} {
		for _, b := range bindings {
			if b.Action == a {
				r.help = append(r.help, helpBinding(b))
				break
			}
		}
	}
	return r
}

func helpBinding(b Binding) key.Binding {
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(displayKey(b.Keys[0]), b.Description),
	)
}

func displayKey(k string) string {
	switch k {
	case " ":
		return "space"
	case "left":
		return "←"
	case "right":
		return "→"
	}
	return k
}

// Resolve returns the action for a key, or empty string if not bound.
func (r *Resolver) Resolve(key string) Action {
	return r.bindings[key]
}

// KeysFor returns the keys bound to an action (for help/documentation).
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}

// ShortHelp returns the bindings shown in the one-line help.
func (r *Resolver) ShortHelp() []key.Binding {
	return r.help
}

// FullHelp returns the bindings grouped by context, one column each.
func (r *Resolver) FullHelp() [][]key.Binding {
	return r.groups
}

// dedupe removes duplicate strings from a slice.
func dedupe(s []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(s))
	for _, v := range s {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}
