package media

import "time"

// EventKind identifies what changed on a Controller.
type EventKind int

const (
	// EventState is emitted when playback state changes.
	EventState EventKind = iota
	// EventSource is emitted when a different source is loaded or unloaded.
	EventSource
	// EventDuration is emitted when the media duration becomes known or changes.
	EventDuration
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventState:
		return "state"
	case EventSource:
		return "source"
	case EventDuration:
		return "duration"
	default:
		return "unknown"
	}
}

// Event describes a change on a Controller.
//
// Previous and State are only meaningful for EventState, Source for
// EventSource, Duration for EventSource and EventDuration.
type Event struct {
	Kind     EventKind
	Previous State
	State    State
	Source   string
	Duration time.Duration
}

// Listener receives controller events.
type Listener func(Event)

// Listeners is a registry of listeners. The zero value is ready to use.
//
// Listeners is not safe for concurrent use: registration and emission happen
// on the goroutine that owns the controller's event flow.
type Listeners struct {
	next    int
	entries []listenerEntry
}

type listenerEntry struct {
	id int
	fn Listener
}

// Add registers fn and returns a function that removes it.
// Calling the returned function more than once is a no-op.
func (l *Listeners) Add(fn Listener) func() {
	if fn == nil {
		return func() {}
	}
	l.next++
	id := l.next
	l.entries = append(l.entries, listenerEntry{id: id, fn: fn})
	return func() { l.remove(id) }
}

func (l *Listeners) remove(id int) {
	for i, e := range l.entries {
		if e.id == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return
		}
	}
}

// Len returns the number of registered listeners.
func (l *Listeners) Len() int {
	return len(l.entries)
}

// Emit delivers e to every listener in registration order.
// Listeners added or removed during emission take effect on the next Emit.
func (l *Listeners) Emit(e Event) {
	entries := make([]listenerEntry, len(l.entries))
	copy(entries, l.entries)
	for _, entry := range entries {
		entry.fn(e)
	}
}
