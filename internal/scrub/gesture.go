package scrub

import "math"

// DragState is the transient state of the current gesture.
//
// The selection fields (pointerDown, hasDragged, dragStartX) and the seek
// fields (seeking, wasPlayingBeforeSeek, origin) are never active together:
// the bar's input strategy decides which gesture a pointer down starts.
type DragState struct {
	pointerDown bool
	hasDragged  bool
	dragStartX  float64

	seeking              bool
	wasPlayingBeforeSeek bool
	origin               float64
}

// Phase describes the selection gesture.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePointerDown
	PhaseDragging
	PhaseSeeking
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePointerDown:
		return "pointer-down"
	case PhaseDragging:
		return "dragging"
	case PhaseSeeking:
		return "seeking"
	default:
		return "unknown"
	}
}

// Phase returns the current gesture phase.
func (d DragState) Phase() Phase {
	switch {
	case d.seeking:
		return PhaseSeeking
	case d.pointerDown && d.hasDragged:
		return PhaseDragging
	case d.pointerDown:
		return PhasePointerDown
	default:
		return PhaseIdle
	}
}

// PointerDown reports whether a selection gesture is in progress.
func (d DragState) PointerDown() bool { return d.pointerDown }

// HasDragged reports whether the current selection gesture left the dead zone.
func (d DragState) HasDragged() bool { return d.hasDragged }

// DragStartX returns the bar offset where the selection gesture started.
func (d DragState) DragStartX() float64 { return d.dragStartX }

// Seeking reports whether a seek gesture is in progress.
func (d DragState) Seeking() bool { return d.seeking }

// WasPlayingBeforeSeek reports whether playback was active when the seek
// gesture began.
func (d DragState) WasPlayingBeforeSeek() bool { return d.wasPlayingBeforeSeek }

func (d *DragState) beginSelect(x float64) {
	d.pointerDown = true
	d.hasDragged = false
	d.dragStartX = x
}

// leaveDeadZone marks the gesture as a drag once |x - dragStartX| exceeds
// threshold. It returns true only on the transition.
func (d *DragState) leaveDeadZone(x, threshold float64) bool {
	if d.hasDragged || math.Abs(x-d.dragStartX) <= threshold {
		return false
	}
	d.hasDragged = true
	return true
}

// endSelect finishes the selection gesture and reports whether it was a drag.
func (d *DragState) endSelect() bool {
	dragged := d.hasDragged
	d.pointerDown = false
	d.hasDragged = false
	return dragged
}

func (d *DragState) beginSeek(origin float64, playing bool) {
	d.seeking = true
	d.origin = origin
	if playing {
		d.wasPlayingBeforeSeek = true
	}
}

// endSeek finishes the seek gesture and reports whether playback should
// resume.
func (d *DragState) endSeek() bool {
	resume := d.wasPlayingBeforeSeek
	d.seeking = false
	d.wasPlayingBeforeSeek = false
	return resume
}

func (d *DragState) reset() {
	*d = DragState{}
}
