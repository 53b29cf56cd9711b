// Package scrub implements a scrub/selection bar: it maps pointer, touch and
// keyboard input on a horizontal timeline to seek commands and to a marked
// time range (the selection).
//
// A Bar runs on a single goroutine. Every handler runs to completion and
// events must be delivered in the order they occurred.
package scrub

import (
	"fmt"
	"log/slog"

	"github.com/llehouerou/scrubber/internal/media"
)

const (
	// DefaultSeekStep is the keyboard seek step in percentage points.
	DefaultSeekStep = 5.0
	// DefaultDragThreshold is the dead zone, in pixels, a pointer must leave
	// before a press becomes a drag.
	DefaultDragThreshold = 3.0
)

// Tuning holds the adjustable interaction parameters.
type Tuning struct {
	SeekStep      float64 // keyboard seek step in percentage points
	DragThreshold float64 // dead zone in pixels
	HomeEnd       bool    // Home/End seek to start/end
}

// DefaultTuning returns the default interaction parameters.
func DefaultTuning() Tuning {
	return Tuning{
		SeekStep:      DefaultSeekStep,
		DragThreshold: DefaultDragThreshold,
		HomeEnd:       true,
	}
}

func (t Tuning) withDefaults() Tuning {
	if t.SeekStep <= 0 || !finite(t.SeekStep) {
		t.SeekStep = DefaultSeekStep
	}
	if t.DragThreshold < 0 || !finite(t.DragThreshold) {
		t.DragThreshold = DefaultDragThreshold
	}
	return t
}

// Handle is the programmatic control handed to the host once at setup.
type Handle interface {
	SetSelection(sel Selection) error
	ClearSelection()
}

// Options configures a Bar.
type Options struct {
	Capabilities Capabilities
	// Tuning defaults to DefaultTuning when nil.
	Tuning *Tuning

	// Initial is applied at construction. If the duration is not known yet
	// it is applied as soon as the controller reports one.
	Initial *Selection

	// OnChange receives a copy of the selection (nil when cleared) on every
	// create, update and clear.
	OnChange func(*Selection)
	// OnReady is invoked once, at the end of New.
	OnReady func(Handle)

	Logger *slog.Logger
}

// Bar is the scrub/selection bar.
type Bar struct {
	media    media.Controller
	surface  Surface
	strategy Strategy
	platform Platform
	tuning   Tuning
	onChange func(*Selection)
	log      *slog.Logger

	geom    geometry
	drag    DragState
	sel     *Selection
	pending *Selection
	playing bool
	looping bool

	unsubscribe func()
}

// Verify Bar implements Handle at compile time.
var _ Handle = (*Bar)(nil)

// New creates a bar bound to a media controller and a render surface.
// It subscribes to the controller; call Close to release the subscription.
func New(mc media.Controller, s Surface, opts Options) *Bar {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	tuning := DefaultTuning()
	if opts.Tuning != nil {
		tuning = *opts.Tuning
	}

	b := &Bar{
		media:    mc,
		surface:  s,
		strategy: opts.Capabilities.Strategy(),
		platform: opts.Capabilities.Platform,
		tuning:   tuning.withDefaults(),
		onChange: opts.OnChange,
		log:      logger.With("component", "scrub"),
		playing:  mc.State() == media.Playing,
	}
	b.unsubscribe = mc.Subscribe(b.onMedia)
	b.Refresh()

	if opts.Initial != nil {
		if err := b.UpdateInitial(opts.Initial); err != nil {
			b.log.Warn("initial selection rejected", "selection", opts.Initial.String(), "err", err)
		}
	}

	b.log.Debug("bar ready", "strategy", b.strategy.String(), "platform", b.platform.String())
	if opts.OnReady != nil {
		opts.OnReady(b)
	}
	return b
}

// Close unsubscribes the bar from its controller.
func (b *Bar) Close() {
	if b.unsubscribe != nil {
		b.unsubscribe()
		b.unsubscribe = nil
	}
}

// Strategy returns the input strategy chosen at construction.
func (b *Bar) Strategy() Strategy { return b.strategy }

// Tuning returns the current interaction parameters.
func (b *Bar) Tuning() Tuning { return b.tuning }

// SetTuning replaces the interaction parameters.
func (b *Bar) SetTuning(t Tuning) { b.tuning = t.withDefaults() }

// Drag returns a copy of the current gesture state.
func (b *Bar) Drag() DragState { return b.drag }

// Selection returns a copy of the current selection, or nil.
func (b *Bar) Selection() *Selection { return b.sel.clone() }

// Playing reports the last playback state observed outside of seeking.
func (b *Bar) Playing() bool { return b.playing }

// Refresh recomputes the cached geometry and re-places the selection
// rectangle. Hosts call it on every viewport resize.
func (b *Bar) Refresh() {
	b.geom.refresh(b.surface)
	if b.sel != nil {
		b.placeSelection(*b.sel)
	}
}

// mapper returns a Mapper for the current width and duration.
func (b *Bar) mapper() Mapper {
	var width float64
	if b.surface != nil {
		width = b.surface.ScrollWidth()
	}
	return Mapper{Width: width, Duration: b.media.Duration().Seconds()}
}

// HandlePointer dispatches a pointer event to the gesture selected by the
// bar's strategy. It reports whether the event was consumed.
func (b *Bar) HandlePointer(ev PointerEvent) bool {
	if b.strategy == StrategyScrub {
		pt := ev.touchPoint()
		switch ev.Kind {
		case PointerDown:
			b.TouchStart(pt)
		case PointerMove:
			if !b.drag.seeking {
				return false
			}
			b.TouchMove(pt)
		case PointerUp:
			b.TouchEnd()
		case PointerLeave:
			b.TouchLeave()
		}
		return true
	}

	switch ev.Kind {
	case PointerDown:
		b.PointerDown(ev.ClientX)
	case PointerMove:
		if !b.drag.pointerDown {
			return false
		}
		b.PointerMove(ev.ClientX)
	case PointerUp:
		b.PointerUp()
	case PointerLeave:
		b.PointerLeave()
	}
	return true
}

// localX converts a host x coordinate to a bar offset clamped to the bar.
func (b *Bar) localX(clientX float64) float64 {
	return b.mapper().Clamp(clientX - b.geom.left)
}

// PointerDown starts a selection gesture at clientX.
func (b *Bar) PointerDown(clientX float64) {
	if b.looping {
		b.looping = false
		b.media.Pause()
	}

	x := b.localX(clientX)
	b.drag.beginSelect(x)

	start, ok := b.mapper().PixelToTime(x)
	if !ok {
		b.log.Debug("pointer down ignored: duration unknown", "x", x)
		return
	}

	b.sel = &Selection{Start: start}
	placeRegion(b.geom.selection, Px(x), Px(0))
	showRegion(b.geom.selection)
	b.notify()
}

// PointerMove updates the selection while a selection gesture is active.
func (b *Bar) PointerMove(clientX float64) {
	if !b.drag.pointerDown || b.sel == nil {
		return
	}

	x := b.localX(clientX)
	if b.drag.leaveDeadZone(x, b.tuning.DragThreshold) {
		showRegion(b.geom.options)
	}
	if !b.drag.hasDragged {
		return
	}

	m := b.mapper()
	startX := b.drag.dragStartX
	left, width := startX, x-startX
	if x < startX {
		left, width = x, startX-x
	}

	start, ok := m.PixelToTime(left)
	if !ok {
		return
	}
	dur, _ := m.PixelToTime(width)

	b.sel.Start = start
	b.sel.Duration = max(dur, 0)
	placeRegion(b.geom.selection, Px(left), Px(width))
	b.notify()
}

// PointerUp finishes a selection gesture. A press that never left the dead
// zone is a click: it seeks to the press position and clears the selection.
// So is a drag that came back to where it started.
func (b *Bar) PointerUp() {
	if !b.drag.pointerDown {
		return
	}
	x := b.drag.dragStartX
	if b.drag.endSelect() {
		if b.sel == nil {
			return
		}
		if b.sel.Duration > 0 {
			b.log.Debug("selection finalized", "selection", b.sel.String())
			return
		}
	}

	if t, ok := b.mapper().PixelToTime(x); ok {
		b.seek(t)
	}
	hideRegion(b.geom.options)
	hideRegion(b.geom.selection)
	b.setSelection(nil)
}

// PointerLeave abandons the selection gesture, keeping the selection.
func (b *Bar) PointerLeave() {
	b.drag.endSelect()
}

// TouchStart starts a seek gesture: it pauses playback and seeks to the
// touched position.
func (b *Bar) TouchStart(pt TouchPoint) {
	origin := Origin(b.platform, pt)
	b.drag.beginSeek(origin, b.playing)
	b.media.Pause()
	b.seekToPixel(pt.X(origin))
}

// TouchMove seeks to the touched position while a seek gesture is active.
func (b *Bar) TouchMove(pt TouchPoint) {
	if !b.drag.seeking {
		return
	}
	b.seekToPixel(pt.X(b.drag.origin))
}

// TouchEnd finishes the seek gesture, resuming playback if it was active
// when the gesture began.
func (b *Bar) TouchEnd() {
	b.finishSeek()
}

// TouchLeave cancels the seek gesture. Playback resumes as for TouchEnd.
func (b *Bar) TouchLeave() {
	b.finishSeek()
}

func (b *Bar) finishSeek() {
	if !b.drag.seeking {
		return
	}
	if b.drag.endSeek() {
		b.media.Play()
	}
}

func (b *Bar) seekToPixel(x float64) {
	t, ok := b.mapper().PixelToTime(x)
	if !ok {
		return
	}
	b.seek(t)
}

func (b *Bar) seek(t float64) {
	b.media.SeekTo(secondsToDuration(t))
}

// SetSelection replaces the selection and reveals it with its options popup.
// It fails with ErrDurationUnknown while the media duration is unknown.
func (b *Bar) SetSelection(sel Selection) error {
	if err := sel.Validate(); err != nil {
		return fmt.Errorf("set selection: %w", err)
	}
	if b.media.Duration() <= 0 {
		return fmt.Errorf("set selection: %w", ErrDurationUnknown)
	}

	b.placeSelection(sel)
	showRegion(b.geom.selection)
	showRegion(b.geom.options)
	b.setSelection(&sel)
	return nil
}

// ClearSelection removes the selection and hides its regions.
func (b *Bar) ClearSelection() {
	b.looping = false
	hideRegion(b.geom.options)
	hideRegion(b.geom.selection)
	b.setSelection(nil)
}

// UpdateInitial replaces the host-supplied initial selection. Without a
// known duration the selection is kept pending until one is reported.
func (b *Bar) UpdateInitial(sel *Selection) error {
	if sel == nil {
		b.pending = nil
		return nil
	}
	if err := sel.Validate(); err != nil {
		return fmt.Errorf("initial selection: %w", err)
	}
	if b.media.Duration() <= 0 {
		b.pending = sel.clone()
		b.log.Debug("initial selection pending", "selection", sel.String())
		return nil
	}
	b.pending = nil
	return b.SetSelection(*sel)
}

// Pending returns the initial selection waiting for a known duration.
func (b *Bar) Pending() *Selection { return b.pending.clone() }

func (b *Bar) applyPending() {
	if b.pending == nil || b.media.Duration() <= 0 {
		return
	}
	sel := *b.pending
	b.pending = nil
	if err := b.SetSelection(sel); err != nil {
		b.log.Warn("pending selection rejected", "selection", sel.String(), "err", err)
	}
}

// placeSelection positions the selection rectangle from a time range.
func (b *Bar) placeSelection(sel Selection) {
	pps, ok := b.mapper().PixelsPerSecond()
	if !ok {
		return
	}
	placeRegion(b.geom.selection, Px(sel.Start*pps), Px(sel.Duration*pps))
}

func (b *Bar) setSelection(sel *Selection) {
	if sel == nil && b.sel == nil {
		return
	}
	b.sel = sel.clone()
	b.notify()
}

func (b *Bar) notify() {
	if b.sel != nil {
		b.log.Debug("selection changed", "selection", b.sel.String())
	} else {
		b.log.Debug("selection cleared")
	}
	if b.onChange != nil {
		b.onChange(b.sel.clone())
	}
}

// onMedia observes the controller.
func (b *Bar) onMedia(e media.Event) {
	switch e.Kind {
	case media.EventState:
		// The bar pauses playback itself while seeking; those transitions
		// must not overwrite the state remembered at gesture start.
		if !b.drag.seeking {
			b.playing = e.State == media.Playing
		}
		b.applyPending()
	case media.EventSource:
		b.log.Debug("source changed", "source", e.Source)
		b.drag.reset()
		b.ClearSelection()
		b.applyPending()
	case media.EventDuration:
		if b.sel != nil {
			b.placeSelection(*b.sel)
		}
		b.applyPending()
	}
}
