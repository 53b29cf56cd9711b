package scrub

import (
	"fmt"
	"time"
)

// Loop plays the selection repeatedly: it seeks to the selection start,
// starts playback, and from then on Observe jumps back to the start each
// time the position reaches the selection end.
//
// Looping stops on StopLoop, on a pointer down in the select strategy, when
// the selection is cleared and when the source changes.
func (b *Bar) Loop() error {
	if b.sel == nil || b.sel.Duration <= 0 {
		return fmt.Errorf("loop: %w: empty selection", ErrInvalidSelection)
	}
	b.looping = true
	b.media.SeekTo(b.sel.StartTime())
	b.media.Play()
	b.log.Debug("looping selection", "selection", b.sel.String())
	return nil
}

// StopLoop stops looping without touching playback.
func (b *Bar) StopLoop() { b.looping = false }

// Looping reports whether the selection is being looped.
func (b *Bar) Looping() bool { return b.looping }

// Observe reports the playback position to the bar. Hosts call it from
// their periodic refresh. It returns true when it issued a seek.
func (b *Bar) Observe(pos time.Duration) bool {
	if !b.looping || b.sel == nil || b.sel.Duration <= 0 {
		return false
	}
	if pos.Seconds() < b.sel.End() {
		return false
	}
	b.media.SeekTo(b.sel.StartTime())
	return true
}
