package scrub

// Key is a keyboard command understood by the bar.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyPlayPause
	KeyHome
	KeyEnd
	KeyClear
)

// String returns the key name.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyPlayPause:
		return "play-pause"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	case KeyClear:
		return "clear"
	default:
		return "unknown"
	}
}

// HandleKey runs a keyboard command. It reports whether the key was
// consumed; the host must not process consumed keys any further.
//
// Left and right seek by the tuning's step in percentage points of the
// total time. They are consumed but do nothing while the duration is
// unknown.
func (b *Bar) HandleKey(k Key) bool {
	switch k {
	case KeyLeft:
		b.seekPercentBy(-b.tuning.SeekStep)
		return true
	case KeyRight:
		b.seekPercentBy(b.tuning.SeekStep)
		return true
	case KeyPlayPause:
		b.media.Toggle()
		return true
	case KeyHome:
		if !b.tuning.HomeEnd {
			return false
		}
		b.media.SeekPercent(0)
		return true
	case KeyEnd:
		if !b.tuning.HomeEnd {
			return false
		}
		b.media.SeekPercent(100)
		return true
	case KeyClear:
		if b.sel == nil {
			return false
		}
		b.ClearSelection()
		return true
	case KeyNone:
	}
	return false
}

// CurrentPercent returns the playback position as a percentage of the
// total time. ok is false when the total time is unknown.
func (b *Bar) CurrentPercent() (float64, bool) {
	total := b.media.Duration()
	if total <= 0 {
		return 0, false
	}
	return float64(b.media.Position()) / float64(total) * 100, true
}

func (b *Bar) seekPercentBy(delta float64) {
	current, ok := b.CurrentPercent()
	if !ok {
		return
	}
	b.media.SeekPercent(current + delta)
}
