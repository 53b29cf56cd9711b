package scrub

// Mapper converts between horizontal offsets within the bar and media time.
// Width is the bar's scrollable width in pixels, Duration the media
// duration in seconds.
type Mapper struct {
	Width    float64
	Duration float64
}

// Valid reports whether both width and duration are known and positive.
func (m Mapper) Valid() bool {
	return m.Width > 0 && m.Duration > 0 && finite(m.Width) && finite(m.Duration)
}

// PixelToTime returns px * Duration / Width.
// ok is false when the width or the duration is unknown; the result is then 0.
func (m Mapper) PixelToTime(px float64) (float64, bool) {
	if !m.Valid() {
		return 0, false
	}
	return px * m.Duration / m.Width, true
}

// TimeToPixel returns t * PixelsPerSecond.
// ok is false when the duration is unknown; the result is then 0.
func (m Mapper) TimeToPixel(t float64) (float64, bool) {
	pps, ok := m.PixelsPerSecond()
	if !ok {
		return 0, false
	}
	return t * pps, true
}

// PixelsPerSecond returns Width / Duration.
// ok is false when the duration is unknown or zero.
func (m Mapper) PixelsPerSecond() (float64, bool) {
	if m.Duration <= 0 || !finite(m.Duration) || m.Width < 0 || !finite(m.Width) {
		return 0, false
	}
	return m.Width / m.Duration, true
}

// Clamp limits px to [0, Width].
func (m Mapper) Clamp(px float64) float64 {
	return max(0, min(px, max(m.Width, 0)))
}

// Platform identifies a pointer-origin convention for touch input.
type Platform int

const (
	// PlatformGeneric uses the layer offset as the touch origin.
	PlatformGeneric Platform = iota
	// PlatformIOS uses the sign-inverted distance between the touch point
	// and the layer offset.
	PlatformIOS
)

// String returns the platform name.
func (p Platform) String() string {
	switch p {
	case PlatformGeneric:
		return "generic"
	case PlatformIOS:
		return "ios"
	default:
		return "unknown"
	}
}

// TouchPoint is the raw horizontal data of one touch sample.
type TouchPoint struct {
	ClientX          float64 // touch position in viewport coordinates
	LayerX           float64 // position relative to the positioned layer
	TargetOffsetLeft float64 // left offset of the touched element
}

// Origin computes the per-gesture origin correction for p.
// It is evaluated once at gesture start and reused for the gesture's moves.
func Origin(p Platform, pt TouchPoint) float64 {
	if p == PlatformIOS {
		return -(pt.ClientX - pt.LayerX)
	}
	return pt.LayerX
}

// X returns the offset within the bar for pt, given the gesture's origin.
func (pt TouchPoint) X(origin float64) float64 {
	return pt.ClientX + origin - pt.TargetOffsetLeft
}
