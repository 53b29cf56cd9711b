package scrub

// Strategy selects which gesture a pointer down starts.
type Strategy int

const (
	// StrategySelect: drag marks a selection, a plain click seeks.
	StrategySelect Strategy = iota
	// StrategyScrub: the pointer scrubs, seeking continuously while down.
	StrategyScrub
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategySelect:
		return "select"
	case StrategyScrub:
		return "scrub"
	default:
		return "unknown"
	}
}

// Capabilities describes the input device the bar is driven by.
type Capabilities struct {
	Touch    bool
	Platform Platform
}

// Strategy returns the input strategy suited to the capabilities.
func (c Capabilities) Strategy() Strategy {
	if c.Touch {
		return StrategyScrub
	}
	return StrategySelect
}

// PointerKind is the kind of a pointer event.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	PointerLeave
)

// String returns the pointer kind name.
func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerLeave:
		return "leave"
	default:
		return "unknown"
	}
}

// PointerEvent is a unified pointer or touch event.
//
// ClientX is in the host's coordinate space. LayerX and TargetOffsetLeft are
// only consulted by the scrub strategy's origin correction.
type PointerEvent struct {
	Kind             PointerKind
	ClientX          float64
	LayerX           float64
	TargetOffsetLeft float64
}

func (e PointerEvent) touchPoint() TouchPoint {
	return TouchPoint{
		ClientX:          e.ClientX,
		LayerX:           e.LayerX,
		TargetOffsetLeft: e.TargetOffsetLeft,
	}
}
