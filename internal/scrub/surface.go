package scrub

import "strconv"

// Unit is the unit of a Length.
type Unit int

const (
	Pixels Unit = iota
	Percent
)

// Length is a CSS-style horizontal length.
type Length struct {
	Value float64
	Unit  Unit
}

// Px returns a pixel length.
func Px(v float64) Length { return Length{Value: v, Unit: Pixels} }

// Pct returns a percentage length.
func Pct(v float64) Length { return Length{Value: v, Unit: Percent} }

// String formats the length as "12px" or "5%".
func (l Length) String() string {
	v := strconv.FormatFloat(l.Value, 'f', -1, 64)
	if l.Unit == Percent {
		return v + "%"
	}
	return v + "px"
}

// Resolve converts l to pixels within a container of the given width.
func (l Length) Resolve(width float64) float64 {
	if l.Unit == Percent {
		return l.Value * width / 100
	}
	return l.Value
}

// RegionName identifies a child region of the render surface.
type RegionName string

const (
	// RegionSelection is the rectangle marking the selected range.
	RegionSelection RegionName = "selection"
	// RegionOptions is the popup offering actions on the selection.
	RegionOptions RegionName = "options"
)

// Region is a child element of the surface that can be shown, hidden and
// positioned horizontally.
type Region interface {
	Show()
	Hide()
	SetLeft(Length)
	SetWidth(Length)
}

// Surface is the rendering surface the bar draws on.
//
// Region returns nil when the surface has no such child; implementations
// must return an untyped nil rather than a nil pointer.
type Surface interface {
	// Offset returns the bar's left offset in the host's coordinate space.
	Offset() float64
	// ScrollWidth returns the bar's full width in pixels.
	ScrollWidth() float64
	Region(name RegionName) Region
}

// geometry caches the bar offset and resolved regions.
type geometry struct {
	left      float64
	selection Region
	options   Region
}

func (g *geometry) refresh(s Surface) {
	if s == nil {
		*g = geometry{}
		return
	}
	g.left = s.Offset()
	g.selection = s.Region(RegionSelection)
	g.options = s.Region(RegionOptions)
}

func showRegion(r Region) {
	if r != nil {
		r.Show()
	}
}

func hideRegion(r Region) {
	if r != nil {
		r.Hide()
	}
}

func placeRegion(r Region, left, width Length) {
	if r == nil {
		return
	}
	r.SetLeft(left)
	r.SetWidth(width)
}
