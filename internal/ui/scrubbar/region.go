package scrubbar

import (
	"math"

	"github.com/llehouerou/scrubber/internal/scrub"
)

// Region is a horizontal span of the bar that the scrub core can show,
// hide and position.
type Region struct {
	visible bool
	left    scrub.Length
	width   scrub.Length
}

var _ scrub.Region = (*Region)(nil)

func (r *Region) Show() { r.visible = true }

func (r *Region) Hide() { r.visible = false }

func (r *Region) SetLeft(l scrub.Length) { r.left = l }

func (r *Region) SetWidth(w scrub.Length) { r.width = w }

// Visible reports whether the region is shown.
func (r *Region) Visible() bool { return r.visible }

// Left returns the region's left edge as last set.
func (r *Region) Left() scrub.Length { return r.left }

// Width returns the region's width as last set.
func (r *Region) Width() scrub.Length { return r.width }

// Cells resolves the region to the half-open cell range [start, end) of a
// bar total cells wide. A visible zero-width region still covers the cell
// it starts in, so a fresh press is visible.
func (r *Region) Cells(total int) (start, end int, ok bool) {
	if !r.visible || total <= 0 {
		return 0, 0, false
	}
	w := float64(total)
	left := r.left.Resolve(w)
	right := left + r.width.Resolve(w)

	start = int(math.Floor(left))
	end = int(math.Ceil(right))
	if end <= start {
		end = start + 1
	}
	start = max(0, min(start, total-1))
	end = max(start+1, min(end, total))
	return start, end, true
}
