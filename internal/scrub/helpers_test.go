package scrub

import (
	"time"

	"github.com/llehouerou/scrubber/internal/media"
)

type fakeRegion struct {
	visible bool
	left    Length
	width   Length
	shows   int
	hides   int
}

func (r *fakeRegion) Show()             { r.visible = true; r.shows++ }
func (r *fakeRegion) Hide()             { r.visible = false; r.hides++ }
func (r *fakeRegion) SetLeft(l Length)  { r.left = l }
func (r *fakeRegion) SetWidth(w Length) { r.width = w }

type fakeSurface struct {
	offset    float64
	width     float64
	selection *fakeRegion
	options   *fakeRegion
}

func newFakeSurface(width float64) *fakeSurface {
	return &fakeSurface{
		width:     width,
		selection: &fakeRegion{},
		options:   &fakeRegion{},
	}
}

func (s *fakeSurface) Offset() float64      { return s.offset }
func (s *fakeSurface) ScrollWidth() float64 { return s.width }

func (s *fakeSurface) Region(name RegionName) Region {
	switch name {
	case RegionSelection:
		if s.selection != nil {
			return s.selection
		}
	case RegionOptions:
		if s.options != nil {
			return s.options
		}
	}
	return nil
}

// changeRecorder collects OnChange notifications.
type changeRecorder struct {
	changes []*Selection
}

func (r *changeRecorder) record(sel *Selection) {
	r.changes = append(r.changes, sel)
}

func (r *changeRecorder) last() *Selection {
	if len(r.changes) == 0 {
		return nil
	}
	return r.changes[len(r.changes)-1]
}

// newTestBar returns a bar over a 500px surface and a 100s source.
func newTestBar(opts Options) (*Bar, *media.Mock, *fakeSurface, *changeRecorder) {
	m := media.NewMock()
	m.LoadSource("clip.mp4", 100*time.Second)
	s := newFakeSurface(500)
	rec := &changeRecorder{}
	if opts.OnChange == nil {
		opts.OnChange = rec.record
	}
	return New(m, s, opts), m, s, rec
}
