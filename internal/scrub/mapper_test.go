package scrub

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapper_PixelToTime(t *testing.T) {
	m := Mapper{Width: 500, Duration: 100}

	tests := []struct {
		px   float64
		want float64
	}{
		{0, 0},
		{50, 10},
		{200, 40},
		{500, 100},
	}
	for _, tt := range tests {
		got, ok := m.PixelToTime(tt.px)
		assert.True(t, ok)
		assert.InDelta(t, tt.want, got, 1e-9, "PixelToTime(%v)", tt.px)
	}
}

func TestMapper_RoundTrip(t *testing.T) {
	widths := []float64{1, 73, 500, 1920}
	durations := []float64{0.5, 3.7, 100, 7261.25}

	for _, w := range widths {
		for _, d := range durations {
			m := Mapper{Width: w, Duration: d}
			for i := 0; i <= 20; i++ {
				p := w * float64(i) / 20
				tm, ok := m.PixelToTime(p)
				assert.True(t, ok)
				back, ok := m.TimeToPixel(tm)
				assert.True(t, ok)
				assert.InDelta(t, p, back, 1e-9*max(w, 1), "w=%v d=%v p=%v", w, d, p)
			}
		}
	}
}

func TestMapper_UnknownDurationOrWidth(t *testing.T) {
	tests := []struct {
		name string
		m    Mapper
	}{
		{"zero duration", Mapper{Width: 500, Duration: 0}},
		{"negative duration", Mapper{Width: 500, Duration: -1}},
		{"nan duration", Mapper{Width: 500, Duration: math.NaN()}},
		{"inf duration", Mapper{Width: 500, Duration: math.Inf(1)}},
		{"zero width", Mapper{Width: 0, Duration: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm, ok := tt.m.PixelToTime(100)
			assert.False(t, ok)
			assert.Zero(t, tm)
			assert.False(t, tt.m.Valid())
		})
	}

	_, ok := Mapper{Width: 500, Duration: 0}.TimeToPixel(10)
	assert.False(t, ok)
	_, ok = Mapper{Width: 500, Duration: 0}.PixelsPerSecond()
	assert.False(t, ok)
}

func TestMapper_PixelsPerSecond(t *testing.T) {
	pps, ok := Mapper{Width: 500, Duration: 100}.PixelsPerSecond()
	assert.True(t, ok)
	assert.InDelta(t, 5.0, pps, 1e-12)

	px, ok := Mapper{Width: 500, Duration: 100}.TimeToPixel(20)
	assert.True(t, ok)
	assert.InDelta(t, 100.0, px, 1e-12)
}

func TestMapper_Clamp(t *testing.T) {
	m := Mapper{Width: 500, Duration: 100}
	assert.Equal(t, 0.0, m.Clamp(-10))
	assert.Equal(t, 250.0, m.Clamp(250))
	assert.Equal(t, 500.0, m.Clamp(900))
	assert.Equal(t, 0.0, Mapper{}.Clamp(12))
}

func TestOrigin(t *testing.T) {
	pt := TouchPoint{ClientX: 120, LayerX: 30, TargetOffsetLeft: 20}

	generic := Origin(PlatformGeneric, pt)
	assert.Equal(t, 30.0, generic)
	assert.Equal(t, 130.0, pt.X(generic))

	ios := Origin(PlatformIOS, pt)
	assert.Equal(t, -90.0, ios)
	assert.Equal(t, 10.0, pt.X(ios))
}

func TestOrigin_ReusedForGesture(t *testing.T) {
	start := TouchPoint{ClientX: 100, LayerX: 40, TargetOffsetLeft: 0}
	origin := Origin(PlatformIOS, start)

	// A later sample with a different LayerX keeps the gesture's origin.
	move := TouchPoint{ClientX: 150, LayerX: 999, TargetOffsetLeft: 0}
	assert.Equal(t, 90.0, move.X(origin))
}
