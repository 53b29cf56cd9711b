package app

import (
	"errors"
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/scrubber/internal/config"
	"github.com/llehouerou/scrubber/internal/media"
	"github.com/llehouerou/scrubber/internal/mpris"
	"github.com/llehouerou/scrubber/internal/player"
	"github.com/llehouerou/scrubber/internal/scrub"
	"github.com/llehouerou/scrubber/internal/ui/testutil"
)

// fakePlayer is a Player backed by media.Mock.
type fakePlayer struct {
	*media.Mock

	durations map[string]time.Duration
	volume    float64
	muted     bool
	stops     int
	finished  chan struct{}
}

func newFakePlayer() *fakePlayer {
	return &fakePlayer{
		Mock:      media.NewMock(),
		durations: map[string]time.Duration{"take.wav": 100 * time.Second},
		volume:    1,
		finished:  make(chan struct{}, 1),
	}
}

func (f *fakePlayer) Load(path string) error {
	d, ok := f.durations[path]
	if !ok {
		return os.ErrNotExist
	}
	f.LoadSource(path, d)
	return nil
}

func (f *fakePlayer) Stop() {
	f.stops++
	f.SetState(media.Stopped)
	f.SetPosition(0)
}

func (f *fakePlayer) SetVolume(level float64) { f.volume = level }
func (f *fakePlayer) Volume() float64         { return f.volume }
func (f *fakePlayer) SetMuted(muted bool)     { f.muted = muted }
func (f *fakePlayer) Muted() bool             { return f.muted }

func (f *fakePlayer) TrackInfo() *player.TrackInfo {
	if f.Source() == "" {
		return nil
	}
	return &player.TrackInfo{Path: f.Source(), Title: "Take Three", Artist: "The Band"}
}

func (f *fakePlayer) FinishedChan() <-chan struct{} { return f.finished }

type loopRecorder struct{ values []bool }

func (r *loopRecorder) SetLooping(on bool) { r.values = append(r.values, on) }

// After the resize in newTestApp the bar sits at column 2 of row 2, 100 cells wide.
const (
	testWidth  = 104
	testHeight = 20
)

func newTestApp(t *testing.T, opts Options) (*testutil.Harness, *fakePlayer) {
	t.Helper()
	fp := newFakePlayer()
	opts.Player = fp
	if opts.File == "" {
		opts.File = "take.wav"
	}
	h := testutil.NewHarness(New(opts))
	h.Resize(testWidth, testHeight)
	fp.ResetCalls()
	return h, fp
}

func model(h *testutil.Harness) Model {
	return h.Model().(Model)
}

func TestNew_LoadsFileAndAppliesInitialSelection(t *testing.T) {
	h, fp := newTestApp(t, Options{Initial: &scrub.Selection{Start: 10, Duration: 20}})
	m := model(h)

	assert.Equal(t, "take.wav", fp.Source())
	require.NotNil(t, m.Selection())
	assert.Equal(t, scrub.Selection{Start: 10, Duration: 20}, *m.Selection())
	assert.Equal(t, 1, m.SelectionChanges())

	start, end, ok := m.Scrubbar.SelectionRegion().Cells(100)
	require.True(t, ok)
	assert.Equal(t, 10, start)
	assert.Equal(t, 30, end)
}

func TestNew_LoadErrorShownInErrorLine(t *testing.T) {
	h, _ := newTestApp(t, Options{File: "missing.wav"})
	m := model(h)

	assert.Contains(t, m.ErrorMsg, "load file")
	assert.True(t, h.ViewContains("Failed to load file"))
}

func TestNew_UsesConfigFileWhenNoneGiven(t *testing.T) {
	fp := newFakePlayer()
	New(Options{Config: &config.Config{File: "take.wav"}, Player: fp})
	assert.Equal(t, "take.wav", fp.Source())
}

func TestNew_AppliesConfiguredVolume(t *testing.T) {
	fp := newFakePlayer()
	vol := 0.4
	New(Options{Config: &config.Config{Player: config.PlayerConfig{Volume: &vol}}, Player: fp, File: "take.wav"})
	assert.InDelta(t, 0.4, fp.volume, 1e-9)
}

func TestInit_StartsWatchers(t *testing.T) {
	fp := newFakePlayer()
	m := New(Options{Player: fp})
	assert.NotNil(t, m.Init())
}

func TestWindowTitle(t *testing.T) {
	h, _ := newTestApp(t, Options{})
	assert.Contains(t, model(h).windowTitle(), "The Band - Take Three")

	m := New(Options{Player: newFakePlayer()})
	assert.Equal(t, "scrubber", m.windowTitle())
}

func TestMouse_DragSelects(t *testing.T) {
	h, fp := newTestApp(t, Options{})

	h.Drag(barRow, 12, 32)

	m := model(h)
	require.NotNil(t, m.Selection())
	assert.InDelta(t, 10, m.Selection().Start, 1e-9)
	assert.InDelta(t, 20, m.Selection().Duration, 1e-9)
	assert.Empty(t, fp.SeekCalls(), "a drag does not seek")
	assert.True(t, h.ViewContains("20s  L loop  esc clear"))
	assert.True(t, h.ViewContains("10.00s+20.00s"))
}

func TestMouse_LeftwardDragSelects(t *testing.T) {
	h, _ := newTestApp(t, Options{})

	h.Drag(barRow, 52, 22)

	sel := model(h).Selection()
	require.NotNil(t, sel)
	assert.InDelta(t, 20, sel.Start, 1e-9)
	assert.InDelta(t, 30, sel.Duration, 1e-9)
}

func TestMouse_ClickSeeksAndClears(t *testing.T) {
	h, fp := newTestApp(t, Options{Initial: &scrub.Selection{Start: 10, Duration: 20}})

	h.Click(42, barRow)

	assert.Equal(t, []time.Duration{40 * time.Second}, fp.SeekCalls())
	assert.Nil(t, model(h).Selection())
}

func TestMouse_IgnoredOffBarAndWhileHelpShown(t *testing.T) {
	h, fp := newTestApp(t, Options{})

	h.Click(42, barRow+3)
	assert.Empty(t, fp.SeekCalls())

	h.Key("?")
	h.Click(42, barRow)
	assert.Empty(t, fp.SeekCalls())
}

func TestKeys_SeekThroughBar(t *testing.T) {
	h, fp := newTestApp(t, Options{})
	fp.SetPosition(50 * time.Second)

	h.SpecialKey(tea.KeyRight)
	h.SpecialKey(tea.KeyLeft)
	h.SpecialKey(tea.KeyHome)
	h.SpecialKey(tea.KeyEnd)

	assert.InDeltaSlice(t, []float64{55, 50, 0, 100}, fp.PercentCalls(), 1e-9)
}

func TestKeys_SpaceTogglesPlayback(t *testing.T) {
	h, fp := newTestApp(t, Options{})

	h.SpecialKey(tea.KeySpace)

	assert.Equal(t, 1, fp.ToggleCalls())
	assert.Equal(t, media.Playing, fp.State())
}

func TestKeys_EscapeClearsSelection(t *testing.T) {
	h, _ := newTestApp(t, Options{Initial: &scrub.Selection{Start: 10, Duration: 20}})

	h.SpecialKey(tea.KeyEsc)

	assert.Nil(t, model(h).Selection())
}

func TestKeys_Volume(t *testing.T) {
	h, fp := newTestApp(t, Options{})
	fp.volume = 0.5

	h.Key("+")
	assert.InDelta(t, 0.55, fp.volume, 1e-9)
	h.Key("-")
	h.Key("-")
	assert.InDelta(t, 0.45, fp.volume, 1e-9)

	fp.volume = 0.99
	h.Key("+")
	assert.InDelta(t, 1.0, fp.volume, 1e-9)

	h.Key("m")
	assert.True(t, fp.muted)
	h.Key("m")
	assert.False(t, fp.muted)
}

func TestKeys_StopEndsLoop(t *testing.T) {
	h, fp := newTestApp(t, Options{Initial: &scrub.Selection{Start: 10, Duration: 20}})
	h.Key("L")
	require.True(t, model(h).Bar.Looping())

	h.Key("s")

	assert.False(t, model(h).Bar.Looping())
	assert.Equal(t, 1, fp.stops)
}

func TestKeys_Quit(t *testing.T) {
	h, _ := newTestApp(t, Options{})

	cmd := h.Key("q")

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestKeys_HelpToggle(t *testing.T) {
	h, fp := newTestApp(t, Options{})

	h.Key("?")
	assert.True(t, model(h).ShowHelp)
	assert.True(t, h.ViewContains("Clear selection"))

	// Bar keys are ignored while help is shown
	h.SpecialKey(tea.KeyRight)
	assert.Empty(t, fp.PercentCalls())

	h.SpecialKey(tea.KeyEsc)
	assert.False(t, model(h).ShowHelp)
}

func TestKeys_ErrorDismissedByAnyKey(t *testing.T) {
	h, fp := newTestApp(t, Options{File: "missing.wav"})
	require.NotEmpty(t, model(h).ErrorMsg)

	h.SpecialKey(tea.KeySpace)

	assert.Empty(t, model(h).ErrorMsg)
	assert.Zero(t, fp.ToggleCalls(), "the dismissing key is not processed")
}

func TestLoop_WithoutSelectionReportsError(t *testing.T) {
	h, fp := newTestApp(t, Options{})

	h.Key("L")

	assert.False(t, model(h).Bar.Looping())
	assert.Contains(t, model(h).ErrorMsg, "loop selection")
	assert.Zero(t, fp.PlayCalls())
}

func TestLoop_TickJumpsBackAtSelectionEnd(t *testing.T) {
	h, fp := newTestApp(t, Options{Initial: &scrub.Selection{Start: 10, Duration: 20}})

	h.Key("L")
	require.True(t, model(h).Bar.Looping())
	assert.Equal(t, []time.Duration{10 * time.Second}, fp.SeekCalls())
	assert.Equal(t, media.Playing, fp.State())
	assert.True(t, h.ViewContains("L stop loop"))

	fp.SetPosition(25 * time.Second)
	cmd := h.Send(TickMsg(time.Now()))
	assert.NotNil(t, cmd, "ticking continues")
	assert.Len(t, fp.SeekCalls(), 1)

	fp.SetPosition(30 * time.Second)
	h.Send(TickMsg(time.Now()))
	assert.Equal(t, []time.Duration{10 * time.Second, 10 * time.Second}, fp.SeekCalls())
	assert.Equal(t, 10*time.Second, fp.Position())

	h.Key("L")
	assert.False(t, model(h).Bar.Looping())
}

func TestTrackFinished(t *testing.T) {
	t.Run("stops without loop", func(t *testing.T) {
		h, fp := newTestApp(t, Options{})
		fp.Play()

		cmd := h.Send(TrackFinishedMsg{})

		assert.NotNil(t, cmd, "keeps watching")
		assert.Equal(t, 1, fp.stops)
		assert.Equal(t, media.Stopped, fp.State())
	})

	t.Run("restarts a looping selection", func(t *testing.T) {
		h, fp := newTestApp(t, Options{Initial: &scrub.Selection{Start: 90, Duration: 10}})
		h.Key("L")
		fp.ResetCalls()

		h.Send(TrackFinishedMsg{})

		assert.Zero(t, fp.stops)
		assert.Equal(t, []time.Duration{90 * time.Second}, fp.SeekCalls())
		assert.True(t, model(h).Bar.Looping())
	})
}

func TestWatchTrackFinished(t *testing.T) {
	fp := newFakePlayer()
	m := New(Options{Player: fp})
	fp.finished <- struct{}{}

	assert.Equal(t, TrackFinishedMsg{}, testutil.ExecuteCmd(m.WatchTrackFinished()))
}

func TestStderr(t *testing.T) {
	lines := make(chan string, 1)
	h, _ := newTestApp(t, Options{StderrLines: lines})

	lines <- "ALSA lib pcm.c: underrun"
	msg := testutil.ExecuteCmd(model(h).WatchStderr())
	require.Equal(t, StderrMsg("ALSA lib pcm.c: underrun"), msg)

	cmd := h.Send(msg)
	assert.NotNil(t, cmd)
	assert.Equal(t, "ALSA lib pcm.c: underrun", model(h).StatusMsg)

	close(lines)
	assert.Equal(t, StderrClosedMsg{}, testutil.ExecuteCmd(model(h).WatchStderr()))
}

func TestConfigReloaded(t *testing.T) {
	t.Run("applies tuning", func(t *testing.T) {
		h, fp := newTestApp(t, Options{})
		cfg := &config.Config{Scrub: config.ScrubConfig{SeekStep: 10}}

		h.Send(ConfigReloadedMsg{Config: cfg})
		h.SpecialKey(tea.KeyRight)

		assert.Equal(t, []float64{10}, fp.PercentCalls())
		assert.Equal(t, "Config reloaded", model(h).StatusMsg)
	})

	t.Run("applies key overrides", func(t *testing.T) {
		h, fp := newTestApp(t, Options{})
		cfg := &config.Config{Keys: map[string][]string{"seek_forward": {"f"}}}

		h.Send(ConfigReloadedMsg{Config: cfg})
		h.Key("f")

		assert.Equal(t, []float64{5}, fp.PercentCalls())
	})

	t.Run("rejects bad key overrides", func(t *testing.T) {
		h, fp := newTestApp(t, Options{})
		cfg := &config.Config{
			Scrub: config.ScrubConfig{SeekStep: 10},
			Keys:  map[string][]string{"warp": {"w"}},
		}

		h.Send(ConfigReloadedMsg{Config: cfg})
		assert.Contains(t, model(h).ErrorMsg, "apply key bindings")

		h.SpecialKey(tea.KeyEsc) // dismiss
		h.SpecialKey(tea.KeyRight)
		assert.Equal(t, []float64{5}, fp.PercentCalls(), "previous tuning kept")
	})

	t.Run("warns when input mode changes", func(t *testing.T) {
		h, _ := newTestApp(t, Options{})
		cfg := &config.Config{Scrub: config.ScrubConfig{InputMode: "scrub"}}

		h.Send(ConfigReloadedMsg{Config: cfg})

		m := model(h)
		assert.Equal(t, "Config reloaded, restart to switch input mode", m.StatusMsg)
		assert.Equal(t, scrub.StrategySelect, m.Bar.Strategy(), "strategy kept until restart")
		assert.True(t, h.ViewContains("restart to switch input mode"))
	})

	t.Run("reports load errors", func(t *testing.T) {
		h, _ := newTestApp(t, Options{})

		h.Send(ConfigReloadedMsg{Err: errors.New("bad toml")})

		assert.Contains(t, model(h).ErrorMsg, "reload config")
	})
}

func TestMPRIS(t *testing.T) {
	h, fp := newTestApp(t, Options{Initial: &scrub.Selection{Start: 10, Duration: 20}})
	rec := &loopRecorder{}
	h.Send(MPRISReadyMsg{Adapter: rec})
	assert.Equal(t, []bool{false}, rec.values)

	h.Send(MPRISMsg{Command: mpris.Play{}})
	assert.Equal(t, media.Playing, fp.State())

	h.Send(MPRISMsg{Command: mpris.Pause{}})
	assert.Equal(t, media.Paused, fp.State())

	fp.SetPosition(20 * time.Second)
	h.Send(MPRISMsg{Command: mpris.Seek{Offset: -5 * time.Second}})
	h.Send(MPRISMsg{Command: mpris.SetPosition{Position: 70 * time.Second}})
	assert.Equal(t, []time.Duration{15 * time.Second, 70 * time.Second}, fp.SeekCalls())

	h.Send(MPRISMsg{Command: mpris.SetVolume{Level: 0.3}})
	assert.InDelta(t, 0.3, fp.volume, 1e-9)

	h.Send(MPRISMsg{Command: mpris.SetLoop{On: true}})
	assert.True(t, model(h).Bar.Looping())
	assert.True(t, rec.values[len(rec.values)-1])

	h.Send(MPRISMsg{Command: mpris.Stop{}})
	assert.False(t, model(h).Bar.Looping())
	assert.False(t, rec.values[len(rec.values)-1])
	assert.Equal(t, 1, fp.stops)
}

func TestSetSelectionMsg(t *testing.T) {
	h, _ := newTestApp(t, Options{})

	h.Send(SetSelectionMsg{Selection: &scrub.Selection{Start: 5, Duration: 5}})
	require.NotNil(t, model(h).Selection())
	assert.Equal(t, scrub.Selection{Start: 5, Duration: 5}, *model(h).Selection())

	h.Send(SetSelectionMsg{})
	assert.Nil(t, model(h).Selection())

	h.Send(SetSelectionMsg{Selection: &scrub.Selection{Start: -1, Duration: 5}})
	assert.Contains(t, model(h).ErrorMsg, "set selection")
}

func TestView(t *testing.T) {
	t.Run("empty before first resize", func(t *testing.T) {
		m := New(Options{Player: newFakePlayer()})
		assert.Empty(t, m.View())
	})

	t.Run("layout", func(t *testing.T) {
		h, _ := newTestApp(t, Options{})
		lines := testutil.SplitLines(h.View())

		require.Greater(t, len(lines), barRow)
		assert.Contains(t, lines[0], "The Band - Take Three")
		assert.Contains(t, lines[0], "0:00 / 1:40")
		assert.Equal(t, testWidth-2, testutil.MeasureWidth(lines[barRow]))
		assert.Equal(t, 2, testutil.Column(h.View(), barRow, "─"))
	})

	t.Run("status message on last row", func(t *testing.T) {
		h, _ := newTestApp(t, Options{})
		h.Send(StderrMsg("underrun"))

		lines := testutil.SplitLines(h.View())
		require.Len(t, lines, testHeight)
		assert.Contains(t, lines[testHeight-1], "underrun")
	})
}

func TestClose_Unsubscribes(t *testing.T) {
	fp := newFakePlayer()
	m := New(Options{Player: fp})
	require.Equal(t, 1, fp.ListenerCount())

	m.Close()

	assert.Zero(t, fp.ListenerCount())
}
