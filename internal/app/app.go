// Package app is the root bubbletea model: it hosts the timeline bar, the
// audio player and the host side of the selection callbacks.
package app

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/llehouerou/scrubber/internal/config"
	"github.com/llehouerou/scrubber/internal/errmsg"
	"github.com/llehouerou/scrubber/internal/icons"
	"github.com/llehouerou/scrubber/internal/keymap"
	"github.com/llehouerou/scrubber/internal/media"
	"github.com/llehouerou/scrubber/internal/player"
	"github.com/llehouerou/scrubber/internal/scrub"
	"github.com/llehouerou/scrubber/internal/ui/scrubbar"
)

// Player is the audio player driven by the application.
type Player interface {
	media.Controller

	Load(path string) error
	Stop()
	SetVolume(level float64)
	Volume() float64
	SetMuted(muted bool)
	Muted() bool
	TrackInfo() *player.TrackInfo
	FinishedChan() <-chan struct{}
}

// LoopReporter publishes the selection looping state, e.g. over MPRIS.
type LoopReporter interface {
	SetLooping(on bool)
}

// Options configures the application model.
type Options struct {
	Config *config.Config
	Player Player
	Keys   *keymap.Resolver

	// File is loaded at startup when not empty.
	File string
	// Initial is the selection to show once the file's duration is known.
	Initial *scrub.Selection

	// Zones enables bubblezone hit testing; View then scans its output.
	Zones *zone.Manager
	// StderrLines carries captured C library output.
	StderrLines <-chan string

	Logger *slog.Logger
}

// host receives the bar's callbacks. It is shared by every copy of Model.
type host struct {
	selection *scrub.Selection
	handle    scrub.Handle
	changes   int
	mpris     LoopReporter
}

// Model is the root application model.
type Model struct {
	Config   *config.Config
	Player   Player
	Bar      *scrub.Bar
	Scrubbar *scrubbar.Model
	Keys     *keymap.Resolver
	Help     help.Model
	Zones    *zone.Manager

	host *host
	log  *slog.Logger

	stderrLines <-chan string
	tick        time.Duration
	volumeStep  float64

	ShowHelp  bool
	StatusMsg string
	ErrorMsg  string
	Width     int
	Height    int
}

// New creates the application model. A file that fails to load is reported
// in the error line, not returned.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = &config.Config{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	keys := opts.Keys
	if keys == nil {
		keys = keymap.NewResolver(keymap.Bindings)
	}

	var barOpts []scrubbar.Option
	if opts.Zones != nil {
		barOpts = append(barOpts, scrubbar.WithZones(opts.Zones))
	}
	sb := scrubbar.New(barOpts...)

	h := &host{}
	sc := cfg.GetScrubConfig()
	tn := tuning(sc)
	bar := scrub.New(opts.Player, sb, scrub.Options{
		Capabilities: capabilities(sc),
		Tuning:       &tn,
		Initial:      opts.Initial,
		OnChange: func(sel *scrub.Selection) {
			h.selection = sel
			h.changes++
		},
		OnReady: func(handle scrub.Handle) { h.handle = handle },
		Logger:  logger,
	})

	pc := cfg.GetPlayerConfig()
	opts.Player.SetVolume(*pc.Volume)

	m := Model{
		Config:      cfg,
		Player:      opts.Player,
		Bar:         bar,
		Scrubbar:    sb,
		Keys:        keys,
		Help:        help.New(),
		Zones:       opts.Zones,
		host:        h,
		log:         logger.With("component", "app"),
		stderrLines: opts.StderrLines,
		tick:        time.Duration(sc.TickMillis) * time.Millisecond,
		volumeStep:  pc.VolumeStep,
	}

	file := opts.File
	if file == "" {
		file = cfg.File
	}
	if file != "" {
		if err := m.Player.Load(file); err != nil {
			m.log.Error("load failed", "path", file, "err", err)
			m.ErrorMsg = errmsg.Format(errmsg.OpFileLoad, err)
		}
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(m.windowTitle()),
		TickCmd(m.tick),
		m.WatchTrackFinished(),
		m.WatchStderr(),
	)
}

func (m Model) windowTitle() string {
	if info := m.Player.TrackInfo(); info != nil {
		return icons.FormatAudio(info.DisplayTitle())
	}
	return config.AppName
}

// Selection returns the current selection, or nil.
func (m Model) Selection() *scrub.Selection {
	if m.host.selection == nil {
		return nil
	}
	sel := *m.host.selection
	return &sel
}

// SelectionChanges counts the selection change notifications received.
func (m Model) SelectionChanges() int { return m.host.changes }

// Close releases the bar's subscription to the player.
func (m Model) Close() {
	m.Bar.Close()
}

func capabilities(sc config.ScrubConfig) scrub.Capabilities {
	return scrub.Capabilities{Touch: sc.InputMode == "scrub", Platform: scrub.PlatformGeneric}
}

func tuning(sc config.ScrubConfig) scrub.Tuning {
	return scrub.Tuning{
		SeekStep:      sc.SeekStep,
		DragThreshold: *sc.DragThreshold,
		HomeEnd:       *sc.HomeEnd,
	}
}
