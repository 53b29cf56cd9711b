// Package player plays audio files through the system speaker and exposes
// them as a media.Controller.
package player

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"

	"github.com/llehouerou/scrubber/internal/media"
)

// ErrUnsupportedFormat is returned by Load for files it cannot decode.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Player is a single-source audio player.
//
// Commands (Load, Play, Pause, Toggle, Stop, seeks) must be issued from one
// goroutine, the one listeners are called on. Queries may be made from any
// goroutine.
type Player struct {
	mu  sync.RWMutex
	out output
	log *slog.Logger

	state    media.State
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	info     *TrackInfo

	volumeLevel float64
	muted       bool

	speakerReady bool
	speakerRate  beep.SampleRate
	queued       atomic.Bool

	listeners  media.Listeners
	finishedCh chan struct{}
}

// Verify Player implements media.Controller at compile time.
var _ media.Controller = (*Player)(nil)

// New creates a player writing to the system speaker.
func New(logger *slog.Logger) *Player {
	return newWithOutput(speakerOutput{}, logger)
}

func newWithOutput(out output, logger *slog.Logger) *Player {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Player{
		out:         out,
		log:         logger.With("component", "player"),
		state:       media.Stopped,
		volumeLevel: 1,
		finishedCh:  make(chan struct{}, 1),
	}
}

// Load opens path and makes it the current source, stopped at position 0.
// The previous source is released first, even when loading fails.
func (p *Player) Load(path string) error {
	prevState := p.State()
	p.unload()
	if prevState != media.Stopped {
		p.emitState(prevState, media.Stopped)
	}

	// Drain a stale finish signal from the previous source
	select {
	case <-p.finishedCh:
	default:
	}

	f, err := os.Open(path)
	if err != nil {
		p.listeners.Emit(media.Event{Kind: media.EventSource})
		return err
	}

	streamer, format, err := decode(f, path)
	if err != nil {
		f.Close()
		p.listeners.Emit(media.Event{Kind: media.EventSource})
		return err
	}

	if err := p.ensureSpeaker(format); err != nil {
		streamer.Close()
		f.Close()
		p.listeners.Emit(media.Event{Kind: media.EventSource})
		return fmt.Errorf("init speaker: %w", err)
	}

	var playStreamer beep.Streamer = streamer
	if format.SampleRate != p.speakerRate {
		playStreamer = beep.Resample(4, format.SampleRate, p.speakerRate, streamer)
	}

	duration := format.SampleRate.D(streamer.Len())
	info, err := ReadTrackInfo(path)
	if err != nil {
		info = &TrackInfo{Path: path, Title: filepath.Base(path)}
	}
	info.Duration = duration
	info.SampleRate = int(format.SampleRate)
	info.Format = formatName(path)

	p.mu.Lock()
	p.file = f
	p.streamer = streamer
	p.format = format
	p.ctrl = &beep.Ctrl{Streamer: playStreamer, Paused: true}
	p.volume = &effects.Volume{Streamer: p.ctrl, Base: 2}
	p.applyVolumeLocked()
	p.info = info
	p.state = media.Stopped
	p.mu.Unlock()

	p.log.Info("source loaded", "path", path, "duration", duration, "format", info.Format)
	p.listeners.Emit(media.Event{Kind: media.EventSource, Source: path, Duration: duration})
	return nil
}

// Close releases the current source.
func (p *Player) Close() {
	prev := p.State()
	p.unload()
	if prev != media.Stopped {
		p.emitState(prev, media.Stopped)
	}
}

func (p *Player) unload() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.streamer == nil {
		p.state = media.Stopped
		return
	}
	p.out.Clear()
	p.queued.Store(false)

	p.streamer.Close()
	if p.file != nil {
		p.file.Close()
	}
	p.file = nil
	p.streamer = nil
	p.ctrl = nil
	p.volume = nil
	p.info = nil
	p.state = media.Stopped
}

func (p *Player) ensureSpeaker(format beep.Format) error {
	if p.speakerReady {
		return nil
	}
	if err := p.out.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		return err
	}
	p.speakerRate = format.SampleRate
	p.speakerReady = true
	return nil
}

// enqueue hands the source to the speaker unless it is already there.
// Must be called with p.mu held.
func (p *Player) enqueue() {
	if p.queued.Swap(true) {
		return
	}
	p.out.Play(beep.Seq(p.volume, beep.Callback(p.finished)))
}

// finished runs on the speaker goroutine when the source is exhausted.
func (p *Player) finished() {
	p.queued.Store(false)
	select {
	case p.finishedCh <- struct{}{}:
	default:
	}
}

// FinishedChan delivers a value each time the current source plays to its end.
func (p *Player) FinishedChan() <-chan struct{} {
	return p.finishedCh
}

// Subscribe registers a listener for state, source and duration changes.
func (p *Player) Subscribe(fn media.Listener) func() {
	return p.listeners.Add(fn)
}

func (p *Player) emitState(prev, cur media.State) {
	if prev == cur {
		return
	}
	p.log.Debug("state changed", "from", prev.String(), "to", cur.String())
	p.listeners.Emit(media.Event{Kind: media.EventState, Previous: prev, State: cur})
}
