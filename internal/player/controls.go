package player

import (
	"time"

	"github.com/llehouerou/scrubber/internal/media"
)

// Play starts or resumes playback. A source that played to its end
// restarts from the beginning.
func (p *Player) Play() {
	p.mu.Lock()
	if p.streamer == nil || p.state == media.Playing {
		p.mu.Unlock()
		return
	}
	prev := p.state

	p.out.Lock()
	if p.streamer.Position() >= p.streamer.Len() {
		_ = p.streamer.Seek(0)
	}
	p.ctrl.Paused = false
	p.out.Unlock()

	p.enqueue()
	p.state = media.Playing
	p.mu.Unlock()

	p.emitState(prev, media.Playing)
}

// Pause pauses playback.
func (p *Player) Pause() {
	p.mu.Lock()
	if p.state != media.Playing || p.ctrl == nil {
		p.mu.Unlock()
		return
	}
	p.out.Lock()
	p.ctrl.Paused = true
	p.out.Unlock()
	p.state = media.Paused
	p.mu.Unlock()

	p.emitState(media.Playing, media.Paused)
}

// Toggle toggles between playing and paused. A stopped source starts playing.
func (p *Player) Toggle() {
	switch p.State() {
	case media.Playing:
		p.Pause()
	case media.Paused, media.Stopped:
		p.Play()
	}
}

// Stop pauses playback and rewinds to the beginning, keeping the source.
func (p *Player) Stop() {
	p.mu.Lock()
	if p.streamer == nil || p.state == media.Stopped {
		p.mu.Unlock()
		return
	}
	prev := p.state
	p.out.Lock()
	p.ctrl.Paused = true
	err := p.streamer.Seek(0)
	p.out.Unlock()
	p.state = media.Stopped
	p.mu.Unlock()

	if err != nil {
		p.log.Warn("rewind failed", "err", err)
	}
	p.emitState(prev, media.Stopped)
}

// SeekTo moves playback to pos, clamped to the source's bounds.
func (p *Player) SeekTo(pos time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamer == nil {
		return
	}

	n := p.format.SampleRate.N(pos)
	n = max(0, min(n, p.streamer.Len()))

	p.out.Lock()
	err := p.streamer.Seek(n)
	p.out.Unlock()
	if err != nil {
		p.log.Warn("seek failed", "pos", pos, "err", err)
	}
}

// SeekPercent moves playback to percent (clamped to 0-100) of the duration.
func (p *Player) SeekPercent(percent float64) {
	percent = max(0, min(percent, 100))
	d := p.Duration()
	if d <= 0 {
		return
	}
	p.SeekTo(time.Duration(float64(d) * percent / 100))
}

// State returns the playback state.
func (p *Player) State() media.State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

// Position returns the current playback position.
func (p *Player) Position() time.Duration {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.streamer == nil {
		return 0
	}
	p.out.Lock()
	n := p.streamer.Position()
	p.out.Unlock()
	return p.format.SampleRate.D(n)
}

// Duration returns the duration of the current source, or 0.
func (p *Player) Duration() time.Duration {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.info == nil {
		return 0
	}
	return p.info.Duration
}

// Source returns the path of the current source, or "".
func (p *Player) Source() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.info == nil {
		return ""
	}
	return p.info.Path
}

// TrackInfo returns a copy of the current source's metadata, or nil.
func (p *Player) TrackInfo() *TrackInfo {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.info == nil {
		return nil
	}
	info := *p.info
	return &info
}
