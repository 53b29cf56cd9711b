package player

import "math"

// SetVolume sets the volume level (0.0 to 1.0).
// If muted, only stores the level without applying it.
func (p *Player) SetVolume(level float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volumeLevel = max(0, min(level, 1))
	p.applyVolumeLocked()
}

// Volume returns the current volume level (0.0 to 1.0).
func (p *Player) Volume() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.volumeLevel
}

// SetMuted sets the muted state.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
	p.applyVolumeLocked()
}

// Muted returns true if audio is muted.
func (p *Player) Muted() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.muted
}

func (p *Player) applyVolumeLocked() {
	if p.volume == nil {
		return
	}
	p.out.Lock()
	p.volume.Volume = levelToVolume(p.volumeLevel)
	p.volume.Silent = p.muted || p.volumeLevel <= 0
	p.out.Unlock()
}

// levelToVolume converts a 0.0-1.0 level to beep's base-2 Volume value.
// We map: 1.0 -> 0, 0.5 -> -1, 0.25 -> -2, 0 -> -10 (essentially silent)
func levelToVolume(level float64) float64 {
	if level <= 0 {
		return -10
	}
	if level >= 1 {
		return 0
	}
	return math.Log2(level)
}
