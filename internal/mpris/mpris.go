//go:build linux

package mpris

import (
	"sync/atomic"

	"github.com/quarckster/go-mpris-server/pkg/server"
)

// Adapter connects the player to MPRIS over D-Bus.
type Adapter struct {
	server  *server.Server
	looping atomic.Bool
}

// New creates and starts an MPRIS adapter. Commands from the desktop are
// passed to send.
func New(p Player, send func(Command)) (*Adapter, error) {
	a := &Adapter{}

	root := &rootAdapter{}
	pa := &playerAdapter{player: p, send: send, looping: &a.looping}
	a.server = server.NewServer("scrubber", root, pa)

	// Start the server in background
	go func() {
		_ = a.server.Listen()
	}()

	return a, nil
}

// SetLooping publishes whether the selection is looping.
func (a *Adapter) SetLooping(on bool) {
	a.looping.Store(on)
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}
