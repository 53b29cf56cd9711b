//go:build !linux

package mpris

// Adapter is a no-op on non-Linux platforms.
type Adapter struct{}

// New returns a no-op adapter on non-Linux platforms.
func New(_ Player, _ func(Command)) (*Adapter, error) {
	return &Adapter{}, nil
}

// SetLooping is a no-op on non-Linux platforms.
func (a *Adapter) SetLooping(bool) {}

// Close is a no-op on non-Linux platforms.
func (a *Adapter) Close() error {
	return nil
}
