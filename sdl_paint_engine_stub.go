//go:build !cgo

package pencil

import "errors"

var errSDLUnavailable = errors.New("SDLPaintEngine requires cgo")

// NewSDLPaintEngine is only available with cgo.
func NewSDLPaintEngine(title string, width int, height int) (PaintEngine, error) {
	return nil, errSDLUnavailable
}

// SDLInputSource never delivers events without cgo.
type SDLInputSource struct {
	events chan PointerEvent
}

// NewSDLInputSource creates an SDLInputSource whose channel is already closed.
func NewSDLInputSource() *SDLInputSource {
	events := make(chan PointerEvent)
	close(events)
	return &SDLInputSource{events: events}
}

// Events implements InputSource
func (s *SDLInputSource) Events() <-chan PointerEvent {
	return s.events
}

// Pump always reports a closed window.
func (s *SDLInputSource) Pump() bool {
	return false
}
