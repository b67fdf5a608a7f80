//go:build cgo

package pencil

import (
	"image"

	"github.com/veandco/go-sdl2/sdl"
)

const sdlEventBufferSize = 1024

// SDLInputSource turns SDL mouse events of the left button into pointer
// events. SDL only delivers events to the thread that created the window,
// so Pump must be called from that thread.
type SDLInputSource struct {
	events chan PointerEvent
	closed bool
}

// NewSDLInputSource creates SDLInputSource
func NewSDLInputSource() *SDLInputSource {
	return &SDLInputSource{
		events: make(chan PointerEvent, sdlEventBufferSize),
	}
}

// Events implements InputSource
func (s *SDLInputSource) Events() <-chan PointerEvent {
	return s.events
}

// Pump moves pending SDL events into the event channel. It returns false
// once the window has been closed; the channel is closed at that point.
func (s *SDLInputSource) Pump() bool {
	if s.closed {
		return false
	}

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			s.closed = true
			close(s.events)
			return false
		case *sdl.MouseButtonEvent:
			if e.Button != sdl.BUTTON_LEFT {
				continue
			}
			kind := PointerUp
			if e.State == sdl.PRESSED {
				kind = PointerDown
			}
			s.push(PointerEvent{Kind: kind, Pos: image.Pt(int(e.X), int(e.Y))})
		case *sdl.MouseMotionEvent:
			s.push(PointerEvent{Kind: PointerMove, Pos: image.Pt(int(e.X), int(e.Y))})
		}
	}
	return true
}

func (s *SDLInputSource) push(event PointerEvent) {
	select {
	case s.events <- event:
	default:
		logger().WithField("event", event.Kind).Warn("SDL input queue is full, event dropped")
	}
}
